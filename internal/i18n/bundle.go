package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"techrecruit-portal/internal/models"
)

//go:embed bundle.yaml
var defaultBundle []byte

// Locale holds the UI strings and month names for one language.
type Locale struct {
	Labels map[string]string `yaml:"labels"`
	Months []string          `yaml:"months"`
}

// Bundle is the set of locales the service can render chrome strings in.
// Catalog content is localized per record; the bundle covers everything
// around it (field labels, warnings, share framing).
type Bundle struct {
	locales map[models.Language]Locale
}

// DefaultBundle parses the embedded locale definitions. The embedded YAML is
// known-good, so a parse failure is a programming error.
func DefaultBundle() *Bundle {
	b, err := parseBundle(defaultBundle)
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded bundle invalid: %v", err))
	}
	return b
}

// LoadBundle reads a locale bundle from a YAML file, used to override the
// embedded defaults.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale bundle: %w", err)
	}
	b, err := parseBundle(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale bundle %s: %w", path, err)
	}
	return b, nil
}

func parseBundle(data []byte) (*Bundle, error) {
	raw := map[models.Language]Locale{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw[models.LangEnglish]; !ok {
		return nil, fmt.Errorf("bundle is missing the %q locale", models.LangEnglish)
	}
	return &Bundle{locales: raw}, nil
}

// Label returns the chrome string for a key in the given language, falling
// back to English and finally to the key itself.
func (b *Bundle) Label(lang models.Language, key string) string {
	if loc, ok := b.locales[lang]; ok {
		if v, ok := loc.Labels[key]; ok {
			return v
		}
	}
	if loc, ok := b.locales[models.LangEnglish]; ok {
		if v, ok := loc.Labels[key]; ok {
			return v
		}
	}
	return key
}

// Labelf formats a parameterized chrome string.
func (b *Bundle) Labelf(lang models.Language, key string, args ...interface{}) string {
	return fmt.Sprintf(b.Label(lang, key), args...)
}

// FormatDate renders an ISO 8601 date in the language's display convention:
// "January 2, 2006" for English, "2 janvier 2006" for French. Values that do
// not parse are returned verbatim.
func (b *Bundle) FormatDate(lang models.Language, iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	month := b.monthName(lang, t.Month())
	if lang == models.LangFrench {
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	}
	return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
}

func (b *Bundle) monthName(lang models.Language, m time.Month) string {
	loc, ok := b.locales[lang]
	if !ok || len(loc.Months) < int(m) {
		loc, ok = b.locales[models.LangEnglish]
		if !ok || len(loc.Months) < int(m) {
			return m.String()
		}
	}
	return loc.Months[int(m)-1]
}
