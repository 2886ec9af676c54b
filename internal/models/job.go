package models

import (
	"encoding/json"
	"strings"
)

// Language is a supported display language code.
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// JobStatus is the lifecycle state of a posting. An explicit status field on
// a record is passed through verbatim, so values outside these constants can
// occur.
type JobStatus string

const (
	JobStatusOpen    JobStatus = "Open"
	JobStatusClosed  JobStatus = "Closed"
	JobStatusUnknown JobStatus = "Unknown"
)

// LocalizedText holds the per-language variants of a display field.
type LocalizedText map[Language]string

// In returns the text for the requested language, falling back to English
// and finally to the empty string. It never returns a value for a language
// the record does not carry without going through that fallback order.
func (t LocalizedText) In(lang Language) string {
	if t == nil {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[LangEnglish]
}

// IsZero reports whether no variant is present.
func (t LocalizedText) IsZero() bool {
	return len(t) == 0
}

// JobRecord is one posting in the catalog. Records are immutable after load.
//
// The source document exists in two shapes: language-keyed objects
// ({"title": {"en": ..., "fr": ...}}) and flat suffixed fields
// ("titleEn"/"titleFr"), with field-name aliases between the two
// ("type"/"contractType", "mode"/"workMode", ...). UnmarshalJSON
// canonicalizes both shapes into this one struct.
type JobRecord struct {
	ID                  string        `json:"id"`
	Title               LocalizedText `json:"title"`
	ContractType        LocalizedText `json:"contractType"`
	Location            LocalizedText `json:"location"`
	WorkMode            LocalizedText `json:"workMode"`
	StartDate           LocalizedText `json:"startDate"`
	PostedDate          LocalizedText `json:"postedDate"`
	Description         LocalizedText `json:"description"`
	Requirements        LocalizedText `json:"requirements"`
	Benefits            LocalizedText `json:"benefits"`
	Salary              string        `json:"salary,omitempty"`
	Rate                string        `json:"rate,omitempty"`
	Tags                []string      `json:"tags"`
	LastDateToApply     string        `json:"lastDateToApply"`
	Status              string        `json:"status,omitempty"`
	NationalityRequired string        `json:"nationalityRequired"`
}

// localizedAliases maps each canonical field to the key names observed in
// catalog documents, in lookup order.
var localizedAliases = map[string][]string{
	"title":        {"title"},
	"contractType": {"type", "contractType"},
	"location":     {"location"},
	"workMode":     {"mode", "workMode"},
	"startDate":    {"start", "startDate"},
	"postedDate":   {"posted", "publishedDate"},
	"description":  {"description"},
	"requirements": {"requirements"},
	"benefits":     {"benefits"},
}

func (j *JobRecord) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	j.ID = rawString(raw, "id", "jobId")
	j.Title = rawLocalized(raw, localizedAliases["title"])
	j.ContractType = rawLocalized(raw, localizedAliases["contractType"])
	j.Location = rawLocalized(raw, localizedAliases["location"])
	j.WorkMode = rawLocalized(raw, localizedAliases["workMode"])
	j.StartDate = rawLocalized(raw, localizedAliases["startDate"])
	j.PostedDate = rawLocalized(raw, localizedAliases["postedDate"])
	j.Description = rawLocalized(raw, localizedAliases["description"])
	j.Requirements = rawLocalized(raw, localizedAliases["requirements"])
	j.Benefits = rawLocalized(raw, localizedAliases["benefits"])
	j.Salary = rawString(raw, "salary")
	j.Rate = rawString(raw, "rate")
	j.LastDateToApply = rawString(raw, "lastDateToApply")
	j.Status = rawString(raw, "status")
	j.NationalityRequired = rawString(raw, "nationalityRequired")

	j.Tags = nil
	if msg, ok := raw["tags"]; ok {
		// Malformed tags degrade to none rather than failing the record.
		_ = json.Unmarshal(msg, &j.Tags)
	}
	return nil
}

// rawString returns the first alias present as a plain JSON string.
func rawString(raw map[string]json.RawMessage, aliases ...string) string {
	for _, key := range aliases {
		msg, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err == nil {
			return s
		}
	}
	return ""
}

// rawLocalized resolves one canonical localized field from either shape.
func rawLocalized(raw map[string]json.RawMessage, aliases []string) LocalizedText {
	for _, key := range aliases {
		if msg, ok := raw[key]; ok {
			var m map[Language]string
			if err := json.Unmarshal(msg, &m); err == nil && len(m) > 0 {
				return LocalizedText(m)
			}
			// A bare string counts as the English variant.
			var s string
			if err := json.Unmarshal(msg, &s); err == nil && s != "" {
				return LocalizedText{LangEnglish: s}
			}
		}
		// Flat suffixed shape: titleEn / titleFr.
		en := rawString(raw, key+"En")
		fr := rawString(raw, key+"Fr")
		if en != "" || fr != "" {
			t := LocalizedText{}
			if en != "" {
				t[LangEnglish] = en
			}
			if fr != "" {
				t[LangFrench] = fr
			}
			return t
		}
	}
	return nil
}

// Compensation returns the non-localized pay field: salary wins over rate,
// and "N/A" stands in when neither is present.
func (j *JobRecord) Compensation() string {
	if j.Salary != "" {
		return j.Salary
	}
	if j.Rate != "" {
		return j.Rate
	}
	return "N/A"
}

// NationalityGated reports whether the posting requires the nationality
// eligibility answer on application.
func (j *JobRecord) NationalityGated() bool {
	return strings.EqualFold(strings.TrimSpace(j.NationalityRequired), "yes")
}

// HasStatusOverride reports whether the record carries an explicit status
// that supersedes deadline derivation.
func (j *JobRecord) HasStatusOverride() bool {
	return strings.TrimSpace(j.Status) != ""
}
