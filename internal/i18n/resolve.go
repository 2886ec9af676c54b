// Package i18n resolves localized catalog fields and UI labels for the two
// supported display languages.
package i18n

import (
	"golang.org/x/text/language"

	"techrecruit-portal/internal/models"
)

// Field names one localized attribute of a job record.
type Field string

const (
	FieldTitle        Field = "title"
	FieldContractType Field = "contractType"
	FieldLocation     Field = "location"
	FieldWorkMode     Field = "workMode"
	FieldStartDate    Field = "startDate"
	FieldPostedDate   Field = "postedDate"
	FieldDescription  Field = "description"
	FieldRequirements Field = "requirements"
	FieldBenefits     Field = "benefits"
)

// Resolve returns the display string for one localized field of a record in
// the requested language. A missing translation falls back to English and
// then to the empty string; the function never returns an unresolved value.
func Resolve(rec *models.JobRecord, field Field, lang models.Language) string {
	return text(rec, field).In(lang)
}

func text(rec *models.JobRecord, field Field) models.LocalizedText {
	switch field {
	case FieldTitle:
		return rec.Title
	case FieldContractType:
		return rec.ContractType
	case FieldLocation:
		return rec.Location
	case FieldWorkMode:
		return rec.WorkMode
	case FieldStartDate:
		return rec.StartDate
	case FieldPostedDate:
		return rec.PostedDate
	case FieldDescription:
		return rec.Description
	case FieldRequirements:
		return rec.Requirements
	case FieldBenefits:
		return rec.Benefits
	}
	return nil
}

// Compensation resolves the non-localized pay field with the salary-first
// precedence and "N/A" fallback.
func Compensation(rec *models.JobRecord) string {
	return rec.Compensation()
}

var supported = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supported)

// Normalize maps an incoming language code to one of the supported display
// languages. Regional variants collapse to their base ("fr-CA" becomes
// "fr"); anything unrecognized falls back to English.
func Normalize(code string) models.Language {
	if code == "" {
		return models.LangEnglish
	}
	tag, err := language.Parse(code)
	if err != nil {
		return models.LangEnglish
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return models.LangEnglish
	}
	if supported[idx] == language.French {
		return models.LangFrench
	}
	return models.LangEnglish
}

// Supported reports whether the code is exactly one of the two display
// language codes.
func Supported(code string) bool {
	return code == string(models.LangEnglish) || code == string(models.LangFrench)
}
