// Package apply validates candidate application drafts against the rules of
// the posting being applied to.
package apply

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"techrecruit-portal/internal/models"
)

// MinMotivationLength is the minimum motivation text size in characters.
const MinMotivationLength = 50

// ErrorKind classifies a field failure. Ineligible is categorically
// different from the others: it signals that the candidate cannot proceed,
// not that a field needs fixing.
type ErrorKind string

const (
	KindRequired   ErrorKind = "required"
	KindFormat     ErrorKind = "format"
	KindTooShort   ErrorKind = "too_short"
	KindIneligible ErrorKind = "ineligible"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field  string    `json:"field"`
	Kind   ErrorKind `json:"kind"`
	Reason string    `json:"reason"`
}

// Result is the full, ordered outcome of validating a draft. All rules are
// evaluated; a draft failing several rules reports every failure at once.
type Result struct {
	Errors []FieldError `json:"errors"`
}

// Valid reports whether the draft passed every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Ineligible reports whether the draft was rejected on the nationality
// gate, which callers must surface differently from fixable field errors.
func (r Result) Ineligible() bool {
	for _, e := range r.Errors {
		if e.Kind == KindIneligible {
			return true
		}
	}
	return false
}

// Same single-@, dot-after-@ pattern the application form enforces.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var requiredFields = []struct {
	name  string
	value func(d *models.ApplicationDraft) string
}{
	{"first_name", func(d *models.ApplicationDraft) string { return d.FirstName }},
	{"last_name", func(d *models.ApplicationDraft) string { return d.LastName }},
	{"email", func(d *models.ApplicationDraft) string { return d.Email }},
	{"motivation_text", func(d *models.ApplicationDraft) string { return d.MotivationText }},
}

// Validate checks a draft against the posting's rules. Rules run in a fixed
// order and never short-circuit. A successful validation is the caller's
// only trigger to discard the draft; on failure all entered values stay
// intact for correction.
func Validate(draft models.ApplicationDraft, job *models.JobRecord) Result {
	var res Result

	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(&draft)) == "" {
			res.Errors = append(res.Errors, FieldError{
				Field:  f.name,
				Kind:   KindRequired,
				Reason: "this field is required",
			})
		}
	}

	if strings.TrimSpace(draft.Email) != "" && !emailPattern.MatchString(draft.Email) {
		res.Errors = append(res.Errors, FieldError{
			Field:  "email",
			Kind:   KindFormat,
			Reason: "email address is not valid",
		})
	}

	if strings.TrimSpace(draft.MotivationText) != "" && utf8.RuneCountInString(draft.MotivationText) < MinMotivationLength {
		res.Errors = append(res.Errors, FieldError{
			Field:  "motivation_text",
			Kind:   KindTooShort,
			Reason: "motivation must be at least 50 characters",
		})
	}

	if job.NationalityGated() && !strings.EqualFold(strings.TrimSpace(draft.NationalityAnswer), "yes") {
		res.Errors = append(res.Errors, FieldError{
			Field:  "nationality_answer",
			Kind:   KindIneligible,
			Reason: "this position requires the nationality eligibility confirmation",
		})
	}

	return res
}
