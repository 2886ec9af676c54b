// Package filter narrows the catalog to the records matching the visitor's
// active criteria. Filtering is stable: surviving records keep their catalog
// order, and no partial or fuzzy matching is applied.
package filter

import (
	"strings"
	"time"

	"techrecruit-portal/internal/catalog"
	"techrecruit-portal/internal/i18n"
	"techrecruit-portal/internal/models"
)

// Wildcard is the criterion value that matches every record.
const Wildcard = "all"

// Criteria is one set of equality constraints. An empty value counts as the
// wildcard. Localized dimensions are compared against the record's value in
// the active language, so option vocabulary and results must come from the
// same language pass.
type Criteria struct {
	ContractType string
	Location     string
	WorkMode     string
	Nationality  string
	Status       string
}

func active(v string) bool {
	return v != "" && v != Wildcard
}

// Apply returns the subset of records matching every active criterion, in
// catalog order. The status criterion matches the derived status, not the
// raw field.
func Apply(records []models.JobRecord, c Criteria, lang models.Language, today time.Time) []models.JobRecord {
	out := make([]models.JobRecord, 0, len(records))
	for i := range records {
		rec := &records[i]
		if active(c.ContractType) && i18n.Resolve(rec, i18n.FieldContractType, lang) != c.ContractType {
			continue
		}
		if active(c.Location) && i18n.Resolve(rec, i18n.FieldLocation, lang) != c.Location {
			continue
		}
		if active(c.WorkMode) && i18n.Resolve(rec, i18n.FieldWorkMode, lang) != c.WorkMode {
			continue
		}
		if active(c.Nationality) && !strings.EqualFold(rec.NationalityRequired, c.Nationality) {
			continue
		}
		if active(c.Status) && string(catalog.DeriveStatus(rec, today)) != c.Status {
			continue
		}
		out = append(out, records[i])
	}
	return out
}

// BuildOptions collects the distinct, non-empty resolved values of one
// localized field across the records, in first-occurrence order. The
// wildcard is implicit and never part of the set.
func BuildOptions(records []models.JobRecord, field i18n.Field, lang models.Language) []string {
	seen := map[string]struct{}{}
	var out []string
	for i := range records {
		v := i18n.Resolve(&records[i], field, lang)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Options builds the full selectable vocabulary for every filter dimension
// in one language pass, so the values line up with what Apply compares.
func Options(records []models.JobRecord, lang models.Language, today time.Time) models.FilterOptions {
	opts := models.FilterOptions{
		ContractTypes: BuildOptions(records, i18n.FieldContractType, lang),
		Locations:     BuildOptions(records, i18n.FieldLocation, lang),
		WorkModes:     BuildOptions(records, i18n.FieldWorkMode, lang),
	}

	seen := map[models.JobStatus]struct{}{}
	for i := range records {
		st := catalog.DeriveStatus(&records[i], today)
		if _, ok := seen[st]; ok {
			continue
		}
		seen[st] = struct{}{}
		opts.Statuses = append(opts.Statuses, st)
	}
	return opts
}
