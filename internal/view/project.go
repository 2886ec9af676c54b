// Package view projects catalog records into flat, pre-resolved view models
// for the rendering collaborator. Projections are side-effect free; every
// display field is resolved in the requested language before it leaves the
// engine.
package view

import (
	"time"

	"techrecruit-portal/internal/catalog"
	"techrecruit-portal/internal/i18n"
	"techrecruit-portal/internal/models"
)

// Projector turns records into view models using a fixed locale bundle for
// chrome strings and date formatting.
type Projector struct {
	bundle *i18n.Bundle
}

func NewProjector(bundle *i18n.Bundle) *Projector {
	return &Projector{bundle: bundle}
}

// Bundle exposes the locale bundle for collaborators that need raw labels.
func (p *Projector) Bundle() *i18n.Bundle {
	return p.bundle
}

// ForListing builds the per-card content for one posting.
func (p *Projector) ForListing(rec *models.JobRecord, lang models.Language, today time.Time) models.ListingView {
	tags := make([]string, len(rec.Tags))
	copy(tags, rec.Tags)

	return models.ListingView{
		ID:           rec.ID,
		Title:        i18n.Resolve(rec, i18n.FieldTitle, lang),
		ContractType: i18n.Resolve(rec, i18n.FieldContractType, lang),
		Location:     i18n.Resolve(rec, i18n.FieldLocation, lang),
		WorkMode:     i18n.Resolve(rec, i18n.FieldWorkMode, lang),
		Compensation: i18n.Compensation(rec),
		StartDate:    p.displayDate(lang, i18n.Resolve(rec, i18n.FieldStartDate, lang)),
		PostedDate:   p.displayDate(lang, i18n.Resolve(rec, i18n.FieldPostedDate, lang)),
		Deadline:     p.bundle.FormatDate(lang, rec.LastDateToApply),
		Tags:         tags,
		Status:       catalog.DeriveStatus(rec, today),
		Nationality:  rec.NationalityGated(),
	}
}

// ForDetail builds the full detail page content, including the derived
// application window fields used to disable the apply action and to warn
// when a week or less remains.
func (p *Projector) ForDetail(rec *models.JobRecord, lang models.Language, now time.Time) models.DetailView {
	days, parsed := catalog.DaysRemaining(rec, now)
	open := catalog.DeriveStatus(rec, now) != models.JobStatusClosed

	return models.DetailView{
		ListingView:     p.ForListing(rec, lang, now),
		Description:     i18n.Resolve(rec, i18n.FieldDescription, lang),
		Requirements:    i18n.Resolve(rec, i18n.FieldRequirements, lang),
		Benefits:        i18n.Resolve(rec, i18n.FieldBenefits, lang),
		ApplicationOpen: open,
		DaysRemaining:   days,
		DeadlineSoon:    parsed && open && days >= 0 && days <= 7,
	}
}

// displayDate formats values that carry an ISO date; free-form values like
// "Immediate" pass through untouched.
func (p *Projector) displayDate(lang models.Language, v string) string {
	return p.bundle.FormatDate(lang, v)
}
