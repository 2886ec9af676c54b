package view

import (
	"fmt"
	"regexp"
	"strings"

	"techrecruit-portal/internal/i18n"
	"techrecruit-portal/internal/models"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Hashtags turns display tags into share hashtags, stripping everything but
// letters and digits. Empty results are dropped.
func Hashtags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		clean := nonAlphanumeric.ReplaceAllString(tag, "")
		if clean == "" {
			continue
		}
		out = append(out, "#"+clean)
	}
	return out
}

// ShareContent builds the pre-formatted text block for the share
// collaborator. The engine only assembles the text; intent URLs and
// clipboard access stay outside.
func (p *Projector) ShareContent(rec *models.JobRecord, lang models.Language, jobURL string) models.ShareContent {
	title := i18n.Resolve(rec, i18n.FieldTitle, lang)
	hashtags := Hashtags(rec.Tags)
	tagLine := strings.Join(hashtags, " ")
	if tagLine != "" {
		tagLine += " "
	}
	tagLine += p.bundle.Label(lang, "share_hashtags")

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", p.bundle.Label(lang, "share_heading"))
	fmt.Fprintf(&b, "📌 %s\n", title)
	fmt.Fprintf(&b, "📋 %s\n", i18n.Resolve(rec, i18n.FieldContractType, lang))
	fmt.Fprintf(&b, "💰 %s\n", i18n.Compensation(rec))
	fmt.Fprintf(&b, "📍 %s\n", i18n.Resolve(rec, i18n.FieldLocation, lang))
	fmt.Fprintf(&b, "📅 %s %s\n", p.bundle.Label(lang, "start"), p.displayDate(lang, i18n.Resolve(rec, i18n.FieldStartDate, lang)))
	fmt.Fprintf(&b, "🏠 %s\n\n", i18n.Resolve(rec, i18n.FieldWorkMode, lang))
	fmt.Fprintf(&b, "%s: %s\n\n", p.bundle.Label(lang, "share_apply"), jobURL)
	b.WriteString(tagLine)

	return models.ShareContent{
		Title:    title,
		Text:     b.String(),
		URL:      jobURL,
		Hashtags: hashtags,
	}
}
