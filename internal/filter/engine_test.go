package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techrecruit-portal/internal/i18n"
	"techrecruit-portal/internal/models"
)

var today = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testRecords() []models.JobRecord {
	return []models.JobRecord{
		{
			ID:                  "J1",
			Title:               models.LocalizedText{models.LangEnglish: "Engineer"},
			ContractType:        models.LocalizedText{models.LangEnglish: "Permanent", models.LangFrench: "CDI"},
			Location:            models.LocalizedText{models.LangEnglish: "Paris"},
			WorkMode:            models.LocalizedText{models.LangEnglish: "Hybrid", models.LangFrench: "Hybride"},
			LastDateToApply:     "2099-01-01",
			NationalityRequired: "No",
		},
		{
			ID:                  "J2",
			Title:               models.LocalizedText{models.LangEnglish: "Developer"},
			ContractType:        models.LocalizedText{models.LangEnglish: "Contract", models.LangFrench: "Freelance"},
			Location:            models.LocalizedText{models.LangEnglish: "Lyon"},
			WorkMode:            models.LocalizedText{models.LangEnglish: "Remote", models.LangFrench: "À Distance"},
			LastDateToApply:     "2020-01-01",
			NationalityRequired: "Yes",
		},
		{
			ID:                  "J3",
			Title:               models.LocalizedText{models.LangEnglish: "Designer"},
			ContractType:        models.LocalizedText{models.LangEnglish: "Permanent", models.LangFrench: "CDI"},
			Location:            models.LocalizedText{models.LangEnglish: "Paris"},
			WorkMode:            models.LocalizedText{models.LangEnglish: "Remote", models.LangFrench: "À Distance"},
			LastDateToApply:     "2099-01-01",
			NationalityRequired: "No",
		},
	}
}

func ids(records []models.JobRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestApply(t *testing.T) {
	records := testRecords()

	t.Run("all_wildcards_return_input_unchanged", func(t *testing.T) {
		got := Apply(records, Criteria{}, models.LangEnglish, today)
		assert.Equal(t, ids(records), ids(got))

		got = Apply(records, Criteria{
			ContractType: Wildcard,
			Location:     Wildcard,
			WorkMode:     Wildcard,
			Nationality:  Wildcard,
			Status:       Wildcard,
		}, models.LangEnglish, today)
		assert.Equal(t, ids(records), ids(got))
	})

	t.Run("single_criterion", func(t *testing.T) {
		got := Apply(records, Criteria{Location: "Paris"}, models.LangEnglish, today)
		assert.Equal(t, []string{"J1", "J3"}, ids(got))
	})

	t.Run("criteria_combine_with_and", func(t *testing.T) {
		got := Apply(records, Criteria{ContractType: "Permanent", WorkMode: "Remote"}, models.LangEnglish, today)
		assert.Equal(t, []string{"J3"}, ids(got))
	})

	t.Run("localized_criterion_matches_active_language_only", func(t *testing.T) {
		// "CDI" is the French vocabulary value; in an English pass it
		// matches nothing.
		got := Apply(records, Criteria{ContractType: "CDI"}, models.LangEnglish, today)
		assert.Empty(t, got)

		got = Apply(records, Criteria{ContractType: "CDI"}, models.LangFrench, today)
		assert.Equal(t, []string{"J1", "J3"}, ids(got))
	})

	t.Run("status_criterion_uses_derived_status", func(t *testing.T) {
		got := Apply(records, Criteria{Status: "Closed"}, models.LangEnglish, today)
		assert.Equal(t, []string{"J2"}, ids(got))
	})

	t.Run("nationality_criterion", func(t *testing.T) {
		got := Apply(records, Criteria{Nationality: "Yes"}, models.LangEnglish, today)
		assert.Equal(t, []string{"J2"}, ids(got))
	})

	t.Run("idempotent_and_order_preserving", func(t *testing.T) {
		criteria := Criteria{WorkMode: "Remote"}
		once := Apply(records, criteria, models.LangEnglish, today)
		twice := Apply(once, criteria, models.LangEnglish, today)
		assert.Equal(t, ids(once), ids(twice))
		assert.Equal(t, []string{"J2", "J3"}, ids(once))
	})
}

func TestBuildOptions(t *testing.T) {
	records := testRecords()

	t.Run("distinct_in_first_occurrence_order", func(t *testing.T) {
		got := BuildOptions(records, i18n.FieldContractType, models.LangEnglish)
		assert.Equal(t, []string{"Permanent", "Contract"}, got)
	})

	t.Run("language_pass_changes_vocabulary", func(t *testing.T) {
		got := BuildOptions(records, i18n.FieldContractType, models.LangFrench)
		assert.Equal(t, []string{"CDI", "Freelance"}, got)
	})

	t.Run("empty_values_excluded", func(t *testing.T) {
		withBlank := append(records, models.JobRecord{ID: "J4"})
		got := BuildOptions(withBlank, i18n.FieldLocation, models.LangEnglish)
		assert.Equal(t, []string{"Paris", "Lyon"}, got)
	})
}

func TestOptions(t *testing.T) {
	records := testRecords()
	opts := Options(records, models.LangEnglish, today)

	require.Equal(t, []string{"Permanent", "Contract"}, opts.ContractTypes)
	require.Equal(t, []string{"Paris", "Lyon"}, opts.Locations)
	require.Equal(t, []string{"Hybrid", "Remote"}, opts.WorkModes)
	assert.Equal(t, []models.JobStatus{models.JobStatusOpen, models.JobStatusClosed}, opts.Statuses)
}
