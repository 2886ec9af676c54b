package apply

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techrecruit-portal/internal/models"
)

func validDraft() models.ApplicationDraft {
	return models.ApplicationDraft{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		MotivationText: strings.Repeat("x", 50),
	}
}

func openJob() *models.JobRecord {
	return &models.JobRecord{ID: "J1", NationalityRequired: "No"}
}

func gatedJob() *models.JobRecord {
	return &models.JobRecord{ID: "J2", NationalityRequired: "Yes"}
}

func fields(res Result) []string {
	out := make([]string, len(res.Errors))
	for i, e := range res.Errors {
		out[i] = e.Field
	}
	return out
}

func TestValidate_Success(t *testing.T) {
	res := Validate(validDraft(), openJob())
	assert.True(t, res.Valid())
	assert.False(t, res.Ineligible())
	assert.Empty(t, res.Errors)
}

func TestValidate_RequiredFields(t *testing.T) {
	res := Validate(models.ApplicationDraft{}, openJob())

	assert.False(t, res.Valid())
	assert.Equal(t, []string{"first_name", "last_name", "email", "motivation_text"}, fields(res))
	for _, e := range res.Errors {
		assert.Equal(t, KindRequired, e.Kind)
	}
}

func TestValidate_BlankAfterTrimming(t *testing.T) {
	draft := validDraft()
	draft.FirstName = "   "
	res := Validate(draft, openJob())

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "first_name", res.Errors[0].Field)
}

func TestValidate_EmailFormat(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"ada@example.com", true},
		{"ada.lovelace@mail.example.org", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"missing@dot", false},
		{"spaces in@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			draft := validDraft()
			draft.Email = tt.email
			res := Validate(draft, openJob())
			assert.Equal(t, tt.ok, res.Valid())
		})
	}
}

func TestValidate_MotivationLengthBoundary(t *testing.T) {
	t.Run("49_characters_fail", func(t *testing.T) {
		draft := validDraft()
		draft.MotivationText = strings.Repeat("a", 49)
		res := Validate(draft, openJob())

		require.Len(t, res.Errors, 1)
		assert.Equal(t, "motivation_text", res.Errors[0].Field)
		assert.Equal(t, KindTooShort, res.Errors[0].Kind)
	})

	t.Run("50_characters_pass", func(t *testing.T) {
		draft := validDraft()
		draft.MotivationText = strings.Repeat("a", 50)
		assert.True(t, Validate(draft, openJob()).Valid())
	})

	t.Run("counts_characters_not_bytes", func(t *testing.T) {
		draft := validDraft()
		draft.MotivationText = strings.Repeat("é", 50)
		assert.True(t, Validate(draft, openJob()).Valid())
	})
}

func TestValidate_ReportsAllFailuresAtOnce(t *testing.T) {
	draft := models.ApplicationDraft{
		FirstName:      "Ada",
		Email:          "not-an-email",
		MotivationText: "too short",
	}
	res := Validate(draft, gatedJob())

	assert.Equal(t, []string{"last_name", "email", "motivation_text", "nationality_answer"}, fields(res))
	assert.True(t, res.Ineligible())
}

func TestValidate_NationalityGate(t *testing.T) {
	t.Run("affirmative_answer_passes", func(t *testing.T) {
		draft := validDraft()
		draft.NationalityAnswer = "Yes"
		assert.True(t, Validate(draft, gatedJob()).Valid())
	})

	t.Run("case_insensitive_affirmative", func(t *testing.T) {
		draft := validDraft()
		draft.NationalityAnswer = "yes"
		assert.True(t, Validate(draft, gatedJob()).Valid())
	})

	t.Run("negative_answer_is_ineligible_even_when_rest_valid", func(t *testing.T) {
		draft := validDraft()
		draft.NationalityAnswer = "No"
		res := Validate(draft, gatedJob())

		require.Len(t, res.Errors, 1)
		assert.Equal(t, KindIneligible, res.Errors[0].Kind)
		assert.True(t, res.Ineligible())
	})

	t.Run("missing_answer_is_ineligible", func(t *testing.T) {
		res := Validate(validDraft(), gatedJob())
		assert.True(t, res.Ineligible())
	})

	t.Run("ungated_job_ignores_answer", func(t *testing.T) {
		draft := validDraft()
		draft.NationalityAnswer = "No"
		assert.True(t, Validate(draft, openJob()).Valid())
	})
}
