package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExplanationJSON_Valid(t *testing.T) {
	payload := `{
		"evidence_summary": "Observed 5 learning sessions across 4 days.",
		"observed_growth_trends": ["Repeated practice across days"],
		"limitations": "Early evidence only, not proof of proficiency."
	}`

	assert.NoError(t, ValidateExplanationJSON([]byte(payload)))
}

func TestValidateExplanationJSON_SummaryOnly(t *testing.T) {
	payload := `{"evidence_summary": "Some evidence."}`

	assert.NoError(t, ValidateExplanationJSON([]byte(payload)))
}

func TestValidateExplanationJSON_EmptyObject(t *testing.T) {
	err := ValidateExplanationJSON([]byte(`{}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateExplanationJSON_EmptySummary(t *testing.T) {
	err := ValidateExplanationJSON([]byte(`{"evidence_summary": ""}`))
	assert.Error(t, err)
}

func TestValidateExplanationJSON_WrongTypes(t *testing.T) {
	err := ValidateExplanationJSON([]byte(`{"evidence_summary": 42}`))
	assert.Error(t, err)

	err = ValidateExplanationJSON([]byte(`{"evidence_summary": "ok", "observed_growth_trends": "not-a-list"}`))
	assert.Error(t, err)
}

func TestValidateExplanationJSON_UnknownField(t *testing.T) {
	// The collaborator may never smuggle decision fields into its output.
	err := ValidateExplanationJSON([]byte(`{"evidence_summary": "ok", "unlocked": true}`))
	assert.Error(t, err)
}

func TestValidateExplanationJSON_NotJSON(t *testing.T) {
	err := ValidateExplanationJSON([]byte(`this is not json`))
	assert.Error(t, err)
}

func TestValidateExplanationJSON_NotAnObject(t *testing.T) {
	err := ValidateExplanationJSON([]byte(`["a", "b"]`))
	assert.Error(t, err)
}
