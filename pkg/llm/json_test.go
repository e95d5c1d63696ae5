package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
)

func TestExtractJSONFenced(t *testing.T) {
	response := "Here is the data:\n```json\n{\"revenue\": 100}\n```\nDone."

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"revenue": 100}`, got)
}

func TestExtractJSONBareFence(t *testing.T) {
	response := "```\n{\"a\": 1}\n```"

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, got)
}

func TestExtractJSONBraceSpan(t *testing.T) {
	response := `The extracted payload is {"a": {"b": 2}} as requested.`

	got, err := ExtractJSON(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"b": 2}}`, got)
}

func TestExtractJSONNoneFound(t *testing.T) {
	_, err := ExtractJSON("I could not read the document, sorry.")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNoJSONFound)
}

type payload struct {
	Revenue float64 `json:"revenue"`
}

func TestParseJSONResponse(t *testing.T) {
	got, err := ParseJSONResponse[payload]("```json\n{\"revenue\": 42}\n```")
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.Revenue)
}

func TestParseJSONResponseRepairsTrailingComma(t *testing.T) {
	got, err := ParseJSONResponse[payload](`{"revenue": 42,}`)
	require.NoError(t, err, "repairable output must not fail the run")
	assert.Equal(t, 42.0, got.Revenue)
}

func TestParseJSONResponseEmpty(t *testing.T) {
	_, err := ParseJSONResponse[payload]("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNoJSONFound)
}
