package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/models"
)

func TestBuildPromptAppendsContentVerbatim(t *testing.T) {
	content := "Revenue,Expenses\n100,40\n"

	prompt, err := BuildPrompt(models.TypeIncomeStatement, content)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(prompt, content), "content must be the final section, unmodified")
	assert.Contains(t, prompt, "RULES:")
	assert.Contains(t, prompt, "income_statements")
}

func TestBuildPromptCoversAllTypes(t *testing.T) {
	for _, st := range models.AllStatementTypes {
		prompt, err := BuildPrompt(st, "x")
		require.NoError(t, err, string(st))
		assert.Contains(t, prompt, "Content to analyze:", string(st))
	}
}

func TestBuildPromptUnknownType(t *testing.T) {
	_, err := BuildPrompt(models.StatementType("LEDGER"), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownTemplate)
}

func TestClassificationSystemMessageListsAllTypes(t *testing.T) {
	for _, st := range models.AllStatementTypes {
		assert.Contains(t, ClassificationSystemMessage, string(st))
	}
}
