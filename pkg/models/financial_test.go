package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionResultDropsUnknownFields(t *testing.T) {
	payload := `{
		"income_statements": [
			{"id": "x", "revenue": 100, "made_up_field": "ignored"}
		]
	}`

	var res ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(payload), &res))
	require.Len(t, res.IncomeStatements, 1)
	require.NotNil(t, res.IncomeStatements[0].Revenue)
	assert.Equal(t, 100.0, *res.IncomeStatements[0].Revenue)
}

func TestStatementRecordsReturnsPointers(t *testing.T) {
	res := ExtractionResult{
		BalanceSheets: []BalanceSheet{{}},
	}

	records := res.StatementRecords(TypeBalanceSheet)
	require.Len(t, records, 1)
	records[0].SetIdentity("id-1", "co-1", "per-1")

	assert.Equal(t, "id-1", res.BalanceSheets[0].ID, "mutation must reach the slice element")
	assert.Equal(t, "co-1", res.BalanceSheets[0].CompanyID)
	assert.Equal(t, "per-1", res.BalanceSheets[0].ReportingPeriod)
}

func TestEnsureSections(t *testing.T) {
	var res ExtractionResult
	res.EnsureSections()

	data, err := json.Marshal(&res)
	require.NoError(t, err)
	for _, key := range []string{
		"companies", "periods", "income_statements", "balance_sheets",
		"cash_flow_statements", "financial_ratios", "fdd_analysis",
		"statements_of_shareholders_equity",
	} {
		assert.Contains(t, string(data), `"`+key+`":[]`)
	}
}
