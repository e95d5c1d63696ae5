package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementTypeTable(t *testing.T) {
	tests := []struct {
		name string
		t    StatementType
		want string
	}{
		{"income statement pluralizes", TypeIncomeStatement, "income_statements"},
		{"balance sheet pluralizes", TypeBalanceSheet, "balance_sheets"},
		{"cash flow pluralizes", TypeCashFlowStatement, "cash_flow_statements"},
		{"ratios uses override", TypeFinancialRatios, "financial_ratios"},
		{"fdd uses override", TypeFDD, "fdd_analysis"},
		{"equity uses override", TypeShareholdersEquity, "statements_of_shareholders_equity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.Table())
		})
	}
}

func TestParseStatementType(t *testing.T) {
	got, err := ParseStatementType("  BALANCE_SHEET\n")
	require.NoError(t, err)
	assert.Equal(t, TypeBalanceSheet, got)

	_, err = ParseStatementType("balance_sheet")
	assert.Error(t, err, "parsing is case significant")

	_, err = ParseStatementType("LEDGER")
	assert.Error(t, err)
}

func TestAllStatementTypesAreValid(t *testing.T) {
	for _, st := range AllStatementTypes {
		assert.True(t, st.Valid(), string(st))
	}
}
