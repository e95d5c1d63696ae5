package models

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"
)

// StatementType is the closed set of financial document categories the
// pipeline recognizes. The string values are the exact tokens the remote
// classifier is allowed to answer with, so they double as wire format.
type StatementType string

const (
	TypeIncomeStatement    StatementType = "INCOME_STATEMENT"
	TypeBalanceSheet       StatementType = "BALANCE_SHEET"
	TypeCashFlowStatement  StatementType = "CASH_FLOW_STATEMENT"
	TypeShareholdersEquity StatementType = "STATEMENT_OF_SHAREHOLDERS_EQUITY"
	TypeFDD                StatementType = "FDD"
	TypeFinancialRatios    StatementType = "FINANCIAL_RATIOS"
)

// AllStatementTypes lists every recognized type in a stable order.
var AllStatementTypes = []StatementType{
	TypeIncomeStatement,
	TypeBalanceSheet,
	TypeCashFlowStatement,
	TypeShareholdersEquity,
	TypeFDD,
	TypeFinancialRatios,
}

// tableOverrides covers the types whose table name is not the plural of the
// lower-cased type name.
var tableOverrides = map[StatementType]string{
	TypeShareholdersEquity: "statements_of_shareholders_equity",
	TypeFDD:                "fdd_analysis",
	TypeFinancialRatios:    "financial_ratios",
}

// Valid reports whether t is one of the recognized statement types.
func (t StatementType) Valid() bool {
	switch t {
	case TypeIncomeStatement, TypeBalanceSheet, TypeCashFlowStatement,
		TypeShareholdersEquity, TypeFDD, TypeFinancialRatios:
		return true
	}
	return false
}

// Table returns the relational table (and JSON section key) this type maps to.
func (t StatementType) Table() string {
	if table, ok := tableOverrides[t]; ok {
		return table
	}
	return inflection.Plural(strings.ToLower(string(t)))
}

// ParseStatementType validates a raw string against the enumeration.
// Input is trimmed but case is significant, matching the classifier contract.
func ParseStatementType(s string) (StatementType, error) {
	t := StatementType(strings.TrimSpace(s))
	if !t.Valid() {
		return "", fmt.Errorf("unknown statement type %q", s)
	}
	return t, nil
}
