package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealscope/dealscope-engine/pkg/models"
)

func float64Ptr(v float64) *float64 { return &v }

func TestReconcileOverwritesModelIdentifiers(t *testing.T) {
	res := models.ExtractionResult{
		Companies: []models.Company{{CompanyID: "model-made-this-up", CompanyName: "ACME"}},
		Periods:   []models.Period{{PeriodID: "also-made-up", FiscalYear: 2023, PeriodType: "ANNUAL"}},
		IncomeStatements: []models.IncomeStatement{{
			StatementHeader: models.StatementHeader{
				ID:              "bogus",
				CompanyID:       "bogus",
				ReportingPeriod: "bogus",
			},
			Revenue: float64Ptr(100),
		}},
	}

	companyID, periodID := reconcile(&res, "acme.csv", time.Now())

	_, err := uuid.Parse(companyID)
	require.NoError(t, err, "company id must be a freshly generated UUID")
	_, err = uuid.Parse(periodID)
	require.NoError(t, err)

	assert.Equal(t, companyID, res.Companies[0].CompanyID)
	assert.Equal(t, "ACME", res.Companies[0].CompanyName, "model content other than identity is kept")

	row := res.IncomeStatements[0]
	assert.Equal(t, companyID, row.CompanyID)
	assert.Equal(t, periodID, row.ReportingPeriod)
	_, err = uuid.Parse(row.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, *row.Revenue)
}

func TestReconcileSynthesizesCompanyFromFilename(t *testing.T) {
	var res models.ExtractionResult

	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	_, _ = reconcile(&res, "Joes_Pizza_Financials.xlsx", now)

	require.Len(t, res.Companies, 1)
	assert.Equal(t, "Joes Pizza Financials", res.Companies[0].CompanyName)

	require.Len(t, res.Periods, 1)
	p := res.Periods[0]
	assert.Equal(t, "2026-01-01", p.PeriodStartDate)
	assert.Equal(t, "2026-12-31", p.PeriodEndDate)
	assert.Equal(t, 2026, p.FiscalYear)
	assert.Equal(t, "ANNUAL", p.PeriodType)
	assert.Nil(t, p.FiscalQuarter)
}

func TestReconcileRewritesEverySection(t *testing.T) {
	res := models.ExtractionResult{
		BalanceSheets:      []models.BalanceSheet{{}, {}},
		CashFlowStatements: []models.CashFlowStatement{{}},
	}

	companyID, periodID := reconcile(&res, "statements.pdf", time.Now())

	seen := map[string]bool{}
	for _, tpe := range models.AllStatementTypes {
		for _, rec := range res.StatementRecords(tpe) {
			h := rec.Header()
			assert.Equal(t, companyID, h.CompanyID)
			assert.Equal(t, periodID, h.ReportingPeriod)
			assert.False(t, seen[h.ID], "row ids must be unique")
			seen[h.ID] = true
		}
	}
	assert.Len(t, seen, 3)
}
