package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/llm"
	"github.com/dealscope/dealscope-engine/pkg/models"
)

func newTestClassifier(completion llm.CompletionClient) *Classifier {
	return NewClassifier(completion, zap.NewNop())
}

func TestClassifyFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     models.StatementType
	}{
		{"acme_income_statement_2024.csv", models.TypeIncomeStatement},
		{"Q3 P&L summary.xlsx", models.TypeIncomeStatement},
		{"balance_sheet_draft.pdf", models.TypeBalanceSheet},
		{"cashflow-2024.csv", models.TypeCashFlowStatement},
		{"stockholders equity.xlsx", models.TypeShareholdersEquity},
		{"financial_ratios_fy24.csv", models.TypeFinancialRatios},
		{"franchise_disclosure_item19.pdf", models.TypeFDD},
	}
	c := newTestClassifier(nil)
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := c.Classify(context.Background(), Input{Filename: tt.filename})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyFilenameBeatsContent(t *testing.T) {
	// The content reads like a balance sheet but the filename is explicit.
	in := Input{
		Filename:      "company_income_statement.csv",
		FileExtension: "csv",
		Content:       "Assets,Liabilities,Equity\n100,60,40\n",
	}
	c := newTestClassifier(nil)
	assert.Equal(t, models.TypeIncomeStatement, c.Classify(context.Background(), in))
}

func TestClassifyFromHeaders(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want models.StatementType
	}{
		{
			name: "income statement header combo",
			in: Input{
				FileExtension: "csv",
				Content:       "Revenue,Cost of Goods Sold,Gross Profit\n100,40,60\n",
			},
			want: models.TypeIncomeStatement,
		},
		{
			name: "balance sheet header combo",
			in: Input{
				FileExtension: "xlsx",
				Content:       "Assets,Liabilities,Equity\n",
			},
			want: models.TypeBalanceSheet,
		},
		{
			name: "cash flow header combo",
			in: Input{
				FileExtension: "csv",
				Content:       "Operating Activities,Investing Activities,Financing Activities\n",
			},
			want: models.TypeCashFlowStatement,
		},
	}
	c := newTestClassifier(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(context.Background(), tt.in))
		})
	}
}

func TestHeadersIgnoredForPDF(t *testing.T) {
	c := newTestClassifier(nil)
	_, ok := c.fromHeaders(context.Background(), Input{
		FileExtension: "pdf",
		Content:       "Assets,Liabilities,Equity\n",
	})
	assert.False(t, ok)
}

func TestClassifyFromPDFPatterns(t *testing.T) {
	c := newTestClassifier(nil)

	in := Input{
		FileExtension: "pdf",
		Content:       "ACME Corp Consolidated Balance Sheet as of December 31",
	}
	assert.Equal(t, models.TypeBalanceSheet, c.Classify(context.Background(), in))

	// The pattern window is the first page only.
	far := strings.Repeat("x", pdfScanLimit) + " franchise disclosure document"
	_, ok := c.fromPDFPatterns(context.Background(), Input{FileExtension: "pdf", Content: far})
	assert.False(t, ok, "patterns beyond the scan window must not match")
}

func TestClassifyRemoteAccepted(t *testing.T) {
	mock := &llm.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return "CASH_FLOW_STATEMENT\n", nil
		},
	}
	c := newTestClassifier(mock)

	got := c.Classify(context.Background(), Input{Content: "unremarkable text"})
	assert.Equal(t, models.TypeCashFlowStatement, got)
	assert.Equal(t, 1, mock.CompleteCalls)
}

func TestClassifyRemoteTruncatesContent(t *testing.T) {
	var sent string
	mock := &llm.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			sent = req.Prompt
			return "BALANCE_SHEET", nil
		},
	}
	c := newTestClassifier(mock)

	c.Classify(context.Background(), Input{Content: strings.Repeat("a", remoteContentLimit+500)})
	assert.Len(t, sent, remoteContentLimit)
}

func TestClassifyRemoteRejectsUnknownToken(t *testing.T) {
	mock := &llm.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return "GENERAL_LEDGER", nil
		},
	}
	c := newTestClassifier(mock)

	// Content scores confidently as a balance sheet; the invalid remote
	// answer must fall through to the keyword strategy.
	content := "marketable securities goodwill inventory accumulated depreciation " +
		"accrued expenses deferred revenue bonds payable notes payable retained earnings"
	got := c.Classify(context.Background(), Input{Content: content})
	assert.Equal(t, models.TypeBalanceSheet, got)
}

func TestClassifyRemoteErrorDegradesSilently(t *testing.T) {
	mock := &llm.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	c := newTestClassifier(mock)

	content := "net cash provided by operating activities capital expenditures free cash flow financing activities"
	got := c.Classify(context.Background(), Input{Content: content})
	assert.Equal(t, models.TypeCashFlowStatement, got)
}

func TestKeywordScoringDeterministic(t *testing.T) {
	c := newTestClassifier(nil)
	content := "gross profit operating income cost of goods sold revenue net income"

	first := c.fromKeywords(content)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, c.fromKeywords(content), "scoring must not depend on map order")
	}
	assert.Equal(t, models.TypeIncomeStatement, first)
}

func TestKeywordScoringDefaultsOnAmbiguity(t *testing.T) {
	c := newTestClassifier(nil)
	got := c.fromKeywords("the quick brown fox jumps over the lazy dog")
	assert.Equal(t, models.TypeIncomeStatement, got, "ambiguous content falls back to the documented default")
}

func TestHasPartialMatch(t *testing.T) {
	assert.True(t, hasPartialMatch("quarterly depreciation report", "depreciation and amortization"))
	assert.False(t, hasPartialMatch("a b c and of the", "and of the"), "short tokens are ignored")
}
