// Package prompts holds the per-statement-type extraction templates and the
// builder that renders a complete instruction string for the completion
// client. Each template shows the model the exact JSON structure expected
// for that statement type, with example values and placeholder identifiers
// (reconciliation later replaces every identifier regardless).
package prompts

import (
	"fmt"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
	"github.com/dealscope/dealscope-engine/pkg/models"
)

const companiesAndPeriodsExemplar = `"companies": [
    {
      "company_id": "a1f0b1da-2ee8-4246-974c-52d7ecc01981",
      "company_name": "Company Name",
      "ticker_symbol": null,
      "industry": null,
      "country": null
    }
  ],
  "periods": [
    {
      "period_id": "d18c8951-501f-4b84-9ec7-85c583a807f2",
      "period_start_date": "2023-01-01",
      "period_end_date": "2023-12-31",
      "fiscal_year": 2023,
      "fiscal_quarter": 1,
      "period_type": "annual"
    }
  ]`

var templates = map[models.StatementType]string{
	models.TypeIncomeStatement: `You are a M&A analyst. You are analyzing an Income Statement. Extract the financial data and return it in this exact format:
{
  ` + companiesAndPeriodsExemplar + `,
  "income_statements": [
    {
      "id": "6aca8ff3-47dd-4b44-865f-871add4dcf78",
      "company_id": "a1f0b1da-2ee8-4246-974c-52d7ecc01981",
      "reporting_period": "d18c8951-501f-4b84-9ec7-85c583a807f2",
      "fiscal_year": 2023,
      "fiscal_quarter": 1,
      "revenue": 1000000,
      "cost_of_goods_sold": 600000,
      "gross_profit": 400000,
      "operating_expenses": 150000,
      "selling_general_administrative_expenses": 100000,
      "research_development_expenses": 30000,
      "other_operating_expenses": 20000,
      "operating_income": 210000,
      "interest_expense": 10000,
      "interest_income": 2000,
      "other_income_expense_net": 5000,
      "earnings_before_tax": 213000,
      "income_tax_expense": 53000,
      "net_income": 160000,
      "preferred_dividends": 0,
      "net_income_available_to_common": 160000,
      "weighted_average_shares_outstanding_basic": 1000000,
      "weighted_average_shares_outstanding_diluted": 1050000,
      "earnings_per_share_basic": 0.16,
      "earnings_per_share_diluted": 0.152
    }
  ]
}`,

	models.TypeBalanceSheet: `You are a M&A analyst. You are analyzing a Balance Sheet. Extract the financial data and return it in this exact format:
{
  ` + companiesAndPeriodsExemplar + `,
  "balance_sheets": [
    {
      "id": "6aca8ff3-47dd-4b44-865f-871add4dcf78",
      "company_id": "a1f0b1da-2ee8-4246-974c-52d7ecc01981",
      "reporting_period": "d18c8951-501f-4b84-9ec7-85c583a807f2",
      "fiscal_year": 2023,
      "fiscal_quarter": 1,
      "cash_and_cash_equivalents": 200000,
      "short_term_investments": 50000,
      "accounts_receivable": 150000,
      "allowance_for_doubtful_accounts": 5000,
      "net_accounts_receivable": 145000,
      "inventory": 200000,
      "other_current_assets": 50000,
      "total_current_assets": 445000,
      "property_plant_equipment_gross": 600000,
      "accumulated_depreciation": 100000,
      "property_plant_equipment_net": 500000,
      "goodwill": 100000,
      "intangible_assets": 50000,
      "other_long_term_assets": 25000,
      "total_non_current_assets": 675000,
      "total_assets": 1120000,
      "accounts_payable": 90000,
      "accrued_liabilities": 30000,
      "short_term_debt": 20000,
      "current_portion_of_long_term_debt": 10000,
      "other_current_liabilities": 20000,
      "total_current_liabilities": 170000,
      "long_term_debt": 300000,
      "deferred_tax_liabilities": 25000,
      "other_non_current_liabilities": 50000,
      "total_non_current_liabilities": 375000,
      "total_liabilities": 545000,
      "common_stock": 50000,
      "additional_paid_in_capital": 200000,
      "retained_earnings": 100000,
      "accumulated_other_comprehensive_income": 5000,
      "treasury_stock": -20000,
      "total_shareholders_equity": 575000,
      "total_liabilities_and_equity": 1120000
    }
  ]
}`,

	models.TypeCashFlowStatement: `You are a M&A analyst. You are analyzing a Cash Flow Statement. Extract the financial data and return it in this exact format:
{
  ` + companiesAndPeriodsExemplar + `,
  "cash_flow_statements": [
    {
      "id": "6aca8ff3-47dd-4b44-865f-871add4dcf78",
      "company_id": "a1f0b1da-2ee8-4246-974c-52d7ecc01981",
      "reporting_period": "d18c8951-501f-4b84-9ec7-85c583a807f2",
      "fiscal_year": 2023,
      "fiscal_quarter": 1,
      "net_income": 160000,
      "depreciation_and_amortization": 50000,
      "stock_based_compensation": 10000,
      "other_non_cash_items": 5000,
      "change_in_accounts_receivable": -20000,
      "change_in_inventory": -15000,
      "change_in_accounts_payable": 10000,
      "change_in_other_working_capital": 5000,
      "cash_flow_from_operations": 205000,
      "capital_expenditures": -80000,
      "investments_in_intangibles": -10000,
      "proceeds_from_sale_of_assets": 5000,
      "other_investing_activities": 0,
      "cash_flow_from_investing": -85000,
      "issuance_of_debt": 50000,
      "repayment_of_debt": -30000,
      "issuance_of_equity": 0,
      "repurchase_of_stock": -20000,
      "dividends_paid": -40000,
      "other_financing_activities": 0,
      "cash_flow_from_financing": -40000,
      "effect_of_exchange_rate_changes_on_cash": 0,
      "net_increase_decrease_in_cash": 80000,
      "cash_at_beginning_of_period": 120000,
      "cash_at_end_of_period": 200000
    }
  ]
}`,

	models.TypeFinancialRatios: `You are a M&A analyst. You are analyzing Financial Ratios. Extract the financial data and return it in this exact format:
{
  ` + companiesAndPeriodsExemplar + `,
  "financial_ratios": [
    {
      "id": "6aca8ff3-47dd-4b44-865f-871add4dcf78",
      "company_id": "a1f0b1da-2ee8-4246-974c-52d7ecc01981",
      "reporting_period": "d18c8951-501f-4b84-9ec7-85c583a807f2",
      "fiscal_year": 2023,
      "fiscal_quarter": 1,
      "gross_margin": 0.4,
      "operating_margin": 0.21,
      "net_margin": 0.16,
      "return_on_assets": 0.14,
      "return_on_equity": 0.28,
      "return_on_invested_capital": 0.18,
      "current_ratio": 2.6,
      "quick_ratio": 1.4,
      "inventory_turnover": 3.0,
      "receivables_turnover": 6.7,
      "asset_turnover": 0.9,
      "debt_to_equity": 0.57,
      "debt_to_ebitda": 1.2,
      "interest_coverage_ratio": 21.0,
      "price_to_earnings": 15.0,
      "price_to_book": 4.2,
      "enterprise_value": 2500000,
      "ev_to_ebitda": 9.6,
      "ev_to_ebit": 11.9,
      "revenue_growth_rate": 0.12,
      "ebitda_growth_rate": 0.1,
      "net_income_growth_rate": 0.08,
      "free_cash_flow": 125000,
      "unlevered_free_cash_flow": 135000,
      "levered_free_cash_flow": 115000,
      "dividend_yield": 0.025,
      "payout_ratio": 0.25
    }
  ]
}`,

	models.TypeFDD: `You are a M&A analyst. You are analyzing a Franchise Disclosure Document (FDD). Extract the relevant franchise data and return it in this exact format:
{
  ` + companiesAndPeriodsExemplar + `,
  "fdd_analysis": [
    {
      "id": "6aca8ff3-47dd-4b44-865f-871add4dcf78",
      "company_id": "a1f0b1da-2ee8-4246-974c-52d7ecc01981",
      "reporting_period": "d18c8951-501f-4b84-9ec7-85c583a807f2",
      "fiscal_year": 2023,
      "franchise_fee": 35000,
      "royalty_fee_percentage": 0.05,
      "ad_fund_fee_percentage": 0.02,
      "term_of_agreement_years": 10,
      "renewal_terms": 1,
      "territory_protection": true,
      "training_programs_included": ["classroom", "on-site"],
      "initial_investment_range_low": 100000,
      "initial_investment_range_high": 200000,
      "other_fees": [
        { "name": "technology fee", "amount": 5000 },
        { "name": "local marketing", "amount": 3000 }
      ],
      "legal_disclaimers": "Some standard disclaimers here",
      "key_items_section": {
        "item_1": "The Franchisor and any Parents/Affiliates",
        "item_5": "Initial Fees",
        "item_7": "Estimated Initial Investment",
        "item_12": "Territory",
        "item_19": "Financial Performance Representations",
        "item_21": "Financial Statements"
      },
      "date_of_issuance": "2023-12-31"
    }
  ]
}`,

	models.TypeShareholdersEquity: `You are a M&A analyst. You are analyzing a Statement of Shareholders' Equity. Extract the relevant data and return it in this exact format:
{
  ` + companiesAndPeriodsExemplar + `,
  "statements_of_shareholders_equity": [
    {
      "id": "6aca8ff3-47dd-4b44-865f-871add4dcf78",
      "company_id": "a1f0b1da-2ee8-4246-974c-52d7ecc01981",
      "reporting_period": "d18c8951-501f-4b84-9ec7-85c583a807f2",
      "fiscal_year": 2023,
      "fiscal_quarter": 1,
      "common_stock": 50000,
      "preferred_stock": 0,
      "additional_paid_in_capital": 200000,
      "retained_earnings_beginning": 150000,
      "net_income": 40000,
      "dividends_paid": -10000,
      "other_comprehensive_income": 3000,
      "treasury_stock": -5000,
      "ending_retained_earnings": 180000,
      "total_shareholders_equity": 472000
    }
  ]
}`,
}

const extractionRules = `

RULES:
1. ALL numbers must be actual numbers (1000000), not strings ("1000000")
2. ALL dates must be in YYYY-MM-DD format
3. Use null for unknown values
4. Keep EXACTLY this structure
5. Include AT LEAST company_name and fiscal_year
6. NO additional fields
7. NO markdown
8. NO explanations
9. ONLY the JSON object

For CSV/XLSX files:
- First row often contains headers
- Look for columns that match financial metrics
- Convert any currency values to numbers
- Remove any currency symbols or commas
- Dates must be YYYY-MM-DD

For PDF files:
- The data may be unstructured text, do your best to find the relevant financial info
- Follow the same rules above

Content to analyze:
`

// BuildPrompt renders the complete instruction string for the given
// statement type with the document content appended verbatim. Content is not
// truncated here; callers that bound prompt size do so before calling.
func BuildPrompt(t models.StatementType, content string) (string, error) {
	template, ok := templates[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownTemplate, t)
	}
	return template + extractionRules + content, nil
}

// ExtractionSystemMessage frames the extraction completion call.
const ExtractionSystemMessage = "You are a financial document analyzer. Extract structured data from financial documents into JSON format following the provided rules exactly."

// ClassificationSystemMessage constrains the remote classifier to the exact
// enumerated type tokens. Anything else the model answers is discarded.
const ClassificationSystemMessage = `You are a financial document classifier. Analyze the given document content and determine its type.
Return ONLY ONE of these exact types: INCOME_STATEMENT, BALANCE_SHEET, CASH_FLOW_STATEMENT, STATEMENT_OF_SHAREHOLDERS_EQUITY, FDD, FINANCIAL_RATIOS

Rules:
1. Return ONLY the type, no explanation
2. Be case sensitive
3. If unsure, default to INCOME_STATEMENT
4. NO additional text or formatting

Document content to analyze:`
