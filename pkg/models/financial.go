package models

// The extraction payload schema. Every numeric field is a pointer so the
// model can answer null for unknowns without zero being conflated with
// missing; unknown keys in model output are dropped by encoding/json rather
// than passed through to the database.

// Company is a lightweight identity record scoped to one analysis run.
type Company struct {
	CompanyID    string  `json:"company_id"`
	CompanyName  string  `json:"company_name"`
	TickerSymbol *string `json:"ticker_symbol"`
	Industry     *string `json:"industry"`
	Country      *string `json:"country"`
}

// Period is the reporting period referenced by statement rows.
type Period struct {
	PeriodID        string `json:"period_id"`
	PeriodStartDate string `json:"period_start_date"`
	PeriodEndDate   string `json:"period_end_date"`
	FiscalYear      int    `json:"fiscal_year"`
	FiscalQuarter   *int   `json:"fiscal_quarter"`
	PeriodType      string `json:"period_type"`
}

// StatementHeader carries the identity and period fields common to every
// statement row. Identity values coming from the model are never trusted;
// reconciliation overwrites them via SetIdentity.
type StatementHeader struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	ReportingPeriod string `json:"reporting_period"`
	FiscalYear      *int   `json:"fiscal_year"`
	FiscalQuarter   *int   `json:"fiscal_quarter,omitempty"`
}

// SetIdentity rewrites the row's primary key and foreign-key-like references
// to the canonical values chosen during reconciliation.
func (h *StatementHeader) SetIdentity(id, companyID, periodID string) {
	h.ID = id
	h.CompanyID = companyID
	h.ReportingPeriod = periodID
}

// Header returns the embedded header so callers holding a StatementRecord
// can read identity fields without a type switch.
func (h *StatementHeader) Header() *StatementHeader {
	return h
}

// StatementRecord is implemented by every per-type statement row.
type StatementRecord interface {
	SetIdentity(id, companyID, periodID string)
	Header() *StatementHeader
}

type IncomeStatement struct {
	StatementHeader
	Revenue                                 *float64 `json:"revenue"`
	CostOfGoodsSold                         *float64 `json:"cost_of_goods_sold"`
	GrossProfit                             *float64 `json:"gross_profit"`
	OperatingExpenses                       *float64 `json:"operating_expenses"`
	SellingGeneralAdministrativeExpenses    *float64 `json:"selling_general_administrative_expenses"`
	ResearchDevelopmentExpenses             *float64 `json:"research_development_expenses"`
	OtherOperatingExpenses                  *float64 `json:"other_operating_expenses"`
	OperatingIncome                         *float64 `json:"operating_income"`
	InterestExpense                         *float64 `json:"interest_expense"`
	InterestIncome                          *float64 `json:"interest_income"`
	OtherIncomeExpenseNet                   *float64 `json:"other_income_expense_net"`
	EarningsBeforeTax                       *float64 `json:"earnings_before_tax"`
	IncomeTaxExpense                        *float64 `json:"income_tax_expense"`
	NetIncome                               *float64 `json:"net_income"`
	PreferredDividends                      *float64 `json:"preferred_dividends"`
	NetIncomeAvailableToCommon              *float64 `json:"net_income_available_to_common"`
	WeightedAverageSharesOutstandingBasic   *float64 `json:"weighted_average_shares_outstanding_basic"`
	WeightedAverageSharesOutstandingDiluted *float64 `json:"weighted_average_shares_outstanding_diluted"`
	EarningsPerShareBasic                   *float64 `json:"earnings_per_share_basic"`
	EarningsPerShareDiluted                 *float64 `json:"earnings_per_share_diluted"`
}

type BalanceSheet struct {
	StatementHeader
	CashAndCashEquivalents              *float64 `json:"cash_and_cash_equivalents"`
	ShortTermInvestments                *float64 `json:"short_term_investments"`
	AccountsReceivable                  *float64 `json:"accounts_receivable"`
	AllowanceForDoubtfulAccounts        *float64 `json:"allowance_for_doubtful_accounts"`
	NetAccountsReceivable               *float64 `json:"net_accounts_receivable"`
	Inventory                           *float64 `json:"inventory"`
	OtherCurrentAssets                  *float64 `json:"other_current_assets"`
	TotalCurrentAssets                  *float64 `json:"total_current_assets"`
	PropertyPlantEquipmentGross         *float64 `json:"property_plant_equipment_gross"`
	AccumulatedDepreciation             *float64 `json:"accumulated_depreciation"`
	PropertyPlantEquipmentNet           *float64 `json:"property_plant_equipment_net"`
	Goodwill                            *float64 `json:"goodwill"`
	IntangibleAssets                    *float64 `json:"intangible_assets"`
	OtherLongTermAssets                 *float64 `json:"other_long_term_assets"`
	TotalNonCurrentAssets               *float64 `json:"total_non_current_assets"`
	TotalAssets                         *float64 `json:"total_assets"`
	AccountsPayable                     *float64 `json:"accounts_payable"`
	AccruedLiabilities                  *float64 `json:"accrued_liabilities"`
	ShortTermDebt                       *float64 `json:"short_term_debt"`
	CurrentPortionOfLongTermDebt        *float64 `json:"current_portion_of_long_term_debt"`
	OtherCurrentLiabilities             *float64 `json:"other_current_liabilities"`
	TotalCurrentLiabilities             *float64 `json:"total_current_liabilities"`
	LongTermDebt                        *float64 `json:"long_term_debt"`
	DeferredTaxLiabilities              *float64 `json:"deferred_tax_liabilities"`
	OtherNonCurrentLiabilities          *float64 `json:"other_non_current_liabilities"`
	TotalNonCurrentLiabilities          *float64 `json:"total_non_current_liabilities"`
	TotalLiabilities                    *float64 `json:"total_liabilities"`
	CommonStock                         *float64 `json:"common_stock"`
	AdditionalPaidInCapital             *float64 `json:"additional_paid_in_capital"`
	RetainedEarnings                    *float64 `json:"retained_earnings"`
	AccumulatedOtherComprehensiveIncome *float64 `json:"accumulated_other_comprehensive_income"`
	TreasuryStock                       *float64 `json:"treasury_stock"`
	TotalShareholdersEquity             *float64 `json:"total_shareholders_equity"`
	TotalLiabilitiesAndEquity           *float64 `json:"total_liabilities_and_equity"`
}

type CashFlowStatement struct {
	StatementHeader
	NetIncome                         *float64 `json:"net_income"`
	DepreciationAndAmortization       *float64 `json:"depreciation_and_amortization"`
	StockBasedCompensation            *float64 `json:"stock_based_compensation"`
	OtherNonCashItems                 *float64 `json:"other_non_cash_items"`
	ChangeInAccountsReceivable        *float64 `json:"change_in_accounts_receivable"`
	ChangeInInventory                 *float64 `json:"change_in_inventory"`
	ChangeInAccountsPayable           *float64 `json:"change_in_accounts_payable"`
	ChangeInOtherWorkingCapital       *float64 `json:"change_in_other_working_capital"`
	CashFlowFromOperations            *float64 `json:"cash_flow_from_operations"`
	CapitalExpenditures               *float64 `json:"capital_expenditures"`
	InvestmentsInIntangibles          *float64 `json:"investments_in_intangibles"`
	ProceedsFromSaleOfAssets          *float64 `json:"proceeds_from_sale_of_assets"`
	OtherInvestingActivities          *float64 `json:"other_investing_activities"`
	CashFlowFromInvesting             *float64 `json:"cash_flow_from_investing"`
	IssuanceOfDebt                    *float64 `json:"issuance_of_debt"`
	RepaymentOfDebt                   *float64 `json:"repayment_of_debt"`
	IssuanceOfEquity                  *float64 `json:"issuance_of_equity"`
	RepurchaseOfStock                 *float64 `json:"repurchase_of_stock"`
	DividendsPaid                     *float64 `json:"dividends_paid"`
	OtherFinancingActivities          *float64 `json:"other_financing_activities"`
	CashFlowFromFinancing             *float64 `json:"cash_flow_from_financing"`
	EffectOfExchangeRateChangesOnCash *float64 `json:"effect_of_exchange_rate_changes_on_cash"`
	NetIncreaseDecreaseInCash         *float64 `json:"net_increase_decrease_in_cash"`
	CashAtBeginningOfPeriod           *float64 `json:"cash_at_beginning_of_period"`
	CashAtEndOfPeriod                 *float64 `json:"cash_at_end_of_period"`
}

type FinancialRatios struct {
	StatementHeader
	GrossMargin             *float64 `json:"gross_margin"`
	OperatingMargin         *float64 `json:"operating_margin"`
	NetMargin               *float64 `json:"net_margin"`
	ReturnOnAssets          *float64 `json:"return_on_assets"`
	ReturnOnEquity          *float64 `json:"return_on_equity"`
	ReturnOnInvestedCapital *float64 `json:"return_on_invested_capital"`
	CurrentRatio            *float64 `json:"current_ratio"`
	QuickRatio              *float64 `json:"quick_ratio"`
	InventoryTurnover       *float64 `json:"inventory_turnover"`
	ReceivablesTurnover     *float64 `json:"receivables_turnover"`
	AssetTurnover           *float64 `json:"asset_turnover"`
	DebtToEquity            *float64 `json:"debt_to_equity"`
	DebtToEBITDA            *float64 `json:"debt_to_ebitda"`
	InterestCoverageRatio   *float64 `json:"interest_coverage_ratio"`
	PriceToEarnings         *float64 `json:"price_to_earnings"`
	PriceToBook             *float64 `json:"price_to_book"`
	EnterpriseValue         *float64 `json:"enterprise_value"`
	EVToEBITDA              *float64 `json:"ev_to_ebitda"`
	EVToEBIT                *float64 `json:"ev_to_ebit"`
	RevenueGrowthRate       *float64 `json:"revenue_growth_rate"`
	EBITDAGrowthRate        *float64 `json:"ebitda_growth_rate"`
	NetIncomeGrowthRate     *float64 `json:"net_income_growth_rate"`
	FreeCashFlow            *float64 `json:"free_cash_flow"`
	UnleveredFreeCashFlow   *float64 `json:"unlevered_free_cash_flow"`
	LeveredFreeCashFlow     *float64 `json:"levered_free_cash_flow"`
	DividendYield           *float64 `json:"dividend_yield"`
	PayoutRatio             *float64 `json:"payout_ratio"`
}

// FDDFee is a named ancillary fee disclosed in an FDD.
type FDDFee struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
}

type FDDAnalysis struct {
	StatementHeader
	FranchiseFee               *float64          `json:"franchise_fee"`
	RoyaltyFeePercentage       *float64          `json:"royalty_fee_percentage"`
	AdFundFeePercentage        *float64          `json:"ad_fund_fee_percentage"`
	TermOfAgreementYears       *int              `json:"term_of_agreement_years"`
	RenewalTerms               *int              `json:"renewal_terms"`
	TerritoryProtection        *bool             `json:"territory_protection"`
	TrainingProgramsIncluded   []string          `json:"training_programs_included"`
	InitialInvestmentRangeLow  *float64          `json:"initial_investment_range_low"`
	InitialInvestmentRangeHigh *float64          `json:"initial_investment_range_high"`
	OtherFees                  []FDDFee          `json:"other_fees"`
	LegalDisclaimers           *string           `json:"legal_disclaimers"`
	KeyItemsSection            map[string]string `json:"key_items_section"`
	DateOfIssuance             *string           `json:"date_of_issuance"`
}

type ShareholdersEquityStatement struct {
	StatementHeader
	CommonStock               *float64 `json:"common_stock"`
	PreferredStock            *float64 `json:"preferred_stock"`
	AdditionalPaidInCapital   *float64 `json:"additional_paid_in_capital"`
	RetainedEarningsBeginning *float64 `json:"retained_earnings_beginning"`
	NetIncome                 *float64 `json:"net_income"`
	DividendsPaid             *float64 `json:"dividends_paid"`
	OtherComprehensiveIncome  *float64 `json:"other_comprehensive_income"`
	TreasuryStock             *float64 `json:"treasury_stock"`
	EndingRetainedEarnings    *float64 `json:"ending_retained_earnings"`
	TotalShareholdersEquity   *float64 `json:"total_shareholders_equity"`
}

// ExtractionResult is the parsed extraction payload. Mandatory sections are
// companies and periods; exactly one statement section is normally populated,
// but reconciliation handles any combination the model returns.
type ExtractionResult struct {
	Companies          []Company                     `json:"companies"`
	Periods            []Period                      `json:"periods"`
	IncomeStatements   []IncomeStatement             `json:"income_statements"`
	BalanceSheets      []BalanceSheet                `json:"balance_sheets"`
	CashFlowStatements []CashFlowStatement           `json:"cash_flow_statements"`
	FinancialRatios    []FinancialRatios             `json:"financial_ratios"`
	FDDAnalyses        []FDDAnalysis                 `json:"fdd_analysis"`
	ShareholdersEquity []ShareholdersEquityStatement `json:"statements_of_shareholders_equity"`
}

// EnsureSections replaces nil sections with empty slices so downstream code
// never dereferences an absent section.
func (r *ExtractionResult) EnsureSections() {
	if r.Companies == nil {
		r.Companies = []Company{}
	}
	if r.Periods == nil {
		r.Periods = []Period{}
	}
	if r.IncomeStatements == nil {
		r.IncomeStatements = []IncomeStatement{}
	}
	if r.BalanceSheets == nil {
		r.BalanceSheets = []BalanceSheet{}
	}
	if r.CashFlowStatements == nil {
		r.CashFlowStatements = []CashFlowStatement{}
	}
	if r.FinancialRatios == nil {
		r.FinancialRatios = []FinancialRatios{}
	}
	if r.FDDAnalyses == nil {
		r.FDDAnalyses = []FDDAnalysis{}
	}
	if r.ShareholdersEquity == nil {
		r.ShareholdersEquity = []ShareholdersEquityStatement{}
	}
}

// StatementRecords returns mutable references to the rows of the section
// belonging to t. An unknown type yields nil.
func (r *ExtractionResult) StatementRecords(t StatementType) []StatementRecord {
	var records []StatementRecord
	switch t {
	case TypeIncomeStatement:
		for i := range r.IncomeStatements {
			records = append(records, &r.IncomeStatements[i])
		}
	case TypeBalanceSheet:
		for i := range r.BalanceSheets {
			records = append(records, &r.BalanceSheets[i])
		}
	case TypeCashFlowStatement:
		for i := range r.CashFlowStatements {
			records = append(records, &r.CashFlowStatements[i])
		}
	case TypeFinancialRatios:
		for i := range r.FinancialRatios {
			records = append(records, &r.FinancialRatios[i])
		}
	case TypeFDD:
		for i := range r.FDDAnalyses {
			records = append(records, &r.FDDAnalyses[i])
		}
	case TypeShareholdersEquity:
		for i := range r.ShareholdersEquity {
			records = append(records, &r.ShareholdersEquity[i])
		}
	}
	return records
}
