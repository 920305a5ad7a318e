package finance

// Operation identifiers in the finance catalogue. Each identifier doubles as
// the key the operation's result is stored under in the product.
const (
	OpChartHistory          = "get_chart_history"
	OpISINCode              = "get_isin_code"
	OpMajorHolders          = "get_major_holders"
	OpInstitutionalHolders  = "get_institutional_holders"
	OpMutualfundHolders     = "get_mutualfund_holders"
	OpDividends             = "get_dividends"
	OpSplits                = "get_splits"
	OpActions               = "get_actions"
	OpInfo                  = "get_info"
	OpCalendar              = "get_calendar"
	OpRecommendations       = "get_recommendations"
	OpEarnings              = "get_earnings"
	OpQuarterlyEarnings     = "get_quarterly_earnings"
	OpFinancials            = "get_financials"
	OpQuarterlyFinancials   = "get_quarterly_financials"
	OpBalancesheet          = "get_balancesheet"
	OpQuarterlyBalancesheet = "get_quarterly_balancesheet"
	OpCashflow              = "get_cashflow"
	OpQuarterlyCashflow     = "get_quarterly_cashflow"
	OpSustainability        = "get_sustainability"
	OpOptions               = "get_options"
)

// registry maps each fan-out operation to the backend attribute it reads per
// ticker. OpChartHistory is not listed here: it is the one bulk operation and
// goes through the history endpoint instead.
var registry = map[string]string{
	OpISINCode:              "isin",
	OpMajorHolders:          "major_holders",
	OpInstitutionalHolders:  "institutional_holders",
	OpMutualfundHolders:     "mutualfund_holders",
	OpDividends:             "dividends",
	OpSplits:                "splits",
	OpActions:               "actions",
	OpInfo:                  "info",
	OpCalendar:              "calendar",
	OpRecommendations:       "recommendations",
	OpEarnings:              "earnings",
	OpQuarterlyEarnings:     "quarterly_earnings",
	OpFinancials:            "financials",
	OpQuarterlyFinancials:   "quarterly_financials",
	OpBalancesheet:          "balancesheet",
	OpQuarterlyBalancesheet: "quarterly_balancesheet",
	OpCashflow:              "cashflow",
	OpQuarterlyCashflow:     "quarterly_cashflow",
	OpSustainability:        "sustainability",
	OpOptions:               "options",
}

// catalogue is the full operation set in catalogue order.
var catalogue = []string{
	OpChartHistory,
	OpISINCode,
	OpMajorHolders,
	OpInstitutionalHolders,
	OpMutualfundHolders,
	OpDividends,
	OpSplits,
	OpActions,
	OpInfo,
	OpCalendar,
	OpRecommendations,
	OpEarnings,
	OpQuarterlyEarnings,
	OpFinancials,
	OpQuarterlyFinancials,
	OpBalancesheet,
	OpQuarterlyBalancesheet,
	OpCashflow,
	OpQuarterlyCashflow,
	OpSustainability,
	OpOptions,
}
