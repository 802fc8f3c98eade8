package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionRow captures every observable quantity for a single simulated
// year. All intermediate figures are retained for auditability.
type ProjectionRow struct {
	Year       int `json:"year"`
	Age        int `json:"age"`
	PartnerAge int `json:"partner_age,omitempty"`

	TotalIncome   decimal.Decimal `json:"total_income"`
	NetIncome     decimal.Decimal `json:"net_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetDraw       decimal.Decimal `json:"net_draw"`

	RMDPrimary      decimal.Decimal `json:"rmd_primary"`
	RMDPartner      decimal.Decimal `json:"rmd_partner"`
	NetRMDUsed      decimal.Decimal `json:"net_rmd_used"`
	CashFromSavings decimal.Decimal `json:"cash_from_savings"`

	// Combined (tax-deferred + taxable) savings figures.
	BalanceOpen       decimal.Decimal `json:"balance_open"`
	BalanceGrowth     decimal.Decimal `json:"balance_growth"`
	BalanceBeforeDraw decimal.Decimal `json:"balance_before_draw"`
	BalanceEnd        decimal.Decimal `json:"balance_end"`

	TaxDeferredEnd decimal.Decimal `json:"tax_deferred_end"`
	TaxableEnd     decimal.Decimal `json:"taxable_end"`

	PrimaryHomeValue   decimal.Decimal `json:"primary_home_value"`
	SecondaryHomeValue decimal.Decimal `json:"secondary_home_value"`
	TotalAssets        decimal.Decimal `json:"total_assets"`
	TotalLiabilities   decimal.Decimal `json:"total_liabilities"`
	NetWorth           decimal.Decimal `json:"net_worth"`
}

// ProjectionTable is one deterministic run, one row per simulated year.
// Row i+1's opening balance equals row i's ending balance.
type ProjectionTable []ProjectionRow

// FinalRow returns the last row of the table.
func (pt ProjectionTable) FinalRow() ProjectionRow {
	return pt[len(pt)-1]
}

// GoalReport is the reporting-only funding check for a single goal.
type GoalReport struct {
	Name           string          `json:"name"`
	Category       GoalCategory    `json:"category"`
	Firings        int             `json:"firings"`
	CumulativeCost decimal.Decimal `json:"cumulative_cost"`
	FundedPercent  decimal.Decimal `json:"funded_percent"` // capped at 150
	Warning        string          `json:"warning,omitempty"`
}

// ProjectionSummary condenses a deterministic run for reporting.
type ProjectionSummary struct {
	FinalSavings       decimal.Decimal `json:"final_savings"`
	FinalHomeValue     decimal.Decimal `json:"final_home_value"`
	FinalNetWorth      decimal.Decimal `json:"final_net_worth"`
	TotalDrawdown      decimal.Decimal `json:"total_drawdown"`
	FirstShortfallYear int             `json:"first_shortfall_year,omitempty"`
	SavingsDepleted    int             `json:"savings_depleted_year,omitempty"`
	GoalReports        []GoalReport    `json:"goal_reports,omitempty"`
	GoalWarnings       []string        `json:"goal_warnings,omitempty"`
}

// ProjectionResult pairs the per-year table with its summary.
type ProjectionResult struct {
	Table   ProjectionTable   `json:"table"`
	Summary ProjectionSummary `json:"summary"`
}

// YearPercentiles holds the cross-trial distribution of combined ending
// balance for a single simulated year.
type YearPercentiles struct {
	Year                  int             `json:"year"`
	P10                   decimal.Decimal `json:"p10"`
	Median                decimal.Decimal `json:"median"`
	P90                   decimal.Decimal `json:"p90"`
	BankruptcyProbability decimal.Decimal `json:"bankruptcy_probability"` // percent, 0-100
}

// MonteCarloEnsemble aggregates all independent trials for one profile.
type MonteCarloEnsemble struct {
	TrialCount     int               `json:"trial_count"`
	Seed           int64             `json:"seed"`
	Years          []YearPercentiles `json:"years"`
	Representative ProjectionTable   `json:"representative,omitempty"` // median ending-balance trial

	// EndingBalances holds each trial's final combined balance, in trial order.
	EndingBalances []decimal.Decimal `json:"ending_balances,omitempty"`
}

// FinalBankruptcyProbability returns the last year's bankruptcy probability.
func (e *MonteCarloEnsemble) FinalBankruptcyProbability() decimal.Decimal {
	if len(e.Years) == 0 {
		return decimal.Zero
	}
	return e.Years[len(e.Years)-1].BankruptcyProbability
}
