package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StreamKind identifies how an income stream grows year over year.
type StreamKind string

const (
	// StreamGeneral grows at the global inflation rate unless overridden.
	StreamGeneral StreamKind = "general"
	// StreamSocialSecurity grows at the SS COLA rate and only pays from age 62.
	StreamSocialSecurity StreamKind = "social_security"
	// StreamRental grows at the rental growth rate.
	StreamRental StreamKind = "rental"
)

// GoalCategory distinguishes pure expenses from expense-and-purchase events.
type GoalCategory string

const (
	GoalExpense    GoalCategory = "expense"
	GoalInvestment GoalCategory = "investment"
)

// Person holds the minimal per-person inputs the projection needs. Either
// Age or BirthDate must be set; the config loader resolves BirthDate into
// Age before the engine runs.
type Person struct {
	Name      string    `yaml:"name,omitempty" json:"name,omitempty"`
	Age       int       `yaml:"age,omitempty" json:"age,omitempty"`
	BirthDate time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
}

// IncomeStream is a monthly pre-tax income source.
type IncomeStream struct {
	Name    string          `yaml:"name" json:"name"`
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly"`
	Kind    StreamKind      `yaml:"kind,omitempty" json:"kind,omitempty"`

	// GrowthOverride replaces the kind-derived growth rate when set.
	GrowthOverride *decimal.Decimal `yaml:"growth_override,omitempty" json:"growth_override,omitempty"`
}

// ExpenseStream is a monthly expense; all expenses grow at the inflation rate.
type ExpenseStream struct {
	Name    string          `yaml:"name" json:"name"`
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly"`
}

// Accounts holds the typed projection primitives. Callers with many named
// balances feed them through RawBalances and the account aggregator instead.
type Accounts struct {
	TaxDeferred   decimal.Decimal `yaml:"tax_deferred" json:"tax_deferred"`
	Taxable       decimal.Decimal `yaml:"taxable" json:"taxable"`
	PrimaryHome   decimal.Decimal `yaml:"primary_home" json:"primary_home"`
	SecondaryHome decimal.Decimal `yaml:"secondary_home" json:"secondary_home"`
	Other         decimal.Decimal `yaml:"other" json:"other"`

	// SharedTaxDeferred splits the tax-deferred balance 50/50 between the
	// primary and partner for RMD divisor lookup only.
	SharedTaxDeferred bool `yaml:"shared_tax_deferred,omitempty" json:"shared_tax_deferred,omitempty"`
}

// Goal is a one-off or recurring extra cash event layered on the projection.
type Goal struct {
	Name       string          `yaml:"name" json:"name"`
	Target     decimal.Decimal `yaml:"target" json:"target"`
	StartYear  int             `yaml:"start_year" json:"start_year"`
	EndYear    int             `yaml:"end_year,omitempty" json:"end_year,omitempty"`
	Recurrence string          `yaml:"recurrence,omitempty" json:"recurrence,omitempty"` // "none", "yearly", "every N years"
	Category   GoalCategory    `yaml:"category,omitempty" json:"category,omitempty"`
}

// Assumptions are the economic inputs shared by every simulated year.
// All rates are fractional annual rates.
type Assumptions struct {
	IncomeTaxRate        decimal.Decimal `yaml:"income_tax_rate" json:"income_tax_rate"`
	RMDTaxRate           decimal.Decimal `yaml:"rmd_tax_rate" json:"rmd_tax_rate"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	InvestmentReturnRate decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`
	HomeAppreciationRate decimal.Decimal `yaml:"home_appreciation_rate" json:"home_appreciation_rate"`
	SSColaRate           decimal.Decimal `yaml:"ss_cola_rate" json:"ss_cola_rate"`
	RentalGrowthRate     decimal.Decimal `yaml:"rental_growth_rate" json:"rental_growth_rate"`
	SimulationYears      int             `yaml:"simulation_years" json:"simulation_years"`
	StartYear            int             `yaml:"start_year,omitempty" json:"start_year,omitempty"`

	// RMDClosedForm selects the linear divisor approximation instead of the
	// literal IRS Uniform Lifetime table.
	RMDClosedForm bool `yaml:"rmd_closed_form,omitempty" json:"rmd_closed_form,omitempty"`
}

// DefaultStartYear is the first simulated calendar year when none is given.
const DefaultStartYear = 2025

// HouseholdProfile is the engine's complete input. It is treated as read-only
// for the duration of a run.
type HouseholdProfile struct {
	Primary Person  `yaml:"primary" json:"primary"`
	Partner *Person `yaml:"partner,omitempty" json:"partner,omitempty"`

	IncomeStreams  []IncomeStream  `yaml:"income_streams,omitempty" json:"income_streams,omitempty"`
	ExpenseStreams []ExpenseStream `yaml:"expense_streams,omitempty" json:"expense_streams,omitempty"`

	Accounts Accounts `yaml:"accounts" json:"accounts"`

	// RawBalances feeds the account aggregator for detailed-breakdown input;
	// aggregated amounts are added to the typed Accounts totals.
	RawBalances map[string]decimal.Decimal `yaml:"raw_balances,omitempty" json:"raw_balances,omitempty"`

	Liabilities decimal.Decimal `yaml:"liabilities,omitempty" json:"liabilities,omitempty"`

	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`

	Goals []Goal `yaml:"goals,omitempty" json:"goals,omitempty"`
}

// StartYear returns the first simulated calendar year.
func (hp *HouseholdProfile) StartYear() int {
	if hp.Assumptions.StartYear > 0 {
		return hp.Assumptions.StartYear
	}
	return DefaultStartYear
}

// HasPartner reports whether partner-scoped computations apply.
func (hp *HouseholdProfile) HasPartner() bool {
	return hp.Partner != nil
}

// PartnerAge returns the partner's age at the start of the projection, or 0.
func (hp *HouseholdProfile) PartnerAge() int {
	if hp.Partner == nil {
		return 0
	}
	return hp.Partner.Age
}

// GrowthRate resolves the annual growth rate for an income stream.
func (is *IncomeStream) GrowthRate(a *Assumptions) decimal.Decimal {
	if is.GrowthOverride != nil {
		return *is.GrowthOverride
	}
	switch is.Kind {
	case StreamSocialSecurity:
		return a.SSColaRate
	case StreamRental:
		return a.RentalGrowthRate
	default:
		return a.InflationRate
	}
}

// Validate checks the profile once at the boundary. Goal problems are
// reported separately as warnings (see GoalWarnings) so a bad goal never
// aborts the base projection.
func (hp *HouseholdProfile) Validate() error {
	if hp.Primary.Age < 0 {
		return fmt.Errorf("primary age cannot be negative, got %d", hp.Primary.Age)
	}
	if hp.Partner != nil && hp.Partner.Age < 0 {
		return fmt.Errorf("partner age cannot be negative, got %d", hp.Partner.Age)
	}
	if hp.Assumptions.SimulationYears < 1 {
		return fmt.Errorf("simulation years must be at least 1, got %d", hp.Assumptions.SimulationYears)
	}
	if hp.Assumptions.IncomeTaxRate.IsNegative() || hp.Assumptions.IncomeTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("income tax rate must be between 0 and 1, got %s", hp.Assumptions.IncomeTaxRate)
	}
	if hp.Assumptions.RMDTaxRate.IsNegative() || hp.Assumptions.RMDTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("RMD tax rate must be between 0 and 1, got %s", hp.Assumptions.RMDTaxRate)
	}
	if hp.Assumptions.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%%, got %s", hp.Assumptions.InflationRate)
	}
	if hp.Assumptions.InvestmentReturnRate.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("investment return rate cannot be less than -100%%, got %s", hp.Assumptions.InvestmentReturnRate)
	}
	for i, is := range hp.IncomeStreams {
		if is.Monthly.IsNegative() {
			return fmt.Errorf("income stream %d (%s): monthly amount cannot be negative", i, is.Name)
		}
	}
	for i, es := range hp.ExpenseStreams {
		if es.Monthly.IsNegative() {
			return fmt.Errorf("expense stream %d (%s): monthly amount cannot be negative", i, es.Name)
		}
	}
	return nil
}

// GoalWarnings returns a human-readable warning per malformed goal. Malformed
// goals are skipped by the overlay; everything else still runs.
func (hp *HouseholdProfile) GoalWarnings() []string {
	var warnings []string
	for i, g := range hp.Goals {
		if err := g.Check(); err != nil {
			name := g.Name
			if name == "" {
				name = fmt.Sprintf("goal %d", i)
			}
			warnings = append(warnings, fmt.Sprintf("%s: %v", name, err))
		}
	}
	return warnings
}

// Check validates a single goal entry.
func (g *Goal) Check() error {
	if g.Target.IsNegative() {
		return fmt.Errorf("target amount cannot be negative")
	}
	if g.StartYear <= 0 {
		return fmt.Errorf("start year is required")
	}
	if g.EndYear != 0 && g.EndYear < g.StartYear {
		return fmt.Errorf("end year %d precedes start year %d", g.EndYear, g.StartYear)
	}
	switch {
	case g.Recurrence == "" || g.Recurrence == "none" || g.Recurrence == "no" || g.Recurrence == "yearly":
	case strings.HasPrefix(g.Recurrence, "every "):
		var n int
		if _, err := fmt.Sscanf(g.Recurrence, "every %d years", &n); err != nil || n < 1 {
			return fmt.Errorf("unrecognized recurrence %q", g.Recurrence)
		}
	default:
		return fmt.Errorf("unrecognized recurrence %q", g.Recurrence)
	}
	switch g.Category {
	case "", GoalExpense, GoalInvestment:
	default:
		return fmt.Errorf("unrecognized category %q", g.Category)
	}
	return nil
}

// Interval returns the firing interval in years and whether the goal repeats.
func (g *Goal) Interval() (int, bool) {
	switch g.Recurrence {
	case "", "none", "no":
		return 0, false
	case "yearly":
		return 1, true
	}
	var n int
	if _, err := fmt.Sscanf(g.Recurrence, "every %d years", &n); err == nil && n >= 1 {
		return n, true
	}
	return 0, false
}
