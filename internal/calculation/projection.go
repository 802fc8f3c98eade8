package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hhfp/household-projector/internal/domain"
	"github.com/hhfp/household-projector/pkg/dateutil"
)

// ssMinimumAge gates Social-Security-like streams: they pay nothing before
// the primary reaches 62.
const ssMinimumAge = 62

// rateSource supplies the economic rates for each simulated year.
type rateSource interface {
	ratesFor(yearIndex int) YearRates
}

// fixedRates replays the profile assumptions for every year.
type fixedRates struct {
	rates YearRates
}

func (f fixedRates) ratesFor(int) YearRates { return f.rates }

// ageInYear resolves a person's age for a simulated calendar year. A birth
// date anchors the age to the year itself; otherwise the starting age is
// advanced by the year offset.
func ageInYear(p *domain.Person, year, offset int) int {
	if !p.BirthDate.IsZero() {
		return dateutil.AgeInYear(p.BirthDate, year)
	}
	return p.Age + offset
}

func baseRates(a *domain.Assumptions) YearRates {
	return YearRates{
		Return:           a.InvestmentReturnRate,
		Inflation:        a.InflationRate,
		HomeAppreciation: a.HomeAppreciationRate,
	}
}

// streamLevels tracks each stream's current annual amount as it compounds
// year over year. General streams follow the (possibly sampled) inflation
// rate; COLA, rental, and overridden streams follow their own fixed rates.
type streamLevels struct {
	income   []decimal.Decimal // annual amounts at this year's level
	expenses []decimal.Decimal
}

func newStreamLevels(hp *domain.HouseholdProfile) *streamLevels {
	sl := &streamLevels{
		income:   make([]decimal.Decimal, len(hp.IncomeStreams)),
		expenses: make([]decimal.Decimal, len(hp.ExpenseStreams)),
	}
	for i, is := range hp.IncomeStreams {
		sl.income[i] = is.Monthly.Mul(twelve)
	}
	for i, es := range hp.ExpenseStreams {
		sl.expenses[i] = es.Monthly.Mul(twelve)
	}
	return sl
}

// totals sums this year's income and expense levels. Social-Security streams
// contribute nothing before the primary reaches 62.
func (sl *streamLevels) totals(hp *domain.HouseholdProfile, age int) (income, expenses decimal.Decimal) {
	for i, is := range hp.IncomeStreams {
		if is.Kind == domain.StreamSocialSecurity && age < ssMinimumAge {
			continue
		}
		income = income.Add(sl.income[i])
	}
	for i := range hp.ExpenseStreams {
		expenses = expenses.Add(sl.expenses[i])
	}
	return income, expenses
}

// advance compounds every stream to the next year's level.
func (sl *streamLevels) advance(hp *domain.HouseholdProfile, rates YearRates) {
	for i, is := range hp.IncomeStreams {
		rate := rates.Inflation
		switch {
		case is.GrowthOverride != nil:
			rate = *is.GrowthOverride
		case is.Kind == domain.StreamSocialSecurity:
			rate = hp.Assumptions.SSColaRate
		case is.Kind == domain.StreamRental:
			rate = hp.Assumptions.RentalGrowthRate
		}
		sl.income[i] = sl.income[i].Mul(one.Add(rate))
	}
	for i := range hp.ExpenseStreams {
		sl.expenses[i] = sl.expenses[i].Mul(one.Add(rates.Inflation))
	}
}

// projectWith drives the cash-flow step across the simulation horizon with
// rates drawn from src, threading state forward. The profile is read-only.
func projectWith(hp *domain.HouseholdProfile, goals *GoalSchedule, src rateSource) domain.ProjectionTable {
	years := hp.Assumptions.SimulationYears
	startYear := hp.StartYear()
	rmdCalc := NewRMDCalculator(hp.Assumptions.RMDClosedForm)
	state := NewProjectionState(hp)
	levels := newStreamLevels(hp)

	table := make(domain.ProjectionTable, 0, years)
	for i := 0; i < years; i++ {
		year := startYear + i
		age := ageInYear(&hp.Primary, year, i)
		partnerAge := 0
		if hp.HasPartner() {
			partnerAge = ageInYear(hp.Partner, year, i)
		}

		rates := src.ratesFor(i)
		income, expenses := levels.totals(hp, age)
		goalExpense, goalDeposit := goals.InjectionsFor(year)
		expenses = expenses.Add(goalExpense)

		row := CashFlowStep(state, rmdCalc, YearInput{
			Year:              year,
			Age:               age,
			PartnerAge:        partnerAge,
			Income:            income,
			Expenses:          expenses,
			GoalDeposits:      goalDeposit,
			Rates:             rates,
			IncomeTaxRate:     hp.Assumptions.IncomeTaxRate,
			RMDTaxRate:        hp.Assumptions.RMDTaxRate,
			SharedTaxDeferred: hp.Accounts.SharedTaxDeferred,
		})
		table = append(table, row)

		levels.advance(hp, rates)
	}
	return table
}

// summarize derives the reporting summary from a finished table.
func summarize(table domain.ProjectionTable, goals *GoalSchedule) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		GoalWarnings: goals.Warnings(),
	}
	if len(table) == 0 {
		return summary
	}

	for _, row := range table {
		summary.TotalDrawdown = summary.TotalDrawdown.Add(row.CashFromSavings)
		if summary.FirstShortfallYear == 0 && row.CashFromSavings.IsPositive() {
			summary.FirstShortfallYear = row.Year
		}
		if summary.SavingsDepleted == 0 && row.BalanceEnd.LessThanOrEqual(decimal.Zero) {
			summary.SavingsDepleted = row.Year
		}
	}

	final := table.FinalRow()
	summary.FinalSavings = final.BalanceEnd
	summary.FinalHomeValue = final.PrimaryHomeValue.Add(final.SecondaryHomeValue)
	summary.FinalNetWorth = final.NetWorth
	summary.GoalReports = goals.Reports(final.BalanceEnd)

	return summary
}
