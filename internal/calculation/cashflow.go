package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hhfp/household-projector/internal/domain"
)

var (
	one    = decimal.NewFromInt(1)
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)
)

// YearRates are the economic rates in effect for a single simulated year.
// Deterministic runs use the profile assumptions unchanged; Monte Carlo runs
// sample them per year, per trial.
type YearRates struct {
	Return           decimal.Decimal
	Inflation        decimal.Decimal
	HomeAppreciation decimal.Decimal
}

// YearInput carries everything the cash-flow step needs for one year beyond
// the threaded state. Income and expenses are annual amounts already grown to
// this year's level; goal injections are included in Expenses and
// GoalDeposits.
type YearInput struct {
	Year       int
	Age        int
	PartnerAge int // 0 when no partner

	Income       decimal.Decimal
	Expenses     decimal.Decimal
	GoalDeposits decimal.Decimal

	Rates YearRates

	IncomeTaxRate decimal.Decimal
	RMDTaxRate    decimal.Decimal

	// SharedTaxDeferred splits the retirement balance 50/50 between primary
	// and partner for divisor lookup.
	SharedTaxDeferred bool
}

// CashFlowStep advances the state by one year and returns the year's row.
// The operation order is load-bearing: income, expenses, tax, draw, RMD,
// savings draw, growth, real estate, liabilities, net worth. Negative
// balances are valid output (projected insolvency), never an error.
func CashFlowStep(state *ProjectionState, rmdCalc *RMDCalculator, in YearInput) domain.ProjectionRow {
	row := domain.ProjectionRow{
		Year:       in.Year,
		Age:        in.Age,
		PartnerAge: in.PartnerAge,
	}

	taxDeferredOpen := state.TaxDeferred
	taxableOpen := state.Taxable
	row.BalanceOpen = taxDeferredOpen.Add(taxableOpen)

	// Income and expenses arrive pre-grown (steps 1-2).
	row.TotalIncome = in.Income
	row.TotalExpenses = in.Expenses
	row.NetIncome = in.Income.Mul(one.Sub(in.IncomeTaxRate))

	// Net draw may be negative: a surplus, deposited into savings below.
	row.NetDraw = in.Expenses.Sub(row.NetIncome)

	// RMD on the opening tax-deferred balance. With a shared balance and a
	// partner present, each half uses its own holder's divisor.
	if in.SharedTaxDeferred && in.PartnerAge > 0 {
		half := taxDeferredOpen.Div(two)
		row.RMDPrimary = rmdCalc.Amount(half, in.Age)
		row.RMDPartner = rmdCalc.Amount(half, in.PartnerAge)
	} else {
		row.RMDPrimary = rmdCalc.Amount(taxDeferredOpen, in.Age)
	}
	rmdTotal := row.RMDPrimary.Add(row.RMDPartner)
	state.TaxDeferred = state.TaxDeferred.Sub(rmdTotal)
	row.NetRMDUsed = rmdTotal.Mul(one.Sub(in.RMDTaxRate))

	// After-tax RMD proceeds cover the shortfall first; only the residual is
	// drawn from savings. Unused RMD proceeds and any income surplus are
	// deposited back, never dropped.
	residual := row.NetDraw.Sub(row.NetRMDUsed)
	deposit := decimal.Zero
	if residual.IsPositive() {
		row.CashFromSavings = residual
	} else {
		deposit = residual.Neg()
	}

	// Growth applies before the draw. The RMD'd slice earns no return this
	// year; the post-RMD remainder and the taxable balance each grow once.
	taxDeferredGrowth := state.TaxDeferred.Mul(in.Rates.Return)
	taxableGrowth := taxableOpen.Mul(in.Rates.Return)
	row.BalanceGrowth = taxDeferredGrowth.Add(taxableGrowth)

	state.TaxDeferred = state.TaxDeferred.Add(taxDeferredGrowth)
	taxableBeforeDraw := taxableOpen.Add(taxableGrowth)
	row.BalanceBeforeDraw = state.TaxDeferred.Add(taxableBeforeDraw)

	state.Taxable = taxableBeforeDraw.
		Sub(row.CashFromSavings).
		Add(deposit).
		Add(in.GoalDeposits)

	row.TaxDeferredEnd = state.TaxDeferred
	row.TaxableEnd = state.Taxable
	row.BalanceEnd = state.CombinedSavings()

	// Real estate appreciation.
	state.PrimaryHome = state.PrimaryHome.Mul(one.Add(in.Rates.HomeAppreciation))
	state.SecondaryHome = state.SecondaryHome.Mul(one.Add(in.Rates.HomeAppreciation))
	row.PrimaryHomeValue = state.PrimaryHome
	row.SecondaryHomeValue = state.SecondaryHome

	// Straight-line liability paydown, floored at zero.
	if state.simulationYears > 0 && state.Liabilities.IsPositive() {
		payment := state.originalLiabilities.Div(decimal.NewFromInt(int64(state.simulationYears)))
		state.Liabilities = state.Liabilities.Sub(payment)
		if state.Liabilities.IsNegative() {
			state.Liabilities = decimal.Zero
		}
	}
	row.TotalLiabilities = state.Liabilities

	row.TotalAssets = row.BalanceEnd.
		Add(state.PrimaryHome).
		Add(state.SecondaryHome).
		Add(state.OtherAssets)
	row.NetWorth = row.TotalAssets.Sub(row.TotalLiabilities)

	return row
}
