package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func newTestState(taxDeferred, taxable int64, years int) *ProjectionState {
	return &ProjectionState{
		TaxDeferred:     decimal.NewFromInt(taxDeferred),
		Taxable:         decimal.NewFromInt(taxable),
		simulationYears: years,
	}
}

func TestCashFlowStepPureCompounding(t *testing.T) {
	// No income, no expenses, no RMD: each year's ending balance is exactly
	// the opening balance grown at the return rate.
	state := newTestState(0, 100000, 5)
	rmdCalc := NewRMDCalculator(false)
	rate := decimal.NewFromFloat(0.05)

	expected := decimal.NewFromInt(100000)
	for i := 0; i < 5; i++ {
		row := CashFlowStep(state, rmdCalc, YearInput{
			Year:  2025 + i,
			Age:   40 + i,
			Rates: YearRates{Return: rate},
		})

		if !row.BalanceOpen.Equal(expected) {
			t.Fatalf("year %d: opening balance %s, expected %s", row.Year, row.BalanceOpen, expected)
		}
		expected = expected.Add(expected.Mul(rate))
		if !row.BalanceEnd.Equal(expected) {
			t.Fatalf("year %d: ending balance %s, expected %s", row.Year, row.BalanceEnd, expected)
		}
		if !row.CashFromSavings.IsZero() {
			t.Fatalf("year %d: unexpected draw %s", row.Year, row.CashFromSavings)
		}
	}
}

func TestCashFlowStepAge76RMDScenario(t *testing.T) {
	state := newTestState(400000, 0, 1)
	rmdCalc := NewRMDCalculator(false)
	rmdTaxRate := decimal.NewFromFloat(0.25)

	row := CashFlowStep(state, rmdCalc, YearInput{
		Year:       2025,
		Age:        76,
		Rates:      YearRates{Return: decimal.NewFromFloat(0.05)},
		RMDTaxRate: rmdTaxRate,
	})

	wantRMD := decimal.NewFromInt(400000).Div(decimal.NewFromFloat(23.7))
	if !row.RMDPrimary.Equal(wantRMD) {
		t.Errorf("rmd: expected %s, got %s", wantRMD, row.RMDPrimary)
	}
	wantNetRMD := wantRMD.Mul(decimal.NewFromFloat(0.75))
	if !row.NetRMDUsed.Equal(wantNetRMD) {
		t.Errorf("net rmd: expected %s, got %s", wantNetRMD, row.NetRMDUsed)
	}
	if !row.CashFromSavings.IsZero() {
		t.Errorf("expected no savings draw, got %s", row.CashFromSavings)
	}

	// The RMD'd slice earns no return; the remainder grows once.
	wantTaxDeferred := decimal.NewFromInt(400000).Sub(wantRMD).Mul(decimal.NewFromFloat(1.05))
	if !row.TaxDeferredEnd.Equal(wantTaxDeferred) {
		t.Errorf("tax deferred end: expected %s, got %s", wantTaxDeferred, row.TaxDeferredEnd)
	}

	// Unused after-tax RMD proceeds are re-deposited, not dropped.
	if !row.TaxableEnd.Equal(wantNetRMD) {
		t.Errorf("taxable end: expected redeposited %s, got %s", wantNetRMD, row.TaxableEnd)
	}
}

func TestCashFlowStepShortfallDrawsResidualAfterRMD(t *testing.T) {
	state := newTestState(400000, 100000, 1)
	rmdCalc := NewRMDCalculator(false)

	row := CashFlowStep(state, rmdCalc, YearInput{
		Year:       2025,
		Age:        76,
		Expenses:   decimal.NewFromInt(50000),
		Rates:      YearRates{Return: decimal.Zero},
		RMDTaxRate: decimal.NewFromFloat(0.25),
	})

	// netDraw = 50000; netRMD covers part of it, savings the rest.
	wantResidual := decimal.NewFromInt(50000).Sub(row.NetRMDUsed)
	if !row.CashFromSavings.Equal(wantResidual) {
		t.Errorf("cash from savings: expected %s, got %s", wantResidual, row.CashFromSavings)
	}
	if !row.TaxableEnd.Equal(decimal.NewFromInt(100000).Sub(wantResidual)) {
		t.Errorf("taxable end: expected %s, got %s",
			decimal.NewFromInt(100000).Sub(wantResidual), row.TaxableEnd)
	}
}

func TestCashFlowStepSurplusIsDeposited(t *testing.T) {
	state := newTestState(0, 10000, 1)
	rmdCalc := NewRMDCalculator(false)

	row := CashFlowStep(state, rmdCalc, YearInput{
		Year:          2025,
		Age:           40,
		Income:        decimal.NewFromInt(80000),
		Expenses:      decimal.NewFromInt(30000),
		Rates:         YearRates{Return: decimal.Zero},
		IncomeTaxRate: decimal.NewFromFloat(0.25),
	})

	// net income 60000, expenses 30000: surplus 30000 deposited.
	if want := decimal.NewFromInt(-30000); !row.NetDraw.Equal(want) {
		t.Errorf("net draw: expected %s, got %s", want, row.NetDraw)
	}
	if want := decimal.NewFromInt(40000); !row.BalanceEnd.Equal(want) {
		t.Errorf("balance end: expected %s (10000 + surplus 30000), got %s", want, row.BalanceEnd)
	}
}

func TestCashFlowStepNegativeBalanceIsData(t *testing.T) {
	state := newTestState(0, 1000, 1)
	rmdCalc := NewRMDCalculator(false)

	row := CashFlowStep(state, rmdCalc, YearInput{
		Year:     2025,
		Age:      50,
		Expenses: decimal.NewFromInt(50000),
		Rates:    YearRates{Return: decimal.NewFromFloat(0.05)},
	})

	if !row.BalanceEnd.IsNegative() {
		t.Errorf("expected negative ending balance, got %s", row.BalanceEnd)
	}
}

func TestCashFlowStepSharedRMDUsesBothDivisors(t *testing.T) {
	state := newTestState(400000, 0, 1)
	rmdCalc := NewRMDCalculator(false)

	row := CashFlowStep(state, rmdCalc, YearInput{
		Year:              2025,
		Age:               76,
		PartnerAge:        74,
		SharedTaxDeferred: true,
		Rates:             YearRates{Return: decimal.Zero},
	})

	half := decimal.NewFromInt(200000)
	if want := half.Div(decimal.NewFromFloat(23.7)); !row.RMDPrimary.Equal(want) {
		t.Errorf("primary rmd: expected %s, got %s", want, row.RMDPrimary)
	}
	if want := half.Div(decimal.NewFromFloat(25.5)); !row.RMDPartner.Equal(want) {
		t.Errorf("partner rmd: expected %s, got %s", want, row.RMDPartner)
	}
}

func TestCashFlowStepPartnerBelowThresholdNoRMD(t *testing.T) {
	state := newTestState(400000, 0, 1)
	rmdCalc := NewRMDCalculator(false)

	row := CashFlowStep(state, rmdCalc, YearInput{
		Year:              2025,
		Age:               76,
		PartnerAge:        60,
		SharedTaxDeferred: true,
		Rates:             YearRates{Return: decimal.Zero},
	})

	if !row.RMDPartner.IsZero() {
		t.Errorf("partner below %d should have zero RMD, got %s", RMDStartAge, row.RMDPartner)
	}
	if row.RMDPrimary.IsZero() {
		t.Error("primary at 76 should have a positive RMD")
	}
}

func TestCashFlowStepLiabilityPaydown(t *testing.T) {
	state := newTestState(0, 0, 10)
	state.Liabilities = decimal.NewFromInt(200000)
	state.originalLiabilities = decimal.NewFromInt(200000)
	rmdCalc := NewRMDCalculator(false)

	row := CashFlowStep(state, rmdCalc, YearInput{Year: 2025, Age: 40})
	if want := decimal.NewFromInt(180000); !row.TotalLiabilities.Equal(want) {
		t.Errorf("liabilities after year 1: expected %s, got %s", want, row.TotalLiabilities)
	}

	// Run out the remaining years; the balance floors at zero.
	for i := 0; i < 20; i++ {
		row = CashFlowStep(state, rmdCalc, YearInput{Year: 2026 + i, Age: 41 + i})
	}
	if !row.TotalLiabilities.IsZero() {
		t.Errorf("liabilities should floor at zero, got %s", row.TotalLiabilities)
	}
}
