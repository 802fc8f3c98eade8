package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProfile() *HouseholdProfile {
	return &HouseholdProfile{
		Primary: Person{Age: 70},
		Assumptions: Assumptions{
			IncomeTaxRate:        decimal.NewFromFloat(0.25),
			RMDTaxRate:           decimal.NewFromFloat(0.25),
			InflationRate:        decimal.NewFromFloat(0.025),
			InvestmentReturnRate: decimal.NewFromFloat(0.05),
			SimulationYears:      14,
		},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validProfile().Validate())
}

func TestValidateRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*HouseholdProfile)
		want   string
	}{
		{"negative primary age", func(hp *HouseholdProfile) { hp.Primary.Age = -1 }, "primary age"},
		{"negative partner age", func(hp *HouseholdProfile) { hp.Partner = &Person{Age: -5} }, "partner age"},
		{"zero simulation years", func(hp *HouseholdProfile) { hp.Assumptions.SimulationYears = 0 }, "simulation years"},
		{"tax rate above 1", func(hp *HouseholdProfile) { hp.Assumptions.IncomeTaxRate = decimal.NewFromInt(2) }, "income tax rate"},
		{"negative rmd tax rate", func(hp *HouseholdProfile) { hp.Assumptions.RMDTaxRate = decimal.NewFromFloat(-0.1) }, "RMD tax rate"},
		{"extreme deflation", func(hp *HouseholdProfile) { hp.Assumptions.InflationRate = decimal.NewFromFloat(-0.15) }, "inflation rate"},
		{"return below -100%", func(hp *HouseholdProfile) { hp.Assumptions.InvestmentReturnRate = decimal.NewFromFloat(-1.5) }, "investment return rate"},
		{"negative income", func(hp *HouseholdProfile) {
			hp.IncomeStreams = []IncomeStream{{Name: "x", Monthly: decimal.NewFromInt(-1)}}
		}, "income stream"},
		{"negative expense", func(hp *HouseholdProfile) {
			hp.ExpenseStreams = []ExpenseStream{{Name: "x", Monthly: decimal.NewFromInt(-1)}}
		}, "expense stream"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hp := validProfile()
			tc.mutate(hp)
			err := hp.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestStartYear(t *testing.T) {
	hp := validProfile()
	assert.Equal(t, DefaultStartYear, hp.StartYear())

	hp.Assumptions.StartYear = 2030
	assert.Equal(t, 2030, hp.StartYear())
}

func TestPartnerHelpers(t *testing.T) {
	hp := validProfile()
	assert.False(t, hp.HasPartner())
	assert.Equal(t, 0, hp.PartnerAge())

	hp.Partner = &Person{Age: 68}
	assert.True(t, hp.HasPartner())
	assert.Equal(t, 68, hp.PartnerAge())
}

func TestGrowthRate(t *testing.T) {
	a := &Assumptions{
		InflationRate:    decimal.NewFromFloat(0.025),
		SSColaRate:       decimal.NewFromFloat(0.02),
		RentalGrowthRate: decimal.NewFromFloat(0.03),
	}

	general := IncomeStream{Kind: StreamGeneral}
	assert.True(t, general.GrowthRate(a).Equal(a.InflationRate))

	ss := IncomeStream{Kind: StreamSocialSecurity}
	assert.True(t, ss.GrowthRate(a).Equal(a.SSColaRate))

	rental := IncomeStream{Kind: StreamRental}
	assert.True(t, rental.GrowthRate(a).Equal(a.RentalGrowthRate))

	override := decimal.NewFromFloat(0.10)
	custom := IncomeStream{Kind: StreamSocialSecurity, GrowthOverride: &override}
	assert.True(t, custom.GrowthRate(a).Equal(override))
}

func TestGoalCheck(t *testing.T) {
	good := []Goal{
		{Name: "roof", Target: decimal.NewFromInt(30000), StartYear: 2027},
		{Name: "travel", Target: decimal.NewFromInt(8000), StartYear: 2026, EndYear: 2030, Recurrence: "yearly"},
		{Name: "car", Target: decimal.NewFromInt(35000), StartYear: 2026, Recurrence: "every 4 years"},
		{Name: "none", Target: decimal.NewFromInt(100), StartYear: 2026, Recurrence: "none"},
		{Name: "no", Target: decimal.NewFromInt(100), StartYear: 2026, Recurrence: "no"},
		{Name: "invest", Target: decimal.NewFromInt(100), StartYear: 2026, Category: GoalInvestment},
	}
	for _, g := range good {
		assert.NoError(t, g.Check(), g.Name)
	}

	bad := []Goal{
		{Name: "negative", Target: decimal.NewFromInt(-1), StartYear: 2026},
		{Name: "no start", Target: decimal.NewFromInt(100)},
		{Name: "inverted window", Target: decimal.NewFromInt(100), StartYear: 2030, EndYear: 2026},
		{Name: "bad recurrence", Target: decimal.NewFromInt(100), StartYear: 2026, Recurrence: "sometimes"},
		{Name: "zero interval", Target: decimal.NewFromInt(100), StartYear: 2026, Recurrence: "every 0 years"},
		{Name: "bad category", Target: decimal.NewFromInt(100), StartYear: 2026, Category: "savings"},
	}
	for _, g := range bad {
		assert.Error(t, g.Check(), g.Name)
	}
}

func TestGoalInterval(t *testing.T) {
	cases := []struct {
		recurrence string
		interval   int
		repeats    bool
	}{
		{"", 0, false},
		{"none", 0, false},
		{"no", 0, false},
		{"yearly", 1, true},
		{"every 4 years", 4, true},
		{"every 1 years", 1, true},
		{"garbage", 0, false},
	}
	for _, tc := range cases {
		g := Goal{Recurrence: tc.recurrence}
		interval, repeats := g.Interval()
		assert.Equal(t, tc.interval, interval, tc.recurrence)
		assert.Equal(t, tc.repeats, repeats, tc.recurrence)
	}
}

func TestGoalWarnings(t *testing.T) {
	hp := validProfile()
	hp.Goals = []Goal{
		{Name: "roof", Target: decimal.NewFromInt(30000), StartYear: 2027},
		{Name: "bad", Target: decimal.NewFromInt(-1), StartYear: 2026},
		{Target: decimal.NewFromInt(100)}, // unnamed, missing start year
	}

	warnings := hp.GoalWarnings()
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "bad")
	assert.Contains(t, warnings[1], "goal 2")
}
