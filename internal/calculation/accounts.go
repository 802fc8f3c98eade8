package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hhfp/household-projector/internal/domain"
)

// Raw balance keys recognized by the aggregator. Unrecognized asset keys fold
// into the "other" bucket; absent keys are simply zero.
var (
	taxDeferredKeys = map[string]bool{
		"ira":          true,
		"401k":         true,
		"403b":         true,
		"partner_ira":  true,
		"partner_401k": true,
		"partner_403b": true,
	}
	taxableKeys = map[string]bool{
		"brokerage":           true,
		"savings":             true,
		"hsa":                 true,
		"life_insurance_cash": true,
		"crypto":              true,
		"529":                 true,
		"pension_cash":        true, // pension fund modeled as already-liquid savings
	}
	primaryHomeKeys = map[string]bool{
		"primary_residence": true,
		"home":              true,
	}
	secondaryHomeKeys = map[string]bool{
		"secondary_residence": true,
		"vacation_home":       true,
	}
	liabilityKeys = map[string]bool{
		"mortgage":      true,
		"heloc":         true,
		"student_loans": true,
		"credit_card":   true,
		"car_loan":      true,
		"personal_loan": true,
		"other_debt":    true,
	}
)

// AggregateAccounts folds a household's raw named balances into the
// projection primitives, added on top of any typed Accounts figures already
// present. It also returns the total liabilities (typed scalar plus raw
// liability line items). Never errors: everything absent is zero.
func AggregateAccounts(hp *domain.HouseholdProfile) (domain.Accounts, decimal.Decimal) {
	acc := hp.Accounts
	liabilities := hp.Liabilities

	for key, balance := range hp.RawBalances {
		switch {
		case taxDeferredKeys[key]:
			acc.TaxDeferred = acc.TaxDeferred.Add(balance)
		case taxableKeys[key]:
			acc.Taxable = acc.Taxable.Add(balance)
		case primaryHomeKeys[key]:
			acc.PrimaryHome = acc.PrimaryHome.Add(balance)
		case secondaryHomeKeys[key]:
			acc.SecondaryHome = acc.SecondaryHome.Add(balance)
		case liabilityKeys[key]:
			liabilities = liabilities.Add(balance)
		default:
			// vehicles, collectibles, business equity, misc
			acc.Other = acc.Other.Add(balance)
		}
	}

	return acc, liabilities
}

// ProjectionState is the mutable balance set threaded through a run. It is
// created once from the profile and mutated in place by each year's step.
type ProjectionState struct {
	TaxDeferred   decimal.Decimal
	Taxable       decimal.Decimal
	PrimaryHome   decimal.Decimal
	SecondaryHome decimal.Decimal
	OtherAssets   decimal.Decimal
	Liabilities   decimal.Decimal

	// originalLiabilities anchors the straight-line paydown.
	originalLiabilities decimal.Decimal
	simulationYears     int
}

// NewProjectionState builds the year-0 state from a profile.
func NewProjectionState(hp *domain.HouseholdProfile) *ProjectionState {
	acc, liabilities := AggregateAccounts(hp)
	return &ProjectionState{
		TaxDeferred:         acc.TaxDeferred,
		Taxable:             acc.Taxable,
		PrimaryHome:         acc.PrimaryHome,
		SecondaryHome:       acc.SecondaryHome,
		OtherAssets:         acc.Other,
		Liabilities:         liabilities,
		originalLiabilities: liabilities,
		simulationYears:     hp.Assumptions.SimulationYears,
	}
}

// CombinedSavings is the reporting figure: tax-deferred plus taxable.
func (ps *ProjectionState) CombinedSavings() decimal.Decimal {
	return ps.TaxDeferred.Add(ps.Taxable)
}
