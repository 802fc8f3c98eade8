package calculation

import (
	"github.com/shopspring/decimal"
)

// RMDStartAge is the age from which Required Minimum Distributions apply.
// Below this age the divisor table is never consulted and the RMD is exactly
// zero.
const RMDStartAge = 73

// maxTabulatedAge is the last age with its own divisor; older ages reuse its
// value rather than failing the lookup.
const maxTabulatedAge = 100

// uniformLifetimeTable is the IRS Uniform Lifetime Table (SECURE 2.0, ages
// 73-100).
var uniformLifetimeTable = map[int]decimal.Decimal{
	73:  decimal.NewFromFloat(26.5),
	74:  decimal.NewFromFloat(25.5),
	75:  decimal.NewFromFloat(24.6),
	76:  decimal.NewFromFloat(23.7),
	77:  decimal.NewFromFloat(22.9),
	78:  decimal.NewFromFloat(22.0),
	79:  decimal.NewFromFloat(21.1),
	80:  decimal.NewFromFloat(20.2),
	81:  decimal.NewFromFloat(19.4),
	82:  decimal.NewFromFloat(18.5),
	83:  decimal.NewFromFloat(17.7),
	84:  decimal.NewFromFloat(16.8),
	85:  decimal.NewFromFloat(16.0),
	86:  decimal.NewFromFloat(15.2),
	87:  decimal.NewFromFloat(14.4),
	88:  decimal.NewFromFloat(13.7),
	89:  decimal.NewFromFloat(12.9),
	90:  decimal.NewFromFloat(12.2),
	91:  decimal.NewFromFloat(11.5),
	92:  decimal.NewFromFloat(10.8),
	93:  decimal.NewFromFloat(10.1),
	94:  decimal.NewFromFloat(9.5),
	95:  decimal.NewFromFloat(8.9),
	96:  decimal.NewFromFloat(8.4),
	97:  decimal.NewFromFloat(7.8),
	98:  decimal.NewFromFloat(7.3),
	99:  decimal.NewFromFloat(6.8),
	100: decimal.NewFromFloat(6.4),
}

// RMDCalculator computes Required Minimum Distributions from the IRS Uniform
// Lifetime Table, or from the linear closed-form approximation when
// ClosedForm is set.
type RMDCalculator struct {
	ClosedForm bool
}

// NewRMDCalculator creates a calculator using the literal table.
func NewRMDCalculator(closedForm bool) *RMDCalculator {
	return &RMDCalculator{ClosedForm: closedForm}
}

// Divisor returns the life-expectancy divisor for an age at or above
// RMDStartAge. Ages past the table clamp to the last tabulated value, so the
// result is always positive.
func (rc *RMDCalculator) Divisor(age int) decimal.Decimal {
	if age > maxTabulatedAge {
		age = maxTabulatedAge
	}
	if rc.ClosedForm {
		// divisor(age) = 27 - 0.9*(age - 72)
		return decimal.NewFromInt(27).Sub(
			decimal.NewFromFloat(0.9).Mul(decimal.NewFromInt(int64(age - 72))))
	}
	return uniformLifetimeTable[age]
}

// Amount returns the mandatory withdrawal for the given tax-deferred balance
// and age. Zero below RMDStartAge or for non-positive balances.
func (rc *RMDCalculator) Amount(balance decimal.Decimal, age int) decimal.Decimal {
	if age < RMDStartAge {
		return decimal.Zero
	}
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Div(rc.Divisor(age))
}
