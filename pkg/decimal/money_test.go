package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(1234.56)
	assert.Equal(t, "1234.56", m.String())
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("99.99")
	require.NoError(t, err)
	assert.Equal(t, "99.99", m.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	m, err := NewMoneyFromString("10.004")
	require.NoError(t, err)
	assert.Equal(t, "10.00", m.Round().String())

	m, err = NewMoneyFromString("10.015")
	require.NoError(t, err)
	assert.Equal(t, "10.02", m.Round().String())
}

func TestAnnualMonthly(t *testing.T) {
	monthly := NewMoney(3662)
	assert.True(t, monthly.Annual().Decimal.Equal(decimal.NewFromInt(43944)))
	assert.True(t, NewMoney(43944).Monthly().Decimal.Equal(decimal.NewFromInt(3662)))
}

func TestAfterTax(t *testing.T) {
	m := NewMoney(1000)
	assert.True(t, m.AfterTax(decimal.NewFromFloat(0.25)).Decimal.Equal(decimal.NewFromInt(750)))
	assert.True(t, m.AfterTax(decimal.Zero).Decimal.Equal(decimal.NewFromInt(1000)))
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40)

	assert.True(t, a.Add(b).Decimal.Equal(decimal.NewFromInt(140)))
	assert.True(t, a.Sub(b).Decimal.Equal(decimal.NewFromInt(60)))
	assert.True(t, a.Mul(decimal.NewFromFloat(1.05)).Decimal.Equal(decimal.NewFromInt(105)))
}

func TestMinMaxZero(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40)

	assert.True(t, Min(a, b).Decimal.Equal(b.Decimal))
	assert.True(t, Max(a, b).Decimal.Equal(a.Decimal))
	assert.True(t, Zero().Decimal.IsZero())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{5, "$5"},
		{999, "$999"},
		{1000, "$1,000"},
		{1234, "$1,234"},
		{1234567.89, "$1,234,568"},
		{-500, "-$500"},
		{-1234567, "-$1,234,567"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NewMoney(tc.in).Format(), "Format(%v)", tc.in)
	}
}
