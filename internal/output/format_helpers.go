package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/hhfp/household-projector/pkg/decimal"
)

// FormatCurrency formats a decimal as whole-dollar USD with thousands
// separators. Kept here so every formatter renders money identically.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

func intToString(v int) string { return strconv.Itoa(v) }
