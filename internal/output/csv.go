package output

import (
	"bytes"
	"encoding/csv"

	"github.com/hhfp/household-projector/internal/domain"
)

// CSVFormatter serializes a projection table, one row per simulated year,
// with currency-formatted fields.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Year", "Age", "Total Income", "Net Income", "Total Expenses", "Net Draw",
		"RMD Primary", "RMD Partner", "Net RMD Used", "Cash from Savings",
		"Savings Open", "Savings Growth", "Savings Before Draw", "Savings End",
		"Primary Home", "Secondary Home", "Total Assets", "Total Liabilities", "Net Worth",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range result.Table {
		record := []string{
			intToString(row.Year),
			intToString(row.Age),
			FormatCurrency(row.TotalIncome),
			FormatCurrency(row.NetIncome),
			FormatCurrency(row.TotalExpenses),
			FormatCurrency(row.NetDraw),
			FormatCurrency(row.RMDPrimary),
			FormatCurrency(row.RMDPartner),
			FormatCurrency(row.NetRMDUsed),
			FormatCurrency(row.CashFromSavings),
			FormatCurrency(row.BalanceOpen),
			FormatCurrency(row.BalanceGrowth),
			FormatCurrency(row.BalanceBeforeDraw),
			FormatCurrency(row.BalanceEnd),
			FormatCurrency(row.PrimaryHomeValue),
			FormatCurrency(row.SecondaryHomeValue),
			FormatCurrency(row.TotalAssets),
			FormatCurrency(row.TotalLiabilities),
			FormatCurrency(row.NetWorth),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// MonteCarloCSVFormatter serializes the per-year percentile series of an
// ensemble.
type MonteCarloCSVFormatter struct{}

func (m MonteCarloCSVFormatter) Name() string { return "csv" }

func (m MonteCarloCSVFormatter) Format(ensemble *domain.MonteCarloEnsemble) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "P10", "Median", "P90", "Bankruptcy Probability"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, yp := range ensemble.Years {
		record := []string{
			intToString(yp.Year),
			FormatCurrency(yp.P10),
			FormatCurrency(yp.Median),
			FormatCurrency(yp.P90),
			FormatPercentage(yp.BankruptcyProbability),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
