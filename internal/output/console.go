package output

import (
	"bytes"
	"fmt"

	"github.com/hhfp/household-projector/internal/domain"
)

// ConsoleFormatter provides a concise console summary of a projection run.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary

	fmt.Fprintln(&buf, "HOUSEHOLD PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "============================")
	fmt.Fprintf(&buf, "Years Simulated:   %d\n", len(result.Table))
	fmt.Fprintf(&buf, "Final Savings:     %s\n", FormatCurrency(s.FinalSavings))
	fmt.Fprintf(&buf, "Final Home Value:  %s\n", FormatCurrency(s.FinalHomeValue))
	fmt.Fprintf(&buf, "Final Net Worth:   %s\n", FormatCurrency(s.FinalNetWorth))
	fmt.Fprintf(&buf, "Total Drawdown:    %s\n", FormatCurrency(s.TotalDrawdown))
	if s.FirstShortfallYear > 0 {
		fmt.Fprintf(&buf, "First Shortfall:   %d\n", s.FirstShortfallYear)
	}
	if s.SavingsDepleted > 0 {
		fmt.Fprintf(&buf, "Savings Depleted:  %d\n", s.SavingsDepleted)
	}

	if len(s.GoalReports) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "GOALS")
		for _, g := range s.GoalReports {
			if g.Warning != "" {
				fmt.Fprintf(&buf, "  %s: %s\n", g.Name, g.Warning)
				continue
			}
			fmt.Fprintf(&buf, "  %s: fired %dx, cost %s, funded %s\n",
				g.Name, g.Firings, FormatCurrency(g.CumulativeCost), FormatPercentage(g.FundedPercent))
		}
	}
	for _, w := range s.GoalWarnings {
		fmt.Fprintf(&buf, "  warning: %s\n", w)
	}

	return buf.Bytes(), nil
}

// MonteCarloConsoleFormatter summarizes an ensemble for the console.
type MonteCarloConsoleFormatter struct{}

func (m MonteCarloConsoleFormatter) Name() string { return "console" }

func (m MonteCarloConsoleFormatter) Format(ensemble *domain.MonteCarloEnsemble) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "MONTE CARLO SUMMARY")
	fmt.Fprintln(&buf, "===================")
	fmt.Fprintf(&buf, "Trials: %d  Seed: %d\n", ensemble.TrialCount, ensemble.Seed)
	if len(ensemble.Years) > 0 {
		last := ensemble.Years[len(ensemble.Years)-1]
		fmt.Fprintf(&buf, "Final Year %d:\n", last.Year)
		fmt.Fprintf(&buf, "  P10:    %s\n", FormatCurrency(last.P10))
		fmt.Fprintf(&buf, "  Median: %s\n", FormatCurrency(last.Median))
		fmt.Fprintf(&buf, "  P90:    %s\n", FormatCurrency(last.P90))
		fmt.Fprintf(&buf, "  Bankruptcy Probability: %s\n", FormatPercentage(last.BankruptcyProbability))
	}

	return buf.Bytes(), nil
}
