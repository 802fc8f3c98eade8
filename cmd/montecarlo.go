package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hhfp/household-projector/internal/calculation"
	"github.com/hhfp/household-projector/internal/output"
)

var (
	flagTrials         int
	flagSeed           int64
	flagSigmaGrowth    float64
	flagSigmaInflation float64
	flagSigmaHome      float64
	flagRepresentative bool
)

var montecarloCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Run a Monte Carlo projection ensemble",
	RunE:  runMonteCarlo,
}

func init() {
	montecarloCmd.Flags().IntVarP(&flagTrials, "trials", "t", calculation.DefaultTrialCount, "Number of independent trials")
	montecarloCmd.Flags().Int64VarP(&flagSeed, "seed", "s", 0, "Random seed (0 picks one)")
	montecarloCmd.Flags().Float64Var(&flagSigmaGrowth, "sigma-growth", 0, "Std dev of the sampled return rate")
	montecarloCmd.Flags().Float64Var(&flagSigmaInflation, "sigma-inflation", 0, "Std dev of the sampled inflation rate")
	montecarloCmd.Flags().Float64Var(&flagSigmaHome, "sigma-home", 0, "Std dev of the sampled home appreciation rate")
	montecarloCmd.Flags().BoolVar(&flagRepresentative, "representative", false, "Include the median trial's full projection table")
	rootCmd.AddCommand(montecarloCmd)
}

func runMonteCarlo(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	cfg := calculation.MonteCarloConfig{
		TrialCount:         flagTrials,
		Seed:               flagSeed,
		KeepRepresentative: flagRepresentative,
	}
	if flagSigmaGrowth > 0 {
		cfg.SigmaGrowth = decimal.NewFromFloat(flagSigmaGrowth)
	}
	if flagSigmaInflation > 0 {
		cfg.SigmaInflation = decimal.NewFromFloat(flagSigmaInflation)
	}
	if flagSigmaHome > 0 {
		cfg.SigmaHome = decimal.NewFromFloat(flagSigmaHome)
	}

	engine := newEngine()
	ensemble, err := engine.RunMonteCarlo(cmd.Context(), profile, cfg)
	if err != nil {
		return fmt.Errorf("monte carlo failed: %w", err)
	}

	formatter, err := output.GetEnsembleFormatter(flagFormat)
	if err != nil {
		return err
	}
	data, err := formatter.Format(ensemble)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	return writeOut(data)
}
