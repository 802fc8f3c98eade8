package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hhfp/household-projector/internal/calculation"
	"github.com/hhfp/household-projector/internal/config"
	"github.com/hhfp/household-projector/internal/domain"
	"github.com/hhfp/household-projector/internal/output"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a deterministic year-by-year projection",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	engine := newEngine()
	result, err := engine.RunDeterministic(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	formatter, err := output.GetFormatter(flagFormat)
	if err != nil {
		return err
	}
	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting failed: %w", err)
	}
	return writeOut(data)
}

// loadProfile reads the profile from --input or the scenario store.
func loadProfile() (*domain.HouseholdProfile, error) {
	if flagInput == "" {
		return nil, fmt.Errorf("--input is required (or use 'scenario load' to inspect stored profiles)")
	}
	return config.NewInputParser().LoadFromFile(flagInput)
}

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if flagVerbose {
		engine.SetLogger(stderrLogger{})
	}
	return engine
}
