package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	flagInput   string
	flagOutput  string
	flagFormat  string
	flagDB      string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hhproj",
	Short: "Household financial projection engine",
	Long:  "Project household income, taxes, RMDs, savings drawdown, and net worth year by year, deterministically or via Monte Carlo.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".hhproj", "scenarios.db")

	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Household profile YAML file")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, csv, json")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", defaultDB, "Scenario database path")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
}

// stderrLogger routes engine logging to stderr when --verbose is set.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}
func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// writeOut writes formatted output to --output or stdout.
func writeOut(data []byte) error {
	if flagOutput == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(flagOutput, data, 0o644)
}
