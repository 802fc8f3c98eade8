package output

import (
	"fmt"

	"github.com/hhfp/household-projector/internal/domain"
)

// Formatter defines a pluggable projection-result formatter. Implementations
// should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.ProjectionResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// EnsembleFormatter is the Monte Carlo counterpart of Formatter.
type EnsembleFormatter interface {
	Format(ensemble *domain.MonteCarloEnsemble) ([]byte, error)
	Name() string
}

// GetFormatter returns the projection formatter for a name.
func GetFormatter(name string) (Formatter, error) {
	switch name {
	case "csv":
		return CSVFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "console", "":
		return ConsoleFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want csv, json, or console)", name)
}

// GetEnsembleFormatter returns the Monte Carlo formatter for a name.
func GetEnsembleFormatter(name string) (EnsembleFormatter, error) {
	switch name {
	case "csv":
		return MonteCarloCSVFormatter{}, nil
	case "json":
		return MonteCarloJSONFormatter{}, nil
	case "console", "":
		return MonteCarloConsoleFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want csv, json, or console)", name)
}
