package output

import (
	"encoding/json"

	"github.com/hhfp/household-projector/internal/domain"
)

// JSONFormatter serializes a projection result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// MonteCarloJSONFormatter serializes an ensemble as pretty-printed JSON.
type MonteCarloJSONFormatter struct{}

func (j MonteCarloJSONFormatter) Name() string { return "json" }

func (j MonteCarloJSONFormatter) Format(ensemble *domain.MonteCarloEnsemble) ([]byte, error) {
	return json.MarshalIndent(ensemble, "", "  ")
}
