package calculation

import (
	"context"

	"github.com/hhfp/household-projector/internal/domain"
)

// Engine orchestrates household projections. It owns no I/O: profiles come
// in, tables and ensembles go out.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. Nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunDeterministic projects a household year by year under the profile's
// fixed assumptions. The profile is validated once at this boundary;
// malformed goals become warnings on the summary, not errors.
func (e *Engine) RunDeterministic(ctx context.Context, hp *domain.HouseholdProfile) (*domain.ProjectionResult, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	goals := NewGoalSchedule(hp.Goals)
	for _, w := range goals.Warnings() {
		e.Logger.Warnf("goal skipped: %s", w)
	}

	table := projectWith(hp, goals, fixedRates{rates: baseRates(&hp.Assumptions)})
	summary := summarize(table, goals)

	e.Logger.Infof("projection complete: %d years, final net worth %s",
		len(table), summary.FinalNetWorth.StringFixed(2))

	return &domain.ProjectionResult{Table: table, Summary: summary}, nil
}
