package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hhfp/household-projector/internal/domain"
)

// maxFundedPercent caps the reported goal funding percentage.
var maxFundedPercent = decimal.NewFromInt(150)

// goalState tracks one valid goal across a run.
type goalState struct {
	goal      domain.Goal
	interval  int
	recurring bool
	firings   int
	cost      decimal.Decimal
}

// GoalSchedule is the per-run goal overlay. Malformed goals are filtered out
// at construction and surface as warnings; the remaining goals and the base
// projection still execute.
type GoalSchedule struct {
	states   []*goalState
	warnings []string
}

// NewGoalSchedule validates a goal list and builds the overlay.
func NewGoalSchedule(goals []domain.Goal) *GoalSchedule {
	gs := &GoalSchedule{}
	for i, g := range goals {
		if err := g.Check(); err != nil {
			name := g.Name
			if name == "" {
				name = fmt.Sprintf("goal %d", i)
			}
			gs.warnings = append(gs.warnings, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		interval, recurring := g.Interval()
		gs.states = append(gs.states, &goalState{goal: g, interval: interval, recurring: recurring})
	}
	return gs
}

// Warnings returns the per-goal validation warnings collected at construction.
func (gs *GoalSchedule) Warnings() []string {
	return gs.warnings
}

// fires reports whether a goal fires in the given calendar year.
func (st *goalState) fires(year int) bool {
	g := &st.goal
	if year < g.StartYear {
		return false
	}
	if !st.recurring {
		return year == g.StartYear
	}
	if g.EndYear != 0 && year > g.EndYear {
		return false
	}
	return (year-g.StartYear)%st.interval == 0
}

// InjectionsFor returns the extra expense and the savings deposit scheduled
// for a calendar year. Goal amounts are not inflated. Both categories add to
// expenses; investment goals additionally earmark an equal savings deposit.
// Fired costs are accumulated for the post-run funding report.
func (gs *GoalSchedule) InjectionsFor(year int) (expense, deposit decimal.Decimal) {
	for _, st := range gs.states {
		if !st.fires(year) {
			continue
		}
		st.firings++
		st.cost = st.cost.Add(st.goal.Target)
		expense = expense.Add(st.goal.Target)
		if st.goal.Category == domain.GoalInvestment {
			deposit = deposit.Add(st.goal.Target)
		}
	}
	return expense, deposit
}

// Reports computes each goal's funded percentage against the run's final
// combined savings: finalSavings / cumulative fired cost, capped at 150.
// Reporting only; never fed back into the projection.
func (gs *GoalSchedule) Reports(finalSavings decimal.Decimal) []domain.GoalReport {
	if len(gs.states) == 0 {
		return nil
	}
	reports := make([]domain.GoalReport, 0, len(gs.states))
	for _, st := range gs.states {
		r := domain.GoalReport{
			Name:           st.goal.Name,
			Category:       st.goal.Category,
			Firings:        st.firings,
			CumulativeCost: st.cost,
		}
		switch {
		case st.firings == 0:
			r.Warning = "goal never fires within the simulation horizon"
		case st.cost.IsPositive():
			pct := finalSavings.Div(st.cost).Mul(decimal.NewFromInt(100))
			if pct.GreaterThan(maxFundedPercent) {
				pct = maxFundedPercent
			}
			if pct.IsNegative() {
				pct = decimal.Zero
			}
			r.FundedPercent = pct
		default:
			// zero-cost goal: trivially funded
			r.FundedPercent = maxFundedPercent
		}
		reports = append(reports, r)
	}
	return reports
}
