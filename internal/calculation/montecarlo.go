package calculation

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hhfp/household-projector/internal/domain"
)

// Tabulated default sigmas for the sampled rate distributions.
var (
	DefaultSigmaGrowth    = decimal.NewFromFloat(0.02)
	DefaultSigmaInflation = decimal.NewFromFloat(0.005)
	DefaultSigmaHome      = decimal.NewFromFloat(0.01)
)

// DefaultTrialCount is used when the config leaves TrialCount at zero.
const DefaultTrialCount = 1000

// maxConcurrentTrials bounds the trial worker pool.
const maxConcurrentTrials = 10

// MonteCarloConfig holds configuration for a Monte Carlo run.
type MonteCarloConfig struct {
	TrialCount int
	Seed       int64 // 0 means draw a seed; an explicit seed reproduces bit-identically

	SigmaGrowth    decimal.Decimal
	SigmaInflation decimal.Decimal
	SigmaHome      decimal.Decimal

	// KeepRepresentative retains the median-ending-balance trial's full table.
	KeepRepresentative bool
}

func (cfg *MonteCarloConfig) applyDefaults() {
	if cfg.TrialCount <= 0 {
		cfg.TrialCount = DefaultTrialCount
	}
	if cfg.Seed == 0 {
		cfg.Seed = seedFunc()
	}
	if cfg.SigmaGrowth.IsZero() {
		cfg.SigmaGrowth = DefaultSigmaGrowth
	}
	if cfg.SigmaInflation.IsZero() {
		cfg.SigmaInflation = DefaultSigmaInflation
	}
	if cfg.SigmaHome.IsZero() {
		cfg.SigmaHome = DefaultSigmaHome
	}
}

// sampledRates holds one trial's pre-drawn per-year rates. Drawing the whole
// sequence up front ties the rates to the trial's seed alone, not to how the
// projection consumes them.
type sampledRates struct {
	years []YearRates
}

func (s sampledRates) ratesFor(yearIndex int) YearRates { return s.years[yearIndex] }

// trialRates draws a trial's full rate sequence from its own seeded
// generator. Seeding with seed+trialIndex keeps trials independent of worker
// scheduling, so a fixed seed reproduces the ensemble under any parallelism.
func trialRates(hp *domain.HouseholdProfile, cfg *MonteCarloConfig, trialIndex int) sampledRates {
	rng := rand.New(rand.NewSource(cfg.Seed + int64(trialIndex)))
	base := baseRates(&hp.Assumptions)

	years := make([]YearRates, hp.Assumptions.SimulationYears)
	for i := range years {
		years[i] = YearRates{
			Return:           sampleNormal(rng, base.Return, cfg.SigmaGrowth),
			Inflation:        sampleNormal(rng, base.Inflation, cfg.SigmaInflation),
			HomeAppreciation: sampleNormal(rng, base.HomeAppreciation, cfg.SigmaHome),
		}
	}
	return sampledRates{years: years}
}

// sampleNormal draws Normal(mean, sigma) via the Box-Muller transform.
func sampleNormal(rng *rand.Rand, mean, sigma decimal.Decimal) decimal.Decimal {
	u1 := rng.Float64()
	u2 := rng.Float64()
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean.Add(decimal.NewFromFloat(z).Mul(sigma))
}

// trialOutcome is one trial's per-year combined ending balances.
type trialOutcome struct {
	balances []decimal.Decimal
}

func (t trialOutcome) endingBalance() decimal.Decimal {
	return t.balances[len(t.balances)-1]
}

// RunMonteCarlo executes trialCount independent projections with per-year
// sampled rates and aggregates percentiles and bankruptcy probability.
func (e *Engine) RunMonteCarlo(ctx context.Context, hp *domain.HouseholdProfile, cfg MonteCarloConfig) (*domain.MonteCarloEnsemble, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	for _, w := range hp.GoalWarnings() {
		e.Logger.Warnf("goal skipped: %s", w)
	}
	e.Logger.Infof("monte carlo: %d trials, %d years, seed %d",
		cfg.TrialCount, hp.Assumptions.SimulationYears, cfg.Seed)

	outcomes := make([]trialOutcome, cfg.TrialCount)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentTrials)

	for i := 0; i < cfg.TrialCount; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(trialIndex int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			outcomes[trialIndex] = runTrial(hp, &cfg, trialIndex)
		}(i)
	}
	wg.Wait()

	ensemble := aggregate(hp, &cfg, outcomes)

	if cfg.KeepRepresentative {
		idx := medianTrialIndex(outcomes)
		// Re-running the median trial from its seed is cheaper than
		// retaining every trial's full table.
		goals := NewGoalSchedule(hp.Goals)
		ensemble.Representative = projectWith(hp, goals, trialRates(hp, &cfg, idx))
	}

	return ensemble, nil
}

// runTrial runs one full projection with the trial's sampled rates.
func runTrial(hp *domain.HouseholdProfile, cfg *MonteCarloConfig, trialIndex int) trialOutcome {
	goals := NewGoalSchedule(hp.Goals)
	table := projectWith(hp, goals, trialRates(hp, cfg, trialIndex))

	balances := make([]decimal.Decimal, len(table))
	for i, row := range table {
		balances[i] = row.BalanceEnd
	}
	return trialOutcome{balances: balances}
}

// aggregate folds the trial outcomes into per-year percentile series and
// bankruptcy probabilities.
func aggregate(hp *domain.HouseholdProfile, cfg *MonteCarloConfig, outcomes []trialOutcome) *domain.MonteCarloEnsemble {
	years := hp.Assumptions.SimulationYears
	startYear := hp.StartYear()
	n := len(outcomes)
	hundred := decimal.NewFromInt(100)

	ensemble := &domain.MonteCarloEnsemble{
		TrialCount:     n,
		Seed:           cfg.Seed,
		Years:          make([]domain.YearPercentiles, years),
		EndingBalances: make([]decimal.Decimal, n),
	}
	for i, out := range outcomes {
		ensemble.EndingBalances[i] = out.endingBalance()
	}

	yearBalances := make([]decimal.Decimal, n)
	for y := 0; y < years; y++ {
		bankrupt := 0
		for i, out := range outcomes {
			yearBalances[i] = out.balances[y]
			if out.balances[y].IsNegative() {
				bankrupt++
			}
		}
		sort.Slice(yearBalances, func(a, b int) bool {
			return yearBalances[a].LessThan(yearBalances[b])
		})

		ensemble.Years[y] = domain.YearPercentiles{
			Year:   startYear + y,
			P10:    yearBalances[n/10],
			Median: yearBalances[n/2],
			P90:    yearBalances[9*n/10],
			BankruptcyProbability: decimal.NewFromInt(int64(bankrupt)).
				Div(decimal.NewFromInt(int64(n))).Mul(hundred),
		}
	}
	return ensemble
}

// medianTrialIndex returns the trial whose ending balance sits at the median
// of the sorted ending balances.
func medianTrialIndex(outcomes []trialOutcome) int {
	indexes := make([]int, len(outcomes))
	for i := range indexes {
		indexes[i] = i
	}
	sort.Slice(indexes, func(a, b int) bool {
		return outcomes[indexes[a]].endingBalance().LessThan(outcomes[indexes[b]].endingBalance())
	})
	return indexes[len(indexes)/2]
}
