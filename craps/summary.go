package craps

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RunSummary is the immutable financial outcome of one session. Net and
// EVPerRoll are nil when a bankroll endpoint never surfaced; Rolls counts
// journal entries actually produced, not the requested roll count.
type RunSummary struct {
	StrategyName  string   `json:"strategy_name"`
	Seed          int64    `json:"seed"`
	ProfileID     string   `json:"profile_id"`
	Rolls         int      `json:"rolls"`
	BankrollStart *float64 `json:"bankroll_start"`
	BankrollEnd   *float64 `json:"bankroll_end"`
	Net           *float64 `json:"net"`
	EVPerRoll     *float64 `json:"ev_per_roll"`
	Errors        []string `json:"errors"`
}

// BatchSummary aggregates RunSummary nets across a seed sweep. Statistics are
// population statistics: the denominator is the run count.
type BatchSummary struct {
	Runs               int      `json:"runs"`
	MeanNet            float64  `json:"mean_net"`
	StddevNet          float64  `json:"stddev_net"`
	MinNet             float64  `json:"min_net"`
	MaxNet             float64  `json:"max_net"`
	WinningRunFraction float64  `json:"winning_run_fraction"`
	RollsPerRun        int      `json:"rolls_per_run"`
	BankrollStart      *float64 `json:"bankroll_start"`
}

// AggregateBatch reduces completed run summaries to batch statistics. A run
// with an unknown net contributes 0. Returns nil when no runs completed.
func AggregateBatch(runs []RunSummary, rollsPerRun int) *BatchSummary {
	if len(runs) == 0 {
		return nil
	}
	nets := make([]float64, len(runs))
	wins := 0
	for i, r := range runs {
		if r.Net != nil {
			nets[i] = *r.Net
			if *r.Net > 0 {
				wins++
			}
		}
	}
	return &BatchSummary{
		Runs:               len(runs),
		MeanNet:            stat.Mean(nets, nil),
		StddevNet:          stat.PopStdDev(nets, nil),
		MinNet:             floats.Min(nets),
		MaxNet:             floats.Max(nets),
		WinningRunFraction: float64(wins) / float64(len(runs)),
		RollsPerRun:        rollsPerRun,
		BankrollStart:      runs[0].BankrollStart,
	}
}
