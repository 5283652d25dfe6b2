package craps

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// BatchOptions configure one seed sweep. An explicit Seeds list takes
// precedence; otherwise SeedCount seeds counting up from SeedStart.
type BatchOptions struct {
	Seeds      []int64
	SeedStart  int64
	SeedCount  int
	Rolls      int
	StrictMode bool
	RollMode   RollMode
	ParityMode bool
	DiceScript []DicePair
}

// BatchResult is the ordered list of completed run summaries plus their
// aggregate statistics (nil when no run completed).
type BatchResult struct {
	Runs    []RunSummary
	Summary *BatchSummary
}

// BatchRunner executes one session per seed, strictly in order and strictly
// sequentially: sessions hold server-side state and aggregate statistics must
// reproduce across identical seed lists.
type BatchRunner struct {
	Session *SessionRunner
	Logger  logrus.FieldLogger
}

// BuildSeedList resolves the effective seed list per the precedence rule.
func BuildSeedList(seeds []int64, seedStart int64, seedCount int) []int64 {
	if len(seeds) > 0 {
		return seeds
	}
	if seedCount <= 0 {
		return nil
	}
	out := make([]int64, seedCount)
	for i := range out {
		out[i] = seedStart + int64(i)
	}
	return out
}

// Run sweeps the seeds. Any individual run's fatal error aborts the batch
// immediately, tagged with the seed at which it occurred; remaining seeds are
// not attempted.
func (br *BatchRunner) Run(ctx context.Context, strat Strategy, cfg APIConfig, opts BatchOptions) (*BatchResult, error) {
	log := br.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if strat.Name == "" && len(strat.Bets) == 0 {
		return nil, stageErrorf(StageConfig, "missing strategy")
	}
	seeds := BuildSeedList(opts.Seeds, opts.SeedStart, opts.SeedCount)
	if len(seeds) == 0 {
		return nil, stageErrorf(StageConfig, "missing seeds (provide a seed list or seed_start + seed_count)")
	}

	runOpts := RunOptions{
		Rolls:      opts.Rolls,
		StrictMode: opts.StrictMode,
		RollMode:   opts.RollMode,
		ParityMode: opts.ParityMode,
		DiceScript: opts.DiceScript,
	}

	runs := make([]RunSummary, 0, len(seeds))
	for _, seed := range seeds {
		runCfg := cfg
		runCfg.Seed = seed
		result, err := br.Session.Run(ctx, strat, runCfg, runOpts)
		if err != nil {
			return nil, tagSeed(err, seed)
		}
		log.Debugf("batch: seed %d completed with %d rolls", seed, result.Summary.Rolls)
		runs = append(runs, result.Summary)
	}

	return &BatchResult{
		Runs:    runs,
		Summary: AggregateBatch(runs, opts.Rolls),
	}, nil
}

// tagSeed stamps the failing seed onto a stage error, wrapping non-stage
// errors (e.g. context cancellation) as run-stage failures first.
func tagSeed(err error, seed int64) error {
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		stageErr = &StageError{Stage: StageRun, Message: err.Error(), Err: err}
	}
	stageErr.Seed = &seed
	return stageErr
}
