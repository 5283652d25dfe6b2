package craps

import (
	"context"

	"github.com/sirupsen/logrus"
)

// RollMode selects how dice outcomes are produced.
type RollMode string

const (
	// RollModeRandom lets the remote engine roll from its seeded RNG.
	RollModeRandom RollMode = "random"
	// RollModeScript replays caller-supplied dice pairs deterministically.
	RollModeScript RollMode = "script"
)

// DicePair is one scripted dice outcome.
type DicePair [2]int

// ValidateDiceScript checks every entry is a pair of integers in [1,6].
// Violations are preflight-stage errors: they must fail before a session is
// opened, since a malformed script cannot be satisfied mid-session.
func ValidateDiceScript(script []DicePair) error {
	for i, pair := range script {
		for _, die := range pair {
			if die < 1 || die > 6 {
				return stageErrorf(StagePreflight, "invalid dice script entry at index %d", i)
			}
		}
	}
	return nil
}

// ParseDiceScript converts raw decoded script entries (e.g. from a YAML or
// JSON file) into dice pairs, enforcing the two-element shape and die range.
func ParseDiceScript(raw [][]int) ([]DicePair, error) {
	script := make([]DicePair, 0, len(raw))
	for i, entry := range raw {
		if len(entry) != 2 {
			return nil, stageErrorf(StagePreflight, "invalid dice script entry at index %d", i)
		}
		script = append(script, DicePair{entry[0], entry[1]})
	}
	if err := ValidateDiceScript(script); err != nil {
		return nil, err
	}
	return script, nil
}

// RunOptions are the per-run knobs of the session orchestrator.
type RunOptions struct {
	Rolls             int
	StrictMode        bool
	RollMode          RollMode
	ParityMode        bool // implies RollModeScript
	DiceScript        []DicePair
	PrepareFileOutput bool
}

// RunResult couples a run's summary with its journal and optional artifacts.
type RunResult struct {
	Summary    RunSummary
	Journal    Journal
	Aborted    bool
	EndSummary map[string]any
	FileOutput string
	Filename   string
}

// SessionRunner drives one engine session end-to-end. The catalog, registry
// and table are read-only collaborators shared across runs.
type SessionRunner struct {
	Client   *EngineClient
	Catalog  *Catalog
	Registry *Registry
	Table    Table
	Logger   logrus.FieldLogger
}

// NewSessionRunner wires a runner over the default catalog and registry.
func NewSessionRunner(client *EngineClient, table Table) *SessionRunner {
	return &SessionRunner{
		Client:   client,
		Catalog:  DefaultCatalog(),
		Registry: DefaultRegistry(),
		Table:    table,
	}
}

func (sr *SessionRunner) log() logrus.FieldLogger {
	if sr.Logger != nil {
		return sr.Logger
	}
	return logrus.StandardLogger()
}

// Run executes start → place bets → roll loop → end session and reduces the
// journal to a RunSummary.
//
// Fatal failures (transport or non-2xx at start/apply_action/roll, missing
// session id, script exhaustion) unwind as *StageError. Engine-reported errors
// inside 2xx responses accumulate into the summary's error log; under strict
// mode the first such error halts further placement or rolling, but the run
// still proceeds to cleanup and produces a summary. End-session failure is
// logged and never escalated.
func (sr *SessionRunner) Run(ctx context.Context, strat Strategy, cfg APIConfig, opts RunOptions) (*RunResult, error) {
	log := sr.log()

	if strat.Name == "" && len(strat.Bets) == 0 {
		return nil, stageErrorf(StageConfig, "missing strategy")
	}

	// Preflight strictly precedes the start call: a client-side script defect
	// must not open a session it cannot complete.
	useScript := opts.RollMode == RollModeScript || opts.ParityMode
	if useScript {
		if err := ValidateDiceScript(opts.DiceScript); err != nil {
			return nil, err
		}
	}

	startResp, err := sr.Client.StartSession(ctx, cfg.Seed, cfg.ProfileID)
	if err != nil {
		return nil, err
	}
	sessionID, ok := ExtractSessionID(startResp)
	if !ok {
		return nil, stageErrorf(StageStart, "session_id missing from start response")
	}
	var bankrollStart, bankrollEnd *float64
	if b, ok := ExtractBankroll(startResp); ok {
		bankrollStart = &b
		end := b
		bankrollEnd = &end
	}

	var errLog []string
	journal := Journal{}

	for _, bet := range strat.Bets {
		action := mapOrSkip(bet, sr.Table, sr.Catalog, sr.Registry, log)
		if action == nil {
			continue
		}
		resp, err := sr.Client.ApplyAction(ctx, sessionID, action.Verb, action.Args)
		if err != nil {
			return nil, err
		}
		respErrs := ExtractErrors(resp)
		errLog = append(errLog, respErrs...)
		if opts.StrictMode && len(respErrs) > 0 {
			break
		}
	}

	aborted := opts.StrictMode && len(errLog) > 0
	if !aborted {
		for i := 1; i <= opts.Rolls; i++ {
			var dice *DicePair
			if useScript {
				if i > len(opts.DiceScript) {
					return nil, stageErrorf(StageRoll, "dice script exhausted at roll %d", i)
				}
				pair := opts.DiceScript[i-1]
				dice = &pair
			}
			resp, err := sr.Client.Roll(ctx, sessionID, dice)
			if err != nil {
				return nil, err
			}
			respErrs := ExtractErrors(resp)
			errLog = append(errLog, respErrs...)
			record := RollRecord{Index: i, Errors: respErrs, Payload: resp}
			if b, ok := ExtractBankroll(resp); ok {
				record.Bankroll = &b
				end := b
				bankrollEnd = &end
			}
			journal = append(journal, record)
			if opts.StrictMode && len(respErrs) > 0 {
				aborted = true
				break
			}
		}
		if useScript && len(opts.DiceScript) > opts.Rolls {
			log.Warnf("session: unused dice script entries (%d)", len(opts.DiceScript)-opts.Rolls)
		}
	}

	// Best effort: an end-session failure must not discard an otherwise-valid
	// result.
	var endSummary map[string]any
	if resp, err := sr.Client.EndSession(ctx, sessionID); err != nil {
		log.Warnf("session: end_session failed: %v", err)
	} else {
		endSummary = resp
		if b, ok := ExtractBankroll(resp); ok && bankrollEnd == nil {
			bankrollEnd = &b
		}
	}

	if bankrollEnd == nil {
		if b, ok := journal.LastBankroll(); ok {
			bankrollEnd = &b
		}
	}
	if bankrollStart == nil {
		if b, ok := ExtractBankroll(startResp); ok {
			bankrollStart = &b
		}
	}

	summary := RunSummary{
		StrategyName:  strat.Name,
		Seed:          cfg.Seed,
		ProfileID:     cfg.ProfileID,
		Rolls:         len(journal),
		BankrollStart: bankrollStart,
		BankrollEnd:   bankrollEnd,
		Errors:        errLog,
	}
	if bankrollStart != nil && bankrollEnd != nil {
		net := *bankrollEnd - *bankrollStart
		summary.Net = &net
		if len(journal) > 0 {
			ev := net / float64(len(journal))
			summary.EVPerRoll = &ev
		}
	}

	result := &RunResult{
		Summary:    summary,
		Journal:    journal,
		Aborted:    aborted,
		EndSummary: endSummary,
	}
	if opts.PrepareFileOutput {
		out, err := journal.NDJSON()
		if err != nil {
			return nil, stageErrorf(StageRun, "serializing journal: %v", err)
		}
		result.FileOutput = out
		result.Filename = JournalFilename(strat.Name, cfg.Seed)
	}
	return result, nil
}
