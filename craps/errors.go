package craps

import "fmt"

// Stage identifies where in the orchestration a fatal error occurred.
type Stage string

const (
	StageConfig      Stage = "config"
	StagePreflight   Stage = "preflight"
	StageStart       Stage = "start"
	StageApplyAction Stage = "apply_action"
	StageRoll        Stage = "roll"
	StageEndSession  Stage = "end_session"
	StageRun         Stage = "run"
)

// StageError is the tagged fatal-error variant carried out of the orchestrators.
// StatusCode and ResponseBody are populated for transport/protocol failures;
// Seed is set by the batch orchestrator on the run that failed.
type StageError struct {
	Stage        Stage
	Message      string
	StatusCode   int
	ResponseBody string
	Seed         *int64
	Err          error
}

func (e *StageError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	s := fmt.Sprintf("%s: %s", e.Stage, msg)
	if e.StatusCode != 0 {
		s = fmt.Sprintf("%s (status %d)", s, e.StatusCode)
	}
	if e.Seed != nil {
		s = fmt.Sprintf("%s (seed %d)", s, *e.Seed)
	}
	return s
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErrorf(stage Stage, format string, args ...any) *StageError {
	return &StageError{Stage: stage, Message: fmt.Sprintf(format, args...)}
}

// UnknownBetError signals a bet key absent from the catalog. Callers skip the
// bet and continue; it never aborts a run or batch.
type UnknownBetError struct {
	Key string
}

func (e *UnknownBetError) Error() string {
	return fmt.Sprintf("unknown bet key %q", e.Key)
}

// RegistryError reports a verb-registry schema violation: an unknown verb, a
// missing required argument, a type mismatch, or a constraint failure.
type RegistryError struct {
	Verb    string
	Message string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("verb %q: %s", e.Verb, e.Message)
}

func registryErrorf(verb, format string, args ...any) *RegistryError {
	return &RegistryError{Verb: verb, Message: fmt.Sprintf(format, args...)}
}
