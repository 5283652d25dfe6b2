package craps

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// engineCall records one request the stub engine received.
type engineCall struct {
	Path string
	Body map[string]any
}

// stubEngine is an in-process remote engine for orchestrator tests. The
// handler maps (path, body) to (status, response); every request is recorded
// in arrival order.
type stubEngine struct {
	mu      sync.Mutex
	calls   []engineCall
	handler func(path string, body map[string]any) (int, any)
	srv     *httptest.Server
}

func newStubEngine(handler func(path string, body map[string]any) (int, any)) *stubEngine {
	e := &stubEngine{handler: handler}
	e.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		e.mu.Lock()
		e.calls = append(e.calls, engineCall{Path: r.URL.Path, Body: body})
		e.mu.Unlock()
		status, resp := e.handler(r.URL.Path, body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	return e
}

func (e *stubEngine) Close() { e.srv.Close() }

// config returns an APIConfig addressing the stub.
func (e *stubEngine) config(seed int64) APIConfig {
	cfg := DefaultAPIConfig()
	cfg.BaseURL = e.srv.URL
	cfg.Seed = seed
	cfg.SeedMode = SeedModeFixed
	cfg.TimeoutMS = 2000
	return cfg
}

// runner builds a SessionRunner over the stub with default catalog/registry.
func (e *stubEngine) runner(seed int64) *SessionRunner {
	return NewSessionRunner(NewEngineClient(e.config(seed)), DefaultTable())
}

// callsTo filters recorded calls by path.
func (e *stubEngine) callsTo(path string) []engineCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []engineCall
	for _, c := range e.calls {
		if c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// happyHandler is the default engine behavior: session "abc" starting at
// bankroll 300, every roll paying 10, clean end.
func happyHandler(path string, body map[string]any) (int, any) {
	switch path {
	case "/session/start":
		return http.StatusOK, map[string]any{"session_id": "abc", "bankroll": 300}
	case "/session/apply_action":
		return http.StatusOK, map[string]any{}
	case "/session/roll":
		return http.StatusOK, map[string]any{"bankroll": 300}
	case "/end_session":
		return http.StatusOK, map[string]any{"bankroll": 300}
	default:
		return http.StatusNotFound, map[string]any{}
	}
}

// passLineStrategy is a minimal valid one-bet strategy.
func passLineStrategy() Strategy {
	return Strategy{
		Name: "pass line only",
		Bets: []BetSpec{{Key: "pass_line", BaseAmount: 10, UnitType: UnitDollars}},
	}
}

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }
