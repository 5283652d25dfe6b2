package craps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// EngineClient issues the four JSON POST calls the remote engine exposes.
// Every call is a blocking request/response bounded by the configured
// per-request timeout; no retries happen at this layer.
type EngineClient struct {
	BaseURL   string
	AuthToken string
	HTTP      *http.Client
}

// NewEngineClient builds a client for the given API config.
func NewEngineClient(cfg APIConfig) *EngineClient {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if cfg.TimeoutMS <= 0 {
		timeout = 5 * time.Second
	}
	return &EngineClient{
		BaseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		AuthToken: cfg.AuthToken,
		HTTP:      &http.Client{Timeout: timeout},
	}
}

// post sends body as JSON and decodes the JSON response envelope. Transport
// failures and non-2xx statuses become *StageError values tagged with stage.
func (c *EngineClient) post(ctx context.Context, path string, body any, stage Stage) (map[string]any, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &StageError{Stage: stage, Message: fmt.Sprintf("encoding request: %v", err), Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, &StageError{Stage: stage, Message: fmt.Sprintf("building request: %v", err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &StageError{Stage: stage, Message: fmt.Sprintf("%s failed: %v", path, err), Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &StageError{Stage: stage, Message: fmt.Sprintf("reading response: %v", err), StatusCode: res.StatusCode, Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StageError{
			Stage:        stage,
			Message:      fmt.Sprintf("%s failed", path),
			StatusCode:   res.StatusCode,
			ResponseBody: string(raw),
		}
	}

	payload := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, &StageError{
				Stage:        stage,
				Message:      fmt.Sprintf("decoding response: %v", err),
				StatusCode:   res.StatusCode,
				ResponseBody: string(raw),
				Err:          err,
			}
		}
	}
	return payload, nil
}

// StartSession opens a new engine session for seed under profileID.
func (c *EngineClient) StartSession(ctx context.Context, seed int64, profileID string) (map[string]any, error) {
	return c.post(ctx, "/session/start", map[string]any{
		"seed":       seed,
		"profile_id": profileID,
	}, StageStart)
}

// ApplyAction places one mapped action into the session.
func (c *EngineClient) ApplyAction(ctx context.Context, sessionID, verb string, args map[string]any) (map[string]any, error) {
	return c.post(ctx, "/session/apply_action", map[string]any{
		"session_id": sessionID,
		"verb":       verb,
		"args":       args,
	}, StageApplyAction)
}

// Roll executes one dice outcome. A non-nil dice pair requests a scripted
// outcome; nil lets the engine roll randomly.
func (c *EngineClient) Roll(ctx context.Context, sessionID string, dice *DicePair) (map[string]any, error) {
	body := map[string]any{"session_id": sessionID}
	if dice != nil {
		body["dice"] = []int{dice[0], dice[1]}
	}
	return c.post(ctx, "/session/roll", body, StageRoll)
}

// EndSession closes the session. Callers treat failures as best-effort.
func (c *EngineClient) EndSession(ctx context.Context, sessionID string) (map[string]any, error) {
	return c.post(ctx, "/end_session", map[string]any{"session_id": sessionID}, StageEndSession)
}
