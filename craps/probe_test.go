package craps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSessionID_EnvelopeShapes(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"flat snake_case", map[string]any{"session_id": "abc"}},
		{"flat camelCase", map[string]any{"sessionId": "abc"}},
		{"nested session", map[string]any{"session": map[string]any{"id": "abc"}}},
		{"nested data envelope", map[string]any{"data": map[string]any{"session": map[string]any{"id": "abc"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ExtractSessionID(tc.payload)
			assert.True(t, ok)
			assert.Equal(t, "abc", id)
		})
	}
}

func TestExtractSessionID_FirstRuleWins(t *testing.T) {
	id, ok := ExtractSessionID(map[string]any{
		"session_id": "flat",
		"session":    map[string]any{"id": "nested"},
	})
	assert.True(t, ok)
	assert.Equal(t, "flat", id)
}

func TestExtractSessionID_Absent(t *testing.T) {
	_, ok := ExtractSessionID(map[string]any{"status": "ok"})
	assert.False(t, ok)
}

func TestExtractBankroll_EnvelopeShapes(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"flat", map[string]any{"bankroll": 300.0}},
		{"nested session", map[string]any{"session": map[string]any{"bankroll": 300.0}}},
		{"nested data", map[string]any{"data": map[string]any{"bankroll": 300.0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := ExtractBankroll(tc.payload)
			assert.True(t, ok)
			assert.Equal(t, 300.0, v)
		})
	}
}

func TestExtractBankroll_ZeroIsPresent(t *testing.T) {
	v, ok := ExtractBankroll(map[string]any{"bankroll": 0.0})
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestExtractBankroll_Absent(t *testing.T) {
	_, ok := ExtractBankroll(map[string]any{"session_id": "abc"})
	assert.False(t, ok)
}

func TestExtractErrors_NormalizesToStrings(t *testing.T) {
	errs := ExtractErrors(map[string]any{"errors": []any{
		"no point established",
		map[string]any{"code": 7},
	}})

	assert.Equal(t, []string{"no point established", `{"code":7}`}, errs)
}

func TestExtractErrors_MissingOrEmpty(t *testing.T) {
	assert.Nil(t, ExtractErrors(map[string]any{}))
	assert.Nil(t, ExtractErrors(map[string]any{"errors": []any{}}))
	assert.Nil(t, ExtractErrors(map[string]any{"errors": "oops"}))
}
