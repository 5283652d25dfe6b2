package craps

import "encoding/json"

// Engine responses arrive in several envelope layouts (flat, nested under
// "session", nested under "data"). Extraction is an ordered list of pure
// rules tried in sequence; the first rule that matches wins.

type stringProbe func(payload map[string]any) (string, bool)
type numberProbe func(payload map[string]any) (float64, bool)

var sessionIDProbes = []stringProbe{
	func(p map[string]any) (string, bool) { return asString(p["session_id"]) },
	func(p map[string]any) (string, bool) { return asString(p["sessionId"]) },
	func(p map[string]any) (string, bool) { return asString(dig(p, "session", "id")) },
	func(p map[string]any) (string, bool) { return asString(dig(p, "data", "session", "id")) },
}

var bankrollProbes = []numberProbe{
	func(p map[string]any) (float64, bool) { return asFloat(p["bankroll"]) },
	func(p map[string]any) (float64, bool) { return asFloat(dig(p, "session", "bankroll")) },
	func(p map[string]any) (float64, bool) { return asFloat(dig(p, "data", "bankroll")) },
}

// ExtractSessionID probes the start-response envelope for the session id.
func ExtractSessionID(payload map[string]any) (string, bool) {
	for _, probe := range sessionIDProbes {
		if id, ok := probe(payload); ok {
			return id, true
		}
	}
	return "", false
}

// ExtractBankroll probes a response envelope for a bankroll value.
func ExtractBankroll(payload map[string]any) (float64, bool) {
	for _, probe := range bankrollProbes {
		if v, ok := probe(payload); ok {
			return v, true
		}
	}
	return 0, false
}

// ExtractErrors normalizes a response's "errors" array to strings. String
// elements pass through; anything else is compact-JSON encoded so the error
// log stays printable.
func ExtractErrors(payload map[string]any) []string {
	raw, ok := payload["errors"].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
			continue
		}
		b, err := json.Marshal(e)
		if err != nil {
			continue
		}
		out = append(out, string(b))
	}
	return out
}

// dig walks nested map keys, returning nil when any hop is missing.
func dig(payload map[string]any, keys ...string) any {
	var cur any = payload
	for _, key := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
