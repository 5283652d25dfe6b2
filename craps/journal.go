package craps

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// RollRecord is one journal entry: the engine's roll response tagged with its
// 1-based roll index. Bankroll and Errors are pre-extracted views over Payload.
type RollRecord struct {
	Index    int
	Bankroll *float64
	Errors   []string
	Payload  map[string]any
}

// MarshalJSON flattens the record to the engine's response fields plus the
// index tag, preserving the original journal line shape.
func (r RollRecord) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(r.Payload)+1)
	for k, v := range r.Payload {
		merged[k] = v
	}
	merged["index"] = r.Index
	return json.Marshal(merged)
}

// Journal is the ordered per-roll response log of one session.
type Journal []RollRecord

// LastBankroll returns the bankroll of the latest entry that reported one.
func (j Journal) LastBankroll() (float64, bool) {
	for i := len(j) - 1; i >= 0; i-- {
		if j[i].Bankroll != nil {
			return *j[i].Bankroll, true
		}
	}
	return 0, false
}

// NDJSON serializes the journal one JSON record per line.
func (j Journal) NDJSON() (string, error) {
	lines := make([]string, 0, len(j))
	for _, rec := range j {
		b, err := json.Marshal(rec)
		if err != nil {
			return "", fmt.Errorf("encoding journal entry %d: %w", rec.Index, err)
		}
		lines = append(lines, string(b))
	}
	return strings.Join(lines, "\n"), nil
}

var filenameUnsafe = regexp.MustCompile(`[^\w.-]+`)

// JournalFilename derives the artifact name for a session's journal.
func JournalFilename(strategyName string, seed int64) string {
	if strategyName == "" {
		strategyName = "strategy"
	}
	safe := filenameUnsafe.ReplaceAllString(strategyName, "_")
	return fmt.Sprintf("%s_%d_journal.ndjson", safe, seed)
}
