package craps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAPIConfig(t *testing.T) {
	cfg := DefaultAPIConfig()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, "default", cfg.ProfileID)
	assert.Equal(t, SeedModeRandom, cfg.SeedMode)
	assert.Equal(t, 5000, cfg.TimeoutMS)
}

func TestLoadAPIConfig_FileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	doc := `
base_url: https://engine.example.com
seed_mode: fixed
seed: 42
auth_token: sekret
retries: 3
retry_backoff_ms: 250
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadAPIConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://engine.example.com", cfg.BaseURL)
	assert.Equal(t, SeedModeFixed, cfg.SeedMode)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "sekret", cfg.AuthToken)
	assert.Equal(t, 3, cfg.Retries)
	// unset fields fall back to defaults
	assert.Equal(t, "default", cfg.ProfileID)
	assert.Equal(t, 5000, cfg.TimeoutMS)
}

func TestLoadAPIConfig_MissingFile(t *testing.T) {
	_, err := LoadAPIConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolveSeed(t *testing.T) {
	fixed := APIConfig{SeedMode: SeedModeFixed, Seed: 99}
	assert.Equal(t, int64(99), fixed.ResolveSeed())

	random := APIConfig{SeedMode: SeedModeRandom}
	seed := random.ResolveSeed()
	assert.GreaterOrEqual(t, seed, int64(0))
	assert.Less(t, seed, int64(2147483647))
}
