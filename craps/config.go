package craps

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SeedMode selects how a single run's seed is chosen when no explicit seed
// list is in play.
type SeedMode string

const (
	SeedModeFixed  SeedMode = "fixed"
	SeedModeRandom SeedMode = "random"
)

// APIConfig addresses one remote engine. Retries and RetryBackoffMS are
// carried for external retry collaborators; the orchestrators never retry.
type APIConfig struct {
	BaseURL        string   `yaml:"base_url"`
	ProfileID      string   `yaml:"profile_id"`
	Seed           int64    `yaml:"seed"`
	SeedMode       SeedMode `yaml:"seed_mode"`
	TimeoutMS      int      `yaml:"timeout_ms"`
	Retries        int      `yaml:"retries"`
	RetryBackoffMS int      `yaml:"retry_backoff_ms"`
	AuthToken      string   `yaml:"auth_token"`
}

// DefaultAPIConfig returns the local-engine defaults.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:   "http://127.0.0.1:8000",
		ProfileID: "default",
		SeedMode:  SeedModeRandom,
		TimeoutMS: 5000,
	}
}

// applyDefaults fills zero-valued fields with DefaultAPIConfig values.
func (c *APIConfig) applyDefaults() {
	def := DefaultAPIConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.ProfileID == "" {
		c.ProfileID = def.ProfileID
	}
	if c.SeedMode == "" {
		c.SeedMode = def.SeedMode
	}
	if c.TimeoutMS <= 0 {
		c.TimeoutMS = def.TimeoutMS
	}
}

// LoadAPIConfig reads a YAML API config file over the defaults.
func LoadAPIConfig(path string) (APIConfig, error) {
	cfg := APIConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading api config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing api config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ResolveSeed returns the configured seed in fixed mode and a wall-clock
// derived seed otherwise, matching the engine's 31-bit seed space.
func (c APIConfig) ResolveSeed() int64 {
	if c.SeedMode == SeedModeFixed {
		return c.Seed
	}
	return time.Now().UnixMilli() % 2147483647
}
