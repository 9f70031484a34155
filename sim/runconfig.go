package sim

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/workautomate224-lang/agentverse-sub004/sim/seed"
)

// === Run configuration ===

// RunConfig is the seed-relevant slice of a run configuration, loaded from
// YAML. Seed values stay raw (any) until the determinism gate normalizes
// them, so that a NaN or string seed is reported by the gate instead of
// being mangled at decode time.
type RunConfig struct {
	Name            string   `yaml:"name"`
	Seed            any      `yaml:"seed"`
	AdditionalSeeds []any    `yaml:"additional_seeds,omitempty"`
	RNGDomains      []string `yaml:"rng_domains"`
	Agents          int64    `yaml:"agents,omitempty"`
	Horizon         int64    `yaml:"horizon,omitempty"` // ticks
}

// LoadRunConfig reads and decodes a run configuration from a YAML file.
// Decoding failures are returned as errors; determinism problems are not
// detected here — call Accept to gate the config.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	if cfg.Seed == nil {
		logrus.Warnf("run config %s declares no seed; the determinism gate will reject it", path)
	}
	return &cfg, nil
}

// Domains converts the declared domain names to typed domains. Unknown
// names pass through so the policy gate can name them in its report.
func (c *RunConfig) Domains() []seed.Domain {
	out := make([]seed.Domain, len(c.RNGDomains))
	for i, d := range c.RNGDomains {
		out[i] = seed.Domain(d)
	}
	return out
}

// Accept is the run-acceptance gate. It runs the determinism policy checks
// and, only when every check passes, returns the normalized SeedConfig to
// attach to the run record. A failing report is returned alongside the error
// so callers can surface every message; the run must not start. No default
// seed is ever substituted.
func (c *RunConfig) Accept() (seed.SeedConfig, seed.PolicyReport, error) {
	report := seed.CheckDeterminism(seed.DeterminismConfig{
		Seed:            c.Seed,
		AdditionalSeeds: rawSeeds(c.AdditionalSeeds),
		RNGDomains:      c.Domains(),
	})
	if !report.Passing {
		return seed.SeedConfig{}, report, fmt.Errorf("determinism policy rejected run config %q", c.Name)
	}

	cfg := seed.SeedConfig{Primary: seed.ValidateSeed(c.Seed).Normalized}
	if len(c.AdditionalSeeds) > 0 {
		cfg.Additional = seed.ValidateSeeds(c.AdditionalSeeds).Normalized
	}
	logrus.Debugf("run config %q accepted with seed config %s", c.Name, seed.Serialize(cfg))
	return cfg, report, nil
}

// rawSeeds maps an absent additional-seed list to nil so the policy gate
// skips the additional-seeds check instead of rejecting an empty array.
func rawSeeds(list []any) any {
	if list == nil {
		return nil
	}
	return list
}
