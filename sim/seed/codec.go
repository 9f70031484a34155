package seed

import (
	"fmt"
	"strconv"
	"strings"
)

// === SeedConfig codec ===

// Serialize renders a SeedConfig as the compact string stored on run
// records: "primary" when there are no additional seeds, otherwise
// "primary:a,b,c".
func Serialize(cfg SeedConfig) string {
	primary := strconv.FormatUint(uint64(cfg.Primary), 10)
	if len(cfg.Additional) == 0 {
		return primary
	}
	parts := make([]string, len(cfg.Additional))
	for i, s := range cfg.Additional {
		parts[i] = strconv.FormatUint(uint64(s), 10)
	}
	return primary + ":" + strings.Join(parts, ",")
}

// Deserialize is the exact inverse of Serialize. It performs no semantic
// validation — bounds and duplicate checks are the caller's job via
// ValidateSeeds — but text that is not in codec form at all is rejected
// with ErrMalformedConfig.
func Deserialize(s string) (SeedConfig, error) {
	head, tail, hasAdditional := strings.Cut(s, ":")
	primary, err := parseSeed(head)
	if err != nil {
		return SeedConfig{}, fmt.Errorf("%w: primary seed %q", ErrMalformedConfig, head)
	}
	cfg := SeedConfig{Primary: primary}
	if !hasAdditional {
		return cfg, nil
	}
	for _, part := range strings.Split(tail, ",") {
		s, err := parseSeed(part)
		if err != nil {
			return SeedConfig{}, fmt.Errorf("%w: additional seed %q", ErrMalformedConfig, part)
		}
		cfg.Additional = append(cfg.Additional, s)
	}
	return cfg, nil
}

func parseSeed(s string) (Seed, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Seed(v), nil
}
