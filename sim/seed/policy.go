package seed

import "fmt"

// === Determinism policy gate ===

// Check names for PolicyReport entries.
const (
	CheckPrimarySeed     = "primary_seed"
	CheckAdditionalSeeds = "additional_seeds"
	CheckRNGDomains      = "rng_domains"
)

// DeterminismConfig is the seed-related slice of a run configuration, as
// handed to the pre-run gate.
type DeterminismConfig struct {
	Seed            any      // primary seed, raw (pre-normalization)
	AdditionalSeeds any      // optional raw seed collection
	RNGDomains      []Domain // domains the run declares it will draw from
}

// PolicyCheck is one named check inside a PolicyReport.
type PolicyCheck struct {
	Name    string
	Passed  bool
	Details []string // failure messages; empty when Passed
}

// PolicyReport aggregates the determinism checks for one run configuration.
// Passing is the AND of every check.
type PolicyReport struct {
	Passing bool
	Checks  []PolicyCheck
}

// CheckDeterminism is the pre-run determinism gate. It runs three
// independent checks — primary seed validity, additional-seed validity (only
// when additional seeds are present), and RNG domain coverage against
// RequiredDomains — and ANDs their results.
//
// A failing configuration must not be allowed to start a run. Silently
// substituting a default seed would produce a non-reproducible run without
// the caller's knowledge, which is the one failure mode this module exists
// to prevent.
func CheckDeterminism(cfg DeterminismConfig) PolicyReport {
	report := PolicyReport{Passing: true}

	primary := ValidateSeed(cfg.Seed)
	report.add(PolicyCheck{Name: CheckPrimarySeed, Passed: primary.Valid, Details: primary.Errors})

	if cfg.AdditionalSeeds != nil {
		additional := ValidateSeeds(cfg.AdditionalSeeds)
		report.add(PolicyCheck{Name: CheckAdditionalSeeds, Passed: additional.Valid, Details: additional.Errors})
	}

	domains := checkDomainCoverage(cfg.RNGDomains)
	report.add(domains)

	return report
}

func (r *PolicyReport) add(c PolicyCheck) {
	r.Checks = append(r.Checks, c)
	r.Passing = r.Passing && c.Passed
}

// checkDomainCoverage verifies every required domain is declared, naming
// each missing one explicitly, and rejects names outside the closed set.
func checkDomainCoverage(declared []Domain) PolicyCheck {
	check := PolicyCheck{Name: CheckRNGDomains, Passed: true}

	present := make(map[Domain]bool, len(declared))
	for _, d := range declared {
		if !d.Valid() {
			check.Passed = false
			check.Details = append(check.Details, fmt.Sprintf("Unknown RNG domain %q", string(d)))
			continue
		}
		present[d] = true
	}
	for _, required := range RequiredDomains {
		if !present[required] {
			check.Passed = false
			check.Details = append(check.Details, fmt.Sprintf("Missing required RNG domain %q", string(required)))
		}
	}
	return check
}
