package seed

// === RNG domains ===

// Domain names a category of randomness consumption. Every simulation
// subsystem draws from streams keyed to exactly one domain — never a shared
// global stream — so changing one subsystem's behavior cannot perturb
// another's draws.
type Domain string

// The closed set of RNG domains.
const (
	DomainScheduler   Domain = "scheduler"
	DomainAgent       Domain = "agent"
	DomainEvent       Domain = "event"
	DomainEnvironment Domain = "environment"
	DomainObservation Domain = "observation"
	DomainSampling    Domain = "sampling"
)

// AllDomains lists every valid domain in declaration order.
var AllDomains = []Domain{
	DomainScheduler,
	DomainAgent,
	DomainEvent,
	DomainEnvironment,
	DomainObservation,
	DomainSampling,
}

// RequiredDomains is the subset every run must cover before it may start.
// Environment, observation and sampling streams are optional features;
// scheduler, agent and event randomness exists in every run.
var RequiredDomains = []Domain{DomainScheduler, DomainAgent, DomainEvent}

// Valid reports whether d belongs to the closed domain set.
func (d Domain) Valid() bool {
	switch d {
	case DomainScheduler, DomainAgent, DomainEvent, DomainEnvironment, DomainObservation, DomainSampling:
		return true
	}
	return false
}

// === Stream descriptors ===

// StreamDescriptor is the audit record for one derived stream: which domain
// it belongs to, the parent seed it was derived from, the derivation path,
// and the derived seed value. Descriptors are immutable and are never the
// source of truth for replay — replay recomputes DerivedSeed from ParentSeed
// and Path, which is exactly what makes the record verifiable.
type StreamDescriptor struct {
	Domain      Domain
	ParentSeed  Seed
	DerivedSeed Seed
	Path        string
}

// NewStreamDescriptor builds the audit record for one stream, recomputing
// the derived seed from scratch on every call. Nothing is cached: two
// descriptors for the same (parent, path) are equal because the derivation
// is deterministic, not because a value was stored.
func NewStreamDescriptor(domain Domain, parent Seed, path string) StreamDescriptor {
	return StreamDescriptor{
		Domain:      domain,
		ParentSeed:  parent,
		DerivedSeed: Derive(parent, path),
		Path:        path,
	}
}
