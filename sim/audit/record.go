// Package audit provides evidence-pack record types for deterministic runs.
// It stores pure data plus a small recorder; the export format that wraps
// these records (the Evidence Pack) is owned by the platform's audit
// exporter, not by this package.
package audit

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/workautomate224-lang/agentverse-sub004/sim/seed"
)

// DescriptorRecord is the serialized form of one materialized stream
// descriptor. DerivedSeed is recorded for verification only: replay
// recomputes it from ParentSeed and Path and flags any mismatch.
type DescriptorRecord struct {
	Domain      string `json:"domain"`
	ParentSeed  uint32 `json:"parent_seed"`
	DerivedSeed uint32 `json:"derived_seed"`
	Path        string `json:"path"`
}

// RunRecord aggregates the seed evidence for one run: the serialized seed
// configuration and every stream descriptor the run materialized, in
// materialization order.
type RunRecord struct {
	RunID       string             `json:"run_id"`
	Name        string             `json:"name,omitempty"`
	SeedConfig  string             `json:"seed_config"`
	SecureSeeds bool               `json:"secure_seeds"`
	CreatedAt   time.Time          `json:"created_at"`
	Streams     []DescriptorRecord `json:"streams"`
}

// Recorder accumulates stream descriptors for one run's evidence pack.
//
// Thread-safety: NOT thread-safe; it is owned by the same worker that owns
// the run's StreamProvider.
type Recorder struct {
	record RunRecord
}

// NewRecorder starts an evidence record for a run. secureSeeds flags whether
// freshly minted seeds (if any) came from a cryptographically secure source;
// runs with user-supplied seeds pass true.
func NewRecorder(name string, cfg seed.SeedConfig, secureSeeds bool) *Recorder {
	return &Recorder{record: RunRecord{
		RunID:       uuid.NewString(),
		Name:        name,
		SeedConfig:  seed.Serialize(cfg),
		SecureSeeds: secureSeeds,
		CreatedAt:   time.Now().UTC(),
	}}
}

// Record appends one materialized stream descriptor.
func (r *Recorder) Record(desc seed.StreamDescriptor) {
	r.record.Streams = append(r.record.Streams, DescriptorRecord{
		Domain:      string(desc.Domain),
		ParentSeed:  uint32(desc.ParentSeed),
		DerivedSeed: uint32(desc.DerivedSeed),
		Path:        desc.Path,
	})
}

// Pack returns the accumulated run record.
func (r *Recorder) Pack() RunRecord {
	return r.record
}

// WriteJSON writes the run record as indented JSON.
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.record)
}

// Verify recomputes every recorded derived seed from its parent and path and
// returns the paths that no longer match. A non-empty result means the
// record was corrupted or produced by a diverging implementation.
func (r *Recorder) Verify() []string {
	var mismatched []string
	for _, s := range r.record.Streams {
		if uint32(seed.Derive(seed.Seed(s.ParentSeed), s.Path)) != s.DerivedSeed {
			mismatched = append(mismatched, s.Path)
		}
	}
	return mismatched
}
