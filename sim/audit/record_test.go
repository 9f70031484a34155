package audit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workautomate224-lang/agentverse-sub004/sim/seed"
)

func TestRecorder_PackFields(t *testing.T) {
	cfg := seed.SeedConfig{Primary: 42, Additional: []seed.Seed{1, 2}}
	rec := NewRecorder("backtest-q3", cfg, true)

	pack := rec.Pack()
	assert.NotEmpty(t, pack.RunID)
	assert.Equal(t, "backtest-q3", pack.Name)
	assert.Equal(t, "42:1,2", pack.SeedConfig)
	assert.True(t, pack.SecureSeeds)
	assert.False(t, pack.CreatedAt.IsZero())
	assert.Empty(t, pack.Streams)
}

func TestRecorder_DistinctRunIDs(t *testing.T) {
	cfg := seed.SeedConfig{Primary: 1}
	a := NewRecorder("a", cfg, true).Pack()
	b := NewRecorder("b", cfg, true).Pack()
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRecorder_RecordsInOrder(t *testing.T) {
	rec := NewRecorder("r", seed.SeedConfig{Primary: 42}, true)
	rec.Record(seed.NewStreamDescriptor(seed.DomainScheduler, 42, "tick:0"))
	rec.Record(seed.NewStreamDescriptor(seed.DomainAgent, 42, "agent:1:tick:0"))

	pack := rec.Pack()
	require.Len(t, pack.Streams, 2)
	assert.Equal(t, "tick:0", pack.Streams[0].Path)
	assert.Equal(t, "scheduler", pack.Streams[0].Domain)
	assert.Equal(t, uint32(42), pack.Streams[0].ParentSeed)
	assert.Equal(t, uint32(seed.DeriveTick(42, 0)), pack.Streams[0].DerivedSeed)
	assert.Equal(t, "agent:1:tick:0", pack.Streams[1].Path)
}

func TestRecorder_Verify(t *testing.T) {
	rec := NewRecorder("r", seed.SeedConfig{Primary: 42}, true)
	rec.Record(seed.NewStreamDescriptor(seed.DomainScheduler, 42, "tick:0"))
	rec.Record(seed.NewStreamDescriptor(seed.DomainEvent, 42, "event:e-1"))
	assert.Empty(t, rec.Verify())

	// A tampered derived seed must be flagged by path.
	rec.record.Streams[1].DerivedSeed++
	assert.Equal(t, []string{"event:e-1"}, rec.Verify())
}

func TestRecorder_WriteJSON(t *testing.T) {
	rec := NewRecorder("r", seed.SeedConfig{Primary: 42}, false)
	rec.Record(seed.NewStreamDescriptor(seed.DomainScheduler, 42, "tick:0"))

	var buf bytes.Buffer
	require.NoError(t, rec.WriteJSON(&buf))

	var decoded RunRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rec.Pack().RunID, decoded.RunID)
	assert.Equal(t, "42", decoded.SeedConfig)
	assert.False(t, decoded.SecureSeeds)
	require.Len(t, decoded.Streams, 1)
	assert.Equal(t, "tick:0", decoded.Streams[0].Path)
}
