package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns combined output.
// Flag values persist on the shared command tree between Execute calls, so
// every changed flag is reset to its default first.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		})
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDeriveCommand_PinnedValue(t *testing.T) {
	out, err := execute(t, "derive", "--parent", "42", "--path", "tick:0")
	require.NoError(t, err)
	assert.Equal(t, "tick:0 -> 2041454141\n", out)
}

func TestDeriveCommand_AgentTick(t *testing.T) {
	out, err := execute(t, "derive", "--parent", "42", "--agent", "42", "--tick", "7")
	require.NoError(t, err)
	assert.Equal(t, "agent:42:tick:7 -> 1452026487\n", out)
}

func TestDeriveCommand_RequiresPathOrIndices(t *testing.T) {
	_, err := execute(t, "derive", "--parent", "42")
	assert.Error(t, err)
}

func TestSubseedsCommand_PinnedChain(t *testing.T) {
	out, err := execute(t, "subseeds", "--primary", "42", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, "0: 11355432\n1: 2836018348\n2: 476557059\n", out)
}

func TestSubseedsCommand_InvalidCount(t *testing.T) {
	_, err := execute(t, "subseeds", "--primary", "42", "--count", "0")
	assert.Error(t, err)
}

func TestMintCommand_DistinctSeeds(t *testing.T) {
	out, err := execute(t, "mint", "--count", "5")
	require.NoError(t, err)
	lines := bytes.Fields([]byte(out))
	assert.Len(t, lines, 5)
	seen := map[string]bool{}
	for _, l := range lines {
		assert.False(t, seen[string(l)], "duplicate minted seed %s", l)
		seen[string(l)] = true
	}
}

func TestValidateCommand_AcceptsGoodConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: ok
seed: 42
additional_seeds: [1, 2, 3]
rng_domains: [scheduler, agent, event]
`), 0o644))

	out, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "primary_seed: PASS")
	assert.Contains(t, out, "rng_domains: PASS")
	assert.Contains(t, out, "accepted: seed config 42:1,2,3")
}

func TestValidateCommand_RejectsMissingDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: bad
seed: 42
rng_domains: [scheduler, agent]
`), 0o644))

	out, err := execute(t, "validate", "--config", path)
	assert.Error(t, err)
	assert.Contains(t, out, "rng_domains: FAIL")
	assert.Contains(t, out, `Missing required RNG domain "event"`)
}

func TestAuditCommand_ReportsCollisions(t *testing.T) {
	out, err := execute(t, "audit", "--seed", "42", "--agents", "20", "--ticks", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "samples:             400 (20 agents x 20 ticks)")
	assert.Contains(t, out, "collisions:          0")
}
