package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workautomate224-lang/agentverse-sub004/sim/seed"
)

var (
	deriveParent uint32 // Parent seed to derive from
	derivePath   string // Explicit derivation path
	deriveAgent  int64  // Agent ID (with --tick)
	deriveTick   int64  // Tick index
	subSeedCount int    // Number of batch sub-seeds
)

// deriveCmd recomputes a derived seed from a parent seed and a derivation
// path, exactly as the engine and the audit verifier do
var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a stream seed from a parent seed and derivation path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := derivePath
		if path == "" {
			if !cmd.Flags().Changed("agent") && !cmd.Flags().Changed("tick") {
				return fmt.Errorf("either --path or --agent/--tick is required")
			}
			if cmd.Flags().Changed("agent") {
				path = seed.AgentTickPath(deriveAgent, deriveTick)
			} else {
				path = seed.TickPath(deriveTick)
			}
		}
		cmd.Printf("%s -> %d\n", path, seed.Derive(seed.Seed(deriveParent), path))
		return nil
	},
}

// subseedsCmd generates the homogeneous batch sub-seed chain for a primary seed
var subseedsCmd = &cobra.Command{
	Use:   "subseeds",
	Short: "Generate batch sub-seeds from a primary seed (xorshift32 chain)",
	RunE: func(cmd *cobra.Command, args []string) error {
		seeds, err := seed.SubSeeds(seed.Seed(deriveParent), subSeedCount)
		if err != nil {
			return err
		}
		for i, s := range seeds {
			cmd.Printf("%d: %d\n", i, s)
		}
		return nil
	},
}

func init() {
	deriveCmd.Flags().Uint32Var(&deriveParent, "parent", 0, "Parent seed")
	deriveCmd.Flags().StringVar(&derivePath, "path", "", "Derivation path (e.g. agent:42:tick:7)")
	deriveCmd.Flags().Int64Var(&deriveAgent, "agent", 0, "Agent ID (derives agent:<id>:tick:<tick>)")
	deriveCmd.Flags().Int64Var(&deriveTick, "tick", 0, "Tick index")
	rootCmd.AddCommand(deriveCmd)

	subseedsCmd.Flags().Uint32Var(&deriveParent, "primary", 0, "Primary seed")
	subseedsCmd.Flags().IntVar(&subSeedCount, "count", 1, "Number of sub-seeds (1-100)")
	rootCmd.AddCommand(subseedsCmd)
}
