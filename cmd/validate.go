package cmd

import (
	"github.com/spf13/cobra"

	sim "github.com/workautomate224-lang/agentverse-sub004/sim"
	"github.com/workautomate224-lang/agentverse-sub004/sim/seed"
)

var runConfigPath string // Run config YAML file

// validateCmd gates a run configuration through the determinism policy
// checks, mirroring what the run-acceptance path does before a run starts
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a run config's seed material against the determinism policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := sim.LoadRunConfig(runConfigPath)
		if err != nil {
			return err
		}
		seedCfg, report, acceptErr := cfg.Accept()
		for _, check := range report.Checks {
			status := "PASS"
			if !check.Passed {
				status = "FAIL"
			}
			cmd.Printf("%s: %s\n", check.Name, status)
			for _, detail := range check.Details {
				cmd.Printf("  - %s\n", detail)
			}
		}
		if acceptErr != nil {
			return acceptErr
		}
		cmd.Printf("accepted: seed config %s\n", seed.Serialize(seedCfg))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to run config YAML")
	_ = validateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(validateCmd)
}
