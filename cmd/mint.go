package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/workautomate224-lang/agentverse-sub004/sim/seed"
)

var mintCount int // Number of root seeds to mint

// mintCmd mints fresh root seeds for new run configurations
var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint fresh root seeds (pairwise distinct)",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := seed.NewGenerator()
		seeds, err := gen.GenerateSeeds(mintCount)
		if err != nil {
			return err
		}
		logrus.Infof("minted %d root seeds (secure=%v)", len(seeds), gen.Secure())
		for _, s := range seeds {
			cmd.Println(s)
		}
		return nil
	},
}

func init() {
	mintCmd.Flags().IntVar(&mintCount, "count", 1, "Number of seeds to mint (1-100)")
	rootCmd.AddCommand(mintCmd)
}
