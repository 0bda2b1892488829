package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a freshly dealt board",
	Long: `Deal prints one dealt board and exits. Use --seed to reproduce a deal.

Examples:
  freecell deal
  freecell deal --seed 617
  freecell deal --no-shuffle --cascades 4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, cfg, err := setupGame(cmd)
		if err != nil {
			return err
		}

		configureColor(cfg.Color)
		fmt.Fprintln(cmd.OutOrStdout(), renderBoard(g.Board()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
	addGameFlags(dealCmd)
}
