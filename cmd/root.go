package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/logger"
)

var logLevel string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "freecell",
	Short: "Play FreeCell solitaire in the terminal",
	Long: `FreeCell is a solitaire game played with a single 52-card deck.
Cards are dealt face up into cascade piles; move them through the open cells
and build each suit from Ace to King on the foundations to win.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(logLevel, cmd.ErrOrStderr())
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
