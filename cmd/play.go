package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game",
	Long: `Play deals a game and reads moves from standard input.

A move is three tokens: the source pile, the card number within it (counting
from the bottom, starting at 1) and the destination pile. Piles are written
as a letter and a number: F for foundations, O for open piles, C for cascades.
Type q at any point to quit.

Examples:
  C1 7 O1     move the 7th card of cascade 1 to open pile 1
  O1 1 F2     move the card in open pile 1 to foundation 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, cfg, err := setupGame(cmd)
		if err != nil {
			return err
		}

		configureColor(cfg.Color)
		return playGame(g, cmd.InOrStdin(), cmd.OutOrStdout(), func() string {
			return renderBoard(g.Board())
		})
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	addGameFlags(playCmd)
}

// playGame runs the move loop until the game is won, the player quits or input ends
func playGame(g *game.Game, in io.Reader, out io.Writer, render func() string) error {
	if !g.Started() {
		return game.ErrNotStarted
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	for {
		fmt.Fprintln(out, render())
		if g.IsOver() {
			fmt.Fprintln(out, "Game over.")
			return nil
		}

		tokens := make([]string, 0, 3)
		for len(tokens) < 3 {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				return errors.New("input ended before the game was over")
			}
			tok := scanner.Text()
			if strings.EqualFold(tok, "q") {
				fmt.Fprintln(out, "Game quit prematurely.")
				return nil
			}
			tokens = append(tokens, tok)
		}

		req, err := game.ParseRequest(tokens[0], tokens[1], tokens[2])
		if err == nil {
			err = g.Move(req)
		}
		if err != nil {
			fmt.Fprintf(out, "Invalid move. Try again. %v\n", err)
			continue
		}
		fmt.Fprintln(out, divider())
	}
}
