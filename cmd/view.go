package cmd

import (
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
)

var redCard = colorize.New(colorize.FgHiRed).SprintFunc()

// configureColor applies the config's color mode to the fatih/color package
func configureColor(mode string) {
	switch mode {
	case "always":
		colorize.NoColor = false
	case "never":
		colorize.NoColor = true
	default:
		colorize.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// renderBoard renders the board with red suits highlighted when colour is enabled
func renderBoard(b *board.Board) string {
	if colorize.NoColor {
		return b.Render()
	}
	return b.RenderWith(func(c card.Card) string {
		if c.Color() == card.Red {
			return redCard(c.String())
		}
		return c.String()
	})
}

// divider returns a horizontal rule as wide as the terminal
func divider() string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 40 // Default if we can't get terminal width
	}
	if width > 80 {
		width = 80
	}
	return strings.Repeat("─", width)
}
