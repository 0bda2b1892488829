package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
	"github.com/arcanaland/freecell/internal/game"
)

func newTestGame(t *testing.T, cascades int, cards []card.Card) *game.Game {
	t.Helper()
	opts := game.DefaultOptions()
	opts.CascadePiles = cascades
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	g, err := game.New(opts)
	require.NoError(t, err)
	require.NoError(t, g.Start(cards, false))
	return g
}

// sortedDeal stacks each suit King-low in its own cascade of a four-cascade board
func sortedDeal() []card.Card {
	var d []card.Card
	for i := len(card.Ranks) - 1; i >= 0; i-- {
		for _, s := range card.Suits {
			d = append(d, card.New(card.Ranks[i], s))
		}
	}
	return d
}

func TestPlayGameQuit(t *testing.T) {
	g := newTestGame(t, 8, deck.Standard())
	var out bytes.Buffer

	err := playGame(g, strings.NewReader("C1 Q"), &out, g.Render)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), g.Render()))
	assert.Contains(t, out.String(), "Game quit prematurely.")
}

func TestPlayGameInvalidMoves(t *testing.T) {
	g := newTestGame(t, 8, deck.Standard())
	before := g.Render()
	var out bytes.Buffer

	err := playGame(g, strings.NewReader("C1 1 O1\nX1 1 O1\nC9 7 O1\nq"), &out, g.Render)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid move. Try again."))
	assert.Contains(t, out.String(), "illegal move")
	assert.Contains(t, out.String(), "invalid move request")
	assert.Contains(t, out.String(), "pile not found")
	assert.Equal(t, before, g.Render())
}

func TestPlayGameValidMove(t *testing.T) {
	g := newTestGame(t, 8, deck.Standard())
	var out bytes.Buffer

	err := playGame(g, strings.NewReader("C1 7 O1 q"), &out, g.Render)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Invalid move")
	assert.Contains(t, g.Render(), "O1: 10♠")
}

func TestPlayGameToCompletion(t *testing.T) {
	g := newTestGame(t, 4, sortedDeal())

	var moves []string
	for r := len(card.Ranks); r >= 1; r-- {
		for j := 1; j <= 4; j++ {
			moves = append(moves, "C"+strconv.Itoa(j), strconv.Itoa(r), "F"+strconv.Itoa(j))
		}
	}
	var out bytes.Buffer

	err := playGame(g, strings.NewReader(strings.Join(moves, " ")), &out, g.Render)
	require.NoError(t, err)
	assert.True(t, g.IsOver())
	assert.True(t, strings.HasSuffix(out.String(), "Game over.\n"))
	assert.Contains(t, out.String(), "F4: A♠, 2♠, 3♠, 4♠, 5♠, 6♠, 7♠, 8♠, 9♠, 10♠, J♠, Q♠, K♠")
}

func TestPlayGameInputEnds(t *testing.T) {
	g := newTestGame(t, 8, deck.Standard())
	err := playGame(g, strings.NewReader("C1 7"), io.Discard, g.Render)
	assert.Error(t, err)
}

func TestPlayGameNotStarted(t *testing.T) {
	g, err := game.New(game.DefaultOptions())
	require.NoError(t, err)
	assert.ErrorIs(t, playGame(g, strings.NewReader("q"), io.Discard, g.Render), game.ErrNotStarted)
}

func TestValidateAndDeckCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		RootCmd.SetOut(&out)
		RootCmd.SetErr(io.Discard)
		RootCmd.SetArgs(args)
		err := Execute()
		return out.String(), err
	}

	out, err := run("deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "does not exist")

	out, err = run("deck", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck library initialized at:")

	out, err = run("deck", "set-default", "standard")
	require.NoError(t, err)
	assert.Contains(t, out, "Default deck set to: standard")

	out, err = run("deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "* standard (Standard) [DEFAULT]")

	out, err = run("validate", filepath.Join(dir, "data", "freecell", "decks", "standard.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	short := filepath.Join(dir, "short.toml")
	require.NoError(t, deck.Write(short, "Short", deck.Standard()[:51]))
	out, err = run("validate", short)
	assert.Error(t, err)
	assert.Contains(t, out, "missing card: K♠")

	out, err = run("deal", "--no-shuffle", "--color", "never", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "C1: A♣, 9♣, 4♦, Q♦, 7♥, 2♠, 10♠")
}
