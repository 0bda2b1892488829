package game

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
	"github.com/arcanaland/freecell/internal/pile"
)

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func TestNewRejectsBadLayout(t *testing.T) {
	opts := quietOptions()
	opts.CascadePiles = 2
	_, err := New(opts)
	assert.ErrorIs(t, err, board.ErrInvalidConfig)
}

func TestBeforeStart(t *testing.T) {
	g, err := New(quietOptions())
	require.NoError(t, err)

	assert.False(t, g.Started())
	assert.Equal(t, uuid.Nil, g.ID())
	assert.Equal(t, "", g.Render())
	assert.False(t, g.IsOver())
	assert.ErrorIs(t, g.Move(Request{Source: pile.Cascade, Dest: pile.Open}), ErrNotStarted)
}

func TestStart(t *testing.T) {
	g, err := New(quietOptions())
	require.NoError(t, err)

	require.NoError(t, g.Start(nil, false))
	assert.True(t, g.Started())
	assert.NotEqual(t, uuid.Nil, g.ID())
	assert.False(t, g.IsOver())
	assert.Contains(t, g.Render(), "C1: A♣, 9♣, 4♦, Q♦, 7♥, 2♠, 10♠")

	first := g.ID()
	require.NoError(t, g.Start(deck.Standard(), false))
	assert.NotEqual(t, first, g.ID(), "each deal gets its own id")
}

func TestStartInvalidDeckKeepsState(t *testing.T) {
	g, err := New(quietOptions())
	require.NoError(t, err)

	err = g.Start(deck.Standard()[:10], false)
	assert.ErrorIs(t, err, board.ErrInvalidDeck)
	assert.False(t, g.Started())
}

func TestStartShuffledIsDeterministicWithSeed(t *testing.T) {
	render := func() string {
		opts := quietOptions()
		opts.Rand = rand.New(rand.NewPCG(42, 42))
		g, err := New(opts)
		require.NoError(t, err)
		require.NoError(t, g.Start(nil, true))
		return g.Render()
	}
	assert.Equal(t, render(), render())
}

func TestMove(t *testing.T) {
	g, err := New(quietOptions())
	require.NoError(t, err)
	require.NoError(t, g.Start(nil, false))
	before := g.Render()

	err = g.Move(Request{Source: pile.Cascade, PileIndex: 0, CardIndex: 0, Dest: pile.Open, DestIndex: 0})
	assert.ErrorIs(t, err, board.ErrIllegalMove)
	assert.Equal(t, before, g.Render())

	err = g.Move(Request{Source: pile.Cascade, PileIndex: 12, CardIndex: 0, Dest: pile.Open, DestIndex: 0})
	assert.ErrorIs(t, err, board.ErrPileNotFound)

	require.NoError(t, g.Move(Request{Source: pile.Cascade, PileIndex: 0, CardIndex: 6, Dest: pile.Open, DestIndex: 0}))
	c, err := g.Board().CardAt(pile.Open, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, card.MustParse("10♠"), c)
}

func TestLifecycleLogsAtDebug(t *testing.T) {
	var debug, info bytes.Buffer

	opts := DefaultOptions()
	opts.CascadePiles = 4
	opts.Logger = slog.New(slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g, err := New(opts)
	require.NoError(t, err)
	require.NoError(t, g.Start(nil, false))
	assert.Contains(t, debug.String(), "level=DEBUG msg=\"game started\"")

	opts.Logger = slog.New(slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}))
	g, err = New(opts)
	require.NoError(t, err)
	require.NoError(t, g.Start(nil, false))
	require.NoError(t, g.Move(Request{Source: pile.Cascade, PileIndex: 0, CardIndex: 12, Dest: pile.Open, DestIndex: 0}))
	assert.Empty(t, info.String())
}

func TestPlayToCompletion(t *testing.T) {
	opts := quietOptions()
	opts.CascadePiles = 4
	g, err := New(opts)
	require.NoError(t, err)

	var d []card.Card
	for i := len(card.Ranks) - 1; i >= 0; i-- {
		for _, s := range card.Suits {
			d = append(d, card.New(card.Ranks[i], s))
		}
	}
	require.NoError(t, g.Start(d, false))

	for r := len(card.Ranks) - 1; r >= 0; r-- {
		for j := 0; j < 4; j++ {
			assert.False(t, g.IsOver())
			require.NoError(t, g.Move(Request{Source: pile.Cascade, PileIndex: j, CardIndex: r, Dest: pile.Foundation, DestIndex: j}))
		}
	}
	assert.True(t, g.IsOver())
}
