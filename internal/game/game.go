// Package game wires a board and a deck behind the small API the console controller uses.
package game

import (
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/arcanaland/freecell/internal/board"
	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
)

// ErrNotStarted is returned when a move is made before a game has been dealt
var ErrNotStarted = errors.New("game has not started")

// Options configures a new game
type Options struct {
	OpenPiles    int
	CascadePiles int
	MultiMove    bool
	Rand         *rand.Rand
	Logger       *slog.Logger
}

// DefaultOptions returns the classic layout: 4 open piles, 8 cascades, supermoves on
func DefaultOptions() Options {
	return Options{
		OpenPiles:    4,
		CascadePiles: 8,
		MultiMove:    true,
	}
}

// Game owns one board exclusively
type Game struct {
	id      uuid.UUID
	board   *board.Board
	logger  *slog.Logger
	started bool
}

// New creates a game with an empty board
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	boardOpts := []board.Option{board.WithLogger(logger)}
	if opts.MultiMove {
		boardOpts = append(boardOpts, board.WithMultiMove())
	}
	if opts.Rand != nil {
		boardOpts = append(boardOpts, board.WithRand(opts.Rand))
	}

	b, err := board.New(opts.OpenPiles, opts.CascadePiles, boardOpts...)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:  b,
		logger: logger,
	}, nil
}

// ID identifies the current deal. It is the zero UUID until Start succeeds.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Started reports whether a deal has happened
func (g *Game) Started() bool {
	return g.started
}

// Board exposes the board for read-only queries
func (g *Game) Board() *board.Board {
	return g.board
}

// Start deals cards onto a cleared board. A nil deck deals the standard deck.
func (g *Game) Start(cards []card.Card, shuffle bool) error {
	if cards == nil {
		cards = deck.Standard()
	}
	if err := g.board.StartGame(cards, shuffle); err != nil {
		return err
	}

	g.id = uuid.New()
	g.started = true
	g.logger.Debug("game started", "game_id", g.id, "shuffle", shuffle)
	return nil
}

// Move applies a move request
func (g *Game) Move(r Request) error {
	if !g.started {
		return ErrNotStarted
	}
	if err := g.board.Move(r.Source, r.PileIndex, r.CardIndex, r.Dest, r.DestIndex); err != nil {
		return err
	}

	if g.board.IsGameOver() {
		g.logger.Debug("game over", "game_id", g.id)
	}
	return nil
}

// IsOver reports whether the current game is finished
func (g *Game) IsOver() bool {
	return g.started && g.board.IsGameOver()
}

// Render returns the text view of the board, or "" before the first deal
func (g *Game) Render() string {
	if !g.started {
		return ""
	}
	return g.board.Render()
}
