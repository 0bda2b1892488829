// Package board owns the piles of a FreeCell game and executes moves between them.
//
// A move either succeeds completely or leaves every pile untouched. Rules are
// consulted with copies of pile contents so they cannot mutate the board.
package board

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
	"github.com/arcanaland/freecell/internal/pile"
)

const (
	// FoundationPiles is fixed: one per suit
	FoundationPiles = 4
	// MinOpenPiles is the smallest allowed number of open piles
	MinOpenPiles = 1
	// MinCascadePiles is the smallest allowed number of cascade piles
	MinCascadePiles = 4
)

var (
	ErrInvalidDeck   = deck.ErrInvalidDeck
	ErrPileNotFound  = errors.New("pile not found")
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidConfig = errors.New("invalid board configuration")
)

// Board holds the foundation, open and cascade piles of one game
type Board struct {
	piles     map[pile.Category][][]card.Card
	multiMove bool
	rng       *rand.Rand
	logger    *slog.Logger
}

// Option configures a Board
type Option func(*Board)

// WithMultiMove lets valid builds move between piles in one move
func WithMultiMove() Option {
	return func(b *Board) {
		b.multiMove = true
	}
}

// WithRand sets the random source used when shuffling
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		b.rng = rng
	}
}

// WithLogger sets the logger for move and deal events
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// New creates an empty board. The pile counts are fixed for the board's lifetime.
func New(openPiles, cascadePiles int, opts ...Option) (*Board, error) {
	if openPiles < MinOpenPiles {
		return nil, fmt.Errorf("%w: need at least %d open piles, got %d", ErrInvalidConfig, MinOpenPiles, openPiles)
	}
	if cascadePiles < MinCascadePiles {
		return nil, fmt.Errorf("%w: need at least %d cascade piles, got %d", ErrInvalidConfig, MinCascadePiles, cascadePiles)
	}

	b := &Board{
		piles: map[pile.Category][][]card.Card{
			pile.Foundation: make([][]card.Card, FoundationPiles),
			pile.Open:       make([][]card.Card, openPiles),
			pile.Cascade:    make([][]card.Card, cascadePiles),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// MultiMove reports whether supermoves are enabled
func (b *Board) MultiMove() bool {
	return b.multiMove
}

// StartGame validates cards, clears every pile and deals round-robin into the cascades
func (b *Board) StartGame(cards []card.Card, shuffle bool) error {
	if err := deck.Check(cards); err != nil {
		return err
	}

	dealFrom := cards
	if shuffle {
		dealFrom = deck.Shuffle(cards, b.rng)
	}

	for _, c := range pile.Categories {
		b.piles[c] = make([][]card.Card, len(b.piles[c]))
	}
	for i, p := range deck.Deal(dealFrom, len(b.piles[pile.Cascade])) {
		b.piles[pile.Cascade][i] = p
	}

	b.logger.Debug("dealt new game",
		"shuffle", shuffle,
		"open_piles", len(b.piles[pile.Open]),
		"cascade_piles", len(b.piles[pile.Cascade]))
	return nil
}

// Move transfers the run starting at cardIndex in the source pile onto the destination pile
func (b *Board) Move(source pile.Category, pileIndex, cardIndex int, dest pile.Category, destIndex int) error {
	err := b.move(source, pileIndex, cardIndex, dest, destIndex)
	if err != nil {
		b.logger.Debug("move rejected",
			"from", label(source, pileIndex),
			"card", cardIndex,
			"to", label(dest, destIndex),
			"error", err)
		return err
	}

	b.logger.Debug("move applied",
		"from", label(source, pileIndex),
		"card", cardIndex,
		"to", label(dest, destIndex))
	return nil
}

func (b *Board) move(source pile.Category, pileIndex, cardIndex int, dest pile.Category, destIndex int) error {
	src, err := b.pile(source, pileIndex)
	if err != nil {
		return err
	}
	dst, err := b.pile(dest, destIndex)
	if err != nil {
		return err
	}

	if source == dest && pileIndex == destIndex {
		return fmt.Errorf("%w: source and destination are the same pile", ErrIllegalMove)
	}
	if cardIndex < 0 || cardIndex >= len(src) {
		return fmt.Errorf("%w: no card %d in %s", ErrIllegalMove, cardIndex+1, label(source, pileIndex))
	}

	// empty piles are counted before anything is removed
	capacity := b.capacity()
	if !pile.RuleFor(source, b.multiMove).CanRemove(cardIndex, snapshot(src), capacity) {
		return fmt.Errorf("%w: cannot take %s from %s", ErrIllegalMove, src[cardIndex], label(source, pileIndex))
	}

	run := snapshot(src[cardIndex:])
	if len(run) > 1 && dest != pile.Cascade {
		return fmt.Errorf("%w: only a cascade pile can take %d cards", ErrIllegalMove, len(run))
	}
	if !pile.RuleFor(dest, b.multiMove).CanAccept(run[0], snapshot(dst)) {
		return fmt.Errorf("%w: %s cannot take %s", ErrIllegalMove, label(dest, destIndex), run[0])
	}

	b.piles[source][pileIndex] = src[:cardIndex:cardIndex]
	b.piles[dest][destIndex] = append(dst, run...)
	return nil
}

func (b *Board) pile(c pile.Category, index int) ([]card.Card, error) {
	group, ok := b.piles[c]
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrPileNotFound, pile.ErrUnknownCategory)
	}
	if index < 0 || index >= len(group) {
		return nil, fmt.Errorf("%w: %s pile %d of %d", ErrPileNotFound, c, index+1, len(group))
	}
	return group[index], nil
}

func (b *Board) capacity() pile.Capacity {
	return pile.Capacity{
		EmptyOpen:    b.countEmpty(pile.Open),
		EmptyCascade: b.countEmpty(pile.Cascade),
	}
}

func (b *Board) countEmpty(c pile.Category) int {
	n := 0
	for _, p := range b.piles[c] {
		if len(p) == 0 {
			n++
		}
	}
	return n
}

// IsGameOver reports whether every card is on a foundation and every other pile is empty
func (b *Board) IsGameOver() bool {
	if b.countEmpty(pile.Open) != len(b.piles[pile.Open]) ||
		b.countEmpty(pile.Cascade) != len(b.piles[pile.Cascade]) {
		return false
	}
	for _, p := range b.piles[pile.Foundation] {
		if len(p) != len(card.Ranks) {
			return false
		}
	}
	return true
}

// MaxMovable returns the largest run a supermove could move right now
func (b *Board) MaxMovable() int {
	if !b.multiMove {
		return 1
	}
	return b.capacity().MaxMovable()
}

// NumPiles returns how many piles a category has
func (b *Board) NumPiles(c pile.Category) int {
	return len(b.piles[c])
}

// Pile returns a copy of the cards in a pile, bottom first
func (b *Board) Pile(c pile.Category, index int) ([]card.Card, error) {
	p, err := b.pile(c, index)
	if err != nil {
		return nil, err
	}
	return snapshot(p), nil
}

// NumCards returns how many cards a pile holds
func (b *Board) NumCards(c pile.Category, index int) (int, error) {
	p, err := b.pile(c, index)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// CardAt returns the card at cardIndex in a pile, counting from the bottom.
// A card index outside the pile is a lookup miss and returns ErrPileNotFound;
// Move reports the same index as ErrIllegalMove because it names an illegal move.
func (b *Board) CardAt(c pile.Category, index, cardIndex int) (card.Card, error) {
	p, err := b.pile(c, index)
	if err != nil {
		return card.Card{}, err
	}
	if cardIndex < 0 || cardIndex >= len(p) {
		return card.Card{}, fmt.Errorf("%w: no card %d in %s", ErrPileNotFound, cardIndex+1, label(c, index))
	}
	return p[cardIndex], nil
}

// Render writes every pile on its own line, e.g. "C1: K♠, Q♥"
func (b *Board) Render() string {
	return b.RenderWith(func(c card.Card) string { return c.String() })
}

// RenderWith is Render with a custom card formatter, used by the console view for colour
func (b *Board) RenderWith(format func(card.Card) string) string {
	var lines []string
	for _, c := range pile.Categories {
		for i, p := range b.piles[c] {
			line := label(c, i) + ":"
			if len(p) > 0 {
				tokens := make([]string, len(p))
				for k, cd := range p {
					tokens[k] = format(cd)
				}
				line += " " + strings.Join(tokens, ", ")
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func label(c pile.Category, index int) string {
	return fmt.Sprintf("%s%d", c.Symbol(), index+1)
}

func snapshot(cards []card.Card) []card.Card {
	if len(cards) == 0 {
		return nil
	}
	out := make([]card.Card, len(cards))
	copy(out, cards)
	return out
}
