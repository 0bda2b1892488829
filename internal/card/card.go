package card

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when a card token cannot be parsed
var ErrInvalidFormat = errors.New("invalid card format")

// Color is the colour of a suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = map[Suit]rune{
	Clubs:    '♣',
	Diamonds: '♦',
	Hearts:   '♥',
	Spades:   '♠',
}

// Symbol returns the single-character symbol used in card tokens
func (s Suit) Symbol() rune {
	if r, ok := suitSymbols[s]; ok {
		return r
	}
	return '?'
}

// Color returns the colour of the suit
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Rank represents a card rank. Its value is the rank priority, Ace = 1 to King = 13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank from Ace to King
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Priority returns the integer priority used for adjacency checks
func (r Rank) Priority() int {
	return int(r)
}

// Symbol returns the rank part of a card token
func (r Rank) Symbol() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r > Ace && r < Jack {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

func (r Rank) valid() bool {
	return r >= Ace && r <= King
}

// Card is an immutable playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Color returns the colour derived from the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Valid reports whether the card has a known rank and suit
func (c Card) Valid() bool {
	_, ok := suitSymbols[c.Suit]
	return ok && c.Rank.valid()
}

// Less orders cards by suit, then rank
func (c Card) Less(o Card) bool {
	if c.Suit != o.Suit {
		return c.Suit < o.Suit
	}
	return c.Rank < o.Rank
}

// String renders the rank symbol followed by the suit symbol, e.g. "10♥"
func (c Card) String() string {
	return c.Rank.Symbol() + string(c.Suit.Symbol())
}

// Parse reads a card token such as "A♠", "10♥" or "Q♦".
// The last character is the suit, the rest is the rank.
func Parse(token string) (Card, error) {
	runes := []rune(token)
	if len(runes) < 2 || len(runes) > 3 {
		return Card{}, fmt.Errorf("%w: %q must be 2 or 3 characters", ErrInvalidFormat, token)
	}

	suit, ok := parseSuit(runes[len(runes)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidFormat, token)
	}

	rank, ok := parseRank(string(runes[:len(runes)-1]))
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidFormat, token)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

func parseSuit(r rune) (Suit, bool) {
	for s, sym := range suitSymbols {
		if sym == r {
			return s, true
		}
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	for _, r := range Ranks {
		if r.Symbol() == s {
			return r, true
		}
	}
	return 0, false
}
