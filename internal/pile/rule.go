// Package pile holds the placement and removal rules for each kind of pile.
//
// Rules only ever see read-only snapshots of pile contents. Mutating piles is
// the board's job.
package pile

import (
	"math"
	"math/bits"

	"github.com/arcanaland/freecell/internal/card"
)

// Rule decides what may be placed onto and taken from a pile
type Rule int

const (
	// OpenRule holds at most one card
	OpenRule Rule = iota
	// FoundationRule builds a single suit upward from Ace
	FoundationRule
	// CascadeRule builds down in alternating colours, one card at a time
	CascadeRule
	// SupermoveRule is CascadeRule but lets a valid build leave the pile in one move
	SupermoveRule
)

// Capacity counts the empty buffer piles available for a supermove
type Capacity struct {
	EmptyOpen    int
	EmptyCascade int
}

// MaxMovable returns (E + 1) * 2^K, the largest run that can be moved at once.
// The result saturates at math.MaxInt.
func (c Capacity) MaxMovable() int {
	base := max(c.EmptyOpen, 0) + 1
	shift := max(c.EmptyCascade, 0)
	if shift >= bits.UintSize-1 || base > math.MaxInt>>shift {
		return math.MaxInt
	}
	return base << shift
}

// RuleFor returns the rule governing a category. multiMove selects supermoves for cascades.
func RuleFor(c Category, multiMove bool) Rule {
	switch c {
	case Open:
		return OpenRule
	case Foundation:
		return FoundationRule
	default:
		if multiMove {
			return SupermoveRule
		}
		return CascadeRule
	}
}

// CanAccept reports whether c may be placed on top of dest
func (r Rule) CanAccept(c card.Card, dest []card.Card) bool {
	switch r {
	case OpenRule:
		return len(dest) == 0
	case FoundationRule:
		if len(dest) == 0 {
			return c.Rank == card.Ace
		}
		top := dest[len(dest)-1]
		return top.Suit == c.Suit && c.Rank.Priority()-top.Rank.Priority() == 1
	case CascadeRule, SupermoveRule:
		if len(dest) == 0 {
			return true
		}
		return stacks(dest[len(dest)-1], c)
	default:
		return false
	}
}

// CanRemove reports whether the cards from index to the end of src may leave the pile.
// Capacity is only consulted by SupermoveRule.
func (r Rule) CanRemove(index int, src []card.Card, capacity Capacity) bool {
	switch r {
	case SupermoveRule:
		if index < 0 || index >= len(src) {
			return false
		}
		run := src[index:]
		return IsBuild(run) && len(run) <= capacity.MaxMovable()
	case OpenRule, FoundationRule, CascadeRule:
		return len(src) > 0 && index == len(src)-1
	default:
		return false
	}
}

// IsBuild reports whether every adjacent pair in run alternates colour and descends by one
func IsBuild(run []card.Card) bool {
	for i := 1; i < len(run); i++ {
		if !stacks(run[i-1], run[i]) {
			return false
		}
	}
	return true
}

// stacks reports whether upper may sit directly on lower in a cascade
func stacks(lower, upper card.Card) bool {
	return lower.Color() != upper.Color() &&
		lower.Rank.Priority()-upper.Rank.Priority() == 1
}
