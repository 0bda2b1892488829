package pile

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned for a pile symbol other than F, O or C
var ErrUnknownCategory = errors.New("unknown pile category")

// Category identifies one of the three groups of piles on a board
type Category int

const (
	Foundation Category = iota
	Open
	Cascade
)

// Categories lists the pile groups in rendering order
var Categories = []Category{Foundation, Open, Cascade}

// Symbol returns the single-letter prefix used when rendering and parsing piles
func (c Category) Symbol() string {
	switch c {
	case Foundation:
		return "F"
	case Open:
		return "O"
	case Cascade:
		return "C"
	default:
		return "?"
	}
}

func (c Category) String() string {
	switch c {
	case Foundation:
		return "foundation"
	case Open:
		return "open"
	case Cascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// ParseCategory maps a symbol such as "C" back to its category
func ParseCategory(symbol string) (Category, error) {
	for _, c := range Categories {
		if c.Symbol() == symbol {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, symbol)
}
