package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arcanaland/freecell/internal/pile"
)

// ErrInvalidRequest is returned for move input that cannot be understood
var ErrInvalidRequest = errors.New("invalid move request")

// Request names a run of cards and where it should go. Indices are zero-based.
type Request struct {
	Source    pile.Category
	PileIndex int
	CardIndex int
	Dest      pile.Category
	DestIndex int
}

func (r Request) String() string {
	return fmt.Sprintf("%s%d %d %s%d",
		r.Source.Symbol(), r.PileIndex+1, r.CardIndex+1, r.Dest.Symbol(), r.DestIndex+1)
}

// ParseRequest reads the three tokens typed by a player, e.g. "C1", "7", "F2".
// Pile and card numbers are one-based.
func ParseRequest(source, cardNumber, dest string) (Request, error) {
	src, srcIdx, err := parsePile(source)
	if err != nil {
		return Request{}, err
	}
	dst, dstIdx, err := parsePile(dest)
	if err != nil {
		return Request{}, err
	}

	n, err := strconv.Atoi(cardNumber)
	if err != nil || n < 1 {
		return Request{}, fmt.Errorf("%w: card number %q", ErrInvalidRequest, cardNumber)
	}

	return Request{
		Source:    src,
		PileIndex: srcIdx,
		CardIndex: n - 1,
		Dest:      dst,
		DestIndex: dstIdx,
	}, nil
}

func parsePile(token string) (pile.Category, int, error) {
	if len(token) < 2 {
		return 0, 0, fmt.Errorf("%w: pile %q", ErrInvalidRequest, token)
	}

	c, err := pile.ParseCategory(token[:1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	n, err := strconv.Atoi(token[1:])
	if err != nil || n < 1 {
		return 0, 0, fmt.Errorf("%w: pile number in %q", ErrInvalidRequest, token)
	}
	return c, n - 1, nil
}
