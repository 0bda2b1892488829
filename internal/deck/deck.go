package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/freecell/internal/card"
)

// Size is the number of cards in a complete deck
const Size = 52

// ErrInvalidDeck is returned when a deck is missing cards, has duplicates or holds invalid cards
var ErrInvalidDeck = errors.New("invalid deck")

// Deck represents a named deck loaded from a deck file
type Deck struct {
	Name  string
	Path  string
	Cards []card.Card
}

// File is the on-disk TOML form of a deck
type File struct {
	Name  string   `toml:"name"`
	Cards []string `toml:"cards"`
}

// Standard returns the 52 cards of a standard deck, suit by suit, Ace to King
func Standard() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			cards = append(cards, card.New(r, s))
		}
	}
	return cards
}

// Check verifies that cards holds exactly one of each of the 52 cards
func Check(cards []card.Card) error {
	if cards == nil {
		return fmt.Errorf("%w: deck is nil", ErrInvalidDeck)
	}
	if len(cards) != Size {
		return fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidDeck, Size, len(cards))
	}

	seen := make(map[card.Card]bool, Size)
	for i, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: card %d is not a valid card", ErrInvalidDeck, i+1)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidDeck, c)
		}
		seen[c] = true
	}
	return nil
}

// Shuffle returns a uniformly permuted copy of cards. A nil rng uses the global source.
func Shuffle(cards []card.Card, rng *rand.Rand) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)

	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if rng == nil {
		rand.Shuffle(len(shuffled), swap)
	} else {
		rng.Shuffle(len(shuffled), swap)
	}
	return shuffled
}

// Deal distributes cards round-robin: card i goes to pile i mod piles
func Deal(cards []card.Card, piles int) [][]card.Card {
	if piles <= 0 {
		return nil
	}

	dealt := make([][]card.Card, piles)
	for i, c := range cards {
		dealt[i%piles] = append(dealt[i%piles], c)
	}
	return dealt
}

// Load reads a deck file and parses every card token in it
func Load(path string) (*Deck, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}

	cards, err := ParseTokens(f.Cards)
	if err != nil {
		return nil, err
	}

	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &Deck{
		Name:  name,
		Path:  path,
		Cards: cards,
	}, nil
}

// ParseTokens parses card tokens in order, stopping at the first bad token
func ParseTokens(tokens []string) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(tokens))
	for i, tok := range tokens {
		c, err := card.Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Write encodes cards as a deck file at path, creating parent directories
func Write(path, name string, cards []card.Card) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating deck directory: %w", err)
	}

	f := File{Name: name, Cards: make([]string, 0, len(cards))}
	for _, c := range cards {
		f.Cards = append(f.Cards, c.String())
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating deck file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(f); err != nil {
		return fmt.Errorf("error encoding deck: %w", err)
	}
	return nil
}
