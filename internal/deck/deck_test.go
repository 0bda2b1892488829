package deck

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/freecell/internal/card"
)

func TestStandard(t *testing.T) {
	cards := Standard()
	require.Len(t, cards, Size)
	require.NoError(t, Check(cards))

	seen := make(map[card.Card]int)
	for _, c := range cards {
		seen[c]++
	}
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			assert.Equal(t, 1, seen[card.New(r, s)], "%s", card.New(r, s))
		}
	}
}

func TestCheck(t *testing.T) {
	short := Standard()[:51]

	dup := Standard()
	dup[51] = dup[0]

	bad := Standard()
	bad[10] = card.Card{Rank: 0, Suit: card.Hearts}

	tests := []struct {
		name  string
		cards []card.Card
	}{
		{"nil", nil},
		{"short", short},
		{"long", append(Standard(), card.MustParse("A♠"))},
		{"duplicate", dup},
		{"invalid card", bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Check(tt.cards), ErrInvalidDeck)
		})
	}
}

func TestShuffle(t *testing.T) {
	cards := Standard()
	shuffled := Shuffle(cards, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, Standard(), cards, "input must not be modified")
	assert.ElementsMatch(t, cards, shuffled)
	assert.NotEqual(t, cards, shuffled)

	again := Shuffle(cards, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, shuffled, again, "same seed must give the same order")

	assert.ElementsMatch(t, cards, Shuffle(cards, nil))
}

func TestDeal(t *testing.T) {
	cards := Standard()
	piles := Deal(cards, 8)
	require.Len(t, piles, 8)

	for j, p := range piles {
		if j < 4 {
			assert.Len(t, p, 7)
		} else {
			assert.Len(t, p, 6)
		}
		for k, c := range p {
			assert.Equal(t, cards[k*8+j], c)
		}
	}

	assert.Nil(t, Deal(cards, 0))
	assert.Len(t, Deal(cards, 4)[0], 13)
}

func TestWriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks", "standard.toml")
	require.NoError(t, Write(path, "Standard", Standard()))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Standard", d.Name)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, Standard(), d.Cards)
}

func TestLoadDefaultsNameToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reversed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`cards = ["K♠", "Q♠"]`), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reversed", d.Name)
	assert.Equal(t, []card.Card{card.MustParse("K♠"), card.MustParse("Q♠")}, d.Cards)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("cards = [\n"), 0644))
	_, err = Load(broken)
	assert.Error(t, err)

	badCard := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badCard, []byte(`cards = ["A♠", "Z♠"]`), 0644))
	_, err = Load(badCard)
	assert.ErrorIs(t, err, card.ErrInvalidFormat)
}
