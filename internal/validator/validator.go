package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	file  deck.File
	cards []card.Card
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck file. The error is only set when the file cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckToml(); err != nil {
		return v.Results, err
	}

	v.validateMetadata()
	v.validateTokens()
	v.validateCount()
	v.validateDuplicates()
	v.validateMissing()

	return v.Results, nil
}

func (v *Validator) validateDeckToml() error {
	if _, err := os.Stat(v.DeckPath); os.IsNotExist(err) {
		return fmt.Errorf("deck file not found: %s", v.DeckPath)
	}

	md, err := toml.DecodeFile(v.DeckPath, &v.file)
	if err != nil {
		return fmt.Errorf("error parsing %s: %v", filepath.Base(v.DeckPath), err)
	}

	for _, key := range md.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}
	return nil
}

func (v *Validator) validateMetadata() {
	if v.file.Name == "" {
		v.Results.Warnings = append(v.Results.Warnings, "name is not set; the file name will be used")
	}
	if filepath.Ext(v.DeckPath) != ".toml" {
		v.Results.Warnings = append(v.Results.Warnings, "deck files should use the .toml extension")
	}
}

// validateTokens parses every token, recording one error per bad token
func (v *Validator) validateTokens() {
	for i, tok := range v.file.Cards {
		c, err := card.Parse(tok)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i+1, err))
			continue
		}
		v.cards = append(v.cards, c)
	}
}

func (v *Validator) validateCount() {
	if len(v.file.Cards) != deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck has %d cards, expected %d", len(v.file.Cards), deck.Size))
	}
}

func (v *Validator) validateDuplicates() {
	seen := make(map[card.Card]bool)
	reported := make(map[card.Card]bool)
	for _, c := range v.cards {
		if seen[c] && !reported[c] {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("duplicate card: %s", c))
			reported[c] = true
		}
		seen[c] = true
	}
}

func (v *Validator) validateMissing() {
	present := make(map[card.Card]bool)
	for _, c := range v.cards {
		present[c] = true
	}

	for _, c := range deck.Standard() {
		if !present[c] {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("missing card: %s", c))
		}
	}
}
