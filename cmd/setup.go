package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/arcanaland/freecell/internal/card"
	"github.com/arcanaland/freecell/internal/config"
	"github.com/arcanaland/freecell/internal/deck"
	"github.com/arcanaland/freecell/internal/game"
)

// addGameFlags registers the flags shared by commands that deal a game
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("deck", "d", "", "Deck from your deck library or a path to a deck file")
	cmd.Flags().Uint64("seed", 0, "Seed for the shuffle (0 picks a random deal)")
	cmd.Flags().Bool("no-shuffle", false, "Deal the deck in file order")
	cmd.Flags().Int("open", 0, "Number of open piles (overrides config)")
	cmd.Flags().Int("cascades", 0, "Number of cascade piles (overrides config)")
	cmd.Flags().Bool("single", false, "Only allow single-card moves")
	cmd.Flags().String("color", "", "Colour output: auto, always or never (overrides config)")
}

// setupGame loads config, applies flag overrides and deals a new game
func setupGame(cmd *cobra.Command) (*game.Game, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %v", err)
	}

	flags := cmd.Flags()
	if open, _ := flags.GetInt("open"); open != 0 {
		cfg.OpenPiles = open
	}
	if cascades, _ := flags.GetInt("cascades"); cascades != 0 {
		cfg.CascadePiles = cascades
	}
	if single, _ := flags.GetBool("single"); single {
		cfg.MultiMove = false
	}
	if noShuffle, _ := flags.GetBool("no-shuffle"); noShuffle {
		cfg.Shuffle = false
	}
	if color, _ := flags.GetString("color"); color != "" {
		cfg.Color = color
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	cards, err := loadCards(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := game.Options{
		OpenPiles:    cfg.OpenPiles,
		CascadePiles: cfg.CascadePiles,
		MultiMove:    cfg.MultiMove,
		Logger:       slog.Default(),
	}
	if seed, _ := flags.GetUint64("seed"); seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	g, err := game.New(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := g.Start(cards, cfg.Shuffle); err != nil {
		return nil, nil, fmt.Errorf("error starting game: %w", err)
	}

	return g, cfg, nil
}

// loadCards resolves the --deck flag, then the configured default deck, then the standard deck
func loadCards(cmd *cobra.Command, cfg *config.Config) ([]card.Card, error) {
	deckName, _ := cmd.Flags().GetString("deck")
	if deckName == "" {
		deckName = cfg.DefaultDeck
	}
	if deckName == "" {
		return deck.Standard(), nil
	}

	deckPath, err := config.GetDeckPath(deckName)
	if err != nil {
		return nil, err
	}

	d, err := deck.Load(deckPath)
	if err != nil {
		return nil, fmt.Errorf("error loading deck: %w", err)
	}
	slog.Debug("loaded deck", "name", d.Name, "path", d.Path)
	return d.Cards, nil
}
