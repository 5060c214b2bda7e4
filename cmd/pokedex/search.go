package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/render"
)

var (
	searchShiny bool
	searchCry   bool
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [name or id]",
	Short: "Look up a pokemon directly against PokeAPI",
	Long: `Look up a pokemon by name or id without a server. Examples:

  pokedex search pikachu
  pokedex search 25 --shiny --cry
  pokedex search "Mr Mime" --json`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchShiny, "shiny", false, "Show the shiny artwork")
	searchCmd.Flags().BoolVar(&searchCry, "cry", false, "Show the cry audio url")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the result as json")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	logger.Debug("Running one-shot search", "pokeapi", cfg.PokeAPI.BaseURL)

	sessions, err := newInMemorySessions(cfg)
	if err != nil {
		return err
	}

	svc, err := newPokedexService(cfg, sessions)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// One-shot lookups have nothing to supersede them, so no session id
	output, err := svc.Search(ctx, &pokedex.SearchInput{
		Query: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}

	p := v1alpha1.ConvertEnrichedPokemon(output.Pokemon)
	if searchJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(p)
	}

	return render.Pokemon(cmd.OutOrStdout(), p, render.Options{
		Shiny:   searchShiny,
		ShowCry: searchCry,
	})
}
