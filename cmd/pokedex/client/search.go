package client

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/render"
)

var (
	sessionID  string
	showShiny  bool
	showCry    bool
	outputJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [name or id]",
	Short: "Search for a pokemon through the server",
	Long: `Search for a pokemon through a running server. Examples:

  search pikachu
  search 25 --session screen-1 --shiny`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&sessionID, "session", "", "Session id; newer searches in a session supersede older ones")
	searchCmd.Flags().BoolVar(&showShiny, "shiny", false, "Show the shiny artwork")
	searchCmd.Flags().BoolVar(&showCry, "cry", false, "Show the cry audio url")
	searchCmd.Flags().BoolVar(&outputJSON, "json", false, "Print the response as json")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return errors.InvalidArgument(pokedex.MsgEmptyQuery)
	}

	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Search(ctx, &pokedexv1alpha1.SearchRequest{
		SessionID: sessionID,
		Query:     query,
	})
	if err != nil {
		return errors.FromGRPCError(err)
	}

	return writeResponse(cmd.OutOrStdout(), resp)
}

func writeResponse(w io.Writer, resp *pokedexv1alpha1.SearchResponse) error {
	if outputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp)
	}

	return render.Pokemon(w, resp.GetPokemon(), render.Options{
		Shiny:   showShiny,
		ShowCry: showCry,
	})
}
