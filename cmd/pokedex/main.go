// Package main is the entry point for the pokedex server and CLI
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/cmd/pokedex/client"
	"github.com/KirkDiggler/pokedex-api/internal/render"
)

var (
	configPath string
	baseURL    string
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Pokedex lookup server and CLI",
	Long: `Pokedex looks up pokemon by name or id against PokeAPI, resolves their
first moves concurrently and serves the result over gRPC or prints it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_ = render.Error(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a yaml config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "PokeAPI base url (overrides config)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
