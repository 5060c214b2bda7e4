package pokeapi

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// officialArtworkKey is the sprites.other entry the pokedex displays
const officialArtworkKey = "official-artwork"

func convertPokemonData(data *PokemonData) *pokemon.Pokemon {
	artwork := data.Sprites.Other[officialArtworkKey]

	types := make([]string, 0, len(data.Types))
	for _, t := range data.Types {
		types = append(types, t.Type.Name)
	}

	stats := make([]pokemon.Stat, 0, len(data.Stats))
	for _, s := range data.Stats {
		stats = append(stats, pokemon.Stat{
			Name:      s.Stat.Name,
			BaseValue: s.BaseStat,
		})
	}

	refs := make([]pokemon.MoveRef, 0, len(data.Moves))
	for _, m := range data.Moves {
		refs = append(refs, pokemon.MoveRef{
			Name: m.Move.Name,
			URL:  m.Move.URL,
		})
	}

	return &pokemon.Pokemon{
		ID:   data.ID,
		Name: data.Name,
		Artwork: pokemon.Artwork{
			Default: artwork.FrontDefault,
			Shiny:   artwork.FrontShiny,
		},
		Types:    types,
		Stats:    stats,
		MoveRefs: refs,
		CryURL:   data.Cries.Latest,
	}
}

func convertMoveData(data *MoveData) *pokemon.Move {
	return &pokemon.Move{
		Name:     data.Name,
		Type:     data.Type.Name,
		Power:    data.Power,
		Accuracy: data.Accuracy,
	}
}
