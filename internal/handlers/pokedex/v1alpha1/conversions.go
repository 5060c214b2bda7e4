package v1alpha1

import (
	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// ConvertEnrichedPokemon maps a resolved pokemon to the API message,
// resolving every display token along the way
func ConvertEnrichedPokemon(ep *pokemon.EnrichedPokemon) *pokedexv1alpha1.Pokemon {
	if ep == nil || ep.Pokemon == nil {
		return nil
	}
	p := ep.Pokemon

	types := make([]*pokedexv1alpha1.TypeTag, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, &pokedexv1alpha1.TypeTag{
			Name:  t,
			Color: string(pokemon.ColorForType(t)),
		})
	}

	stats := make([]*pokedexv1alpha1.Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, &pokedexv1alpha1.Stat{
			Name:      s.Name,
			Label:     s.Label(),
			Color:     string(s.Color()),
			BaseValue: s.BaseValue,
			Percent:   s.Percent(),
		})
	}

	moves := make([]*pokedexv1alpha1.Move, 0, len(ep.Moves))
	for _, m := range ep.Moves {
		moves = append(moves, convertMove(m))
	}

	return &pokedexv1alpha1.Pokemon{
		ID:              p.ID,
		Name:            p.Name,
		ArtworkURL:      p.Artwork.Default,
		ShinyArtworkURL: p.Artwork.Shiny,
		CryURL:          p.CryURL,
		Types:           types,
		Stats:           stats,
		Moves:           moves,
	}
}

func convertMove(m *pokemon.Move) *pokedexv1alpha1.Move {
	if m == nil {
		return nil
	}

	return &pokedexv1alpha1.Move{
		Name:          m.Name,
		DisplayName:   m.DisplayName(),
		Type:          m.Type,
		TypeColor:     string(m.TypeColor()),
		Power:         m.PowerLabel(),
		Accuracy:      m.AccuracyLabel(),
		PowerValue:    m.Power,
		AccuracyValue: m.Accuracy,
	}
}
