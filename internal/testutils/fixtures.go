package testutils

import (
	"strconv"
	"testing"
)

func itoa(v int) string {
	return strconv.Itoa(v)
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// PikachuMoves are the move names of the Pikachu fixture, in API order
var PikachuMoves = []string{"mega-punch", "pay-day", "thunder-punch", "slam", "double-kick"}

// Pikachu returns a fixture with more moves than the pokedex resolves
func Pikachu() PokemonFixture {
	return PokemonFixture{
		ID:    25,
		Name:  "pikachu",
		Types: []string{"electric"},
		Stats: []StatFixture{
			{Name: "hp", Base: 35},
			{Name: "attack", Base: 55},
			{Name: "defense", Base: 40},
			{Name: "special-attack", Base: 50},
			{Name: "special-defense", Base: 50},
			{Name: "speed", Base: 90},
		},
		Moves:   PikachuMoves,
		Artwork: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/25.png",
		Shiny:   "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/shiny/25.png",
		Cry:     "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest/25.ogg",
	}
}

// Ditto returns a fixture with exactly two moves and no cry
func Ditto() PokemonFixture {
	return PokemonFixture{
		ID:    132,
		Name:  "ditto",
		Types: []string{"normal"},
		Stats: []StatFixture{{Name: "hp", Base: 48}},
		Moves: []string{"transform", "growl"},
	}
}

// Unown returns a fixture with no moves at all
func Unown() PokemonFixture {
	return PokemonFixture{
		ID:    201,
		Name:  "unown",
		Types: []string{"psychic"},
	}
}

// StandardMoves covers every move referenced by the fixtures above
func StandardMoves() []MoveFixture {
	return []MoveFixture{
		{ID: 5, Name: "mega-punch", Type: "normal", Power: IntPtr(80), Accuracy: IntPtr(85)},
		{ID: 6, Name: "pay-day", Type: "normal", Power: IntPtr(40), Accuracy: IntPtr(100)},
		{ID: 9, Name: "thunder-punch", Type: "electric", Power: IntPtr(75), Accuracy: IntPtr(100)},
		{ID: 21, Name: "slam", Type: "normal", Power: IntPtr(80), Accuracy: IntPtr(75)},
		{ID: 24, Name: "double-kick", Type: "fighting", Power: IntPtr(30), Accuracy: IntPtr(100)},
		{ID: 144, Name: "transform", Type: "normal"},
		{ID: 45, Name: "growl", Type: "normal", Accuracy: IntPtr(100)},
	}
}

// NewStandardPokeAPI starts a FakePokeAPI loaded with all fixtures
func NewStandardPokeAPI(t *testing.T) *FakePokeAPI {
	t.Helper()

	f := NewFakePokeAPI(t)
	f.AddPokemon(Pikachu())
	f.AddPokemon(Ditto())
	f.AddPokemon(Unown())
	f.AddMoves(StandardMoves()...)
	return f
}
