// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// ExpectLookup sets up a successful primary lookup of p under name, then one
// move fetch per move in moves. moves must follow the order of p.MoveRefs.
func ExpectLookup(mockClient *pokeapimock.MockClient, name string, p *pokemon.Pokemon, moves ...*pokemon.Move) {
	mockClient.EXPECT().
		GetPokemon(gomock.Any(), name).
		Return(p, nil)

	ExpectMoves(mockClient, p.MoveRefs, moves...)
}

// ExpectMoves expects exactly one fetch per ref, answered with the move at
// the same index
func ExpectMoves(mockClient *pokeapimock.MockClient, refs []pokemon.MoveRef, moves ...*pokemon.Move) {
	for i, move := range moves {
		mockClient.EXPECT().
			GetMove(gomock.Any(), refs[i].URL).
			Return(move, nil).
			Times(1)
	}
}
