package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// apiPrefix matches the public PokeAPI path layout
const apiPrefix = "/api/v2"

// StatFixture is a stat entry for PokemonFixture
type StatFixture struct {
	Name string
	Base int
}

// PokemonFixture describes a pokemon served by FakePokeAPI
type PokemonFixture struct {
	ID      int
	Name    string
	Types   []string
	Stats   []StatFixture
	Moves   []string
	Artwork string
	Shiny   string
	Cry     string
}

// MoveFixture describes a move served by FakePokeAPI
type MoveFixture struct {
	ID       int
	Name     string
	Type     string
	Power    *int
	Accuracy *int
}

// FakePokeAPI is an httptest server speaking the PokeAPI JSON subset the
// pokedex reads. Move urls in pokemon bodies point back at the server.
type FakePokeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []string
	pokemon  map[string]PokemonFixture
	moves    map[string]MoveFixture
	statuses map[string]int
	delays   map[string]time.Duration
	rawBody  map[string]string
}

// NewFakePokeAPI starts a fake PokeAPI that is closed when the test ends
func NewFakePokeAPI(t *testing.T) *FakePokeAPI {
	t.Helper()

	f := &FakePokeAPI{
		pokemon:  make(map[string]PokemonFixture),
		moves:    make(map[string]MoveFixture),
		statuses: make(map[string]int),
		delays:   make(map[string]time.Duration),
		rawBody:  make(map[string]string),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)

	return f
}

// BaseURL is the value to configure as the PokeAPI base url
func (f *FakePokeAPI) BaseURL() string {
	return f.server.URL + apiPrefix
}

// MoveURL is the reference handle the fake hands out for a move
func (f *FakePokeAPI) MoveURL(name string) string {
	return f.server.URL + apiPrefix + "/move/" + name + "/"
}

// PokemonPath is the request path for a pokemon lookup
func PokemonPath(name string) string {
	return apiPrefix + "/pokemon/" + name
}

// MovePath is the request path for a move lookup
func MovePath(name string) string {
	return apiPrefix + "/move/" + name + "/"
}

// AddPokemon registers a pokemon, reachable by name and by id
func (f *FakePokeAPI) AddPokemon(p PokemonFixture) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pokemon[p.Name] = p
	f.pokemon[itoa(p.ID)] = p
}

// AddMoves registers moves by name
func (f *FakePokeAPI) AddMoves(moves ...MoveFixture) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range moves {
		f.moves[m.Name] = m
	}
}

// SetStatus forces a status code for a request path
func (f *FakePokeAPI) SetStatus(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[path] = status
}

// SetDelay delays the response for a request path
func (f *FakePokeAPI) SetDelay(path string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays[path] = d
}

// SetRawBody replaces the body for a request path
func (f *FakePokeAPI) SetRawBody(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rawBody[path] = body
}

// Requests returns the request paths in arrival order
func (f *FakePokeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

// MoveRequests returns only the move request paths
func (f *FakePokeAPI) MoveRequests() []string {
	var out []string
	for _, path := range f.Requests() {
		if strings.HasPrefix(path, apiPrefix+"/move/") {
			out = append(out, path)
		}
	}
	return out
}

func (f *FakePokeAPI) serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, path)
	delay := f.delays[path]
	status, forced := f.statuses[path]
	raw, hasRaw := f.rawBody[path]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if forced {
		w.WriteHeader(status)
		return
	}

	if hasRaw {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(raw))
		return
	}

	body, ok := f.lookup(path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func (f *FakePokeAPI) lookup(path string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case strings.HasPrefix(path, apiPrefix+"/pokemon/"):
		p, ok := f.pokemon[strings.TrimPrefix(path, apiPrefix+"/pokemon/")]
		if !ok {
			return nil, false
		}
		return f.pokemonBody(p), true
	case strings.HasPrefix(path, apiPrefix+"/move/"):
		name := strings.Trim(strings.TrimPrefix(path, apiPrefix+"/move/"), "/")
		m, ok := f.moves[name]
		if !ok {
			return nil, false
		}
		return map[string]any{
			"id":       m.ID,
			"name":     m.Name,
			"type":     map[string]any{"name": m.Type, "url": f.server.URL + apiPrefix + "/type/" + m.Type + "/"},
			"power":    m.Power,
			"accuracy": m.Accuracy,
		}, true
	}
	return nil, false
}

func (f *FakePokeAPI) pokemonBody(p PokemonFixture) map[string]any {
	types := make([]map[string]any, 0, len(p.Types))
	for i, t := range p.Types {
		types = append(types, map[string]any{
			"slot": i + 1,
			"type": map[string]any{"name": t, "url": f.server.URL + apiPrefix + "/type/" + t + "/"},
		})
	}

	stats := make([]map[string]any, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, map[string]any{
			"base_stat": s.Base,
			"effort":    0,
			"stat":      map[string]any{"name": s.Name, "url": f.server.URL + apiPrefix + "/stat/" + s.Name + "/"},
		})
	}

	moves := make([]map[string]any, 0, len(p.Moves))
	for _, m := range p.Moves {
		moves = append(moves, map[string]any{
			"move": map[string]any{"name": m, "url": f.MoveURL(m)},
		})
	}

	var cry any
	if p.Cry != "" {
		cry = p.Cry
	}

	return map[string]any{
		"id":   p.ID,
		"name": p.Name,
		"sprites": map[string]any{
			"other": map[string]any{
				"official-artwork": map[string]any{
					"front_default": p.Artwork,
					"front_shiny":   p.Shiny,
				},
				"showdown": map[string]any{
					"front_default": nil,
				},
			},
		},
		"types": types,
		"stats": stats,
		"moves": moves,
		"cries": map[string]any{"latest": cry, "legacy": nil},
	}
}
