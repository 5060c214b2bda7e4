package pokeapi

// The types below mirror the subset of the PokeAPI v2 JSON that the
// pokedex consumes. Unknown fields are ignored by the decoder.

// NamedResource is PokeAPI's {name, url} reference shape
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonData is the body of GET /pokemon/{id or name}
type PokemonData struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Sprites SpritesData `json:"sprites"`
	Types   []TypeSlot  `json:"types"`
	Stats   []StatData  `json:"stats"`
	Moves   []MoveSlot  `json:"moves"`
	Cries   CriesData   `json:"cries"`
}

// SpritesData only keeps the "other" artwork sets
type SpritesData struct {
	Other map[string]ArtworkData `json:"other"`
}

// ArtworkData is one artwork set; PokeAPI sends null for missing images
type ArtworkData struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
}

// TypeSlot is an entry of the types list
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatData is an entry of the stats list
type StatData struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// MoveSlot is an entry of the moves list
type MoveSlot struct {
	Move NamedResource `json:"move"`
}

// CriesData holds the audio clip urls
type CriesData struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

// MoveData is the body of GET /move/{id or name}
type MoveData struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Type     NamedResource `json:"type"`
	Power    *int          `json:"power"`
	Accuracy *int          `json:"accuracy"`
}
