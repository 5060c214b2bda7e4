package v1alpha1

// SearchRequest submits one lookup
type SearchRequest struct {
	// SessionID ties submissions from one screen together. Optional.
	SessionID string `json:"session_id,omitempty"`
	Query     string `json:"query"`
}

// GetSessionID returns the session id, empty for a nil request
func (r *SearchRequest) GetSessionID() string {
	if r == nil {
		return ""
	}
	return r.SessionID
}

// GetQuery returns the query, empty for a nil request
func (r *SearchRequest) GetQuery() string {
	if r == nil {
		return ""
	}
	return r.Query
}

// SearchResponse is a fully resolved lookup
type SearchResponse struct {
	Pokemon    *Pokemon `json:"pokemon"`
	Generation int64    `json:"generation,omitempty"`
	RequestID  string   `json:"request_id"`
}

// GetPokemon returns the pokemon, nil for a nil response
func (r *SearchResponse) GetPokemon() *Pokemon {
	if r == nil {
		return nil
	}
	return r.Pokemon
}

// Pokemon carries the entity record together with its display tokens
type Pokemon struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	ArtworkURL      string     `json:"artwork_url,omitempty"`
	ShinyArtworkURL string     `json:"shiny_artwork_url,omitempty"`
	CryURL          string     `json:"cry_url,omitempty"`
	Types           []*TypeTag `json:"types"`
	Stats           []*Stat    `json:"stats"`
	Moves           []*Move    `json:"moves"`
}

// TypeTag is a type name and its color token
type TypeTag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Stat is a base stat with its label, color and bar width
type Stat struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	BaseValue int     `json:"base_value"`
	Percent   float64 `json:"percent"`
}

// Move is a resolved move. Power and Accuracy are display labels; the raw
// values are omitted when the move has none.
type Move struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Type          string `json:"type"`
	TypeColor     string `json:"type_color"`
	Power         string `json:"power"`
	Accuracy      string `json:"accuracy"`
	PowerValue    *int   `json:"power_value,omitempty"`
	AccuracyValue *int   `json:"accuracy_value,omitempty"`
}
