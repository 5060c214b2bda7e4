// Package pokemon holds the creature records handed to display layers
package pokemon

import (
	"strconv"
	"strings"
)

// maxBaseStat is the ceiling used to scale stat bars
const maxBaseStat = 255

// Artwork holds the two official artwork variants
type Artwork struct {
	Default string
	Shiny   string
}

// Pokemon is the record returned by a single lookup
type Pokemon struct {
	ID       int
	Name     string
	Artwork  Artwork
	Types    []string
	Stats    []Stat
	MoveRefs []MoveRef
	// CryURL is empty when the remote record has no audio clip
	CryURL string
}

// ArtworkURL returns the shiny variant when shiny is set
func (p *Pokemon) ArtworkURL(shiny bool) string {
	if shiny {
		return p.Artwork.Shiny
	}
	return p.Artwork.Default
}

// HasCry reports whether an audio clip can be played
func (p *Pokemon) HasCry() bool {
	return p.CryURL != ""
}

// Stat is a base statistic in API order
type Stat struct {
	Name      string
	BaseValue int
}

// Label returns the display label for the stat
func (s Stat) Label() string {
	return LabelForStat(s.Name)
}

// Color returns the display color for the stat
func (s Stat) Color() ColorToken {
	return ColorForStat(s.Name)
}

// Percent scales the base value against the highest possible base stat
func (s Stat) Percent() float64 {
	if s.BaseValue <= 0 {
		return 0
	}
	if s.BaseValue >= maxBaseStat {
		return 100
	}
	return float64(s.BaseValue) / maxBaseStat * 100
}

// MoveRef points at a move resource by its full URL
type MoveRef struct {
	Name string
	URL  string
}

// Move is the resolved detail of a MoveRef
type Move struct {
	Name     string
	Type     string
	Power    *int
	Accuracy *int
}

// DisplayName swaps the first hyphen for a space ("thunder-punch" -> "thunder punch")
func (m *Move) DisplayName() string {
	return strings.Replace(m.Name, "-", " ", 1)
}

// TypeColor returns the display color for the move type
func (m *Move) TypeColor() ColorToken {
	return ColorForType(m.Type)
}

// PowerLabel renders power, "--" when absent or zero
func (m *Move) PowerLabel() string {
	return optionalLabel(m.Power)
}

// AccuracyLabel renders accuracy, "--" when absent or zero
func (m *Move) AccuracyLabel() string {
	return optionalLabel(m.Accuracy)
}

func optionalLabel(v *int) string {
	if v == nil || *v == 0 {
		return "--"
	}
	return strconv.Itoa(*v)
}

// EnrichedPokemon is a Pokemon with its first moves resolved.
// Moves is in the same order as the leading MoveRefs it was built from.
type EnrichedPokemon struct {
	Pokemon *Pokemon
	Moves   []*Move
}
