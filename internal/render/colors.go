package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// terminalColors maps display color tokens to ANSI 256 palette entries
var terminalColors = map[string]lipgloss.Color{
	"bg-gray-400":   lipgloss.Color("246"),
	"bg-gray-800":   lipgloss.Color("236"),
	"bg-orange-500": lipgloss.Color("208"),
	"bg-blue-400":   lipgloss.Color("75"),
	"bg-blue-500":   lipgloss.Color("33"),
	"bg-yellow-400": lipgloss.Color("220"),
	"bg-yellow-500": lipgloss.Color("214"),
	"bg-green-500":  lipgloss.Color("34"),
	"bg-cyan-300":   lipgloss.Color("117"),
	"bg-red-400":    lipgloss.Color("203"),
	"bg-red-500":    lipgloss.Color("196"),
	"bg-red-700":    lipgloss.Color("124"),
	"bg-purple-500": lipgloss.Color("129"),
	"bg-amber-700":  lipgloss.Color("130"),
	"bg-indigo-400": lipgloss.Color("105"),
	"bg-indigo-700": lipgloss.Color("61"),
	"bg-pink-300":   lipgloss.Color("218"),
	"bg-pink-500":   lipgloss.Color("205"),
	"bg-lime-500":   lipgloss.Color("112"),
	"bg-stone-500":  lipgloss.Color("244"),
	"bg-violet-600": lipgloss.Color("92"),
	"bg-slate-500":  lipgloss.Color("67"),
}

// TerminalColor returns the palette entry for a color token, falling back to
// the default token's entry
func TerminalColor(token string) lipgloss.Color {
	if c, ok := terminalColors[token]; ok {
		return c
	}
	return terminalColors[string(pokemon.DefaultColor)]
}

func borderColor() lipgloss.Color { return lipgloss.Color("240") }

func titleColor() lipgloss.Color { return lipgloss.Color("39") }

func errorColor() lipgloss.Color { return lipgloss.Color("196") }
