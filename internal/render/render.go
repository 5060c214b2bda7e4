// Package render writes pokedex lookups to a terminal
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const (
	boxWidth      = 64
	statBarWidth  = 20
	statLabelPad  = 14
	moveNamePad   = 16
	barFilledChar = "█"
	barEmptyChar  = "░"
	noCryLabel    = "(no cry available)"
)

// Options controls how a pokemon is written
type Options struct {
	// Shiny selects the alternate artwork
	Shiny bool
	// ShowCry includes the audio clip url
	ShowCry bool
	// Styled forces lipgloss output even when w is not a terminal
	Styled bool
}

// Pokemon writes a resolved pokemon. Terminals get a styled box, everything
// else gets plain text.
func Pokemon(w io.Writer, p *pokedexv1alpha1.Pokemon, opts Options) error {
	if p == nil {
		return nil
	}

	if opts.Styled || isWriterTerminal(w) {
		return renderStyled(w, p, opts)
	}
	return renderPlain(w, p, opts)
}

// Error writes the user facing message of err
func Error(w io.Writer, err error) error {
	if err == nil {
		return nil
	}

	msg := errors.GetMessage(err)
	if isWriterTerminal(w) {
		msg = lipgloss.NewStyle().Bold(true).Foreground(errorColor()).Render(msg)
	}
	_, writeErr := fmt.Fprintln(w, msg)
	return writeErr
}

func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

func renderPlain(w io.Writer, p *pokedexv1alpha1.Pokemon, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "#%03d %s\n", p.ID, titleCase(p.Name))

	typeNames := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		typeNames = append(typeNames, t.Name)
	}
	fmt.Fprintf(&b, "Types: %s\n", strings.Join(typeNames, ", "))
	fmt.Fprintf(&b, "Artwork: %s\n", artworkURL(p, opts.Shiny))
	if opts.ShowCry {
		fmt.Fprintf(&b, "Cry: %s\n", cryLabel(p))
	}

	b.WriteString("Stats:\n")
	for _, s := range p.Stats {
		fmt.Fprintf(&b, "  %-*s %3d %s\n", statLabelPad, s.Label, s.BaseValue, plainBar(s.Percent))
	}

	b.WriteString("Moves:\n")
	if len(p.Moves) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, m := range p.Moves {
		fmt.Fprintf(&b, "  %-*s %-10s power %-3s accuracy %s\n",
			moveNamePad, titleCase(m.DisplayName), m.Type, m.Power, m.Accuracy)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderStyled(w io.Writer, p *pokedexv1alpha1.Pokemon, opts Options) error {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor())

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("33"))

	borderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor()).
		Padding(0, 1).
		Width(boxWidth)

	var content strings.Builder
	content.WriteString(titleStyle.Render(fmt.Sprintf("#%03d %s", p.ID, titleCase(p.Name))))
	content.WriteString("\n")

	tags := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		tags = append(tags, lipgloss.NewStyle().
			Background(TerminalColor(t.Color)).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1).
			Render(t.Name))
	}
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tags...))
	content.WriteString("\n")
	content.WriteString(artworkURL(p, opts.Shiny))
	content.WriteString("\n")
	if opts.ShowCry {
		content.WriteString(cryLabel(p))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(sectionStyle.Render("STATS"))
	content.WriteString("\n")
	for _, s := range p.Stats {
		content.WriteString(fmt.Sprintf("%-*s %3d %s\n", statLabelPad, s.Label, s.BaseValue, styledBar(s)))
	}

	content.WriteString("\n")
	content.WriteString(sectionStyle.Render("MOVES"))
	content.WriteString("\n")
	for _, m := range p.Moves {
		typeTag := lipgloss.NewStyle().Foreground(TerminalColor(m.TypeColor)).Render(m.Type)
		content.WriteString(fmt.Sprintf("%-*s %s  pow %s  acc %s\n",
			moveNamePad, titleCase(m.DisplayName), typeTag, m.Power, m.Accuracy))
	}

	_, err := fmt.Fprintln(w, borderStyle.Render(strings.TrimRight(content.String(), "\n")))
	return err
}

func artworkURL(p *pokedexv1alpha1.Pokemon, shiny bool) string {
	if shiny {
		return p.ShinyArtworkURL
	}
	return p.ArtworkURL
}

func cryLabel(p *pokedexv1alpha1.Pokemon) string {
	if p.CryURL == "" {
		return noCryLabel
	}
	return p.CryURL
}

func barWidths(percent float64) (int, int) {
	filled := int(percent / 100 * statBarWidth)
	if filled > statBarWidth {
		filled = statBarWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled, statBarWidth - filled
}

func plainBar(percent float64) string {
	filled, empty := barWidths(percent)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", empty) + "]"
}

func styledBar(s *pokedexv1alpha1.Stat) string {
	filled, empty := barWidths(s.Percent)
	filledStyle := lipgloss.NewStyle().Foreground(TerminalColor(s.Color))
	emptyStyle := lipgloss.NewStyle().Foreground(borderColor())
	return filledStyle.Render(strings.Repeat(barFilledChar, filled)) +
		emptyStyle.Render(strings.Repeat(barEmptyChar, empty))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
