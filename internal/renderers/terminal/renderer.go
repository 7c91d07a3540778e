package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// Format is the renderer's format identifier.
const Format = "terminal"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer renders release notes with ANSI styling for interactive
// terminals. Not suitable for files; the CLI only defaults to it when
// stdout is a TTY.
type Renderer struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	category lipgloss.Style
	number   lipgloss.Style
	author   lipgloss.Style
	empty    lipgloss.Style
}

// New creates a terminal renderer with the default palette.
func New() *Renderer {
	return &Renderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")),
		subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		category: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")),
		number: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")),
		author: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6C7086")),
	}
}

// Format returns the format identifier.
func (r *Renderer) Format() string {
	return Format
}

// Render produces the styled document.
func (r *Renderer) Render(doc domain.ReleaseNotesDocument) (string, error) {
	var b strings.Builder

	b.WriteString(r.title.Render(fmt.Sprintf("Release %s", doc.Version)))
	b.WriteString("  ")
	b.WriteString(r.subtitle.Render(doc.ReleaseDate.Format("2006-01-02")))
	b.WriteString("\n")
	if doc.Repo.Owner != "" {
		b.WriteString(r.subtitle.Render(fmt.Sprintf("%s %s...%s", doc.Repo, doc.Tags.From, doc.Tags.To)))
		b.WriteString("\n")
	}

	if doc.IsEmpty() {
		b.WriteString("\n")
		b.WriteString(r.empty.Render("No changes in this release."))
		b.WriteString("\n")
		return b.String(), nil
	}

	for _, group := range doc.Groups {
		b.WriteString("\n")
		b.WriteString(r.category.Render(group.Name))
		b.WriteString("\n")
		for _, c := range group.Changes {
			b.WriteString("  ")
			b.WriteString(r.number.Render(fmt.Sprintf("#%d", c.Number)))
			b.WriteString(" ")
			b.WriteString(c.Title)
			if c.Author != "" {
				b.WriteString(" ")
				b.WriteString(r.author.Render("@" + c.Author))
			}
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
