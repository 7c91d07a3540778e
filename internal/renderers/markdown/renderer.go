package markdown

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// Format is the renderer's format identifier.
const Format = "markdown"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer renders release notes as GitHub-flavoured Markdown.
type Renderer struct{}

// New creates a Markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns the format identifier.
func (r *Renderer) Format() string {
	return Format
}

// Render produces the Markdown document.
func (r *Renderer) Render(doc domain.ReleaseNotesDocument) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Release %s (%s)\n", doc.Version, doc.ReleaseDate.Format("2006-01-02"))
	if doc.Repo.Owner != "" {
		fmt.Fprintf(&b, "\n%s: %s...%s\n", doc.Repo, doc.Tags.From, doc.Tags.To)
	}

	if doc.IsEmpty() {
		b.WriteString("\n_No changes in this release._\n")
		return b.String(), nil
	}

	for _, group := range doc.Groups {
		fmt.Fprintf(&b, "\n## %s\n\n", group.Name)
		for _, c := range group.Changes {
			if c.URL != "" {
				fmt.Fprintf(&b, "- %s ([#%d](%s))", c.Title, c.Number, c.URL)
			} else {
				fmt.Fprintf(&b, "- %s (#%d)", c.Title, c.Number)
			}
			if c.Author != "" {
				fmt.Fprintf(&b, " by @%s", c.Author)
			}
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
