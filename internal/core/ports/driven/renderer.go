package driven

import "github.com/custodia-labs/relnotes-cli/internal/core/domain"

// Renderer renders a categorized document into one output format.
// Implementations are side-effect free, perform no I/O, and must produce a
// well-formed "no changes" document for empty input rather than failing.
type Renderer interface {
	// Format returns the format identifier (e.g. "markdown", "json").
	Format() string

	// Render produces the document text in the target format.
	Render(doc domain.ReleaseNotesDocument) (string, error)
}
