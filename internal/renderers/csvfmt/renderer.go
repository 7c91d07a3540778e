package csvfmt

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// Format is the renderer's format identifier.
const Format = "csv"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// header is the column layout, one row per change.
var header = []string{"version", "category", "number", "title", "author", "labels", "url", "merged_at"}

// Renderer renders release notes as CSV, one row per change.
// An empty release produces just the header row.
type Renderer struct{}

// New creates a CSV renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns the format identifier.
func (r *Renderer) Format() string {
	return Format
}

// Render produces the CSV document.
func (r *Renderer) Render(doc domain.ReleaseNotesDocument) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, group := range doc.Groups {
		for _, c := range group.Changes {
			row := []string{
				doc.Version,
				group.Name,
				strconv.Itoa(c.Number),
				c.Title,
				c.Author,
				strings.Join(c.Labels, ";"),
				c.URL,
				c.MergedAt.UTC().Format(time.RFC3339),
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("write row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush: %w", err)
	}
	return b.String(), nil
}
