package jsonfmt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// Format is the renderer's format identifier.
const Format = "json"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer renders release notes as an indented JSON document.
// The document round-trips: parsing it back recovers the version, release
// date, and per-category change counts.
type Renderer struct{}

// New creates a JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns the format identifier.
func (r *Renderer) Format() string {
	return Format
}

// Document is the JSON shape of a rendered release.
type Document struct {
	Version     string     `json:"version"`
	ReleaseDate time.Time  `json:"release_date"`
	Repository  string     `json:"repository,omitempty"`
	FromTag     string     `json:"from_tag,omitempty"`
	ToTag       string     `json:"to_tag,omitempty"`
	Categories  []Category `json:"categories"`
}

// Category is one category group in the JSON document.
type Category struct {
	Name    string   `json:"name"`
	Changes []Change `json:"changes"`
}

// Change is one change entry in the JSON document.
type Change struct {
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Labels   []string  `json:"labels,omitempty"`
	URL      string    `json:"url,omitempty"`
	MergedAt time.Time `json:"merged_at"`
}

// Render produces the JSON document.
func (r *Renderer) Render(doc domain.ReleaseNotesDocument) (string, error) {
	out := Document{
		Version:     doc.Version,
		ReleaseDate: doc.ReleaseDate,
		FromTag:     doc.Tags.From,
		ToTag:       doc.Tags.To,
		Categories:  make([]Category, 0, len(doc.Groups)),
	}
	if doc.Repo.Owner != "" {
		out.Repository = doc.Repo.String()
	}

	for _, group := range doc.Groups {
		cat := Category{
			Name:    group.Name,
			Changes: make([]Change, 0, len(group.Changes)),
		}
		for _, c := range group.Changes {
			cat.Changes = append(cat.Changes, Change{
				Number:   c.Number,
				Title:    c.Title,
				Author:   c.Author,
				Labels:   c.Labels,
				URL:      c.URL,
				MergedAt: c.MergedAt,
			})
		}
		out.Categories = append(out.Categories, cat)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(data) + "\n", nil
}
