package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// RendererRegistry maps format names to renderer variants.
// Custom renderers register alongside the bundled ones and are selected
// the same way.
type RendererRegistry struct {
	renderers map[string]driven.Renderer
}

// NewRendererRegistry creates an empty registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]driven.Renderer),
	}
}

// Register adds a renderer under its Format() name, replacing any previous
// renderer for the same format.
func (r *RendererRegistry) Register(renderer driven.Renderer) {
	r.renderers[renderer.Format()] = renderer
}

// Get returns the renderer for a format.
func (r *RendererRegistry) Get(format string) (driven.Renderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	return renderer, nil
}

// Has returns true if a renderer for the format is registered.
func (r *RendererRegistry) Has(format string) bool {
	_, ok := r.renderers[format]
	return ok
}

// Formats returns all registered format names, sorted.
func (r *RendererRegistry) Formats() []string {
	formats := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}
