// Package renderers aggregates the bundled renderer variants. Each
// subpackage implements the driven.Renderer port for one output format;
// all of them accept the same document shape and produce a well-formed
// "no changes" document for an empty release.
package renderers

import (
	"github.com/custodia-labs/relnotes-cli/internal/core/services"
	"github.com/custodia-labs/relnotes-cli/internal/renderers/csvfmt"
	"github.com/custodia-labs/relnotes-cli/internal/renderers/htmlfmt"
	"github.com/custodia-labs/relnotes-cli/internal/renderers/jsonfmt"
	"github.com/custodia-labs/relnotes-cli/internal/renderers/markdown"
	"github.com/custodia-labs/relnotes-cli/internal/renderers/terminal"
)

// RegisterDefaults registers all built-in renderers with the registry.
// Call this during application initialisation; custom renderers can be
// registered alongside.
func RegisterDefaults(r *services.RendererRegistry) {
	r.Register(markdown.New())
	r.Register(jsonfmt.New())
	r.Register(htmlfmt.New())
	r.Register(csvfmt.New())
	r.Register(terminal.New())
}
