package driving

import (
	"context"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
)

// NotesService is the primary port for release notes generation.
type NotesService interface {
	// Generate runs the full pipeline: validate, fetch, categorize, render.
	// The request is validated before any network call; a failed generation
	// produces no output.
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error)

	// Formats lists the registered output formats, sorted.
	Formats() []string
}
