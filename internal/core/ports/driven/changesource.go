package driven

import (
	"context"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
)

// ChangeSource fetches merged changes from a version-control host.
// Each host type (github, gitlab, ...) implements this interface; callers
// may supply their own implementation for other hosts. Implementations own
// their authentication and pagination strategy and share no state.
type ChangeSource interface {
	// Type returns the source type identifier (e.g. "github").
	Type() string

	// Capabilities returns what this source supports.
	Capabilities() SourceCapabilities

	// Validate performs a lightweight host call to check the source is
	// configured and authenticated. Returns nil if ready to fetch.
	Validate(ctx context.Context) error

	// FetchMergedChanges returns every change merged between the commits
	// the two tags resolve to, as one flattened sequence deduplicated by
	// number and ordered by merge time ascending. Pagination is handled
	// internally; cancellation is checked at each page boundary. A failure
	// mid-pagination surfaces an error rather than a truncated sequence.
	//
	// Fails with domain.ErrNotFound when a tag does not resolve,
	// domain.ErrUnauthorized on missing/invalid credentials,
	// domain.RateLimitError when the host quota is exhausted, and
	// domain.ErrTransient on connectivity failures.
	FetchMergedChanges(ctx context.Context, repo domain.RepoRef, tags domain.TagRange) ([]domain.Change, error)
}

// SourceCapabilities describes what a change source supports.
type SourceCapabilities struct {
	// RequiresAuth indicates the host needs credentials for private
	// repositories. Public repositories may still work without.
	RequiresAuth bool

	// SupportsRateLimiting indicates the source throttles itself against
	// the host quota.
	SupportsRateLimiting bool

	// SupportsPagination indicates the source pages through results
	// internally. Informational; all bundled sources do.
	SupportsPagination bool
}
