package driven

import (
	"context"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
)

// ChangeCache stores the results of successful fetches so a document can be
// re-rendered without touching the host. Only complete fetch results are
// ever written; a failed fetch leaves the cache untouched.
type ChangeCache interface {
	// Get returns the cached changes for a key, with ok=false on miss.
	Get(ctx context.Context, key domain.FetchKey) (changes []domain.Change, ok bool, err error)

	// Put stores a complete fetch result, replacing any previous entry
	// for the same key.
	Put(ctx context.Context, key domain.FetchKey, changes []domain.Change) error

	// Clear removes all cached fetch results.
	Clear(ctx context.Context) error

	// Close releases the underlying store.
	Close() error
}
