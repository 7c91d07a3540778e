package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/relnotes-cli/internal/logger"
)

const (
	// MaxFetchAttempts bounds retries for transient network errors.
	MaxFetchAttempts = 3

	// RetryDelay is the initial delay between attempts, doubling each time.
	RetryDelay = time.Second
)

// Ensure Notes implements the interface.
var _ driving.NotesService = (*Notes)(nil)

// Notes orchestrates the generation pipeline:
// validate -> fetch -> categorize -> render.
type Notes struct {
	source     driven.ChangeSource
	renderers  *RendererRegistry
	cache      driven.ChangeCache
	retryDelay time.Duration
}

// NewNotes creates the pipeline service. cache may be nil to disable
// caching entirely.
func NewNotes(source driven.ChangeSource, renderers *RendererRegistry, cache driven.ChangeCache) *Notes {
	return &Notes{
		source:     source,
		renderers:  renderers,
		cache:      cache,
		retryDelay: RetryDelay,
	}
}

// Generate runs the full pipeline. The request is validated before any
// network call; a failed generation returns no partial output.
func (n *Notes) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	renderer, err := n.renderers.Get(req.Format)
	if err != nil {
		return nil, err
	}

	changes, err := n.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	groups := Categorize(changes, req.Mapping, req.Sort)

	doc := domain.ReleaseNotesDocument{
		Version:     req.Version,
		ReleaseDate: req.ReleaseDate,
		Repo:        req.Repo,
		Tags:        req.Tags,
		Groups:      groups,
	}

	output, err := renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", req.Format, err)
	}

	return &domain.GenerateResult{
		Document: doc,
		Output:   output,
		Format:   req.Format,
	}, nil
}

// Formats lists the registered output formats.
func (n *Notes) Formats() []string {
	return n.renderers.Formats()
}

// fetch resolves changes from the cache or the host, retrying transient
// failures with doubling backoff. Rate limit errors are surfaced directly
// with their reset hint; retrying past a quota locally would just burn
// the remaining budget.
func (n *Notes) fetch(ctx context.Context, req domain.GenerateRequest) ([]domain.Change, error) {
	key := domain.FetchKey{
		Source: n.source.Type(),
		Owner:  req.Repo.Owner,
		Repo:   req.Repo.Name,
		From:   req.Tags.From,
		To:     req.Tags.To,
	}

	if n.cache != nil && !req.SkipCache {
		changes, ok, err := n.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("cache read failed: %v", err)
		} else if ok {
			logger.Debug("cache hit for %s %s..%s (%d changes)", req.Repo, req.Tags.From, req.Tags.To, len(changes))
			return changes, nil
		}
	}

	var changes []domain.Change
	var err error
	delay := n.retryDelay

	for attempt := 1; attempt <= MaxFetchAttempts; attempt++ {
		changes, err = n.source.FetchMergedChanges(ctx, req.Repo, req.Tags)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrTransient) || attempt == MaxFetchAttempts {
			return nil, err
		}

		logger.Warn("fetch attempt %d/%d failed: %v", attempt, MaxFetchAttempts, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	if err != nil {
		return nil, err
	}

	logger.Info("fetched %d merged changes from %s", len(changes), req.Repo)

	if n.cache != nil {
		if cacheErr := n.cache.Put(ctx, key, changes); cacheErr != nil {
			logger.Warn("cache write failed: %v", cacheErr)
		}
	}

	return changes, nil
}
