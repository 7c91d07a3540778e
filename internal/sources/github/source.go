package github

import (
	"context"
	"fmt"
	"sort"

	gh "github.com/google/go-github/v66/github"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relnotes-cli/internal/logger"
)

// Type is the source type identifier.
const Type = "github"

// Ensure Source implements the interface.
var _ driven.ChangeSource = (*Source)(nil)

// Source fetches merged pull requests between two tags from GitHub.
//
// Tags are resolved to their commit timestamps and a pull request counts as
// in range when it was merged after the lower tag's commit and no later
// than the upper tag's commit. Listing walks closed PRs newest-update
// first, which allows stopping as soon as updates predate the lower bound
// (a PR's update time is never before its merge time).
type Source struct {
	client *Client
}

// New creates a GitHub change source authenticating via tokens.
func New(tokens driven.TokenProvider) *Source {
	return &Source{client: NewClient(tokens)}
}

// NewWithClient creates a source over an existing client. Used by tests
// and by callers that share a client between sources.
func NewWithClient(client *Client) *Source {
	return &Source{client: client}
}

// Type returns the source type identifier.
func (s *Source) Type() string {
	return Type
}

// Capabilities returns what this source supports.
func (s *Source) Capabilities() driven.SourceCapabilities {
	return driven.SourceCapabilities{
		RequiresAuth:         true,
		SupportsRateLimiting: true,
		SupportsPagination:   true,
	}
}

// Validate checks the configured credentials with a cheap API call.
func (s *Source) Validate(ctx context.Context) error {
	return s.client.ValidateCredentials(ctx)
}

// FetchMergedChanges returns all pull requests merged between the two tags,
// deduplicated by number and ordered by merge time ascending.
func (s *Source) FetchMergedChanges(
	ctx context.Context, repo domain.RepoRef, tags domain.TagRange,
) ([]domain.Change, error) {
	fromDate, err := s.client.CommitDate(ctx, repo.Owner, repo.Name, tags.From)
	if err != nil {
		return nil, fmt.Errorf("tag %q: %w", tags.From, err)
	}
	toDate, err := s.client.CommitDate(ctx, repo.Owner, repo.Name, tags.To)
	if err != nil {
		return nil, fmt.Errorf("tag %q: %w", tags.To, err)
	}

	logger.Debug("github: %s %s=%s %s=%s", repo, tags.From, fromDate.Format("2006-01-02"), tags.To, toDate.Format("2006-01-02"))

	seen := make(map[int]bool)
	var changes []domain.Change

	err = s.client.ListClosedPullRequests(ctx, repo.Owner, repo.Name, func(pr *gh.PullRequest) bool {
		// Closed PRs arrive newest-update first; once updates predate
		// the lower bound no later PR can have merged in range.
		if pr.GetUpdatedAt().Time.Before(fromDate) {
			return false
		}

		mergedAt := pr.GetMergedAt().Time
		if mergedAt.IsZero() {
			return true // closed without merging
		}
		if !mergedAt.After(fromDate) || mergedAt.After(toDate) {
			return true
		}
		if seen[pr.GetNumber()] {
			return true
		}
		seen[pr.GetNumber()] = true

		labels := make([]string, 0, len(pr.Labels))
		for _, l := range pr.Labels {
			labels = append(labels, l.GetName())
		}

		changes = append(changes, domain.Change{
			Number:   pr.GetNumber(),
			Title:    pr.GetTitle(),
			Author:   pr.GetUser().GetLogin(),
			Labels:   labels,
			URL:      pr.GetHTMLURL(),
			MergedAt: mergedAt,
		})
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].MergedAt.Equal(changes[j].MergedAt) {
			return changes[i].Number < changes[j].Number
		}
		return changes[i].MergedAt.Before(changes[j].MergedAt)
	})

	return changes, nil
}
