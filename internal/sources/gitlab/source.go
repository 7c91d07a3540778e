package gitlab

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relnotes-cli/internal/logger"
)

// Type is the source type identifier.
const Type = "gitlab"

// Ensure Source implements the interface.
var _ driven.ChangeSource = (*Source)(nil)

// Source fetches merged merge requests between two tags from GitLab.
// Same range semantics as the GitHub source: tags resolve to commit
// timestamps, a merge request is in range when merged after the lower
// tag's commit and no later than the upper tag's.
type Source struct {
	client *Client
}

// New creates a GitLab change source. baseURL selects a self-hosted
// instance; empty means gitlab.com.
func New(baseURL string, tokens driven.TokenProvider) *Source {
	return &Source{client: NewClient(baseURL, tokens)}
}

// Type returns the source type identifier.
func (s *Source) Type() string {
	return Type
}

// Capabilities returns what this source supports.
func (s *Source) Capabilities() driven.SourceCapabilities {
	return driven.SourceCapabilities{
		RequiresAuth:         true,
		SupportsRateLimiting: false,
		SupportsPagination:   true,
	}
}

// Validate checks the project is reachable with the configured credentials.
func (s *Source) Validate(ctx context.Context) error {
	var v struct {
		Version string `json:"version"`
	}
	_, err := s.client.getJSON(ctx, s.client.baseURL+"/version", &v)
	if err != nil {
		return fmt.Errorf("validate credentials: %w", err)
	}
	return nil
}

// tagInfo is the subset of GitLab's tag response we need.
type tagInfo struct {
	Commit struct {
		CommittedDate time.Time `json:"committed_date"`
	} `json:"commit"`
}

// mergeRequest is the subset of GitLab's merge request response we need.
type mergeRequest struct {
	IID    int    `json:"iid"`
	Title  string `json:"title"`
	Author struct {
		Username string `json:"username"`
	} `json:"author"`
	Labels    []string   `json:"labels"`
	WebURL    string     `json:"web_url"`
	MergedAt  *time.Time `json:"merged_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FetchMergedChanges returns all merge requests merged between the two
// tags, deduplicated by IID and ordered by merge time ascending.
func (s *Source) FetchMergedChanges(
	ctx context.Context, repo domain.RepoRef, tags domain.TagRange,
) ([]domain.Change, error) {
	fromDate, err := s.tagCommitDate(ctx, repo, tags.From)
	if err != nil {
		return nil, err
	}
	toDate, err := s.tagCommitDate(ctx, repo, tags.To)
	if err != nil {
		return nil, err
	}

	pageURL := fmt.Sprintf(
		"%s/projects/%s/merge_requests?state=merged&order_by=updated_at&sort=desc&per_page=%d",
		s.client.baseURL, projectID(repo), PageSize,
	)

	seen := make(map[int]bool)
	var changes []domain.Change

	for pageURL != "" {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var mrs []mergeRequest
		resp, err := s.client.getJSON(ctx, pageURL, &mrs)
		if err != nil {
			return nil, fmt.Errorf("list merge requests: %w", err)
		}

		done := false
		for _, mr := range mrs {
			// Sorted newest-update first; once updates predate the
			// lower bound there is nothing left in range.
			if mr.UpdatedAt.Before(fromDate) {
				done = true
				break
			}
			if mr.MergedAt == nil {
				continue
			}
			mergedAt := *mr.MergedAt
			if !mergedAt.After(fromDate) || mergedAt.After(toDate) {
				continue
			}
			if seen[mr.IID] {
				continue
			}
			seen[mr.IID] = true

			changes = append(changes, domain.Change{
				Number:   mr.IID,
				Title:    mr.Title,
				Author:   mr.Author.Username,
				Labels:   mr.Labels,
				URL:      mr.WebURL,
				MergedAt: mergedAt,
			})
		}
		if done {
			break
		}

		pageURL = nextLink(resp.Header.Get("Link"))
	}

	logger.Info("gitlab: collected %d merged changes from %s", len(changes), repo)

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].MergedAt.Equal(changes[j].MergedAt) {
			return changes[i].Number < changes[j].Number
		}
		return changes[i].MergedAt.Before(changes[j].MergedAt)
	})

	return changes, nil
}

// tagCommitDate resolves a tag to its commit timestamp.
func (s *Source) tagCommitDate(ctx context.Context, repo domain.RepoRef, tag string) (time.Time, error) {
	var info tagInfo
	u := fmt.Sprintf("%s/projects/%s/repository/tags/%s", s.client.baseURL, projectID(repo), tag)
	if _, err := s.client.getJSON(ctx, u, &info); err != nil {
		return time.Time{}, fmt.Errorf("tag %q: %w", tag, err)
	}
	return info.Commit.CommittedDate, nil
}
