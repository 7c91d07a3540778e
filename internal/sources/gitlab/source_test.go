package gitlab

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

var (
	testRepo = domain.RepoRef{Owner: "myorg", Name: "myrepo"}
	testTags = domain.TagRange{From: "v1.0.0", To: "v1.1.0"}
)

type staticToken string

func (s staticToken) GetToken(context.Context) (string, error) { return string(s), nil }

// newTestSource stands up a source against a local server. The handler
// receives the escaped request path, because project IDs keep their
// encoded slash on the wire.
func newTestSource(t *testing.T, tokens driven.TokenProvider, handler func(w http.ResponseWriter, r *http.Request, path string)) *Source {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(w, r, r.URL.EscapedPath())
	}))
	t.Cleanup(server.Close)

	return New(server.URL, tokens)
}

func tagJSON(date string) string {
	return fmt.Sprintf(`{"name":"tag","commit":{"committed_date":"%s"}}`, date)
}

func serveTags(w http.ResponseWriter, path string) bool {
	switch {
	case strings.HasSuffix(path, "/repository/tags/v1.0.0"):
		fmt.Fprint(w, tagJSON("2026-01-01T00:00:00Z"))
	case strings.HasSuffix(path, "/repository/tags/v1.1.0"):
		fmt.Fprint(w, tagJSON("2026-01-31T00:00:00Z"))
	default:
		return false
	}
	return true
}

func TestSource_FetchMergedChanges_PagesAndFilters(t *testing.T) {
	source := newTestSource(t, nil, func(w http.ResponseWriter, r *http.Request, path string) {
		if serveTags(w, path) {
			return
		}
		assert.Contains(t, path, "/projects/myorg%2Fmyrepo/merge_requests")

		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/projects/myorg%%2Fmyrepo/merge_requests?page=2>; rel="next"`, r.Host))
			fmt.Fprint(w, `[
				{"iid":12,"title":"Add importer","author":{"username":"bob"},"labels":["feature"],
				 "web_url":"https://example.com/mr/12","merged_at":"2026-01-18T00:00:00Z","updated_at":"2026-01-19T00:00:00Z"}
			]`)
		case "2":
			fmt.Fprint(w, `[
				{"iid":11,"title":"Fix leak","author":{"username":"alice"},"labels":["bug","backend"],
				 "web_url":"https://example.com/mr/11","merged_at":"2026-01-05T00:00:00Z","updated_at":"2026-01-05T12:00:00Z"},
				{"iid":9,"title":"Before the range","author":{"username":"dave"},"labels":[],
				 "web_url":"https://example.com/mr/9","merged_at":"2025-12-01T00:00:00Z","updated_at":"2025-12-01T00:00:00Z"}
			]`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})

	changes, err := source.FetchMergedChanges(context.Background(), testRepo, testTags)
	require.NoError(t, err)

	require.Len(t, changes, 2)
	assert.Equal(t, 11, changes[0].Number)
	assert.Equal(t, 12, changes[1].Number)
	assert.Equal(t, "alice", changes[0].Author)
	assert.Equal(t, []string{"bug", "backend"}, changes[0].Labels)
	assert.Equal(t, "https://example.com/mr/11", changes[0].URL)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), changes[0].MergedAt)
}

func TestSource_FetchMergedChanges_SendsPrivateToken(t *testing.T) {
	source := newTestSource(t, staticToken("glpat-secret"), func(w http.ResponseWriter, r *http.Request, path string) {
		assert.Equal(t, "glpat-secret", r.Header.Get("PRIVATE-TOKEN"))
		if serveTags(w, path) {
			return
		}
		fmt.Fprint(w, `[]`)
	})

	_, err := source.FetchMergedChanges(context.Background(), testRepo, testTags)
	require.NoError(t, err)
}

func TestSource_FetchMergedChanges_TagNotFound(t *testing.T) {
	source := newTestSource(t, nil, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"404 Tag Not Found"}`)
	})

	_, err := source.FetchMergedChanges(context.Background(), testRepo,
		domain.TagRange{From: "does-not-exist", To: "v1.1.0"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestSource_FetchMergedChanges_Unauthorized(t *testing.T) {
	source := newTestSource(t, nil, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := source.FetchMergedChanges(context.Background(), testRepo, testTags)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSource_FetchMergedChanges_RateLimited(t *testing.T) {
	source := newTestSource(t, nil, func(w http.ResponseWriter, _ *http.Request, path string) {
		if serveTags(w, path) {
			return
		}
		w.Header().Set("Retry-After", "120")
		w.Header().Set("RateLimit-Limit", "2000")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	changes, err := source.FetchMergedChanges(context.Background(), testRepo, testTags)

	require.Error(t, err)
	assert.Nil(t, changes)
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	var rateErr *domain.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 2000, rateErr.Limit)
	assert.WithinDuration(t, time.Now().Add(2*time.Minute), rateErr.ResetAt, 5*time.Second)
}

func TestSource_FetchMergedChanges_ServerErrorIsTransient(t *testing.T) {
	source := newTestSource(t, nil, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := source.FetchMergedChanges(context.Background(), testRepo, testTags)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestSource_FetchMergedChanges_Cancellation(t *testing.T) {
	source := newTestSource(t, nil, func(w http.ResponseWriter, _ *http.Request, path string) {
		if serveTags(w, path) {
			return
		}
		fmt.Fprint(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.FetchMergedChanges(ctx, testRepo, testTags)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_TypeAndCapabilities(t *testing.T) {
	source := New("", nil)

	assert.Equal(t, "gitlab", source.Type())
	assert.Equal(t, DefaultBaseURL, source.client.baseURL)

	caps := source.Capabilities()
	assert.True(t, caps.RequiresAuth)
	assert.False(t, caps.SupportsRateLimiting)
	assert.True(t, caps.SupportsPagination)
}
