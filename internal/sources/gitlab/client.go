package gitlab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the gitlab.com API root. Self-hosted instances
	// override it.
	DefaultBaseURL = "https://gitlab.com/api/v4"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// PageSize is the fetch page size (GitLab's maximum).
	PageSize = 100
)

// Client is a minimal GitLab REST client. GitLab has no SDK in our stack,
// so requests are issued directly; the surface needed here is two GET
// endpoints.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	tokenProvider driven.TokenProvider
}

// NewClient creates a GitLab API client against the given API root.
// An empty baseURL selects gitlab.com.
func NewClient(baseURL string, tokens driven.TokenProvider) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		baseURL:       baseURL,
		tokenProvider: tokens,
	}
}

// getJSON issues an authenticated GET and decodes the response body into v.
// The response is returned for header inspection (pagination, quota).
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if c.tokenProvider != nil {
		token, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("get token: %w", err)
		}
		if token != "" {
			req.Header.Set("PRIVATE-TOKEN", token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrTransient, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return resp, nil
}

// classifyStatus maps GitLab HTTP statuses into the domain taxonomy.
func classifyStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == 401:
		return fmt.Errorf("%w: provide a token via --token or the token environment variable", domain.ErrUnauthorized)
	case resp.StatusCode == 403:
		return fmt.Errorf("%w: token lacks access to this project", domain.ErrUnauthorized)
	case resp.StatusCode == 404:
		return domain.ErrNotFound
	case resp.StatusCode == 429:
		return &domain.RateLimitError{
			ResetAt:   rateLimitReset(resp),
			Remaining: 0,
			Limit:     headerInt(resp, "RateLimit-Limit"),
		}
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: gitlab returned %d", domain.ErrTransient, resp.StatusCode)
	default:
		return fmt.Errorf("gitlab API error %d", resp.StatusCode)
	}
}

// rateLimitReset derives the retry hint from Retry-After or the
// RateLimit-Reset epoch header.
func rateLimitReset(resp *http.Response) time.Time {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Now().Add(time.Duration(seconds) * time.Second)
		}
	}
	if v := resp.Header.Get("RateLimit-Reset"); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Unix(epoch, 0)
		}
	}
	return time.Now().Add(time.Minute)
}

func headerInt(resp *http.Response, name string) int {
	n, err := strconv.Atoi(resp.Header.Get(name))
	if err != nil {
		return 0
	}
	return n
}

// projectID returns the URL-encoded "owner/name" project identifier.
func projectID(repo domain.RepoRef) string {
	return url.PathEscape(repo.Owner + "/" + repo.Name)
}
