package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client with rate-limit-aware helpers.
type Client struct {
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	limiter       *Limiter
}

// NewClient creates a GitHub API client with a token provider.
// The underlying client is built lazily so the token is only resolved
// when the host is first touched.
func NewClient(tokenProvider driven.TokenProvider) *Client {
	return &Client{
		tokenProvider: tokenProvider,
		limiter:       NewLimiter(),
	}
}

// NewClientWithHTTPClient creates a GitHub client over a custom http.Client.
// Used in tests together with SetBaseURL.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		gh:      gh.NewClient(httpClient),
		limiter: NewLimiter(),
	}
}

// SetBaseURL points the client at a different API root (test server or
// GitHub Enterprise). Must end in a slash.
func (c *Client) SetBaseURL(base string) error {
	if c.gh == nil {
		c.gh = gh.NewClient(&http.Client{Timeout: DefaultTimeout})
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	c.gh.BaseURL = u
	return nil
}

// ensure initialises the go-github client if not already done.
func (c *Client) ensure(ctx context.Context) error {
	if c.gh != nil {
		return nil
	}

	token := ""
	if c.tokenProvider != nil {
		t, err := c.tokenProvider.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		token = t
	}

	if token == "" {
		// Unauthenticated access works for public repositories at a
		// much lower quota.
		c.gh = gh.NewClient(&http.Client{Timeout: DefaultTimeout})
		return nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	c.gh = gh.NewClient(tc)
	return nil
}

// CommitDate resolves a ref (tag name or SHA) to its commit timestamp.
func (c *Client) CommitDate(ctx context.Context, owner, repo, ref string) (time.Time, error) {
	if err := c.ensure(ctx); err != nil {
		return time.Time{}, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return time.Time{}, err
	}

	commit, resp, err := c.gh.Repositories.GetCommit(ctx, owner, repo, ref, nil)
	if err != nil {
		return time.Time{}, translateError(err, c.limiter, fmt.Sprintf("resolve %q", ref))
	}
	c.updateLimiter(resp)

	date := commit.GetCommit().GetCommitter().GetDate().Time
	if date.IsZero() {
		date = commit.GetCommit().GetAuthor().GetDate().Time
	}
	return date, nil
}

// ListClosedPullRequests pages through closed pull requests, newest update
// first, invoking visit per PR. visit returns false to stop paging early.
// Cancellation is checked at each page boundary.
func (c *Client) ListClosedPullRequests(
	ctx context.Context, owner, repo string, visit func(pr *gh.PullRequest) bool,
) error {
	if err := c.ensure(ctx); err != nil {
		return err
	}

	opts := &gh.PullRequestListOptions{
		State:     "closed",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: PageSize,
		},
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return translateError(err, c.limiter, "list pull requests")
		}
		c.updateLimiter(resp)

		for _, pr := range prs {
			if !visit(pr) {
				return nil
			}
		}

		if resp.NextPage == 0 {
			return nil
		}
		opts.Page = resp.NextPage
	}
}

// ValidateCredentials checks the configured token with a cheap API call.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if err := c.ensure(ctx); err != nil {
		return err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return translateError(err, c.limiter, "validate credentials")
	}
	c.updateLimiter(resp)
	return nil
}

// updateLimiter feeds rate limit headers back into the limiter.
func (c *Client) updateLimiter(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.limiter.UpdateFromResponse(resp.Response)
}
