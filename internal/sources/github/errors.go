package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	gh "github.com/google/go-github/v66/github"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
)

// translateError converts go-github failures into the domain taxonomy so
// nothing provider-specific crosses the port.
func translateError(err error, limiter *Limiter, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &domain.RateLimitError{
			ResetAt:   rateErr.Rate.Reset.Time,
			Remaining: rateErr.Rate.Remaining,
			Limit:     rateErr.Rate.Limit,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &domain.RateLimitError{
			ResetAt: time.Now().Add(abuseErr.GetRetryAfter()),
			Limit:   limiter.Limit(),
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		status := ghErr.Response.StatusCode
		switch {
		case status == 401:
			return fmt.Errorf("%s: %w: provide a token via --token or the token environment variable", op, domain.ErrUnauthorized)
		case status == 403 || status == 429:
			if limiter.Remaining() == 0 {
				return &domain.RateLimitError{
					ResetAt:   limiter.ResetAt(),
					Remaining: 0,
					Limit:     limiter.Limit(),
				}
			}
			return fmt.Errorf("%s: %w: token lacks access to this repository", op, domain.ErrUnauthorized)
		case status == 404 || status == 422:
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		case status >= 500:
			return fmt.Errorf("%s: %w: github returned %d", op, domain.ErrTransient, status)
		default:
			return fmt.Errorf("%s: github API error %d: %s", op, status, ghErr.Message)
		}
	}

	// Anything left at this point failed before an HTTP status existed:
	// DNS, connect, TLS, timeout.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrTransient, urlErr.Err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
