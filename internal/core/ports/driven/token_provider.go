package driven

import "context"

// TokenProvider supplies an access token for host authentication.
// Implementations decide where the token comes from (flag, environment,
// nothing); sources call GetToken lazily when they first touch the host.
type TokenProvider interface {
	// GetToken returns the token, or empty string for unauthenticated
	// access to public repositories.
	GetToken(ctx context.Context) (string, error)
}
