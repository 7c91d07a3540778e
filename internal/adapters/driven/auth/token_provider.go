// Package auth provides TokenProvider implementations for host
// authentication. The reconstruction is token-based only: a token comes
// from an explicit flag or from an environment variable, and an empty
// token means unauthenticated access to public repositories.
package auth

import (
	"context"
	"os"

	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
)

// DefaultTokenEnv is the environment variable consulted when no explicit
// token is given.
const DefaultTokenEnv = "RELNOTES_TOKEN"

// Ensure providers implement the interface.
var (
	_ driven.TokenProvider = (*StaticProvider)(nil)
	_ driven.TokenProvider = (*EnvProvider)(nil)
)

// StaticProvider returns a fixed token, typically from a --token flag.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider for an explicit token.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

// GetToken returns the fixed token.
func (p *StaticProvider) GetToken(_ context.Context) (string, error) {
	return p.token, nil
}

// EnvProvider reads the token from an environment variable on each call.
type EnvProvider struct {
	name string
}

// NewEnvProvider creates a provider reading the named environment variable.
func NewEnvProvider(name string) *EnvProvider {
	if name == "" {
		name = DefaultTokenEnv
	}
	return &EnvProvider{name: name}
}

// GetToken returns the variable's value, empty when unset.
func (p *EnvProvider) GetToken(_ context.Context) (string, error) {
	return os.Getenv(p.name), nil
}

// Resolve picks the token provider for one invocation: an explicit flag
// token wins over the environment variable.
func Resolve(flagToken, envName string) driven.TokenProvider {
	if flagToken != "" {
		return NewStaticProvider(flagToken)
	}
	return NewEnvProvider(envName)
}
