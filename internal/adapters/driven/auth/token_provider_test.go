package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	token, err := NewStaticProvider("ghp_abc123").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc123", token)
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("RELNOTES_TEST_TOKEN", "from-env")

	token, err := NewEnvProvider("RELNOTES_TEST_TOKEN").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestEnvProvider_DefaultsToStandardVariable(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "default-env-token")

	token, err := NewEnvProvider("").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default-env-token", token)
}

func TestEnvProvider_UnsetReturnsEmpty(t *testing.T) {
	t.Setenv("RELNOTES_TEST_TOKEN", "")

	token, err := NewEnvProvider("RELNOTES_TEST_TOKEN").GetToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestResolve_FlagWinsOverEnvironment(t *testing.T) {
	t.Setenv(DefaultTokenEnv, "env-token")

	token, err := Resolve("flag-token", "").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "flag-token", token)

	token, err = Resolve("", "").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)
}
