package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
)

func TestSplitRepoArg(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    domain.RepoRef
		wantErr bool
	}{
		{
			name: "valid",
			arg:  "myorg/myrepo",
			want: domain.RepoRef{Owner: "myorg", Name: "myrepo"},
		},
		{
			name:    "missing slash",
			arg:     "myrepo",
			wantErr: true,
		},
		{
			name:    "empty owner",
			arg:     "/myrepo",
			wantErr: true,
		},
		{
			name:    "empty name",
			arg:     "myorg/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := splitRepoArg(tt.arg)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo)
		})
	}
}

func TestBuildSource(t *testing.T) {
	source, err := buildSource("github", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "github", source.Type())

	source, err = buildSource("gitlab", "https://git.example.com/api/v4", nil)
	require.NoError(t, err)
	assert.Equal(t, "gitlab", source.Type())

	_, err = buildSource("bitbucket", "", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")

	require.NoError(t, writeFileAtomic(path, "# Release v1.1.0\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Release v1.1.0\n", string(content))

	// Overwrites existing content and leaves no temp files behind.
	require.NoError(t, writeFileAtomic(path, "updated"))

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
