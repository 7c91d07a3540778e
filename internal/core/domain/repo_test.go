package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoRef_Validate(t *testing.T) {
	tests := []struct {
		name    string
		repo    RepoRef
		wantErr bool
	}{
		{name: "valid", repo: RepoRef{Owner: "myorg", Name: "myrepo"}},
		{name: "missing owner", repo: RepoRef{Name: "myrepo"}, wantErr: true},
		{name: "missing name", repo: RepoRef{Owner: "myorg"}, wantErr: true},
		{name: "slash in owner", repo: RepoRef{Owner: "my/org", Name: "myrepo"}, wantErr: true},
		{name: "space in name", repo: RepoRef{Owner: "myorg", Name: "my repo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.repo.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepoRef_String(t *testing.T) {
	repo := RepoRef{Owner: "myorg", Name: "myrepo"}
	assert.Equal(t, "myorg/myrepo", repo.String())
}

func TestTagRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tags    TagRange
		wantErr bool
	}{
		{name: "valid", tags: TagRange{From: "v1.0.0", To: "v1.1.0"}},
		{name: "missing from", tags: TagRange{To: "v1.1.0"}, wantErr: true},
		{name: "missing to", tags: TagRange{From: "v1.0.0"}, wantErr: true},
		{name: "identical tags", tags: TagRange{From: "v1.0.0", To: "v1.0.0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tags.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
