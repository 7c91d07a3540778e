package domain

import (
	"fmt"
	"strings"
)

// RepoRef identifies a repository on a version-control host.
type RepoRef struct {
	// Owner is the user or organisation owning the repository.
	Owner string

	// Name is the repository name.
	Name string
}

// String returns the owner/name form used in URLs and messages.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// Validate checks the reference is well-formed before any network call.
func (r RepoRef) Validate() error {
	if strings.TrimSpace(r.Owner) == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: repository is required", ErrInvalidInput)
	}
	if strings.ContainsAny(r.Owner, "/ ") || strings.ContainsAny(r.Name, "/ ") {
		return fmt.Errorf("%w: owner and repository must not contain '/' or spaces", ErrInvalidInput)
	}
	return nil
}

// TagRange bounds which merged changes are included: everything merged
// after From's commit up to and including To's commit.
type TagRange struct {
	// From is the tag marking the previous release.
	From string

	// To is the tag marking the release being described.
	To string
}

// Validate checks both tags are present and distinct.
func (t TagRange) Validate() error {
	if strings.TrimSpace(t.From) == "" {
		return fmt.Errorf("%w: from tag is required", ErrInvalidInput)
	}
	if strings.TrimSpace(t.To) == "" {
		return fmt.Errorf("%w: to tag is required", ErrInvalidInput)
	}
	if t.From == t.To {
		return fmt.Errorf("%w: from and to tags must differ", ErrInvalidInput)
	}
	return nil
}
