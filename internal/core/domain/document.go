package domain

import (
	"fmt"
	"time"
)

// SortDirection controls the in-category ordering of changes.
type SortDirection string

const (
	// SortAscending orders changes oldest merge first.
	SortAscending SortDirection = "asc"

	// SortDescending orders changes newest merge first.
	SortDescending SortDirection = "desc"
)

// ParseSortDirection validates a sort direction string.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case SortAscending, SortDescending:
		return SortDirection(s), nil
	default:
		return "", fmt.Errorf("%w: sort direction must be %q or %q", ErrInvalidInput, SortAscending, SortDescending)
	}
}

// CategoryGroup is one category with its changes in display order.
type CategoryGroup struct {
	// Name is the category name (e.g. "Bug Fixes").
	Name string

	// Changes are the category's changes, ordered by merge time.
	Changes []Change
}

// ReleaseNotesDocument is the categorized result of one generation call.
// It is produced once and never mutated afterwards.
type ReleaseNotesDocument struct {
	// Version identifies the release being described.
	Version string

	// ReleaseDate is when the release was (or will be) published.
	ReleaseDate time.Time

	// Repo is the repository the document describes.
	Repo RepoRef

	// Tags is the range the changes were collected from.
	Tags TagRange

	// Groups holds the ordered categories and their ordered changes.
	Groups []CategoryGroup
}

// TotalChanges returns the number of changes across all groups.
func (d ReleaseNotesDocument) TotalChanges() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Changes)
	}
	return n
}

// IsEmpty reports whether the document describes a release with no changes.
func (d ReleaseNotesDocument) IsEmpty() bool {
	return d.TotalChanges() == 0
}
