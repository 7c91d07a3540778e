package domain

import (
	"strings"
	"time"
)

// Change represents one merged contribution between two tags.
// Changes are immutable once fetched; the host remains the source of truth,
// so the same tag range may yield different results if new merges land
// before the upper tag is finalised.
type Change struct {
	// Number is the host-assigned identifier, unique within a repository.
	Number int

	// Title is the change's headline as shown on the host.
	Title string

	// Author is the login of the contributor who authored the change.
	Author string

	// Labels are the host labels attached to the change, in host order.
	Labels []string

	// URL locates the change on the host.
	URL string

	// MergedAt is when the change was merged.
	MergedAt time.Time
}

// HasLabel reports whether the change carries the given label.
// Comparison is case-insensitive to match host label semantics.
func (c Change) HasLabel(label string) bool {
	for _, l := range c.Labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}
