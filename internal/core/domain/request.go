package domain

import "time"

// GenerateRequest holds everything one generation call needs.
type GenerateRequest struct {
	// Repo is the repository to collect changes from.
	Repo RepoRef

	// Tags bounds the merged changes to include.
	Tags TagRange

	// Version is the release identifier for the document header.
	// Defaults to the upper tag when empty.
	Version string

	// ReleaseDate is the document's release date. Defaults to now when zero.
	ReleaseDate time.Time

	// Mapping is the label to category table.
	Mapping CategoryMapping

	// Sort is the in-category ordering. Defaults to ascending when empty.
	Sort SortDirection

	// Format selects the renderer variant.
	Format string

	// SkipCache bypasses cache reads, forcing a fresh fetch.
	SkipCache bool
}

// Normalize fills defaults and validates the request.
func (r *GenerateRequest) Normalize() error {
	if err := r.Repo.Validate(); err != nil {
		return err
	}
	if err := r.Tags.Validate(); err != nil {
		return err
	}
	if r.Version == "" {
		r.Version = r.Tags.To
	}
	if r.ReleaseDate.IsZero() {
		r.ReleaseDate = time.Now().UTC()
	}
	if r.Sort == "" {
		r.Sort = SortAscending
	}
	if r.Mapping.Labels == nil {
		r.Mapping = DefaultCategoryMapping()
	}
	return nil
}

// GenerateResult pairs the categorized document with its rendered form.
type GenerateResult struct {
	Document ReleaseNotesDocument
	Output   string
	Format   string
}

// FetchKey identifies one fetch result in the change cache.
type FetchKey struct {
	Source string
	Owner  string
	Repo   string
	From   string
	To     string
}
