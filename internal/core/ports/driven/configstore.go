package driven

import "github.com/custodia-labs/relnotes-cli/internal/core/domain"

// ConfigStore persists user configuration: the label mapping, category
// order, and generation defaults.
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty if absent.
	GetString(key string) string

	// GetStringMap retrieves a string-to-string table, nil if absent.
	GetStringMap(key string) map[string]string

	// GetStringSlice retrieves a string list, nil if absent.
	GetStringSlice(key string) []string

	// Set stores a value and persists it.
	Set(key string, value any) error

	// CategoryMapping assembles the configured label mapping, falling back
	// to domain.DefaultCategoryMapping when none is configured.
	CategoryMapping() domain.CategoryMapping
}
