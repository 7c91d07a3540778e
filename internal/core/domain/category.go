package domain

import "strings"

// DefaultCategory is the bucket for changes with no mapped label.
const DefaultCategory = "Other Changes"

// CategoryMapping is the configuration table that derives a category from
// a change's labels. A change's first label (in host order) that appears in
// the table wins; changes with no matching label fall into Default.
type CategoryMapping struct {
	// Labels maps a label (lowercase) to a category name.
	Labels map[string]string

	// Order lists category names in display order. Categories produced by
	// the mapping but not listed here are appended in order of first use;
	// the default bucket always comes last.
	Order []string

	// Default is the category for unmatched changes.
	Default string
}

// DefaultCategoryMapping returns the built-in label mapping used when the
// config file declares none.
func DefaultCategoryMapping() CategoryMapping {
	return CategoryMapping{
		Labels: map[string]string{
			"breaking":        "Breaking Changes",
			"breaking-change": "Breaking Changes",
			"security":        "Security",
			"feature":         "Features",
			"enhancement":     "Features",
			"bug":             "Bug Fixes",
			"fix":             "Bug Fixes",
			"documentation":   "Documentation",
			"docs":            "Documentation",
		},
		Order: []string{
			"Breaking Changes",
			"Security",
			"Features",
			"Bug Fixes",
			"Documentation",
		},
		Default: DefaultCategory,
	}
}

// Categorize returns the category for a change. Lookup is case-insensitive
// on the label; the change's own label order decides precedence.
func (m CategoryMapping) Categorize(c Change) string {
	for _, label := range c.Labels {
		if cat, ok := m.Labels[strings.ToLower(label)]; ok {
			return cat
		}
	}
	if m.Default != "" {
		return m.Default
	}
	return DefaultCategory
}
