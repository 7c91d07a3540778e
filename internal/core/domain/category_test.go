package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategoryMapping(t *testing.T) {
	mapping := DefaultCategoryMapping()

	require.NotEmpty(t, mapping.Labels)
	assert.Equal(t, "Bug Fixes", mapping.Labels["bug"])
	assert.Equal(t, "Features", mapping.Labels["feature"])
	assert.Equal(t, DefaultCategory, mapping.Default)
	assert.Contains(t, mapping.Order, "Breaking Changes")
}

func TestCategoryMapping_Categorize_FirstLabelWins(t *testing.T) {
	mapping := CategoryMapping{
		Labels:  map[string]string{"bug": "Bug Fixes", "feature": "Features"},
		Default: "Other",
	}

	// The change's own label order decides precedence.
	change := Change{Number: 1, Labels: []string{"feature", "bug"}}
	assert.Equal(t, "Features", mapping.Categorize(change))

	change = Change{Number: 2, Labels: []string{"bug", "feature"}}
	assert.Equal(t, "Bug Fixes", mapping.Categorize(change))
}

func TestCategoryMapping_Categorize_CaseInsensitive(t *testing.T) {
	mapping := CategoryMapping{
		Labels:  map[string]string{"bug": "Bug Fixes"},
		Default: "Other",
	}

	change := Change{Number: 1, Labels: []string{"Bug"}}
	assert.Equal(t, "Bug Fixes", mapping.Categorize(change))
}

func TestCategoryMapping_Categorize_UnmatchedFallsIntoDefault(t *testing.T) {
	mapping := CategoryMapping{
		Labels:  map[string]string{"bug": "Bug Fixes"},
		Default: "Other",
	}

	change := Change{Number: 1, Labels: []string{"chore"}}
	assert.Equal(t, "Other", mapping.Categorize(change))

	change = Change{Number: 2}
	assert.Equal(t, "Other", mapping.Categorize(change))
}

func TestCategoryMapping_Categorize_EmptyDefaultUsesBuiltin(t *testing.T) {
	mapping := CategoryMapping{Labels: map[string]string{}}

	change := Change{Number: 1, Labels: []string{"anything"}}
	assert.Equal(t, DefaultCategory, mapping.Categorize(change))
}

func TestChange_HasLabel(t *testing.T) {
	change := Change{Labels: []string{"Bug", "needs-review"}}

	assert.True(t, change.HasLabel("bug"))
	assert.True(t, change.HasLabel("needs-review"))
	assert.False(t, change.HasLabel("feature"))
}
