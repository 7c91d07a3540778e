package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
)

func testMapping() domain.CategoryMapping {
	return domain.CategoryMapping{
		Labels: map[string]string{
			"bug":     "Bug Fixes",
			"feature": "Features",
		},
		Order:   []string{"Features", "Bug Fixes"},
		Default: "Other",
	}
}

func mergedAt(day int) time.Time {
	return time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC)
}

func TestCategorize_GroupsByFirstMatchingLabel(t *testing.T) {
	changes := []domain.Change{
		{Number: 1, Labels: []string{"bug"}, MergedAt: mergedAt(1)},
		{Number: 2, Labels: []string{"feature", "bug"}, MergedAt: mergedAt(2)},
		{Number: 3, Labels: []string{"chore"}, MergedAt: mergedAt(3)},
	}

	groups := Categorize(changes, testMapping(), domain.SortAscending)

	require.Len(t, groups, 3)
	assert.Equal(t, "Features", groups[0].Name)
	assert.Equal(t, []int{2}, numbers(groups[0]))
	assert.Equal(t, "Bug Fixes", groups[1].Name)
	assert.Equal(t, []int{1}, numbers(groups[1]))
	assert.Equal(t, "Other", groups[2].Name)
	assert.Equal(t, []int{3}, numbers(groups[2]))
}

func TestCategorize_Idempotent(t *testing.T) {
	changes := []domain.Change{
		{Number: 3, Labels: []string{"bug"}, MergedAt: mergedAt(3)},
		{Number: 1, Labels: []string{"feature"}, MergedAt: mergedAt(1)},
		{Number: 2, MergedAt: mergedAt(2)},
	}

	first := Categorize(changes, testMapping(), domain.SortAscending)
	second := Categorize(changes, testMapping(), domain.SortAscending)

	assert.Equal(t, first, second)
}

func TestCategorize_OrdersByMergeTime(t *testing.T) {
	changes := []domain.Change{
		{Number: 10, Labels: []string{"bug"}, MergedAt: mergedAt(5)},
		{Number: 11, Labels: []string{"bug"}, MergedAt: mergedAt(1)},
		{Number: 12, Labels: []string{"bug"}, MergedAt: mergedAt(3)},
	}

	asc := Categorize(changes, testMapping(), domain.SortAscending)
	require.Len(t, asc, 1)
	assert.Equal(t, []int{11, 12, 10}, numbers(asc[0]))

	desc := Categorize(changes, testMapping(), domain.SortDescending)
	require.Len(t, desc, 1)
	assert.Equal(t, []int{10, 12, 11}, numbers(desc[0]))
}

func TestCategorize_StableTieBreakOnNumber(t *testing.T) {
	same := mergedAt(1)
	changes := []domain.Change{
		{Number: 9, Labels: []string{"bug"}, MergedAt: same},
		{Number: 4, Labels: []string{"bug"}, MergedAt: same},
	}

	groups := Categorize(changes, testMapping(), domain.SortAscending)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{4, 9}, numbers(groups[0]))
}

func TestCategorize_UnlistedCategoryAppearsBeforeDefault(t *testing.T) {
	mapping := testMapping()
	mapping.Labels["docs"] = "Documentation" // not in Order

	changes := []domain.Change{
		{Number: 1, Labels: []string{"unmapped"}, MergedAt: mergedAt(1)},
		{Number: 2, Labels: []string{"docs"}, MergedAt: mergedAt(2)},
	}

	groups := Categorize(changes, mapping, domain.SortAscending)

	require.Len(t, groups, 2)
	assert.Equal(t, "Documentation", groups[0].Name)
	assert.Equal(t, "Other", groups[1].Name)
}

func TestCategorize_EmptyInput(t *testing.T) {
	groups := Categorize(nil, testMapping(), domain.SortAscending)
	assert.Empty(t, groups)
}

func numbers(group domain.CategoryGroup) []int {
	result := make([]int, 0, len(group.Changes))
	for _, c := range group.Changes {
		result = append(result, c.Number)
	}
	return result
}
