package services

import (
	"sort"

	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
)

// Categorize groups changes by category and orders them for display.
// Pure and deterministic: the same input always yields the same grouping,
// so re-running it is idempotent.
//
// Category order is the mapping's declared order, then first-use order for
// categories the mapping produces but does not list, with the default
// bucket always last. Empty categories are omitted.
func Categorize(
	changes []domain.Change, mapping domain.CategoryMapping, dir domain.SortDirection,
) []domain.CategoryGroup {
	buckets := make(map[string][]domain.Change)
	firstUse := make([]string, 0, len(mapping.Order))

	for _, c := range changes {
		cat := mapping.Categorize(c)
		if _, ok := buckets[cat]; !ok {
			firstUse = append(firstUse, cat)
		}
		buckets[cat] = append(buckets[cat], c)
	}

	def := mapping.Default
	if def == "" {
		def = domain.DefaultCategory
	}

	ordered := make([]string, 0, len(buckets))
	seen := make(map[string]bool)
	for _, name := range mapping.Order {
		if len(buckets[name]) > 0 && name != def && !seen[name] {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	for _, name := range firstUse {
		if name != def && !seen[name] {
			ordered = append(ordered, name)
			seen[name] = true
		}
	}
	if len(buckets[def]) > 0 {
		ordered = append(ordered, def)
	}

	groups := make([]domain.CategoryGroup, 0, len(ordered))
	for _, name := range ordered {
		cs := append([]domain.Change(nil), buckets[name]...)
		sortChanges(cs, dir)
		groups = append(groups, domain.CategoryGroup{Name: name, Changes: cs})
	}
	return groups
}

// sortChanges orders changes by merge time, ties broken by number so the
// ordering is stable across runs.
func sortChanges(cs []domain.Change, dir domain.SortDirection) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].MergedAt.Equal(cs[j].MergedAt) {
			return cs[i].Number < cs[j].Number
		}
		if dir == domain.SortDescending {
			return cs[i].MergedAt.After(cs[j].MergedAt)
		}
		return cs[i].MergedAt.Before(cs[j].MergedAt)
	})
}
