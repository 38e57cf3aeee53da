package listing

import (
	"cmp"
	"slices"
	"strings"

	"streetbite/internal/domain/entity"
)

// MenuCriteria is the vendor menu table filter state.
type MenuCriteria struct {
	Query    string `json:"q" query:"q"`
	Category string `json:"category" query:"category"`
}

// ApplyMenu filters menu items and orders them by category then name.
func ApplyMenu(items []entity.MenuItem, c MenuCriteria) []entity.MenuItem {
	query := normalizeQuery(c.Query)
	out := filter(items, func(m entity.MenuItem) bool {
		if !isAll(c.Category) && !equalFoldTrim(m.Category, c.Category) {
			return false
		}

		return containsAny(query, m.Name, m.Description)
	})

	slices.SortStableFunc(out, func(a, b entity.MenuItem) int {
		if c := cmp.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category)); c != 0 {
			return c
		}

		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return out
}

// Categories returns the distinct menu categories in first appearance order.
func Categories(items []entity.MenuItem) []string {
	var out []string
	for _, m := range items {
		if m.Category != "" && !slices.Contains(out, m.Category) {
			out = append(out, m.Category)
		}
	}

	return out
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
