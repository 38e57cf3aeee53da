package listing

import (
	"slices"

	"streetbite/internal/domain/entity"
)

// HotTopicCriteria is the community feed filter state.
type HotTopicCriteria struct {
	Query      string `json:"q" query:"q"`
	ActiveOnly bool   `json:"activeOnly" query:"activeOnly"`
}

// ApplyHotTopics filters topics and orders them newest first. Topics created
// at the same instant fall back to id descending.
func ApplyHotTopics(items []entity.HotTopic, c HotTopicCriteria) []entity.HotTopic {
	query := normalizeQuery(c.Query)
	out := filter(items, func(h entity.HotTopic) bool {
		if c.ActiveOnly && !h.IsActive {
			return false
		}

		return containsAny(query, h.Title, h.Content)
	})

	slices.SortStableFunc(out, func(a, b entity.HotTopic) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return compareIDs(b.ID, a.ID)
	})

	return out
}
