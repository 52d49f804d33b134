package app

import (
	"strings"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

// matches applies the text rule: an entity passes when the case-folded query
// is a substring of its name, description or category. A category name typed
// as free text matches even with no category filter active.
func matches(e domain.Entity, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(string(e.Category)), q)
}

// Filter returns the entities passing the text rule AND, when category is
// non-nil, an exact category match. Input order is preserved; the result is
// never nil.
func Filter(entities []domain.Entity, query string, category *domain.Category) []domain.Entity {
	out := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		if category != nil && e.Category != *category {
			continue
		}
		if !matches(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPosts applies the community board rules: an exact board match when
// board is non-nil AND a case-folded substring match of query over title or
// content. Input order is preserved; the result is never nil.
func FilterPosts(posts []domain.CommunityPost, query string, board *domain.Board) []domain.CommunityPost {
	q := strings.ToLower(query)
	out := make([]domain.CommunityPost, 0, len(posts))
	for _, p := range posts {
		if board != nil && p.Board != *board {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Content), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterAccommodations applies the same rules to the accommodation catalog.
func FilterAccommodations(accs []domain.Accommodation, query string, category *domain.Category) []domain.Accommodation {
	out := make([]domain.Accommodation, 0, len(accs))
	for _, a := range accs {
		if category != nil && a.Category != *category {
			continue
		}
		if !matches(a.Entity, query) {
			continue
		}
		out = append(out, a)
	}
	return out
}
