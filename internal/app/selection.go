package app

import "github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"

// Selection is the single source of truth for the currently selected entity.
// At most one entity is selected at a time; selecting a new one implicitly
// deselects the previous. Selection is independent of visibility: an entity
// filtered out of the visible set stays selected.
type Selection struct {
	cur *domain.Entity
}

func (s *Selection) Select(e domain.Entity) {
	c := e
	s.cur = &c
}

func (s *Selection) Clear() { s.cur = nil }

// Current returns the selected entity, or nil when nothing is selected.
func (s *Selection) Current() *domain.Entity { return s.cur }
