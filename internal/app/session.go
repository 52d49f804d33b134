package app

import (
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

// Session glues filter criteria, selection, view composition and the marker
// synchronizer together for one catalog context. Every input change re-runs
// the synchronizer against the current filtered set, so marker state always
// converges regardless of when the map engine finishes loading.
type Session struct {
	entities []domain.Entity
	criteria domain.Criteria
	sel      Selection
	view     ViewState
	sync     *MarkerSync
}

// NewSession builds a session over entities. handle may be nil or not yet
// ready; call Resync (or any mutator) once it is.
func NewSession(entities []domain.Entity, handle domain.MapHandle, viewport Viewport) *Session {
	s := &Session{
		entities: entities,
		view:     ViewState{Tab: TabExplore, Viewport: viewport, MobileMapVisible: true},
	}
	s.sync = NewMarkerSync(handle, func(e domain.Entity) { s.selectEntity(e, true) })
	return s
}

// AttachMap installs the map handle once engine initialization completes and
// reconciles immediately.
func (s *Session) AttachMap(h domain.MapHandle) error {
	s.sync.AttachHandle(h)
	return s.Resync()
}

// Visible returns the entities passing the current criteria, in catalog order.
func (s *Session) Visible() []domain.Entity {
	return Filter(s.entities, s.criteria.Query, s.criteria.Category)
}

// Criteria returns the current filter criteria. Read-only to callers.
func (s *Session) Criteria() domain.Criteria { return s.criteria }

func (s *Session) SetQuery(q string) error {
	s.criteria.Query = q
	return s.Resync()
}

func (s *Session) SetCategory(c *domain.Category) error {
	s.criteria.Category = c
	return s.Resync()
}

// Select selects the entity with the given id from the list view. Unknown
// ids are ignored. Returns the resync error, if any.
func (s *Session) Select(id int64) error {
	for _, e := range s.entities {
		if e.ID == id {
			return s.selectEntity(e, false)
		}
	}
	return nil
}

// selectEntity applies the selection side-effect contract: the detail panel
// becomes visible, exactly one re-center request is issued (via the resync),
// and a list-mode selection on mobile flips the active panel to the map so
// the user sees the pin.
func (s *Session) selectEntity(e domain.Entity, fromMarker bool) error {
	s.sel.Select(e)
	s.view.HasSelection = true
	if !fromMarker && s.view.Viewport == ViewportMobile && !s.view.MobileMapVisible {
		s.view.MobileMapVisible = true
	}
	return s.Resync()
}

// ClearSelection closes the detail panel. Filter criteria and the list/map
// toggle are untouched.
func (s *Session) ClearSelection() error {
	s.sel.Clear()
	s.view.HasSelection = false
	return s.Resync()
}

// Selected returns the current selection, or nil.
func (s *Session) Selected() *domain.Entity { return s.sel.Current() }

// SwitchTab changes the active section. Criteria and selection do not
// survive a view change.
func (s *Session) SwitchTab(t Tab) error {
	s.view.Tab = t
	s.criteria = domain.Criteria{}
	s.sel.Clear()
	s.view.HasSelection = false
	return s.Resync()
}

// ToggleMobileMap switches between list and map on narrow viewports.
func (s *Session) ToggleMobileMap(showMap bool) {
	s.view.MobileMapVisible = showMap
}

// Layout composes the current panel visibility.
func (s *Session) Layout() Layout { return Compose(s.view) }

// Resync reconciles the map against the current filtered set and selection.
// Safe to call at any time, any number of times.
func (s *Session) Resync() error {
	return s.sync.Sync(s.Visible(), s.sel.Current())
}
