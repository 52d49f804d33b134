package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/observability"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

const (
	// SelectZoom is the fixed zoom applied when centering on a selection.
	SelectZoom = 16
	// FitPadding is the fixed viewport padding for bounding-box fits.
	FitPadding = 48
)

// MarkerSync reconciles the markers drawn on an externally-owned map handle
// against the filtered entity list and the current selection. It owns the
// handle: no other component mutates it.
type MarkerSync struct {
	handle   domain.MapHandle
	markers  []domain.MarkerID
	onSelect func(domain.Entity)
}

// NewMarkerSync wraps handle. onSelect is invoked when a drawn marker is
// clicked; it may be nil. handle may be nil or not yet ready, in which case
// Sync defers until AttachHandle / readiness.
func NewMarkerSync(handle domain.MapHandle, onSelect func(domain.Entity)) *MarkerSync {
	return &MarkerSync{handle: handle, onSelect: onSelect}
}

// AttachHandle installs the map handle once the engine finished loading.
func (s *MarkerSync) AttachHandle(h domain.MapHandle) { s.handle = h }

// Sync performs a full rebuild: every tracked marker is removed, then one
// marker is created per mappable visible entity, the selected one styled
// distinct. Re-running with unchanged inputs is idempotent. When the handle
// is absent or not ready the call is a no-op; the caller re-invokes once
// initialization completes (level-triggered reconciliation).
//
// Camera policy: a selection that is present in the visible set centers the
// map on it at SelectZoom; no selection with a non-empty visible set fits the
// viewport to all visible coordinates. A selection outside the visible set
// commands no camera move.
func (s *MarkerSync) Sync(visible []domain.Entity, selected *domain.Entity) error {
	if s.handle == nil || !s.handle.Ready() {
		log.Debug().Int("visible", len(visible)).Msg("map not ready; marker sync deferred")
		return nil
	}

	// drop each id from tracking as it is removed so a failed removal leaves
	// only the markers still on the map tracked and the next Sync can recover
	for len(s.markers) > 0 {
		id := s.markers[0]
		if err := s.handle.RemoveMarker(id); err != nil {
			return fmt.Errorf("remove marker %d: %w", id, err)
		}
		s.markers = s.markers[1:]
	}

	var (
		placed    []domain.Coords
		selCoords *domain.Coords
	)
	for _, e := range visible {
		if !e.Mappable() {
			log.Warn().Int64("id", e.ID).Str("name", e.Name).Msg("entity has no valid coordinate; marker skipped")
			continue
		}
		isSel := selected != nil && selected.ID == e.ID
		if isSel {
			selCoords = e.Coords
		}
		e := e
		id, err := s.handle.AddMarker(*e.Coords, domain.MarkerStyle{Selected: isSel}, func() {
			if s.onSelect != nil {
				s.onSelect(e)
			}
		})
		if err != nil {
			return fmt.Errorf("add marker for %d: %w", e.ID, err)
		}
		s.markers = append(s.markers, id)
		placed = append(placed, *e.Coords)
	}
	observability.ObserveMarkersSynced(len(s.markers))

	switch {
	case selCoords != nil:
		return s.handle.PanZoomTo(*selCoords, SelectZoom)
	case selected == nil && len(placed) > 0:
		return s.handle.FitBounds(placed, FitPadding)
	}
	return nil
}
