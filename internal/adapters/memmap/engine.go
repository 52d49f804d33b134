// Package memmap is an in-memory implementation of the map engine ports.
// It stands in for the externally-loaded map widget: marker placement,
// camera commands and asynchronous initialization are modeled, rendering is
// not. The API server uses it to compute map state server-side; tests use it
// to observe what the synchronizer drew.
package memmap

import (
	"sync"
	"time"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

// Engine creates in-memory map handles. A zero init delay means handles are
// ready immediately; a positive delay models the widget's script load.
type Engine struct {
	initDelay time.Duration
}

func New() *Engine { return &Engine{} }

func NewWithInitDelay(d time.Duration) *Engine { return &Engine{initDelay: d} }

func (e *Engine) CreateMap(center domain.Coords, zoom int) (domain.MapHandle, error) {
	h := &Handle{
		markers: map[domain.MarkerID]marker{},
		camera:  Camera{Mode: CameraCenter, Center: center, Zoom: zoom},
	}
	if e.initDelay <= 0 {
		h.setReady()
	} else {
		time.AfterFunc(e.initDelay, h.setReady)
	}
	return h, nil
}

type marker struct {
	id      domain.MarkerID
	coords  domain.Coords
	style   domain.MarkerStyle
	onClick func()
}

const (
	CameraCenter = "center"
	CameraFit    = "fit"
)

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Camera is the last camera command applied to the handle.
type Camera struct {
	Mode    string        `json:"mode"`
	Center  domain.Coords `json:"center,omitempty"`
	Zoom    int           `json:"zoom,omitempty"`
	Bounds  Bounds        `json:"bounds,omitempty"`
	Padding int           `json:"padding,omitempty"`
}

// Handle implements domain.MapHandle.
type Handle struct {
	mu        sync.Mutex
	ready     bool
	destroyed bool
	nextID    domain.MarkerID
	markers   map[domain.MarkerID]marker
	order     []domain.MarkerID
	camera    Camera
}

func (h *Handle) setReady() {
	h.mu.Lock()
	h.ready = true
	h.mu.Unlock()
}

func (h *Handle) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ready && !h.destroyed
}

func (h *Handle) AddMarker(c domain.Coords, style domain.MarkerStyle, onClick func()) (domain.MarkerID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready || h.destroyed {
		return 0, domain.ErrMapNotReady
	}
	h.nextID++
	id := h.nextID
	h.markers[id] = marker{id: id, coords: c, style: style, onClick: onClick}
	h.order = append(h.order, id)
	return id, nil
}

func (h *Handle) RemoveMarker(id domain.MarkerID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready || h.destroyed {
		return domain.ErrMapNotReady
	}
	if _, ok := h.markers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(h.markers, id)
	for i, o := range h.order {
		if o == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return nil
}

func (h *Handle) PanZoomTo(c domain.Coords, zoom int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready || h.destroyed {
		return domain.ErrMapNotReady
	}
	h.camera = Camera{Mode: CameraCenter, Center: c, Zoom: zoom}
	return nil
}

func (h *Handle) FitBounds(cs []domain.Coords, padding int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.ready || h.destroyed {
		return domain.ErrMapNotReady
	}
	if len(cs) == 0 {
		return nil
	}
	b := Bounds{MinLat: cs[0].Lat, MaxLat: cs[0].Lat, MinLon: cs[0].Lon, MaxLon: cs[0].Lon}
	for _, c := range cs[1:] {
		if c.Lat < b.MinLat {
			b.MinLat = c.Lat
		}
		if c.Lat > b.MaxLat {
			b.MaxLat = c.Lat
		}
		if c.Lon < b.MinLon {
			b.MinLon = c.Lon
		}
		if c.Lon > b.MaxLon {
			b.MaxLon = c.Lon
		}
	}
	h.camera = Camera{Mode: CameraFit, Bounds: b, Padding: padding}
	return nil
}

func (h *Handle) Destroy() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.destroyed = true
	h.markers = map[domain.MarkerID]marker{}
	h.order = nil
	return nil
}

// Click simulates a user click on a drawn marker.
func (h *Handle) Click(id domain.MarkerID) error {
	h.mu.Lock()
	m, ok := h.markers[id]
	h.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}
	if m.onClick != nil {
		m.onClick()
	}
	return nil
}

// MarkerState is one drawn marker as seen in a snapshot.
type MarkerState struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Selected bool    `json:"selected"`
}

// Snapshot is the drawable state of the handle: markers in draw order plus
// the last camera command.
type Snapshot struct {
	Markers []MarkerState `json:"markers"`
	Camera  Camera        `json:"camera"`
}

func (h *Handle) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := Snapshot{Camera: h.camera, Markers: make([]MarkerState, 0, len(h.order))}
	for _, id := range h.order {
		m := h.markers[id]
		out.Markers = append(out.Markers, MarkerState{Lat: m.coords.Lat, Lon: m.coords.Lon, Selected: m.style.Selected})
	}
	return out
}

// MarkerIDs returns the ids of all drawn markers in draw order.
func (h *Handle) MarkerIDs() []domain.MarkerID {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.MarkerID, len(h.order))
	copy(out, h.order)
	return out
}
