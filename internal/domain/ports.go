package domain

import "context"

// CatalogSource is anything that can produce the two catalogs: the remote
// catalog API, the MySQL repository, or the bundled fallback lists.
type CatalogSource interface {
	FetchBusinesses(ctx context.Context) ([]Entity, error)
	FetchAccommodations(ctx context.Context) ([]Accommodation, error)
}

// EntityRepository is the storage-side port used by the syncer's write path.
type EntityRepository interface {
	CatalogSource

	UpsertBusiness(ctx context.Context, e Entity) error
	UpsertAccommodation(ctx context.Context, a Accommodation) error
	GetAccommodation(ctx context.Context, id int64) (Accommodation, error)
	LogMiss(ctx context.Context, id int64, status int, reason string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// MarkerID identifies one drawn marker on a map handle.
type MarkerID int64

// MarkerStyle is the rendering policy for one marker. The selected entity's
// marker is drawn larger and filled; everything else is structural identity.
type MarkerStyle struct {
	Selected bool
}

// MapEngine creates map handles. Engine initialization is asynchronous
// (script and tile loads in a real widget); CreateMap may return a handle
// that is not yet Ready.
type MapEngine interface {
	CreateMap(center Coords, zoom int) (MapHandle, error)
}

// MapHandle is the externally-owned drawable map surface. It is owned by the
// marker synchronizer; no other component mutates it. Until Ready reports
// true every mutating call returns ErrMapNotReady.
type MapHandle interface {
	Ready() bool
	AddMarker(c Coords, style MarkerStyle, onClick func()) (MarkerID, error)
	RemoveMarker(id MarkerID) error
	PanZoomTo(c Coords, zoom int) error
	FitBounds(cs []Coords, padding int) error
	Destroy() error
}
