package memmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

var center = domain.Coords{Lat: -25.4175, Lon: 30.1076}

func TestHandle_ReadyImmediately(t *testing.T) {
	h, err := New().CreateMap(center, 14)
	if err != nil {
		t.Fatal(err)
	}
	if !h.Ready() {
		t.Fatal("zero-delay handle not ready")
	}
}

func TestHandle_MutationsGatedOnReadiness(t *testing.T) {
	h, err := NewWithInitDelay(time.Hour).CreateMap(center, 14)
	if err != nil {
		t.Fatal(err)
	}
	if h.Ready() {
		t.Fatal("delayed handle ready at creation")
	}
	if _, err := h.AddMarker(center, domain.MarkerStyle{}, nil); !errors.Is(err, domain.ErrMapNotReady) {
		t.Fatalf("AddMarker err = %v, want ErrMapNotReady", err)
	}
	if err := h.PanZoomTo(center, 16); !errors.Is(err, domain.ErrMapNotReady) {
		t.Fatalf("PanZoomTo err = %v, want ErrMapNotReady", err)
	}
	if err := h.FitBounds([]domain.Coords{center}, 48); !errors.Is(err, domain.ErrMapNotReady) {
		t.Fatalf("FitBounds err = %v, want ErrMapNotReady", err)
	}
}

func TestHandle_MarkersAndSnapshot(t *testing.T) {
	mh, _ := New().CreateMap(center, 14)
	h := mh.(*Handle)

	a, err := h.AddMarker(domain.Coords{Lat: -25.41, Lon: 30.10}, domain.MarkerStyle{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.AddMarker(domain.Coords{Lat: -25.42, Lon: 30.11}, domain.MarkerStyle{Selected: true}, nil)
	if err != nil {
		t.Fatal(err)
	}

	snap := h.Snapshot()
	if len(snap.Markers) != 2 {
		t.Fatalf("snapshot markers = %d", len(snap.Markers))
	}
	if snap.Markers[0].Selected || !snap.Markers[1].Selected {
		t.Fatalf("selection flags wrong: %+v", snap.Markers)
	}

	if err := h.RemoveMarker(a); err != nil {
		t.Fatal(err)
	}
	if got := h.MarkerIDs(); len(got) != 1 || got[0] != b {
		t.Fatalf("marker ids after remove = %v", got)
	}
	if err := h.RemoveMarker(a); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("removing a removed marker: err = %v", err)
	}
}

func TestHandle_CameraCommands(t *testing.T) {
	mh, _ := New().CreateMap(center, 14)
	h := mh.(*Handle)

	if err := h.PanZoomTo(domain.Coords{Lat: -25.42, Lon: 30.15}, 16); err != nil {
		t.Fatal(err)
	}
	snap := h.Snapshot()
	if snap.Camera.Mode != CameraCenter || snap.Camera.Zoom != 16 {
		t.Fatalf("camera after pan = %+v", snap.Camera)
	}

	cs := []domain.Coords{
		{Lat: -25.40, Lon: 30.12},
		{Lat: -25.44, Lon: 30.10},
		{Lat: -25.42, Lon: 30.16},
	}
	if err := h.FitBounds(cs, 48); err != nil {
		t.Fatal(err)
	}
	got := h.Snapshot().Camera
	want := Bounds{MinLat: -25.44, MinLon: 30.10, MaxLat: -25.40, MaxLon: 30.16}
	if got.Mode != CameraFit || got.Bounds != want || got.Padding != 48 {
		t.Fatalf("camera after fit = %+v, want bounds %+v", got, want)
	}

	// empty fit leaves the camera alone
	if err := h.FitBounds(nil, 48); err != nil {
		t.Fatal(err)
	}
	if h.Snapshot().Camera != got {
		t.Fatal("empty FitBounds moved the camera")
	}
}

func TestHandle_Click(t *testing.T) {
	mh, _ := New().CreateMap(center, 14)
	h := mh.(*Handle)

	clicked := false
	id, err := h.AddMarker(center, domain.MarkerStyle{}, func() { clicked = true })
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Click(id); err != nil {
		t.Fatal(err)
	}
	if !clicked {
		t.Fatal("click callback not invoked")
	}
	if err := h.Click(id + 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("clicking an unknown marker: err = %v", err)
	}
}

func TestHandle_DestroyedRejectsMutations(t *testing.T) {
	h, _ := New().CreateMap(center, 14)
	if err := h.Destroy(); err != nil {
		t.Fatal(err)
	}
	if h.Ready() {
		t.Fatal("destroyed handle reports ready")
	}
	if _, err := h.AddMarker(center, domain.MarkerStyle{}, nil); !errors.Is(err, domain.ErrMapNotReady) {
		t.Fatalf("AddMarker on destroyed handle: err = %v", err)
	}
}

func TestAwaitReady(t *testing.T) {
	h, _ := NewWithInitDelay(10 * time.Millisecond).CreateMap(center, 14)
	if err := AwaitReady(context.Background(), h, time.Millisecond, time.Second); err != nil {
		t.Fatalf("AwaitReady: %v", err)
	}
	if !h.Ready() {
		t.Fatal("handle not ready after AwaitReady")
	}
}

func TestAwaitReady_Timeout(t *testing.T) {
	h, _ := NewWithInitDelay(time.Hour).CreateMap(center, 14)
	err := AwaitReady(context.Background(), h, time.Millisecond, 30*time.Millisecond)
	if !errors.Is(err, domain.ErrMapNotReady) {
		t.Fatalf("err = %v, want ErrMapNotReady", err)
	}
}

func TestAwaitReady_ContextCancel(t *testing.T) {
	h, _ := NewWithInitDelay(time.Hour).CreateMap(center, 14)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := AwaitReady(ctx, h, time.Millisecond, time.Second); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
