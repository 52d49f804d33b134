package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/memmap"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/app"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/shared"
)

type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (nopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (nopCache) Del(ctx context.Context, key string) error { return nil }

func coords(lat, lon float64) *domain.Coords { return &domain.Coords{Lat: lat, Lon: lon} }

type staticSource struct {
	businesses     []domain.Entity
	accommodations []domain.Accommodation
}

func (s staticSource) FetchBusinesses(ctx context.Context) ([]domain.Entity, error) {
	return s.businesses, nil
}

func (s staticSource) FetchAccommodations(ctx context.Context) ([]domain.Accommodation, error) {
	return s.accommodations, nil
}

func testServer(t *testing.T) *httptest.Server {
	return testServerWith(t, &Handlers{})
}

func testServerWith(t *testing.T, h *Handlers) *httptest.Server {
	t.Helper()
	src := staticSource{
		businesses: []domain.Entity{
			{ID: 1, Name: "Highland Grill", Category: domain.CategoryRestaurants,
				Description: "steaks and trout", Coords: coords(-25.4175, 30.1544)},
			{ID: 2, Name: "Gallery on Main", Category: domain.CategoryArtCulture,
				Description: "local art", Coords: coords(-25.418, 30.153)},
		},
		accommodations: []domain.Accommodation{
			{Entity: domain.Entity{ID: 101, Name: "Trout Lodge", Category: domain.CategoryAccommodation,
				Coords: coords(-25.419, 30.152)},
				Price: 500, PriceUnit: "night", MaxGuests: 4},
		},
	}
	h.Q = app.NewQueryService(app.NewCatalogService(src), nopCache{}, 5*time.Minute)

	srv := New()
	srv.MountHandlers(h)
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	decode(t, resp, &body)
	if body["status"] != "ok" || body["service"] == "" {
		t.Fatalf("body = %v", body)
	}
}

func TestListBusinesses(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/businesses")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out []domain.Entity
	decode(t, resp, &out)
	if len(out) != 2 {
		t.Fatalf("got %d businesses", len(out))
	}
}

func TestListBusinesses_Filtered(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/businesses?q=trout")
	var out []domain.Entity
	decode(t, resp, &out)
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("q=trout returned %+v", out)
	}

	resp = get(t, ts, "/api/v1/businesses?category=Art+%26+Culture")
	decode(t, resp, &out)
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("category filter returned %+v", out)
	}
}

func TestListBusinesses_UnknownCategory(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/businesses?category=Dining")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type = %s", ct)
	}
}

func TestListCategories(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/categories")
	var out []domain.Category
	decode(t, resp, &out)
	if len(out) != len(domain.Categories) {
		t.Fatalf("got %d categories", len(out))
	}
}

func TestETagNotModified(t *testing.T) {
	ts := testServer(t)

	first := get(t, ts, "/api/v1/businesses")
	first.Body.Close()
	etag := first.Header.Get("ETag")
	if etag == "" {
		t.Fatal("no ETag on list response")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/businesses", nil)
	req.Header.Set("If-None-Match", etag)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", resp.StatusCode)
	}
}

func TestGetAccommodation(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/accommodations/101")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out domain.Accommodation
	decode(t, resp, &out)
	if out.Name != "Trout Lodge" {
		t.Fatalf("got %+v", out)
	}

	resp = get(t, ts, "/api/v1/accommodations/999")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing id: status = %d", resp.StatusCode)
	}

	resp = get(t, ts, "/api/v1/accommodations/abc")
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad id: status = %d", resp.StatusCode)
	}
}

func postJSON(t *testing.T, ts *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	resp, err := ts.Client().Post(ts.URL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestQuote(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts, "/api/v1/accommodations/101/quote", map[string]any{
		"check_in":  "2026-06-10",
		"check_out": "2026-06-12",
		"adults":    2,
		"children":  0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var q domain.Quote
	decode(t, resp, &q)
	if q.Nights != 2 || q.Total != 1000 {
		t.Fatalf("quote = %+v", q)
	}
}

func TestQuote_DefaultStay(t *testing.T) {
	ts := testServer(t)

	// no dates quotes the default one-night stay for two adults
	resp := postJSON(t, ts, "/api/v1/accommodations/101/quote", map[string]any{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var q domain.Quote
	decode(t, resp, &q)
	if q.Nights != 1 || q.Total != 500 {
		t.Fatalf("quote = %+v", q)
	}
	if q.Guests.Adults != 2 || q.Guests.Children != 0 {
		t.Fatalf("guests = %+v", q.Guests)
	}

	// one date without the other is still an error
	resp = postJSON(t, ts, "/api/v1/accommodations/101/quote", map[string]any{
		"check_in": "2026-06-10",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("lone check_in: status = %d, want 422", resp.StatusCode)
	}
}

func TestQuote_BadDate(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts, "/api/v1/accommodations/101/quote", map[string]any{
		"check_in":  "10 June",
		"check_out": "2026-06-12",
		"adults":    2,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestMapState(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/map/state?q=grill")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var snap struct {
		Markers []struct {
			Lat      float64 `json:"lat"`
			Lon      float64 `json:"lon"`
			Selected bool    `json:"selected"`
		} `json:"markers"`
		Camera struct {
			Mode string `json:"mode"`
		} `json:"camera"`
	}
	decode(t, resp, &snap)
	if len(snap.Markers) != 1 {
		t.Fatalf("got %d markers", len(snap.Markers))
	}
	if snap.Markers[0].Lat != -25.4175 || snap.Markers[0].Selected {
		t.Fatalf("marker = %+v", snap.Markers[0])
	}
	if snap.Camera.Mode != "fit" {
		t.Fatalf("camera mode = %s, want fit", snap.Camera.Mode)
	}
}

func TestMapState_Selected(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/map/state?selected=2")
	var snap struct {
		Markers []struct {
			Selected bool `json:"selected"`
		} `json:"markers"`
		Camera struct {
			Mode string `json:"mode"`
			Zoom int    `json:"zoom"`
		} `json:"camera"`
	}
	decode(t, resp, &snap)
	if len(snap.Markers) != 2 {
		t.Fatalf("got %d markers", len(snap.Markers))
	}
	selected := 0
	for _, m := range snap.Markers {
		if m.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Fatalf("selected markers = %d", selected)
	}
	if snap.Camera.Mode != "center" || snap.Camera.Zoom != app.SelectZoom {
		t.Fatalf("camera = %+v", snap.Camera)
	}
}

func TestMapState_BadScope(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/map/state?scope=hotels")
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestMapState_AwaitsDelayedEngine(t *testing.T) {
	ts := testServerWith(t, &Handlers{
		Engine:          memmap.NewWithInitDelay(10 * time.Millisecond),
		MapReadyPoll:    time.Millisecond,
		MapReadyTimeout: time.Second,
	})

	resp := get(t, ts, "/api/v1/map/state")
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 after engine warm-up", resp.StatusCode)
	}
}

func TestMapState_EngineTimeout(t *testing.T) {
	ts := testServerWith(t, &Handlers{
		Engine:          memmap.NewWithInitDelay(time.Hour),
		MapReadyPoll:    time.Millisecond,
		MapReadyTimeout: 30 * time.Millisecond,
	})

	resp := get(t, ts, "/api/v1/map/state")
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestListCommunityPosts(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/community/posts")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var posts []domain.CommunityPost
	decode(t, resp, &posts)
	if len(posts) != len(shared.FallbackCommunityPosts) {
		t.Fatalf("got %d posts", len(posts))
	}

	resp = get(t, ts, "/api/v1/community/posts?board=jobs")
	decode(t, resp, &posts)
	if len(posts) != 1 || posts[0].Board != domain.BoardJobs {
		t.Fatalf("board filter = %+v", posts)
	}

	resp = get(t, ts, "/api/v1/community/posts?board=all&q=trout")
	decode(t, resp, &posts)
	if len(posts) != 1 || posts[0].ID != 3 {
		t.Fatalf("q filter = %+v", posts)
	}

	resp = get(t, ts, "/api/v1/community/posts?board=gossip")
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown board: status = %d", resp.StatusCode)
	}
}

func TestListBoards(t *testing.T) {
	ts := testServer(t)

	resp := get(t, ts, "/api/v1/community/boards")
	var boards []domain.Board
	decode(t, resp, &boards)
	if len(boards) != len(domain.Boards) {
		t.Fatalf("got %d boards", len(boards))
	}
}

func TestCreateEnquiry(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts, "/api/v1/enquiries", map[string]any{
		"accommodation_id": 101,
		"first_name":       "Thandi",
		"last_name":        "Nkosi",
		"email":            "thandi@example.com",
		"check_in":         "2026-06-10",
		"check_out":        "2026-06-12",
		"adults":           2,
	})
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]string
	decode(t, resp, &body)
	if body["reference"] == "" || body["status"] != "received" {
		t.Fatalf("body = %v", body)
	}
}

func TestCreateEnquiry_Invalid(t *testing.T) {
	ts := testServer(t)

	resp := postJSON(t, ts, "/api/v1/enquiries", map[string]any{
		"accommodation_id": 101,
		"first_name":       "Thandi",
		"email":            "not-an-email",
		"check_in":         "2026-06-10",
		"check_out":        "2026-06-12",
		"adults":           2,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}
