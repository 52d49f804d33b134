package redisad

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0)
}

func TestCache_RoundTrip(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	in := []domain.Entity{
		{ID: 1, Name: "Highland Grill", Category: domain.CategoryRestaurants,
			Coords: &domain.Coords{Lat: -25.4175, Lon: 30.1544}},
	}
	if err := c.Set(ctx, "businesses:grill:", in, 60); err != nil {
		t.Fatal(err)
	}

	var out []domain.Entity
	ok, err := c.Get(ctx, "businesses:grill:", &out)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(out) != 1 || out[0].Name != in[0].Name || *out[0].Coords != *in[0].Coords {
		t.Fatalf("got %+v", out)
	}
}

func TestCache_Miss(t *testing.T) {
	c := testCache(t)

	var out []domain.Entity
	ok, err := c.Get(context.Background(), "absent", &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unexpected hit")
	}
}

func TestCache_Del(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 60); err != nil {
		t.Fatal(err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	var s string
	if ok, _ := c.Get(ctx, "k", &s); ok {
		t.Fatal("key survived delete")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 30); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(31 * time.Second)

	var s string
	if ok, _ := c.Get(ctx, "k", &s); ok {
		t.Fatal("key survived its TTL")
	}
}
