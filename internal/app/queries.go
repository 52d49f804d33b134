package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

// QueryService is the read side behind the HTTP API: catalog load, server
// side filtering, and a cache-aside layer over the filtered results.
type QueryService struct {
	catalog  *CatalogService
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c *CatalogService, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl}
}

func criteriaKey(kind, q string, category *domain.Category) string {
	cat := ""
	if category != nil {
		cat = string(*category)
	}
	return fmt.Sprintf("%s:%s:%s", kind, strings.ToLower(q), cat)
}

func (s *QueryService) ListBusinesses(ctx context.Context, q string, category *domain.Category) ([]domain.Entity, error) {
	key := criteriaKey("businesses", q, category)
	var cached []domain.Entity
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out := Filter(s.catalog.Businesses(ctx), q, category)

	// copy before caching so callers can't mutate the cached value
	cp := make([]domain.Entity, len(out))
	copy(cp, out)
	if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) ListAccommodations(ctx context.Context, q string, category *domain.Category) ([]domain.Accommodation, error) {
	key := criteriaKey("accommodations", q, category)
	var cached []domain.Accommodation
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out := FilterAccommodations(s.catalog.Accommodations(ctx), q, category)

	cp := make([]domain.Accommodation, len(out))
	copy(cp, out)
	if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) ListCommunityPosts(ctx context.Context, q string, board *domain.Board) ([]domain.CommunityPost, error) {
	b := ""
	if board != nil {
		b = string(*board)
	}
	key := fmt.Sprintf("posts:%s:%s", strings.ToLower(q), b)
	var cached []domain.CommunityPost
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out := FilterPosts(s.catalog.CommunityPosts(), q, board)

	cp := make([]domain.CommunityPost, len(out))
	copy(cp, out)
	if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func (s *QueryService) GetAccommodation(ctx context.Context, id int64) (domain.Accommodation, error) {
	for _, a := range s.catalog.Accommodations(ctx) {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Accommodation{}, domain.ErrNotFound
}
