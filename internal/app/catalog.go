package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/observability"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/shared"
)

// CatalogService loads the business and accommodation catalogs from the
// configured source, falling back to the bundled lists on any failure or
// empty result. The fallback is silent to clients and logged for
// diagnostics. Loads are memoized; concurrent loads for the same catalog are
// collapsed into one in-flight fetch rather than queued.
type CatalogService struct {
	src domain.CatalogSource // nil means bundled data only

	g  singleflight.Group
	mu sync.Mutex

	businesses     []domain.Entity
	accommodations []domain.Accommodation
}

func NewCatalogService(src domain.CatalogSource) *CatalogService {
	return &CatalogService{src: src}
}

// Businesses returns the business catalog. Never returns an error to the
// caller; the bundled list is the floor.
func (s *CatalogService) Businesses(ctx context.Context) []domain.Entity {
	s.mu.Lock()
	if s.businesses != nil {
		b := s.businesses
		s.mu.Unlock()
		return b
	}
	s.mu.Unlock()

	v, _, _ := s.g.Do("businesses", func() (any, error) {
		out := s.fetchBusinesses(ctx)
		s.mu.Lock()
		s.businesses = out
		s.mu.Unlock()
		return out, nil
	})
	return v.([]domain.Entity)
}

// Accommodations returns the accommodation catalog with the same fallback
// and load-guard semantics as Businesses.
func (s *CatalogService) Accommodations(ctx context.Context) []domain.Accommodation {
	s.mu.Lock()
	if s.accommodations != nil {
		a := s.accommodations
		s.mu.Unlock()
		return a
	}
	s.mu.Unlock()

	v, _, _ := s.g.Do("accommodations", func() (any, error) {
		out := s.fetchAccommodations(ctx)
		s.mu.Lock()
		s.accommodations = out
		s.mu.Unlock()
		return out, nil
	})
	return v.([]domain.Accommodation)
}

// CommunityPosts returns the community board content. Boards have no remote
// source; the bundled list is the catalog.
func (s *CatalogService) CommunityPosts() []domain.CommunityPost {
	return shared.FallbackCommunityPosts
}

// Refresh drops the memoized catalogs; the next read re-fetches.
func (s *CatalogService) Refresh() {
	s.mu.Lock()
	s.businesses = nil
	s.accommodations = nil
	s.mu.Unlock()
}

func (s *CatalogService) fetchBusinesses(ctx context.Context) []domain.Entity {
	if s.src == nil {
		return shared.FallbackBusinesses
	}
	out, err := s.src.FetchBusinesses(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("business catalog fetch failed; using bundled list")
		observability.ObserveCatalogFallback("businesses")
		return shared.FallbackBusinesses
	}
	if len(out) == 0 {
		log.Warn().Msg("business catalog fetch returned nothing; using bundled list")
		observability.ObserveCatalogFallback("businesses")
		return shared.FallbackBusinesses
	}
	return out
}

func (s *CatalogService) fetchAccommodations(ctx context.Context) []domain.Accommodation {
	if s.src == nil {
		return shared.FallbackAccommodations
	}
	out, err := s.src.FetchAccommodations(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("accommodation catalog fetch failed; using bundled list")
		observability.ObserveCatalogFallback("accommodations")
		return shared.FallbackAccommodations
	}
	if len(out) == 0 {
		log.Warn().Msg("accommodation catalog fetch returned nothing; using bundled list")
		observability.ObserveCatalogFallback("accommodations")
		return shared.FallbackAccommodations
	}
	return out
}
