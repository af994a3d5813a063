package storage

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/careerpath/webapp/models"
)

// FallbackStore reads from primary and answers from fallback whenever
// primary fails or has nothing
type FallbackStore struct {
	primary  CatalogStore
	fallback CatalogStore
	logger   *zap.Logger
}

// NewFallbackStore creates a store that prefers primary
func NewFallbackStore(primary, fallback CatalogStore, logger *zap.Logger) *FallbackStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackStore{primary: primary, fallback: fallback, logger: logger}
}

// List returns the primary catalog, or the fallback's when primary errors
// or is empty
func (s *FallbackStore) List(ctx context.Context) ([]models.CareerListing, error) {
	listings, err := s.primary.List(ctx)
	if err == nil && len(listings) > 0 {
		return listings, nil
	}
	if err != nil {
		s.logger.Warn("database error, using in-memory data", zap.Error(err))
	}
	return s.fallback.List(ctx)
}

// Get looks in primary first, then in fallback
func (s *FallbackStore) Get(ctx context.Context, id string) (*models.CareerListing, error) {
	listing, err := s.primary.Get(ctx, id)
	if err == nil {
		return listing, nil
	}
	if !errors.Is(err, ErrCareerNotFound) {
		s.logger.Warn("database error in get career, falling back to in-memory",
			zap.String("career_id", id), zap.Error(err))
	}
	return s.fallback.Get(ctx, id)
}
