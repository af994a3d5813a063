package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/careerpath/webapp/models"
)

//go:embed seed/careers.json
var defaultCatalogJSON []byte

// DefaultCatalog returns the built-in career catalog
func DefaultCatalog() ([]models.CareerListing, error) {
	return ParseCatalog(defaultCatalogJSON)
}

// ParseCatalog decodes a JSON array of listings. Listings without an id
// are rejected.
func ParseCatalog(data []byte) ([]models.CareerListing, error) {
	var listings []models.CareerListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	for i, listing := range listings {
		if listing.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
	}
	return listings, nil
}

// MemoryStore serves the catalog from memory
type MemoryStore struct {
	mu       sync.RWMutex
	listings []models.CareerListing
}

// NewMemoryStore creates a store holding listings in the given order
func NewMemoryStore(listings []models.CareerListing) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(listings)
	return s
}

// Replace swaps the whole catalog
func (s *MemoryStore) Replace(listings []models.CareerListing) {
	copied := make([]models.CareerListing, len(listings))
	copy(copied, listings)

	s.mu.Lock()
	s.listings = copied
	s.mu.Unlock()
}

// List returns every listing
func (s *MemoryStore) List(ctx context.Context) ([]models.CareerListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CareerListing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

// Get returns the listing with id
func (s *MemoryStore) Get(ctx context.Context, id string) (*models.CareerListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			listing := s.listings[i]
			return &listing, nil
		}
	}
	return nil, ErrCareerNotFound
}
