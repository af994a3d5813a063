package storage

import (
	"context"
	"errors"

	"github.com/careerpath/webapp/models"
)

// ErrCareerNotFound is returned when no listing has the requested id
var ErrCareerNotFound = errors.New("career not found")

// CatalogStore reads the career catalog
type CatalogStore interface {
	List(ctx context.Context) ([]models.CareerListing, error)
	Get(ctx context.Context, id string) (*models.CareerListing, error)
}
