// Package roadmap assembles the career detail view: the catalog entry plus
// the best learning roadmap available for it.
package roadmap

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/careerpath/webapp/models"
)

// Source fetches the listing and its authoritative roadmap
type Source interface {
	GetCareer(ctx context.Context, id string) (*models.CareerListing, error)
	GetRoadmap(ctx context.Context, careerID string) (*models.RoadmapView, error)
}

// Origin says where the displayed roadmap came from
type Origin string

const (
	OriginNone     Origin = "none"
	OriginFallback Origin = "fallback"
	OriginRemote   Origin = "remote"
)

// Detail is the detail screen's view-state
type Detail struct {
	Career        *models.CareerListing
	Roadmap       *models.RoadmapView
	RoadmapOrigin Origin
}

// FallbackFrom derives a roadmap from the listing's own learning path.
// Returns nil when the listing has no learning path.
func FallbackFrom(listing *models.CareerListing) *models.RoadmapView {
	if listing == nil || len(listing.LearningPath) == 0 {
		return nil
	}
	return models.RoadmapFromListing(listing)
}

// Cell holds the roadmap shown on the detail screen. The authoritative
// roadmap wins regardless of which completion lands first.
type Cell struct {
	mu      sync.Mutex
	roadmap *models.RoadmapView
	origin  Origin
}

// ApplyFallback stores r unless the authoritative roadmap already landed
func (c *Cell) ApplyFallback(r *models.RoadmapView) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r == nil || c.origin == OriginRemote {
		return false
	}
	c.roadmap = r
	c.origin = OriginFallback
	return true
}

// ApplyRemote stores the authoritative roadmap. A roadmap without steps is
// not an override and reports false.
func (c *Cell) ApplyRemote(r *models.RoadmapView) bool {
	if r == nil || len(r.Roadmap) == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roadmap = r
	c.origin = OriginRemote
	return true
}

// Snapshot returns the current roadmap and its origin
func (c *Cell) Snapshot() (*models.RoadmapView, Origin) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.origin == "" {
		return nil, OriginNone
	}
	return c.roadmap, c.origin
}

// Assembler builds Detail views
type Assembler struct {
	source Source
	logger *zap.Logger
}

// NewAssembler creates a detail assembler
func NewAssembler(source Source, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{source: source, logger: logger}
}

// Assemble fetches the listing, applies the fallback derived from it, then
// fetches the authoritative roadmap, which replaces the fallback when it
// has steps. Roadmap failures are logged and swallowed.
func (a *Assembler) Assemble(ctx context.Context, id string) (*Detail, error) {
	var cell Cell

	career, err := a.source.GetCareer(ctx, id)
	if err != nil {
		err = fmt.Errorf("load career %q: %w", id, err)
		a.logger.Error("error loading career details", zap.String("career_id", id), zap.Error(err))
		return nil, err
	}
	cell.ApplyFallback(FallbackFrom(career))

	remote, err := a.source.GetRoadmap(ctx, id)
	switch {
	case err != nil:
		a.logger.Info("could not load enhanced roadmap, using default",
			zap.String("career_id", id), zap.Error(err))
	case !cell.ApplyRemote(remote):
		a.logger.Info("enhanced roadmap has no steps, using default", zap.String("career_id", id))
	}

	roadmap, origin := cell.Snapshot()
	a.logger.Debug("career detail assembled",
		zap.String("career_id", id),
		zap.String("roadmap_origin", string(origin)))

	return &Detail{
		Career:        career,
		Roadmap:       roadmap,
		RoadmapOrigin: origin,
	}, nil
}
