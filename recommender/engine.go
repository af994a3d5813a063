package recommender

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/careerpath/webapp/catalog"
	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/storage"
)

// Reasoner writes a personalized explanation for a match
type Reasoner interface {
	GenerateReasoning(ctx context.Context, profile *models.UserProfile, career *models.CareerListing, score float64) (string, error)
}

// RoadmapEnhancer expands a career's base learning steps
type RoadmapEnhancer interface {
	EnhanceRoadmap(ctx context.Context, career *models.CareerListing, steps []string) ([]string, error)
}

// Options tune the ranking
type Options struct {
	// MaxResults caps the number of recommendations
	MaxResults int
	// MinScore is the exclusive lower bound a career must beat
	MinScore float64
	// MaxConcurrent bounds parallel reasoning calls
	MaxConcurrent int
}

// DefaultOptions returns the standard ranking settings
func DefaultOptions() Options {
	return Options{MaxResults: 3, MinScore: 0.2, MaxConcurrent: 3}
}

// Engine ranks catalog careers against profiles and serves roadmaps
type Engine struct {
	store    storage.CatalogStore
	opts     Options
	reasoner Reasoner
	enhancer RoadmapEnhancer
	logger   *zap.Logger
}

// NewEngine creates a recommendation engine over store
func NewEngine(store storage.CatalogStore, opts Options, logger *zap.Logger) *Engine {
	defaults := DefaultOptions()
	if opts.MaxResults <= 0 {
		opts.MaxResults = defaults.MaxResults
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaults.MaxConcurrent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, opts: opts, logger: logger}
}

// WithReasoner enables model-written reasoning
func (e *Engine) WithReasoner(r Reasoner) *Engine {
	e.reasoner = r
	return e
}

// WithEnhancer enables model-enhanced roadmaps
func (e *Engine) WithEnhancer(r RoadmapEnhancer) *Engine {
	e.enhancer = r
	return e
}

// Careers returns the whole catalog
func (e *Engine) Careers(ctx context.Context) ([]models.CareerListing, error) {
	return e.store.List(ctx)
}

// Career returns one listing
func (e *Engine) Career(ctx context.Context, id string) (*models.CareerListing, error) {
	return e.store.Get(ctx, id)
}

// Search returns listings whose title, description, category or required
// skills contain q, ignoring case. An empty query returns everything.
func (e *Engine) Search(ctx context.Context, q string) ([]models.CareerListing, error) {
	listings, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(q))
	results := make([]models.CareerListing, 0, len(listings))
	for _, listing := range listings {
		if query == "" || catalog.Matches(listing, query) {
			results = append(results, listing)
		}
	}
	return results, nil
}

// scored pairs a career with its match score
type scored struct {
	career *models.CareerListing
	score  float64
}

// Recommend ranks the catalog for profile. Careers must beat MinScore; the
// best MaxResults are kept. When nothing qualifies the first catalog
// entries are suggested at 0.5.
func (e *Engine) Recommend(ctx context.Context, profile models.UserProfile) (*models.RecommendationResult, error) {
	careers, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load careers: %w", err)
	}

	var ranked []scored
	for i := range careers {
		score := MatchScore(&profile, &careers[i])
		if score > e.opts.MinScore {
			ranked = append(ranked, scored{career: &careers[i], score: score})
		}
	}

	// Highest first; ties keep catalog order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > e.opts.MaxResults {
		ranked = ranked[:e.opts.MaxResults]
	}

	e.logger.Info("careers scored",
		zap.Int("catalog", len(careers)),
		zap.Int("kept", len(ranked)),
		zap.Int("skills", len(profile.Skills)))

	var recommendations []models.Recommendation
	if len(ranked) == 0 {
		recommendations = e.popular(careers)
	} else {
		recommendations, err = e.explain(ctx, &profile, ranked)
		if err != nil {
			return nil, err
		}
	}

	return &models.RecommendationResult{
		Recommendations:    recommendations,
		UserProfileSummary: ProfileSummary(&profile),
	}, nil
}

// explain writes reasoning for each ranked career in parallel, falling back
// to rule-based text whenever the reasoner fails
func (e *Engine) explain(ctx context.Context, profile *models.UserProfile, ranked []scored) ([]models.Recommendation, error) {
	out := make([]models.Recommendation, len(ranked))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.MaxConcurrent)
	for i, r := range ranked {
		g.Go(func() error {
			out[i] = recommendationFor(r.career, r.score, e.reasoning(gctx, profile, r))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) reasoning(ctx context.Context, profile *models.UserProfile, r scored) string {
	if e.reasoner == nil {
		return RuleBasedReasoning(profile, r.career, r.score)
	}
	text, err := e.reasoner.GenerateReasoning(ctx, profile, r.career, r.score)
	if err != nil {
		e.logger.Warn("AI reasoning error, using rule-based",
			zap.String("career_id", r.career.ID), zap.Error(err))
		return RuleBasedReasoning(profile, r.career, r.score)
	}
	return text
}

func (e *Engine) popular(careers []models.CareerListing) []models.Recommendation {
	n := e.opts.MaxResults
	if len(careers) < n {
		n = len(careers)
	}
	out := make([]models.Recommendation, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, recommendationFor(&careers[i], 0.5, PopularReasoning(&careers[i])))
	}
	return out
}

func recommendationFor(career *models.CareerListing, score float64, reasoning string) models.Recommendation {
	return models.Recommendation{
		Career:          career.Title,
		MatchScore:      score,
		Reasoning:       reasoning,
		RequiredSkills:  nonNil(career.RequiredSkills),
		LearningPath:    nonNil(career.LearningPath),
		SalaryRange:     career.SalaryRange,
		GrowthPotential: career.GrowthPotential,
	}
}

// Roadmap returns the learning roadmap for a career, enhanced by the
// configured model when one is set
func (e *Engine) Roadmap(ctx context.Context, id string) (*models.RoadmapView, error) {
	career, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	roadmap := models.RoadmapFromListing(career)
	if e.enhancer != nil && len(career.LearningPath) > 0 {
		steps, err := e.enhancer.EnhanceRoadmap(ctx, career, career.LearningPath)
		if err != nil {
			e.logger.Warn("AI enhancement failed, using default roadmap",
				zap.String("career_id", id), zap.Error(err))
		} else {
			roadmap.Roadmap = steps
		}
	}
	return roadmap, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
