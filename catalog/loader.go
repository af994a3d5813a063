package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/careerpath/webapp/api"
	"github.com/careerpath/webapp/models"
)

// Source lists the career catalog
type Source interface {
	ListCareers(ctx context.Context) ([]models.CareerListing, error)
}

// Outcome classifies a catalog load
type Outcome int

const (
	// OutcomeLoaded means a non-empty catalog arrived
	OutcomeLoaded Outcome = iota
	// OutcomeEmpty means the backend answered with a valid empty list
	OutcomeEmpty
	// OutcomeMalformed means the backend answered with an undecodable payload
	OutcomeMalformed
	// OutcomeUnreachable means the backend could not be reached
	OutcomeUnreachable
	// OutcomeFailed covers every other failure
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeEmpty:
		return "empty"
	case OutcomeMalformed:
		return "malformed"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return "failed"
	}
}

// retryable outcomes get exactly one delayed second attempt
func (o Outcome) retryable() bool {
	return o == OutcomeEmpty || o == OutcomeMalformed
}

// LoadResult is the catalog as the browser should render it
type LoadResult struct {
	Careers  []models.CareerListing
	Outcome  Outcome
	Attempts int
	Err      error
}

// WaitFunc blocks for d or until ctx is done
type WaitFunc func(ctx context.Context, d time.Duration) error

// Loader fetches the catalog, retrying once after a fixed delay when the
// first answer is empty or malformed. A hard failure on the retry reads as
// empty; only a first-attempt failure is reported as such.
type Loader struct {
	source Source
	delay  time.Duration
	wait   WaitFunc
	logger *zap.Logger
}

// NewLoader creates a catalog loader
func NewLoader(source Source, retryDelay time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source: source,
		delay:  retryDelay,
		wait:   sleep,
		logger: logger,
	}
}

// WithWait replaces the delay implementation
func (l *Loader) WithWait(wait WaitFunc) *Loader {
	l.wait = wait
	return l
}

// Load fetches the catalog
func (l *Loader) Load(ctx context.Context) LoadResult {
	result := l.attempt(ctx)
	result.Attempts = 1
	if !result.Outcome.retryable() {
		return result
	}

	l.logger.Warn("no careers received, retrying once",
		zap.Stringer("outcome", result.Outcome),
		zap.Duration("delay", l.delay))

	if err := l.wait(ctx, l.delay); err != nil {
		// Request went away; keep the first answer
		return result
	}

	retry := l.attempt(ctx)
	retry.Attempts = 2
	switch retry.Outcome {
	case OutcomeLoaded:
	case OutcomeUnreachable, OutcomeFailed:
		// The first answer was usable; a failed retry gives up quietly
		l.logger.Error("catalog retry failed", zap.Stringer("outcome", retry.Outcome), zap.Error(retry.Err))
		retry.Outcome = OutcomeEmpty
		retry.Careers = []models.CareerListing{}
	default:
		l.logger.Warn("catalog still empty after retry", zap.Stringer("outcome", retry.Outcome))
	}
	return retry
}

func (l *Loader) attempt(ctx context.Context) LoadResult {
	careers, err := l.source.ListCareers(ctx)
	switch {
	case err == nil && len(careers) > 0:
		l.logger.Debug("careers loaded", zap.Int("count", len(careers)))
		return LoadResult{Careers: careers, Outcome: OutcomeLoaded}
	case err == nil:
		return LoadResult{Careers: []models.CareerListing{}, Outcome: OutcomeEmpty}
	case errors.Is(err, api.ErrMalformedResponse):
		return LoadResult{Careers: []models.CareerListing{}, Outcome: OutcomeMalformed, Err: err}
	case api.IsUnreachable(err):
		l.logger.Error("error loading careers", zap.Error(err))
		return LoadResult{Careers: []models.CareerListing{}, Outcome: OutcomeUnreachable, Err: err}
	default:
		l.logger.Error("error loading careers", zap.Error(err))
		return LoadResult{Careers: []models.CareerListing{}, Outcome: OutcomeFailed, Err: err}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
