package session

import (
	"time"

	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/wizard"
)

// Handoff is what the profile screen hands to the results screen
type Handoff struct {
	Result  models.RecommendationResult
	Profile models.UserProfile
}

// Handoffs keeps recent handoffs until they expire
type Handoffs = Table[Handoff]

// NewHandoffs creates a handoff table
func NewHandoffs(ttl time.Duration, maxEntries int) *Handoffs {
	return NewTable[Handoff](ttl, maxEntries)
}

// Drafts keeps in-progress wizard states. Only a signed id travels in the
// cookie, so free-text answers never push it past browser limits.
type Drafts = Table[wizard.State]

// NewDrafts creates a wizard draft table
func NewDrafts(ttl time.Duration, maxEntries int) *Drafts {
	return NewTable[wizard.State](ttl, maxEntries)
}
