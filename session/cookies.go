package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careerpath/webapp/wizard"
)

// Cookie names and token purposes
const (
	WizardCookie  = "cp_wizard"
	HandoffCookie = "cp_handoff"

	purposeWizard  = "wizard"
	purposeHandoff = "handoff"
)

// Store keeps per-visitor state in server-side tables keyed by signed
// cookie ids
type Store struct {
	codec    *Codec
	drafts   *Drafts
	handoffs *Handoffs
	secure   bool
}

// NewStore creates a session store. Cookie lifetimes follow the tables' TTLs.
func NewStore(codec *Codec, drafts *Drafts, handoffs *Handoffs, secure bool) *Store {
	return &Store{
		codec:    codec,
		drafts:   drafts,
		handoffs: handoffs,
		secure:   secure,
	}
}

// LoadWizard returns the visitor's wizard state, or a fresh wizard when the
// cookie is missing, tampered with or its draft has expired
func (s *Store) LoadWizard(c *gin.Context) *wizard.State {
	id, ok := s.cookieID(c, WizardCookie, purposeWizard)
	if !ok {
		return wizard.New()
	}
	state, ok := s.drafts.Get(id)
	if !ok {
		return wizard.New()
	}
	state.Normalize()
	return &state
}

// SaveWizard stores the wizard state, reusing the visitor's draft when it
// is still live
func (s *Store) SaveWizard(c *gin.Context, state *wizard.State) error {
	if id, ok := s.cookieID(c, WizardCookie, purposeWizard); ok && s.drafts.Set(id, *state) {
		return s.setID(c, WizardCookie, purposeWizard, id, s.drafts.TTL())
	}
	id := s.drafts.Put(*state)
	return s.setID(c, WizardCookie, purposeWizard, id, s.drafts.TTL())
}

// ClearWizard drops the visitor's draft and its cookie
func (s *Store) ClearWizard(c *gin.Context) {
	if id, ok := s.cookieID(c, WizardCookie, purposeWizard); ok {
		s.drafts.Delete(id)
	}
	s.setCookie(c, WizardCookie, "", -1)
}

// PutHandoff stores h and points the visitor's handoff cookie at it
func (s *Store) PutHandoff(c *gin.Context, h Handoff) error {
	id := s.handoffs.Put(h)
	return s.setID(c, HandoffCookie, purposeHandoff, id, s.handoffs.TTL())
}

// Handoff returns the visitor's current handoff, if any
func (s *Store) Handoff(c *gin.Context) (Handoff, bool) {
	id, ok := s.cookieID(c, HandoffCookie, purposeHandoff)
	if !ok {
		return Handoff{}, false
	}
	return s.handoffs.Get(id)
}

func (s *Store) cookieID(c *gin.Context, name, purpose string) (string, bool) {
	raw, err := c.Cookie(name)
	if err != nil || raw == "" {
		return "", false
	}
	id, err := Decode[string](s.codec, purpose, raw)
	if err != nil {
		return "", false
	}
	return id, true
}

func (s *Store) setID(c *gin.Context, name, purpose, id string, ttl time.Duration) error {
	token, err := Encode(s.codec, purpose, id, ttl)
	if err != nil {
		return err
	}
	s.setCookie(c, name, token, ttl)
	return nil
}

func (s *Store) setCookie(c *gin.Context, name, value string, ttl time.Duration) {
	maxAge := int(ttl / time.Second)
	if ttl < 0 {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", s.secure, true)
}
