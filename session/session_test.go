package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/wizard"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")
	state := wizard.State{Step: 3, Profile: models.UserProfile{Skills: []string{"Go"}}}

	token, err := Encode(codec, "wizard", state, time.Hour)
	require.NoError(t, err)

	got, err := Decode[wizard.State](codec, "wizard", token)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestCodec_RejectsOtherSecret(t *testing.T) {
	token, err := Encode(NewCodec("one"), "wizard", "x", time.Hour)
	require.NoError(t, err)

	_, err = Decode[string](NewCodec("two"), "wizard", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_RejectsOtherPurpose(t *testing.T) {
	codec := NewCodec("secret")
	token, err := Encode(codec, "handoff", "id", time.Hour)
	require.NoError(t, err)

	_, err = Decode[string](codec, "wizard", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_RejectsExpired(t *testing.T) {
	codec := NewCodec("secret")
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return start }

	token, err := Encode(codec, "wizard", "x", time.Minute)
	require.NoError(t, err)

	codec.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = Decode[string](codec, "wizard", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHandoffs_PutGet(t *testing.T) {
	h := NewHandoffs(time.Minute, 10)
	want := Handoff{Result: models.RecommendationResult{UserProfileSummary: "summary"}}

	id := h.Put(want)
	got, ok := h.Get(id)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = h.Get("missing")
	assert.False(t, ok)
}

func TestHandoffs_Expire(t *testing.T) {
	h := NewHandoffs(time.Minute, 10)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	id := h.Put(Handoff{})
	now = now.Add(2 * time.Minute)

	_, ok := h.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestHandoffs_DropsOldestAtCapacity(t *testing.T) {
	h := NewHandoffs(time.Hour, 2)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	first := h.Put(Handoff{})
	second := h.Put(Handoff{})
	third := h.Put(Handoff{})

	assert.Equal(t, 2, h.Len())
	_, ok := h.Get(first)
	assert.False(t, ok)
	_, ok = h.Get(second)
	assert.True(t, ok)
	_, ok = h.Get(third)
	assert.True(t, ok)
}

func TestTable_SetRestartsTTL(t *testing.T) {
	table := NewTable[string](time.Minute, 10)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	table.now = func() time.Time { return now }

	id := table.Put("first")
	now = now.Add(50 * time.Second)
	require.True(t, table.Set(id, "second"))

	now = now.Add(50 * time.Second)
	got, ok := table.Get(id)
	require.True(t, ok)
	assert.Equal(t, "second", got)

	assert.False(t, table.Set("missing", "x"))
	assert.Equal(t, 1, table.Len())

	table.Delete(id)
	_, ok = table.Get(id)
	assert.False(t, ok)
}

func newStore() *Store {
	return NewStore(NewCodec("secret"), NewDrafts(time.Hour, 10), NewHandoffs(time.Hour, 10), false)
}

// carryCookies copies Set-Cookie values from a recorded response onto req
func carryCookies(rec *httptest.ResponseRecorder, req *http.Request) {
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
}

func TestStore_WizardRoundTrip(t *testing.T) {
	store := newStore()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/profile", nil)

	state := wizard.New()
	state.Handle(wizard.ActionAddSkill, "Python")
	state.Next()
	require.NoError(t, store.SaveWizard(c, state))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	carryCookies(rec, req)
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = req

	got := store.LoadWizard(c2)
	assert.Equal(t, 2, got.Step)
	assert.Equal(t, []string{"Python"}, got.Profile.Skills)
}

func TestStore_LargeWizardStateKeepsCookieSmall(t *testing.T) {
	store := newStore()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/profile", nil)

	state := wizard.New()
	state.Step = wizard.StepGoals
	state.ApplyGoals(wizard.Fields{Goals: strings.Repeat("g", 3500), Location: "Remote"})
	require.NoError(t, store.SaveWizard(c, state))

	for _, header := range rec.Header().Values("Set-Cookie") {
		assert.Less(t, len(header), 512)
	}

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	carryCookies(rec, req)
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = req

	got := store.LoadWizard(c2)
	assert.Equal(t, wizard.StepGoals, got.Step)
	assert.Len(t, got.Profile.Goals, 3500)
}

func TestStore_SaveWizardReusesDraft(t *testing.T) {
	store := newStore()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/profile", nil)
	require.NoError(t, store.SaveWizard(c, wizard.New()))

	req := httptest.NewRequest(http.MethodPost, "/profile", nil)
	carryCookies(rec, req)
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = req

	state := wizard.New()
	state.Next()
	require.NoError(t, store.SaveWizard(c2, state))
	assert.Equal(t, 1, store.drafts.Len())

	store.ClearWizard(c2)
	assert.Equal(t, 0, store.drafts.Len())
}

func TestStore_TamperedWizardCookieStartsFresh(t *testing.T) {
	store := newStore()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: WizardCookie, Value: "not-a-token"})
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	got := store.LoadWizard(c)
	assert.Equal(t, wizard.FirstStep, got.Step)
	assert.Empty(t, got.Profile.Skills)
}

func TestStore_HandoffRoundTrip(t *testing.T) {
	store := newStore()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/profile", nil)

	handoff := Handoff{
		Result:  models.RecommendationResult{Recommendations: []models.Recommendation{{Career: "ML Engineer", MatchScore: 0.87}}},
		Profile: models.UserProfile{Skills: []string{"Python"}},
	}
	require.NoError(t, store.PutHandoff(c, handoff))

	req := httptest.NewRequest(http.MethodGet, "/results", nil)
	carryCookies(rec, req)
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = req

	got, ok := store.Handoff(c2)
	require.True(t, ok)
	assert.Equal(t, handoff, got)
}

func TestStore_NoHandoffCookie(t *testing.T) {
	store := newStore()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/results", nil)

	_, ok := store.Handoff(c)
	assert.False(t, ok)
}
