package recommender

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var mlEngineer = models.CareerListing{
	ID:              "ml-engineer",
	Title:           "ML Engineer",
	Category:        "AI/ML",
	RequiredSkills:  []string{"Python", "TensorFlow", "PyTorch", "MLOps", "Cloud Computing"},
	PreferredSkills: []string{"Kubernetes", "Docker", "AWS", "MLflow", "Airflow"},
	SalaryRange:     models.SalaryRange{Min: 110000, Max: 190000, Currency: "USD"},
	GrowthPotential: 98,
	LearningPath:    []string{"Learn Python", "Study ML", "Ship models"},
}

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	listings, err := storage.DefaultCatalog()
	require.NoError(t, err)
	return NewEngine(storage.NewMemoryStore(listings), DefaultOptions(), nil)
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name    string
		profile models.UserProfile
		career  models.CareerListing
		want    float64
	}{
		{
			name: "all required skills with capped experience and interest",
			profile: models.UserProfile{
				Skills:          []string{"python", "tensorflow", "pytorch", "mlops", "cloud computing"},
				ExperienceYears: 8,
				Interests:       []string{"AI/ML"},
			},
			career: mlEngineer,
			want:   0.8,
		},
		{
			name:    "empty profile",
			profile: models.UserProfile{},
			career:  mlEngineer,
			want:    0,
		},
		{
			name:    "weights without preferred skills or interests are normalized",
			profile: models.UserProfile{Skills: []string{"go"}},
			career:  models.CareerListing{Category: "Software Development", RequiredSkills: []string{"Go"}},
			want:    0.5 / 0.65,
		},
		{
			name:    "substring match either way",
			profile: models.UserProfile{Skills: []string{"React Native developer"}},
			career:  models.CareerListing{Category: "Other", RequiredSkills: []string{"react native"}},
			want:    0.5 / 0.65,
		},
		{
			name:    "blank skills never match",
			profile: models.UserProfile{Skills: []string{" "}},
			career:  mlEngineer,
			want:    0,
		},
		{
			name:    "interest contains category",
			profile: models.UserProfile{Interests: []string{"data science and ai/ml"}},
			career:  models.CareerListing{Category: "AI/ML"},
			want:    0.15 / 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MatchScore(&tt.profile, &tt.career), 1e-9)
		})
	}
}

func TestRuleBasedReasoning(t *testing.T) {
	profile := models.UserProfile{
		Skills:          []string{"Python", "TensorFlow", "PyTorch"},
		ExperienceYears: 3,
		Interests:       []string{"ai"},
	}

	got := RuleBasedReasoning(&profile, &mlEngineer, 0.87)
	assert.Equal(t, "Your skills in Python, TensorFlow align well with this role. "+
		"Your 3 years of experience are valuable. "+
		"This matches your interest in AI/ML. Match score: 87%", got)
}

func TestRuleBasedReasoning_NoSignals(t *testing.T) {
	got := RuleBasedReasoning(&models.UserProfile{}, &mlEngineer, 0.5)
	assert.Equal(t, "This career path offers strong growth potential in AI/ML. Match score: 50%", got)
}

func TestProfileSummary(t *testing.T) {
	assert.Equal(t, "Profile with 0 skills, 0 years experience, interested in various fields",
		ProfileSummary(&models.UserProfile{}))

	profile := models.UserProfile{
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 4,
		Interests:       []string{"Data", "AI/ML", "Cloud/DevOps", "Cybersecurity"},
	}
	assert.Equal(t, "Profile with 2 skills, 4 years experience, interested in Data, AI/ML, Cloud/DevOps",
		ProfileSummary(&profile))
}

func TestRecommend_RanksBestMatchFirst(t *testing.T) {
	engine := defaultEngine(t)

	result, err := engine.Recommend(context.Background(), models.UserProfile{
		Skills:          []string{"Python", "TensorFlow", "PyTorch", "MLOps", "Cloud Computing", "Kubernetes"},
		ExperienceYears: 5,
		Interests:       []string{"AI/ML"},
	})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)

	top := result.Recommendations[0]
	assert.Equal(t, "ML Engineer", top.Career)
	assert.NotEmpty(t, top.LearningPath)
	assert.Contains(t, top.Reasoning, "Match score:")
	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t, result.Recommendations[i-1].MatchScore, result.Recommendations[i].MatchScore)
		assert.Greater(t, result.Recommendations[i].MatchScore, 0.2)
	}
	assert.Equal(t, "Profile with 6 skills, 5 years experience, interested in AI/ML", result.UserProfileSummary)
}

func TestRecommend_EmptyProfileGetsPopularCareers(t *testing.T) {
	engine := defaultEngine(t)
	listings, err := engine.Careers(context.Background())
	require.NoError(t, err)

	result, err := engine.Recommend(context.Background(), models.UserProfile{})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 3)

	for i, rec := range result.Recommendations {
		assert.Equal(t, listings[i].Title, rec.Career)
		assert.Equal(t, 0.5, rec.MatchScore)
		assert.Equal(t, PopularReasoning(&listings[i]), rec.Reasoning)
	}
	assert.Equal(t, "Profile with 0 skills, 0 years experience, interested in various fields", result.UserProfileSummary)
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	first := models.CareerListing{ID: "a", Title: "A", Category: "Other", RequiredSkills: []string{"Go"}}
	second := models.CareerListing{ID: "b", Title: "B", Category: "Other", RequiredSkills: []string{"Go"}}
	engine := NewEngine(storage.NewMemoryStore([]models.CareerListing{first, second}), Options{MaxResults: 1}, nil)

	result, err := engine.Recommend(context.Background(), models.UserProfile{Skills: []string{"go"}})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "A", result.Recommendations[0].Career)
	assert.Equal(t, []string{}, result.Recommendations[0].LearningPath)
}

type fakeReasoner struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeReasoner) GenerateReasoning(_ context.Context, _ *models.UserProfile, career *models.CareerListing, _ float64) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return "AI says " + career.Title, nil
}

func TestRecommend_UsesReasoner(t *testing.T) {
	reasoner := &fakeReasoner{}
	engine := defaultEngine(t).WithReasoner(reasoner)

	result, err := engine.Recommend(context.Background(), models.UserProfile{
		Skills:    []string{"Python", "SQL", "Machine Learning"},
		Interests: []string{"Data"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommendations)

	for _, rec := range result.Recommendations {
		assert.Equal(t, "AI says "+rec.Career, rec.Reasoning)
	}
	assert.Equal(t, len(result.Recommendations), reasoner.calls)
}

func TestRecommend_ReasonerFailureFallsBack(t *testing.T) {
	engine := defaultEngine(t).WithReasoner(&fakeReasoner{err: errors.New("quota exceeded")})

	result, err := engine.Recommend(context.Background(), models.UserProfile{
		Skills:          []string{"Python", "TensorFlow"},
		ExperienceYears: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommendations)
	assert.Contains(t, result.Recommendations[0].Reasoning, "align well with this role")
}

type failingStore struct{}

func (failingStore) List(context.Context) ([]models.CareerListing, error) {
	return nil, errors.New("unavailable")
}

func (failingStore) Get(context.Context, string) (*models.CareerListing, error) {
	return nil, errors.New("unavailable")
}

func TestRecommend_StoreError(t *testing.T) {
	engine := NewEngine(failingStore{}, DefaultOptions(), nil)

	_, err := engine.Recommend(context.Background(), models.UserProfile{})
	assert.ErrorContains(t, err, "failed to load careers")
}

func TestSearch(t *testing.T) {
	engine := defaultEngine(t)
	ctx := context.Background()

	all, err := engine.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 24)

	found, err := engine.Search(ctx, "TensorFlow")
	require.NoError(t, err)
	var ids []string
	for _, listing := range found {
		ids = append(ids, listing.ID)
	}
	assert.Contains(t, ids, "ml-engineer")
	assert.Less(t, len(found), 24)

	none, err := engine.Search(ctx, "underwater basket weaving")
	require.NoError(t, err)
	assert.Empty(t, none)
}

type fakeEnhancer struct {
	steps []string
	err   error
}

func (f fakeEnhancer) EnhanceRoadmap(context.Context, *models.CareerListing, []string) ([]string, error) {
	return f.steps, f.err
}

func TestRoadmap(t *testing.T) {
	store := storage.NewMemoryStore([]models.CareerListing{mlEngineer})
	ctx := context.Background()

	t.Run("listing path", func(t *testing.T) {
		roadmap, err := NewEngine(store, DefaultOptions(), nil).Roadmap(ctx, "ml-engineer")
		require.NoError(t, err)
		assert.Equal(t, "ML Engineer", roadmap.Career)
		assert.Equal(t, mlEngineer.LearningPath, []string(roadmap.Roadmap))
		assert.Equal(t, models.DefaultEstimatedTime, roadmap.EstimatedTime)
		assert.Equal(t, models.DefaultDifficulty, roadmap.Difficulty)
	})

	t.Run("enhanced", func(t *testing.T) {
		engine := NewEngine(store, DefaultOptions(), nil).WithEnhancer(fakeEnhancer{steps: []string{"One", "Two"}})
		roadmap, err := engine.Roadmap(ctx, "ml-engineer")
		require.NoError(t, err)
		assert.Equal(t, []string{"One", "Two"}, []string(roadmap.Roadmap))
	})

	t.Run("enhancer failure keeps listing path", func(t *testing.T) {
		engine := NewEngine(store, DefaultOptions(), nil).WithEnhancer(fakeEnhancer{err: errors.New("boom")})
		roadmap, err := engine.Roadmap(ctx, "ml-engineer")
		require.NoError(t, err)
		assert.Equal(t, mlEngineer.LearningPath, []string(roadmap.Roadmap))
	})

	t.Run("unknown career", func(t *testing.T) {
		_, err := NewEngine(store, DefaultOptions(), nil).Roadmap(ctx, "astronaut")
		assert.ErrorIs(t, err, storage.ErrCareerNotFound)
	})
}
