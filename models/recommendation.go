package models

import "math"

// Recommendation is one ranked career suggestion
type Recommendation struct {
	Career          string      `json:"career" example:"ML Engineer"`
	MatchScore      float64     `json:"match_score" example:"0.87"` // 0-1
	Reasoning       string      `json:"reasoning"`
	RequiredSkills  []string    `json:"required_skills"`
	LearningPath    []string    `json:"learning_path"`
	SalaryRange     SalaryRange `json:"salary_range"`
	GrowthPotential int         `json:"growth_potential" example:"98"`
}

// MatchPercent returns the match score as a whole percentage
func (r Recommendation) MatchPercent() int {
	return int(math.Round(r.MatchScore * 100))
}

// RecommendationResult is the backend's ranked output for a submitted profile
// @Description Ranked career recommendations for a profile
type RecommendationResult struct {
	Recommendations    []Recommendation `json:"recommendations"`
	UserProfileSummary string           `json:"user_profile_summary"`
}

// HasRecommendations reports whether there is anything to show
func (r *RecommendationResult) HasRecommendations() bool {
	return r != nil && len(r.Recommendations) > 0
}
