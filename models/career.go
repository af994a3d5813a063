package models

import (
	"encoding/json"
	"fmt"
)

// FlexibleStringSlice can unmarshal from either a string or []string.
// Anything else is an error.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("expected string or list of strings, got %s", data)
	}
	if str != "" {
		*f = []string{str}
	} else {
		*f = []string{}
	}
	return nil
}

// SalaryRange is an annual salary band
type SalaryRange struct {
	Min      int    `json:"min" firestore:"min" example:"60000"`
	Max      int    `json:"max" firestore:"max" example:"120000"`
	Currency string `json:"currency,omitempty" firestore:"currency,omitempty" example:"USD"`
}

// CareerListing is a catalog entry describing one occupation
// @Description Career catalog entry
type CareerListing struct {
	ID              string      `json:"id" firestore:"id" example:"ml-engineer"`
	Title           string      `json:"title" firestore:"title" example:"ML Engineer"`
	Category        string      `json:"category" firestore:"category" example:"AI/ML"`
	Description     string      `json:"description" firestore:"description"`
	RequiredSkills  []string    `json:"required_skills" firestore:"required_skills"`
	PreferredSkills []string    `json:"preferred_skills,omitempty" firestore:"preferred_skills,omitempty"`
	SalaryRange     SalaryRange `json:"salary_range" firestore:"salary_range"`
	GrowthPotential int         `json:"growth_potential" firestore:"growth_potential" example:"98"`
	LearningPath    []string    `json:"learning_path" firestore:"learning_path"`
}

// Category constants
const (
	CategorySoftwareDevelopment = "Software Development"
	CategoryAIML                = "AI/ML"
	CategoryData                = "Data"
	CategoryCloudDevOps         = "Cloud/DevOps"
	CategoryCybersecurity       = "Cybersecurity"
	CategoryOther               = "Other"

	// CategoryAll disables category filtering
	CategoryAll = "all"
)

// Categories lists the catalog categories in display order
var Categories = []string{
	CategorySoftwareDevelopment,
	CategoryAIML,
	CategoryData,
	CategoryCloudDevOps,
	CategoryCybersecurity,
	CategoryOther,
}

// Placeholder metadata for roadmaps derived from a listing's learning path
const (
	DefaultEstimatedTime = "6-12 months"
	DefaultDifficulty    = "Intermediate to Advanced"
)

// RoadmapView is an ordered learning-step sequence with metadata
// @Description Learning roadmap for a career
type RoadmapView struct {
	Career          string              `json:"career" example:"ML Engineer"`
	Roadmap         FlexibleStringSlice `json:"roadmap" swaggertype:"array,string"`
	RequiredSkills  FlexibleStringSlice `json:"required_skills" swaggertype:"array,string"`
	PreferredSkills FlexibleStringSlice `json:"preferred_skills" swaggertype:"array,string"`
	EstimatedTime   string              `json:"estimated_time" example:"6-12 months"`
	Difficulty      string              `json:"difficulty" example:"Intermediate to Advanced"`
}

// RoadmapFromListing builds the roadmap a listing implies on its own
func RoadmapFromListing(listing *CareerListing) *RoadmapView {
	return &RoadmapView{
		Career:          listing.Title,
		Roadmap:         copyStrings(listing.LearningPath),
		RequiredSkills:  copyStrings(listing.RequiredSkills),
		PreferredSkills: copyStrings(listing.PreferredSkills),
		EstimatedTime:   DefaultEstimatedTime,
		Difficulty:      DefaultDifficulty,
	}
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
