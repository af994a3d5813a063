package views

import (
	"github.com/careerpath/webapp/catalog"
	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/roadmap"
	"github.com/careerpath/webapp/wizard"
)

// Page carries what the shared layout needs
type Page struct {
	Title string
	// Nav marks the active top-level link
	Nav string
}

// Alert is a dismissable message box
type Alert struct {
	Title string
	Lines []string
}

// Feature is one landing page tile
type Feature struct {
	Title       string
	Description string
}

// CategoryTile links to the catalog from the landing page
type CategoryTile struct {
	Name  string
	Count int
	Class string
}

// HomePage is the landing screen
type HomePage struct {
	Page
	Features   []Feature
	Categories []CategoryTile
}

// NewHomePage builds the landing screen
func NewHomePage() HomePage {
	return HomePage{
		Page: Page{Title: "Find Your Future in Tech", Nav: "home"},
		Features: []Feature{
			{Title: "AI-Powered Recommendations", Description: "Get personalized career suggestions matched to your skills and interests"},
			{Title: "24+ Career Paths", Description: "Explore comprehensive career options in tech, AI/ML, data, and more"},
			{Title: "Learning Roadmaps", Description: "Get step-by-step learning paths for your chosen career"},
			{Title: "Career Insights", Description: "Understand salary ranges, growth potential, and required skills"},
		},
		Categories: []CategoryTile{
			{Name: models.CategorySoftwareDevelopment, Count: 4, Class: CategoryClass(models.CategorySoftwareDevelopment)},
			{Name: models.CategoryAIML, Count: 7, Class: CategoryClass(models.CategoryAIML)},
			{Name: models.CategoryData, Count: 3, Class: CategoryClass(models.CategoryData)},
			{Name: models.CategoryCloudDevOps, Count: 3, Class: CategoryClass(models.CategoryCloudDevOps)},
			{Name: models.CategoryCybersecurity, Count: 2, Class: CategoryClass(models.CategoryCybersecurity)},
			{Name: models.CategoryOther, Count: 5, Class: CategoryClass(models.CategoryOther)},
		},
	}
}

// StepLabel is one entry of the wizard progress bar
type StepLabel struct {
	Name string
	Done bool
}

// ProfilePage is the wizard screen
type ProfilePage struct {
	Page
	Step            int
	Steps           []StepLabel
	Progress        int
	Profile         models.UserProfile
	CommonSkills    []string
	CommonInterests []string
	EducationLevels []models.EducationLevel
	CanSubmit       bool
	Alert           *Alert
}

// NewProfilePage builds the wizard screen for state
func NewProfilePage(state *wizard.State) ProfilePage {
	steps := make([]StepLabel, len(wizard.StepNames))
	for i, name := range wizard.StepNames {
		steps[i] = StepLabel{Name: name, Done: state.Step > i}
	}
	return ProfilePage{
		Page:            Page{Title: "Build Your Profile", Nav: "profile"},
		Step:            state.Step,
		Steps:           steps,
		Progress:        state.Progress(),
		Profile:         state.Profile,
		CommonSkills:    wizard.CommonSkills,
		CommonInterests: wizard.CommonInterests,
		EducationLevels: models.EducationLevels,
		CanSubmit:       state.CanSubmit(),
	}
}

// ResultsPage renders a recommendation result
type ResultsPage struct {
	Page
	Result  models.RecommendationResult
	Profile models.UserProfile
}

// HasRecommendations reports whether there are cards to show
func (p ResultsPage) HasRecommendations() bool {
	return p.Result.HasRecommendations()
}

// CareersPage is the catalog browser
type CareersPage struct {
	Page
	Careers    []models.CareerListing
	Total      int
	Query      string
	Category   string
	Categories []string
	Filtered   bool
	Alert      *Alert
}

// NewCareersPage builds the catalog browser from a load result and the
// visitor's filter
func NewCareersPage(result catalog.LoadResult, criteria catalog.Criteria) CareersPage {
	category := criteria.Category
	if category == "" {
		category = models.CategoryAll
	}
	return CareersPage{
		Page:       Page{Title: "Explore Career Paths", Nav: "careers"},
		Careers:    catalog.Filter(result.Careers, criteria),
		Total:      len(result.Careers),
		Query:      criteria.Query,
		Category:   category,
		Categories: append([]string{models.CategoryAll}, models.Categories...),
		Filtered:   criteria.Active(),
	}
}

// Shown is the number of listings after filtering
func (p CareersPage) Shown() int {
	return len(p.Careers)
}

// CareerDetailPage is one listing with its roadmap
type CareerDetailPage struct {
	Page
	Career        models.CareerListing
	Roadmap       *models.RoadmapView
	RoadmapOrigin roadmap.Origin
}

// NewCareerDetailPage builds the detail screen from an assembled detail
func NewCareerDetailPage(detail *roadmap.Detail) CareerDetailPage {
	return CareerDetailPage{
		Page:          Page{Title: detail.Career.Title, Nav: "careers"},
		Career:        *detail.Career,
		Roadmap:       detail.Roadmap,
		RoadmapOrigin: detail.RoadmapOrigin,
	}
}

// MessagePage is a short notice with a single way out
type MessagePage struct {
	Page
	Message  string
	LinkHref string
	LinkText string
	Alert    *Alert
}
