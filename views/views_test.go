package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpath/webapp/catalog"
	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/roadmap"
	"github.com/careerpath/webapp/wizard"
)

func render(t *testing.T, name string, data interface{}) *goquery.Document {
	t.Helper()
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestSalary(t *testing.T) {
	assert.Equal(t, "$60k - $120k", Salary(models.SalaryRange{Min: 60000, Max: 120000}))
	assert.Equal(t, "$0k - $1k", Salary(models.SalaryRange{Min: 0, Max: 999}))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "ml-engineer", Slug("ML Engineer"))
	assert.Equal(t, "ui-ux-designer", Slug("UI-UX   Designer"))
}

func TestTakeRemaining(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, []string{"a", "b", "c"}, Take(3, skills))
	assert.Equal(t, 2, Remaining(3, skills))
	assert.Equal(t, []string{"a"}, Take(3, []string{"a"}))
	assert.Equal(t, 0, Remaining(3, []string{"a"}))
}

func TestCategoryHelpers(t *testing.T) {
	assert.Equal(t, "badge-purple", CategoryClass(models.CategoryAIML))
	assert.Equal(t, "badge-gray", CategoryClass("Gardening"))
	assert.Equal(t, "All Categories", CategoryLabel(models.CategoryAll))
	assert.Equal(t, "Data", CategoryLabel("Data"))
}

func TestStaticServesStylesheet(t *testing.T) {
	f, err := Static().Open("style.css")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestRender_Home(t *testing.T) {
	doc := render(t, TemplateHome, NewHomePage())

	assert.Equal(t, "Find Your Future in Tech", strings.TrimSpace(doc.Find("h1").First().Text()))
	assert.Equal(t, 4, doc.Find(".feature").Length())
	assert.Equal(t, 6, doc.Find(".category-tile").Length())

	href, ok := doc.Find("a.button.primary").First().Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/profile", href)
}

func TestRender_ProfileSteps(t *testing.T) {
	state := wizard.New()
	state.Profile.AddSkill("Python")

	doc := render(t, TemplateProfile, NewProfilePage(state))
	assert.Equal(t, 1, doc.Find(`section[data-step="1"]`).Length())
	assert.Equal(t, "Python", strings.TrimSpace(doc.Find("#skills .chip").Contents().First().Text()))
	assert.Equal(t, 1, doc.Find(`button[value="next"]`).Length())
	assert.Equal(t, 0, doc.Find(`button[value="submit"]`).Length())
	_, disabled := doc.Find(`button[value="back"]`).Attr("disabled")
	assert.True(t, disabled)
	assert.Equal(t, 1, doc.Find(".step-label.done").Length())

	state.Step = wizard.LastStep
	doc = render(t, TemplateProfile, NewProfilePage(state))
	assert.Equal(t, 1, doc.Find(`section[data-step="4"]`).Length())
	assert.Equal(t, 1, doc.Find(`button[value="submit"]`).Length())
	assert.Equal(t, 4, doc.Find(".step-label.done").Length())
}

func TestRender_ProfileBackgroundSelectsEducation(t *testing.T) {
	state := &wizard.State{Step: wizard.StepBackground}
	state.Profile.EducationLevel = models.EducationMasters
	state.Profile.ExperienceYears = 4

	doc := render(t, TemplateProfile, NewProfilePage(state))
	selected := doc.Find("#education_level option[selected]")
	assert.Equal(t, models.EducationMasters, selected.AttrOr("value", ""))
	assert.Equal(t, "4", doc.Find("#experience_years").AttrOr("value", ""))
}

func TestRender_ProfileAlert(t *testing.T) {
	page := NewProfilePage(&wizard.State{Step: wizard.LastStep})
	page.Alert = &Alert{Title: "Backend server is not running!", Lines: []string{"one", "two"}}

	doc := render(t, TemplateProfile, page)
	assert.Equal(t, "Backend server is not running!", doc.Find(".alert-title").Text())
	assert.Equal(t, 2, doc.Find(".alert p:not(.alert-title)").Length())
}

func TestRender_Results(t *testing.T) {
	page := ResultsPage{
		Page: Page{Title: "Results"},
		Result: models.RecommendationResult{
			UserProfileSummary: "Profile with 2 skills",
			Recommendations: []models.Recommendation{{
				Career:          "ML Engineer",
				MatchScore:      0.87,
				Reasoning:       "Strong Python background",
				RequiredSkills:  []string{"Python", "TensorFlow"},
				LearningPath:    []string{"one", "two", "three", "four"},
				SalaryRange:     models.SalaryRange{Min: 100000, Max: 180000},
				GrowthPotential: 98,
			}},
		},
	}

	doc := render(t, TemplateResults, page)
	cards := doc.Find(".recommendation")
	require.Equal(t, 1, cards.Length())
	assert.Equal(t, "87% Match", cards.Find(".match").Text())
	assert.Equal(t, "$100k - $180k", cards.Find(".salary").Text())
	assert.Equal(t, 3, cards.Find(".checklist li").Length())
	assert.Equal(t, "/careers/ml-engineer", cards.Find("a.button.primary").AttrOr("href", ""))
	assert.Equal(t, "Profile with 2 skills", doc.Find("#summary").Text())
}

func sampleCareers() []models.CareerListing {
	return []models.CareerListing{
		{ID: "ml-engineer", Title: "ML Engineer", Category: models.CategoryAIML, RequiredSkills: []string{"Python", "TensorFlow", "MLOps", "SQL"}},
		{ID: "data-analyst", Title: "Data Analyst", Category: models.CategoryData, RequiredSkills: []string{"SQL"}},
	}
}

func TestRender_Careers(t *testing.T) {
	result := catalog.LoadResult{Careers: sampleCareers(), Outcome: catalog.OutcomeLoaded, Attempts: 1}
	page := NewCareersPage(result, catalog.Criteria{})

	doc := render(t, TemplateCareers, page)
	assert.Equal(t, 2, doc.Find(".career").Length())
	assert.Equal(t, "2", doc.Find("#shown strong").Text())
	assert.Equal(t, "+1", doc.Find(".career").First().Find(".chip.more").Text())
	assert.Equal(t, "all", doc.Find("select option[selected]").AttrOr("value", ""))
	assert.Equal(t, 7, doc.Find("select option").Length())
}

func TestRender_CareersEmptyFilter(t *testing.T) {
	result := catalog.LoadResult{Careers: sampleCareers(), Outcome: catalog.OutcomeLoaded, Attempts: 1}
	page := NewCareersPage(result, catalog.Criteria{Category: models.CategoryCybersecurity})

	doc := render(t, TemplateCareers, page)
	assert.Equal(t, 0, doc.Find(".career").Length())
	assert.Contains(t, doc.Find(".empty").Text(), "No careers found matching your criteria.")
	assert.Equal(t, "/careers", doc.Find(".empty a").AttrOr("href", ""))
	assert.Contains(t, doc.Find(".lead").Text(), "Discover 2 career opportunities")
}

func TestRender_CareerDetail(t *testing.T) {
	listing := &models.CareerListing{
		ID:              "ml-engineer",
		Title:           "ML Engineer",
		Category:        models.CategoryAIML,
		RequiredSkills:  []string{"Python"},
		PreferredSkills: []string{"Kubernetes"},
		LearningPath:    []string{"Learn Python", "Learn ML"},
	}
	detail := &roadmap.Detail{
		Career:        listing,
		Roadmap:       roadmap.FallbackFrom(listing),
		RoadmapOrigin: roadmap.OriginFallback,
	}

	doc := render(t, TemplateCareerDetail, NewCareerDetailPage(detail))
	assert.Equal(t, "ML Engineer", doc.Find("h1").Text())
	assert.Equal(t, 2, doc.Find(".steps li").Length())
	assert.Equal(t, "Learn Python", doc.Find(".steps .step-text").First().Text())
	assert.Equal(t, "6-12 months • Intermediate to Advanced", doc.Find("#roadmap-meta").Text())
	assert.Equal(t, 1, doc.Find("#preferred-skills .chip").Length())
}

func TestRender_CareerDetailWithoutRoadmap(t *testing.T) {
	detail := &roadmap.Detail{
		Career:        &models.CareerListing{ID: "x", Title: "X"},
		RoadmapOrigin: roadmap.OriginNone,
	}

	doc := render(t, TemplateCareerDetail, NewCareerDetailPage(detail))
	assert.Equal(t, 0, doc.Find(".roadmap").Length())
	assert.Equal(t, 0, doc.Find("#preferred-skills").Length())
}

func TestRender_Message(t *testing.T) {
	doc := render(t, TemplateMessage, MessagePage{
		Page:     Page{Title: "Not found"},
		Message:  "Career not found.",
		LinkHref: "/careers",
		LinkText: "Back to careers",
	})
	assert.Equal(t, "Career not found.", doc.Find("#message").Text())
	assert.Equal(t, "/careers", doc.Find(".message > a").AttrOr("href", ""))
	assert.Equal(t, 0, doc.Find(".alert").Length())
}
