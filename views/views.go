// Package views holds the frontend's embedded templates and the per-screen
// view-state structs they render.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"strings"

	"github.com/careerpath/webapp/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names, one per screen
const (
	TemplateHome         = "home"
	TemplateProfile      = "profile"
	TemplateResults      = "results"
	TemplateCareers      = "careers"
	TemplateCareerDetail = "career_detail"
	TemplateMessage      = "message"
)

// Load parses every embedded template with the view funcs installed
func Load() (*template.Template, error) {
	tmpl, err := template.New("careerpath").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the stylesheet and other static assets
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at build time
		panic(err)
	}
	return sub
}

// Funcs are the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"salary":        Salary,
		"slug":          Slug,
		"inc":           func(i int) int { return i + 1 },
		"take":          Take,
		"remaining":     Remaining,
		"categoryClass": CategoryClass,
		"categoryLabel": CategoryLabel,
	}
}

// Salary formats a band as "$60k - $120k"
func Salary(r models.SalaryRange) string {
	return fmt.Sprintf("$%dk - $%dk", thousands(r.Min), thousands(r.Max))
}

func thousands(v int) int {
	return int(math.Round(float64(v) / 1000))
}

// Slug turns a career name into the catalog id form used in links
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// Take returns at most the first n items
func Take(n int, items []string) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// Remaining counts the items Take(n) leaves out
func Remaining(n int, items []string) int {
	if len(items) <= n {
		return 0
	}
	return len(items) - n
}

var categoryClasses = map[string]string{
	models.CategorySoftwareDevelopment: "badge-blue",
	models.CategoryAIML:                "badge-purple",
	models.CategoryData:                "badge-green",
	models.CategoryCloudDevOps:         "badge-orange",
	models.CategoryCybersecurity:       "badge-red",
	models.CategoryOther:               "badge-indigo",
}

// CategoryClass returns the badge class for a category
func CategoryClass(category string) string {
	if class, ok := categoryClasses[category]; ok {
		return class
	}
	return "badge-gray"
}

// CategoryLabel is the select option text for a category value
func CategoryLabel(category string) string {
	if category == models.CategoryAll {
		return "All Categories"
	}
	return category
}
