// Package catalog derives the career browser's view of the backend catalog.
package catalog

import (
	"strings"

	"github.com/careerpath/webapp/models"
)

// Criteria narrows the catalog. Zero value matches everything.
type Criteria struct {
	Query    string
	Category string
}

// Active reports whether any filter is set
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Query) != "" || !isAllCategories(c.Category)
}

// Filter returns the listings matching both the category and the query.
// The source slice is never modified.
func Filter(listings []models.CareerListing, criteria Criteria) []models.CareerListing {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	filtered := make([]models.CareerListing, 0, len(listings))

	for _, listing := range listings {
		if !isAllCategories(criteria.Category) && listing.Category != criteria.Category {
			continue
		}
		if query != "" && !Matches(listing, query) {
			continue
		}
		filtered = append(filtered, listing)
	}
	return filtered
}

// Matches reports whether a lower-cased query occurs in the listing's
// title, description, category or any required skill
func Matches(listing models.CareerListing, query string) bool {
	if strings.Contains(strings.ToLower(listing.Title), query) ||
		strings.Contains(strings.ToLower(listing.Description), query) ||
		strings.Contains(strings.ToLower(listing.Category), query) {
		return true
	}
	for _, skill := range listing.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

func isAllCategories(category string) bool {
	return category == "" || category == models.CategoryAll
}
