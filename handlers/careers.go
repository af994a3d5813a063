package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerpath/webapp/api"
	"github.com/careerpath/webapp/catalog"
	"github.com/careerpath/webapp/views"
)

// Careers renders the catalog browser filtered by ?q= and ?category=
func (h *WebHandler) Careers(c *gin.Context) {
	criteria := catalog.Criteria{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: c.Query("category"),
	}

	result := h.loader.Load(c.Request.Context())
	page := views.NewCareersPage(result, criteria)

	status := http.StatusOK
	switch result.Outcome {
	case catalog.OutcomeUnreachable:
		status = http.StatusServiceUnavailable
		page.Alert = h.catalogAlert()
	case catalog.OutcomeFailed:
		status = http.StatusBadGateway
		page.Alert = h.catalogAlert()
	}

	h.logger.Debug("catalog rendered",
		zap.Stringer("outcome", result.Outcome),
		zap.Int("attempts", result.Attempts),
		zap.Int("total", page.Total),
		zap.Int("shown", page.Shown()))
	c.HTML(status, views.TemplateCareers, page)
}

func (h *WebHandler) catalogAlert() *views.Alert {
	return &views.Alert{
		Title: "Failed to load careers.",
		Lines: []string{fmt.Sprintf("Please check if backend server is running on %s", h.backend.BaseURL())},
	}
}

// CareerDetail renders one listing with its learning roadmap
func (h *WebHandler) CareerDetail(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.assembler.Assemble(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			h.message(c, http.StatusNotFound, views.MessagePage{
				Page:     views.Page{Title: "Career not found", Nav: "careers"},
				Message:  "Career not found.",
				LinkHref: "/careers",
				LinkText: "Back to Careers",
			})
			return
		}

		status := http.StatusBadGateway
		if api.IsUnreachable(err) {
			status = http.StatusServiceUnavailable
		}
		h.message(c, status, views.MessagePage{
			Page:     views.Page{Title: "Error", Nav: "careers"},
			Alert:    &views.Alert{Title: "Error loading career: " + api.Detail(err)},
			LinkHref: "/careers",
			LinkText: "Back to Careers",
		})
		return
	}

	c.HTML(http.StatusOK, views.TemplateCareerDetail, views.NewCareerDetailPage(detail))
}
