package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerpath/webapp/views"
)

// Results renders the recommendations handed over by the last submit
func (h *WebHandler) Results(c *gin.Context) {
	handoff, ok := h.sessions.Handoff(c)
	if !ok || !handoff.Result.HasRecommendations() {
		h.message(c, http.StatusOK, views.MessagePage{
			Page:     views.Page{Title: "No recommendations", Nav: "profile"},
			Message:  "No recommendations found.",
			LinkHref: "/profile",
			LinkText: "Go back to create profile",
		})
		return
	}

	c.HTML(http.StatusOK, views.TemplateResults, views.ResultsPage{
		Page:    views.Page{Title: "Your Career Recommendations", Nav: "profile"},
		Result:  handoff.Result,
		Profile: handoff.Profile,
	})
}
