package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerpath/webapp/api"
	"github.com/careerpath/webapp/session"
	"github.com/careerpath/webapp/views"
	"github.com/careerpath/webapp/wizard"
)

// ShowProfile renders the wizard at the visitor's current step
func (h *WebHandler) ShowProfile(c *gin.Context) {
	state := h.sessions.LoadWizard(c)
	c.HTML(http.StatusOK, views.TemplateProfile, views.NewProfilePage(state))
}

// UpdateProfile applies one wizard action. Every action except a
// successful submit redirects back to the wizard.
func (h *WebHandler) UpdateProfile(c *gin.Context) {
	state := h.sessions.LoadWizard(c)
	state.Apply(wizard.Fields{
		EducationLevel:  c.PostForm("education_level"),
		ExperienceYears: c.PostForm("experience_years"),
		CurrentRole:     c.PostForm("current_role"),
		Goals:           c.PostForm("goals"),
		Location:        c.PostForm("location"),
	})

	action, value := parseAction(c.PostForm("action"))
	switch action {
	case wizard.ActionSubmit:
		if state.CanSubmit() {
			h.submit(c, state)
			return
		}
	case wizard.ActionAddSkill:
		if value == "" {
			value = c.PostForm("skill")
		}
	case wizard.ActionAddInterest:
		if value == "" {
			value = c.PostForm("interest")
		}
	}

	if action != wizard.ActionSubmit && !state.Handle(action, value) {
		h.logger.Debug("ignoring unknown wizard action", zap.String("action", string(action)))
	}

	if err := h.sessions.SaveWizard(c, state); err != nil {
		h.logger.Error("failed to save wizard state", zap.Error(err))
		_ = c.Error(err)
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// submit sends the finished profile to the backend and hands the result to
// the results screen
func (h *WebHandler) submit(c *gin.Context, state *wizard.State) {
	result, err := h.backend.SubmitProfile(c.Request.Context(), state.Profile)
	if err != nil {
		h.logger.Error("error getting recommendations", zap.Error(err))

		// Keep what the visitor typed on the goals step
		if saveErr := h.sessions.SaveWizard(c, state); saveErr != nil {
			h.logger.Error("failed to save wizard state", zap.Error(saveErr))
		}

		page := views.NewProfilePage(state)
		status := http.StatusBadGateway
		if api.IsUnreachable(err) {
			status = http.StatusServiceUnavailable
			page.Alert = h.unreachableAlert()
		} else {
			page.Alert = h.failureAlert(err)
		}
		c.HTML(status, views.TemplateProfile, page)
		return
	}

	handoff := session.Handoff{Result: *result, Profile: state.Profile}
	if err := h.sessions.PutHandoff(c, handoff); err != nil {
		h.logger.Error("failed to store recommendations", zap.Error(err))
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, views.TemplateProfile, views.NewProfilePage(state))
		return
	}
	h.sessions.ClearWizard(c)

	h.logger.Info("recommendations received",
		zap.Int("count", len(result.Recommendations)),
		zap.Int("skills", len(state.Profile.Skills)))
	c.Redirect(http.StatusSeeOther, "/results")
}

func (h *WebHandler) unreachableAlert() *views.Alert {
	return &views.Alert{
		Title: "Backend server is not running!",
		Lines: []string{
			fmt.Sprintf("Could not reach the recommendation service at %s.", h.backend.BaseURL()),
			"Please:",
			"1. Open a terminal",
			"2. cd to the project directory",
			"3. go run ./cmd/careerapi",
			"Then try again.",
		},
	}
}

func (h *WebHandler) failureAlert(err error) *views.Alert {
	return &views.Alert{
		Title: "Error: " + api.Detail(err),
		Lines: []string{
			"Please check:",
			fmt.Sprintf("1. Backend server is running on %s", h.backend.BaseURL()),
			"2. Check the server logs for details",
		},
	}
}

// parseAction splits a button value such as "add_skill:Python" into the
// action and its argument
func parseAction(raw string) (wizard.Action, string) {
	name, value, _ := strings.Cut(raw, ":")
	return wizard.Action(strings.TrimSpace(name)), value
}
