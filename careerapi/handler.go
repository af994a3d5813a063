// Package careerapi serves the career catalog and recommendation API the
// web frontend talks to.
package careerapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/recommender"
	"github.com/careerpath/webapp/storage"
)

// Version is reported by the root and health endpoints
const Version = "1.0.0"

// Handler serves the backend routes
type Handler struct {
	engine *recommender.Engine
	logger *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(engine *recommender.Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, logger: logger}
}

// Register mounts the API routes
func (h *Handler) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.HealthCheck)
	router.GET("/careers", h.ListCareers)
	router.GET("/careers/search", h.SearchCareers)
	router.GET("/careers/:id", h.GetCareer)
	router.GET("/careers/:id/roadmap", h.GetRoadmap)
	router.POST("/recommendations", h.Recommend)
}

// Root reports that the API is up
// @Summary API banner
// @Tags System
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{
		Message: "CareerPath Recommender API",
		Version: Version,
		Status:  "running",
	})
}

// HealthCheck returns server health
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ListCareers returns the whole catalog
// @Summary List careers
// @Description Returns every career in the catalog, in catalog order
// @Tags Careers
// @Produce json
// @Success 200 {array} models.CareerListing
// @Failure 500 {object} models.ErrorResponse
// @Router /careers [get]
func (h *Handler) ListCareers(c *gin.Context) {
	careers, err := h.engine.Careers(c.Request.Context())
	if err != nil {
		h.fail(c, "list careers", err, "Error loading careers")
		return
	}
	c.JSON(http.StatusOK, nonNilListings(careers))
}

// SearchCareers filters the catalog by a free-text query
// @Summary Search careers
// @Description Case-insensitive match on title, description, category and required skills. An empty query returns everything.
// @Tags Careers
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} models.CareerListing
// @Failure 500 {object} models.ErrorResponse
// @Router /careers/search [get]
func (h *Handler) SearchCareers(c *gin.Context) {
	careers, err := h.engine.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, "search careers", err, "Error searching careers")
		return
	}
	c.JSON(http.StatusOK, nonNilListings(careers))
}

// GetCareer returns a single career
// @Summary Get career
// @Tags Careers
// @Produce json
// @Param id path string true "Career ID"
// @Success 200 {object} models.CareerListing
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /careers/{id} [get]
func (h *Handler) GetCareer(c *gin.Context) {
	career, err := h.engine.Career(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrCareerNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Career not found"})
		return
	}
	if err != nil {
		h.fail(c, "get career", err, "An unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, career)
}

// GetRoadmap returns the learning roadmap for a career
// @Summary Get learning roadmap
// @Description Learning steps for a career, AI-enhanced when a model is configured
// @Tags Careers
// @Produce json
// @Param id path string true "Career ID"
// @Success 200 {object} models.RoadmapView
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /careers/{id}/roadmap [get]
func (h *Handler) GetRoadmap(c *gin.Context) {
	id := c.Param("id")
	roadmap, err := h.engine.Roadmap(c.Request.Context(), id)
	if errors.Is(err, storage.ErrCareerNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Detail: fmt.Sprintf("Career with id '%s' not found", id),
		})
		return
	}
	if err != nil {
		h.fail(c, "get roadmap", err, "Error generating roadmap")
		return
	}
	c.JSON(http.StatusOK, roadmap)
}

// Recommend ranks careers for a submitted profile
// @Summary Get recommendations
// @Description Scores every catalog career against the profile and returns the best matches with reasoning
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.UserProfile true "Career profile"
// @Success 200 {object} models.RecommendationResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recommendations [post]
func (h *Handler) Recommend(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request body"})
		return
	}
	if err := profile.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: err.Error()})
		return
	}

	result, err := h.engine.Recommend(c.Request.Context(), profile)
	if err != nil {
		h.fail(c, "recommend", err, "Error generating recommendations")
		return
	}
	if result.Recommendations == nil {
		result.Recommendations = []models.Recommendation{}
	}
	c.JSON(http.StatusOK, result)
}

// fail logs err and answers 500 with a prefixed detail
func (h *Handler) fail(c *gin.Context, op string, err error, prefix string) {
	h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Detail: fmt.Sprintf("%s: %v", prefix, err),
	})
}

func nonNilListings(listings []models.CareerListing) []models.CareerListing {
	if listings == nil {
		return []models.CareerListing{}
	}
	return listings
}
