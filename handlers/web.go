package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerpath/webapp/catalog"
	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/roadmap"
	"github.com/careerpath/webapp/session"
	"github.com/careerpath/webapp/views"
)

// Backend is the remote recommendation service as the screens use it.
// *api.Client satisfies it.
type Backend interface {
	catalog.Source
	roadmap.Source
	SubmitProfile(ctx context.Context, profile models.UserProfile) (*models.RecommendationResult, error)
	BaseURL() string
}

// WebHandler serves the frontend's screens
type WebHandler struct {
	backend   Backend
	loader    *catalog.Loader
	assembler *roadmap.Assembler
	sessions  *session.Store
	logger    *zap.Logger
}

// NewWebHandler creates the screen handlers
func NewWebHandler(backend Backend, sessions *session.Store, catalogRetryDelay time.Duration, logger *zap.Logger) *WebHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebHandler{
		backend:   backend,
		loader:    catalog.NewLoader(backend, catalogRetryDelay, logger.Named("catalog")),
		assembler: roadmap.NewAssembler(backend, logger.Named("roadmap")),
		sessions:  sessions,
		logger:    logger,
	}
}

// Register mounts the screens and static assets on router
func (h *WebHandler) Register(router gin.IRouter) {
	router.StaticFS("/static", http.FS(views.Static()))

	router.GET("/", h.Home)
	router.GET("/health", HealthCheck)
	router.GET("/profile", h.ShowProfile)
	router.POST("/profile", h.UpdateProfile)
	router.GET("/results", h.Results)
	router.GET("/careers", h.Careers)
	router.GET("/careers/:id", h.CareerDetail)
}

// Home renders the landing page
func (h *WebHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, views.TemplateHome, views.NewHomePage())
}

// HealthCheck returns the health status of the frontend
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// message renders a short notice page
func (h *WebHandler) message(c *gin.Context, status int, page views.MessagePage) {
	c.HTML(status, views.TemplateMessage, page)
}
