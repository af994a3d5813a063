package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIBaseURL is where the recommendation backend listens during local development
const DefaultAPIBaseURL = "http://localhost:8000"

// DefaultSessionSecret is only accepted with DEBUG on
const DefaultSessionSecret = "change-me-in-production"

// Config holds all configuration for the frontend and the reference backend
type Config struct {
	// Frontend
	Port       string
	APIBaseURL string

	// Server
	Debug bool

	// Outbound HTTP. Zero keeps the transport defaults.
	HTTPTimeoutSeconds int

	// Catalog browser
	CatalogRetryDelay time.Duration

	// Signed cookies and navigation handoff
	SessionSecret string
	SessionTTL    time.Duration
	HandoffTTL    time.Duration
	SecureCookies bool

	// Reference backend
	APIPort            string
	AllowedOrigins     []string
	ProjectID          string
	Location           string
	GeminiModel        string
	CatalogCollection  string
	CatalogSeedURL     string
	MaxRecommendations int
	MinMatchScore      float64
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Frontend
		Port:       getEnv("PORT", "3000"),
		APIBaseURL: strings.TrimRight(getEnv("CAREER_API_URL", DefaultAPIBaseURL), "/"),

		// Server
		Debug: getEnvBool("DEBUG", false),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 0),

		CatalogRetryDelay: getEnvDuration("CATALOG_RETRY_DELAY", 2*time.Second),

		SessionSecret: getEnv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    getEnvDuration("SESSION_TTL", 2*time.Hour),
		HandoffTTL:    getEnvDuration("HANDOFF_TTL", 30*time.Minute),
		SecureCookies: getEnvBool("SECURE_COOKIES", false),

		// Reference backend
		APIPort:            getEnv("API_PORT", "8000"),
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:3001"}),
		ProjectID:          getEnv("PROJECT_ID", ""),
		Location:           getEnv("LOCATION", "us-central1"),
		GeminiModel:        getEnv("GEMINI_MODEL", ""),
		CatalogCollection:  getEnv("CATALOG_COLLECTION", "careers"),
		CatalogSeedURL:     getEnv("CATALOG_SEED_URL", ""),
		MaxRecommendations: getEnvInt("MAX_RECOMMENDATIONS", 3),
		MinMatchScore:      getEnvFloat("MIN_MATCH_SCORE", 0.2),
	}

	return cfg
}

// ValidateWeb checks the settings the frontend needs
func (c *Config) ValidateWeb() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "CAREER_API_URL", Message: "CAREER_API_URL must be an absolute http(s) URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ConfigError{Field: "CAREER_API_URL", Message: "CAREER_API_URL must use http or https"}
	}
	if c.SessionSecret == "" {
		return &ConfigError{Field: "SESSION_SECRET", Message: "SESSION_SECRET is required to sign cookies"}
	}
	if c.SessionSecret == DefaultSessionSecret && !c.Debug {
		return &ConfigError{Field: "SESSION_SECRET", Message: "SESSION_SECRET must be set outside debug mode"}
	}
	if c.SessionTTL <= 0 || c.HandoffTTL <= 0 {
		return &ConfigError{Field: "SESSION_TTL", Message: "SESSION_TTL and HANDOFF_TTL must be positive"}
	}
	if c.HTTPTimeoutSeconds < 0 {
		return &ConfigError{Field: "HTTP_TIMEOUT_SECONDS", Message: "HTTP_TIMEOUT_SECONDS cannot be negative"}
	}
	if c.CatalogRetryDelay < 0 {
		return &ConfigError{Field: "CATALOG_RETRY_DELAY", Message: "CATALOG_RETRY_DELAY cannot be negative"}
	}
	return nil
}

// ValidateAPI checks the settings the reference backend needs
func (c *Config) ValidateAPI() error {
	// Gemini runs on Vertex AI, which is addressed by project
	if c.GeminiModel != "" && c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required when GEMINI_MODEL is set"}
	}
	if c.CatalogSeedURL != "" && !strings.HasPrefix(c.CatalogSeedURL, "gs://") {
		return &ConfigError{Field: "CATALOG_SEED_URL", Message: "CATALOG_SEED_URL must be a gs://bucket/object URL"}
	}
	if len(c.AllowedOrigins) == 0 {
		return &ConfigError{Field: "ALLOWED_ORIGINS", Message: "ALLOWED_ORIGINS needs at least one origin"}
	}
	if c.MaxRecommendations <= 0 {
		return &ConfigError{Field: "MAX_RECOMMENDATIONS", Message: "MAX_RECOMMENDATIONS must be positive"}
	}
	if c.MinMatchScore < 0 || c.MinMatchScore > 1 {
		return &ConfigError{Field: "MIN_MATCH_SCORE", Message: "MIN_MATCH_SCORE must be within [0,1]"}
	}
	return nil
}

// HTTPTimeout returns the outbound client timeout
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go duration strings ("2s", "30m")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
