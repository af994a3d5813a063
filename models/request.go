package models

// ErrorResponse is the backend's error body
// @Description Standard error response
type ErrorResponse struct {
	Detail string `json:"detail" example:"Career not found"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// StatusResponse is returned from the backend root
// @Description API banner
type StatusResponse struct {
	Message string `json:"message" example:"CareerPath Recommender API"`
	Version string `json:"version" example:"1.0.0"`
	Status  string `json:"status" example:"running"`
}
