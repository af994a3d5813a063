// Package api is the frontend's client for the recommendation backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/careerpath/webapp/models"
)

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 4 << 20

// Client translates the four domain operations into backend HTTP calls.
// It does not retry or cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a backend client rooted at baseURL
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// BaseURL returns the backend address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCareers fetches the full career catalog
func (c *Client) ListCareers(ctx context.Context) ([]models.CareerListing, error) {
	var careers []models.CareerListing
	if err := c.do(ctx, "list careers", http.MethodGet, "/careers", nil, nil, &careers); err != nil {
		return nil, err
	}
	c.logger.Debug("careers loaded", zap.Int("count", len(careers)))
	return careers, nil
}

// GetCareer fetches one catalog entry
func (c *Client) GetCareer(ctx context.Context, id string) (*models.CareerListing, error) {
	var career models.CareerListing
	if err := c.do(ctx, "get career", http.MethodGet, "/careers/"+url.PathEscape(id), nil, nil, &career); err != nil {
		return nil, err
	}
	return &career, nil
}

// SearchCareers runs the backend's catalog search
func (c *Client) SearchCareers(ctx context.Context, query string) ([]models.CareerListing, error) {
	var careers []models.CareerListing
	params := url.Values{"q": []string{query}}
	if err := c.do(ctx, "search careers", http.MethodGet, "/careers/search", params, nil, &careers); err != nil {
		return nil, err
	}
	return careers, nil
}

// SubmitProfile asks the backend for recommendations
func (c *Client) SubmitProfile(ctx context.Context, profile models.UserProfile) (*models.RecommendationResult, error) {
	// The backend expects lists, never null
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}

	var result models.RecommendationResult
	if err := c.do(ctx, "submit profile", http.MethodPost, "/recommendations", nil, profile, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRoadmap fetches the authoritative learning roadmap for a career
func (c *Client) GetRoadmap(ctx context.Context, careerID string) (*models.RoadmapView, error) {
	var roadmap models.RoadmapView
	path := "/careers/" + url.PathEscape(careerID) + "/roadmap"
	if err := c.do(ctx, "get roadmap", http.MethodGet, path, nil, nil, &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	err := c.roundTrip(ctx, op, method, path, query, body, out)
	if err != nil {
		c.logger.Warn("backend call failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if transportFailure(err) {
			return fmt.Errorf("%s: %w at %s: %w", op, ErrServiceUnreachable, c.baseURL, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if transportFailure(err) {
			return fmt.Errorf("%s: %w at %s: %w", op, ErrServiceUnreachable, c.baseURL, err)
		}
		return fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(data),
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrMalformedResponse, err)
	}
	return nil
}
