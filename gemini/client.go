package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"go.uber.org/zap"

	"github.com/careerpath/webapp/models"
)

// generator is the part of *genai.GenerativeModel the client uses
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     generator
	modelName string
	logger    *zap.Logger
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, projectID, location, modelName string, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Some variety in wording, but stay on topic
	model.SetTemperature(0.7)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(1024)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text("You are a career guidance expert providing personalized career recommendations and detailed learning roadmaps.")},
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		client:    client,
		model:     model,
		modelName: modelName,
		logger:    logger,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// GenerateReasoning explains in two or three sentences why career fits profile
func (c *Client) GenerateReasoning(ctx context.Context, profile *models.UserProfile, career *models.CareerListing, score float64) (string, error) {
	prompt := fmt.Sprintf(`Analyze why this career path matches the user profile and provide a brief, personalized explanation (2-3 sentences).

User Profile:
- Skills: %s
- Interests: %s
- Experience: %d years
- Education: %s
- Goals: %s

Career: %s
Category: %s
Required Skills: %s
Match Score: %.0f%%

Provide a personalized explanation of why this career is a good fit. Return plain text only.`,
		strings.Join(head(profile.Skills, 10), ", "),
		strings.Join(head(profile.Interests, 5), ", "),
		profile.ExperienceYears,
		profile.EducationLevel,
		profile.Goals,
		career.Title,
		career.Category,
		strings.Join(head(career.RequiredSkills, 5), ", "),
		score*100,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}

// EnhanceRoadmap rewrites a career's base learning steps into more detailed,
// actionable ones
func (c *Client) EnhanceRoadmap(ctx context.Context, career *models.CareerListing, steps []string) ([]string, error) {
	var base strings.Builder
	for _, step := range steps {
		base.WriteString("- ")
		base.WriteString(step)
		base.WriteString("\n")
	}

	prompt := fmt.Sprintf(`For the career path "%s" in %s, provide a detailed learning roadmap.

Base steps:
%s
Provide the same roadmap but with more detailed, actionable steps.
Return a JSON object of the form {"steps": ["step one", "step two"]} without numbering.
Return ONLY the JSON object, no markdown formatting, no explanation.`, career.Title, career.Category, base.String())

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := cleanJSON(extractText(resp))
	enhanced, err := parseSteps(text)
	if err != nil {
		c.log().Warn("failed to parse roadmap response", zap.String("response", text), zap.Error(err))
		return nil, err
	}
	return enhanced, nil
}

// parseSteps reads {"steps": [...]} and falls back to one step per line
func parseSteps(text string) ([]string, error) {
	var payload struct {
		Steps []string `json:"steps"`
	}
	var candidates []string
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		candidates = payload.Steps
	} else {
		candidates = strings.Split(text, "\n")
	}

	var steps []string
	for _, step := range candidates {
		step = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(step), "-* "))
		if step != "" {
			steps = append(steps, step)
		}
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("roadmap response has no steps")
	}
	return steps, nil
}

// Helper functions

func (c *Client) log() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
