package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash-exp"
	requestTimeout = 15 * time.Second
)

// Client defines the interface for acknowledgement text generation.
type Client interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

// NewClient creates a configured Gemini client. Empty model or baseURL fall
// back to the defaults. Calls are single-attempt with a fixed timeout; the
// caller decides how to degrade on failure.
func NewClient(apiKey, model, baseURL string) Client {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(requestTimeout)

	return &geminiClient{httpClient: client, apiKey: apiKey, model: model}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateReply sends a single-turn prompt to the generateContent endpoint
// and returns the first candidate's text.
func (c *geminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}

	var respBody generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))

	if err != nil {
		return "", fmt.Errorf("gemini api call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini api error: %s", resp.String())
	}
	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from gemini")
	}

	var sb strings.Builder
	for _, p := range respBody.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
