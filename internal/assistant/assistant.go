// Package assistant asks a chat completion model for template suggestions
// and text analysis.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/dtroode/agreement-server/internal/logger"
	"github.com/dtroode/agreement-server/internal/model"
)

// ErrUnavailable is returned when no suggestion can be produced.
var ErrUnavailable = fmt.Errorf("%w: no suggestion available", model.ErrIntegration)

// TemplateIndex resolves template display names.
type TemplateIndex interface {
	Names() []string
	ByName(name string) (model.Template, bool)
}

// Options configures the chat completion backend.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// HTTPClient overrides the transport; nil uses http.DefaultClient.
	HTTPClient *http.Client
}

var _ model.Assistant = (*Client)(nil)

// Client implements model.Assistant on top of the OpenAI chat API.
type Client struct {
	api       *openai.Client
	model     string
	timeout   time.Duration
	templates TemplateIndex
	logger    *logger.Logger
}

// New builds a Client. Without an API key every call fails with ErrUnavailable.
func New(opts Options, templates TemplateIndex, logger *logger.Logger) *Client {
	c := &Client{
		model:     opts.Model,
		timeout:   opts.Timeout,
		templates: templates,
		logger:    logger,
	}
	if c.model == "" {
		c.model = openai.GPT4o
	}
	if c.timeout <= 0 {
		c.timeout = 20 * time.Second
	}
	if opts.APIKey == "" {
		return c
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	c.api = openai.NewClientWithConfig(cfg)
	return c
}

// Enabled reports whether a backend is configured.
func (c *Client) Enabled() bool {
	return c.api != nil
}

type suggestionResponse struct {
	BestMatch   string   `json:"best_match"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation"`
	KeyTerms    []string `json:"key_terms"`
}

// SuggestTemplate picks the catalog template that best fits text.
func (c *Client) SuggestTemplate(ctx context.Context, text string) (model.Suggestion, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Suggestion{}, fmt.Errorf("%w: text is required", model.ErrInvalidInput)
	}

	var resp suggestionResponse
	if err := c.complete(ctx, suggestionPrompt(c.templates.Names(), text), &resp); err != nil {
		c.logger.Warn("Assistant: template suggestion failed", "error", err)
		return model.Suggestion{}, err
	}

	tmpl, ok := c.templates.ByName(resp.BestMatch)
	if !ok {
		c.logger.Warn("Assistant: suggested unknown template", "best_match", resp.BestMatch)
		return model.Suggestion{}, fmt.Errorf("%w: unknown template %q", ErrUnavailable, resp.BestMatch)
	}

	return model.Suggestion{
		TemplateID:  tmpl.ID,
		BestMatch:   tmpl.Name,
		Confidence:  clamp(resp.Confidence),
		Explanation: resp.Explanation,
		KeyTerms:    resp.KeyTerms,
	}, nil
}

// Analyze returns structured feedback on agreement text.
func (c *Client) Analyze(ctx context.Context, text string) (model.Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Analysis{}, fmt.Errorf("%w: text is required", model.ErrInvalidInput)
	}

	var resp model.Analysis
	if err := c.complete(ctx, analysisPrompt(text), &resp); err != nil {
		c.logger.Warn("Assistant: text analysis failed", "error", err)
		return model.Analysis{}, err
	}
	if resp.Summary == "" {
		return model.Analysis{}, fmt.Errorf("%w: analysis has no summary", ErrUnavailable)
	}
	return resp, nil
}

func (c *Client) complete(ctx context.Context, prompt string, out any) error {
	if c.api == nil {
		return fmt.Errorf("%w: assistant is not configured", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("%w: api error %d: %s", ErrUnavailable, apiErr.HTTPStatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return nil
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
