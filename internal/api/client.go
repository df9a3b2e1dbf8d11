// Package api implements the prompt generation client on top of the Gemini
// API. It translates a single user turn plus conversation history into a
// schema-constrained generation request and returns a validated PromptResult.
package api

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/osoares/promptforge/internal/config"
	apierrors "github.com/osoares/promptforge/internal/errors"
	"github.com/osoares/promptforge/internal/logger"
	"github.com/osoares/promptforge/internal/models"
)

// DefaultModelName is the Gemini model used for prompt generation.
const DefaultModelName = "gemini-2.5-flash"

// Generator is the remote call boundary: one operation, generate a structured
// completion for the current turn given the prior history.
type Generator interface {
	Generate(ctx context.Context, text string, target models.TargetModel, history []models.Turn) (*models.PromptResult, error)
}

// Client talks to the Gemini API. The underlying SDK client is created
// lazily on the first request so construction never touches the network.
type Client struct {
	modelName string
	apiKey    func() string
	client    *genai.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithModelName overrides the Gemini model used for generation.
func WithModelName(name string) ClientOption {
	return func(c *Client) {
		if name != "" {
			c.modelName = name
		}
	}
}

// WithAPIKeyFunc overrides how the API key is resolved. The default reads
// GEMINI_API_KEY from the environment at call time.
func WithAPIKeyFunc(fn func() string) ClientOption {
	return func(c *Client) {
		c.apiKey = fn
	}
}

// NewClient creates a prompt generation client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		modelName: DefaultModelName,
		apiKey:    config.APIKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) initIfNeeded(ctx context.Context) error {
	if c.client != nil {
		return nil
	}

	key := c.apiKey()
	if key == "" {
		return apierrors.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	return nil
}

// Generate sends one turn to the remote model and returns the parsed result.
// A payload that cannot be parsed as the expected shape fails with
// ErrInvalidResponse; any error raised by the remote call itself propagates
// unchanged.
func (c *Client) Generate(ctx context.Context, text string, target models.TargetModel, history []models.Turn) (*models.PromptResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("prompt text cannot be empty")
	}

	if err := c.initIfNeeded(ctx); err != nil {
		return nil, err
	}

	contents := buildContents(text, target, history)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction(), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    ResponseSchema(),
	}

	logger.Debug("generate request", "model", c.modelName, "target", target, "history_turns", len(history))

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, cfg)
	if err != nil {
		logger.Debug("generate request failed", "error", err)
		return nil, err
	}

	payload := responseText(resp)
	if payload == "" {
		return nil, apierrors.ErrNoContent
	}

	result, err := ParsePromptResult(payload)
	if err != nil {
		return nil, err
	}

	logger.Debug("generate response parsed", "clarification", result.IsClarificationNeeded)
	return result, nil
}

// buildContents assembles the outbound message sequence: prior history tagged
// user/model, then one new user turn encoding the target label and the text.
func buildContents(text string, target models.TargetModel, history []models.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		var role genai.Role = genai.RoleUser
		if turn.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(ComposeTurn(text, target), genai.RoleUser))
	return contents
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" && !part.Thought {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}
