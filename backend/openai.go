package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	indictrans "github.com/arhrid/indic-translator-sub001"
	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements Backend using a hosted chat-completion API.
type OpenAIBackend struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI backend.
type OpenAIConfig struct {
	APIKey      string  // API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.2)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIBackend creates a new OpenAI backend.
func NewOpenAIBackend(cfg OpenAIConfig) *OpenAIBackend {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	// Low temperature keeps repeated translations close to deterministic.
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAIBackend{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a single text using the chat-completion API.
func (b *OpenAIBackend) Translate(ctx context.Context, req Request) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: b.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: req.Text},
		},
		Temperature: b.temperature,
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", indictrans.NewBackendError(indictrans.KindBackendBadResponse,
			"empty completion from backend", nil)
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", indictrans.NewBackendError(indictrans.KindBackendBadResponse,
			"backend returned no translated text", nil)
	}

	return translated, nil
}

func (b *OpenAIBackend) buildSystemPrompt(req Request) string {
	sourceName := indictrans.LanguageName(req.SourceLang)
	targetName := indictrans.LanguageName(req.TargetLang)

	return fmt.Sprintf(`You are an expert translator between %s and %s.

Translate the user's message from %s to %s.
- Be faithful to the original meaning, tone, and register.
- Preserve punctuation, numbers, names, and meaningful whitespace.
- Do not add explanations, transliterations, or quotation marks.
- Respond with the translation only.`, sourceName, targetName, sourceName, targetName)
}

// classifyOpenAIError maps SDK failures onto the error taxonomy: transport
// failures become timeout/unavailable, API-level errors (any HTTP status the
// server actually produced) become bad-response.
func classifyOpenAIError(err error) error {
	if kind, ok := classifyTransportError(err); ok {
		return indictrans.NewBackendError(kind, "completion API call failed", err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return indictrans.NewBackendError(indictrans.KindBackendBadResponse,
			fmt.Sprintf("completion API returned status %d", apiErr.HTTPStatusCode), err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return indictrans.NewBackendError(indictrans.KindBackendBadResponse,
			fmt.Sprintf("completion API returned status %d", reqErr.HTTPStatusCode), err)
	}

	return indictrans.NewBackendError(indictrans.KindBackendUnavailable,
		"completion API call failed", err)
}

// Verify OpenAIBackend implements Backend
var _ Backend = (*OpenAIBackend)(nil)
