package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// LocalProvider implements Provider against a locally hosted model
// behind an OpenAI-style /v1/chat/completions endpoint (Ollama,
// llama.cpp server). No API key, no cost, works offline.
type LocalProvider struct {
	client *resty.Client
	model  string
}

// NewLocalProvider creates a provider for a local model server.
func NewLocalProvider(cfg LocalConfig) (*LocalProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("local provider base URL is required")
	}
	model := cfg.Model
	if model == "" {
		model = "llama3.2"
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &LocalProvider{client: client, model: model}, nil
}

type localChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type localChatRequest struct {
	Model       string             `json:"model"`
	Messages    []localChatMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens,omitempty"`
	Temperature float64            `json:"temperature"`
	Stream      bool               `json:"stream"`
}

type localChatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      localChatMessage `json:"message"`
		FinishReason string           `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (p *LocalProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	body := localChatRequest{
		Model:       p.model,
		Messages:    buildLocalMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	var parsed localChatResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&parsed).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests:
		return nil, &ErrRateLimit{Err: fmt.Errorf("local server: %s", resp.Status())}
	case resp.StatusCode() >= 400:
		return nil, &ErrProviderUnavailable{
			Err: fmt.Errorf("local server: %s", resp.Status()),
		}
	}

	if len(parsed.Choices) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("no choices in local server response"),
		}
	}

	content := json.RawMessage(parsed.Choices[0].Message.Content)

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	model := parsed.Model
	if model == "" {
		model = p.model
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
			TotalTokens:  parsed.Usage.TotalTokens,
		},
		Model:      model,
		StopReason: mapLocalStopReason(parsed.Choices[0].FinishReason),
	}, nil
}

func (p *LocalProvider) ModelID() string {
	return p.model
}

func buildLocalMessages(req Request) []localChatMessage {
	var messages []localChatMessage
	if req.System != "" {
		messages = append(messages, localChatMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "assistant"
		}
		messages = append(messages, localChatMessage{Role: role, Content: m.Content})
	}
	return messages
}

func mapLocalStopReason(reason string) string {
	if reason == "length" {
		return "max_tokens"
	}
	return "end"
}
