package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"foodtour/chat-svc/internal/domain"

	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	DefaultOpenAIURL   = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-4o-mini"
)

var ErrEmptyCompletion = errors.New("completion returned no choices")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenAIClient calls the chat completions endpoint.
type OpenAIClient struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	client      HTTPClient
	breaker     *gobreaker.CircuitBreaker[string]
}

func NewOpenAIClient(baseURL, apiKey, model string, client HTTPClient, breaker *gobreaker.CircuitBreaker[string]) *OpenAIClient {
	if baseURL == "" {
		baseURL = DefaultOpenAIURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &OpenAIClient{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		APIKey:      strings.TrimSpace(apiKey),
		Model:       model,
		Temperature: 0.7,
		MaxTokens:   600,
		client:      client,
		breaker:     breaker,
	}
}

type completionRequest struct {
	Model       string           `json:"model"`
	Messages    []domain.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message domain.Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenAIClient) Configured() bool {
	return c.APIKey != ""
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []domain.Message) (string, error) {
	if c.breaker == nil {
		return c.complete(ctx, messages)
	}
	return c.breaker.Execute(func() (string, error) {
		return c.complete(ctx, messages)
	})
}

func (c *OpenAIClient) complete(ctx context.Context, messages []domain.Message) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       c.Model,
		Messages:    messages,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	var body completionResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && body.Error != nil {
			return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, body.Error.Message)
		}
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode openai response: %w", decodeErr)
	}
	if body.Error != nil {
		return "", fmt.Errorf("openai error: %s", body.Error.Message)
	}
	if len(body.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return body.Choices[0].Message.Content, nil
}
