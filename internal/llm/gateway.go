package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	chatCompletionsPath = "/chat/completions"
	defaultMaxTokens    = 8192
)

// shared HTTP client for gateway calls
var gatewayHTTPClient = &http.Client{
	Timeout: 120 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for outbound gateway calls (50 requests/second with burst capacity of 10)
var gatewayRateLimiter = rate.NewLimiter(50, 10)

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type GatewayConfig struct {
	APIKey    string
	BaseURL   string // e.g., "https://ai.gateway.lovable.dev/v1"
	Model     string // e.g., "google/gemini-2.5-flash"
	MaxTokens int
}

// GatewayClient talks to an OpenAI-compatible chat completions endpoint
type GatewayClient struct {
	config     GatewayConfig
	httpClient *http.Client
}

func NewGatewayClient(config GatewayConfig) *GatewayClient {
	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}

	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	return &GatewayClient{
		config:     config,
		httpClient: gatewayHTTPClient,
	}
}

func (g *GatewayClient) Model() string {
	return g.config.Model
}

func (g *GatewayClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	messages := make([]message, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		messages = append(messages, message{Role: "system", Content: req.SystemPrompt})
	}

	for _, msg := range req.Messages {
		messages = append(messages, message(msg))
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.config.MaxTokens
	}

	reqBody := chatRequest{
		Model:     g.config.Model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.config.BaseURL+chatCompletionsPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.config.APIKey))

	// rate limiting
	if err := gatewayRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	// a single rejection is terminal for the caller - no retry or backoff here
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, ErrPaymentRequired
	default:
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var apiResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return nil, ErrNoContent
	}

	return &CompletionResponse{
		Text: strings.TrimSpace(apiResp.Choices[0].Message.Content),
		Usage: Usage{
			InputTokens:  apiResp.Usage.PromptTokens,
			OutputTokens: apiResp.Usage.CompletionTokens,
		},
	}, nil
}
