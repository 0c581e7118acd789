// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bramblevc/pitch-engine/internal/httputil"
	"github.com/bramblevc/pitch-engine/pkg/types"
)

// perplexityAPIURL is the Perplexity chat-completions endpoint. Package-level
// var for test substitution.
var perplexityAPIURL = "https://api.perplexity.ai/chat/completions"

// Backend answers a single research query. The Perplexity implementation is
// the production backend; tests supply a mock.
type Backend interface {
	Name() string
	Query(ctx context.Context, query string) (Answer, error)
}

// Answer is one research API response: the prose plus any cited sources.
type Answer struct {
	Text      string
	Citations []string
}

// PerplexityBackend queries the Perplexity API.
type PerplexityBackend struct {
	APIKey string
	Config types.ResearchConfig
	Client *http.Client
}

// Name returns the backend identifier.
func (b *PerplexityBackend) Name() string { return "perplexity" }

// perplexityRequest is the request body for the chat-completions endpoint.
type perplexityRequest struct {
	Model       string              `json:"model"`
	Messages    []perplexityMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

// perplexityMessage is a single chat message.
type perplexityMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// perplexityResponse is the subset of the response body the pipeline uses.
// Citations sit at the top level, outside the OpenAI-compatible choices.
type perplexityResponse struct {
	Choices   []perplexityChoice `json:"choices"`
	Citations []string           `json:"citations"`
}

type perplexityChoice struct {
	Message perplexityMessage `json:"message"`
}

// Query sends one research query and returns the answer prose and citations.
func (b *PerplexityBackend) Query(ctx context.Context, query string) (Answer, error) {
	model := b.Config.Model
	if model == "" {
		model = "sonar-pro"
	}
	maxTokens := b.Config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2500
	}
	temperature := b.Config.Temperature
	if temperature <= 0 {
		temperature = 0.1
	}

	reqBody := perplexityRequest{
		Model:       model,
		Messages:    []perplexityMessage{{Role: "user", Content: query}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return Answer{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, perplexityAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return Answer{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)
	if b.Config.UserAgent != "" {
		req.Header.Set("User-Agent", b.Config.UserAgent)
	}

	client := b.Client
	if client == nil {
		timeout := b.Config.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, b.Config.MaxRetries)
	if err != nil {
		return Answer{}, fmt.Errorf("calling Perplexity API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Answer{}, fmt.Errorf("Perplexity API returned %d: %s", resp.StatusCode, string(body))
	}

	var pResp perplexityResponse
	if err := json.NewDecoder(resp.Body).Decode(&pResp); err != nil {
		return Answer{}, fmt.Errorf("decoding Perplexity response: %w", err)
	}

	if len(pResp.Choices) == 0 {
		return Answer{}, fmt.Errorf("Perplexity API returned no choices")
	}

	return Answer{
		Text:      pResp.Choices[0].Message.Content,
		Citations: pResp.Citations,
	}, nil
}
