package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/trip-planner/trip-planner-service/internal/adapter/upstream"
	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// GroqName is the provider identifier for Groq.
const GroqName = "groq"

// OperationGroq is the retried operation name for a Groq call.
const OperationGroq = "groq chat completion"

// Groq generates text through Groq's OpenAI-compatible chat API.
type Groq struct {
	up      *upstream.Client
	apiKey  string
	baseURL string
	model   string
}

// NewGroq creates a Groq-backed generator.
func NewGroq(up *upstream.Client, apiKey, baseURL, model string) *Groq {
	return &Groq{
		up:      up,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Name returns the provider identifier.
func (g *Groq) Name() string {
	return GroqName
}

// GenerateText sends the prompt as a single user message.
func (g *Groq) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	body, err := g.up.FetchWithRetry(ctx, OperationGroq, upstream.Request{
		Endpoint:    GroqName,
		URL:         g.baseURL + "/chat/completions",
		Method:      http.MethodPost,
		Body:        payload,
		ContentType: "application/json",
		BearerToken: g.apiKey,
	})
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.NewProviderDataError(GroqName, fmt.Sprintf("decode response: %v", err))
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.NewProviderDataError(GroqName, "no content generated")
	}

	return resp.Choices[0].Message.Content, nil
}

// Close is a no-op; the shared upstream client owns the connections.
func (g *Groq) Close() error {
	return nil
}

var _ domain.TextGenerator = (*Groq)(nil)
