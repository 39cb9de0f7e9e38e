package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/trip-planner/trip-planner-service/internal/adapter/upstream"
	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// GeminiName is the provider identifier for Google Gemini.
const GeminiName = "gemini"

// OperationGemini is the retried operation name for a Gemini call.
const OperationGemini = "gemini generate content"

// maxErrorBody bounds how much of an overload response is kept as detail.
const maxErrorBody = 512

// contentGenerator is satisfied by *genai.GenerativeModel.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini generates text with the Google Gemini SDK.
type Gemini struct {
	client *genai.Client
	model  contentGenerator
	up     *upstream.Client
}

// NewGemini creates a Gemini-backed generator. The SDK talks through
// exchangeTransport, so every attempt made under the shared retry policy is a
// single HTTP exchange.
func NewGemini(ctx context.Context, up *upstream.Client, apiKey, model string, opts ...option.ClientOption) (*Gemini, error) {
	httpClient := &http.Client{Transport: &exchangeTransport{base: http.DefaultTransport, apiKey: apiKey}}
	opts = append([]option.ClientOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
	}, opts...)

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.SetTemperature(0.4)

	return &Gemini{client: client, model: m, up: up}, nil
}

// Name returns the provider identifier.
func (g *Gemini) Name() string {
	return GeminiName
}

// GenerateText sends the prompt under the shared retry policy.
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	return upstream.Execute(ctx, g.up, OperationGemini, func(ctx context.Context) (string, error) {
		callCtx, cancel := g.up.CallContext(ctx)
		defer cancel()

		resp, err := g.model.GenerateContent(callCtx, genai.Text(prompt))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			return "", classifyGeminiError(err)
		}
		return textFromResponse(resp)
	})
}

// Close closes the underlying Gemini client.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// exchangeTransport authenticates SDK requests with the API key, which the SDK
// drops once a custom HTTP client is supplied. Overload and rate-limit
// responses come back as transport errors; the SDK's own retryer only retries
// on status codes, so it gives up after one exchange.
type exchangeTransport struct {
	base   http.RoundTripper
	apiKey string
}

// RoundTrip implements http.RoundTripper.
func (t *exchangeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("x-goog-api-key", t.apiKey)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if upstream.Categorize(resp.StatusCode) != upstream.StatusRateLimited {
		return resp, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return nil, domain.NewTransientUpstreamError(GeminiName, resp.StatusCode, strings.TrimSpace(string(body)))
}

// classifyGeminiError marks overload and quota errors as transient.
func classifyGeminiError(err error) error {
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return upErr
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusServiceUnavailable, http.StatusTooManyRequests:
			return domain.NewTransientUpstreamError(GeminiName, apiErr.Code, apiErr.Message)
		default:
			return domain.NewUpstreamError(GeminiName, apiErr.Code, apiErr.Message, err)
		}
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable:
			return domain.NewTransientUpstreamError(GeminiName, http.StatusServiceUnavailable, st.Message())
		case codes.ResourceExhausted:
			return domain.NewTransientUpstreamError(GeminiName, http.StatusTooManyRequests, st.Message())
		}
	}

	return domain.NewUpstreamError(GeminiName, 0, "", err)
}

// textFromResponse joins the text parts of the first candidate.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", domain.NewProviderDataError(GeminiName, "response has no candidates")
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", domain.NewProviderDataError(GeminiName, "candidate has no content")
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", domain.NewProviderDataError(GeminiName, "candidate has no text")
	}

	return sb.String(), nil
}

var _ domain.TextGenerator = (*Gemini)(nil)
