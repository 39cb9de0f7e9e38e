package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 10 << 20

// Request describes one outbound call.
type Request struct {
	// Endpoint is a short label used in errors and logs (e.g., "amadeus flight-offers")
	Endpoint string

	URL         string
	Method      string
	Body        []byte
	ContentType string

	// BearerToken is sent as an Authorization header when non-empty
	BearerToken string

	// Headers holds extra request headers
	Headers map[string]string
}

// Response is the raw outcome of a completed exchange.
type Response struct {
	StatusCode int
	Category   StatusCategory
	Body       []byte
}

// Transport performs exactly one network exchange.
// It returns an error only when no HTTP response was received.
type Transport interface {
	RoundTrip(ctx context.Context, req Request) (Response, error)
}

// HTTPTransport is a Transport backed by net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport. A nil client uses http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// RoundTrip sends the request and reads the full response body.
func (t *HTTPTransport) RoundTrip(ctx context.Context, req Request) (Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if req.BearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.BearerToken)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read response body: %w", err)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Category:   Categorize(resp.StatusCode),
		Body:       data,
	}, nil
}

var _ Transport = (*HTTPTransport)(nil)
