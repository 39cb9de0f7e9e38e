package upstream

import "net/http"

// StatusCategory classifies the outcome of a single upstream exchange.
type StatusCategory int

const (
	StatusSuccess StatusCategory = iota
	StatusRateLimited
	StatusClientError
	StatusServerError
	StatusTransportFailure
)

// String returns a log-friendly name for the category.
func (c StatusCategory) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusRateLimited:
		return "rate_limited"
	case StatusClientError:
		return "client_error"
	case StatusServerError:
		return "server_error"
	default:
		return "transport_failure"
	}
}

// Categorize maps an HTTP status code to its category.
// 503 and 429 are the only statuses worth retrying.
func Categorize(statusCode int) StatusCategory {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return StatusSuccess
	case statusCode == http.StatusServiceUnavailable, statusCode == http.StatusTooManyRequests:
		return StatusRateLimited
	case statusCode >= 400 && statusCode < 500:
		return StatusClientError
	case statusCode >= 500:
		return StatusServerError
	default:
		// 1xx and 3xx are not expected from JSON APIs
		return StatusClientError
	}
}
