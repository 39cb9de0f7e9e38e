// Package integration provides helpers and integration tests for the trip planner.
// Integration tests run the real adapters, use case and HTTP layer against a
// fake upstream that serves the Amadeus, Groq and weather endpoints.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-planner/trip-planner-service/internal/adapter/http"
	"github.com/trip-planner/trip-planner-service/internal/adapter/http/middleware"
	"github.com/trip-planner/trip-planner-service/internal/adapter/llm"
	"github.com/trip-planner/trip-planner-service/internal/adapter/pdf"
	"github.com/trip-planner/trip-planner-service/internal/adapter/provider/amadeus"
	"github.com/trip-planner/trip-planner-service/internal/adapter/upstream"
	"github.com/trip-planner/trip-planner-service/internal/adapter/weather"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/timeutil"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
)

// Fake upstream paths.
const (
	tokenPath    = "/v1/security/oauth2/token"
	offersPath   = "/v2/shopping/flight-offers"
	groqBasePath = "/openai/v1"
	chatPath     = groqBasePath + "/chat/completions"
	weatherBase  = "/weather/v1"
	forecastPath = weatherBase + "/forecast.json"
)

// Answer is a scripted model reply for prompts containing Marker.
type Answer struct {
	Marker string
	Text   string
}

// FakeUpstream serves every outbound dependency of the trip planner.
// Status fields other than zero make the endpoint fail with that status.
type FakeUpstream struct {
	Server *httptest.Server

	OffersBody     []byte
	OffersStatus   int
	TokenStatus    int
	ChatStatus     int
	ForecastBody   []byte
	ForecastStatus int

	mu      sync.Mutex
	answers []Answer
	prompts []string

	tokenCalls    atomic.Int32
	offersCalls   atomic.Int32
	chatCalls     atomic.Int32
	forecastCalls atomic.Int32
}

// NewFakeUpstream starts a fake upstream; it is closed when the test ends.
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{}
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, f.handleToken)
	mux.HandleFunc(offersPath, f.handleOffers)
	mux.HandleFunc(chatPath, f.handleChat)
	mux.HandleFunc(forecastPath, f.handleForecast)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// WithAnswers appends scripted model answers. The first matching marker wins.
func (f *FakeUpstream) WithAnswers(answers ...Answer) *FakeUpstream {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, answers...)
	return f
}

// Prompts returns the prompts received by the chat endpoint.
func (f *FakeUpstream) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.prompts))
	copy(out, f.prompts)
	return out
}

// TokenCalls returns the number of token requests served.
func (f *FakeUpstream) TokenCalls() int { return int(f.tokenCalls.Load()) }

// OffersCalls returns the number of flight-offers requests served.
func (f *FakeUpstream) OffersCalls() int { return int(f.offersCalls.Load()) }

// ChatCalls returns the number of chat completion requests served.
func (f *FakeUpstream) ChatCalls() int { return int(f.chatCalls.Load()) }

// ForecastCalls returns the number of forecast requests served.
func (f *FakeUpstream) ForecastCalls() int { return int(f.forecastCalls.Load()) }

func (f *FakeUpstream) handleToken(w http.ResponseWriter, r *http.Request) {
	f.tokenCalls.Add(1)
	if f.TokenStatus != 0 {
		writeJSON(w, f.TokenStatus, map[string]string{"error": "invalid_client"})
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": "test-token",
		"token_type":   "Bearer",
		"expires_in":   1799,
	})
}

func (f *FakeUpstream) handleOffers(w http.ResponseWriter, r *http.Request) {
	f.offersCalls.Add(1)
	if r.Header.Get("Authorization") != "Bearer test-token" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing token"})
		return
	}
	if f.OffersStatus != 0 {
		writeJSON(w, f.OffersStatus, map[string]string{"error": "overloaded"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(f.OffersBody)
}

func (f *FakeUpstream) handleChat(w http.ResponseWriter, r *http.Request) {
	f.chatCalls.Add(1)

	var req struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	prompt := req.Messages[0].Content

	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	answers := f.answers
	f.mu.Unlock()

	if f.ChatStatus != 0 {
		writeJSON(w, f.ChatStatus, map[string]string{"error": "model overloaded"})
		return
	}

	for _, a := range answers {
		if strings.Contains(prompt, a.Marker) {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": a.Text}},
				},
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"choices": []interface{}{}})
}

func (f *FakeUpstream) handleForecast(w http.ResponseWriter, r *http.Request) {
	f.forecastCalls.Add(1)
	if f.ForecastStatus != 0 {
		writeJSON(w, f.ForecastStatus, map[string]interface{}{
			"error": map[string]interface{}{"code": 1006, "message": "No matching location found."},
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(f.ForecastBody)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Stack is the fully wired application under test.
type Stack struct {
	Echo     *echo.Echo
	UseCase  usecase.TripPlannerUseCase
	Upstream *FakeUpstream
	Sleeper  *timeutil.RecordingSleeper
}

// NewStack wires the real adapters against up. Retry waits are recorded,
// not slept.
func NewStack(t *testing.T, up *FakeUpstream) *Stack {
	t.Helper()

	log := logger.Nop()
	sleeper := timeutil.NewRecordingSleeper()

	cfg := upstream.DefaultConfig()
	cfg.CallTimeout = 5 * time.Second
	cfg.Retry = cfg.Retry.WithSleeper(sleeper)
	client := upstream.NewClient(upstream.NewHTTPTransport(nil), cfg, log)

	text, err := llm.New(context.Background(), llm.Config{
		Provider:    llm.GroqName,
		GroqAPIKey:  "groq-test-key",
		GroqBaseURL: up.Server.URL + groqBasePath,
		GroqModel:   "llama-3.3-70b-versatile",
	}, client)
	if err != nil {
		t.Fatalf("create text generator: %v", err)
	}
	t.Cleanup(func() { _ = text.Close() })

	uc := usecase.NewTripPlannerUseCase(usecase.Dependencies{
		Flights: amadeus.NewAdapter(client, amadeus.Config{
			BaseURL:      up.Server.URL,
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			CurrencyCode: "INR",
		}, log),
		Text:     text,
		Weather:  weather.NewClient(client, "weather-key", up.Server.URL+weatherBase),
		Renderer: pdf.NewRenderer(timeutil.NewMockClock(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))),
	}, &usecase.Config{OperationTimeout: 10 * time.Second})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log)
	httpAdapter.RegisterRoutes(e, httpAdapter.NewTripHandler(uc))

	return &Stack{Echo: e, UseCase: uc, Upstream: up, Sleeper: sleeper}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (s *Stack) Do(req Request) Response {
	var body []byte
	if req.Body != nil {
		body, _ = json.Marshal(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Post sends body as JSON to path.
func (s *Stack) Post(path string, body interface{}) Response {
	return s.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// Get requests path.
func (s *Stack) Get(path string) Response {
	return s.Do(Request{Method: http.MethodGet, Path: path})
}

// envelope mirrors the API response envelope with a typed payload.
type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// Decode parses the response envelope.
func Decode[T any](t *testing.T, r Response) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(r.Body, &env); err != nil {
		t.Fatalf("decode response %q: %v", r.Body, err)
	}
	return env
}

// SearchBody is a flight search request body.
type SearchBody struct {
	Origin        string                 `json:"origin"`
	Destination   string                 `json:"destination"`
	DepartureDate string                 `json:"departureDate"`
	Passengers    int                    `json:"passengers"`
	Filters       map[string]interface{} `json:"filters,omitempty"`
}

// DefaultSearchBody returns a valid Bengaluru to Goa search.
func DefaultSearchBody() SearchBody {
	return SearchBody{
		Origin:        "Bengaluru",
		Destination:   "Goa",
		DepartureDate: "2025-06-01",
		Passengers:    1,
	}
}

// ItineraryBody is an itinerary generation request body.
type ItineraryBody struct {
	Destination        string  `json:"destination"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	PartySize          int     `json:"partySize"`
	Budget             float64 `json:"budget,omitempty"`
	AccommodationLabel string  `json:"accommodationLabel"`
}

// DefaultItineraryBody returns a valid two-day Goa trip.
func DefaultItineraryBody() ItineraryBody {
	return ItineraryBody{
		Destination:        "Goa",
		StartDate:          "2025-06-01",
		EndDate:            "2025-06-02",
		PartySize:          2,
		Budget:             40000,
		AccommodationLabel: "Taj Fort Aguada Resort",
	}
}

// Prompt markers for the scripted model.
const (
	MarkerItinerary = "travel itinerary"
	MarkerHotels    = "Suggest 3 good hotels"
)

// AirportAnswer answers the airport prompt for city with code.
func AirportAnswer(city, code string) Answer {
	return Answer{Marker: "'" + city + "'", Text: code}
}
