// Package amadeus implements domain.FlightOfferProvider against the Amadeus
// Self-Service flight-offers API.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/trip-planner/trip-planner-service/internal/adapter/upstream"
	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// Retried operation names.
const (
	OperationToken  = "amadeus token"
	OperationSearch = "amadeus flight search"
)

const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"
)

// Config holds the provider's static settings.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	CurrencyCode string
	MaxOffers    int
}

// Adapter searches flight offers. It authenticates on every search and
// keeps no token between calls.
type Adapter struct {
	client *upstream.Client
	cfg    Config
	log    *logger.Logger
}

// NewAdapter creates a new Amadeus adapter.
func NewAdapter(client *upstream.Client, cfg Config, log *logger.Logger) *Adapter {
	if cfg.MaxOffers <= 0 {
		cfg.MaxOffers = DefaultMaxOffers
	}
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = "INR"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		client: client,
		cfg:    cfg,
		log:    log.WithProvider(ProviderName),
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Authenticate exchanges the client credentials for an access token.
// Exhaustion and cancellation pass through; every other failure is an AuthError.
func (a *Adapter) Authenticate(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.cfg.ClientID)
	form.Set("client_secret", a.cfg.ClientSecret)

	body, err := a.client.FetchWithRetry(ctx, OperationToken, upstream.Request{
		Endpoint:    "amadeus token",
		URL:         strings.TrimRight(a.cfg.BaseURL, "/") + tokenPath,
		Method:      http.MethodPost,
		Body:        []byte(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		if domain.IsExhaustedRetries(err) || ctx.Err() != nil {
			return "", err
		}
		return "", domain.NewAuthError(ProviderName, err)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", domain.NewAuthError(ProviderName, fmt.Errorf("decode token response: %w", err))
	}
	if tok.AccessToken == "" {
		return "", domain.NewAuthError(ProviderName, errors.New("token response has no access_token"))
	}

	return tok.AccessToken, nil
}

// SearchOffers authenticates and returns normalized legs for a one-way search.
func (a *Adapter) SearchOffers(ctx context.Context, origin, destination, date string, passengers int) ([]domain.FlightLeg, error) {
	token, err := a.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(a.buildSearchRequest(origin, destination, date, passengers))
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	body, err := a.client.FetchWithRetry(ctx, OperationSearch, upstream.Request{
		Endpoint:    "amadeus flight-offers",
		URL:         strings.TrimRight(a.cfg.BaseURL, "/") + offersPath,
		Method:      http.MethodPost,
		Body:        payload,
		ContentType: "application/json",
		BearerToken: token,
		Headers:     map[string]string{"X-HTTP-Method-Override": "GET"},
	})
	if err != nil {
		if dataErr := providerErrorFromRejection(err); dataErr != nil {
			return nil, dataErr
		}
		return nil, err
	}

	legs, err := Normalize(body, a.cfg.MaxOffers)
	if err != nil {
		return nil, err
	}

	a.log.Debug().
		Str("origin", origin).
		Str("destination", destination).
		Str("date", date).
		Int("legs", len(legs)).
		Msg("Flight offers normalized")

	return legs, nil
}

func (a *Adapter) buildSearchRequest(origin, destination, date string, passengers int) searchRequest {
	travelers := make([]traveler, 0, passengers)
	for i := 1; i <= passengers; i++ {
		travelers = append(travelers, traveler{ID: strconv.Itoa(i), TravelerType: "ADULT"})
	}

	return searchRequest{
		CurrencyCode: a.cfg.CurrencyCode,
		OriginDestinations: []originDestination{{
			ID:                      "1",
			OriginLocationCode:      origin,
			DestinationLocationCode: destination,
			DepartureDateTimeRange:  dateTimeRange{Date: date},
		}},
		Travelers: travelers,
		Sources:   []string{"GDS"},
		SearchCriteria: searchCriteria{
			MaxFlightOffers: a.cfg.MaxOffers,
			FlightFilters: flightFilters{
				CabinRestrictions: []cabinRestriction{{
					Cabin:                "ECONOMY",
					Coverage:             "MOST_SEGMENTS",
					OriginDestinationIDs: []string{"1"},
				}},
			},
		},
	}
}

// providerErrorFromRejection turns a 4xx carrying an errors envelope into a
// ProviderDataError. It returns nil when err is anything else.
func providerErrorFromRejection(err error) error {
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) || upErr.StatusCode < 400 || upErr.StatusCode >= 500 {
		return nil
	}

	var env RawEnvelope
	if json.Unmarshal([]byte(upErr.Detail), &env) != nil || len(env.Errors) == 0 {
		return nil
	}
	return domain.NewProviderDataError(ProviderName, describeErrors(env.Errors))
}

var _ domain.FlightOfferProvider = (*Adapter)(nil)
