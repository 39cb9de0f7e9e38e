// Package weather implements domain.WeatherProvider against weatherapi.com.
package weather

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
)

// ProviderName identifies the weather provider in errors and logs.
const ProviderName = "weatherapi"

// OperationForecast is the retried operation name for a forecast call.
const OperationForecast = "weather forecast"

// Client fetches daily forecasts.
type Client struct {
	up      *upstream.Client
	apiKey  string
	baseURL string
}

// NewClient creates a new weather client.
func NewClient(up *upstream.Client, apiKey, baseURL string) *Client {
	return &Client{
		up:      up,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type forecastResponse struct {
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC          float64 `json:"maxtemp_c"`
				MinTempC          float64 `json:"mintemp_c"`
				DailyChanceOfRain int     `json:"daily_chance_of_rain"`
				Condition         struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Forecast returns up to days forecast days for city, starting today.
func (c *Client) Forecast(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", city)
	q.Set("days", strconv.Itoa(days))

	body, err := c.up.FetchWithRetry(ctx, OperationForecast, upstream.Request{
		Endpoint: "weatherapi forecast",
		URL:      c.baseURL + "/forecast.json?" + q.Encode(),
		Method:   http.MethodGet,
	})
	if err != nil {
		if dataErr := providerErrorFromRejection(err); dataErr != nil {
			return nil, dataErr
		}
		return nil, err
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderDataError(ProviderName, fmt.Sprintf("decode forecast: %v", err))
	}

	result := make([]domain.ForecastDay, 0, len(resp.Forecast.ForecastDay))
	for _, fd := range resp.Forecast.ForecastDay {
		result = append(result, domain.ForecastDay{
			Date:         fd.Date,
			MaxTempC:     fd.Day.MaxTempC,
			MinTempC:     fd.Day.MinTempC,
			Condition:    fd.Day.Condition.Text,
			ChanceOfRain: fd.Day.DailyChanceOfRain,
		})
	}

	return result, nil
}

// providerErrorFromRejection reports weatherapi's 4xx error body, such as an
// unknown location, as a ProviderDataError.
func providerErrorFromRejection(err error) error {
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) || upErr.StatusCode < 400 || upErr.StatusCode >= 500 {
		return nil
	}

	var resp errorResponse
	if json.Unmarshal([]byte(upErr.Detail), &resp) != nil || resp.Error.Message == "" {
		return nil
	}
	return domain.NewProviderDataError(ProviderName, fmt.Sprintf("[%d] %s", resp.Error.Code, resp.Error.Message))
}

var _ domain.WeatherProvider = (*Client)(nil)
