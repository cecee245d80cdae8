package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// DefaultEndpoint is the forecast API endpoint
	DefaultEndpoint = "https://api.open-meteo.com/v1/forecast"
)

// IWeather defines the interface for the current-conditions provider.
type IWeather interface {
	Current(ctx context.Context, latitude, longitude float64) (*Conditions, error)
}

// Conditions describes current weather used as outfit context.
type Conditions struct {
	TemperatureC  float64
	WindSpeedKmh  float64
	Precipitation float64
}

// Summary renders the conditions as a short human-readable clause.
func (c Conditions) Summary() string {
	s := fmt.Sprintf("%.0fC, wind %.0f km/h", c.TemperatureC, c.WindSpeedKmh)
	if c.Precipitation > 0 {
		s += ", rain"
	}
	return s
}

type apiResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		Precipitation float64 `json:"precipitation"`
	} `json:"current"`
}

// Client is the forecast API client.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a new weather client. The API needs no key.
func New() *Client {
	return &Client{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
	}
}

// SetEndpoint overrides the API endpoint (used in tests).
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// Current fetches the current conditions at the given coordinates.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*Conditions, error) {
	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,wind_speed_10m,precipitation",
		c.endpoint, latitude, longitude)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather API returned status: %d, body: %s", resp.StatusCode, string(raw))
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weather response: %w", err)
	}

	return &Conditions{
		TemperatureC:  parsed.Current.Temperature,
		WindSpeedKmh:  parsed.Current.WindSpeed,
		Precipitation: parsed.Current.Precipitation,
	}, nil
}
