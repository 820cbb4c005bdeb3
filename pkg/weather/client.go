package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"encoding/json"
)

const defaultAPIURL = "https://api.weatherapi.com/v1"

// UnknownWeather is the sentinel summary returned whenever the lookup
// fails. Weather is best-effort context, never a fatal dependency.
const UnknownWeather = "Unknown weather"

// Lookup is the weather surface consumed by the crop advisor.
type Lookup interface {
	// Summary returns a one-line forecast summary for the location, or
	// the UnknownWeather sentinel on any failure. It never fails.
	Summary(ctx context.Context, location string) string
}

// Client is the WeatherAPI.com HTTP client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

var _ Lookup = (*Client)(nil)

// NewClient creates a new WeatherAPI.com client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Forecast fetches the 1-day forecast for a city or region.
func (c *Client) Forecast(ctx context.Context, location string) (Forecast, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", location)
	q.Set("days", "1")
	q.Set("aqi", "no")
	q.Set("alerts", "no")

	reqURL := fmt.Sprintf("%s/forecast.json?%s", c.apiURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Forecast{}, fmt.Errorf("failed to build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Forecast{}, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Forecast{}, fmt.Errorf("weather API error %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Forecast{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	if len(body.Forecast.ForecastDay) == 0 {
		return Forecast{}, fmt.Errorf("weather response has no forecast days")
	}

	day := body.Forecast.ForecastDay[0]
	return Forecast{
		Date:         day.Date,
		Condition:    day.Day.Condition.Text,
		MaxTempC:     day.Day.MaxTempC,
		MinTempC:     day.Day.MinTempC,
		ChanceOfRain: day.Day.ChanceOfRain,
		WillItRain:   day.Day.WillItRain,
	}, nil
}

// Summary returns a one-line forecast summary for prompt context, or
// the UnknownWeather sentinel if the lookup fails for any reason.
func (c *Client) Summary(ctx context.Context, location string) string {
	f, err := c.Forecast(ctx, location)
	if err != nil {
		return UnknownWeather
	}
	return fmt.Sprintf("Date: %s, %s, Max Temp: %.1f°C, Min Temp: %.1f°C, Rain Chance: %d%%, Rain Expected: %d",
		f.Date, f.Condition, f.MaxTempC, f.MinTempC, f.ChanceOfRain, f.WillItRain)
}
