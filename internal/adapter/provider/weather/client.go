// Package weather fetches day-by-day forecasts from the Visual Crossing
// timeline API.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/tripplanner-backend/internal/config"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

const providerName = "weather"

// Placeholder messages returned by Safe.
const (
	PlaceholderUnavailable = "Weather data unavailable."
	PlaceholderRateLimited = "Sorry, we've hit our weather request limit. Please try again later."
	PlaceholderNoKey       = "Weather data is currently unavailable due to missing API credentials."
)

var (
	// ErrNoDays is returned when the API answers with an empty forecast.
	ErrNoDays = errors.New("no weather data")
	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// maxErrorBody bounds how much of an error response is kept in the error.
const maxErrorBody = 512

// Client fetches forecasts from Visual Crossing.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]apiDay]
	log        *slog.Logger
}

// NewClient creates a Client. A missing API key is logged once here; every
// call then returns PlaceholderNoKey without touching the network.
func NewClient(cfg config.WeatherConfig, timeout time.Duration, breaker config.BreakerConfig, logger *slog.Logger) *Client {
	log := logger.With("adapter", providerName)
	if cfg.APIKey == "" {
		log.Warn("WEATHER_API_KEY is missing, weather data retrieval will not work")
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    provider.NewBreaker[[]apiDay](providerName, breaker, log),
		log:        log,
	}
}

// Fetch returns the forecast for city between start and end inclusive.
func (c *Client) Fetch(ctx context.Context, city string, start, end time.Time) ([]domain.WeatherDay, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather: %s", PlaceholderNoKey)
	}
	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("weather: %w: city is required", domain.ErrInvalidInput)
	}

	days, err := c.breaker.Execute(func() ([]apiDay, error) {
		days, err := c.timeline(ctx, city, start, end)
		return days, provider.CallerErr(ctx, err)
	})
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("weather: %w found for %q", ErrNoDays, city)
	}

	out, err := toDomain(days)
	if err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	return out, nil
}

// Safe is Fetch with every failure replaced by a placeholder.
func (c *Client) Safe(ctx context.Context, city string, start, end time.Time) provider.Outcome[[]domain.WeatherDay] {
	if c.apiKey == "" {
		provider.Observe(providerName, provider.OutcomeNoKey)
		return provider.Unavailable[[]domain.WeatherDay](PlaceholderNoKey)
	}

	days, err := c.Fetch(ctx, city, start, end)
	if err == nil {
		provider.Observe(providerName, provider.OutcomeOK)
		return provider.Ok(days)
	}

	c.log.ErrorContext(ctx, "weather lookup failed",
		slog.String("city", city),
		slog.String("start_date", start.Format(domain.DateLayout)),
		slog.String("end_date", end.Format(domain.DateLayout)),
		slog.String("error", err.Error()),
	)

	switch {
	case provider.Rejected(err):
		provider.Observe(providerName, provider.OutcomeRejected)
		return provider.Unavailable[[]domain.WeatherDay](PlaceholderUnavailable)
	case isRateLimit(err):
		provider.Observe(providerName, provider.OutcomeUnavailable)
		return provider.Unavailable[[]domain.WeatherDay](PlaceholderRateLimited)
	default:
		provider.Observe(providerName, provider.OutcomeUnavailable)
		return provider.Unavailable[[]domain.WeatherDay](PlaceholderUnavailable)
	}
}

func (c *Client) timeline(ctx context.Context, city string, start, end time.Time) ([]apiDay, error) {
	q := url.Values{}
	q.Set("unitGroup", "metric")
	q.Set("key", c.apiKey)
	q.Set("contentType", "json")

	reqURL := fmt.Sprintf("%s/%s/%s/%s?%s",
		c.baseURL,
		url.PathEscape(city),
		start.Format(domain.DateLayout),
		end.Format(domain.DateLayout),
		q.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.log.DebugContext(ctx, "weather request",
		slog.String("city", city),
		slog.String("start_date", start.Format(domain.DateLayout)),
		slog.String("end_date", end.Format(domain.DateLayout)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the API key; keep it out of errors and logs.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &provider.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var tl timelineResponse
	if err := json.Unmarshal(body, &tl); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return tl.Days, nil
}

// isRateLimit matches a 429 or an upstream message mentioning a quota or limit.
func isRateLimit(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "limit")
}
