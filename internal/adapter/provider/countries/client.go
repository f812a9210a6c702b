// Package countries fetches country facts from the REST Countries API.
package countries

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

const (
	providerName = "countries"

	// Placeholder is returned by Safe when the country facts cannot be fetched.
	Placeholder = "Destination details unavailable."

	maxSuggestions = 10
)

// ErrNoMatch is returned when the API has no country whose common name
// equals the requested name.
var ErrNoMatch = errors.New("no exact match")

// Client fetches country data from REST Countries v3.1.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]apiCountry]
	log        *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.CountriesConfig, timeout time.Duration, breaker config.BreakerConfig, logger *slog.Logger) *Client {
	log := logger.With("adapter", providerName)
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    provider.NewBreaker[[]apiCountry](providerName, breaker, log),
		log:        log,
	}
}

// Fetch returns the country whose common name matches name case-insensitively.
func (c *Client) Fetch(ctx context.Context, name string) (domain.Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Destination{}, fmt.Errorf("countries: %w: country name is required", domain.ErrInvalidInput)
	}

	list, err := c.byName(ctx, name)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("countries: fetch %q: %w", name, err)
	}

	for _, country := range list {
		if strings.EqualFold(country.Name.Common, name) {
			return toDestination(country), nil
		}
	}
	return domain.Destination{}, fmt.Errorf("countries: %w found for %q", ErrNoMatch, name)
}

// Safe is Fetch with every failure replaced by the placeholder.
func (c *Client) Safe(ctx context.Context, name string) provider.Outcome[domain.Destination] {
	d, err := c.Fetch(ctx, name)
	if err != nil {
		outcome := provider.OutcomeUnavailable
		if provider.Rejected(err) {
			outcome = provider.OutcomeRejected
		}
		provider.Observe(providerName, outcome)
		c.log.ErrorContext(ctx, "country lookup failed",
			slog.String("country", name),
			slog.String("error", err.Error()),
		)
		return provider.Unavailable[domain.Destination](Placeholder)
	}

	provider.Observe(providerName, provider.OutcomeOK)
	return provider.Ok(d)
}

// Search returns up to ten common names of countries matching partial.
func (c *Client) Search(ctx context.Context, partial string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return nil, fmt.Errorf("countries: %w: partial country name is required", domain.ErrInvalidInput)
	}

	list, err := c.byName(ctx, partial)
	if err != nil {
		return nil, fmt.Errorf("countries: search %q: %w", partial, err)
	}

	names := make([]string, 0, min(len(list), maxSuggestions))
	for _, country := range list {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, country.Name.Common)
	}
	return names, nil
}

// byName calls /name/{name} through the breaker.
func (c *Client) byName(ctx context.Context, name string) ([]apiCountry, error) {
	return c.breaker.Execute(func() ([]apiCountry, error) {
		list, err := c.get(ctx, name)
		return list, provider.CallerErr(ctx, err)
	})
}

// get performs one lookup. A 404 is an empty result, not a failure.
func (c *Client) get(ctx context.Context, name string) ([]apiCountry, error) {
	reqURL := c.baseURL + "/name/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.log.DebugContext(ctx, "countries request", slog.String("name", name))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &provider.StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var list []apiCountry
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return list, nil
}
