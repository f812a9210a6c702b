package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Providers.validate(); err != nil {
		return fmt.Errorf("providers: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("ratelimit: rps and burst must be > 0 when enabled")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (p *ProvidersConfig) validate() error {
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	if p.Countries.BaseURL == "" {
		return fmt.Errorf("countries.base_url is required")
	}
	if p.Weather.BaseURL == "" {
		return fmt.Errorf("weather.base_url is required")
	}
	if p.Itinerary.MaxTokens <= 0 {
		return fmt.Errorf("itinerary.max_tokens must be > 0 (got %d)", p.Itinerary.MaxTokens)
	}
	if p.Breaker.MaxFailures == 0 {
		return fmt.Errorf("breaker.max_failures must be > 0")
	}
	return nil
}
