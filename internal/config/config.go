package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Providers ProvidersConfig `yaml:"providers"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,HEAD,PUT,PATCH,POST,DELETE"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"SECRET_KEY"              env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"tripplanner"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"BCRYPT_WORK_FACTOR"      env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits requests per client IP on the credential endpoints.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATELIMIT_ENABLED" env-default:"true"`
	RPS     float64 `yaml:"rps"     env:"RATELIMIT_RPS"     env-default:"1"`
	Burst   int     `yaml:"burst"   env:"RATELIMIT_BURST"   env-default:"10"`
}

// ProvidersConfig groups the third-party data sources used to enrich trips.
type ProvidersConfig struct {
	Timeout   time.Duration   `yaml:"timeout" env:"PROVIDERS_TIMEOUT" env-default:"10s"`
	Countries CountriesConfig `yaml:"countries"`
	Weather   WeatherConfig   `yaml:"weather"`
	Itinerary ItineraryConfig `yaml:"itinerary"`
	Breaker   BreakerConfig   `yaml:"breaker"`
}

// CountriesConfig configures the REST Countries client.
type CountriesConfig struct {
	BaseURL string `yaml:"base_url" env:"COUNTRIES_BASE_URL" env-default:"https://restcountries.com/v3.1"`
}

// WeatherConfig configures the Visual Crossing timeline client.
type WeatherConfig struct {
	BaseURL string `yaml:"base_url" env:"WEATHER_BASE_URL" env-default:"https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"`
	APIKey  string `yaml:"api_key"  env:"WEATHER_API_KEY"`
}

// ItineraryConfig configures the LLM used to write itineraries.
type ItineraryConfig struct {
	APIKey    string        `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	Model     string        `yaml:"model"      env:"ITINERARY_MODEL"      env-default:"claude-haiku-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"ITINERARY_MAX_TOKENS" env-default:"2048"`
	Timeout   time.Duration `yaml:"timeout"    env:"ITINERARY_TIMEOUT"    env-default:"60s"`
}

// BreakerConfig configures the circuit breakers around the HTTP providers.
type BreakerConfig struct {
	MaxFailures uint32        `yaml:"max_failures" env:"BREAKER_MAX_FAILURES" env-default:"5"`
	OpenTimeout time.Duration `yaml:"open_timeout" env:"BREAKER_OPEN_TIMEOUT" env-default:"30s"`
	Interval    time.Duration `yaml:"interval"     env:"BREAKER_INTERVAL"     env-default:"60s"`
}
