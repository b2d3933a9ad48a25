package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	OpenAI    OpenAI     `mapstructure:",squash"`
	Tavily    Tavily     `mapstructure:",squash"`
	SerpAPI   SerpAPI    `mapstructure:",squash"`
	Providers Provider   `mapstructure:",squash"`
	Output    Output     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// OpenAI holds the LLM configuration used for candidate extraction and
// synthetic fallbacks.
type OpenAI struct {
	APIKey      string  `mapstructure:"OPENAI_API_KEY"`
	Model       string  `mapstructure:"OPENAI_MODEL"`
	MaxTokens   int     `mapstructure:"OPENAI_MAX_TOKENS"`
	Temperature float64 `mapstructure:"OPENAI_TEMPERATURE"`
}

type Tavily struct {
	APIURL     string `mapstructure:"TAVILY_API_URL"`
	APIKey     string `mapstructure:"TAVILY_API_KEY"`
	MaxResults int    `mapstructure:"TAVILY_MAX_RESULTS"`
}

type SerpAPI struct {
	APIURL string `mapstructure:"SERPAPI_API_URL"`
	APIKey string `mapstructure:"SERPAPI_API_KEY"`
}

// Candidate provider configuration. One block per provider so limits can be
// tuned independently.
type FlightProvider struct {
	Timeout      time.Duration `mapstructure:"FLIGHT_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"FLIGHT_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"FLIGHT_PROVIDER_RATE_LIMIT"`
}

type HotelProvider struct {
	Timeout      time.Duration `mapstructure:"HOTEL_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"HOTEL_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"HOTEL_PROVIDER_RATE_LIMIT"`
}

type POIProvider struct {
	Timeout      time.Duration `mapstructure:"POI_PROVIDER_TIMEOUT"`
	MaxRetries   int           `mapstructure:"POI_PROVIDER_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"POI_PROVIDER_RATE_LIMIT"`
}

type Provider struct {
	FlightProvider  FlightProvider `mapstructure:",squash"`
	HotelProvider   HotelProvider  `mapstructure:",squash"`
	POIProvider     POIProvider    `mapstructure:",squash"`
	LockTimeout     time.Duration  `mapstructure:"PROVIDER_LOCK_TIMEOUT"`
	CacheExpiration time.Duration  `mapstructure:"PROVIDER_CACHE_EXPIRATION"`
}

// Output configures where finished itineraries are written.
type Output struct {
	Dir string `mapstructure:"OUTPUT_DIR"`
}
