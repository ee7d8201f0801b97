package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"volleyhub/pkg/tz"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	// Storage
	Storage        string `envconfig:"STORAGE" default:"postgres"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"db/migrations"`
	// HTTP
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	// Auth
	JWTSecret string `envconfig:"JWT_SECRET"`
	JWKSURL   string `envconfig:"JWKS_URL"`
	// Runtime
	Environment    string        `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	EventTimezone  string        `envconfig:"EVENT_TIMEZONE" default:"UTC"`
	DefaultLocale  string        `envconfig:"DEFAULT_LOCALE" default:"en"`
	CloserInterval time.Duration `envconfig:"CLOSER_INTERVAL" default:"1h"`
	// Collaborators (optional)
	DiscordToken   string `envconfig:"DISCORD_TOKEN"`
	RabbitURL      string `envconfig:"RABBIT_URL"`
	RabbitExchange string `envconfig:"RABBIT_EXCHANGE" default:"volleyhub.events"`
	OTLPEndpoint   string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `envconfig:"SERVICE_NAME" default:"volleyhub"`

	location *time.Location
}

// Load reads .env (optional), decodes the environment and validates the result.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies the business rules on the loaded configuration.
func (c *Config) validate() error {
	switch c.Storage {
	case StoragePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Handy local default when DATABASE_URL is not provided.
			c.DatabaseURL = "postgres://localhost:5432/volleyhub?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("config: STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage)
	}

	if strings.TrimSpace(c.JWTSecret) == "" && strings.TrimSpace(c.JWKSURL) == "" {
		return fmt.Errorf("config: JWT_SECRET or JWKS_URL is required")
	}
	if c.CloserInterval <= 0 {
		return fmt.Errorf("config: CLOSER_INTERVAL must be positive, got %s", c.CloserInterval)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	loc, err := tz.Load(c.EventTimezone)
	if err != nil {
		return fmt.Errorf("config: invalid EVENT_TIMEZONE %q: %w", c.EventTimezone, err)
	}
	c.location = loc
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Location is the zone event dates and start times are entered in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
