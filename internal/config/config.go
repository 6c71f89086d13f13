package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// InsecureDefaultSecret is the fallback signing secret. It exists only so
// local development works out of the box; any real deployment must set
// JWT_SECRET.
const InsecureDefaultSecret = "change_this_in_production"

// Config contains server configuration parameters. It is read once at
// startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	Host          string `env:"HOST" envDefault:""`
	Port          int    `env:"PORT" envDefault:"8080"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"change_this_in_production"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	Storage Storage `envPrefix:"STORAGE_"`
	JSONBin JSONBin `envPrefix:"JSONBIN_"`
	Redis   Redis   `envPrefix:"REDIS_"`
}

// Storage selects the document store backend.
type Storage struct {
	Type string `env:"TYPE" envDefault:"jsonbin"`
}

// JSONBin contains remote document store parameters.
type JSONBin struct {
	URL       string `env:"URL" envDefault:"https://api.jsonbin.io/v3"`
	BinID     string `env:"BIN_ID"`
	MasterKey string `env:"MASTER_KEY"`
	AccessKey string `env:"ACCESS_KEY"`
}

// Redis contains Redis backend parameters.
type Redis struct {
	URL string `env:"URL" envDefault:"redis://localhost:6379"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// UsingInsecureSecret reports whether the signing secret is still the
// placeholder default.
func (c *Config) UsingInsecureSecret() bool {
	return c.JWTSecret == InsecureDefaultSecret
}
