package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the resolved server configuration. Values come from the defaults, then an
// optional YAML file, then environment variables, each layer overriding the last.
type Config struct {
	Port         string `yaml:"port"`
	DatabasePath string `yaml:"database_path"`
	JWTSecret    string `yaml:"jwt_secret"`
	CookieSecure bool   `yaml:"cookie_secure"`
	BcryptCost   int    `yaml:"bcrypt_cost"`
	LogLevel     string `yaml:"log_level"`

	Planner   PlannerConfig   `yaml:"planner"`
	Appliance ApplianceConfig `yaml:"appliance"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type PlannerConfig struct {
	InitialTemperatureC int `yaml:"initial_temperature_c"`
	DefaultTemperatureC int `yaml:"default_temperature_c"`
}

type ApplianceConfig struct {
	CleaningThreshold int `yaml:"cleaning_threshold"`
}

// RateLimitConfig throttles the unauthenticated endpoints per client address.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     float64 `yaml:"burst"`
}

// Default returns the built-in configuration. JWTSecret is empty and must be supplied.
func Default() Config {
	return Config{
		Port:         "8080",
		DatabasePath: "atelier.db",
		CookieSecure: true,
		BcryptCost:   12,
		LogLevel:     "info",
		Planner: PlannerConfig{
			InitialTemperatureC: 90,
			DefaultTemperatureC: 40,
		},
		Appliance: ApplianceConfig{CleaningThreshold: 30},
		RateLimit: RateLimitConfig{PerSecond: 0.5, Burst: 10},
	}
}

// Load builds the configuration from path (skipped when empty) and the environment,
// then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		c.Port = v
	}
	if v, ok := lookup("DATABASE_PATH"); ok && v != "" {
		c.DatabasePath = v
	}
	if v, ok := lookup("JWT_SECRET"); ok && v != "" {
		c.JWTSecret = v
	}
	// Secure cookies stay on unless explicitly disabled for local development.
	if v, ok := lookup("COOKIE_SECURE"); ok && v != "" {
		c.CookieSecure = v != "false"
	}
	if v, ok := lookup("BCRYPT_COST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		c.BcryptCost = n
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks the invariants the server relies on.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if len(c.JWTSecret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security"))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		errs = append(errs, fmt.Errorf("bcrypt cost must be between 4 and 14, got %d", c.BcryptCost))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Planner.DefaultTemperatureC < 0 || c.Planner.DefaultTemperatureC > c.Planner.InitialTemperatureC {
		errs = append(errs, fmt.Errorf("planner default temperature %d must be within [0, %d]",
			c.Planner.DefaultTemperatureC, c.Planner.InitialTemperatureC))
	}
	if c.Appliance.CleaningThreshold < 1 {
		errs = append(errs, fmt.Errorf("appliance cleaning threshold must be positive, got %d", c.Appliance.CleaningThreshold))
	}
	if c.RateLimit.Burst < 1 || c.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("rate limit burst must be at least 1 and rate non-negative"))
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
