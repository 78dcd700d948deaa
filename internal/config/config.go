// Package config loads process configuration from the environment and an optional
// YAML file holding the price list and share recipients.
package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"orderdesk/internal/core/apperror"
	"orderdesk/internal/domain/catalogs/product"
)

//go:embed defaults.yaml
var defaultFile []byte

// Config holds everything main needs to wire the desk.
type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	// Location interprets delivery dates and ISO weeks
	Location *time.Location

	Catalog      []product.Product
	ShareNumbers []string

	Kafka KafkaConfig

	HTTPCompression bool
	// GzipMinSize is the smallest response body worth compressing
	GzipMinSize     int
	ShutdownTimeout time.Duration

	// SummaryInterval is how often the production worker logs the weekly board
	SummaryInterval time.Duration
}

// KafkaConfig enables order events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	BatchTimeout time.Duration

	// ConsumerGroup is the production worker's group id
	ConsumerGroup string
}

// Enabled reports whether events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// IsDevelopment reports whether the desk runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// BuildCatalog validates the configured price list.
func (c Config) BuildCatalog(ctx context.Context) (*product.Catalog, error) {
	return product.NewCatalog(ctx, c.Catalog)
}

// fileConfig is the YAML document layout.
type fileConfig struct {
	Catalog      []product.Product `yaml:"catalog"`
	ShareNumbers []string          `yaml:"shareNumbers"`
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv, os.ReadFile)
}

// LoadFrom reads configuration through the given lookups.
func LoadFrom(getenv func(string) string, readFile func(string) ([]byte, error)) (Config, error) {
	env := envReader(getenv)

	cfg := Config{
		AppEnv:          env.get("APP_ENV", "development"),
		Port:            env.get("APP_PORT", "8080"),
		LogLevel:        env.get("LOG_LEVEL", "info"),
		HTTPCompression: env.getBool("HTTP_COMPRESSION", true),
		GzipMinSize:     env.getInt("HTTP_GZIP_MIN_SIZE", 1024),
		ShutdownTimeout: env.getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		SummaryInterval: env.getDuration("PLAN_SUMMARY_INTERVAL", time.Minute),
		Kafka: KafkaConfig{
			Brokers:      splitList(env.get("KAFKA_BROKERS", "")),
			Topic:        env.get("KAFKA_ORDER_TOPIC", "orders.created"),
			WriteTimeout: env.getDuration("KAFKA_WRITE_TIMEOUT", 10*time.Second),
			BatchTimeout: env.getDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),

			ConsumerGroup: env.get("KAFKA_CONSUMER_GROUP", "orderdesk-production"),
		},
	}

	loc, err := loadLocation(env.get("LEDGER_TIMEZONE", "Local"))
	if err != nil {
		return Config{}, err
	}
	cfg.Location = loc

	file, err := parseFile(defaultFile)
	if err != nil {
		return Config{}, fmt.Errorf("embedded defaults: %w", err)
	}

	if path := env.get("ORDERDESK_CONFIG", ""); path != "" {
		data, err := readFile(path)
		if err != nil {
			return Config{}, apperror.NewConfig("cannot read config file").
				WithDetail("path", path).
				WithCause(err)
		}
		override, err := parseFile(data)
		if err != nil {
			return Config{}, apperror.NewConfig("cannot parse config file").
				WithDetail("path", path).
				WithCause(err)
		}
		if len(override.Catalog) > 0 {
			file.Catalog = override.Catalog
		}
		if override.ShareNumbers != nil {
			file.ShareNumbers = override.ShareNumbers
		}
	}

	cfg.Catalog = file.Catalog
	cfg.ShareNumbers = file.ShareNumbers
	if numbers := env.get("SHARE_DEFAULT_NUMBERS", ""); numbers != "" {
		cfg.ShareNumbers = splitList(numbers)
	}

	return cfg, nil
}

func parseFile(data []byte) (fileConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, err
	}
	return fc, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperror.NewConfig("unknown LEDGER_TIMEZONE").
			WithDetail("value", name).
			WithCause(err)
	}
	return loc, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
