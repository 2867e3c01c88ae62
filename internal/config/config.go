package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores console and worker settings.
type Config struct {
	Port      int
	LogLevel  string
	Backend   Backend
	Gateway   Gateway
	DB        DB
	Kafka     Kafka
	Delivery  Delivery
	Partner   Partner
	RateLimit RateLimit
	Pprof     Pprof
}

// Backend describes the marketplace REST backend.
type Backend struct {
	BaseURL string
	Timeout time.Duration
}

// Gateway holds retry settings for idempotent backend reads.
type Gateway struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DB holds Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Kafka holds transition event settings. No brokers disables publishing.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Enabled reports whether brokers and topic are configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && strings.TrimSpace(k.Topic) != ""
}

// Delivery holds active board settings.
type Delivery struct {
	RemovalDelay time.Duration
}

// RateLimit throttles partner actions that reach the backend.
type RateLimit struct {
	Enabled bool
	Rate    float64
	Burst   int
	TTL     time.Duration
	MaxKeys int
}

// Pprof configures the debug listener. An empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Partner seeds the session on startup when Token is set.
type Partner struct {
	Token string
	ID    string
	Name  string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:     defaultPort,
		LogLevel: envOr("LOG_LEVEL", defaultLogLevel),
		Backend:  defaultBackend,
		Gateway:  defaultGateway,
		DB:       loadDB(),
		Kafka:    loadKafka(),
		Delivery: defaultDelivery,
		Partner: Partner{
			Token: os.Getenv("PARTNER_TOKEN"),
			ID:    os.Getenv("PARTNER_ID"),
			Name:  os.Getenv("PARTNER_NAME"),
		},
		RateLimit: defaultRateLimit,
		Pprof: Pprof{
			Addr: os.Getenv("PPROF_ADDR"),
			User: os.Getenv("PPROF_USER"),
			Pass: os.Getenv("PPROF_PASS"),
		},
	}

	var err error
	if cfg.Port, err = envInt("PORT", defaultPort); err != nil {
		return nil, err
	}
	cfg.Backend.BaseURL = envOr("BACKEND_URL", defaultBackend.BaseURL)
	if cfg.Backend.Timeout, err = envDuration("BACKEND_TIMEOUT", defaultBackend.Timeout); err != nil {
		return nil, err
	}
	if cfg.Gateway.MaxAttempts, err = envInt("GATEWAY_MAX_ATTEMPTS", defaultGateway.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.Gateway.BaseDelay, err = envDuration("GATEWAY_BASE_DELAY", defaultGateway.BaseDelay); err != nil {
		return nil, err
	}
	if cfg.Gateway.MaxDelay, err = envDuration("GATEWAY_MAX_DELAY", defaultGateway.MaxDelay); err != nil {
		return nil, err
	}
	if cfg.Delivery.RemovalDelay, err = envDuration("DELIVERY_REMOVAL_DELAY", defaultDelivery.RemovalDelay); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", defaultRateLimit.Enabled); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RPS", defaultRateLimit.Rate); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", defaultRateLimit.Burst); err != nil {
		return nil, err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", defaultRateLimit.TTL); err != nil {
		return nil, err
	}
	if cfg.RateLimit.MaxKeys, err = envInt("RATE_LIMIT_MAX_KEYS", defaultRateLimit.MaxKeys); err != nil {
		return nil, err
	}
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Backend.BaseURL, "backend-url", cfg.Backend.BaseURL, "marketplace backend base URL")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	pflag.StringVar(&cfg.Pprof.Addr, "pprof-addr", cfg.Pprof.Addr, "pprof listen address, empty disables")
	pflag.StringSliceVar(&cfg.Kafka.Brokers, "kafka-brokers", cfg.Kafka.Brokers, "kafka brokers, comma separated")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid backend url: %q", c.Backend.BaseURL)
	}
	if c.Gateway.MaxAttempts < 1 {
		return fmt.Errorf("invalid gateway max attempts: %d", c.Gateway.MaxAttempts)
	}
	if c.Delivery.RemovalDelay < 0 {
		return fmt.Errorf("invalid removal delay: %s", c.Delivery.RemovalDelay)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	return nil
}

func loadDB() DB {
	return DB{
		Host: envOr("POSTGRES_HOST", defaultDB.Host),
		Port: envOr("POSTGRES_PORT", defaultDB.Port),
		User: envOr("POSTGRES_USER", defaultDB.User),
		Pass: envOr("POSTGRES_PASSWORD", defaultDB.Pass),
		Name: envOr("POSTGRES_DB", defaultDB.Name),
	}
}

func loadKafka() Kafka {
	k := Kafka{
		Topic:   envOr("KAFKA_TOPIC", defaultKafka.Topic),
		GroupID: envOr("KAFKA_GROUP_ID", defaultKafka.GroupID),
	}
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			k.Brokers = append(k.Brokers, b)
		}
	}
	return k
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
