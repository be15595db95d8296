package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Auth       AuthConfig
	Services   ServicesConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Twilio     TwilioConfig
	Queue      QueueConfig
	Scheduler  SchedulerConfig
	Validation ValidationConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds settings shared with the web app
type ServicesConfig struct {
	WebAppURI string
}

// RedisConfig holds the Redis connection used for the shared send window
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers       string
	ProgressTopic string
	// RelayGroup must be unique per API instance so every instance sees
	// every progress event
	RelayGroup string
}

// TwilioConfig holds credentials for the WhatsApp transport
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
}

// QueueConfig holds asynq settings. An empty RedisAddr disables the queue
// and campaigns are dispatched in-process.
type QueueConfig struct {
	RedisAddr   string
	Concurrency int
}

// SchedulerConfig controls the due-campaign polling loop
type SchedulerConfig struct {
	Interval       time.Duration
	StaleAfter     time.Duration
	InProcessDelay time.Duration
}

// ValidationConfig controls the contact validation pipeline
type ValidationConfig struct {
	CheckInterval time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Redis configuration
	if cfg.Redis.Enabled, err = getBoolWithDefault("REDIS_ENABLED", false); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = getIntWithDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Kafka configuration
	cfg.Kafka.Brokers = os.Getenv("KAFKA_BROKERS")
	cfg.Kafka.ProgressTopic = getEnvWithDefault("KAFKA_PROGRESS_TOPIC", "campaign-progress")
	hostname, _ := os.Hostname()
	cfg.Kafka.RelayGroup = getEnvWithDefault("KAFKA_RELAY_GROUP", "campaign-progress-relay-"+hostname)

	// Twilio configuration
	if cfg.Twilio.AccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Twilio.AuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}

	// Queue configuration
	cfg.Queue.RedisAddr = os.Getenv("QUEUE_REDIS_ADDR")
	if cfg.Queue.Concurrency, err = getIntWithDefault("QUEUE_CONCURRENCY", 10); err != nil {
		return nil, err
	}

	// Scheduler configuration
	if cfg.Scheduler.Interval, err = getDurationWithDefault("SCHEDULER_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Scheduler.StaleAfter, err = getDurationWithDefault("SCHEDULER_STALE_AFTER", 90*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Scheduler.InProcessDelay, err = getDurationWithDefault("SCHEDULER_IN_PROCESS_DELAY", 2*time.Second); err != nil {
		return nil, err
	}

	if cfg.Validation.CheckInterval, err = getDurationWithDefault("VALIDATION_CHECK_INTERVAL", 100*time.Millisecond); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// QueueEnabled reports whether campaigns should go through asynq
func (c *Config) QueueEnabled() bool {
	return c.Queue.RedisAddr != ""
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getBoolWithDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
