package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort    string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	RedisURI      string
	AuthSecret    string
	AuthExpiry    time.Duration

	// Object storage for receipt files. Optional; when the endpoint is
	// empty the receipt endpoints answer 503.
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	// Kafka for invitation events. Optional; when no broker is set the
	// invite endpoint still acknowledges, it just publishes nothing.
	KafkaBrokers     []string
	KafkaInviteTopic string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", "localhost:6379"),
		AuthSecret:    getEnvRequired("AUTH_SECRET"),
		AuthExpiry:    parseDuration(getEnv("AUTH_EXPIRY", "24h")),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", "travelmate-receipts"),
		S3UseSSL:    getEnv("S3_USE_SSL", "false") == "true",

		KafkaBrokers:     splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaInviteTopic: getEnv("KAFKA_INVITE_TOPIC", "trip.invitations"),
	}

	return cfg
}

// StorageEnabled reports whether receipt storage is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != ""
}

// EventsEnabled reports whether invitation events are configured.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and panics if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, panics on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// splitList splits a comma separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
