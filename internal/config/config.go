package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the runtime configuration read from the environment (.env honoured by main).
type Config struct {
	Port        string
	AppEnv      string
	DBPath      string
	DatabaseURL string
	SeedPath    string

	CredentialBackend string
	CredentialFile    string
	RedisAddr         string

	RoutingBaseURL string
	RoutingTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string
	AuthFile           string

	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:        Get("PORT", "8080"),
		AppEnv:      Get("APP_ENV", "production"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SeedPath:    Get("SEED_PATH", "data/seeds/dashboard.json"),

		CredentialBackend: Get("CREDENTIAL_BACKEND", "sql"),
		CredentialFile:    Get("CREDENTIAL_FILE", "data/credentials.json"),
		RedisAddr:         Get("REDIS_ADDR", "localhost:6379"),

		RoutingBaseURL: Get("ROUTING_BASE_URL", "https://maps.googleapis.com"),
		RoutingTimeout: GetDuration("ROUTING_TIMEOUT", 10*time.Second),

		KafkaBrokers: GetList("KAFKA_BROKERS"),
		KafkaTopic:   Get("KAFKA_TOPIC", "dashboard.clients"),

		CORSAllowedOrigins: GetList("CORS_ALLOWED_ORIGINS"),
		AuthFile:           Get("AUTH_FILE", "auth.secret"),

		ShutdownTimeout: time.Duration(GetInt("SHUTDOWN_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if v, err := strconv.Atoi(Get(key, "")); err == nil {
		return v
	}
	return fallback
}

// GetDuration accepts Go duration strings ("15s") or whole seconds ("15").
func GetDuration(key string, fallback time.Duration) time.Duration {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// GetList splits a comma-separated value, dropping blanks.
func GetList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
