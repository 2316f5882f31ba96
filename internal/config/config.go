package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	StoreBackend  string
	MongoURI      string
	MongoDB       string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	UserCacheTTL  time.Duration
	KafkaBrokers  []string
	KafkaTopic    string
	CORSOrigins   []string
	ViewsDir      string
	PublicDir     string
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "3000"),
		StoreBackend:  strings.ToLower(getenv("STORE_BACKEND", "mongo")),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getenv("MONGO_DB", "exercise_tracker"),
		PostgresDSN:   getenv("POSTGRES_DSN", ""),
		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		UserCacheTTL:  getduration("USER_CACHE_TTL", 10*time.Minute),
		KafkaBrokers:  splitList(getenv("KAFKA_BROKERS", "")),
		KafkaTopic:    getenv("KAFKA_TOPIC", "exercise.logged"),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "*")),
		ViewsDir:      getenv("VIEWS_DIR", "views"),
		PublicDir:     getenv("PUBLIC_DIR", "public"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// splitList turns a comma-separated value into a trimmed, non-empty slice.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
