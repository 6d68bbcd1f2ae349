package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	AdminToken    string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig

	// VerdictCacheTTL bounds how long a cached verdict may outlive a
	// rule table release.
	VerdictCacheTTL time.Duration

	// AuditBuffer is the async audit queue size. Zero means synchronous
	// audit writes.
	AuditBuffer int
}

// RedisConfig captures connection settings for the verdict cache.
// An empty URL disables Redis and falls back to the in-process cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig captures connection settings for the audit store.
// An empty DSN falls back to the in-memory store.
type PostgresConfig struct {
	DSN string
}

// KafkaConfig captures settings for the audit event sink.
// An empty broker list disables the sink.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SORTCHECK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	adminToken := os.Getenv("SORTCHECK_ADMIN_TOKEN")
	if adminToken == "" {
		adminToken = "dev-admin-token"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("SORTCHECK_KAFKA_TOPIC")
	if topic == "" {
		topic = "sortcheck.audit.events"
	}

	var brokers []string
	if raw := os.Getenv("SORTCHECK_KAFKA_BROKERS"); raw != "" {
		for _, broker := range strings.Split(raw, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				brokers = append(brokers, broker)
			}
		}
	}

	return Server{
		Addr:          addr,
		AdminToken:    adminToken,
		JWTSigningKey: jwtSigningKey,
		JWTIssuer:     envOr("JWT_ISSUER", "sortcheck"),
		JWTAudience:   envOr("JWT_AUDIENCE", "sortcheck-api"),
		Redis: RedisConfig{
			URL:          os.Getenv("SORTCHECK_REDIS_URL"),
			PoolSize:     envInt("SORTCHECK_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("SORTCHECK_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("SORTCHECK_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("SORTCHECK_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("SORTCHECK_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("SORTCHECK_POSTGRES_DSN"),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		VerdictCacheTTL: envDuration("SORTCHECK_VERDICT_CACHE_TTL", 24*time.Hour),
		AuditBuffer:     envInt("SORTCHECK_AUDIT_BUFFER", 1024),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
