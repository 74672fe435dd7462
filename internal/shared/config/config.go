package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Mail     MailConfig
	Limits   LimitConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseConfig accepts either DATABASE_URL (postgres:// or sqlite:///)
// or the discrete DB_* variables used by docker-compose setups.
type DatabaseConfig struct {
	URL        string
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Broker       string
	GroupID      string
	PollInterval time.Duration
}

func (c KafkaConfig) Enabled() bool {
	return c.Broker != ""
}

type AuthConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type MailConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	NotifyTo   string
	SyncNotify bool
}

type LimitConfig struct {
	PublicWriteRPS   float64
	PublicWriteBurst int
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "NUPO Consult"),
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL:        getEnv("DATABASE_URL", ""),
			Host:       getEnv("DB_HOST", "localhost"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "nupo"),
			Port:       getEnv("DB_PORT", "5432"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvAsInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 30)) * time.Minute,
		},
		Kafka: KafkaConfig{
			Broker:       getEnv("KAFKA_BROKER", ""),
			GroupID:      getEnv("KAFKA_GROUP_ID", "nupo-inquiry-notifier"),
			PollInterval: time.Duration(getEnvAsInt("OUTBOX_POLL_SECONDS", 3)) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", ""),
			AccessTokenTTL:  time.Duration(getEnvAsInt("ACCESS_TOKEN_MINUTES", 15)) * time.Minute,
			RefreshTokenTTL: time.Duration(getEnvAsInt("REFRESH_TOKEN_HOURS", 24*7)) * time.Hour,
		},
		Mail: MailConfig{
			Enabled:    getEnvAsBool("MAIL_ENABLED", false),
			SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:   getEnvAsInt("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			FromEmail:  getEnv("MAIL_FROM", "noreply@nupoconsult.com"),
			FromName:   getEnv("MAIL_FROM_NAME", "NUPO Consult Website"),
			NotifyTo:   getEnv("MAIL_NOTIFY_TO", "info@nupoconsult.com"),
			SyncNotify: getEnvAsBool("MAIL_SYNC_NOTIFY", false),
		},
		Limits: LimitConfig{
			PublicWriteRPS:   getEnvAsFloat("PUBLIC_WRITE_RPS", 0.2),
			PublicWriteBurst: getEnvAsInt("PUBLIC_WRITE_BURST", 3),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be greater than 0")
	}
	if cfg.Database.URL == "" && cfg.Database.Host == "" {
		return fmt.Errorf("DATABASE_URL or DB_HOST must be set")
	}
	if cfg.Mail.Enabled && cfg.Mail.NotifyTo == "" {
		return fmt.Errorf("MAIL_NOTIFY_TO must be set when MAIL_ENABLED is true")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// IsSQLite reports whether DATABASE_URL points at a local sqlite file.
func (c DatabaseConfig) IsSQLite() bool {
	return strings.HasPrefix(c.URL, "sqlite://") || strings.HasSuffix(c.URL, ".db")
}

// SQLitePath strips the sqlite:/// prefix.
func (c DatabaseConfig) SQLitePath() string {
	return strings.TrimPrefix(c.URL, "sqlite:///")
}

// PostgresDSN returns DATABASE_URL as is (pgx understands URLs) or builds a
// key/value DSN from the discrete variables.
func (c DatabaseConfig) PostgresDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}
