package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/camden-git/pvtheatresbackend/logger"
)

const (
	defaultDatabasePath    = "pv_theatres.db"
	defaultPort            = "8080"
	defaultJWTExpiration   = 24
	defaultLogLevel        = "info"
	defaultDBLogLevel      = "warn"
	defaultAllowedOrigins  = "http://localhost:5173"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	DatabasePath    string // sqlite file, used when no postgres DSN is set
	DatabaseDSN     string // postgres; takes precedence over DatabasePath
	ReadReplicaDSNs []string
	Port            string
	JWTSecret       string
	JWTExpiration   time.Duration
	LogLevel        string
	DBLogLevel      string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// LoadDotEnv loads a .env file into the environment when one exists.
// Variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		logger.Sugar().Warnf("Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DatabasePath:    getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		DatabaseDSN:     getEnvOrDefault("DATABASE_DSN", ""),
		ReadReplicaDSNs: splitList(os.Getenv("DATABASE_READ_REPLICAS")),
		Port:            getEnvOrDefault("PORT", defaultPort),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTExpiration:   time.Duration(getEnvIntOrDefault("JWT_EXPIRATION_HOURS", defaultJWTExpiration)) * time.Hour,
		LogLevel:        getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
		DBLogLevel:      getEnvOrDefault("DB_LOG_LEVEL", defaultDBLogLevel),
		AllowedOrigins:  splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT '%s': %w", cfg.Port, err)
	}
	if len(cfg.ReadReplicaDSNs) > 0 && cfg.DatabaseDSN == "" {
		logger.Sugar().Warn("DATABASE_READ_REPLICAS is set without DATABASE_DSN; replicas will be ignored")
	}
	return cfg, nil
}

// RequireJWTSecret fails when no signing secret is configured.
func (c Config) RequireJWTSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set to serve the API")
	}
	return nil
}
