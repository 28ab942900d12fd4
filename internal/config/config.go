package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App        AppConfig
	Repository RepositoryConfig
	Database   DatabaseConfig
	Engine     EngineConfig
	Gemini     GeminiConfig
	JWT        JWTConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

const (
	RepositoryDriverJSON     = "json"
	RepositoryDriverPostgres = "postgres"
)

type RepositoryConfig struct {
	Driver  string
	DataDir string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type EngineConfig struct {
	MatchThreshold       float64
	RecommendationCount  int
	MaxLearningResources int
	UseRemoteResources   bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	driver := strings.ToLower(opt("REPOSITORY_DRIVER"))
	if driver == "" {
		driver = RepositoryDriverJSON
	}
	if driver != RepositoryDriverJSON && driver != RepositoryDriverPostgres {
		return Config{}, fmt.Errorf("unknown REPOSITORY_DRIVER %q", driver)
	}
	dataDir := opt("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	cfg.Repository = RepositoryConfig{Driver: driver, DataDir: dataDir}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        envDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(envInt("DB_POOL_MAX_CONNS", 8)),
		PoolMinConns:          int32(envInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   envDuration("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   envDuration("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: envDuration("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}

	cfg.Engine = EngineConfig{
		MatchThreshold:       envFloat("MATCH_THRESHOLD", 0.7),
		RecommendationCount:  envInt("RECOMMENDATION_COUNT", 5),
		MaxLearningResources: envInt("MAX_LEARNING_RESOURCES", 10),
		UseRemoteResources:   envBool("USE_REMOTE_RESOURCES", true),
	}
	if cfg.Engine.MatchThreshold < 0 || cfg.Engine.MatchThreshold > 1 {
		return Config{}, fmt.Errorf("MATCH_THRESHOLD must be within [0,1]")
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    opt("JWT_ACCESS_SECRET"),
		AccessExpiresIn: envDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if raw == "" {
		return def
	}
	return raw == "true" || raw == "1" || raw == "yes"
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
