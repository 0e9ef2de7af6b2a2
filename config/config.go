package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env string `env:"APP_ENV" env-default:"local" env-description:"local, dev or prod"`

	HTTPServer
	DB
	Auth

	// CorsOrigins is a comma separated list; empty means "*".
	CorsOrigins string `env:"CORS_ORIGINS"`
	LogFile     string `env:"LOG_FILE" env-description:"optional rotated log file"`
}

type HTTPServer struct {
	Port              string        `env:"PORT" env-default:"5001"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"20s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type DB struct {
	URL  string `env:"MYSQL_URL"`
	Alt  string `env:"DATABASE_URL"`
	User string `env:"DB_USER" env-default:"root"`
	Pass string `env:"DB_PASS"`
	Host string `env:"DB_HOST" env-default:"127.0.0.1"`
	Port string `env:"DB_PORT" env-default:"3306"`
	Name string `env:"DB_NAME" env-default:"c4knives"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	// AdminRoute is inserted as a path segment in front of every admin-only route.
	AdminRoute string `env:"ADMIN_API_ROUTE"`
}

// MustLoad reads an optional .env file and then the process environment.
// It panics when the environment cannot be parsed.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		slog.Warn("JWT_SECRET not set, generating a random signing key. Tokens will be invalid after restart. SET JWT_SECRET IN PRODUCTION!")
		secret, err := randomHex(32)
		if err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		cfg.JWTSecret = secret
	}

	cfg.AdminRoute = strings.Trim(strings.TrimSpace(cfg.AdminRoute), "/")
	return &cfg, nil
}

// AllowedOrigins splits CorsOrigins, falling back to "*".
func (c *Config) AllowedOrigins() []string {
	raw := strings.TrimSpace(c.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
