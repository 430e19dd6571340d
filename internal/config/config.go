package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the portal.
type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Session  SessionConfig
	Register RegisterConfig
	Logger   LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// BackendConfig locates the remote helpdesk REST backend.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
	LoginURL       string
}

// SessionConfig controls the JWT session cookie.
type SessionConfig struct {
	CookieName string
	Secure     bool
}

// RegisterConfig bounds the registration retry loop.
type RegisterConfig struct {
	MaxRetries        int
	RetryDelaySeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	baseURL := strings.TrimRight(getEnv("BACKEND_BASE_URL", ""), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "helpdesk-portal"),
			Env:                   env,
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Backend: BackendConfig{
			BaseURL:        baseURL,
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 15),
			LoginURL:       getEnv("BACKEND_LOGIN_URL", baseURL+"/auth/login"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "JWT_TOKEN"),
			Secure:     env == "production",
		},
		Register: RegisterConfig{
			MaxRetries:        getEnvAsInt("REGISTER_MAX_RETRIES", 3),
			RetryDelaySeconds: getEnvAsInt("REGISTER_RETRY_DELAY_SECONDS", 5),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the outbound call timeout.
func (b BackendConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// RetryDelay returns the pause between registration attempts.
func (r RegisterConfig) RetryDelay() time.Duration {
	if r.RetryDelaySeconds <= 0 {
		return 0
	}
	return time.Duration(r.RetryDelaySeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
