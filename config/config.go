package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// DatabaseConfig selects one dialect per process. "sqlite" is the
// app-owned local schema; "sqlserver" points at an externally managed
// schema whose exact shape is discovered at runtime.
type DatabaseConfig struct {
	Dialect  string // sqlite | sqlserver
	Path     string // sqlite file path
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type SessionConfig struct {
	Secret         string
	CookieName     string
	DefaultExpiry  time.Duration // plain login
	RememberExpiry time.Duration // "remember me" login
	CookieSecure   bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Dialect:  getEnv("DB_DIALECT", "sqlite"),
			Path:     getEnv("DB_PATH", "radhira.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "1433"),
			User:     getEnv("DB_USER", "sa"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "radhira_pos"),
		},
		Session: SessionConfig{
			Secret:         getEnv("SESSION_SECRET", "your-secret-key"),
			CookieName:     getEnv("SESSION_COOKIE_NAME", "pos_session"),
			DefaultExpiry:  parseDuration(getEnv("SESSION_EXPIRY", "12h"), 12*time.Hour),
			RememberExpiry: parseDuration(getEnv("SESSION_REMEMBER_EXPIRY", "336h"), 14*24*time.Hour),
			CookieSecure:   getEnv("SESSION_COOKIE_SECURE", "false") == "true",
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	if err := config.Database.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *DatabaseConfig) validate() error {
	switch c.Dialect {
	case "sqlite", "sqlserver":
		return nil
	default:
		return fmt.Errorf("unsupported DB_DIALECT %q (want sqlite or sqlserver)", c.Dialect)
	}
}

// DSN builds the SQL Server connection string. Not used for sqlite,
// which opens Path directly.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"sqlserver://%s:%s@%s:%s?database=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
