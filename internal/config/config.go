// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/budget-rule/backend/internal/currency"
	"github.com/joho/godotenv"
)

// Store backends
const (
	BackendSQLite  = "sqlite"
	BackendMongoDB = "mongodb"
)

var backends = []string{BackendSQLite, BackendMongoDB}

type Config struct {
	// HTTP server
	APIURL string
	Port   string

	// Store
	StoreBackend  string
	SQLitePath    string
	MongoURI      string
	MongoDatabase string

	// Identity
	JWTSecret string
	JWTIssuer string

	DefaultCurrency string
}

// Load reads the configuration from the environment. Variables from a .env
// file in the working directory are added first if the file exists, they
// never override variables that are already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIURL: os.Getenv("API_URL"),
		Port:   getEnv("PORT", "8080"),

		StoreBackend:  getEnv("STORE_BACKEND", BackendSQLite),
		SQLitePath:    getEnv("SQLITE_PATH", "data/budget.db"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "financial-literacy"),

		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		JWTIssuer: os.Getenv("AUTH_JWT_ISSUER"),

		DefaultCurrency: getEnv("DEFAULT_CURRENCY", currency.DefaultCode),
	}
}

// Validate returns an error listing all problems of the configuration.
func (c *Config) Validate() error {
	var problems []string

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("API_URL '%s' must be an absolute URL", c.APIURL))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StoreBackend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH must not be empty for the sqlite backend")
		}
	case BackendMongoDB:
		if c.MongoURI == "" {
			problems = append(problems, "MONGO_URI must be set for the mongodb backend")
		}
		if c.MongoDatabase == "" {
			problems = append(problems, "MONGO_DATABASE must not be empty for the mongodb backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid store backend '%s': must be one of %v", c.StoreBackend, backends))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "AUTH_JWT_SECRET must be set")
	}

	if _, err := currency.Lookup(c.DefaultCurrency); err != nil {
		problems = append(problems, fmt.Sprintf("invalid DEFAULT_CURRENCY: %s", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API_URL. It must only be called after Validate.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
