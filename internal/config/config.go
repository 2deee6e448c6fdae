package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Session store backends selectable via SESSION_STORE.
const (
	SessionStoreMemory = "memory"
	SessionStoreMongo  = "mongo"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	MongoDB MongoDBConfig
	Alerts  AlertsConfig
	Sheets  SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// BackendConfig points at the inventory REST API the dashboard orchestrates.
type BackendConfig struct {
	BaseURL string
}

// SessionConfig selects the session store and the cookie carrying its IDs.
type SessionConfig struct {
	Store      string
	CookieName string
}

// MongoDBConfig holds settings for the Mongo-backed session store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// AlertsConfig drives the scheduled low-stock digest. The digest runs only
// when a service token is configured.
type AlertsConfig struct {
	CronSchedule string
	ServiceToken string
}

// SheetsConfig contains configuration for the optional digest export sink.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from
		// the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Backend: BackendConfig{
			BaseURL: getenvWithDefault("BACKEND_BASE_URL", "http://localhost:8000"),
		},
		Session: SessionConfig{
			Store:      getenvWithDefault("SESSION_STORE", SessionStoreMemory),
			CookieName: getenvWithDefault("SESSION_COOKIE", "stockdesk_session"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "stockdesk"),
		},
		Alerts: AlertsConfig{
			CronSchedule: getenvWithDefault("ALERT_CRON_SCHEDULE", "0 8 * * *"),
			ServiceToken: os.Getenv("ALERT_SERVICE_TOKEN"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL must be provided")
	}

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreMongo:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided when SESSION_STORE=mongo")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must not be empty")
		}
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.Session.Store)
	}

	if c.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE must not be empty")
	}

	if c.Alerts.CronSchedule == "" {
		return errors.New("ALERT_CRON_SCHEDULE must be provided")
	}

	// Sheets export is optional, but half a configuration is a mistake.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_REPORT_ID must be set together")
	}

	return nil
}

// SheetsEnabled reports whether the digest export sink is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
