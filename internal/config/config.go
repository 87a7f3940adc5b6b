package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"budget-app-go/pkg/logger"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	HTTPPort string
	Env      string
	Log      LogConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	DB       DBConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type HTTPConfig struct {
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

type StorageConfig struct {
	Backend    string
	SQLitePath string
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

var defaults = map[string]any{
	"HTTP_PORT":            "8080",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"HTTP_REQUEST_TIMEOUT": 30 * time.Second,
	"CORS_ALLOWED_ORIGINS": "*",
	"STORAGE_BACKEND":      BackendMemory,
	"SQLITE_PATH":          "./data/budget.db",
	"DB_DSN":               "",
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "postgres",
	"DB_NAME":              "budget_app",
	"DB_SSLMODE":           "disable",
	"DB_TIMEZONE":          "UTC",
	"DB_MAX_OPEN_CONNS":    10,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": 30 * time.Minute,
}

// Load reads .env (if any) into the environment and then resolves every key
// from the environment, falling back to defaults.
func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return Config{
		HTTPPort: v.GetString("HTTP_PORT"),
		Env:      v.GetString("ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		HTTP: HTTPConfig{
			RequestTimeout:     v.GetDuration("HTTP_REQUEST_TIMEOUT"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Storage: StorageConfig{
			Backend:    strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			TimeZone:        v.GetString("DB_TIMEZONE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
	}, nil
}

// Validate reports every invalid setting at once.
// Migrations open their own connection, so an in-memory database would be
// left without a schema.
func isInMemorySQLite(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:") || strings.Contains(path, "mode=memory")
}

func (c Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.HTTPPort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid HTTP_PORT %q: must be a number", c.HTTPPort))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid HTTP_PORT %d: must be between 1 and 65535", port))
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT %q: must be json or text", c.Log.Format))
	}

	if c.HTTP.RequestTimeout <= 0 {
		problems = append(problems, "HTTP_REQUEST_TIMEOUT must be positive")
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendSQLite:
		path := strings.TrimSpace(c.Storage.SQLitePath)
		switch {
		case path == "":
			problems = append(problems, "SQLITE_PATH is required for the sqlite backend")
		case isInMemorySQLite(path):
			problems = append(problems, fmt.Sprintf("invalid SQLITE_PATH %q: in-memory databases are not supported, use the memory backend", path))
		}
	case BackendPostgres:
		if c.DB.DSN == "" && (c.DB.Host == "" || c.DB.Name == "") {
			problems = append(problems, "DB_DSN or DB_HOST and DB_NAME are required for the postgres backend")
		}
		if c.DB.MaxOpenConns < 0 || c.DB.MaxIdleConns < 0 {
			problems = append(problems, "DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid STORAGE_BACKEND %q: must be one of memory, postgres, sqlite", c.Storage.Backend))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
