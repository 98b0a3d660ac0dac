// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds configuration knobs for transports, storage and workers.
type Config struct {
	Env     string
	LogFile string

	HTTPAddr        string
	GRPCAddr        string
	ShutdownTimeout time.Duration

	StoreDriver       string
	MySQLDSN          string
	SQLitePath        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	OperationTimeout  time.Duration

	// RedisAddr enables Idempotency-Key deduplication when set.
	RedisAddr string

	SessionHeader string
	CORSOrigins   []string

	NotifyWorkers   int
	NotifyQueueSize int
	SendGridAPIKey  string
	EmailSender     string
	StoreName       string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvms(key string, defMs int) time.Duration {
	return time.Duration(atoienv(key, defMs)) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

func listenv(key, def string) []string {
	var out []string
	for _, v := range strings.Split(getenv(key, def), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LoadDotenv reads the given .env files (".env" when none) into the process
// environment. Variables already set win. Missing files are not an error.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Env:     getenv("APP_ENV", "development"),
		LogFile: getenv("LOG_FILE", ""),

		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		GRPCAddr:        getenv("GRPC_ADDR", ":50051"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT_S", 5),

		StoreDriver:       getenv("STORE_DRIVER", DriverMySQL),
		MySQLDSN:          getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/storefront"),
		SQLitePath:        getenv("SQLITE_PATH", "storefront.db"),
		DBMaxOpenConns:    atoienv("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    atoienv("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetime: durenvs("DB_CONN_MAX_LIFETIME_S", 300),
		OperationTimeout:  durenvms("OPERATION_TIMEOUT_MS", 5000),

		RedisAddr: getenv("REDIS_ADDR", ""),

		SessionHeader: getenv("SESSION_HEADER", "X-Session-ID"),
		CORSOrigins:   listenv("CORS_ORIGINS", "http://localhost:3000,https://queen-store.web.app"),

		NotifyWorkers:   atoienv("NOTIFY_WORKERS", 4),
		NotifyQueueSize: atoienv("NOTIFY_QUEUE_SIZE", 1000),
		SendGridAPIKey:  getenv("SENDGRID_API_KEY", ""),
		EmailSender:     getenv("EMAIL_SENDER", ""),
		StoreName:       getenv("STORE_NAME", "Queen Store"),
	}
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q: must be %s or %s", c.StoreDriver, DriverMySQL, DriverSQLite)
	}
	if c.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DBMaxOpenConns)
	}
	if c.NotifyWorkers < 1 || c.NotifyQueueSize < 1 {
		return fmt.Errorf("NOTIFY_WORKERS and NOTIFY_QUEUE_SIZE must be positive")
	}
	if c.SessionHeader == "" {
		return fmt.Errorf("SESSION_HEADER must not be empty")
	}
	if c.SendGridAPIKey != "" && c.EmailSender == "" {
		return fmt.Errorf("EMAIL_SENDER is required when SENDGRID_API_KEY is set")
	}
	return nil
}
