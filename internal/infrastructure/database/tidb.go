package database

import (
	"crypto/tls"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Config holds the connection settings for the metadata database
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// ConfigFromEnv reads TIDB_* environment variables, applying defaults
func ConfigFromEnv() Config {
	cfg := Config{
		Host:     os.Getenv("TIDB_HOST"),
		Port:     os.Getenv("TIDB_PORT"),
		User:     os.Getenv("TIDB_USER"),
		Password: os.Getenv("TIDB_PASSWORD"),
		Database: os.Getenv("TIDB_DATABASE"),
	}
	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.Database == "" {
		cfg.Database = "hedap"
	}
	return cfg
}

// IsRemote reports whether the host needs TLS
func (c Config) IsRemote() bool {
	return c.Host != "" && c.Host != "127.0.0.1" && c.Host != "localhost"
}

// DSN builds the driver connection string
func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Host + ":" + c.Port
	mc.DBName = c.Database
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	if c.IsRemote() {
		mc.TLSConfig = "tidb"
	}
	return mc.FormatDSN()
}

// TiDBConnection represents a TiDB database connection
// Note: sql.DB is already thread-safe and manages its own connection pool.
type TiDBConnection struct {
	db *sql.DB
}

var (
	instance *TiDBConnection
	once     sync.Once
	initErr  error
	tlsOnce  sync.Once // Ensure TLS config is registered only once
)

// GetInstance returns the singleton TiDB connection configured from the environment
func GetInstance() (*TiDBConnection, error) {
	once.Do(func() {
		instance, initErr = Open(ConfigFromEnv())
	})
	return instance, initErr
}

// Open creates a new connection pool and verifies it with a ping
func Open(cfg Config) (*TiDBConnection, error) {
	if cfg.IsRemote() {
		// Remote host (e.g., TiDB Cloud) - register TLS config with ServerName
		tlsOnce.Do(func() {
			if err := mysql.RegisterTLSConfig("tidb", &tls.Config{
				MinVersion: tls.VersionTLS12,
				ServerName: cfg.Host,
			}); err != nil {
				log.Printf("Failed to register TLS config: %v\n", err)
			}
		})
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Describe traffic is read-only and bursty; keep idle == open to avoid churn
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(20)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &TiDBConnection{db: db}, nil
}

// DB returns the underlying *sql.DB connection
func (c *TiDBConnection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *TiDBConnection) Close() error {
	return c.db.Close()
}
