package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr            string
		RequestTimeout  time.Duration
		ShutdownTimeout time.Duration
	}
	Database struct {
		Driver          string
		Path            string
		URL             string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxIdleTime time.Duration
		ConnectTimeout  time.Duration
	}
	Health struct {
		Timeout time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	_ = gotenv.Load() // optional .env; set variables win

	v := viper.New()
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.requesttimeout", "0s")
	v.SetDefault("server.shutdowntimeout", "10s")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "data/storefront.db")
	v.SetDefault("database.url", "")
	v.SetDefault("database.maxopenconns", 10)
	v.SetDefault("database.maxidleconns", 5)
	v.SetDefault("database.connmaxidletime", "5m")
	v.SetDefault("database.connecttimeout", "10s")
	v.SetDefault("health.timeout", "2s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := v.BindEnv("database.url", "STOREFRONT_DATABASE_URL", "DATABASE_URL"); err != nil {
		return Config{}, fmt.Errorf("bind database url: %w", err)
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyAppHostPort(&cfg); err != nil {
		return Config{}, err
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Path == "" {
			return Config{}, fmt.Errorf("database path is required for sqlite")
		}
	case DriverPostgres:
		if cfg.Database.URL == "" {
			return Config{}, fmt.Errorf("database url is required for postgres")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// applyAppHostPort honours APP_HOST/APP_PORT unless STOREFRONT_SERVER_ADDR is set.
func applyAppHostPort(cfg *Config) error {
	if _, ok := os.LookupEnv("STOREFRONT_SERVER_ADDR"); ok {
		return nil
	}
	host, hasHost := os.LookupEnv("APP_HOST")
	port, hasPort := os.LookupEnv("APP_PORT")
	if !hasHost && !hasPort {
		return nil
	}

	defHost, defPort, err := net.SplitHostPort(cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("parse server addr: %w", err)
	}
	if !hasHost {
		host = defHost
	}
	if !hasPort {
		port = defPort
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return fmt.Errorf("APP_PORT must be a valid port: %w", err)
	}

	cfg.Server.Addr = net.JoinHostPort(host, port)
	return nil
}
