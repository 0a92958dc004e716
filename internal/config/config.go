// Package config loads the service configuration from defaults, an optional
// config file and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Public  PublicConfig
	Storage StorageConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// PublicConfig describes how clients reach the service; listings are built
// from it.
type PublicConfig struct {
	BaseURL string
	Prefix  string
}

type StorageConfig struct {
	GraphsDir string
	StaticDir string
}

type SessionConfig struct {
	CookieName      string
	TTL             time.Duration
	CleanupInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

// environment maps config keys to the variables that override them.
var environment = map[string]string{
	"server.host":              "LISTEN_HOST",
	"server.port":              "LISTEN_PORT",
	"server.read_timeout":      "SERVER_READ_TIMEOUT",
	"server.write_timeout":     "SERVER_WRITE_TIMEOUT",
	"server.shutdown_timeout":  "SERVER_SHUTDOWN_TIMEOUT",
	"public.base_url":          "BASE_URL",
	"public.prefix":            "PREFIX",
	"storage.graphs_dir":       "GRAPHS_DIR",
	"storage.static_dir":       "STATIC_DIR",
	"session.cookie_name":      "SESSION_COOKIE",
	"session.ttl":              "SESSION_TTL",
	"session.cleanup_interval": "SESSION_CLEANUP_INTERVAL",
	"cors.allowed_origins":     "CORS_ALLOWED_ORIGIN",
	"log.level":                "LOG_LEVEL",
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("public.base_url", "http://localhost:8080")
	v.SetDefault("public.prefix", "/")

	v.SetDefault("storage.graphs_dir", "./graphs")
	v.SetDefault("storage.static_dir", "./static")

	v.SetDefault("session.cookie_name", "graphsupply_session")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cleanup_interval", 10*time.Minute)

	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.level", "info")

	for key, env := range environment {
		// BindEnv only fails without a key.
		_ = v.BindEnv(key, env)
	}

	return v
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment apply.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Public: PublicConfig{
			BaseURL: strings.TrimRight(v.GetString("public.base_url"), "/"),
			Prefix:  NormalizePrefix(v.GetString("public.prefix")),
		},
		Storage: StorageConfig{
			GraphsDir: v.GetString("storage.graphs_dir"),
			StaticDir: v.GetString("storage.static_dir"),
		},
		Session: SessionConfig{
			CookieName:      v.GetString("session.cookie_name"),
			TTL:             v.GetDuration("session.ttl"),
			CleanupInterval: v.GetDuration("session.cleanup_interval"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetStringSlice("cors.allowed_origins")),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid config: listen port %d out of range", cfg.Server.Port)
	}
	if cfg.Session.CookieName == "" {
		return nil, fmt.Errorf("invalid config: empty session cookie name")
	}
	if cfg.Session.CleanupInterval <= 0 {
		return nil, fmt.Errorf("invalid config: session cleanup interval must be positive")
	}

	return cfg, nil
}

// Address is the listen address in host:port form.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// URL joins the public base URL, the prefix and path segments.
func (p PublicConfig) URL(segments ...string) string {
	parts := []string{p.BaseURL}
	if prefix := strings.Trim(p.Prefix, "/"); prefix != "" {
		parts = append(parts, prefix)
	}
	for _, s := range segments {
		if s = strings.Trim(s, "/"); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

// NormalizePrefix returns "/" or a path with a leading and no trailing slash.
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return "/"
	}
	return "/" + prefix
}

// Logger builds the console logger for the configured level, falling back to
// info on an unknown level.
func (c LogConfig) Logger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Str("service", "graphsupply").Logger()
}

func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
