package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds application level configuration loaded from a YAML file, environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	JWTSecret           string
	TokenTTL            time.Duration
	FXAPIURL            string
	GeoAPIURL           string
	RedisAddr           string
	RedisPassword       string
	EventLockTTL        time.Duration
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPassword        string
	SMTPFrom            string
	RateRefreshInterval time.Duration
	ShutdownTimeout     time.Duration
	LogLevel            string
	LogFile             string
	CORSAllowedOrigins  []string
}

const (
	defaultRunAddress          = ":8080"
	defaultJWTSecret           = "change-me-in-production"
	defaultTokenTTL            = 24 * time.Hour
	defaultFXAPIURL            = "https://api.exchangerate-api.com/v4/latest"
	defaultGeoAPIURL           = "https://ipapi.co"
	defaultEventLockTTL        = 5 * time.Minute
	defaultSMTPHost            = "smtp.gmail.com"
	defaultSMTPPort            = 587
	defaultRateRefreshInterval = time.Hour
	defaultShutdownTimeout     = 10 * time.Second
	defaultLogLevel            = "info"
	defaultCORSAllowedOrigins  = "*"
)

// Load parses configuration from flags, environment variables and the optional CONFIG_FILE.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		fromFile, err := fileLookup(path)
		if err != nil {
			return nil, err
		}
		lookup = chain(lookup, fromFile)
	}

	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:            getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		FXAPIURL:            getString(lookup, "FX_API_URL", defaultFXAPIURL),
		GeoAPIURL:           getString(lookup, "GEO_API_URL", defaultGeoAPIURL),
		RedisAddr:           getString(lookup, "REDIS_ADDR", ""),
		RedisPassword:       getString(lookup, "REDIS_PASSWORD", ""),
		EventLockTTL:        getDuration(lookup, "EVENT_LOCK_TTL", defaultEventLockTTL),
		SMTPHost:            getString(lookup, "SMTP_HOST", defaultSMTPHost),
		SMTPPort:            getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUser:            getString(lookup, "SMTP_USER", ""),
		SMTPPassword:        getString(lookup, "SMTP_PASSWORD", ""),
		SMTPFrom:            getString(lookup, "SMTP_FROM", ""),
		RateRefreshInterval: getDuration(lookup, "RATE_REFRESH_INTERVAL", defaultRateRefreshInterval),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:            getString(lookup, "LOG_LEVEL", defaultLogLevel),
		LogFile:             getString(lookup, "LOG_FILE", ""),
	}
	origins := getString(lookup, "CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins)

	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		refreshStr         = cfg.RateRefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.StringVar(&cfg.FXAPIURL, "fx-api", cfg.FXAPIURL, "FX rate provider base URL")
	fs.StringVar(&cfg.GeoAPIURL, "geo-api", cfg.GeoAPIURL, "IP geolocation provider base URL")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for webhook delivery locks")
	fs.StringVar(&refreshStr, "rate-refresh", refreshStr, "Interval between background rate refreshes, 0 disables")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Rotated log file, stdout only when empty")
	fs.StringVar(&origins, "cors-origins", origins, "Comma separated list of allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.RateRefreshInterval, err = time.ParseDuration(refreshStr); err != nil {
		return nil, fmt.Errorf("invalid rate refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.CORSAllowedOrigins = splitList(origins)

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.EventLockTTL <= 0 {
		cfg.EventLockTTL = defaultEventLockTTL
	}

	if cfg.SMTPPort <= 0 {
		cfg.SMTPPort = defaultSMTPPort
	}

	if cfg.RateRefreshInterval < 0 {
		cfg.RateRefreshInterval = 0
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSAllowedOrigins}
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

// fileLookup exposes a YAML config file through the same keys as the environment.
// Keys are matched case-insensitively, so DATABASE_URI reads database_uri.
func fileLookup(path string) (envLookup, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}
	return func(key string) (string, bool) {
		name := strings.ToLower(key)
		if !k.Exists(name) {
			return "", false
		}
		switch v := k.Get(name).(type) {
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, fmt.Sprint(item))
			}
			return strings.Join(items, ","), true
		default:
			return fmt.Sprint(v), true
		}
	}, nil
}

// chain consults lookups in order and returns the first non-empty value.
func chain(lookups ...envLookup) envLookup {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if v, ok := l(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
