package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "EVENTDESK_"

// Config represents the top-level application config.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Seed     SeedConfig     `koanf:"seed"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	MaxBodySizeMB   int           `koanf:"max_body_size_mb"`
	Mode            string        `koanf:"mode"` // debug | release
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Type         string `koanf:"type"` // postgres | memory
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type AuthConfig struct {
	ClientID        string        `koanf:"client_id"`
	ClientSecret    string        `koanf:"client_secret"`
	SigningKey      string        `koanf:"signing_key"`
	ResourceID      string        `koanf:"resource_id"`
	AccessTokenTTL  time.Duration `koanf:"access_token_ttl"`
	RefreshTokenTTL time.Duration `koanf:"refresh_token_ttl"`
	BcryptCost      int           `koanf:"bcrypt_cost"`
}

// SeedConfig lists the accounts created at startup when missing.
type SeedConfig struct {
	Enabled  bool                `koanf:"enabled"`
	Accounts []SeedAccountConfig `koanf:"accounts"`
}

type SeedAccountConfig struct {
	Email    string   `koanf:"email"`
	Password string   `koanf:"password"`
	Roles    []string `koanf:"roles"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug | info | warn | error
}

// SlogLevel maps the configured level onto slog.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Addr returns the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0")
	}

	switch c.Database.Type {
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported database.type %q (must be postgres or memory)", c.Database.Type)
	}

	if strings.TrimSpace(c.Auth.ClientID) == "" || strings.TrimSpace(c.Auth.ClientSecret) == "" {
		return fmt.Errorf("auth.client_id and auth.client_secret are required")
	}
	if len(c.Auth.SigningKey) < 32 {
		return fmt.Errorf("auth.signing_key must be at least 32 bytes")
	}
	if strings.TrimSpace(c.Auth.ResourceID) == "" {
		return fmt.Errorf("auth.resource_id is required")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}
	if c.Auth.RefreshTokenTTL < c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must not be shorter than auth.access_token_ttl")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("invalid auth.bcrypt_cost %d (must be 4-31)", c.Auth.BcryptCost)
	}

	if c.Seed.Enabled {
		seen := make(map[string]struct{}, len(c.Seed.Accounts))
		for i, acc := range c.Seed.Accounts {
			if strings.TrimSpace(acc.Email) == "" || acc.Password == "" {
				return fmt.Errorf("seed.accounts[%d] needs an email and a password", i)
			}
			if _, dup := seen[acc.Email]; dup {
				return fmt.Errorf("seed.accounts[%d]: duplicate email %q", i, acc.Email)
			}
			seen[acc.Email] = struct{}{}
			for _, role := range acc.Roles {
				if role != "ADMIN" && role != "USER" {
					return fmt.Errorf("seed.accounts[%d]: unknown role %q", i, role)
				}
			}
		}
	}

	return nil
}

// Load parses config from defaults, then the YAML file, then EVENTDESK_* env
// vars (a double underscore separates levels), and validates the result.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":             8080,
		"server.host":             "0.0.0.0",
		"server.max_body_size_mb": 1,
		"server.mode":             "release",
		"server.shutdown_timeout": "10s",
		"database.type":           "postgres",
		"database.dsn":            "",
		"database.max_open_conns": 25,
		"database.max_idle_conns": 25,
		"database.auto_migrate":   true,
		"auth.client_id":          "",
		"auth.client_secret":      "",
		"auth.signing_key":        "",
		"auth.resource_id":        "event",
		"auth.access_token_ttl":   "10m",
		"auth.refresh_token_ttl":  "24h",
		"auth.bcrypt_cost":        10,
		"seed.enabled":            true,
		"log.level":               "info",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
