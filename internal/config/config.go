// Package config loads service configuration from YAML, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds AfyaBuddy configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Translation TranslationConfig `yaml:"translation"`
	Session     SessionConfig     `yaml:"session"`
	History     HistoryConfig     `yaml:"history"`
}

type ServerConfig struct {
	Addr             string        `yaml:"addr"` // HTTP listen address, e.g. ":8080"
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes     int64         `yaml:"max_body_bytes"`
	SimulatedLatency time.Duration `yaml:"simulated_latency"` // artificial delay before answering
	AllowedOrigins   []string      `yaml:"allowed_origins"`   // websocket origins; empty allows all
}

type LogConfig struct {
	Level       string `yaml:"level"` // debug | info | warn | error
	Development bool   `yaml:"development"`
}

type TranslationConfig struct {
	Mode string `yaml:"mode"` // sequential | single_pass
}

type SessionConfig struct {
	RedisURL    string        `yaml:"redis_url"` // empty keeps sessions in memory
	TTL         time.Duration `yaml:"ttl"`
	MaxMessages int           `yaml:"max_messages"`
}

type HistoryConfig struct {
	DBPath string `yaml:"db_path"` // empty disables the consultation log
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyDefaults(cfg)
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Log: LogConfig{
			Level: "info",
		},
		Translation: TranslationConfig{
			Mode: "sequential",
		},
		Session: SessionConfig{
			TTL:         24 * time.Hour,
			MaxMessages: 10,
		},
	}
}

func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = def.Server.IdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = def.Server.MaxBodyBytes
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Translation.Mode == "" {
		cfg.Translation.Mode = def.Translation.Mode
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = def.Session.TTL
	}
	if cfg.Session.MaxMessages == 0 {
		cfg.Session.MaxMessages = def.Session.MaxMessages
	}
}

// applyEnvOverrides lets deployment environments override file settings
func (c *Config) applyEnvOverrides() {
	if port := Get("PORT", ""); port != "" {
		c.Server.Addr = ":" + port
	}
	c.Server.SimulatedLatency = GetDuration("AFYA_SIMULATED_LATENCY", c.Server.SimulatedLatency)
	if origins := Get("ALLOWED_ORIGINS", ""); origins != "" {
		c.Server.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, o)
			}
		}
	}

	c.Log.Level = Get("AFYA_LOG_LEVEL", c.Log.Level)
	c.Log.Development = GetBool("AFYA_LOG_DEVELOPMENT", c.Log.Development)
	c.Translation.Mode = Get("AFYA_TRANSLATION_MODE", c.Translation.Mode)
	c.Session.RedisURL = Get("REDIS_URL", c.Session.RedisURL)
	c.Session.MaxMessages = GetInt("AFYA_SESSION_MAX_MESSAGES", c.Session.MaxMessages)
	c.History.DBPath = Get("AFYA_DB_PATH", c.History.DBPath)
}
