package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate reports the first configuration problem found
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("server.max_body_bytes must not be negative")
	}
	if c.Server.SimulatedLatency < 0 {
		return errors.New("server.simulated_latency must not be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	switch strings.ToLower(strings.TrimSpace(c.Translation.Mode)) {
	case "sequential", "single_pass":
	default:
		return fmt.Errorf("translation.mode %q is not one of sequential, single_pass", c.Translation.Mode)
	}

	if c.Session.MaxMessages < 1 {
		return errors.New("session.max_messages must be at least 1")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	if c.Session.RedisURL != "" && !strings.HasPrefix(c.Session.RedisURL, "redis://") &&
		!strings.HasPrefix(c.Session.RedisURL, "rediss://") {
		return fmt.Errorf("session.redis_url %q must use redis:// or rediss://", c.Session.RedisURL)
	}
	return nil
}
