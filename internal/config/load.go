package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"

	"ghnotify/internal/message"
)

// Load reads, decodes and validates the config file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, b)
}

// Parse decodes and validates raw config bytes. The path only selects
// YAML vs JSON decoding based on the file extension.
func Parse(path string, data []byte) (*Config, error) {
	jb, err := coerceToJSONBytes(path, data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// cronParser matches the watch-mode parser: 5- and 6-field specs plus
// descriptors like "@hourly".
var cronParser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Validate normalizes nothing and rejects everything unknown, so a typo in
// an enum or schedule fails at load time instead of mid-run.
func (c *Config) Validate() error {
	if _, err := message.ParseStyle(c.MessageStyle); err != nil {
		return err
	}

	switch strings.TrimSpace(c.TokenSource) {
	case "", "inline", "env", "keyring":
	default:
		return fmt.Errorf("unknown token_source %q (want inline, env or keyring)", c.TokenSource)
	}

	switch strings.TrimSpace(c.Action) {
	case "", "none", "mark-read", "mark-done":
	default:
		return fmt.Errorf("unknown action %q (want none, mark-read or mark-done)", c.Action)
	}

	if c.MaxNotifications < 0 {
		return fmt.Errorf("max_notifications must be >= 0, got %d", c.MaxNotifications)
	}
	if c.MaxActions < 0 {
		return fmt.Errorf("max_actions must be >= 0, got %d", c.MaxActions)
	}

	if c.Watch.Enabled {
		if _, err := cronParser.Parse(c.Schedule()); err != nil {
			return fmt.Errorf("watch schedule %q: %w", c.Schedule(), err)
		}
	}

	if c.Deliver.Telegram.Token != "" && c.Deliver.Telegram.ChatID == 0 {
		return fmt.Errorf("deliver.telegram.chat_id is required when a telegram token is set")
	}

	return nil
}
