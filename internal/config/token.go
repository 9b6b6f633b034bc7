package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/99designs/keyring"
)

const (
	// EnvToken overrides any configured token when set.
	EnvToken = "GHNOTIFY_TOKEN"

	keyringService = "ghnotify"
	keyringKey     = "github_token"
)

// ResolveToken picks the credential according to token_source. The
// GHNOTIFY_TOKEN environment variable always wins so CI can inject a
// token without touching the config file.
func (c *Config) ResolveToken() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		return v, nil
	}

	switch strings.TrimSpace(c.TokenSource) {
	case "", "inline":
		if strings.TrimSpace(c.Token) == "" {
			return "", fmt.Errorf("no token configured (set token in the config file or export %s)", EnvToken)
		}
		return strings.TrimSpace(c.Token), nil
	case "env":
		return "", fmt.Errorf("token_source is env but %s is not set", EnvToken)
	case "keyring":
		return keyringToken()
	default:
		return "", fmt.Errorf("unknown token_source %q", c.TokenSource)
	}
}

func keyringToken() (string, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: keyringService,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/ghnotify/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("ghnotify-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return "", fmt.Errorf("opening keyring: %w", err)
	}

	item, err := ring.Get(keyringKey)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", keyringKey, err)
	}
	return string(item.Data), nil
}
