package config

import "strings"

// FilterAll is the sentinel that disables a reason/type filter.
const FilterAll = "all"

type Config struct {
	// Token is the inline GitHub token. GHNOTIFY_TOKEN always wins over
	// the inline value; token_source selects env/keyring lookup instead.
	Token       string `json:"token,omitempty"`
	TokenSource string `json:"token_source,omitempty"` // inline | env | keyring

	// Reasons / Types are comma-separated filter values, or "all".
	Reasons string `json:"reasons,omitempty"`
	Types   string `json:"types,omitempty"`

	MessageStyle     string `json:"message_style,omitempty"` // slack | raw | compact
	MaxNotifications int    `json:"max_notifications,omitempty"`

	// Participating mirrors the ?participating=true list parameter.
	// Pointer so "omitted" defaults to true.
	Participating *bool `json:"participating,omitempty"`

	Action        string `json:"action,omitempty"` // none | mark-read | mark-done
	MaxActions    int    `json:"max_actions,omitempty"`
	ActOnExcluded bool   `json:"act_on_excluded,omitempty"`

	// APIBaseURL overrides https://api.github.com (tests, GHES).
	APIBaseURL string `json:"api_base_url,omitempty"`

	Deliver DeliverConfig `json:"deliver,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty"`
	Watch   WatchConfig   `json:"watch,omitempty"`
}

type DeliverConfig struct {
	// Stdout defaults to true when omitted.
	Stdout *bool `json:"stdout,omitempty"`

	// OutputFile, when set, appends the message in the GitHub Actions
	// output-file format (message<<EOF ... EOF).
	OutputFile string `json:"output_file,omitempty"`

	SlackWebhook string         `json:"slack_webhook,omitempty"`
	Telegram     TelegramConfig `json:"telegram,omitempty"`
}

type TelegramConfig struct {
	Token  string `json:"token,omitempty"`
	ChatID int64  `json:"chat_id,omitempty"`
}

type LoggingConfig struct {
	Level   string `json:"level,omitempty"`
	Console *bool  `json:"console,omitempty"`
}

// WatchConfig controls the long-running mode: the pipeline re-runs on a
// cron schedule and the config file is hot reloaded.
type WatchConfig struct {
	Enabled  bool   `json:"enabled,omitempty"`
	Schedule string `json:"schedule,omitempty"` // cron spec or descriptor, default "@hourly"
}

// ParticipatingOnly reports whether the list call should be restricted to
// threads the user participates in (the default).
func (c *Config) ParticipatingOnly() bool {
	return c.Participating == nil || *c.Participating
}

// ReasonFilter returns the configured reason codes, or nil when the "all"
// sentinel (or nothing) is configured.
func (c *Config) ReasonFilter() []string { return splitFilter(c.Reasons) }

// TypeFilter returns the configured subject types, or nil for "all".
func (c *Config) TypeFilter() []string { return splitFilter(c.Types) }

func splitFilter(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FilterAll) {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) StdoutEnabled() bool {
	return c.Deliver.Stdout == nil || *c.Deliver.Stdout
}

func (c *Config) ConsoleLogging() bool {
	return c.Logging.Console == nil || *c.Logging.Console
}

func (c *Config) Schedule() string {
	if s := strings.TrimSpace(c.Watch.Schedule); s != "" {
		return s
	}
	return "@hourly"
}
