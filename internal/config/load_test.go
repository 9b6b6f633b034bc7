package config

import (
	"strings"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
token: inline-token
reasons: "mention, assign"
types: all
message_style: raw
max_notifications: 5
action: mark-done
max_actions: 3
act_on_excluded: true
deliver:
  output_file: /tmp/out.txt
logging:
  level: debug
watch:
  enabled: true
  schedule: "@hourly"
`)
	cfg, err := Parse("config.yaml", data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := cfg.ReasonFilter(); len(got) != 2 || got[0] != "mention" || got[1] != "assign" {
		t.Fatalf("ReasonFilter = %v", got)
	}
	if got := cfg.TypeFilter(); got != nil {
		t.Fatalf("types 'all' must disable the filter, got %v", got)
	}
	if cfg.MessageStyle != "raw" || cfg.MaxNotifications != 5 {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
	if cfg.Action != "mark-done" || cfg.MaxActions != 3 || !cfg.ActOnExcluded {
		t.Fatalf("unexpected action cfg %+v", cfg)
	}
	if !cfg.ParticipatingOnly() {
		t.Fatalf("participating must default to true")
	}
	if !cfg.StdoutEnabled() {
		t.Fatalf("stdout must default to true")
	}
	if cfg.Schedule() != "@hourly" {
		t.Fatalf("Schedule = %q", cfg.Schedule())
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse("config.yaml", []byte("tokenn: oops\n"))
	if err == nil {
		t.Fatalf("unknown field must be rejected")
	}
}

func TestValidateEnums(t *testing.T) {
	bad := []string{
		"message_style: markdown",
		"action: archive",
		"token_source: vault",
		"max_notifications: -1",
		"max_actions: -2",
		"watch:\n  enabled: true\n  schedule: \"not a cron spec\"",
	}
	for _, snippet := range bad {
		if _, err := Parse("config.yaml", []byte(snippet+"\n")); err == nil {
			t.Errorf("expected validation error for %q", snippet)
		}
	}

	good := []string{
		"message_style: compact",
		"action: mark-read",
		"watch:\n  enabled: true\n  schedule: \"*/5 * * * *\"",
		"watch:\n  enabled: true\n  schedule: \"0 */5 * * * *\"",
	}
	for _, snippet := range good {
		if _, err := Parse("config.yaml", []byte(snippet+"\n")); err != nil {
			t.Errorf("unexpected error for %q: %v", snippet, err)
		}
	}
}

func TestValidateTelegramNeedsChatID(t *testing.T) {
	data := []byte("deliver:\n  telegram:\n    token: abc\n")
	if _, err := Parse("config.yaml", data); err == nil || !strings.Contains(err.Error(), "chat_id") {
		t.Fatalf("expected chat_id error, got %v", err)
	}
}

func TestResolveTokenEnvWins(t *testing.T) {
	t.Setenv(EnvToken, "env-token")
	cfg := &Config{Token: "inline-token"}
	got, err := cfg.ResolveToken()
	if err != nil || got != "env-token" {
		t.Fatalf("ResolveToken = %q, %v", got, err)
	}
}

func TestResolveTokenInline(t *testing.T) {
	t.Setenv(EnvToken, "")
	cfg := &Config{Token: "inline-token"}
	got, err := cfg.ResolveToken()
	if err != nil || got != "inline-token" {
		t.Fatalf("ResolveToken = %q, %v", got, err)
	}

	empty := &Config{}
	if _, err := empty.ResolveToken(); err == nil {
		t.Fatalf("missing token must be an error")
	}

	envOnly := &Config{TokenSource: "env"}
	if _, err := envOnly.ResolveToken(); err == nil {
		t.Fatalf("token_source env without the variable must be an error")
	}
}

func TestSplitFilter(t *testing.T) {
	if got := splitFilter("all"); got != nil {
		t.Fatalf("all -> nil, got %v", got)
	}
	if got := splitFilter(" ALL "); got != nil {
		t.Fatalf("case-insensitive all, got %v", got)
	}
	if got := splitFilter(""); got != nil {
		t.Fatalf("empty -> nil, got %v", got)
	}
	got := splitFilter("mention, assign,,review_requested ")
	want := []string{"mention", "assign", "review_requested"}
	if len(got) != len(want) {
		t.Fatalf("splitFilter = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitFilter = %v, want %v", got, want)
		}
	}
}
