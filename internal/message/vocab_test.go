package message

import "testing"

func TestReasonPhrase(t *testing.T) {
	if got := ReasonPhrase("mention"); got != "Mentioned in" {
		t.Fatalf("mention: got %q", got)
	}
	if got := ReasonPhrase("review_requested"); got != "Review requested on" {
		t.Fatalf("review_requested: got %q", got)
	}
	if got := ReasonPhrase("assign"); got != "Assigned to" {
		t.Fatalf("assign: got %q", got)
	}
	for _, unknown := range []string{"", "unknown", "something_new"} {
		if got := ReasonPhrase(unknown); got != "Notification for" {
			t.Fatalf("ReasonPhrase(%q) = %q, want fallback", unknown, got)
		}
	}
}

func TestTypeEmoji(t *testing.T) {
	known := map[string]string{
		"Issue":                        "🐛",
		"PullRequest":                  "🔀",
		"Release":                      "🚀",
		"Commit":                       "💾",
		"Discussion":                   "💬",
		"CheckSuite":                   "✅",
		"RepositoryVulnerabilityAlert": "🔒",
	}
	for typ, want := range known {
		if got := TypeEmoji(typ); got != want {
			t.Errorf("TypeEmoji(%q) = %q, want %q", typ, got, want)
		}
	}
	for _, unknown := range []string{"", "Gist", "whatever"} {
		if got := TypeEmoji(unknown); got != "📄" {
			t.Errorf("TypeEmoji(%q) = %q, want generic marker", unknown, got)
		}
	}
}
