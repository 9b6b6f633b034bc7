package message

import "testing"

func TestBrowserURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"repo", "https://api.github.com/repos/owner/repo", "https://github.com/owner/repo"},
		{"repo with org", "https://api.github.com/repos/my-org/my-repo", "https://github.com/my-org/my-repo"},
		{"issue", "https://api.github.com/repos/owner/repo/issues/123", "https://github.com/owner/repo/issues/123"},
		{"issue large number", "https://api.github.com/repos/owner/repo/issues/99999", "https://github.com/owner/repo/issues/99999"},
		{"pull", "https://api.github.com/repos/owner/repo/pulls/456", "https://github.com/owner/repo/pull/456"},
		{"pull single digit", "https://api.github.com/repos/owner/repo/pulls/1", "https://github.com/owner/repo/pull/1"},
		{"commit", "https://api.github.com/repos/owner/repo/commits/abc123def456", "https://github.com/owner/repo/commit/abc123def456"},
		{"commit full sha", "https://api.github.com/repos/owner/repo/commits/abcdef1234567890abcdef1234567890abcdef12", "https://github.com/owner/repo/commit/abcdef1234567890abcdef1234567890abcdef12"},
		{"release", "https://api.github.com/repos/owner/repo/releases/789", "https://github.com/owner/repo/releases"},
		{"release other id collapses same", "https://api.github.com/repos/owner/repo/releases/12345", "https://github.com/owner/repo/releases"},
		{"empty", "", ""},
		{"browser url unchanged", "https://github.com/owner/repo", "https://github.com/owner/repo"},
		{"thread url unchanged", "https://api.github.com/notifications/threads/1", "https://api.github.com/notifications/threads/1"},
		{"http scheme", "http://api.github.com/repos/owner/repo", "https://github.com/owner/repo"},
		{"unrelated host unchanged", "https://example.com/repos/owner/repo/pulls/5", "https://example.com/repos/owner/repo/pulls/5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BrowserURL(tt.in)
			if got != tt.want {
				t.Fatalf("BrowserURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBrowserURLIdempotent(t *testing.T) {
	inputs := []string{
		"https://api.github.com/repos/owner/repo",
		"https://api.github.com/repos/owner/repo/pulls/456",
		"https://api.github.com/repos/owner/repo/commits/abc123",
		"https://api.github.com/repos/owner/repo/releases/789",
		"https://github.com/owner/repo",
		"",
	}
	for _, in := range inputs {
		once := BrowserURL(in)
		twice := BrowserURL(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
