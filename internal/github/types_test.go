package github

import "testing"

func TestAccessorFallbacks(t *testing.T) {
	var nilN *Notification
	if got := nilN.SubjectTitle(); got != "No title" {
		t.Fatalf("nil SubjectTitle: %q", got)
	}
	if got := nilN.SubjectType(); got != "Unknown" {
		t.Fatalf("nil SubjectType: %q", got)
	}
	if got := nilN.RepoFullName(); got != "Unknown Repository" {
		t.Fatalf("nil RepoFullName: %q", got)
	}
	if got := nilN.ReasonCode(); got != "unknown" {
		t.Fatalf("nil ReasonCode: %q", got)
	}
	if got := nilN.Updated(); got != "N/A" {
		t.Fatalf("nil Updated: %q", got)
	}
	if got := nilN.SubjectURL(); got != "" {
		t.Fatalf("nil SubjectURL: %q", got)
	}
	if got := nilN.RepoURL(); got != "" {
		t.Fatalf("nil RepoURL: %q", got)
	}

	empty := &Notification{}
	if got := empty.SubjectTitle(); got != "No title" {
		t.Fatalf("empty SubjectTitle: %q", got)
	}
	if got := empty.Updated(); got != "N/A" {
		t.Fatalf("empty Updated: %q", got)
	}
}

func TestSubjectURLFallbackOrder(t *testing.T) {
	n := &Notification{
		URL:     "https://api.github.com/notifications/threads/9",
		Subject: &Subject{URL: "https://api.github.com/repos/o/r/issues/1"},
	}
	if got := n.SubjectURL(); got != "https://api.github.com/repos/o/r/issues/1" {
		t.Fatalf("subject URL preferred: %q", got)
	}

	n.Subject.URL = ""
	if got := n.SubjectURL(); got != "https://api.github.com/notifications/threads/9" {
		t.Fatalf("thread URL fallback: %q", got)
	}
}
