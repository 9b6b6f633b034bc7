package message

import (
	"fmt"
	"strings"

	"ghnotify/internal/github"
)

// Style selects the output rendering. The set is closed; ParseStyle
// rejects anything else.
type Style string

const (
	// StyleSlack is the emoji-rich rendering with <url|text> links.
	StyleSlack Style = "slack"
	// StyleRaw is plain ASCII: no emoji, no links, no emphasis.
	StyleRaw Style = "raw"
	// StyleCompact is one line per notification, built around the
	// reason phrase ("Mentioned in Issue *...* (owner/repo) on ...").
	StyleCompact Style = "compact"
)

// ParseStyle normalizes a config/flag value. Empty means the default
// (slack) style.
func ParseStyle(s string) (Style, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", string(StyleSlack):
		return StyleSlack, nil
	case string(StyleRaw):
		return StyleRaw, nil
	case string(StyleCompact):
		return StyleCompact, nil
	default:
		return "", fmt.Errorf("unknown message style %q (want slack, raw or compact)", s)
	}
}

const emptyMessage = "No notifications found."

// Prepare renders notifications into one message, dispatched on style.
// A nil or empty list yields the fixed empty-inbox sentence.
func Prepare(list []*github.Notification, style Style) string {
	if len(list) == 0 {
		return emptyMessage
	}
	switch style {
	case StyleRaw:
		return formatRaw(list)
	case StyleCompact:
		return formatCompact(list)
	default:
		return formatSlack(list)
	}
}

func formatSlack(list []*github.Notification) string {
	multi := len(list) > 1

	var b strings.Builder
	if multi {
		fmt.Fprintf(&b, "📬 *GitHub Notifications* (%d)\n\n", len(list))
	}

	items := make([]string, 0, len(list))
	for i, n := range list {
		prefix := ordinal(i, multi)
		items = append(items, renderSafe(prefix+"⚠️ Error processing notification", func() string {
			repoLink := slackLink(BrowserURL(n.RepoURL()), n.RepoFullName())
			subjectLink := slackLink(BrowserURL(n.SubjectURL()), n.SubjectTitle())
			return prefix + TypeEmoji(n.SubjectType()) + " *" + subjectLink + "*\n" +
				"📂 Repository: " + repoLink + "\n" +
				"📌 Type: " + n.SubjectType() + "\n" +
				"🔔 Reason: " + n.ReasonCode() + "\n" +
				"🕒 Updated: " + FormatDate(n.Updated())
		}))
	}
	b.WriteString(strings.Join(items, "\n\n"))
	return b.String()
}

func formatRaw(list []*github.Notification) string {
	multi := len(list) > 1

	items := make([]string, 0, len(list))
	for i, n := range list {
		prefix := ordinal(i, multi)
		items = append(items, renderSafe(prefix+"Error processing notification", func() string {
			lines := []string{
				prefix + n.SubjectType() + "(" + n.ReasonCode() + "): " + n.SubjectTitle(),
			}
			if u := BrowserURL(n.SubjectURL()); u != "" {
				lines = append(lines, "   URL: "+u)
			}
			if u := BrowserURL(n.RepoURL()); u != "" {
				lines = append(lines, "   Repository: "+u)
			}
			lines = append(lines, "   Date: "+FormatDate(n.Updated()))
			return strings.Join(lines, "\n")
		}))
	}
	return strings.Join(items, "\n\n")
}

func formatCompact(list []*github.Notification) string {
	multi := len(list) > 1

	items := make([]string, 0, len(list))
	for i, n := range list {
		prefix := ordinal(i, multi)
		items = append(items, renderSafe(prefix+"Error processing notification", func() string {
			subjectLink := slackLink(BrowserURL(n.SubjectURL()), n.SubjectTitle())
			return prefix + ReasonPhrase(n.ReasonCode()) + " " + n.SubjectType() +
				" *" + subjectLink + "* (" + n.RepoFullName() + ") on " + FormatDate(n.Updated())
		}))
	}
	return strings.Join(items, "\n")
}

func ordinal(i int, multi bool) string {
	if !multi {
		return ""
	}
	return fmt.Sprintf("%d. ", i+1)
}

func slackLink(url, text string) string {
	if url == "" {
		return text
	}
	return "<" + url + "|" + text + ">"
}

// renderSafe contains a panic from one malformed record to that record's
// line, so one bad item never loses the rest of the batch.
func renderSafe(fallback string, render func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallback
		}
	}()
	return render()
}
