package message

import "time"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const dateDisplayLayout = "Jan 2, 2006, 03:04 PM"

// FormatDate renders a timestamp string in a short human form
// ("Feb 25, 2026, 10:30 AM"). Unparseable input (empty strings and the
// "N/A" placeholder included) is returned unchanged; the caller decides
// upstream what to show when no timestamp exists at all.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateDisplayLayout)
		}
	}
	return s
}
