package message

// reasonPhrases explains WHY the user is notified (their relationship to
// the thread), not what just happened.
//
// See https://docs.github.com/en/rest/activity/notifications#about-notification-reasons
var reasonPhrases = map[string]string{
	"approval_requested":       "Approval requested on",
	"assign":                   "Assigned to",
	"author":                   "Activity on your",
	"ci_activity":              "CI completed for",
	"comment":                  "Activity on commented",
	"invitation":               "Invitation to",
	"manual":                   "Activity on subscribed",
	"member_feature_requested": "Feature request in",
	"mention":                  "Mentioned in",
	"review_requested":         "Review requested on",
	"security_advisory_credit": "Credit for advisory on",
	"security_alert":           "Security alert on",
	"state_change":             "Activity after state change on",
	"subscribed":               "Activity on watched",
	"team_mention":             "Activity after team mention in",
}

// ReasonPhrase maps a notification reason code to a human-readable phrase.
func ReasonPhrase(reason string) string {
	if p, ok := reasonPhrases[reason]; ok {
		return p
	}
	return "Notification for"
}

var typeEmojis = map[string]string{
	"Issue":                        "🐛",
	"PullRequest":                  "🔀",
	"Release":                      "🚀",
	"Commit":                       "💾",
	"Discussion":                   "💬",
	"CheckSuite":                   "✅",
	"RepositoryVulnerabilityAlert": "🔒",
}

// TypeEmoji maps a subject type to its marker emoji.
func TypeEmoji(subjectType string) string {
	if e, ok := typeEmojis[subjectType]; ok {
		return e
	}
	return "📄"
}
