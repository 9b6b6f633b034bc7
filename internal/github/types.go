package github

// Subject is the item a notification points at (issue, PR, release, ...).
type Subject struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Repository is the owning repo of a notification subject.
type Repository struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	FullName string `json:"full_name"`
}

// Notification is one thread from GET /notifications.
//
// Thread IDs are strings on the wire. Only ID is required for mutating
// calls; every other field may be missing and the accessors below fall
// back to fixed placeholders instead of failing.
type Notification struct {
	ID         string      `json:"id"`
	Unread     bool        `json:"unread"`
	UpdatedAt  string      `json:"updated_at"`
	LastReadAt string      `json:"last_read_at"`
	Reason     string      `json:"reason"`
	Subject    *Subject    `json:"subject"`
	Repository *Repository `json:"repository"`
	URL        string      `json:"url"`
}

const (
	fallbackTitle    = "No title"
	fallbackType     = "Unknown"
	fallbackReason   = "unknown"
	fallbackRepoName = "Unknown Repository"
	fallbackUpdated  = "N/A"
)

// All accessors are nil-receiver safe so a missing record inside a batch
// degrades to placeholders instead of panicking.

func (n *Notification) SubjectTitle() string {
	if n == nil || n.Subject == nil || n.Subject.Title == "" {
		return fallbackTitle
	}
	return n.Subject.Title
}

func (n *Notification) SubjectType() string {
	if n == nil || n.Subject == nil || n.Subject.Type == "" {
		return fallbackType
	}
	return n.Subject.Type
}

// SubjectURL prefers the subject's own API URL and falls back to the
// thread URL. The returned value is still machine-facing; callers rewrite
// it to a browser URL for display.
func (n *Notification) SubjectURL() string {
	if n == nil {
		return ""
	}
	if n.Subject != nil && n.Subject.URL != "" {
		return n.Subject.URL
	}
	return n.URL
}

func (n *Notification) RepoFullName() string {
	if n == nil || n.Repository == nil || n.Repository.FullName == "" {
		return fallbackRepoName
	}
	return n.Repository.FullName
}

func (n *Notification) RepoURL() string {
	if n == nil || n.Repository == nil {
		return ""
	}
	return n.Repository.URL
}

func (n *Notification) ReasonCode() string {
	if n == nil || n.Reason == "" {
		return fallbackReason
	}
	return n.Reason
}

func (n *Notification) Updated() string {
	if n == nil || n.UpdatedAt == "" {
		return fallbackUpdated
	}
	return n.UpdatedAt
}
