package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"ghnotify/pkg/logx"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"

	// Thread mutations are issued one at a time; the limiter keeps a long
	// mark-read/mark-done sweep well under the secondary rate limits.
	mutationsPerSec = 4
)

// Client is a thin HTTP client for the GitHub REST API, covering only the
// notification endpoints this tool needs. It does not retry: a failed call
// aborts the current run.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logx.Logger
}

// NewClient creates a client. baseURL is normally empty and defaults to
// the public API; tests point it at a local server.
func NewClient(baseURL, token string, log logx.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(mutationsPerSec), 1),
		log:     log,
	}
}

// Authenticated verifies the token by fetching the associated user and
// returns the login name.
func (c *Client) Authenticated(ctx context.Context) (string, error) {
	var user struct {
		Login string `json:"login"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", &user); err != nil {
		return "", err
	}
	c.log.Info("authenticated to GitHub", logx.String("login", user.Login))
	return user.Login, nil
}

// ListNotifications fetches the caller's notification threads. The reason
// filter is applied locally by the pipeline, not passed to the API.
func (c *Client) ListNotifications(ctx context.Context, participating bool) ([]*Notification, error) {
	path := "/notifications"
	if participating {
		path += "?participating=true"
	}
	var list []*Notification
	if err := c.do(ctx, http.MethodGet, path, &list); err != nil {
		return nil, err
	}
	c.log.Info("fetched notifications", logx.Int("count", len(list)))
	return list, nil
}

// MarkRead marks one thread as read.
func (c *Client) MarkRead(ctx context.Context, threadID string) error {
	if threadID == "" {
		return fmt.Errorf("mark read: empty thread id")
	}
	return c.do(ctx, http.MethodPatch, "/notifications/threads/"+url.PathEscape(threadID), nil)
}

// MarkDone marks one thread as done (removes it from the inbox).
func (c *Client) MarkDone(ctx context.Context, threadID string) error {
	if threadID == "" {
		return fmt.Errorf("mark done: empty thread id")
	}
	return c.do(ctx, http.MethodDelete, "/notifications/threads/"+url.PathEscape(threadID), nil)
}

func (c *Client) do(ctx context.Context, method, path string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{
			Message: "authentication failed (401): check your credentials (GitHub token)",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decoding response for %s %s: %w", method, path, err)
		}
	}
	return nil
}
