// Package pipeline runs one filter -> cap -> format -> act pass over the
// user's notification inbox.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"ghnotify/internal/deliver"
	"ghnotify/internal/github"
	"ghnotify/internal/message"
	"ghnotify/pkg/logx"
)

// Action is what happens to a processed notification on the remote side.
type Action string

const (
	ActionNone     Action = "none"
	ActionMarkRead Action = "mark-read"
	ActionMarkDone Action = "mark-done"
)

// ParseAction normalizes a config/flag value. Empty means none.
func ParseAction(s string) (Action, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", string(ActionNone):
		return ActionNone, nil
	case string(ActionMarkRead):
		return ActionMarkRead, nil
	case string(ActionMarkDone):
		return ActionMarkDone, nil
	default:
		return "", fmt.Errorf("unknown action %q (want none, mark-read or mark-done)", s)
	}
}

// Client is the remote surface the pipeline consumes. *github.Client
// implements it; tests substitute a fake.
type Client interface {
	Authenticated(ctx context.Context) (string, error)
	ListNotifications(ctx context.Context, participating bool) ([]*github.Notification, error)
	MarkRead(ctx context.Context, threadID string) error
	MarkDone(ctx context.Context, threadID string) error
}

// Options are the per-run settings, already parsed and validated.
type Options struct {
	// Reasons/Types keep only matching notifications; nil means all.
	// The two filters are conjunctive and applied in this order.
	Reasons []string
	Types   []string

	Style            message.Style
	MaxNotifications int // 0 = unlimited
	Participating    bool

	Action        Action
	MaxActions    int // 0 = unlimited; excluded and matched use separate counters
	ActOnExcluded bool
}

type Runner struct {
	client Client
	sinks  []deliver.Sink
	log    logx.Logger
}

func New(client Client, sinks []deliver.Sink, log logx.Logger) *Runner {
	return &Runner{client: client, sinks: sinks, log: log}
}

// Run executes one pipeline pass. Remote failures (auth, list, mutation)
// abort immediately; an empty result is a successful run that delivers
// nothing.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if _, err := r.client.Authenticated(ctx); err != nil {
		return err
	}

	all, err := r.client.ListNotifications(ctx, opts.Participating)
	if err != nil {
		return err
	}

	filtered := filterByReason(all, opts.Reasons)
	filtered = filterByType(filtered, opts.Types)
	if len(filtered) != len(all) {
		r.log.Info("filtered notifications",
			logx.Int("total", len(all)),
			logx.Int("matched", len(filtered)))
	}

	if opts.ActOnExcluded && opts.Action != ActionNone {
		excluded := excludedByID(all, filtered)
		if err := r.act(ctx, excluded, opts.Action, opts.MaxActions, "excluded"); err != nil {
			return err
		}
	}

	if len(filtered) == 0 {
		r.log.Info("no notifications matched, nothing to send")
		return nil
	}

	if opts.MaxNotifications > 0 && len(filtered) > opts.MaxNotifications {
		r.log.Info("limiting notifications",
			logx.Int("from", len(filtered)),
			logx.Int("to", opts.MaxNotifications))
		filtered = filtered[:opts.MaxNotifications]
	}

	text := message.Prepare(filtered, opts.Style)
	if err := deliver.Send(ctx, r.sinks, text, r.log); err != nil {
		return err
	}

	if opts.Action != ActionNone {
		if err := r.act(ctx, filtered, opts.Action, opts.MaxActions, "matched"); err != nil {
			return err
		}
	}
	return nil
}

func filterByReason(list []*github.Notification, reasons []string) []*github.Notification {
	if reasons == nil {
		return list
	}
	keep := make([]*github.Notification, 0, len(list))
	for _, n := range list {
		if containsFold(reasons, n.ReasonCode()) {
			keep = append(keep, n)
		}
	}
	return keep
}

func filterByType(list []*github.Notification, types []string) []*github.Notification {
	if types == nil {
		return list
	}
	keep := make([]*github.Notification, 0, len(list))
	for _, n := range list {
		if containsFold(types, n.SubjectType()) {
			keep = append(keep, n)
		}
	}
	return keep
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// excludedByID returns, in original order, the listed notifications that
// the filters dropped. Records without an ID are skipped: no mutation can
// address them anyway.
func excludedByID(all, filtered []*github.Notification) []*github.Notification {
	kept := make(map[string]struct{}, len(filtered))
	for _, n := range filtered {
		if n != nil && n.ID != "" {
			kept[n.ID] = struct{}{}
		}
	}
	var out []*github.Notification
	for _, n := range all {
		if n == nil || n.ID == "" {
			continue
		}
		if _, ok := kept[n.ID]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// act applies the mutating action sequentially, stopping once max actions
// have been issued. The first remote failure aborts.
func (r *Runner) act(ctx context.Context, list []*github.Notification, action Action, max int, scope string) error {
	acted := 0
	for _, n := range list {
		if max > 0 && acted >= max {
			r.log.Info("action cap reached", logx.String("scope", scope), logx.Int("max", max))
			break
		}
		if n == nil || n.ID == "" {
			r.log.Warn("skipping notification without id", logx.String("scope", scope))
			continue
		}

		var err error
		switch action {
		case ActionMarkRead:
			err = r.client.MarkRead(ctx, n.ID)
		case ActionMarkDone:
			err = r.client.MarkDone(ctx, n.ID)
		default:
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s %s (id %s): %w", action, n.SubjectTitle(), n.ID, err)
		}
		acted++
		r.log.Info("notification updated",
			logx.String("scope", scope),
			logx.String("action", string(action)),
			logx.String("id", n.ID),
			logx.String("title", n.SubjectTitle()))
	}
	return nil
}
