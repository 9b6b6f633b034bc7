package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ghnotify/internal/config"
	"ghnotify/internal/deliver"
	"ghnotify/internal/github"
	"ghnotify/internal/message"
	"ghnotify/internal/pipeline"
	"ghnotify/internal/watch"
	"ghnotify/pkg/logx"
)

func main() {
	var (
		cfgPath string
		once    bool
		style   string
		maxN    int
	)
	flag.StringVar(&cfgPath, "config", "./config.yaml", "path to config yaml/json")
	flag.BoolVar(&once, "once", false, "run a single pass even if watch mode is configured")
	flag.StringVar(&style, "style", "", "override message style (slack|raw|compact)")
	flag.IntVar(&maxN, "max", -1, "override max notifications (0 = unlimited)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
	applyOverrides(cfg, style, maxN)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	log := logx.New(os.Stderr, cfg.Logging.Level, cfg.ConsoleLogging())

	if cfg.Watch.Enabled && !once {
		svc := watch.New(cfgPath, cfg, log)
		err := svc.Run(ctx, func(ctx context.Context, cur *config.Config) error {
			// Flag overrides survive hot reloads.
			applyOverrides(cur, style, maxN)
			return runPipeline(ctx, cur, log)
		})
		if err != nil {
			log.Error("watch mode failed", logx.Err(err))
			os.Exit(1)
		}
		return
	}

	if err := runPipeline(ctx, cfg, log); err != nil {
		log.Error("run failed", logx.Err(err))
		os.Exit(1)
	}
}

func applyOverrides(cfg *config.Config, style string, maxN int) {
	if style != "" {
		cfg.MessageStyle = style
	}
	if maxN >= 0 {
		cfg.MaxNotifications = maxN
	}
}

// runPipeline wires one pass from the current config.
func runPipeline(ctx context.Context, cfg *config.Config, log logx.Logger) error {
	token, err := cfg.ResolveToken()
	if err != nil {
		return err
	}
	styleVal, err := message.ParseStyle(cfg.MessageStyle)
	if err != nil {
		return err
	}
	action, err := pipeline.ParseAction(cfg.Action)
	if err != nil {
		return err
	}

	client := github.NewClient(cfg.APIBaseURL, token, log.With(logx.String("component", "github")))
	sinks, err := deliver.FromConfig(cfg.Deliver, cfg.StdoutEnabled(), log)
	if err != nil {
		return err
	}

	runner := pipeline.New(client, sinks, log)
	return runner.Run(ctx, pipeline.Options{
		Reasons:          cfg.ReasonFilter(),
		Types:            cfg.TypeFilter(),
		Style:            styleVal,
		MaxNotifications: cfg.MaxNotifications,
		Participating:    cfg.ParticipatingOnly(),
		Action:           action,
		MaxActions:       cfg.MaxActions,
		ActOnExcluded:    cfg.ActOnExcluded,
	})
}
