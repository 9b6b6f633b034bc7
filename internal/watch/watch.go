// Package watch turns the one-shot pipeline into a long-running service:
// runs repeat on a cron schedule, the config file is hot reloaded between
// runs, and systemd gets readiness/watchdog notifications when present.
package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/robfig/cron/v3"

	"ghnotify/internal/config"
	"ghnotify/pkg/logx"
)

// RunFunc executes one pipeline pass with the given config.
type RunFunc func(ctx context.Context, cfg *config.Config) error

type Service struct {
	cfgPath string
	log     logx.Logger
	parser  cron.Parser

	mu  sync.Mutex
	cfg *config.Config
}

func New(cfgPath string, cfg *config.Config, log logx.Logger) *Service {
	return &Service{
		cfgPath: cfgPath,
		log:     log,
		// SecondOptional allows both 5-field and 6-field (with seconds) cron specs.
		parser: cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		cfg:    cfg,
	}
}

func (s *Service) current() *config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Service) swap(cfg *config.Config) {
	s.mu.Lock()
	old := s.cfg
	s.cfg = cfg
	s.mu.Unlock()
	if old.Schedule() != cfg.Schedule() {
		s.log.Info("schedule changed",
			logx.String("from", old.Schedule()),
			logx.String("to", cfg.Schedule()))
	}
}

// Run blocks until ctx is done. The first pass runs immediately; later
// passes follow the schedule, which is re-read every cycle so a hot
// reload can change it. A failed pass is logged and the service waits
// for the next tick.
func (s *Service) Run(ctx context.Context, run RunFunc) error {
	go func() {
		w := config.NewWatcher(s.cfgPath, s.log)
		if err := w.Run(ctx, s.swap); err != nil {
			s.log.Warn("config watcher stopped", logx.Err(err))
		}
	}()

	// Interval 0 means no watchdog is configured; sd_notify itself is a
	// no-op outside systemd.
	var wdC <-chan time.Time
	if interval, err := daemon.SdWatchdogEnabled(false); err == nil && interval > 0 {
		t := time.NewTicker(interval / 2)
		defer t.Stop()
		wdC = t.C
	}

	ready := false
	cycle := func() {
		cfg := s.current()
		if err := run(ctx, cfg); err != nil {
			s.log.Error("run failed", logx.Err(err))
			return
		}
		if !ready {
			ready = true
			_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
		}
	}

	cycle()

	for {
		spec := s.current().Schedule()
		sched, err := s.parser.Parse(spec)
		if err != nil {
			// Validated at load time, so this only trips if validation
			// and this parser ever diverge.
			return fmt.Errorf("parse schedule %q: %w", spec, err)
		}
		next := sched.Next(time.Now())
		s.log.Debug("next run scheduled", logx.Time("at", next))

		timer := time.NewTimer(time.Until(next))
	waiting:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-wdC:
				_, _ = daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			case <-timer.C:
				break waiting
			}
		}
		cycle()
	}
}
