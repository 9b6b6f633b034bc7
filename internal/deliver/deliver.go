// Package deliver publishes a prepared message to one or more sinks.
package deliver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ghnotify/internal/config"
	"ghnotify/pkg/logx"
)

// Sink publishes one prepared message.
type Sink interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// FromConfig builds the configured sinks. With nothing configured the
// message still goes to stdout, so a bare run never swallows its output.
func FromConfig(cfg config.DeliverConfig, stdoutEnabled bool, log logx.Logger) ([]Sink, error) {
	var sinks []Sink
	if stdoutEnabled {
		sinks = append(sinks, NewWriter("stdout", os.Stdout))
	}
	if cfg.OutputFile != "" {
		sinks = append(sinks, NewOutputFile(cfg.OutputFile))
	}
	if cfg.SlackWebhook != "" {
		sinks = append(sinks, NewSlack(cfg.SlackWebhook))
	}
	if cfg.Telegram.Token != "" {
		tg, err := NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			return nil, fmt.Errorf("telegram sink: %w", err)
		}
		sinks = append(sinks, tg)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, NewWriter("stdout", os.Stdout))
	}
	return sinks, nil
}

// Send publishes to every sink, attempting all of them before reporting
// the combined failure.
func Send(ctx context.Context, sinks []Sink, text string, log logx.Logger) error {
	var errs []error
	for _, s := range sinks {
		if err := s.Send(ctx, text); err != nil {
			log.Error("delivery failed", logx.String("sink", s.Name()), logx.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		log.Debug("message delivered", logx.String("sink", s.Name()))
	}
	return errors.Join(errs...)
}

// WriterSink writes the message followed by a newline to any io.Writer.
type WriterSink struct {
	name string
	w    io.Writer
}

func NewWriter(name string, w io.Writer) *WriterSink {
	return &WriterSink{name: name, w: w}
}

func (s *WriterSink) Name() string { return s.name }

func (s *WriterSink) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}
