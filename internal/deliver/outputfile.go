package deliver

import (
	"context"
	"fmt"
	"os"
)

// outputDelimiter closes the multi-line value. Fixed rather than random:
// the message never contains it (it is not valid notification text).
const outputDelimiter = "ghnotify_EOF"

// OutputFileSink appends the message as a GitHub Actions output variable,
// the same protocol @actions/core.setOutput speaks:
//
//	message<<ghnotify_EOF
//	...text...
//	ghnotify_EOF
//
// Point it at $GITHUB_OUTPUT to consume the message from a later
// workflow step.
type OutputFileSink struct {
	path string
}

func NewOutputFile(path string) *OutputFileSink {
	return &OutputFileSink{path: path}
}

func (s *OutputFileSink) Name() string { return "output-file" }

func (s *OutputFileSink) Send(_ context.Context, text string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}

	if _, err := fmt.Fprintf(f, "message<<%s\n%s\n%s\n", outputDelimiter, text, outputDelimiter); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	return f.Close()
}
