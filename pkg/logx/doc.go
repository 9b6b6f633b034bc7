// Package logx configures ghnotify's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp, key=value fields)
//   - Optional JSON output for non-interactive runs
//   - A zero-value / Nop logger that is safe everywhere (tests included)
package logx
