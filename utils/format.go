package utils

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// Decorator colors console messages. A disabled decorator returns the text unchanged,
// which keeps escape codes out of redirected output.
type Decorator struct {
	Enabled bool
}

// NewDecorator returns a decorator enabled only when f is attached to a terminal.
func NewDecorator(f *os.File) Decorator {
	return Decorator{Enabled: term.IsTerminal(int(f.Fd()))}
}

// Text shows the message types in different colors.
func (d Decorator) Text(s string, msgType MessageType) string {
	if !d.Enabled {
		return s
	}
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	secs := d.Seconds() - float64(int64(d.Minutes()))*60
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), secs)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm %.2fs", int64(d.Hours()), int64(d.Minutes())%60, secs)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d.Hours())/24, int64(d.Hours())%24, int64(d.Minutes())%60, secs)
}
