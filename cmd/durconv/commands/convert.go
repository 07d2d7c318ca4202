// Package commands implements the durconv subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/paramono/duration/pkg/duration"
)

// Mode selects the output representation.
type Mode uint8

const (
	ModeSeconds Mode = iota + 1
	ModeTuple
	ModeElapsed
	ModeISO8601
	ModeAll
)

// String returns the mode name as used on the command line.
func (m Mode) String() string {
	switch m {
	case ModeSeconds:
		return "seconds"
	case ModeTuple:
		return "tuple"
	case ModeElapsed:
		return "elapsed"
	case ModeISO8601:
		return "iso"
	case ModeAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "seconds", "s":
		return ModeSeconds, nil
	case "tuple", "t":
		return ModeTuple, nil
	case "elapsed", "e":
		return ModeElapsed, nil
	case "iso", "iso8601", "i":
		return ModeISO8601, nil
	case "all", "a":
		return ModeAll, nil
	default:
		return 0, fmt.Errorf("unknown mode: %s (supported: seconds, tuple, elapsed, iso, all)", s)
	}
}

// ParseArg interprets a command-line argument as a duration value.
//
//	"1:23:45"   clock text
//	"1,23,45"   tuple
//	"5025"      seconds
//	"1h23m45s"  elapsed (Go duration syntax)
//
// Anything else is treated as clock text and fails conversion.
func ParseArg(s string) duration.Value {
	s = strings.TrimSpace(s)

	switch {
	case strings.Contains(s, ":"):
		return duration.Text(s)
	case strings.Contains(s, ","):
		parts := strings.Split(s, ",")
		t := make(duration.Tuple, len(parts))
		for i, p := range parts {
			n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return duration.Text(s)
			}
			t[i] = n
		}
		return t
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return duration.Seconds(n)
	}
	if d, err := time.ParseDuration(s); err == nil {
		return duration.Elapsed(d)
	}
	return duration.Text(s)
}

// Convert renders v in the given mode.
func Convert(conv *duration.Converter, mode Mode, v duration.Value) (string, error) {
	switch mode {
	case ModeSeconds:
		secs, err := conv.ToSeconds(v)
		if err != nil {
			return "", err
		}
		return FormatSeconds(secs), nil
	case ModeTuple:
		t, err := conv.ToTuple(v)
		if err != nil {
			return "", err
		}
		return FormatTuple(t), nil
	case ModeElapsed:
		d, err := conv.ToElapsed(v)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case ModeISO8601:
		return conv.ToISO8601(v)
	case ModeAll:
		var parts []string
		for _, m := range []Mode{ModeSeconds, ModeTuple, ModeElapsed, ModeISO8601} {
			out, err := Convert(conv, m, v)
			if err != nil {
				return "", err
			}
			parts = append(parts, m.String()+"="+out)
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("unknown mode: %d", mode)
	}
}

// RunConvert converts each argument and writes one result per line.
// It stops at the first failure.
func RunConvert(w io.Writer, conv *duration.Converter, mode Mode, args []string) error {
	for _, arg := range args {
		out, err := Convert(conv, mode, ParseArg(arg))
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		slog.Debug("converted", "input", arg, "mode", mode.String(), "result", out)
		fmt.Fprintln(w, out)
	}
	return nil
}

// FormatSeconds prints an exact decimal second count; whole values carry no
// fraction.
func FormatSeconds(secs duration.Span) string {
	return secs.String()
}

// FormatTuple prints a triple as "(h, m, s)".
func FormatTuple(t duration.Triple) string {
	return fmt.Sprintf("(%d, %d, %d)", t.Hours, t.Minutes, t.Seconds)
}
