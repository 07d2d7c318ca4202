// Package interactive provides the interactive command-line interface
// for durconv.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/paramono/duration/cmd/durconv/commands"
	"github.com/paramono/duration/pkg/duration"
)

// Shell is a read-eval-print loop over the converters.
type Shell struct {
	cfg  duration.Config
	conv *duration.Converter
	mode commands.Mode
	out  io.Writer
	rl   *readline.Instance
}

// New creates a shell that reads from the terminal.
func New(cfg duration.Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "durconv> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(cfg, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(cfg duration.Config, out io.Writer) *Shell {
	return &Shell{
		cfg:  cfg,
		conv: duration.NewConverter(cfg),
		mode: commands.ModeAll,
		out:  out,
	}
}

func completer() *readline.PrefixCompleter {
	onOff := []readline.PrefixCompleterInterface{readline.PcItem("on"), readline.PcItem("off")}
	return readline.NewPrefixCompleter(
		readline.PcItem("seconds"),
		readline.PcItem("tuple"),
		readline.PcItem("elapsed"),
		readline.PcItem("iso"),
		readline.PcItem("all"),
		readline.PcItem("mode",
			readline.PcItem("seconds"),
			readline.PcItem("tuple"),
			readline.PcItem("elapsed"),
			readline.PcItem("iso"),
			readline.PcItem("all"),
		),
		readline.PcItem("strict", onOff...),
		readline.PcItem("fraction", onOff...),
		readline.PcItem("config"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Stderr returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}

		if s.Exec(line) {
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
	}
}

// Exec runs one input line and reports whether the shell should exit.
// A line that is not a command is converted in the current mode.
func (s *Shell) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "quit", "exit", "q":
		return true

	case "mode":
		s.cmdMode(args)

	case "strict":
		if s.cmdToggle("strict", &s.cfg.Strict, args) {
			s.conv = duration.NewConverter(s.cfg)
		}

	case "fraction":
		// ForceInt is the inverse of keeping fractions.
		keep := !s.cfg.ForceInt
		if s.cmdToggle("fraction", &keep, args) {
			s.cfg.ForceInt = !keep
			s.conv = duration.NewConverter(s.cfg)
		}

	case "config":
		fmt.Fprintf(s.out, "mode=%s strict=%v fraction=%v\n", s.mode, s.cfg.Strict, !s.cfg.ForceInt)

	default:
		if mode, err := commands.ParseMode(cmd); err == nil {
			s.convert(mode, args)
			return false
		}
		// Not a command: the whole line is a value.
		s.convert(s.mode, parts)
	}
	return false
}

func (s *Shell) convert(mode commands.Mode, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Usage: %s <value>...\n", mode)
		return
	}
	for _, arg := range args {
		out, err := commands.Convert(s.conv, mode, commands.ParseArg(arg))
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(s.out, out)
	}
}

func (s *Shell) cmdMode(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "mode: %s\n", s.mode)
		return
	}
	mode, err := commands.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	s.mode = mode
	fmt.Fprintf(s.out, "mode: %s\n", s.mode)
}

// cmdToggle shows or sets a boolean setting and reports whether it was set.
func (s *Shell) cmdToggle(name string, flag *bool, args []string) bool {
	changed := false
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			*flag = true
		case "off", "false", "0":
			*flag = false
		default:
			fmt.Fprintf(s.out, "Usage: %s [on|off]\n", name)
			return false
		}
		changed = true
	}
	fmt.Fprintf(s.out, "%s: %v\n", name, *flag)
	return changed
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
durconv Commands:
  Conversion:
    seconds <value>...  - Total seconds
    tuple <value>...    - Normalized (hours, minutes, seconds)
    elapsed <value>...  - Go duration
    iso <value>...      - ISO 8601 duration
    all <value>...      - Every representation
    <value>...          - Convert in the current mode

  Settings:
    mode [name]         - Show or set the current mode
    strict [on|off]     - Reject fields above 23h/59m/59s
    fraction [on|off]   - Keep sub-second precision
    config              - Show current settings

  Values: 1:23:45, 3:47, 5025, 1h23m45s, 1,23,45

    help                - Show this help
    quit                - Exit`)
}
