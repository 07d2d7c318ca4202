// Command durconv converts durations between clock strings, seconds,
// (hours, minutes, seconds) tuples, Go durations and ISO 8601.
//
// Usage:
//
//	durconv <command> [flags] <value>...
//
// Commands:
//
//	seconds  Print total seconds
//	tuple    Print the normalized (hours, minutes, seconds) tuple
//	elapsed  Print a Go duration
//	iso      Print an ISO 8601 duration
//	all      Print every representation
//	batch    Convert every input listed in a YAML, TOML, JSON or CBOR file
//	shell    Start an interactive session
//
// Examples:
//
//	# Clock string to ISO 8601
//	durconv iso 1:23:45
//
//	# Accept out-of-range fields
//	durconv seconds -relaxed 24:59:21
//
//	# Keep sub-second precision
//	durconv iso -fraction 1.25s
//
//	# Batch conversion to CSV
//	durconv batch -format csv durations.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/paramono/duration/cmd/durconv/commands"
	"github.com/paramono/duration/cmd/durconv/interactive"
	"github.com/paramono/duration/pkg/duration"
)

const usage = `durconv - Duration Converter

Usage:
  durconv <command> [flags] <value>...

Commands:
  seconds  Print total seconds
  tuple    Print the normalized (hours, minutes, seconds) tuple
  elapsed  Print a Go duration
  iso      Print an ISO 8601 duration
  all      Print every representation
  batch    Convert every input listed in a YAML, TOML, JSON or CBOR file
  shell    Start an interactive session

Values: 1:23:45, 3:47, 5025 (seconds), 1h23m45s (Go duration), 1,23,45 (tuple)

Use "durconv <command> -help" for more information about a command.
`

// convFlags are the flags shared by every command.
type convFlags struct {
	relaxed  bool
	fraction bool
	logLevel string
}

func (f *convFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.relaxed, "relaxed", false, "Accept hours above 23 and minutes or seconds above 59")
	fs.BoolVar(&f.fraction, "fraction", false, "Keep sub-second precision of Go duration input")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func (f *convFlags) config() duration.Config {
	cfg := duration.DefaultConfig()
	cfg.Strict = !f.relaxed
	cfg.ForceInt = !f.fraction
	return cfg
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "seconds", "tuple", "elapsed", "iso", "all":
		runConvert(cmd, args)
	case "batch":
		runBatch(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runConvert(name string, args []string) {
	mode, err := commands.ParseMode(name)
	if err != nil {
		fatal(err)
	}

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `durconv %s - Convert values (%s)

Usage:
  durconv %s [flags] <value>...

Flags:
`, name, mode, name)
		fs.PrintDefaults()
	}

	var flags convFlags
	flags.register(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	setupLogging(flags.logLevel)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one value required")
		fs.Usage()
		os.Exit(1)
	}

	conv := duration.NewConverter(flags.config())
	if err := commands.RunConvert(os.Stdout, conv, mode, fs.Args()); err != nil {
		fatal(err)
	}
}

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `durconv batch - Convert every input listed in a file

Usage:
  durconv batch [flags] <file.yaml|file.toml|file.json|file.cbor>

The file holds an "inputs" list of clock strings, seconds or
[hours, minutes, seconds] sequences.

Flags:
`)
		fs.PrintDefaults()
	}

	var flags convFlags
	flags.register(fs)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv, cbor)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	setupLogging(flags.logLevel)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: batch file path required")
		fs.Usage()
		os.Exit(1)
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatal(fmt.Errorf("failed to create output file: %w", err))
		}
		defer f.Close()
		w = f
	}

	conv := duration.NewConverter(flags.config())
	if err := commands.RunBatch(fs.Arg(0), *format, conv, w); err != nil {
		fatal(err)
	}
}

func runShell(args []string) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	var flags convFlags
	flags.register(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	sh, err := interactive.New(flags.config())
	if err != nil {
		fatal(err)
	}
	// Route log output through readline so it does not garble the prompt.
	setupLoggingTo(flags.logLevel, sh.Stderr())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	sh.Run(ctx)
}

func setupLogging(level string) {
	setupLoggingTo(level, os.Stderr)
}

func setupLoggingTo(level string, w io.Writer) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
