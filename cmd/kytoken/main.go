package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"kytoken/internal/analysis"
	"kytoken/internal/indexing"
	"kytoken/internal/pos"
	"kytoken/internal/runner"
	"kytoken/internal/storage"
	"kytoken/internal/tags"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var errTerminalInput = errors.New("refusing to read text from a terminal; pipe it in or pass -in")

type options struct {
	in        string
	out       string
	field     string
	record    string
	skipSpace bool
	postings  bool
	validate  bool // false only with -unchecked
	runner    runner.Config
}

// streams holds the process I/O so run can be exercised in tests.
type streams struct {
	stdin    io.Reader
	stdout   io.Writer
	stdinTTY bool
}

// tokenRecord is one output line in token mode.
type tokenRecord struct {
	Term     string  `json:"term"`
	PoS      pos.PoS `json:"pos"`
	Position int     `json:"position"`
	Start    int     `json:"start"`
	End      int     `json:"end"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("KYTOKEN_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	opts.runner.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := streams{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stdinTTY: term.IsTerminal(int(os.Stdin.Fd())),
	}
	if err := run(ctx, opts, s, logger); err != nil {
		fmt.Fprintf(os.Stderr, "kytoken: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	def := runner.DefaultConfig()
	opts := options{runner: def}

	fs := flag.NewFlagSet("kytoken", flag.ContinueOnError)
	fs.StringVar(&opts.in, "in", "-", "raw text to analyze, - for stdin")
	fs.StringVar(&opts.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&opts.field, "field", "body", "field name used in postings mode")
	fs.StringVar(&opts.record, "record", "", "also save the raw analyzer output here for later -replay (.zst and .gz are compressed)")
	fs.BoolVar(&opts.skipSpace, "skip-space", false, "drop whitespace words")
	fs.BoolVar(&opts.postings, "postings", false, "print per-term postings statistics instead of tokens")
	unchecked := fs.Bool("unchecked", false, "skip the UTF-8 and NUL check on analyzer output (trusted analyzers only)")
	mode := fs.String("mode", string(def.Mode), "runner mode: command or replay")
	fs.StringVar(&opts.runner.Command, "command", getEnv("KYTOKEN_COMMAND", def.Command), "analyzer executable")
	fs.StringVar(&opts.runner.Model, "model", getEnv("KYTOKEN_MODEL", def.Model), "analyzer model file (default "+runner.DefaultModelPath+")")
	fs.StringVar(&opts.runner.Encoding, "encoding", def.Encoding, "analyzer character set: utf8, euc or sjis")
	fs.StringVar(&opts.runner.ReplayPath, "replay", "", "recorded analyzer output for replay mode (.zst and .gz are decompressed)")
	fs.DurationVar(&opts.runner.Timeout, "timeout", def.Timeout, "analyzer run timeout")
	version := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *version {
		fmt.Println(Version)
		return options{}, flag.ErrHelp
	}
	opts.validate = !*unchecked
	opts.runner.Mode = runner.Mode(*mode)
	if opts.runner.ReplayPath != "" && !flagSet(fs, "mode") {
		opts.runner.Mode = runner.ModeReplay
	}
	return opts, nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func run(ctx context.Context, opts options, s streams, logger *slog.Logger) error {
	start := time.Now()

	r, err := runner.New(opts.runner)
	if err != nil {
		return err
	}

	input, closeIn, err := openInput(opts, s)
	if err != nil {
		return err
	}
	defer closeIn()

	raw, err := r.Run(ctx, input)
	if err != nil {
		return err
	}
	if opts.record != "" {
		if err := storage.WriteFile(opts.record, raw); err != nil {
			return fmt.Errorf("record analyzer output: %w", err)
		}
		logger.Debug("recorded analyzer output", "path", opts.record)
	}

	var text string
	if opts.validate {
		if text, err = analysis.Text(raw); err != nil {
			return err
		}
	} else {
		// The caller vouched for the analyzer with -unchecked. raw is not
		// touched again after this point.
		text = analysis.TextUnchecked(raw)
	}

	var keep analysis.Predicate[pos.PoS]
	if opts.skipSpace {
		keep = analysis.SkipWhitespace[pos.PoS]
	}
	ts := analysis.NewFilteredTokenStream(text, tags.PoSOf, keep)

	out, closeOut, err := openOutput(opts, s)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)

	var n int
	if opts.postings {
		n, err = writePostings(bw, opts, ts)
	} else {
		n, err = writeTokens(bw, ts)
	}
	if err == nil {
		err = bw.Flush()
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("tokenized analyzer output",
		"mode", opts.runner.Mode,
		"bytes", len(raw),
		"tokens", n,
		"duration", time.Since(start),
	)
	return nil
}

func openInput(opts options, s streams) (io.Reader, func(), error) {
	if opts.in != "-" {
		f, err := os.Open(opts.in)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	if opts.runner.Mode == runner.ModeReplay {
		return bytes.NewReader(nil), func() {}, nil
	}
	if s.stdinTTY {
		return nil, nil, errTerminalInput
	}
	return s.stdin, func() {}, nil
}

func openOutput(opts options, s streams) (io.Writer, func() error, error) {
	if opts.out == "-" {
		return s.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func writeTokens(w io.Writer, ts *analysis.TokenStream[pos.PoS]) (int, error) {
	enc := json.NewEncoder(w)
	n := 0
	for ts.Advance() {
		tok := ts.Token()
		rec := tokenRecord{
			Term:     string(tok.Term),
			PoS:      ts.Tags(),
			Position: tok.Position,
			Start:    tok.StartByte,
			End:      tok.EndByte,
		}
		if err := enc.Encode(rec); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func writePostings(w io.Writer, opts options, ts indexing.TokenSource) (int, error) {
	writer := indexing.NewStreamWriter()
	defer writer.Release()

	n, err := writer.AddStream(docID(opts.in), opts.field, ts)
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(w)
	for _, stats := range writer.Buffer().Terms(opts.field) {
		if err := enc.Encode(stats); err != nil {
			return n, err
		}
	}
	return n, nil
}

func docID(in string) string {
	if in == "-" {
		return "stdin"
	}
	return filepath.Base(in)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
