package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"kytoken/internal/lexer"
)

// CommandRunner runs the analyzer executable once per call, writing the
// input to its stdin and collecting stdout.
type CommandRunner struct {
	cfg     Config
	encName string
	enc     encoding.Encoding
	logger  *slog.Logger
}

// Args returns the command-line arguments passed to the analyzer.
func (r *CommandRunner) Args() []string {
	var args []string
	if r.cfg.Model != "" {
		args = append(args, "-model", r.cfg.Model)
	}
	if r.enc != nil {
		args = append(args, "-encode", r.encName)
	}
	return append(args, "-wordbound", string(rune(lexer.WordDelim)))
}

func (r *CommandRunner) command() string {
	if r.cfg.Command == "" {
		return "kytea"
	}
	return r.cfg.Command
}

// Run executes the analyzer on input and returns its output as UTF-8.
func (r *CommandRunner) Run(ctx context.Context, input io.Reader) ([]byte, error) {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	if r.enc != nil {
		input = transform.NewReader(input, r.enc.NewEncoder())
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.command(), r.Args()...)
	cmd.Stdin = input
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &LaunchError{Op: "run", Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Warn("analyzer failed",
				"command", r.command(),
				"exit_code", exitErr.ExitCode(),
			)
			return nil, &ExitError{Code: exitErr.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
		}
		return nil, &LaunchError{Op: "start", Err: err}
	}

	out := stdout.Bytes()
	if r.enc != nil {
		out, _, err = transform.Bytes(r.enc.NewDecoder(), out)
		if err != nil {
			return nil, &LaunchError{Op: "decode output", Err: err}
		}
	}

	r.logger.Debug("analyzer finished",
		"command", r.command(),
		"output_bytes", len(out),
		"duration", time.Since(start),
	)
	return out, nil
}

// lookupEncoding maps an encoding name to the analyzer's spelling of it
// and a transcoder. UTF-8 needs no transcoder.
func lookupEncoding(name string) (string, encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return "utf8", nil, nil
	case "euc", "euc-jp":
		return "euc", japanese.EUCJP, nil
	case "sjis", "shift_jis":
		return "sjis", japanese.ShiftJIS, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}
