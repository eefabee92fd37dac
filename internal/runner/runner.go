// Package runner invokes the external morphological analyzer and returns
// its raw output. Nothing in here parses that output.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"kytoken/internal/storage"
)

var (
	ErrUnknownMode     = errors.New("unknown runner mode")
	ErrUnknownEncoding = errors.New("unknown analyzer encoding")
	ErrNoReplayPath    = errors.New("replay mode requires a replay path")
)

// Runner produces analyzer output for the text read from input.
type Runner interface {
	Run(ctx context.Context, input io.Reader) ([]byte, error)
}

// LaunchError reports that the analyzer could not be started or its
// output could not be read.
type LaunchError struct {
	Op  string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("analyzer %s: %v", e.Op, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitError reports that the analyzer ran but exited unsuccessfully.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("analyzer exited with status %d", e.Code)
	}
	return fmt.Sprintf("analyzer exited with status %d: %s", e.Code, e.Stderr)
}

// New returns the Runner selected by cfg.Mode.
func New(cfg Config) (Runner, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Mode {
	case ModeCommand, "":
		name, enc, err := lookupEncoding(cfg.Encoding)
		if err != nil {
			return nil, err
		}
		return &CommandRunner{cfg: cfg, encName: name, enc: enc, logger: logger}, nil
	case ModeReplay:
		if cfg.ReplayPath == "" {
			return nil, ErrNoReplayPath
		}
		return &ReplayRunner{path: cfg.ReplayPath, logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
}

// RunFile feeds the file at inPath to r and writes the output to outPath.
// The output is replaced atomically and compressed when outPath ends in
// .zst or .gz, so it can be served later by a ReplayRunner.
func RunFile(ctx context.Context, r Runner, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := r.Run(ctx, in)
	if err != nil {
		return err
	}
	if err := storage.WriteFile(outPath, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
