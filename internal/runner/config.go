package runner

import (
	"log/slog"
	"time"
)

// DefaultModelPath is where the analyzer installs the model it loads when
// no -model is given.
const DefaultModelPath = "/usr/local/share/kytea/model.bin"

// Mode selects a Runner implementation.
type Mode string

const (
	// ModeCommand runs the analyzer binary for every call.
	ModeCommand Mode = "command"
	// ModeReplay returns output recorded earlier from a file.
	ModeReplay Mode = "replay"
)

// Config configures a Runner.
type Config struct {
	// Mode selects the implementation. Empty means ModeCommand.
	Mode Mode `json:"mode"`

	// Command is the analyzer executable.
	Command string `json:"command"`

	// Model is the model file passed with -model. Empty uses the
	// analyzer's built-in default.
	Model string `json:"model"`

	// Encoding is the character set the analyzer reads and writes:
	// "utf8", "euc" or "sjis". Output is always returned as UTF-8.
	Encoding string `json:"encoding"`

	// Timeout bounds a single command run. Zero means no limit.
	Timeout time.Duration `json:"timeout"`

	// ReplayPath is the recorded output used by ModeReplay. Files ending
	// in .zst or .gz are decompressed.
	ReplayPath string `json:"replay_path"`

	// Logger for runner events. If nil, slog.Default() is used.
	Logger *slog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:     ModeCommand,
		Command:  "kytea",
		Encoding: "utf8",
		Timeout:  5 * time.Minute,
	}
}
