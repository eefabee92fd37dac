package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Sample analyzer output in the default "surface/pos/reading" layout.
const (
	// SampleSentence is one tagged line, with a doubled TAB and a space word.
	SampleSentence = "吾輩/名詞/わがはい\tは/助詞/は\t\t猫/名詞/ねこ\t /補助記号/ \tで/助動詞/で\tある/動詞/あ"

	// SampleEscapes exercises escaped TABs and slashes.
	SampleEscapes = "ab\t\\\t/補助記号\t\\/\\\t\t\\\\\\\t/\\\\\t"

	// SampleDocument spans several lines, including blank ones.
	SampleDocument = "\na/名詞\tb/形容詞\nc/d\n\ne/UNK\n"
)

// LargeDocument repeats SampleSentence on n lines.
func LargeDocument(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(SampleSentence)
		b.WriteByte('\n')
	}
	return b.String()
}

// WithTempDir creates a temporary directory, calls fn with its path,
// and cleans up afterwards.
func WithTempDir(t *testing.T, fn func(dir string)) {
	t.Helper()
	dir := t.TempDir()
	fn(dir)
}

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

// WriteScript writes an executable shell script standing in for the
// analyzer. Tests using it are skipped where /bin/sh is unavailable.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("WriteScript(%s): %v", path, err)
	}
	return path
}

// AssertFileExists checks that a file exists at the given path.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}
