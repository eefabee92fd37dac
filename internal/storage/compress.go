package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is chosen from a file name suffix.
type Compression int

const (
	Uncompressed Compression = iota
	Zstd
	Gzip
)

// CompressionFor returns the compression implied by path's suffix.
func CompressionFor(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".zst"):
		return Zstd
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	default:
		return Uncompressed
	}
}

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	default:
		return "none"
	}
}

// NewReader wraps r in a decompressor for c. The returned close function
// releases decoder resources and must always be called.
func NewReader(c Compression, r io.Reader) (io.Reader, func(), error) {
	switch c {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec, dec.Close, nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, func() { _ = zr.Close() }, nil
	default:
		return r, func() {}, nil
	}
}

// Compress encodes data with c.
func Compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case Gzip:
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("gzip write: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("gzip close: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return data, nil
	}
}

// WriteFile compresses data according to path's suffix and writes it
// atomically.
func WriteFile(path string, data []byte) error {
	out, err := Compress(CompressionFor(path), data)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, out)
}

// ReadFile reads the file at path, decompressing it according to its suffix.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, closeFn, err := NewReader(CompressionFor(path), f)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return io.ReadAll(r)
}
