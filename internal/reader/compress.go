package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a stream codec by file extension
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
	CompressionBrotli
)

// String returns the codec name
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionBrotli:
		return "brotli"
	default:
		return "none"
	}
}

// DetectCompression returns the codec implied by the outermost extension and
// the path with that extension removed.
func DetectCompression(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))

	switch ext {
	case ".gz", ".gzip":
		return CompressionGzip, trimmed
	case ".zst", ".zstd":
		return CompressionZstd, trimmed
	case ".lz4":
		return CompressionLZ4, trimmed
	case ".br":
		return CompressionBrotli, trimmed
	default:
		return CompressionNone, path
	}
}

// readCloser closes the decoder and then the underlying file
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// openDecompressed opens path and wraps it in the decoder for c
func openDecompressed(path string, c Compression) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	switch c {
	case CompressionNone:
		return file, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return &readCloser{Reader: gz, closers: []io.Closer{gz, file}}, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		zr := dec.IOReadCloser()
		return &readCloser{Reader: zr, closers: []io.Closer{zr, file}}, nil
	case CompressionLZ4:
		return &readCloser{Reader: lz4.NewReader(file), closers: []io.Closer{file}}, nil
	case CompressionBrotli:
		return &readCloser{Reader: brotli.NewReader(file), closers: []io.Closer{file}}, nil
	default:
		_ = file.Close()
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}
