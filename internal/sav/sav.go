// Package sav handles the file-level concerns around the codec: the
// gzip layer the engine wraps per-map state files in, and locating save
// slots on disk.
package sav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipMagic is the two-byte gzip stream signature.
var gzipMagic = []byte{0x1f, 0x8b}

// IsCompressed reports whether data is a gzip stream. Map state files
// inside a save slot are gzip-compressed; freshly extracted or test
// buffers usually are not.
func IsCompressed(data []byte) bool {
	return len(data) >= 2 && bytes.Equal(data[:2], gzipMagic)
}

// Decompress inflates data when it is a gzip stream and passes it
// through unchanged otherwise. The returned flag reports whether
// inflation happened, so a later Compress can restore the original
// framing.
func Decompress(data []byte) ([]byte, bool, error) {
	if !IsCompressed(data) {
		return data, false, nil
	}
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("open gzip stream: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("inflate: %w", err)
	}
	return out, true, nil
}

// Compress gzips data for writing back into a save slot.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close gzip stream: %w", err)
	}
	return buf.Bytes(), nil
}
