package sav

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestIsCompressed(t *testing.T) {
	if !IsCompressed([]byte{0x1f, 0x8b, 0x08}) {
		t.Error("gzip magic not recognized")
	}
	for _, data := range [][]byte{nil, {0x1f}, []byte("FALLOUT SAVE FILE\x00")} {
		if IsCompressed(data) {
			t.Errorf("IsCompressed(% x) = true", data)
		}
	}
}

func TestDecompressGzip(t *testing.T) {
	payload := []byte("per-map state bytes")
	out, was, err := Decompress(gzipped(t, payload))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !was {
		t.Error("wasCompressed = false for a gzip stream")
	}
	if !bytes.Equal(out, payload) {
		t.Errorf("inflated to %q, want %q", out, payload)
	}
}

func TestDecompressPassthrough(t *testing.T) {
	payload := []byte("already plain")
	out, was, err := Decompress(payload)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if was {
		t.Error("wasCompressed = true for plain bytes")
	}
	if !bytes.Equal(out, payload) {
		t.Errorf("passthrough changed bytes: %q", out)
	}
}

func TestDecompressCorrupt(t *testing.T) {
	data := gzipped(t, []byte("soon to be damaged"))
	data[len(data)-1] ^= 0xFF
	if _, _, err := Decompress(data); err == nil {
		t.Fatal("corrupt stream inflated without error")
	}
}

func TestCompressRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB, 0x00, 0xCD}, 500)
	packed, err := Compress(payload)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !IsCompressed(packed) {
		t.Error("Compress output is not a gzip stream")
	}
	out, was, err := Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !was || !bytes.Equal(out, payload) {
		t.Error("round trip changed bytes")
	}
}
