package binary

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestDecodeStringConsumesFullField(t *testing.T) {
	field := append([]byte("ARROYO\x00"), []byte("junkpadxx")...) // 16 bytes
	buf := append(field, 0xAA)                                    // byte after the field

	c := newCursor(buf)
	s, err := decodeString(c, 16)
	if err != nil {
		t.Fatalf("decodeString failed: %v", err)
	}
	if s != "ARROYO" {
		t.Errorf("got %q, want %q", s, "ARROYO")
	}
	if c.off != 16 {
		t.Errorf("consumed %d bytes, want 16", c.off)
	}
}

func TestDecodeStringWithoutTerminator(t *testing.T) {
	c := newCursor([]byte("ABCD"))
	s, err := decodeString(c, 4)
	if err != nil {
		t.Fatalf("decodeString failed: %v", err)
	}
	if s != "ABCD" {
		t.Errorf("got %q, want %q", s, "ABCD")
	}
}

func TestDecodeStringMalformed(t *testing.T) {
	c := newCursor([]byte{'A', 0xFF, 0x00, 0x00})
	if _, err := decodeString(c, 4); !errors.Is(err, ErrMalformedString) {
		t.Fatalf("got %v, want ErrMalformedString", err)
	}
}

func TestDecodeStringIgnoresBytesAfterNUL(t *testing.T) {
	// Padding after the terminator is garbage in real files; a stray
	// high byte there must not fail the decode.
	c := newCursor([]byte{'O', 'K', 0x00, 0xFF})
	s, err := decodeString(c, 4)
	if err != nil {
		t.Fatalf("decodeString failed: %v", err)
	}
	if s != "OK" {
		t.Errorf("got %q, want %q", s, "OK")
	}
}

func TestDecodeStringInsufficientData(t *testing.T) {
	c := newCursor([]byte{'A', 'B'})
	if _, err := decodeString(c, 8); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}
}

func TestDecodeStringCharmap(t *testing.T) {
	// 0xE9 is é in Windows-1252.
	c := newCursor([]byte{'R', 'e', 'n', 0xE9, 0x00, 0x00, 0x00, 0x00})
	s, err := decodeStringCharmap(c, 8, charmap.Windows1252)
	if err != nil {
		t.Fatalf("decodeStringCharmap failed: %v", err)
	}
	if s != "René" {
		t.Errorf("got %q, want %q", s, "René")
	}
	if c.off != 8 {
		t.Errorf("consumed %d bytes, want 8", c.off)
	}
}

func TestEncodeStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "x", "NCRENT.sav", "a name with spaces"} {
		enc, err := encodeString(nil, s, 30)
		if err != nil {
			t.Fatalf("encodeString(%q) failed: %v", s, err)
		}
		if len(enc) != 30 {
			t.Fatalf("encodeString(%q) produced %d bytes, want 30", s, len(enc))
		}

		c := newCursor(enc)
		got, err := decodeString(c, 30)
		if err != nil {
			t.Fatalf("decodeString(%q) failed: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
		if c.remaining() != 0 {
			t.Errorf("round trip %q left %d bytes", s, c.remaining())
		}
	}
}

func TestEncodeStringTooLong(t *testing.T) {
	// The terminator needs a byte of its own, so a 4-char string does
	// not fit a 4-byte field.
	if _, err := encodeString(nil, "ABCD", 4); !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("got %v, want ErrStringTooLong", err)
	}
}

func TestEncodeStringNonASCII(t *testing.T) {
	if _, err := encodeString(nil, "Ren\xe9", 8); !errors.Is(err, ErrMalformedString) {
		t.Fatalf("got %v, want ErrMalformedString", err)
	}
}
