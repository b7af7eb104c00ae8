package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// fixtureSaveHeader reproduces the SLOT01 reference save preamble.
func fixtureSaveHeader() []byte {
	field := func(b []byte, s string, size int) []byte {
		b = append(b, s...)
		for i := len(s); i < size; i++ {
			b = append(b, 0)
		}
		return b
	}

	var b []byte
	b = append(b, saveMagic...)
	b = append(b, 0xDE, 0xAD, 0xDE, 0xAD, 0xDE, 0xAD) // steam padding
	b = binary.BigEndian.AppendUint32(b, 65538)
	b = append(b, 82) // 'R'
	b = field(b, "diglet", playerNameSize)
	b = field(b, "start", saveNameSize)
	b = binary.BigEndian.AppendUint16(b, 2)    // save day
	b = binary.BigEndian.AppendUint16(b, 6)    // save month
	b = binary.BigEndian.AppendUint16(b, 2024) // save year
	b = binary.BigEndian.AppendUint32(b, 68)   // ingame time
	b = binary.BigEndian.AppendUint16(b, 6)    // ingame month
	b = binary.BigEndian.AppendUint16(b, 13)   // ingame day
	b = binary.BigEndian.AppendUint16(b, 2242) // ingame year
	b = binary.BigEndian.AppendUint32(b, 279545357)
	b = binary.BigEndian.AppendUint32(b, 46) // current map
	b = field(b, "NCRENT.sav", mapFilenameSize)
	bitmap := make([]byte, saveBitmapSize)
	for i := range bitmap {
		bitmap[i] = byte(i)
	}
	b = append(b, bitmap...)
	b = append(b, make([]byte, saveVoidSize)...)
	return b
}

func TestDecodeSaveHeader(t *testing.T) {
	h, err := DecodeSaveHeader(fixtureSaveHeader())
	if err != nil {
		t.Fatalf("DecodeSaveHeader failed: %v", err)
	}

	if h.Magic != saveMagic {
		t.Errorf("Magic = %q", h.Magic)
	}
	if h.Version != 65538 {
		t.Errorf("Version = %d, want 65538", h.Version)
	}
	if h.ReleaseType != 82 {
		t.Errorf("ReleaseType = %d, want 82", h.ReleaseType)
	}
	if h.Name != "diglet" {
		t.Errorf("Name = %q, want %q", h.Name, "diglet")
	}
	if h.SaveName != "start" {
		t.Errorf("SaveName = %q, want %q", h.SaveName, "start")
	}
	if h.SaveDay != 2 || h.SaveMonth != 6 || h.SaveYear != 2024 {
		t.Errorf("save date = %d-%d-%d", h.SaveYear, h.SaveMonth, h.SaveDay)
	}
	if h.InGameTime != 68 {
		t.Errorf("InGameTime = %d, want 68", h.InGameTime)
	}
	if h.InGameMonth != 6 || h.InGameDay != 13 || h.InGameYear != 2242 {
		t.Errorf("ingame date = %d-%d-%d", h.InGameYear, h.InGameMonth, h.InGameDay)
	}
	if h.InGameTicks != 279545357 {
		t.Errorf("InGameTicks = %d", h.InGameTicks)
	}
	if h.CurrentMap != 46 {
		t.Errorf("CurrentMap = %d, want 46", h.CurrentMap)
	}
	if h.MapName != "NCRENT.sav" {
		t.Errorf("MapName = %q", h.MapName)
	}
	if len(h.Bitmap) != saveBitmapSize || len(h.Void) != saveVoidSize {
		t.Errorf("opaque blocks %d/%d bytes", len(h.Bitmap), len(h.Void))
	}
}

func TestDecodeSaveHeaderBadMagic(t *testing.T) {
	buf := fixtureSaveHeader()
	buf[0] = 'X'
	if _, err := DecodeSaveHeader(buf); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}

func TestDecodeSaveHeaderTruncated(t *testing.T) {
	buf := fixtureSaveHeader()
	if _, err := DecodeSaveHeader(buf[:200]); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}
}

func TestSaveHeaderRoundTrip(t *testing.T) {
	fix := fixtureSaveHeader()
	h, err := DecodeSaveHeader(fix)
	if err != nil {
		t.Fatalf("DecodeSaveHeader failed: %v", err)
	}
	enc, err := EncodeSaveHeader(h)
	if err != nil {
		t.Fatalf("EncodeSaveHeader failed: %v", err)
	}
	if !bytes.Equal(enc, fix) {
		t.Error("round trip changed bytes")
	}
}
