package binary

import (
	"errors"
	"testing"

	"github.com/vaultdweller/fo2sav/internal/model"
)

func TestDecodeTag(t *testing.T) {
	cases := []struct {
		word []byte
		want model.ScriptTagType
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, model.System},
		{[]byte{0x01, 0xAB, 0xCD, 0xEF}, model.Spatial}, // low bits ignored
		{[]byte{0x02, 0x00, 0x00, 0x01}, model.Items},
		{[]byte{0x03, 0x00, 0x12, 0x00}, model.Scenery},
		{[]byte{0x04, 0xFF, 0xFF, 0xFF}, model.Critters},
		{[]byte{0x05, 0x00, 0x00, 0x00}, model.Unknown},
		{[]byte{0xFF, 0x00, 0x00, 0x00}, model.Unknown},
	}
	for _, tc := range cases {
		got, err := decodeTag(newCursor(tc.word))
		if err != nil {
			t.Fatalf("decodeTag(% x) failed: %v", tc.word, err)
		}
		if got != tc.want {
			t.Errorf("decodeTag(% x) = %s, want %s", tc.word, got, tc.want)
		}
	}
}

func TestRecordSize(t *testing.T) {
	known := map[model.ScriptTagType]int{
		model.Spatial:  72,
		model.Items:    68,
		model.Scenery:  64,
		model.Critters: 64,
	}
	for tag, want := range known {
		got, err := recordSize(tag)
		if err != nil {
			t.Fatalf("recordSize(%s) failed: %v", tag, err)
		}
		if got != want {
			t.Errorf("recordSize(%s) = %d, want %d", tag, got, want)
		}
	}

	for _, tag := range []model.ScriptTagType{model.System, model.Unknown} {
		if _, err := recordSize(tag); !errors.Is(err, ErrUnknownRecordSize) {
			t.Errorf("recordSize(%s): got %v, want ErrUnknownRecordSize", tag, err)
		}
	}
}

func TestJunkSize(t *testing.T) {
	// Unlike recordSize, junkSize defaults everything unmapped to 64.
	cases := map[model.ScriptTagType]int{
		model.Spatial:  72,
		model.Items:    68,
		model.Scenery:  64,
		model.Critters: 64,
		model.System:   64,
		model.Unknown:  64,
	}
	for tag, want := range cases {
		if got := junkSize(tag); got != want {
			t.Errorf("junkSize(%s) = %d, want %d", tag, got, want)
		}
	}
}
