package binary

import (
	"errors"
	"testing"

	"github.com/vaultdweller/fo2sav/internal/model"
)

func TestDecodeFlagsInversion(t *testing.T) {
	// An all-zero wire word means every elevation is present: the wire
	// stores elevation presence as cleared bits.
	flags, err := decodeFlags(0)
	if err != nil {
		t.Fatalf("decodeFlags failed: %v", err)
	}
	for _, f := range []model.MapFlags{
		model.HasElevationAtLevel0,
		model.HasElevationAtLevel1,
		model.HasElevationAtLevel2,
	} {
		if !flags.Has(f) {
			t.Errorf("flag %#x not set for zero wire word", uint32(f))
		}
	}
	if flags.Has(model.IsMapSave) {
		t.Error("IsMapSave set for zero wire word")
	}
}

func TestDecodeFlagsNamedBits(t *testing.T) {
	// 0b1101 on the wire: map save bit set, only elevation 0 present.
	flags, err := decodeFlags(0b1101)
	if err != nil {
		t.Fatalf("decodeFlags failed: %v", err)
	}
	want := model.IsMapSave | model.HasElevationAtLevel0
	if flags != want {
		t.Errorf("got %#x, want %#x", uint32(flags), uint32(want))
	}
}

func TestFlagsRoundTrip(t *testing.T) {
	samples := []model.MapFlags{
		0,
		model.IsMapSave,
		model.IsMapSave | model.HasElevationAtLevel1,
		model.HasElevationAtLevel0 | model.HasElevationAtLevel2,
		// Unnamed bits must pass through untouched.
		0x7FFF0000 | model.IsMapSave,
		0x00ABCDE0,
	}
	for _, f := range samples {
		got, err := decodeFlags(encodeFlags(f))
		if err != nil {
			t.Fatalf("round trip %#x failed: %v", uint32(f), err)
		}
		if got != f {
			t.Errorf("round trip %#x -> %#x", uint32(f), uint32(got))
		}
	}
}

func TestDecodeFlagsOverflow(t *testing.T) {
	// The engine stores flags as a signed 32-bit word; a wire value
	// landing above that after inversion is rejected.
	if _, err := decodeFlags(0x8000000E); !errors.Is(err, ErrInvalidFlags) {
		t.Fatalf("got %v, want ErrInvalidFlags", err)
	}
}
