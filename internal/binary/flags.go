package binary

import (
	"fmt"
	"math"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// The wire format stores "elevation present" as zero bits: an elevation
// level exists when its bit is clear. A flag set where the all-clear
// value means "everything present" is unusable as an in-memory bit set,
// so the codec flips bits 1-3 on the way in and out. The LSB (IsMapSave)
// is a normal one-means-set bit and is left alone, as are all the
// unnamed bits above bit 3.
const flagInversionMask uint32 = 0x0000000E

// decodeFlags turns the wire flag word into the in-memory MapFlags. The
// engine keeps the word as a signed 32-bit value, so anything that would
// not fit one after the inversion is rejected. XOR is self-inverse, so
// decodeFlags(encodeFlags(f)) == f for every f.
func decodeFlags(word uint32) (model.MapFlags, error) {
	inverted := word ^ flagInversionMask
	if inverted > math.MaxInt32 {
		return 0, fmt.Errorf("flag word 0x%08x: %w", word, ErrInvalidFlags)
	}
	return model.MapFlags(inverted), nil
}

// encodeFlags applies the same inversion back to the wire form.
func encodeFlags(flags model.MapFlags) uint32 {
	return uint32(flags) ^ flagInversionMask
}
