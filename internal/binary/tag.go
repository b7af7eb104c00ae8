package binary

import (
	"fmt"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// decodeTag reads the 4-byte tag word that opens every script record and
// every padding slot. The top byte selects the variant; the mapping is
// total, so an unmapped byte decodes to Unknown rather than failing.
// The low 24 bits look like a PID but F12SE does not use them either.
func decodeTag(c *cursor) (model.ScriptTagType, error) {
	word, err := c.u32()
	if err != nil {
		return model.Unknown, err
	}
	return model.ScriptTagTypeFromByte(uint8(word >> 24)), nil
}

// recordSize is the total on-disk size of a real script record of the
// given variant, tag word included. There is no safe default for System
// or Unknown records, so those refuse instead of guessing.
func recordSize(t model.ScriptTagType) (int, error) {
	switch t {
	case model.Spatial:
		return 72, nil
	case model.Items:
		return 68, nil
	case model.Scenery, model.Critters:
		return 64, nil
	}
	return 0, fmt.Errorf("script type %s: %w", t, ErrUnknownRecordSize)
}

// junkSize is the size of a padding slot with the given tag. Unlike
// recordSize it defaults everything unmapped to 64 bytes. F12SE does the
// same and it is not documented why padding can be guessed when records
// cannot; the asymmetry is kept as inherited behavior.
func junkSize(t model.ScriptTagType) int {
	switch t {
	case model.Spatial:
		return 72
	case model.Items:
		return 68
	}
	return 64
}
