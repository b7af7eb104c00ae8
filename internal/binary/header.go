package binary

import (
	"fmt"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// mapFilenameSize is the fixed width of the map filename field, shared
// with the save header's current-map field.
const mapFilenameSize = 16

// mysteryBytesSize is a 44x4-byte header block nobody has documented.
const mysteryBytesSize = 44 * 4

// decodeMapHeader reads the fixed 13-field map header in wire order. The
// version gate fails fast: a word that is neither the Fallout 1 nor the
// Fallout 2 value means the rest of the file cannot be trusted.
func decodeMapHeader(c *cursor) (model.MapHeader, error) {
	var h model.MapHeader

	version, err := c.u32()
	if err != nil {
		return h, err
	}
	h.Version = model.MapVersion(version)
	if !h.Version.Valid() {
		return h, fmt.Errorf("version word %d: %w", version, ErrInvalidVersion)
	}

	if h.Filename, err = decodeString(c, mapFilenameSize); err != nil {
		return h, fmt.Errorf("map filename: %w", err)
	}
	if h.DefaultPlayerPosition, err = c.i32(); err != nil {
		return h, err
	}
	if h.DefaultPlayerElevation, err = c.i32(); err != nil {
		return h, err
	}
	if h.DefaultPlayerOrientation, err = c.i32(); err != nil {
		return h, err
	}
	if h.LocalVariableCount, err = c.i32(); err != nil {
		return h, err
	}
	if h.ScriptID, err = c.i32(); err != nil {
		return h, err
	}

	flagWord, err := c.u32()
	if err != nil {
		return h, err
	}
	if h.Flags, err = decodeFlags(flagWord); err != nil {
		return h, err
	}

	if h.Darkness, err = c.i32(); err != nil {
		return h, err
	}
	if h.GlobalVariableCount, err = c.i32(); err != nil {
		return h, err
	}
	if h.ID, err = c.i32(); err != nil {
		return h, err
	}
	if h.Ticks, err = c.u32(); err != nil {
		return h, err
	}
	if h.MysteryBytes, err = c.taken(mysteryBytesSize); err != nil {
		return h, err
	}

	if h.LocalVariableCount < 0 || h.GlobalVariableCount < 0 {
		return h, fmt.Errorf("variable counts %d/%d in map header: %w", h.GlobalVariableCount, h.LocalVariableCount, ErrNegativeCount)
	}
	return h, nil
}
