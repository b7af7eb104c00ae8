package binary

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// saveMagic opens every SAVE.DAT. The terminating NUL is part of the
// 18-byte signature.
const saveMagic = "FALLOUT SAVE FILE\x00"

const (
	playerNameSize = 32
	saveNameSize   = 30

	// saveBitmapSize is the slot thumbnail blob.
	saveBitmapSize = 29792

	// saveVoidSize trails the header; meaning unknown.
	saveVoidSize = 128

	// savePaddingSize is extra garbage after the signature on the Steam
	// Windows build.
	savePaddingSize = 6
)

// DecodeSaveHeader reads the fixed SAVE.DAT preamble. The magic gate
// runs first and a mismatch consumes nothing further. Name fields are
// strict ASCII.
func DecodeSaveHeader(data []byte) (model.SaveHeader, error) {
	return decodeSaveHeader(data, nil)
}

// DecodeSaveHeaderCharmap is DecodeSaveHeader for localized installs:
// the player name, slot comment and map name fields are decoded through
// the given codepage table instead of strict ASCII.
func DecodeSaveHeaderCharmap(data []byte, cm *charmap.Charmap) (model.SaveHeader, error) {
	return decodeSaveHeader(data, cm)
}

func decodeSaveHeader(data []byte, cm *charmap.Charmap) (model.SaveHeader, error) {
	var h model.SaveHeader
	c := newCursor(data)

	magic, err := c.take(len(saveMagic))
	if err != nil {
		return h, err
	}
	if !bytes.Equal(magic, []byte(saveMagic)) {
		return h, fmt.Errorf("got %q: %w", magic, ErrBadMagic)
	}
	h.Magic = string(magic)

	if h.Padding, err = c.taken(savePaddingSize); err != nil {
		return h, err
	}
	if h.Version, err = c.u32(); err != nil {
		return h, err
	}
	if h.ReleaseType, err = c.u8(); err != nil {
		return h, err
	}

	field := func(size int) (string, error) {
		if cm != nil {
			return decodeStringCharmap(c, size, cm)
		}
		return decodeString(c, size)
	}
	if h.Name, err = field(playerNameSize); err != nil {
		return h, fmt.Errorf("player name: %w", err)
	}
	if h.SaveName, err = field(saveNameSize); err != nil {
		return h, fmt.Errorf("save name: %w", err)
	}

	if h.SaveDay, err = c.u16(); err != nil {
		return h, err
	}
	if h.SaveMonth, err = c.u16(); err != nil {
		return h, err
	}
	if h.SaveYear, err = c.u16(); err != nil {
		return h, err
	}
	if h.InGameTime, err = c.u32(); err != nil {
		return h, err
	}
	if h.InGameMonth, err = c.u16(); err != nil {
		return h, err
	}
	if h.InGameDay, err = c.u16(); err != nil {
		return h, err
	}
	if h.InGameYear, err = c.u16(); err != nil {
		return h, err
	}
	if h.InGameTicks, err = c.u32(); err != nil {
		return h, err
	}
	if h.CurrentMap, err = c.u32(); err != nil {
		return h, err
	}
	if h.MapName, err = field(mapFilenameSize); err != nil {
		return h, fmt.Errorf("map name: %w", err)
	}
	if h.Bitmap, err = c.taken(saveBitmapSize); err != nil {
		return h, err
	}
	if h.Void, err = c.taken(saveVoidSize); err != nil {
		return h, err
	}

	return h, nil
}
