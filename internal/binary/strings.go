package binary

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// decodeString reads a fixed-width C-style string field. The field is
// size bytes on the wire regardless of where the NUL terminator sits;
// whatever follows the NUL is padding and is never surfaced. The bytes
// before the NUL must be plain ASCII. A field of size 32 therefore
// carries at most 31 characters.
func decodeString(c *cursor, size int) (string, error) {
	start := c.off
	field, err := c.take(size)
	if err != nil {
		return "", err
	}

	end := size
	for i, b := range field {
		if b == 0 {
			end = i
			break
		}
	}
	for i := 0; i < end; i++ {
		if field[i] >= 0x80 {
			return "", fmt.Errorf("byte 0x%02x at offset %d: %w", field[i], start+i, ErrMalformedString)
		}
	}

	// Copy before the caller advances past the buffer view.
	return string(field[:end]), nil
}

// decodeStringCharmap is decodeString for localized installs whose name
// fields carry single-byte codepage text instead of plain ASCII. The
// charmap decode is total over single bytes, so only truncation can fail.
func decodeStringCharmap(c *cursor, size int, cm *charmap.Charmap) (string, error) {
	field, err := c.take(size)
	if err != nil {
		return "", err
	}

	end := size
	for i, b := range field {
		if b == 0 {
			end = i
			break
		}
	}

	out, err := cm.NewDecoder().Bytes(field[:end])
	if err != nil {
		// Single-byte charmaps decode any byte; fall back to raw.
		return string(field[:end]), nil
	}
	return string(out), nil
}

// Charmap maps a Windows codepage number to its decoder table. Fallout 2
// localizations shipped with the Western and Central European codepages;
// anything unrecognized falls back to 1252 like most tooling does.
func Charmap(codepage int) *charmap.Charmap {
	switch codepage {
	case 1250:
		return charmap.Windows1250
	case 1251:
		return charmap.Windows1251
	default:
		return charmap.Windows1252
	}
}

// encodeString appends a fixed-width C-style string field to dst. The
// string plus its terminator must fit in size bytes; the rest of the
// field is NUL padding.
func encodeString(dst []byte, s string, size int) ([]byte, error) {
	if len(s)+1 > size {
		return nil, fmt.Errorf("%q needs %d bytes, field holds %d: %w", s, len(s)+1, size, ErrStringTooLong)
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return nil, fmt.Errorf("byte 0x%02x in %q: %w", s[i], s, ErrMalformedString)
		}
	}
	dst = append(dst, s...)
	for i := len(s); i < size; i++ {
		dst = append(dst, 0)
	}
	return dst, nil
}
