package binary

import (
	"encoding/binary"
	"fmt"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// Encoders are the byte-exact inverse of the decoders: re-encoding a
// decoded file reproduces the original buffer, opaque spans included.
// Structures built from scratch may leave opaque spans nil; those are
// synthesized as zero fill of the right width.

func appendU32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

func appendI32(dst []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(v))
}

func appendU16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// appendOpaque writes an uninterpreted span that must be exactly size
// bytes on the wire. A nil span becomes zero fill; a present span of the
// wrong width is a caller bug.
func appendOpaque(dst []byte, span []byte, size int, what string) ([]byte, error) {
	if span == nil {
		return append(dst, make([]byte, size)...), nil
	}
	if len(span) != size {
		return nil, fmt.Errorf("%s is %d bytes, field holds %d: %w", what, len(span), size, ErrStringTooLong)
	}
	return append(dst, span...), nil
}

// EncodeSaveHeader produces the fixed SAVE.DAT preamble.
func EncodeSaveHeader(h model.SaveHeader) ([]byte, error) {
	dst := append([]byte(nil), saveMagic...)

	var err error
	if dst, err = appendOpaque(dst, h.Padding, savePaddingSize, "header padding"); err != nil {
		return nil, err
	}
	dst = appendU32(dst, h.Version)
	dst = append(dst, h.ReleaseType)

	if dst, err = encodeString(dst, h.Name, playerNameSize); err != nil {
		return nil, fmt.Errorf("player name: %w", err)
	}
	if dst, err = encodeString(dst, h.SaveName, saveNameSize); err != nil {
		return nil, fmt.Errorf("save name: %w", err)
	}

	dst = appendU16(dst, h.SaveDay)
	dst = appendU16(dst, h.SaveMonth)
	dst = appendU16(dst, h.SaveYear)
	dst = appendU32(dst, h.InGameTime)
	dst = appendU16(dst, h.InGameMonth)
	dst = appendU16(dst, h.InGameDay)
	dst = appendU16(dst, h.InGameYear)
	dst = appendU32(dst, h.InGameTicks)
	dst = appendU32(dst, h.CurrentMap)

	if dst, err = encodeString(dst, h.MapName, mapFilenameSize); err != nil {
		return nil, fmt.Errorf("map name: %w", err)
	}
	if dst, err = appendOpaque(dst, h.Bitmap, saveBitmapSize, "bitmap"); err != nil {
		return nil, err
	}
	if dst, err = appendOpaque(dst, h.Void, saveVoidSize, "void block"); err != nil {
		return nil, err
	}
	return dst, nil
}

func encodeMapHeader(dst []byte, h model.MapHeader) ([]byte, error) {
	if !h.Version.Valid() {
		return nil, fmt.Errorf("version %d: %w", uint32(h.Version), ErrInvalidVersion)
	}
	if h.LocalVariableCount < 0 || h.GlobalVariableCount < 0 {
		return nil, fmt.Errorf("variable counts %d/%d: %w", h.GlobalVariableCount, h.LocalVariableCount, ErrNegativeCount)
	}

	dst = appendU32(dst, uint32(h.Version))
	var err error
	if dst, err = encodeString(dst, h.Filename, mapFilenameSize); err != nil {
		return nil, fmt.Errorf("map filename: %w", err)
	}
	dst = appendI32(dst, h.DefaultPlayerPosition)
	dst = appendI32(dst, h.DefaultPlayerElevation)
	dst = appendI32(dst, h.DefaultPlayerOrientation)
	dst = appendI32(dst, h.LocalVariableCount)
	dst = appendI32(dst, h.ScriptID)
	dst = appendU32(dst, encodeFlags(h.Flags))
	dst = appendI32(dst, h.Darkness)
	dst = appendI32(dst, h.GlobalVariableCount)
	dst = appendI32(dst, h.ID)
	dst = appendU32(dst, h.Ticks)
	return appendOpaque(dst, h.MysteryBytes, mysteryBytesSize, "mystery bytes")
}

func encodeScript(dst []byte, s model.Script) ([]byte, error) {
	size, err := recordSize(s.Type)
	if err != nil {
		return nil, err
	}

	word := s.TagWord
	if word == 0 {
		word = uint32(s.Type) << 24
	} else if model.ScriptTagTypeFromByte(uint8(word>>24)) != s.Type {
		return nil, fmt.Errorf("tag word %#08x does not match script type %s: %w", word, s.Type, ErrUnknownRecordSize)
	}
	dst = appendU32(dst, word)
	if dst, err = appendOpaque(dst, s.PrefixJunk, size-0x38, "script prefix"); err != nil {
		return nil, err
	}
	dst = appendI32(dst, s.ID)
	if dst, err = appendOpaque(dst, s.MidJunk, 8, "script mid bytes"); err != nil {
		return nil, err
	}
	dst = appendI32(dst, s.LocalVariableOffset)
	dst = appendI32(dst, s.LocalVariableCount)
	return appendOpaque(dst, s.TailJunk, size-(size-0x38+20+4), "script tail")
}

// zeroJunkSlot is a synthesized padding slot: a System tag word (which
// junk-sizes to 64) followed by zero fill.
func zeroJunkSlot(dst []byte) []byte {
	dst = appendU32(dst, uint32(model.System)<<24)
	return append(dst, make([]byte, junkSize(model.System)-4)...)
}

func encodeScriptGroup(dst []byte, g model.ScriptGroup) ([]byte, error) {
	dst = appendI32(dst, int32(len(g.Scripts)))

	trailer := func(i int) ([]byte, error) {
		if g.Trailers == nil {
			return append(dst, make([]byte, batchTrailerSize)...), nil
		}
		if i >= len(g.Trailers) || len(g.Trailers[i]) != batchTrailerSize {
			return nil, fmt.Errorf("batch trailer %d: %w", i, ErrInsufficientData)
		}
		return append(dst, g.Trailers[i]...), nil
	}

	var err error
	batch := 0
	count := len(g.Scripts)
	for i, s := range g.Scripts {
		if dst, err = encodeScript(dst, s); err != nil {
			return nil, fmt.Errorf("script %d: %w", i, err)
		}
		if (i+1)%scriptsPerBatch == 0 && i+1 < count {
			if dst, err = trailer(batch); err != nil {
				return nil, err
			}
			batch++
		}
	}

	tail := count % scriptsPerBatch
	if tail == 0 && count > 0 {
		// Exact multiple of 16: the last full batch still closes with a
		// trailer, but no padding slots follow.
		return trailer(batch)
	}
	if tail > 0 {
		if g.Padding != nil {
			dst = append(dst, g.Padding...)
		} else {
			for i := tail; i < scriptsPerBatch; i++ {
				dst = zeroJunkSlot(dst)
			}
		}
		return trailer(batch)
	}
	return dst, nil
}

// EncodeMap re-serializes a map state file. The variable tables must
// match the header counts; that pairing is the decode invariant and the
// encoder refuses to produce a file that breaks it.
func EncodeMap(m *model.MapFile) ([]byte, error) {
	if len(m.Variables.GlobalVariables) != int(m.Header.GlobalVariableCount) ||
		len(m.Variables.LocalVariables) != int(m.Header.LocalVariableCount) {
		return nil, fmt.Errorf("variable tables %d/%d do not match header counts %d/%d: %w",
			len(m.Variables.GlobalVariables), len(m.Variables.LocalVariables),
			m.Header.GlobalVariableCount, m.Header.LocalVariableCount, ErrNegativeCount)
	}

	dst, err := encodeMapHeader(nil, m.Header)
	if err != nil {
		return nil, fmt.Errorf("map header: %w", err)
	}

	for _, v := range m.Variables.GlobalVariables {
		dst = appendI32(dst, v)
	}
	for _, v := range m.Variables.LocalVariables {
		dst = appendI32(dst, v)
	}

	if dst, err = appendOpaque(dst, m.TileData, tileBlockSize(m.Header.Flags), "tile block"); err != nil {
		return nil, err
	}

	for i := range m.Groups {
		if dst, err = encodeScriptGroup(dst, m.Groups[i]); err != nil {
			return nil, fmt.Errorf("script group %d: %w", i, err)
		}
	}
	return dst, nil
}
