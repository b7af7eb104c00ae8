// Package fo2sav provides functions for working with Fallout 2 save
// files: the SAVE.DAT header and the per-map state files stored next to
// it in a save slot.
//
// Example usage:
//
//	raw, _ := os.ReadFile("SLOT01/NCRENT.sav")
//	data, _, err := fo2sav.Decompress(raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := fo2sav.DecodeMap(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(m.Scripts()))
package fo2sav

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/vaultdweller/fo2sav/internal/binary"
	"github.com/vaultdweller/fo2sav/internal/model"
	"github.com/vaultdweller/fo2sav/internal/patch"
	"github.com/vaultdweller/fo2sav/internal/sav"
)

// Re-exported error values; see the codec for their meaning. Match with
// errors.Is.
var (
	ErrInsufficientData  = binary.ErrInsufficientData
	ErrMalformedString   = binary.ErrMalformedString
	ErrStringTooLong     = binary.ErrStringTooLong
	ErrBadMagic          = binary.ErrBadMagic
	ErrInvalidVersion    = binary.ErrInvalidVersion
	ErrInvalidFlags      = binary.ErrInvalidFlags
	ErrUnknownRecordSize = binary.ErrUnknownRecordSize
	ErrNegativeCount     = binary.ErrNegativeCount
)

// DecodeSaveHeader parses the fixed preamble of a SAVE.DAT file.
func DecodeSaveHeader(data []byte) (model.SaveHeader, error) {
	return binary.DecodeSaveHeader(data)
}

// DecodeSaveHeaderCharmap parses a SAVE.DAT preamble whose name fields
// are localized codepage text rather than plain ASCII.
func DecodeSaveHeaderCharmap(data []byte, cm *charmap.Charmap) (model.SaveHeader, error) {
	return binary.DecodeSaveHeaderCharmap(data, cm)
}

// EncodeSaveHeader is the inverse of DecodeSaveHeader.
func EncodeSaveHeader(h model.SaveHeader) ([]byte, error) {
	return binary.EncodeSaveHeader(h)
}

// DecodeMap parses an uncompressed map state file. Run Decompress first
// when reading straight from a save slot.
func DecodeMap(data []byte) (*model.MapFile, error) {
	return binary.DecodeMap(data)
}

// EncodeMap re-serializes a map state file. Encoding a freshly decoded
// map reproduces the input buffer byte-for-byte.
func EncodeMap(m *model.MapFile) ([]byte, error) {
	return binary.EncodeMap(m)
}

// Decompress inflates a gzip-wrapped map state file, passing
// uncompressed buffers through unchanged. The flag reports whether
// inflation happened.
func Decompress(data []byte) ([]byte, bool, error) {
	return sav.Decompress(data)
}

// Compress gzips a re-encoded map state file for writing back to disk.
func Compress(data []byte) ([]byte, error) {
	return sav.Compress(data)
}

// SetLocalVariable overwrites one script-local variable in a copy of the
// uncompressed map buffer, without re-serializing anything else.
func SetLocalVariable(buf []byte, m *model.MapFile, s model.Script, field int, value int32) ([]byte, error) {
	return patch.SetLocalVariable(buf, m, s, field, value)
}
