// Package model holds the parsed representations of Fallout 2 save-game
// files (SAVE.DAT) and per-map state files (*.sav / AUTOMAP.DB siblings).
//
// Field layout documentation is based on
// https://falloutmods.fandom.com/wiki/SAVE.DAT_File_Format and on the
// behavior of F12SE. Large byte ranges with unknown meaning are kept as
// opaque slices so files can be re-encoded byte-for-byte.
package model

import "fmt"

// MapVersion identifies which engine wrote a map state file.
type MapVersion uint32

const (
	Fallout1 MapVersion = 19
	Fallout2 MapVersion = 20
)

func (v MapVersion) String() string {
	switch v {
	case Fallout1:
		return "Fallout 1"
	case Fallout2:
		return "Fallout 2"
	}
	return fmt.Sprintf("MapVersion(%d)", uint32(v))
}

// Valid reports whether v is a version the codec understands.
func (v MapVersion) Valid() bool {
	return v == Fallout1 || v == Fallout2
}

// MapFlags is the in-memory view of the map header flag word. The wire
// encoding inverts bits 1-3; see the flag codec in internal/binary.
// Bits beyond the named ones exist in real files and are preserved.
type MapFlags uint32

const (
	IsMapSave            MapFlags = 1 << 0
	HasElevationAtLevel0 MapFlags = 1 << 1
	HasElevationAtLevel1 MapFlags = 1 << 2
	HasElevationAtLevel2 MapFlags = 1 << 3
)

// Has reports whether all bits of f are set.
func (m MapFlags) Has(f MapFlags) bool {
	return m&f == f
}

// SaveHeader is the fixed-size preamble of a SAVE.DAT file.
type SaveHeader struct {
	// Magic is the raw 18-byte signature, "FALLOUT SAVE FILE\x00".
	Magic string

	// Padding is 6 bytes of garbage present after the signature on the
	// Steam Windows build. Kept for re-encoding.
	Padding []byte

	Version     uint32
	ReleaseType uint8

	// Name is the player character name (32-byte field).
	Name string

	// SaveName is the user-entered slot comment (30-byte field).
	SaveName string

	SaveDay   uint16
	SaveMonth uint16
	SaveYear  uint16

	InGameTime  uint32
	InGameMonth uint16
	InGameDay   uint16
	InGameYear  uint16
	InGameTicks uint32

	CurrentMap uint32
	MapName    string

	// Bitmap is the 29792-byte save slot thumbnail, uninterpreted.
	Bitmap []byte

	// Void trails the header; meaning unknown.
	Void []byte
}

// MapHeader is the fixed-layout header of a map state file.
type MapHeader struct {
	Version  MapVersion
	Filename string

	DefaultPlayerPosition    int32
	DefaultPlayerElevation   int32
	DefaultPlayerOrientation int32

	LocalVariableCount int32
	ScriptID           int32
	Flags              MapFlags
	Darkness           int32
	GlobalVariableCount int32
	ID                 int32
	Ticks              uint32

	// MysteryBytes is a 44x4-byte block with no known documentation.
	MysteryBytes []byte
}

// MapVariables holds the map's variable tables. Index order matters:
// scripts address ranges of LocalVariables by offset and count.
type MapVariables struct {
	GlobalVariables []int32
	LocalVariables  []int32
}

// ScriptTagType is the script record variant, taken from the top byte of
// the tag word at the start of every record. System and Items are rare or
// unused according to F12SE sources.
type ScriptTagType uint8

const (
	System   ScriptTagType = 0x00
	Spatial  ScriptTagType = 0x01
	Items    ScriptTagType = 0x02
	Scenery  ScriptTagType = 0x03
	Critters ScriptTagType = 0x04

	// Unknown is the catch-all for unmapped tag bytes.
	Unknown ScriptTagType = 0xff
)

// ScriptTagTypeFromByte maps a tag byte to its variant. The mapping is
// total: unmapped values become Unknown.
func ScriptTagTypeFromByte(b uint8) ScriptTagType {
	switch ScriptTagType(b) {
	case System, Spatial, Items, Scenery, Critters:
		return ScriptTagType(b)
	}
	return Unknown
}

func (t ScriptTagType) String() string {
	switch t {
	case System:
		return "system"
	case Spatial:
		return "spatial"
	case Items:
		return "items"
	case Scenery:
		return "scenery"
	case Critters:
		return "critters"
	}
	return "unknown"
}

// Script is one script record. Most of the on-disk record is not
// understood (next-script pointer, trigger type, radius, flags, object
// id and more); those spans are carried opaquely in the three junk
// slices so a record re-encodes byte-for-byte.
type Script struct {
	Type ScriptTagType

	// TagWord is the raw 4-byte tag the record opened with. Only the
	// top byte (the type) is understood; the low 24 bits look PID-like
	// and are preserved for re-encoding. Zero means "synthesize from
	// Type" when encoding a script built from scratch.
	TagWord uint32

	// PrefixJunk is the variable-length span between the tag word and
	// the id field.
	PrefixJunk []byte

	ID int32

	// MidJunk is the 8-byte span between id and the variable fields.
	MidJunk []byte

	// LocalVariableOffset indexes MapVariables.LocalVariables. In map
	// files (no runtime instance) it is conventionally -1.
	LocalVariableOffset int32

	// LocalVariableCount is 0 in map files.
	LocalVariableCount int32

	// TailJunk pads the record out to its tag-determined size.
	TailJunk []byte
}

// ScriptGroup is one of the five fixed top-level script batches. The
// trailers and padding are uninterpreted wire bytes kept for lossless
// re-encoding; a group built from scratch may leave them nil and the
// encoder will synthesize zero-filled equivalents.
type ScriptGroup struct {
	Scripts []Script

	// Trailers holds the 8-byte batch footer for every full batch of 16
	// and, when the tail batch is non-empty, one more for the tail.
	Trailers [][]byte

	// Padding is the raw bytes of the self-describing padding slots that
	// fill out a non-empty tail batch.
	Padding []byte
}

// MapFile is a fully decoded map state file.
type MapFile struct {
	Header    MapHeader
	Variables MapVariables

	// TileData is the raw raster tile block, sized by the elevation
	// flags. Uninterpreted.
	TileData []byte

	Groups [5]ScriptGroup

	// VariableTableOffset is the byte offset of the global variable
	// table in the decoded buffer, i.e. the cursor position right after
	// the header. Raw-offset patching starts from here.
	VariableTableOffset int
}

// Scripts returns the concatenation of all five groups in group order,
// which is the script list order the engine exposes.
func (m *MapFile) Scripts() []Script {
	var out []Script
	for i := range m.Groups {
		out = append(out, m.Groups[i].Scripts...)
	}
	return out
}
