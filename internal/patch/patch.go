// Package patch edits decoded map files by overwriting bytes at
// computed offsets in the original buffer. This deliberately bypasses
// the structured encoder: a 4-byte in-place write cannot disturb any of
// the undocumented byte ranges around it.
package patch

import (
	"encoding/binary"
	"fmt"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// LocalVariableOffset computes the byte offset of one of a script's
// local variables inside the decoded (uncompressed) map buffer. The
// local variable table starts right after the global one, and the
// script's LocalVariableOffset indexes into it.
func LocalVariableOffset(m *model.MapFile, s model.Script, field int) (int, error) {
	if s.LocalVariableOffset < 0 {
		return 0, fmt.Errorf("script %d has no runtime local variables", s.ID)
	}
	if field < 0 || int32(field) >= s.LocalVariableCount {
		return 0, fmt.Errorf("field %d out of range, script %d has %d local variables", field, s.ID, s.LocalVariableCount)
	}
	slot := int(s.LocalVariableOffset) + field
	if slot >= len(m.Variables.LocalVariables) {
		return 0, fmt.Errorf("local variable slot %d out of range (%d slots)", slot, len(m.Variables.LocalVariables))
	}
	return m.VariableTableOffset + len(m.Variables.GlobalVariables)*4 + slot*4, nil
}

// SetLocalVariable overwrites one local variable in a copy of the
// original map buffer and returns the copy. The buffer must be the same
// uncompressed bytes m was decoded from.
func SetLocalVariable(buf []byte, m *model.MapFile, s model.Script, field int, value int32) ([]byte, error) {
	off, err := LocalVariableOffset(m, s, field)
	if err != nil {
		return nil, err
	}
	if off+4 > len(buf) {
		return nil, fmt.Errorf("offset %d past end of %d-byte buffer", off, len(buf))
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	binary.BigEndian.PutUint32(out[off:], uint32(value))
	return out, nil
}
