package binary

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// DecodeMap decodes a fully inflated map state file: header, variable
// tables, raster tile block, then the five script groups in order. Any
// sub-decoder failure aborts the whole decode; there is no partial mode.
// The input must already be decompressed (see internal/sav).
func DecodeMap(data []byte) (*model.MapFile, error) {
	c := newCursor(data)
	m := &model.MapFile{}

	var err error
	if m.Header, err = decodeMapHeader(c); err != nil {
		return nil, fmt.Errorf("map header: %w", err)
	}
	m.VariableTableOffset = c.off

	log.WithFields(log.Fields{
		"version": m.Header.Version.String(),
		"flags":   fmt.Sprintf("%#08x", uint32(m.Header.Flags)),
		"gvars":   m.Header.GlobalVariableCount,
		"lvars":   m.Header.LocalVariableCount,
	}).Debug("decoded map header")

	m.Variables, err = decodeVariables(c, int(m.Header.GlobalVariableCount), int(m.Header.LocalVariableCount))
	if err != nil {
		return nil, fmt.Errorf("map variables: %w", err)
	}

	if m.TileData, err = c.taken(tileBlockSize(m.Header.Flags)); err != nil {
		return nil, fmt.Errorf("tile block: %w", err)
	}

	for i := range m.Groups {
		if m.Groups[i], err = decodeScriptGroup(c); err != nil {
			return nil, fmt.Errorf("script group %d: %w", i, err)
		}
	}

	log.WithFields(log.Fields{
		"scripts":   len(m.Scripts()),
		"offset":    c.off,
		"remaining": c.remaining(),
	}).Debug("decoded map file")

	return m, nil
}
