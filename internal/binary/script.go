package binary

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vaultdweller/fo2sav/internal/model"
)

const (
	// scriptGroupCount is the number of top-level script groups in every
	// map file. Each group corresponds to a fixed content category in
	// the engine, but the categories are unnamed in the sources, so the
	// groups stay positional.
	scriptGroupCount = 5

	// scriptsPerBatch is the batch granularity inside a group. Every
	// batch is padded out to this many slots and closed by a trailer.
	scriptsPerBatch = 16

	// batchTrailerSize is the 8-byte block after a batch; F12SE calls it
	// a script check counter and possible crc. Uninterpreted.
	batchTrailerSize = 8
)

// decodeScript reads one script record. The layout depends on the tag:
// after the 4-byte tag word comes recordSize-0x38 bytes of undocumented
// prefix, the script id, an 8-byte skip, the local-variable offset and
// count, and finally enough tail bytes to land exactly on the next
// record boundary. The fixed reads between the junk spans total 20
// bytes. Consuming exactly recordSize bytes per record is what keeps
// the cursor aligned across the whole script list.
func decodeScript(c *cursor) (model.Script, error) {
	start := c.off

	word, err := c.u32()
	if err != nil {
		return model.Script{}, err
	}
	tag := model.ScriptTagTypeFromByte(uint8(word >> 24))
	size, err := recordSize(tag)
	if err != nil {
		return model.Script{}, fmt.Errorf("script record at offset %d: %w", start, err)
	}

	s := model.Script{Type: tag, TagWord: word}
	if s.PrefixJunk, err = c.taken(size - 0x38); err != nil {
		return model.Script{}, err
	}
	if s.ID, err = c.i32(); err != nil {
		return model.Script{}, err
	}
	if s.MidJunk, err = c.taken(8); err != nil {
		return model.Script{}, err
	}
	if s.LocalVariableOffset, err = c.i32(); err != nil {
		return model.Script{}, err
	}
	if s.LocalVariableCount, err = c.i32(); err != nil {
		return model.Script{}, err
	}
	if s.TailJunk, err = c.taken(size - (size - 0x38 + 20 + 4)); err != nil {
		return model.Script{}, err
	}

	if got := c.off - start; got != size {
		// Arithmetic above guarantees this; treat a miss as corruption.
		return model.Script{}, fmt.Errorf("script record at offset %d consumed %d of %d bytes: %w", start, got, size, ErrInsufficientData)
	}
	return s, nil
}

// skipJunkSlot consumes one padding slot. Padding slots are
// self-describing just like real records: their own tag word picks the
// slot size, of which the 4 tag bytes are already consumed.
func skipJunkSlot(c *cursor) error {
	tag, err := decodeTag(c)
	if err != nil {
		return err
	}
	return c.skip(junkSize(tag) - 4)
}

// decodeScriptGroup reads one top-level script group: a count prefix,
// then the records in batches of up to 16. Full batches are followed by
// an 8-byte trailer. A non-empty tail batch is padded with junk slots up
// to 16 and closed by one more trailer; an empty tail gets neither
// padding nor trailer, so a group whose count is an exact multiple of 16
// ends right after its last full batch's trailer and a group of zero
// scripts is just its count word.
func decodeScriptGroup(c *cursor) (model.ScriptGroup, error) {
	var g model.ScriptGroup

	n, err := c.i32()
	if err != nil {
		return g, err
	}
	if n < 0 {
		return g, fmt.Errorf("script count %d at offset %d: %w", n, c.off-4, ErrNegativeCount)
	}
	count := int(n)

	log.WithFields(log.Fields{"scripts": count, "offset": c.off}).Debug("decoding script group")

	for count > scriptsPerBatch {
		for i := 0; i < scriptsPerBatch; i++ {
			s, err := decodeScript(c)
			if err != nil {
				return g, err
			}
			g.Scripts = append(g.Scripts, s)
		}
		trailer, err := c.taken(batchTrailerSize)
		if err != nil {
			return g, err
		}
		g.Trailers = append(g.Trailers, trailer)
		count -= scriptsPerBatch
	}

	for i := 0; i < count; i++ {
		s, err := decodeScript(c)
		if err != nil {
			return g, err
		}
		g.Scripts = append(g.Scripts, s)
	}

	if count > 0 {
		padStart := c.off
		for i := count; i < scriptsPerBatch; i++ {
			if err := skipJunkSlot(c); err != nil {
				return g, err
			}
		}
		g.Padding = make([]byte, c.off-padStart)
		copy(g.Padding, c.buf[padStart:c.off])

		trailer, err := c.taken(batchTrailerSize)
		if err != nil {
			return g, err
		}
		g.Trailers = append(g.Trailers, trailer)
	}

	return g, nil
}
