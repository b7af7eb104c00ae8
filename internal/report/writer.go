// Package report renders decoded save structures as human-readable
// text for the CLI.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// Writer renders decoded structures to an output stream.
type Writer struct {
	w io.Writer
}

// NewWriter creates a report writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (r *Writer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

// WriteSaveHeader renders a SAVE.DAT header summary.
func (r *Writer) WriteSaveHeader(path string, h model.SaveHeader) {
	r.printf("Save: %s\n", path)
	r.printf("%s\n", strings.Repeat("=", 50))
	r.printf("  Player:       %s\n", h.Name)
	r.printf("  Slot comment: %s\n", h.SaveName)
	r.printf("  Saved on:     %04d-%02d-%02d\n", h.SaveYear, h.SaveMonth, h.SaveDay)
	r.printf("  In-game date: %04d-%02d-%02d (ticks %d)\n", h.InGameYear, h.InGameMonth, h.InGameDay, h.InGameTicks)
	r.printf("  Current map:  %s (#%d)\n", h.MapName, h.CurrentMap)
	r.printf("  Version:      %d, release %q\n", h.Version, rune(h.ReleaseType))
}

// WriteMapSummary renders a decoded map state file summary.
func (r *Writer) WriteMapSummary(path string, m *model.MapFile) {
	h := m.Header
	r.printf("Map: %s\n", path)
	r.printf("%s\n", strings.Repeat("=", 50))
	r.printf("  Engine:           %s\n", h.Version)
	r.printf("  Filename:         %s\n", h.Filename)
	r.printf("  Map id:           %d (script %d)\n", h.ID, h.ScriptID)
	r.printf("  Flags:            %#08x\n", uint32(h.Flags))
	for i, f := range []model.MapFlags{
		model.HasElevationAtLevel0,
		model.HasElevationAtLevel1,
		model.HasElevationAtLevel2,
	} {
		if h.Flags.Has(f) {
			r.printf("    elevation %d present\n", i)
		}
	}
	r.printf("  Darkness:         %d\n", h.Darkness)
	r.printf("  Global variables: %d\n", len(m.Variables.GlobalVariables))
	r.printf("  Local variables:  %d\n", len(m.Variables.LocalVariables))
	r.printf("  Scripts:          %d\n", len(m.Scripts()))
	for i := range m.Groups {
		r.printf("    group %d: %d\n", i, len(m.Groups[i].Scripts))
	}
}

// WriteVariables renders the variable tables, one slot per line.
func (r *Writer) WriteVariables(v model.MapVariables) {
	r.printf("Global variables (%d):\n", len(v.GlobalVariables))
	for i, val := range v.GlobalVariables {
		r.printf("  [%4d] %d\n", i, val)
	}
	r.printf("Local variables (%d):\n", len(v.LocalVariables))
	for i, val := range v.LocalVariables {
		r.printf("  [%4d] %d\n", i, val)
	}
}

// WriteScripts renders the script list in engine order.
func (r *Writer) WriteScripts(scripts []model.Script) {
	r.printf("Scripts (%d):\n", len(scripts))
	for i, s := range scripts {
		r.printf("  [%3d] id=%-6d type=%-8s lvar_offset=%-6d lvar_count=%d\n",
			i, s.ID, s.Type, s.LocalVariableOffset, s.LocalVariableCount)
	}
}
