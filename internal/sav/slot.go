package sav

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Slot is one save slot directory (SLOT01..SLOT10 under the game's
// SAVEGAME folder).
type Slot struct {
	Name string // directory name, e.g. "SLOT01"
	Path string // absolute or caller-relative slot path
}

// SaveDatPath returns the slot's SAVE.DAT location.
func (s Slot) SaveDatPath() string {
	return filepath.Join(s.Path, "SAVE.DAT")
}

// MapPath returns the location of a per-map state file inside the slot.
func (s Slot) MapPath(mapName string) string {
	return filepath.Join(s.Path, mapName)
}

// ListSlots finds the save slots under a savegame directory. Only
// directories matching the SLOT prefix and containing a SAVE.DAT are
// returned, sorted by name.
func ListSlots(dir string) ([]Slot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read savegame directory: %w", err)
	}

	var slots []Slot
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(strings.ToUpper(e.Name()), "SLOT") {
			continue
		}
		slot := Slot{Name: e.Name(), Path: filepath.Join(dir, e.Name())}
		if _, err := os.Stat(slot.SaveDatPath()); err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Name < slots[j].Name })
	return slots, nil
}
