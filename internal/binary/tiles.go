package binary

import "github.com/vaultdweller/fo2sav/internal/model"

// Maps are a 100x100 grid per elevation with alternating floor and roof
// tiles, nominally 2 bytes each. Observed save files only line up when
// each tile is counted as 4 bytes; whether sfall rewrites the tile
// encoding or the documented size is simply wrong is unresolved, so the
// empirically matching constant stays.
const elevationTileBytes = 100 * 100 * 2 * 2

// tileBlockSize is the raster tile block size implied by the elevation
// flags.
func tileBlockSize(flags model.MapFlags) int {
	size := 0
	for _, f := range []model.MapFlags{
		model.HasElevationAtLevel0,
		model.HasElevationAtLevel1,
		model.HasElevationAtLevel2,
	} {
		if flags.Has(f) {
			size += elevationTileBytes
		}
	}
	return size
}
