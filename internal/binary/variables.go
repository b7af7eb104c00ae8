package binary

import (
	"fmt"

	"github.com/vaultdweller/fo2sav/internal/model"
)

// decodeVariables reads the global then the local variable table, with
// no padding between them. The counts come from an already decoded map
// header; passing a negative count is a caller bug and is rejected
// before any bytes are consumed.
func decodeVariables(c *cursor, globalCount, localCount int) (model.MapVariables, error) {
	var v model.MapVariables

	if globalCount < 0 || localCount < 0 {
		return v, fmt.Errorf("variable counts %d/%d: %w", globalCount, localCount, ErrNegativeCount)
	}
	if need := 4 * (globalCount + localCount); c.remaining() < need {
		return v, fmt.Errorf("variable tables need %d bytes at offset %d, have %d: %w", need, c.off, c.remaining(), ErrInsufficientData)
	}

	v.GlobalVariables = make([]int32, globalCount)
	for i := range v.GlobalVariables {
		v.GlobalVariables[i], _ = c.i32()
	}
	v.LocalVariables = make([]int32, localCount)
	for i := range v.LocalVariables {
		v.LocalVariables[i], _ = c.i32()
	}
	return v, nil
}
