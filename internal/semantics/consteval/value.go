package consteval

import (
	"strconv"

	"github.com/asutton/beaker-old/internal/types"
)

// Format renders an evaluated value in source syntax for its type.
func Format(v int64, t types.Type) string {
	if types.IsBool(types.Decay(t)) {
		return strconv.FormatBool(v != 0)
	}
	return strconv.FormatInt(v, 10)
}
