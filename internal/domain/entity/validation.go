package entity

import (
	"fmt"
	"strconv"
)

// ParseIdentifier applies the identifier rule shared by every resolver that accepts an
// article or comment id from the boundary: the raw value must be a base-10 integer with no
// residual characters that fits in int64. It never touches storage.
//
// Sign is allowed; "-1" is well-formed and simply matches nothing.
func ParseIdentifier(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return id, nil
}
