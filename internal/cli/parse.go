package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseChannel parses a decimal 8-bit channel or brightness value.
func ParseChannel(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%q is not a value between 0 and 255", s)
	}
	return uint8(v), nil
}

// ParseFloat parses a single-precision number.
func ParseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return float32(v), nil
}
