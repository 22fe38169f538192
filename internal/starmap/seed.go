package starmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSeed is returned for seed text that is not a 64-bit hex value.
var ErrMalformedSeed = errors.New("malformed seed")

// ParseSeed parses hexadecimal seed text such as "0x1f" or "1F".
// Surrounding whitespace and a 0x/0X prefix are ignored.
func ParseSeed(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "0X"); ok {
		s = rest
	}
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSeed, text)
	}
	seed, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSeed, text)
	}
	return seed, nil
}

// FormatSeed renders a seed the way ParseSeed accepts it, e.g. "0x1f".
func FormatSeed(seed uint64) string {
	return fmt.Sprintf("%#x", seed)
}
