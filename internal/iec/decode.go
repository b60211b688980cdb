package iec

import (
	"fmt"
	"strconv"
	"strings"
)

// Located variable names carry their address positionally: two leading
// underscores, the direction flag, the size flag, then the major index
// numeral, optionally followed by an underscore and the minor index
// numeral. Example: __IX12_3.
const (
	directionFlagIndex = 2
	sizeFlagIndex      = 3
	addrDigitsIndex    = 4
)

// DecodeAddress decodes a located variable name into a Declaration with its
// direction, size class, and major/minor indices filled in. The Type field
// is left empty for the caller.
//
// Numerals follow atoi semantics: a malformed or overflowing numeral
// decodes as 0 rather than failing, which matches the original generator.
// A name too short to carry the address flags is rejected outright.
func DecodeAddress(name string) (Declaration, error) {
	if len(name) <= addrDigitsIndex {
		return Declaration{}, fmt.Errorf("located variable name %q is too short to carry an address", name)
	}

	d := Declaration{
		Name:      name,
		Direction: DirectionFromFlag(name[directionFlagIndex]),
		Size:      SizeClassFromFlag(name[sizeFlagIndex]),
	}

	major := name[addrDigitsIndex:]
	minor := ""
	if sep := strings.IndexByte(major, '_'); sep >= 0 {
		major, minor = major[:sep], major[sep+1:]
	}
	d.Major = decodeNumeral(major)
	d.Minor = decodeNumeral(minor)
	return d, nil
}

// decodeNumeral parses an unsigned decimal numeral, yielding 0 for anything
// that does not convert cleanly.
func decodeNumeral(s string) uint16 {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
