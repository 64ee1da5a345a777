package bytecodec

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// LE is the byte order of every multi-byte value on the wire.
var LE = binary.LittleEndian

// LenPrefixSize is the width of the length field written before
// length-prefixed strings and byte spans.
const LenPrefixSize = 8

const zeroBufSize = 4096

var empty [zeroBufSize]byte

// Roundup rounds n up to the nearest multiple of align. align must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// isPow2 reports whether n is a positive power of two.
func isPow2[T constraints.Integer](n T) bool { return n > 0 && n&(n-1) == 0 }

// fits reports whether n bytes can be taken from a span with avail bytes left.
// n comes straight off the wire, so it is compared as unsigned.
func fits[T constraints.Unsigned](n T, avail int) bool {
	return uint64(n) <= uint64(avail)
}
