// Package bytecodec provides a little-endian byte Writer and a cursor-based
// Reader, plus a small contract that lets composite types encode themselves
// into, and decode themselves out of, the same byte stream.
//
// The layout is implicit: producer and consumer must agree on field order and
// widths. Reads never fail with an error; a false ok means not enough bytes
// remained, and the cursor is left where it was.
package bytecodec

// Sizer is an interface for types that can report their binary size.
// Implementing it lets a Reader skip re-encoding a decoded value just to learn
// how many bytes it consumed.
type Sizer interface {
	// Size returns the number of bytes the value's encoding occupies.
	Size() int
}

// Marshaler is implemented by types that can produce their own byte encoding.
type Marshaler interface {
	// Bytes returns the value's encoding. The layout carries no outer length
	// prefix or type tag; FromBytes must be able to find the end on its own.
	Bytes() []byte
}

// Unmarshaler is implemented by types that can rebuild themselves from a
// prefix of a byte slice.
type Unmarshaler interface {
	// FromBytes decodes the receiver from the start of data. Trailing bytes
	// are allowed and ignored. It reports false if data is too short.
	FromBytes(data []byte) bool
}

// Value is a type that can both encode and decode itself.
type Value interface {
	Marshaler
	Unmarshaler
}

// Codec constrains PT to be a pointer to T implementing Value, so generic
// helpers can allocate a T and decode into it.
type Codec[T any] interface {
	*T
	Value
}

// SizeOf returns how many bytes v occupies on the wire. It trusts v.Size()
// when v implements Sizer and otherwise measures a fresh encoding.
func SizeOf(v Marshaler) int {
	if s, ok := v.(Sizer); ok {
		return s.Size()
	}
	return len(v.Bytes())
}
