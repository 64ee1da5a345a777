package bytecodec

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the cost of reflection in `binary.Size` on every call.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed adopts the Value contract for any struct Payload composed of
// fixed-size fields, laid out in declaration order, little-endian.
//
// Constraint: Payload MUST NOT contain variable-size fields like slices,
// maps, or strings. Encoding such a Payload panics.
type Fixed[Payload any] struct {
	Payload Payload
}

var (
	_ Value                      = (*Fixed[struct{}])(nil)
	_ Sizer                      = (*Fixed[struct{}])(nil)
	_ encoding.BinaryMarshaler   = (*Fixed[struct{}])(nil)
	_ encoding.BinaryUnmarshaler = (*Fixed[struct{}])(nil)
)

// Size returns the fixed size of Payload in bytes, or -1 if Payload is not
// fixed-size. The result is cached per type.
func (c *Fixed[Payload]) Size() int {
	t := reflect.TypeFor[Payload]()
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	size := binary.Size(&c.Payload)
	sizeCache.Store(t, size)
	return size
}

// Bytes encodes Payload field by field.
func (c *Fixed[Payload]) Bytes() []byte {
	w := NewWriterSize(c.Size())
	if err := binary.Write(w, LE, &c.Payload); err != nil {
		panic(fmt.Sprintf("bytecodec: %T is not fixed-size: %v", c.Payload, err))
	}
	return w.Bytes()
}

// FromBytes decodes Payload from the start of data.
func (c *Fixed[Payload]) FromBytes(data []byte) bool {
	_, err := binary.Decode(data, LE, &c.Payload)
	return err == nil
}

func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(c)
}

// UnmarshalBinary implements `encoding.BinaryUnmarshaler`. data must be
// exactly Size bytes long.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(c, data)
}
