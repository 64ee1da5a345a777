package bytecodec

import "fmt"

// Read decodes a T from r. It is the generic form of Reader.ReadInto for
// callers that want a value rather than decoding into an existing one.
//
//	rec, ok := bytecodec.Read[Record](r)
func Read[T any, PT Codec[T]](r *Reader) (T, bool) {
	var v T
	if !r.ReadInto(PT(&v)) {
		var zero T
		return zero, false
	}
	return v, true
}

// Unmarshal decodes data as exactly one T. Unlike Read, it treats bytes left
// over after the value as an error.
func Unmarshal[T any, PT Codec[T]](data []byte) (T, error) {
	var v T
	if err := UnmarshalBinaryGeneric(PT(&v), data); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// UnmarshalBinaryGeneric provides an `encoding.BinaryUnmarshaler` style decode
// for any Value: data must hold the value's encoding and nothing else.
func UnmarshalBinaryGeneric(v Value, data []byte) error {
	if !v.FromBytes(data) {
		return ErrTruncatedData
	}
	n := SizeOf(v)
	if n < 0 {
		return fmt.Errorf("%w: value reports a negative size (%d)", ErrTruncatedData, n)
	}
	if n > len(data) {
		return fmt.Errorf("%w: value reports %d bytes, but only %d available", ErrTruncatedData, n, len(data))
	}
	if n < len(data) {
		return fmt.Errorf("%w: %d bytes after a %d byte value", ErrTrailingData, len(data)-n, n)
	}
	return nil
}

// MarshalBinaryGeneric provides an `encoding.BinaryMarshaler` implementation
// for any Marshaler.
func MarshalBinaryGeneric(v Marshaler) ([]byte, error) {
	return v.Bytes(), nil
}
