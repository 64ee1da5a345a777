package bytecodec

import (
	"io"
	"math"
)

// Writer accumulates little-endian encoded values into a growing byte slice.
// Bytes are only ever appended; no operation can fail.
//
// The Push* methods append in place. Each has a With* twin that returns the
// Writer so appends can be chained in one expression.
type Writer struct {
	buf []byte
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
)

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize creates an empty Writer with room for size bytes before it
// has to grow.
func NewWriterSize(size int) *Writer {
	return &Writer{buf: make([]byte, 0, max(size, 0))}
}

// NewWriterFrom creates a Writer that takes ownership of b and appends after
// its current contents. The caller must not use b afterwards.
func NewWriterFrom(b []byte) *Writer {
	return &Writer{buf: b}
}

// NewWriterCopy creates a Writer seeded with a copy of b.
func NewWriterCopy(b []byte) *Writer {
	return &Writer{buf: append([]byte(nil), b...)}
}

// Bytes returns the accumulated bytes. The slice aliases the Writer's buffer:
// it must not be modified, and later appends may or may not be visible in it.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Cap returns the capacity of the underlying buffer.
func (w *Writer) Cap() int { return cap(w.buf) }

// Write implements the io.Writer interface. It never returns an error.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// WriteString implements the io.StringWriter interface.
func (w *Writer) WriteString(s string) (int, error) {
	w.buf = append(w.buf, s...)
	return len(s), nil
}

// WriteByte implements the io.ByteWriter interface.
func (w *Writer) WriteByte(c byte) error {
	w.buf = append(w.buf, c)
	return nil
}

// WriteZeros appends n zero bytes, often for padding.
func (w *Writer) WriteZeros(n int) {
	for n > 0 {
		k := min(n, zeroBufSize)
		w.buf = append(w.buf, empty[:k]...)
		n -= k
	}
}

// Align pads with zero bytes until Len is a multiple of n.
// n must be a power of two; anything else, including 1, is a no-op.
func (w *Writer) Align(n int) {
	if n > 1 && isPow2(n) {
		w.WriteZeros(Roundup(len(w.buf), n) - len(w.buf))
	}
}

// --- Primitive Push Operations ---

func (w *Writer) PushUint8(v uint8) { w.buf = append(w.buf, v) }

func (w *Writer) PushUint16(v uint16) { w.buf = LE.AppendUint16(w.buf, v) }

func (w *Writer) PushUint32(v uint32) { w.buf = LE.AppendUint32(w.buf, v) }

func (w *Writer) PushUint64(v uint64) { w.buf = LE.AppendUint64(w.buf, v) }

// PushUint128 appends v as 16 bytes, least significant byte first.
func (w *Writer) PushUint128(v Uint128) {
	w.buf = LE.AppendUint64(w.buf, v.Lo)
	w.buf = LE.AppendUint64(w.buf, v.Hi)
}

func (w *Writer) PushInt8(v int8) { w.buf = append(w.buf, uint8(v)) }

func (w *Writer) PushInt16(v int16) { w.buf = LE.AppendUint16(w.buf, uint16(v)) }

func (w *Writer) PushInt32(v int32) { w.buf = LE.AppendUint32(w.buf, uint32(v)) }

func (w *Writer) PushInt64(v int64) { w.buf = LE.AppendUint64(w.buf, uint64(v)) }

// PushInt128 appends v as 16 bytes of two's complement, least significant byte first.
func (w *Writer) PushInt128(v Int128) {
	w.PushUint128(Uint128{Lo: v.Lo, Hi: uint64(v.Hi)})
}

// PushFloat32 appends the IEEE 754 bit pattern of v.
func (w *Writer) PushFloat32(v float32) { w.PushUint32(math.Float32bits(v)) }

// PushFloat64 appends the IEEE 754 bit pattern of v.
func (w *Writer) PushFloat64(v float64) { w.PushUint64(math.Float64bits(v)) }

// PushBool appends 1 for true and 0 for false.
func (w *Writer) PushBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// PushString appends the UTF-8 bytes of s with no length and no terminator.
// The reader has to learn the length some other way.
func (w *Writer) PushString(s string) { w.buf = append(w.buf, s...) }

// PushBytes appends b verbatim with no length and no terminator.
func (w *Writer) PushBytes(b []byte) { w.buf = append(w.buf, b...) }

// PushLenPrefixedString appends len(s) as a uint64 followed by s.
func (w *Writer) PushLenPrefixedString(s string) {
	w.PushUint64(uint64(len(s)))
	w.PushString(s)
}

// PushLenPrefixedBytes appends len(b) as a uint64 followed by b.
func (w *Writer) PushLenPrefixedBytes(b []byte) {
	w.PushUint64(uint64(len(b)))
	w.PushBytes(b)
}

// Push appends the encoding of v verbatim. No length or tag is added.
func (w *Writer) Push(v Marshaler) { w.buf = append(w.buf, v.Bytes()...) }

// --- Chaining ---

func (w *Writer) WithUint8(v uint8) *Writer              { w.PushUint8(v); return w }
func (w *Writer) WithUint16(v uint16) *Writer            { w.PushUint16(v); return w }
func (w *Writer) WithUint32(v uint32) *Writer            { w.PushUint32(v); return w }
func (w *Writer) WithUint64(v uint64) *Writer            { w.PushUint64(v); return w }
func (w *Writer) WithUint128(v Uint128) *Writer          { w.PushUint128(v); return w }
func (w *Writer) WithInt8(v int8) *Writer                { w.PushInt8(v); return w }
func (w *Writer) WithInt16(v int16) *Writer              { w.PushInt16(v); return w }
func (w *Writer) WithInt32(v int32) *Writer              { w.PushInt32(v); return w }
func (w *Writer) WithInt64(v int64) *Writer              { w.PushInt64(v); return w }
func (w *Writer) WithInt128(v Int128) *Writer            { w.PushInt128(v); return w }
func (w *Writer) WithFloat32(v float32) *Writer          { w.PushFloat32(v); return w }
func (w *Writer) WithFloat64(v float64) *Writer          { w.PushFloat64(v); return w }
func (w *Writer) WithBool(v bool) *Writer                { w.PushBool(v); return w }
func (w *Writer) WithString(s string) *Writer            { w.PushString(s); return w }
func (w *Writer) WithBytes(b []byte) *Writer             { w.PushBytes(b); return w }
func (w *Writer) WithLenPrefixedString(s string) *Writer { w.PushLenPrefixedString(s); return w }
func (w *Writer) WithLenPrefixedBytes(b []byte) *Writer  { w.PushLenPrefixedBytes(b); return w }
func (w *Writer) With(v Marshaler) *Writer               { w.Push(v); return w }
