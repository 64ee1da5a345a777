package bytecodec

import "math"

// Reader decodes values from a byte slice it does not own, front to back.
//
// Every read checks that enough unread bytes remain. If they do, the value is
// decoded and the cursor advances past it; if not, the read reports ok=false
// and the cursor stays where it was, so a failed read can be retried with a
// narrower type or treated as the end of parsing.
//
// A Reader never modifies its slice, so several Readers may share one.
// A single Reader must not be used from more than one goroutine at a time.
type Reader struct {
	b   []byte
	pos int // 0 <= pos <= len(b)
}

// NewReader creates a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.b) - r.pos }

// Pos returns the cursor: the number of bytes consumed since the start or the last Reset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the length of the underlying slice.
func (r *Reader) Len() int { return len(r.b) }

// Reset moves the cursor back to the start so the slice can be read again.
func (r *Reader) Reset() { r.pos = 0 }

// Skip advances the cursor by n bytes. It reports false, without moving,
// if fewer than n bytes remain or n is negative.
func (r *Reader) Skip(n int) bool {
	_, ok := r.take(n)
	return ok
}

// Align skips padding until Pos is a multiple of n, mirroring Writer.Align.
// n must be a power of two: Align reports false without moving otherwise.
// Values of n below 2 are a successful no-op.
func (r *Reader) Align(n int) bool {
	if n <= 1 {
		return true
	}
	if !isPow2(n) {
		return false
	}
	return r.Skip(Roundup(r.pos, n) - r.pos)
}

// take returns the next n bytes and advances past them.
func (r *Reader) take(n int) ([]byte, bool) {
	if n < 0 || n > r.Remaining() {
		return nil, false
	}
	b := r.b[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, true
}

// --- Primitive Read Operations ---

func (r *Reader) ReadUint8() (uint8, bool) {
	b, ok := r.take(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

func (r *Reader) ReadUint16() (uint16, bool) {
	b, ok := r.take(2)
	if !ok {
		return 0, false
	}
	return LE.Uint16(b), true
}

func (r *Reader) ReadUint32() (uint32, bool) {
	b, ok := r.take(4)
	if !ok {
		return 0, false
	}
	return LE.Uint32(b), true
}

func (r *Reader) ReadUint64() (uint64, bool) {
	b, ok := r.take(8)
	if !ok {
		return 0, false
	}
	return LE.Uint64(b), true
}

func (r *Reader) ReadUint128() (Uint128, bool) {
	b, ok := r.take(16)
	if !ok {
		return Uint128{}, false
	}
	return uint128LE(b), true
}

func (r *Reader) ReadInt8() (int8, bool) {
	v, ok := r.ReadUint8()
	return int8(v), ok
}

func (r *Reader) ReadInt16() (int16, bool) {
	v, ok := r.ReadUint16()
	return int16(v), ok
}

func (r *Reader) ReadInt32() (int32, bool) {
	v, ok := r.ReadUint32()
	return int32(v), ok
}

func (r *Reader) ReadInt64() (int64, bool) {
	v, ok := r.ReadUint64()
	return int64(v), ok
}

func (r *Reader) ReadInt128() (Int128, bool) {
	v, ok := r.ReadUint128()
	return Int128{Lo: v.Lo, Hi: int64(v.Hi)}, ok
}

func (r *Reader) ReadFloat32() (float32, bool) {
	v, ok := r.ReadUint32()
	return math.Float32frombits(v), ok
}

func (r *Reader) ReadFloat64() (float64, bool) {
	v, ok := r.ReadUint64()
	return math.Float64frombits(v), ok
}

// ReadBool reads one byte. Any nonzero value is true.
func (r *Reader) ReadBool() (bool, bool) {
	v, ok := r.ReadUint8()
	return v != 0, ok
}

// ReadString reads n bytes as UTF-8 text. Invalid sequences are replaced
// with U+FFFD rather than rejected; only a short slice makes it fail.
func (r *Reader) ReadString(n int) (string, bool) {
	b, ok := r.take(n)
	if !ok {
		return "", false
	}
	return decodeLossy(b), true
}

// ReadBytes reads n bytes and returns them as a new slice.
func (r *Reader) ReadBytes(n int) ([]byte, bool) {
	b, ok := r.take(n)
	if !ok {
		return nil, false
	}
	return append(make([]byte, 0, n), b...), true
}

// readLenPrefixed returns the content of a uint64-length-prefixed span.
// Either both the length and the content are consumed or nothing is.
func (r *Reader) readLenPrefixed() ([]byte, bool) {
	start := r.pos
	n, ok := r.ReadUint64()
	if !ok {
		return nil, false
	}
	if !fits(n, r.Remaining()) {
		r.pos = start
		return nil, false
	}
	return r.take(int(n))
}

// ReadLenPrefixedString reads text written by Writer.PushLenPrefixedString.
func (r *Reader) ReadLenPrefixedString() (string, bool) {
	b, ok := r.readLenPrefixed()
	if !ok {
		return "", false
	}
	return decodeLossy(b), true
}

// ReadLenPrefixedBytes reads a span written by Writer.PushLenPrefixedBytes.
func (r *Reader) ReadLenPrefixedBytes() ([]byte, bool) {
	b, ok := r.readLenPrefixed()
	if !ok {
		return nil, false
	}
	return append(make([]byte, 0, len(b)), b...), true
}

// ReadInto decodes v from the unread bytes and advances the cursor by
// SizeOf(v), the number of bytes v says it occupies, not by the length of the
// remainder. The cursor does not move if decoding fails or if v reports a
// size the remainder could not have held.
func (r *Reader) ReadInto(v Value) bool {
	if !v.FromBytes(r.b[r.pos:]) {
		return false
	}
	return r.Skip(SizeOf(v))
}
