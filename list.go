package bytecodec

import "encoding"

// List is a Value holding a sequence of Values. It is encoded as the item
// count (uint64) followed by each item's own encoding, back to back, so the
// item type must be able to find its own end.
//
// PT is normally inferred: List[Record, *Record].
type List[T any, PT Codec[T]] struct {
	Items []T
}

var (
	_ Value                      = (*List[Fixed[struct{}], *Fixed[struct{}]])(nil)
	_ Sizer                      = (*List[Fixed[struct{}], *Fixed[struct{}]])(nil)
	_ encoding.BinaryMarshaler   = (*List[Fixed[struct{}], *Fixed[struct{}]])(nil)
	_ encoding.BinaryUnmarshaler = (*List[Fixed[struct{}], *Fixed[struct{}]])(nil)
)

// NewList creates a List over items. The slice is not copied.
func NewList[T any, PT Codec[T]](items ...T) *List[T, PT] {
	return &List[T, PT]{Items: items}
}

func (l *List[T, PT]) Len() int { return len(l.Items) }

// Size returns the encoded size: the count field plus every item's size.
func (l *List[T, PT]) Size() int {
	n := LenPrefixSize
	for i := range l.Items {
		n += SizeOf(PT(&l.Items[i]))
	}
	return n
}

func (l *List[T, PT]) Bytes() []byte {
	w := NewWriterSize(l.Size())
	w.PushUint64(uint64(len(l.Items)))
	for i := range l.Items {
		w.Push(PT(&l.Items[i]))
	}
	return w.Bytes()
}

// FromBytes decodes the count and then that many items. If any item is
// missing or truncated the whole list fails and l is left unchanged.
// Every item must occupy at least one byte; a zero-width item would let
// the count alone decide how long decoding runs.
func (l *List[T, PT]) FromBytes(data []byte) bool {
	r := NewReader(data)
	count, ok := r.ReadUint64()
	if !ok {
		return false
	}

	// The count comes off the wire; don't let it size the allocation alone.
	items := make([]T, 0, min(count, uint64(r.Remaining())))
	for range count {
		start := r.Pos()
		item, ok := Read[T, PT](r)
		if !ok || r.Pos() == start {
			return false
		}
		items = append(items, item)
	}
	l.Items = items
	return true
}

func (l *List[T, PT]) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(l)
}

func (l *List[T, PT]) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(l, data)
}
