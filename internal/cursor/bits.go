package cursor

import "github.com/pagkit/pagparse/internal/errs"

// Bits is a sequential single-bit reader over a borrowed byte buffer,
// used for the leading flag region of an attribute block and for the
// video sequence's per-frame key-frame bitmap.
type Bits struct {
	buf   []byte
	index int
}

// NewBits returns a bit cursor over buf starting at bit index 0.
func NewBits(buf []byte) *Bits {
	return &Bits{buf: buf}
}

// Next reads the next bit, LSB-first within each byte: bit j of byte i
// where (i, j) = (index/8, index%8). Reads past the end of the buffer
// return false rather than failing, matching the format's tolerance for
// a flag region that runs out before its declared field count.
func (b *Bits) Next() bool {
	i, j := b.index/8, b.index%8
	b.index++
	if i >= len(b.buf) {
		return false
	}
	return b.buf[i]&(1<<uint(j)) != 0
}

// Index returns the number of bits consumed so far.
func (b *Bits) Index() int { return b.index }

// Finish yields a byte cursor starting at the byte after the last
// consumed bit (ceiling division of the bit index by 8), failing with
// Incomplete if that offset exceeds the buffer length.
func (b *Bits) Finish() (*Cursor, error) {
	byteOffset := (b.index + 7) / 8
	if byteOffset > len(b.buf) {
		return nil, errs.NewIncomplete(byteOffset - len(b.buf))
	}
	return New(b.buf[byteOffset:]), nil
}
