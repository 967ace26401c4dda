// Package tag implements the PAG tag framing engine (the packed header,
// the length-bounded body window, and dispatch to a body decoder keyed
// by tag code) together with every in-scope body decoder. Both live in
// one package because the recursive composition tags (LayerBlock,
// VectorCompositionBlock, VideoCompositionBlock) embed a Block, and a
// Block embeds a Tag. Splitting framing from bodies would create an
// import cycle.
package tag

import (
	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/errs"
)

// lengthEscape is the low-6-bits sentinel value meaning "a 32-bit
// little-endian length follows the header word".
const lengthEscape = 0x3F

// Header is a tag's packed (code, length) pair.
type Header struct {
	Code   format.TagCode
	Length uint32
}

// parseHeader reads one little-endian 16-bit header word: the high 10
// bits (truncated to a byte discriminant) are the code, the low 6 bits
// are the length, with 0x3F escaping to an additional 32-bit length.
func parseHeader(c *cursor.Cursor) (Header, error) {
	word, err := c.NextU16()
	if err != nil {
		return Header{}, err
	}
	code := uint8(word >> 6)
	length := uint32(word) & lengthEscape
	if length == lengthEscape {
		length, err = c.NextU32()
		if err != nil {
			return Header{}, err
		}
	}
	return Header{Code: format.TagCode(code), Length: length}, nil
}

// DefaultMaxRecursionDepth bounds composition nesting to defend against
// pathological inputs, per the format's recursion guidance.
const DefaultMaxRecursionDepth = 64

func checkDepth(depth, maxDepth int) error {
	if depth > maxDepth {
		return errs.ErrRecursionTooDeep
	}
	return nil
}
