// Package attrblock implements the two-phase attribute-block codec: a
// leading bit-packed flag region followed by a payload region, with
// per-field flag shapes determined by a declared format.AttributeType.
//
// The block is driven as a small declarative schema: callers call Flag
// once per declared property (in fixed declaration order) to consume
// that property's flag bits, then call the matching Read* once per
// property (same order) to obtain its value or default. This mirrors
// the source's builder-style API and keeps every property's decode path
// uniform regardless of type.
package attrblock

import (
	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/errs"
)

// Flag is the derived (exist, animatable, hasSpatial) triple for one
// declared property.
type Flag struct {
	Exist       bool
	Animatable  bool
	HasSpatial  bool
}

// Block decodes a body's attribute region: flag phase first, content
// phase after the first value read.
type Block struct {
	bits    *cursor.Bits
	content *cursor.Cursor
	inFlag  bool
}

// New opens an attribute block over body, starting in the flag phase.
func New(body *cursor.Cursor) *Block {
	remaining := body.Peek(body.Remaining())
	return &Block{bits: cursor.NewBits(remaining), inFlag: true}
}

// Flag consumes the flag bits for one declared property of the given
// type and returns the derived flag triple. Must be called once per
// declared property, in declaration order, before any Read* call for
// that property.
func (b *Block) Flag(t format.AttributeType) Flag {
	switch t {
	case format.AttrNotExisted:
		return Flag{}
	case format.AttrFixedValue:
		return Flag{Exist: true}
	case format.AttrValue, format.AttrBitFlag, format.AttrCustom:
		return Flag{Exist: b.bits.Next()}
	case format.AttrSimpleProperty, format.AttrDiscreteProperty, format.AttrMultiDimensionProperty:
		bit0 := b.bits.Next()
		if !bit0 {
			return Flag{}
		}
		bit1 := b.bits.Next()
		bit2 := b.bits.Next()
		return Flag{Exist: true, Animatable: bit1, HasSpatial: bit2}
	case format.AttrSpatialProperty:
		bit0 := b.bits.Next()
		if !bit0 {
			return Flag{}
		}
		bit1 := b.bits.Next()
		return Flag{Exist: true, Animatable: bit1}
	default:
		return Flag{}
	}
}

// enterContent transitions the block from the flag phase to the content
// phase on the first value read, carving a byte cursor starting after
// the last consumed flag bit.
func (b *Block) enterContent() error {
	if !b.inFlag {
		return nil
	}
	c, err := b.bits.Finish()
	if err != nil {
		return err
	}
	b.content = c
	b.inFlag = false
	return nil
}

// Cursor returns the content-phase byte cursor, entering the content
// phase if this is the first value read of the block.
func (b *Block) Cursor() (*cursor.Cursor, error) {
	if err := b.enterContent(); err != nil {
		return nil, err
	}
	return b.content, nil
}

// ErrAnimatable is returned by Read* when a flag's animatable bit is set:
// the format's key-frame wire encoding for animated properties is a
// stub in the reference implementation (see internal/errs.ErrAnimatableKeyframes).
var ErrAnimatable = errs.ErrAnimatableKeyframes

// ReadValue implements the Value/FixedValue/Property value-read rule for
// a scalar T: if flag.Exist, decode one T via decode; else return def.
// For property types (simple/discrete/multi-dimension/spatial) with
// flag.Animatable set, returns ErrAnimatable instead of decoding, per the
// format's unresolved key-frame wire contract.
func ReadValue[T any](b *Block, flag Flag, def T, decode func(*cursor.Cursor) (T, error)) (T, error) {
	if !flag.Exist {
		return def, nil
	}
	if flag.Animatable {
		return def, ErrAnimatable
	}
	c, err := b.Cursor()
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(c)
}

// ReadBitFlag implements the BitFlag value-read rule: the value is the
// exist bit itself, mapped through toT.
func ReadBitFlag[T any](flag Flag, toT func(bool) T) T {
	return toT(flag.Exist)
}
