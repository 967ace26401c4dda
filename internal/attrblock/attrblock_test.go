package attrblock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/attrblock"
	"github.com/pagkit/pagparse/internal/cursor"
)

func TestValueFlagAbsentReturnsDefault(t *testing.T) {
	// Single flag bit 0 (not present), no content bytes needed.
	c := cursor.New([]byte{0x00})
	b := attrblock.New(c)
	flag := b.Flag(format.AttrValue)
	require.False(t, flag.Exist)

	got, err := attrblock.ReadValue(b, flag, uint32(7), func(c *cursor.Cursor) (uint32, error) {
		return c.NextU32()
	})
	require.NoError(t, err)
	require.Equal(t, uint32(7), got)
}

func TestValueFlagPresentReadsContent(t *testing.T) {
	// Flag bit 0 set (bit0=1 -> byte 0x01), content = u32 LE 42.
	c := cursor.New([]byte{0x01, 42, 0, 0, 0})
	b := attrblock.New(c)
	flag := b.Flag(format.AttrValue)
	require.True(t, flag.Exist)

	got, err := attrblock.ReadValue(b, flag, uint32(0), func(c *cursor.Cursor) (uint32, error) {
		return c.NextU32()
	})
	require.NoError(t, err)
	require.EqualValues(t, 42, got)
}

func TestSimplePropertyAnimatableReturnsError(t *testing.T) {
	// bit0=1 (exists), bit1=1 (animatable), bit2=0 (no spatial) -> byte 0b011 = 0x03.
	c := cursor.New([]byte{0x03})
	b := attrblock.New(c)
	flag := b.Flag(format.AttrSimpleProperty)
	require.True(t, flag.Exist)
	require.True(t, flag.Animatable)

	_, err := attrblock.ReadValue(b, flag, float32(0), func(c *cursor.Cursor) (float32, error) {
		return c.NextF32()
	})
	require.ErrorIs(t, err, attrblock.ErrAnimatable)
}

func TestBitFlagReadsTheExistBitDirectly(t *testing.T) {
	c := cursor.New([]byte{0x01})
	b := attrblock.New(c)
	flag := b.Flag(format.AttrBitFlag)
	got := attrblock.ReadBitFlag(flag, func(v bool) bool { return v })
	require.True(t, got)
}

func TestNotExistedConsumesNoBits(t *testing.T) {
	c := cursor.New([]byte{0x01})
	b := attrblock.New(c)
	flag := b.Flag(format.AttrNotExisted)
	require.False(t, flag.Exist)

	// The single declared bit must still be available for a following Flag call.
	next := b.Flag(format.AttrBitFlag)
	require.True(t, next.Exist)
}

func TestMultipleValuesReadInDeclarationOrder(t *testing.T) {
	// Two Value(u8) fields: flags bit0=1, bit1=1 -> byte 0x03; content = 7, 9.
	c := cursor.New([]byte{0x03, 7, 9})
	b := attrblock.New(c)
	f1 := b.Flag(format.AttrValue)
	f2 := b.Flag(format.AttrValue)

	v1, err := attrblock.ReadValue(b, f1, uint8(0), func(c *cursor.Cursor) (uint8, error) { return c.NextU8() })
	require.NoError(t, err)
	v2, err := attrblock.ReadValue(b, f2, uint8(0), func(c *cursor.Cursor) (uint8, error) { return c.NextU8() })
	require.NoError(t, err)

	require.EqualValues(t, 7, v1)
	require.EqualValues(t, 9, v2)
}
