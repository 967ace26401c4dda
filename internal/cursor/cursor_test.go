package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagkit/pagparse/internal/cursor"
)

func TestVarU32RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"zero", []byte{0x00}, 0},
		{"small", []byte{0x80, 0x01}, 128},
		{"max_u32", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, 0xFFFFFFFF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(tc.in)
			got, err := c.NextVarU32()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, 0, c.Remaining())
		})
	}
}

func TestVarI32SignRecoveryIsNonStandardZigzag(t *testing.T) {
	// u=1 (encoded as a single byte 0x01): magnitude = 1>>1 = 0, sign bit
	// set, so the source's form yields -0 == 0, NOT standard zigzag's -1.
	c := cursor.New([]byte{0x01})
	got, err := c.NextVarI32()
	require.NoError(t, err)
	require.EqualValues(t, 0, got)
}

func TestVarI32SignRecoverySelfInverse(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 42, -42, 1<<31 - 1, -(1<<31 - 1)} {
		u := uint64(n) << 1
		if n < 0 {
			u = uint64(-n)<<1 | 1
		}
		var buf []byte
		v := u
		for {
			b := byte(v & 0x7F)
			v >>= 7
			if v != 0 {
				buf = append(buf, b|0x80)
				continue
			}
			buf = append(buf, b)
			break
		}
		c := cursor.New(buf)
		got, err := c.NextVarI32()
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestNextStringReadsUpToNul(t *testing.T) {
	c := cursor.New([]byte{'H', 'i', 0x00, 'X'})
	s, err := c.NextString()
	require.NoError(t, err)
	require.Equal(t, "Hi", s)
	require.Equal(t, 1, c.Remaining())
}

func TestNextStringLossyReplacesInvalidUTF8(t *testing.T) {
	c := cursor.New([]byte{'H', 'e', 0xFF, 0x00})
	s, err := c.NextString()
	require.NoError(t, err)
	require.Equal(t, []rune(s), []rune{'H', 'e', 0xFFFD})
	require.Equal(t, 0, c.Remaining())
	require.Equal(t, 4, c.Pos())
}

func TestNextStringIncompleteWithoutTerminator(t *testing.T) {
	c := cursor.New([]byte{'H', 'i'})
	_, err := c.NextString()
	require.Error(t, err)
}

func TestSubCursorIsBoundedAndIndependent(t *testing.T) {
	c := cursor.New([]byte{1, 2, 3, 4, 5})
	sub, err := c.SubCursor(3)
	require.NoError(t, err)
	require.Equal(t, 2, c.Remaining())
	require.Equal(t, 3, sub.Remaining())

	// Sub-cursor may be left partially unconsumed without affecting parent.
	_, err = sub.NextU8()
	require.NoError(t, err)
	require.Equal(t, 2, sub.Remaining())
	require.Equal(t, 2, c.Remaining())
}

func TestByteDataVerifiesLength(t *testing.T) {
	c := cursor.New([]byte{0x03, 'a', 'b', 'c'})
	data, err := c.NextByteData()
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), data)

	c2 := cursor.New([]byte{0x05, 'a', 'b'})
	_, err = c2.NextByteData()
	require.Error(t, err)
}

func TestBitCursorLSBFirstAndFinish(t *testing.T) {
	// 0x05 = 0b0000_0101 -> bits LSB-first: 1,0,1,0,0,0,0,0
	b := cursor.NewBits([]byte{0x05, 0xFF})
	require.True(t, b.Next())
	require.False(t, b.Next())
	require.True(t, b.Next())
	for i := 0; i < 3; i++ {
		require.False(t, b.Next())
	}
	sub, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, 1, sub.Remaining())
}

func TestBitCursorOutOfRangeReturnsFalse(t *testing.T) {
	b := cursor.NewBits([]byte{0xFF})
	for i := 0; i < 8; i++ {
		b.Next()
	}
	require.False(t, b.Next())
}

func TestBitCursorFinishIncompleteWhenOffsetExceedsBuffer(t *testing.T) {
	b := cursor.NewBits([]byte{0xFF})
	for i := 0; i < 16; i++ {
		b.Next()
	}
	_, err := b.Finish()
	require.Error(t, err)
}
