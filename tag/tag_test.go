package tag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/ctx"
	"github.com/pagkit/pagparse/internal/errs"
	"github.com/pagkit/pagparse/tag"
)

func endTagBytes() []byte {
	// code=0 (End), length=0 packed into the low 6 bits of a 16-bit LE word.
	return []byte{0x00, 0x00}
}

func TestParseBlockStopsAtEndTag(t *testing.T) {
	c := cursor.New(endTagBytes())
	block, err := tag.ParseBlock(c, ctx.Root(), 0, tag.DefaultMaxRecursionDepth)
	require.NoError(t, err)
	require.Empty(t, block.Tags)
	require.Equal(t, 0, c.Remaining())
}

func TestUnknownTagCodeProducesRaw(t *testing.T) {
	// A made-up high tag code (200) with a 3-byte body, followed by End.
	// header word: code<<6 | length ; length=3 fits in 6 bits (escape is 0x3F).
	code := uint16(200)
	word := code<<6 | 3
	buf := []byte{byte(word), byte(word >> 8), 0xAA, 0xBB, 0xCC}
	buf = append(buf, endTagBytes()...)

	c := cursor.New(buf)
	block, err := tag.ParseBlock(c, ctx.Root(), 0, tag.DefaultMaxRecursionDepth)
	require.NoError(t, err)
	require.Len(t, block.Tags, 1)

	raw, ok := block.Tags[0].Body.(tag.Raw)
	require.True(t, ok)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, raw.Bytes.Data)
	require.Equal(t, format.TagCode(200), block.Tags[0].Header.Code)
}

func TestHeaderEscapeLengthReadsTrailingU32(t *testing.T) {
	// code=200 (an unknown code, so the body surfaces as Raw), length
	// escape 0x3F, trailing length = 2,
	// followed by 2 body bytes, then an End tag.
	code := uint16(200)
	word := code<<6 | 0x3F
	buf := []byte{byte(word), byte(word >> 8), 0x02, 0x00, 0x00, 0x00, 0x11, 0x22}
	buf = append(buf, endTagBytes()...)

	c := cursor.New(buf)
	block, err := tag.ParseBlock(c, ctx.Root(), 0, tag.DefaultMaxRecursionDepth)
	require.NoError(t, err)
	require.Len(t, block.Tags, 1)
	require.Equal(t, uint32(2), block.Tags[0].Header.Length)

	raw, ok := block.Tags[0].Body.(tag.Raw)
	require.True(t, ok)
	require.Equal(t, []byte{0x11, 0x22}, raw.Bytes.Data)
}

func TestParseBlockMissingEndTagIsDetectedStructurally(t *testing.T) {
	c := cursor.New([]byte{})
	_, err := tag.ParseBlock(c, ctx.Root(), 0, tag.DefaultMaxRecursionDepth)
	require.ErrorIs(t, err, errs.ErrMissingEndTag)
}

func TestRecursionDepthLimitEnforced(t *testing.T) {
	c := cursor.New(endTagBytes())
	_, err := tag.ParseBlock(c, ctx.Root(), 100, 64)
	require.Error(t, err)
}

func TestLayerAttributesUnderV3NonCameraHasMotionBlur(t *testing.T) {
	// Flag region spans 2 bytes: is_active(bit0=1), auto_orientation
	// (bit1=0), motion_blur(bit2=1), parent/stretch/start_time/
	// blend_mode/track_matte_type exist bits all 0 (byte0 bits 3-7),
	// time_remap exist bit 0 (byte1 bit0), name exist bit 0 (byte1
	// bit1). duration is FixedValue, which is always present and always
	// reads 8 content bytes regardless of the flag region.
	flags := []byte{0x05, 0x00}
	content := make([]byte, 8) // duration: u64 little-endian, all zero -> clamped to 1
	body := cursor.New(append(append([]byte{}, flags...), content...))
	context := ctx.Root().WithParentCode(format.LayerAttributesV3).WithLayerType(format.LayerSolid)

	block, err := tag.ParseBlock(bodyBlockBytes(t, body), context, 0, tag.DefaultMaxRecursionDepth)
	require.NoError(t, err)
	require.Len(t, block.Tags, 1)

	attrs, ok := block.Tags[0].Body.(tag.LayerAttributes)
	require.True(t, ok)
	require.True(t, attrs.IsActive)
	require.False(t, attrs.AutoOrientation)
	require.True(t, attrs.MotionBlur)
	require.Equal(t, format.RatioOne, attrs.Stretch)
	require.Equal(t, format.Time(1), attrs.Duration)
}

// bodyBlockBytes wraps a pre-built attribute-block payload into a single
// LayerAttributesV3 tag followed by an End tag, framed with a packed
// header, so the scenario can drive the public ParseBlock entry point
// exactly as the real decoder would see it.
func bodyBlockBytes(t *testing.T, payload *cursor.Cursor) *cursor.Cursor {
	t.Helper()
	raw := payload.Peek(payload.Remaining())
	code := uint16(format.LayerAttributesV3)
	word := code<<6 | uint16(len(raw))
	buf := []byte{byte(word), byte(word >> 8)}
	buf = append(buf, raw...)
	buf = append(buf, endTagBytes()...)
	return cursor.New(buf)
}
