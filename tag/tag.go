package tag

import (
	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/ctx"
	"github.com/pagkit/pagparse/internal/errs"
)

// Body is the closed tagged union of tag body shapes. Every in-scope
// body decoder's result type implements it; Raw is the catch-all for
// unknown or deliberately-unimplemented codes.
type Body interface {
	isBody()
}

// Tag is a single framed unit: its packed header plus its decoded body.
type Tag struct {
	Header Header
	Body   Body
}

// Block is an ordered sequence of tags, terminated by (and excluding)
// an End tag.
type Block struct {
	Tags []Tag
}

// ParseTag reads one tag header, carves its length-bounded body window,
// and dispatches to the matching body decoder. The context supplied to
// the body decoder has its parent code refined to this tag's own code,
// matching the source's (confusingly named but load-bearing) behavior
// of using "parent_code" to disambiguate which of several tag codes
// sharing one body decoder (e.g. the three LayerAttributes codes)
// invoked it.
func ParseTag(c *cursor.Cursor, context ctx.Context, depth, maxDepth int) (Tag, error) {
	header, err := parseHeader(c)
	if err != nil {
		return Tag{}, err
	}

	bodyCursor, err := c.SubCursor(int(header.Length))
	if err != nil {
		return Tag{}, err
	}

	bodyCtx := context.WithParentCode(header.Code)
	body, err := dispatch(header.Code, bodyCursor, bodyCtx, depth, maxDepth)
	if err != nil {
		return Tag{}, err
	}

	return Tag{Header: header, Body: body}, nil
}

// ParseBlock decodes a sequence of tags until an End tag is consumed
// (and discarded from the result). Returns errs.ErrMissingEndTag if the
// buffer reaches exactly zero remaining bytes before an End tag is
// seen, or Incomplete if a tag is cut off partway through.
func ParseBlock(c *cursor.Cursor, context ctx.Context, depth, maxDepth int) (Block, error) {
	if err := checkDepth(depth, maxDepth); err != nil {
		return Block{}, err
	}

	var block Block
	for {
		if c.Remaining() == 0 {
			return Block{}, errs.ErrMissingEndTag
		}
		t, err := ParseTag(c, context, depth, maxDepth)
		if err != nil {
			return Block{}, err
		}
		if t.Header.Code == format.End {
			return block, nil
		}
		block.Tags = append(block.Tags, t)
	}
}

// dispatch is the total function from tag code to body decoder. Unknown
// or deliberately-unimplemented codes produce a Raw body containing the
// unconsumed body-window contents.
func dispatch(code format.TagCode, body *cursor.Cursor, context ctx.Context, depth, maxDepth int) (Body, error) {
	switch code {
	case format.End:
		return End{}, nil
	case format.FontTables:
		return parseFontTables(body)
	case format.VectorCompositionBlock:
		return parseVectorCompositionBlock(body, context, depth, maxDepth)
	case format.CompositionAttributes:
		return parseCompositionAttributes(body)
	case format.ImageTables:
		return parseImageTables(body)
	case format.LayerBlock:
		return parseLayerBlock(body, context, depth, maxDepth)
	case format.LayerAttributes, format.LayerAttributesV2, format.LayerAttributesV3:
		return parseLayerAttributes(body, context)
	case format.SolidColor:
		return parseSolidColor(body)
	case format.TextSource:
		return parseTextSource(body, context)
	case format.DeprecatedTextPathOption, format.TextPathOption:
		return parseTextPathOption(body)
	case format.TextMoreOption:
		return parseTextMoreOption(body)
	case format.ImageReference:
		return parseImageReference(body)
	case format.CompositionReference:
		return parseCompositionReference(body)
	case format.Transform2D:
		return parseTransform2D(body)
	case format.FileAttributes:
		return parseFileAttributes(body)
	case format.ImageBytes:
		return parseImageBytes(body)
	case format.ImageBytes2:
		return parseImageBytes2(body)
	case format.ImageBytes3:
		return parseImageBytes3(body)
	case format.VideoCompositionBlock:
		return parseVideoCompositionBlock(body, context, depth, maxDepth)
	case format.VideoSequence:
		return parseVideoSequence(body, context)
	default:
		raw, err := body.TakeBytes(body.Remaining())
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(raw))
		copy(out, raw)
		return Raw{Bytes: format.ByteData{Data: out, Fingerprint: fingerprintOf(out)}}, nil
	}
}

// End is the terminal tag body; it carries no data and is never
// retained in a Block's Tags.
type End struct{}

func (End) isBody() {}

// Raw is the catch-all body for tag codes with no registered decoder.
type Raw struct {
	Bytes format.ByteData
}

func (Raw) isBody() {}
