package tag

import (
	"fmt"

	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/attrblock"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/ctx"
	"github.com/pagkit/pagparse/internal/errs"
)

// TextPathOption binds a text layer to a path-following shape and its
// margins.
type TextPathOption struct {
	Path                  uint32
	ReversedPath          bool
	PerpendicularToPath   bool
	ForceAlignment        bool
	FirstMargin           float32
	LastMargin            float32
}

func (TextPathOption) isBody() {}

func parseTextPathOption(body *cursor.Cursor) (TextPathOption, error) {
	b := attrblock.New(body)

	pathFlag := b.Flag(format.AttrValue)
	reversedFlag := b.Flag(format.AttrBitFlag)
	perpFlag := b.Flag(format.AttrBitFlag)
	forceFlag := b.Flag(format.AttrBitFlag)
	firstMarginFlag := b.Flag(format.AttrSimpleProperty)
	lastMarginFlag := b.Flag(format.AttrSimpleProperty)

	path, err := attrblock.ReadValue(b, pathFlag, uint32(0), func(c *cursor.Cursor) (uint32, error) {
		return c.NextU32()
	})
	if err != nil {
		return TextPathOption{}, err
	}
	reversed := attrblock.ReadBitFlag(reversedFlag, func(v bool) bool { return v })
	perp := attrblock.ReadBitFlag(perpFlag, func(v bool) bool { return v })
	force := attrblock.ReadBitFlag(forceFlag, func(v bool) bool { return v })
	firstMargin, err := attrblock.ReadValue(b, firstMarginFlag, float32(0), func(c *cursor.Cursor) (float32, error) {
		return c.NextF32()
	})
	if err != nil {
		return TextPathOption{}, err
	}
	lastMargin, err := attrblock.ReadValue(b, lastMarginFlag, float32(0), func(c *cursor.Cursor) (float32, error) {
		return c.NextF32()
	})
	if err != nil {
		return TextPathOption{}, err
	}

	return TextPathOption{
		Path: path, ReversedPath: reversed, PerpendicularToPath: perp,
		ForceAlignment: force, FirstMargin: firstMargin, LastMargin: lastMargin,
	}, nil
}

// TextMoreOption carries a text layer's per-character grouping settings
// for animator-driven text effects.
type TextMoreOption struct {
	AnchorPointGrouping uint8
	GroupingAlignment   format.Point
}

func (TextMoreOption) isBody() {}

func parseTextMoreOption(body *cursor.Cursor) (TextMoreOption, error) {
	b := attrblock.New(body)

	groupingFlag := b.Flag(format.AttrValue)
	alignmentFlag := b.Flag(format.AttrSimpleProperty)

	grouping, err := attrblock.ReadValue(b, groupingFlag, uint8(0), func(c *cursor.Cursor) (uint8, error) {
		return c.NextU8()
	})
	if err != nil {
		return TextMoreOption{}, err
	}
	alignment, err := attrblock.ReadValue(b, alignmentFlag, format.Point{}, parsePoint)
	if err != nil {
		return TextMoreOption{}, err
	}

	return TextMoreOption{AnchorPointGrouping: grouping, GroupingAlignment: alignment}, nil
}

// TextSource wraps a text layer's document content as a single
// discrete (non-interpolated) property: the whole document swaps
// atomically at a keyframe rather than blending field by field.
type TextSource struct {
	Document TextDocument
}

func (TextSource) isBody() {}

func parseTextSource(body *cursor.Cursor, context ctx.Context) (TextSource, error) {
	b := attrblock.New(body)
	docFlag := b.Flag(format.AttrDiscreteProperty)
	doc, err := attrblock.ReadValue(b, docFlag, TextDocument{}, func(c *cursor.Cursor) (TextDocument, error) {
		return parseTextDocument(c, context)
	})
	if err != nil {
		return TextSource{}, err
	}
	return TextSource{Document: doc}, nil
}

// TextDocument is a text layer's full styled-text payload: a leading
// 19-bit presence region (rounded up to a byte) followed by the
// payloads of only the fields flagged present, in declaration order.
type TextDocument struct {
	ApplyFill      bool
	ApplyStroke    bool
	BoxText        bool
	FauxBold       bool
	FauxItalic     bool
	StrokeOverFill bool
	BaselineShift  float32
	FirstBaseline  float32
	BoxTextPos     format.Point
	BoxTextSize    format.Point
	FillColor      format.Color
	FontSize       float32
	StrokeColor    format.Color
	StrokeWidth    float32
	Text           string
	Justification  format.ParagraphJustification
	Leading        float32
	Tracking       float32
	HasFontData    bool
	FontID         uint32
}

func (TextDocument) isBody() {}

func parseTextDocument(c *cursor.Cursor, context ctx.Context) (TextDocument, error) {
	bits := cursor.NewBits(c.Peek(c.Remaining()))

	applyFill := bits.Next()
	applyStroke := bits.Next()
	boxText := bits.Next()
	fauxBold := bits.Next()
	fauxItalic := bits.Next()
	strokeOverFill := bits.Next()
	hasBaselineShift := bits.Next()
	hasFirstBaseline := bits.Next()
	hasBoxTextPos := bits.Next()
	hasBoxTextSize := bits.Next()
	hasFillColor := bits.Next()
	hasFontSize := bits.Next()
	hasStrokeColor := bits.Next()
	hasStrokeWidth := bits.Next()
	hasText := bits.Next()
	hasJustification := bits.Next()
	hasLeading := bits.Next()
	hasTracking := bits.Next()
	hasFontData := bits.Next()

	if _, err := bits.Finish(); err != nil {
		return TextDocument{}, err
	}
	byteLen := (bits.Index() + 7) / 8
	if err := c.Advance(byteLen); err != nil {
		return TextDocument{}, err
	}

	var doc TextDocument
	doc.ApplyFill = applyFill
	doc.ApplyStroke = applyStroke
	doc.BoxText = boxText
	doc.FauxBold = fauxBold
	doc.FauxItalic = fauxItalic
	doc.StrokeOverFill = strokeOverFill
	doc.HasFontData = hasFontData

	if hasBaselineShift {
		v, err := c.NextF32()
		if err != nil {
			return TextDocument{}, err
		}
		doc.BaselineShift = v
	}
	if hasFirstBaseline {
		v, err := c.NextF32()
		if err != nil {
			return TextDocument{}, err
		}
		doc.FirstBaseline = v
	}
	if hasBoxTextPos {
		v, err := parsePoint(c)
		if err != nil {
			return TextDocument{}, err
		}
		doc.BoxTextPos = v
	}
	if hasBoxTextSize {
		v, err := parsePoint(c)
		if err != nil {
			return TextDocument{}, err
		}
		doc.BoxTextSize = v
	}
	if hasFillColor {
		v, err := parseColor(c)
		if err != nil {
			return TextDocument{}, err
		}
		doc.FillColor = v
	}
	if hasFontSize {
		v, err := c.NextF32()
		if err != nil {
			return TextDocument{}, err
		}
		doc.FontSize = v
	}
	if hasStrokeColor {
		v, err := parseColor(c)
		if err != nil {
			return TextDocument{}, err
		}
		doc.StrokeColor = v
	}
	if hasStrokeWidth {
		v, err := c.NextF32()
		if err != nil {
			return TextDocument{}, err
		}
		doc.StrokeWidth = v
	}
	if hasText {
		v, err := c.NextString()
		if err != nil {
			return TextDocument{}, err
		}
		doc.Text = v
	}
	if hasJustification {
		v, err := c.NextEnum()
		if err != nil {
			return TextDocument{}, err
		}
		j := format.NewParagraphJustification(v)
		if context.StrictEnums() && !j.Known() {
			return TextDocument{}, errs.NewBadFrame(fmt.Sprintf("unknown justification discriminant %d", v))
		}
		doc.Justification = j
	}
	if hasLeading {
		v, err := c.NextF32()
		if err != nil {
			return TextDocument{}, err
		}
		doc.Leading = v
	}
	if hasTracking {
		v, err := c.NextF32()
		if err != nil {
			return TextDocument{}, err
		}
		doc.Tracking = v
	}
	if hasFontData {
		v, err := c.NextVarU32()
		if err != nil {
			return TextDocument{}, err
		}
		doc.FontID = v
	}

	return doc, nil
}
