package tag

import (
	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/attrblock"
	"github.com/pagkit/pagparse/internal/cursor"
)

// Transform2D is a layer's 2D spatial transform: anchor, position,
// scale, rotation and opacity. Position is split into a combined point
// plus independent x/y overrides, matching the source's representation
// of separable position animation.
type Transform2D struct {
	AnchorPoint format.Point
	Position    format.Point
	XPosition   float32
	YPosition   float32
	Scale       format.Point
	Rotation    float32
	Opacity     uint8
}

func (Transform2D) isBody() {}

func parseTransform2D(body *cursor.Cursor) (Transform2D, error) {
	b := attrblock.New(body)

	anchorFlag := b.Flag(format.AttrMultiDimensionProperty)
	positionFlag := b.Flag(format.AttrMultiDimensionProperty)
	xPositionFlag := b.Flag(format.AttrSimpleProperty)
	yPositionFlag := b.Flag(format.AttrSimpleProperty)
	scaleFlag := b.Flag(format.AttrMultiDimensionProperty)
	rotationFlag := b.Flag(format.AttrSimpleProperty)
	opacityFlag := b.Flag(format.AttrSimpleProperty)

	anchor, err := attrblock.ReadValue(b, anchorFlag, format.Point{}, parsePoint)
	if err != nil {
		return Transform2D{}, err
	}
	position, err := attrblock.ReadValue(b, positionFlag, format.Point{}, parsePoint)
	if err != nil {
		return Transform2D{}, err
	}
	xPosition, err := attrblock.ReadValue(b, xPositionFlag, float32(0), func(c *cursor.Cursor) (float32, error) {
		return c.NextF32()
	})
	if err != nil {
		return Transform2D{}, err
	}
	yPosition, err := attrblock.ReadValue(b, yPositionFlag, float32(0), func(c *cursor.Cursor) (float32, error) {
		return c.NextF32()
	})
	if err != nil {
		return Transform2D{}, err
	}
	scale, err := attrblock.ReadValue(b, scaleFlag, format.Point{X: 1, Y: 1}, parsePoint)
	if err != nil {
		return Transform2D{}, err
	}
	rotation, err := attrblock.ReadValue(b, rotationFlag, float32(0), func(c *cursor.Cursor) (float32, error) {
		return c.NextF32()
	})
	if err != nil {
		return Transform2D{}, err
	}
	opacity, err := attrblock.ReadValue(b, opacityFlag, uint8(255), func(c *cursor.Cursor) (uint8, error) {
		return c.NextU8()
	})
	if err != nil {
		return Transform2D{}, err
	}

	return Transform2D{
		AnchorPoint: anchor, Position: position,
		XPosition: xPosition, YPosition: yPosition,
		Scale: scale, Rotation: rotation, Opacity: opacity,
	}, nil
}

// CompositionReference points a layer at a VectorCompositionBlock (or
// VideoCompositionBlock) by ID, with the composition's own playhead
// offset at the point of reference.
type CompositionReference struct {
	ID                    uint32
	CompositionStartTime  format.Time
}

func (CompositionReference) isBody() {}

func parseCompositionReference(body *cursor.Cursor) (CompositionReference, error) {
	b := attrblock.New(body)

	idFlag := b.Flag(format.AttrValue)
	startFlag := b.Flag(format.AttrValue)

	id, err := attrblock.ReadValue(b, idFlag, uint32(0), func(c *cursor.Cursor) (uint32, error) {
		return c.NextU32()
	})
	if err != nil {
		return CompositionReference{}, err
	}
	start, err := attrblock.ReadValue(b, startFlag, format.Time(0), func(c *cursor.Cursor) (format.Time, error) {
		v, err := c.NextU64()
		return format.Time(v), err
	})
	if err != nil {
		return CompositionReference{}, err
	}

	return CompositionReference{ID: id, CompositionStartTime: start}, nil
}
