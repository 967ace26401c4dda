package format

import "fmt"

// LayerType identifies the kind of layer a LayerBlock carries. The
// original format reference carries only an opaque discriminant byte;
// this module names the conventional PAG layer kinds and keeps Unknown
// as the catch-all so an undocumented discriminant still round-trips.
type LayerType struct {
	known bool
	value uint8
}

const (
	layerNull       uint8 = 0
	layerSolid      uint8 = 1
	layerText       uint8 = 2
	layerShape      uint8 = 3
	layerImage      uint8 = 4
	layerPreCompose uint8 = 5
	layerVideo      uint8 = 6
	layerCamera     uint8 = 7
)

var (
	LayerNull       = LayerType{known: true, value: layerNull}
	LayerSolid      = LayerType{known: true, value: layerSolid}
	LayerText       = LayerType{known: true, value: layerText}
	LayerShape      = LayerType{known: true, value: layerShape}
	LayerImage      = LayerType{known: true, value: layerImage}
	LayerPreCompose = LayerType{known: true, value: layerPreCompose}
	LayerVideo      = LayerType{known: true, value: layerVideo}
	LayerCamera     = LayerType{known: true, value: layerCamera}
)

// NewLayerType maps a raw discriminant byte to a LayerType, producing an
// Unknown(byte) value for any discriminant outside the named set so the
// byte still round-trips.
func NewLayerType(b uint8) LayerType {
	switch b {
	case layerNull, layerSolid, layerText, layerShape, layerImage, layerPreCompose, layerVideo, layerCamera:
		return LayerType{known: true, value: b}
	default:
		return LayerType{known: false, value: b}
	}
}

// IsCamera reports whether this is the Camera layer type; several
// LayerAttributes fields are conditioned on exactly this check.
func (l LayerType) IsCamera() bool {
	return l.known && l.value == layerCamera
}

// Byte returns the raw wire discriminant.
func (l LayerType) Byte() uint8 { return l.value }

// Known reports whether this discriminant is a named layer type.
func (l LayerType) Known() bool { return l.known }

func (l LayerType) String() string {
	if !l.known {
		return fmt.Sprintf("Unknown(%d)", l.value)
	}
	switch l.value {
	case layerNull:
		return "Null"
	case layerSolid:
		return "Solid"
	case layerText:
		return "Text"
	case layerShape:
		return "Shape"
	case layerImage:
		return "Image"
	case layerPreCompose:
		return "PreCompose"
	case layerVideo:
		return "Video"
	case layerCamera:
		return "Camera"
	default:
		return fmt.Sprintf("Unknown(%d)", l.value)
	}
}

// BlendMode is a layer's compositing blend mode.
type BlendMode struct {
	known bool
	value uint8
}

const blendModeNormal uint8 = 0

var BlendModeNormal = BlendMode{known: true, value: blendModeNormal}

// NewBlendMode maps a raw discriminant byte to a BlendMode. Only
// Normal (0) is a named mode; every other byte is Unknown(b).
func NewBlendMode(b uint8) BlendMode {
	if b == blendModeNormal {
		return BlendMode{known: true, value: b}
	}
	return BlendMode{known: false, value: b}
}

func (m BlendMode) Byte() uint8 { return m.value }

// Known reports whether this discriminant is the named blend mode.
func (m BlendMode) Known() bool { return m.known }

func (m BlendMode) String() string {
	if m.known {
		return "Normal"
	}
	return fmt.Sprintf("Unknown(%d)", m.value)
}

// TrackMatteType identifies how a layer is matted against the layer
// above it.
type TrackMatteType struct {
	known bool
	value uint8
}

const trackMatteNone uint8 = 0

var TrackMatteNone = TrackMatteType{known: true, value: trackMatteNone}

// NewTrackMatteType maps a raw discriminant byte to a TrackMatteType.
// Only None (0) is a named type; every other byte is Unknown(b).
func NewTrackMatteType(b uint8) TrackMatteType {
	if b == trackMatteNone {
		return TrackMatteType{known: true, value: b}
	}
	return TrackMatteType{known: false, value: b}
}

func (t TrackMatteType) Byte() uint8 { return t.value }

// Known reports whether this discriminant is the named track matte type.
func (t TrackMatteType) Known() bool { return t.known }

func (t TrackMatteType) String() string {
	if t.known {
		return "None"
	}
	return fmt.Sprintf("Unknown(%d)", t.value)
}

// ParagraphJustification controls a text document's paragraph alignment.
type ParagraphJustification struct {
	known bool
	value uint8
}

const paragraphLeftJustify uint8 = 0

// NewParagraphJustification maps a raw discriminant byte to a
// ParagraphJustification. Only LeftJustify (0) is a named value; every
// other byte is Unknown(b).
func NewParagraphJustification(b uint8) ParagraphJustification {
	if b == paragraphLeftJustify {
		return ParagraphJustification{known: true, value: b}
	}
	return ParagraphJustification{known: false, value: b}
}

func (j ParagraphJustification) Byte() uint8 { return j.value }

// Known reports whether this discriminant is the named justification.
func (j ParagraphJustification) Known() bool { return j.known }

func (j ParagraphJustification) String() string {
	if j.known {
		return "LeftJustify"
	}
	return fmt.Sprintf("Unknown(%d)", j.value)
}

// AttributeType classifies how an attribute-block property is flagged
// and decoded: how many leading bits it consumes and how its payload
// region (if any) is read. See internal/attrblock for the decoder.
type AttributeType uint8

const (
	AttrNotExisted AttributeType = iota
	AttrValue
	AttrFixedValue
	AttrSimpleProperty
	AttrDiscreteProperty
	AttrMultiDimensionProperty
	AttrSpatialProperty
	AttrBitFlag
	AttrCustom
)
