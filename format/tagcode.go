// Package format defines the PAG wire format's pure data vocabulary: tag
// codes, enumerated byte fields, and the flat value types that recur
// across tag bodies. Nothing in this package reads from a cursor; it is
// schema only.
package format

import "fmt"

// TagCode identifies one of the format's tag body shapes. The format
// reserves the full byte range; codes with no named constant below are
// still valid TagCode values, they simply have no decoder registered and
// surface as a Raw body.
type TagCode uint8

const (
	End                                  TagCode = 0
	FontTables                           TagCode = 1
	VectorCompositionBlock               TagCode = 2
	CompositionAttributes                TagCode = 3
	ImageTables                          TagCode = 4
	LayerBlock                           TagCode = 5
	LayerAttributes                      TagCode = 6
	SolidColor                           TagCode = 7
	TextSource                           TagCode = 8
	DeprecatedTextPathOption             TagCode = 9
	TextMoreOption                       TagCode = 10
	ImageReference                       TagCode = 11
	CompositionReference                 TagCode = 12
	Transform2D                          TagCode = 13
	Mask                                 TagCode = 14
	ShapeGroup                           TagCode = 15
	Rectangle                            TagCode = 16
	Ellipse                              TagCode = 17
	PolyStar                             TagCode = 18
	ShapePath                            TagCode = 19
	Fill                                 TagCode = 20
	Stroke                               TagCode = 21
	GradientFill                         TagCode = 22
	GradientStroke                       TagCode = 23
	MergePaths                           TagCode = 24
	TrimPaths                            TagCode = 25
	Repeater                             TagCode = 26
	RoundCorners                         TagCode = 27
	Performance                          TagCode = 28
	DropShadowStyle                      TagCode = 29
	CachePolicy                          TagCode = 30
	FileAttributes                       TagCode = 31
	TimeStretchMode                      TagCode = 32
	Mp4Header                            TagCode = 33
	BitmapCompositionBlock               TagCode = 45
	BitmapSequence                       TagCode = 46
	ImageBytes                           TagCode = 47
	ImageBytes2                          TagCode = 48
	ImageBytes3                          TagCode = 49
	VideoCompositionBlock                TagCode = 50
	VideoSequence                        TagCode = 51
	LayerAttributesV2                    TagCode = 52
	MarkerList                           TagCode = 53
	ImageFillRule                        TagCode = 54
	AudioBytes                           TagCode = 55
	MotionTileEffect                     TagCode = 56
	LevelsIndividualEffect               TagCode = 57
	CornerPinEffect                      TagCode = 58
	BulgeEffect                          TagCode = 59
	FastBlurEffect                       TagCode = 60
	GlowEffect                           TagCode = 61
	LayerAttributesV3                    TagCode = 62
	LayerAttributesExtra                 TagCode = 63
	TextSourceV2                         TagCode = 64
	DropShadowStyleV2                    TagCode = 65
	DisplacementMapEffect                TagCode = 66
	ImageFillRuleV2                      TagCode = 67
	TextSourceV3                         TagCode = 68
	TextPathOption                       TagCode = 69
	TextAnimator                         TagCode = 70
	TextRangeSelector                    TagCode = 71
	TextAnimatorPropertiesTrackingType   TagCode = 72
	TextAnimatorPropertiesTrackingAmount TagCode = 73
	TextAnimatorPropertiesFillColor      TagCode = 74
	TextAnimatorPropertiesStrokeColor    TagCode = 75
	TextAnimatorPropertiesPosition       TagCode = 76
	TextAnimatorPropertiesScale          TagCode = 77
	TextAnimatorPropertiesRotation       TagCode = 78
	TextAnimatorPropertiesOpacity        TagCode = 79
	TextWigglySelector                   TagCode = 80
	RadialBlurEffect                     TagCode = 81
	MosaicEffect                         TagCode = 82
	EditableIndices                      TagCode = 83
	MaskBlockV2                          TagCode = 84
	GradientOverlayStyle                 TagCode = 85
	BrightnessContrastEffect             TagCode = 86
	HueSaturationEffect                  TagCode = 87
	LayerAttributesExtraV2               TagCode = 88
	EncryptedData                        TagCode = 89
	Transform3D                          TagCode = 90
	CameraOption                         TagCode = 91
	StrokeStyle                          TagCode = 92
	OuterGlowStyle                       TagCode = 93
	ImageScaleModes                      TagCode = 94
)

var tagCodeNames = map[TagCode]string{
	End:                                  "End",
	FontTables:                           "FontTables",
	VectorCompositionBlock:               "VectorCompositionBlock",
	CompositionAttributes:                "CompositionAttributes",
	ImageTables:                          "ImageTables",
	LayerBlock:                           "LayerBlock",
	LayerAttributes:                      "LayerAttributes",
	SolidColor:                           "SolidColor",
	TextSource:                           "TextSource",
	DeprecatedTextPathOption:             "DeprecatedTextPathOption",
	TextMoreOption:                       "TextMoreOption",
	ImageReference:                       "ImageReference",
	CompositionReference:                 "CompositionReference",
	Transform2D:                          "Transform2D",
	Mask:                                 "Mask",
	ShapeGroup:                           "ShapeGroup",
	Rectangle:                            "Rectangle",
	Ellipse:                              "Ellipse",
	PolyStar:                             "PolyStar",
	ShapePath:                            "ShapePath",
	Fill:                                 "Fill",
	Stroke:                               "Stroke",
	GradientFill:                         "GradientFill",
	GradientStroke:                       "GradientStroke",
	MergePaths:                           "MergePaths",
	TrimPaths:                            "TrimPaths",
	Repeater:                             "Repeater",
	RoundCorners:                         "RoundCorners",
	Performance:                         "Performance",
	DropShadowStyle:                      "DropShadowStyle",
	CachePolicy:                          "CachePolicy",
	FileAttributes:                       "FileAttributes",
	TimeStretchMode:                      "TimeStretchMode",
	Mp4Header:                            "Mp4Header",
	BitmapCompositionBlock:               "BitmapCompositionBlock",
	BitmapSequence:                       "BitmapSequence",
	ImageBytes:                           "ImageBytes",
	ImageBytes2:                          "ImageBytes2",
	ImageBytes3:                          "ImageBytes3",
	VideoCompositionBlock:                "VideoCompositionBlock",
	VideoSequence:                        "VideoSequence",
	LayerAttributesV2:                    "LayerAttributesV2",
	MarkerList:                           "MarkerList",
	ImageFillRule:                        "ImageFillRule",
	AudioBytes:                           "AudioBytes",
	MotionTileEffect:                     "MotionTileEffect",
	LevelsIndividualEffect:               "LevelsIndividualEffect",
	CornerPinEffect:                      "CornerPinEffect",
	BulgeEffect:                          "BulgeEffect",
	FastBlurEffect:                       "FastBlurEffect",
	GlowEffect:                           "GlowEffect",
	LayerAttributesV3:                    "LayerAttributesV3",
	LayerAttributesExtra:                 "LayerAttributesExtra",
	TextSourceV2:                         "TextSourceV2",
	DropShadowStyleV2:                    "DropShadowStyleV2",
	DisplacementMapEffect:                "DisplacementMapEffect",
	ImageFillRuleV2:                      "ImageFillRuleV2",
	TextSourceV3:                         "TextSourceV3",
	TextPathOption:                       "TextPathOption",
	TextAnimator:                         "TextAnimator",
	TextRangeSelector:                    "TextRangeSelector",
	TextAnimatorPropertiesTrackingType:   "TextAnimatorPropertiesTrackingType",
	TextAnimatorPropertiesTrackingAmount: "TextAnimatorPropertiesTrackingAmount",
	TextAnimatorPropertiesFillColor:      "TextAnimatorPropertiesFillColor",
	TextAnimatorPropertiesStrokeColor:    "TextAnimatorPropertiesStrokeColor",
	TextAnimatorPropertiesPosition:       "TextAnimatorPropertiesPosition",
	TextAnimatorPropertiesScale:          "TextAnimatorPropertiesScale",
	TextAnimatorPropertiesRotation:       "TextAnimatorPropertiesRotation",
	TextAnimatorPropertiesOpacity:        "TextAnimatorPropertiesOpacity",
	TextWigglySelector:                   "TextWigglySelector",
	RadialBlurEffect:                     "RadialBlurEffect",
	MosaicEffect:                         "MosaicEffect",
	EditableIndices:                      "EditableIndices",
	MaskBlockV2:                          "MaskBlockV2",
	GradientOverlayStyle:                 "GradientOverlayStyle",
	BrightnessContrastEffect:             "BrightnessContrastEffect",
	HueSaturationEffect:                  "HueSaturationEffect",
	LayerAttributesExtraV2:               "LayerAttributesExtraV2",
	EncryptedData:                        "EncryptedData",
	Transform3D:                          "Transform3D",
	CameraOption:                         "CameraOption",
	StrokeStyle:                          "StrokeStyle",
	OuterGlowStyle:                       "OuterGlowStyle",
	ImageScaleModes:                      "ImageScaleModes",
}

// String renders the tag code's canonical name, or "Unknown(n)" for a
// discriminant the schema doesn't name.
func (c TagCode) String() string {
	if name, ok := tagCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}
