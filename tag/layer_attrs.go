package tag

import (
	"fmt"

	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/attrblock"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/ctx"
	"github.com/pagkit/pagparse/internal/errs"
)

// LayerAttributes carries a layer's placement, timing and blending
// settings. Its declaration set is context-sensitive: motion_blur is
// only present under the V3 tag code for non-Camera layers, name is only
// present under the V2/V3 tag codes, and blend_mode / track_matte_type
// are suppressed entirely for Camera layers.
type LayerAttributes struct {
	IsActive        bool
	AutoOrientation bool
	MotionBlur      bool
	Parent          uint32
	Stretch         format.Ratio
	StartTime       format.Time
	BlendMode       format.BlendMode
	TrackMatteType  format.TrackMatteType
	TimeRemap       float32
	Duration        format.Time
	Name            string
}

func (LayerAttributes) isBody() {}

func parseLayerAttributes(body *cursor.Cursor, context ctx.Context) (LayerAttributes, error) {
	parentCode, _ := context.ParentCode()
	layerType, _ := context.LayerType()
	isCamera := layerType.IsCamera()
	isV3 := parentCode == format.LayerAttributesV3
	isV2OrV3 := parentCode == format.LayerAttributesV2 || parentCode == format.LayerAttributesV3

	b := attrblock.New(body)

	isActiveFlag := b.Flag(format.AttrBitFlag)
	autoOrientationFlag := b.Flag(format.AttrBitFlag)

	motionBlurType := format.AttrNotExisted
	if isV3 && !isCamera {
		motionBlurType = format.AttrBitFlag
	}
	motionBlurFlag := b.Flag(motionBlurType)

	parentFlag := b.Flag(format.AttrValue)
	stretchFlag := b.Flag(format.AttrValue)
	startTimeFlag := b.Flag(format.AttrValue)

	blendType := format.AttrNotExisted
	trackMatteType := format.AttrNotExisted
	if !isCamera {
		blendType = format.AttrValue
		trackMatteType = format.AttrValue
	}
	blendFlag := b.Flag(blendType)
	trackMatteFlag := b.Flag(trackMatteType)

	timeRemapFlag := b.Flag(format.AttrSimpleProperty)
	durationFlag := b.Flag(format.AttrFixedValue)

	nameType := format.AttrNotExisted
	if isV2OrV3 {
		nameType = format.AttrValue
	}
	nameFlag := b.Flag(nameType)

	isActive := attrblock.ReadBitFlag(isActiveFlag, func(v bool) bool { return v })
	autoOrientation := attrblock.ReadBitFlag(autoOrientationFlag, func(v bool) bool { return v })
	motionBlur := attrblock.ReadBitFlag(motionBlurFlag, func(v bool) bool { return v })

	parent, err := attrblock.ReadValue(b, parentFlag, uint32(0), func(c *cursor.Cursor) (uint32, error) {
		return c.NextU32()
	})
	if err != nil {
		return LayerAttributes{}, err
	}
	stretch, err := attrblock.ReadValue(b, stretchFlag, format.Ratio{Numerator: 1, Denominator: 1}, parseRatio)
	if err != nil {
		return LayerAttributes{}, err
	}
	startTime, err := attrblock.ReadValue(b, startTimeFlag, format.Time(0), func(c *cursor.Cursor) (format.Time, error) {
		v, err := c.NextU64()
		return format.Time(v), err
	})
	if err != nil {
		return LayerAttributes{}, err
	}
	blendMode, err := attrblock.ReadValue(b, blendFlag, format.BlendModeNormal, func(c *cursor.Cursor) (format.BlendMode, error) {
		v, err := c.NextEnum()
		if err != nil {
			return format.BlendMode{}, err
		}
		bm := format.NewBlendMode(v)
		if context.StrictEnums() && !bm.Known() {
			return format.BlendMode{}, errs.NewBadFrame(fmt.Sprintf("unknown blend mode discriminant %d", v))
		}
		return bm, nil
	})
	if err != nil {
		return LayerAttributes{}, err
	}
	trackMatte, err := attrblock.ReadValue(b, trackMatteFlag, format.TrackMatteNone, func(c *cursor.Cursor) (format.TrackMatteType, error) {
		v, err := c.NextEnum()
		if err != nil {
			return format.TrackMatteType{}, err
		}
		tm := format.NewTrackMatteType(v)
		if context.StrictEnums() && !tm.Known() {
			return format.TrackMatteType{}, errs.NewBadFrame(fmt.Sprintf("unknown track matte type discriminant %d", v))
		}
		return tm, nil
	})
	if err != nil {
		return LayerAttributes{}, err
	}
	timeRemap, err := attrblock.ReadValue(b, timeRemapFlag, float32(0), func(c *cursor.Cursor) (float32, error) {
		return c.NextF32()
	})
	if err != nil {
		return LayerAttributes{}, err
	}
	duration, err := attrblock.ReadValue(b, durationFlag, format.Time(0), func(c *cursor.Cursor) (format.Time, error) {
		v, err := c.NextU64()
		return format.Time(v), err
	})
	if err != nil {
		return LayerAttributes{}, err
	}
	if duration == 0 {
		duration = 1
	}
	name, err := attrblock.ReadValue(b, nameFlag, "", func(c *cursor.Cursor) (string, error) {
		return c.NextString()
	})
	if err != nil {
		return LayerAttributes{}, err
	}

	return LayerAttributes{
		IsActive: isActive, AutoOrientation: autoOrientation, MotionBlur: motionBlur,
		Parent: parent, Stretch: stretch, StartTime: startTime,
		BlendMode: blendMode, TrackMatteType: trackMatte,
		TimeRemap: timeRemap, Duration: duration, Name: name,
	}, nil
}
