package tag

import (
	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/cursor"
)

// FontTables is the collection of font definitions a composition's text
// layers reference by index.
type FontTables struct {
	Fonts []FontData
}

func (FontTables) isBody() {}

// FontData names one font's family and style strings.
type FontData struct {
	FontFamily string
	FontStyle  string
}

func parseFontTables(body *cursor.Cursor) (FontTables, error) {
	count, err := body.NextVarU32()
	if err != nil {
		return FontTables{}, err
	}
	fonts := make([]FontData, 0, count)
	for i := uint32(0); i < count; i++ {
		family, err := body.NextString()
		if err != nil {
			return FontTables{}, err
		}
		style, err := body.NextString()
		if err != nil {
			return FontTables{}, err
		}
		fonts = append(fonts, FontData{FontFamily: family, FontStyle: style})
	}
	return FontTables{Fonts: fonts}, nil
}

// CompositionAttributes carries a composition's basic playback
// attributes: canvas size, duration, frame rate and background.
type CompositionAttributes struct {
	Width           int32
	Height          int32
	Duration        format.Time
	FrameRate       float32
	BackgroundColor format.Color
}

func (CompositionAttributes) isBody() {}

func parseCompositionAttributes(body *cursor.Cursor) (CompositionAttributes, error) {
	width, err := body.NextVarI32()
	if err != nil {
		return CompositionAttributes{}, err
	}
	height, err := body.NextVarI32()
	if err != nil {
		return CompositionAttributes{}, err
	}
	duration, err := parseTime(body)
	if err != nil {
		return CompositionAttributes{}, err
	}
	frameRate, err := body.NextF32()
	if err != nil {
		return CompositionAttributes{}, err
	}
	bg, err := parseColor(body)
	if err != nil {
		return CompositionAttributes{}, err
	}
	return CompositionAttributes{
		Width: width, Height: height, Duration: duration,
		FrameRate: frameRate, BackgroundColor: bg,
	}, nil
}

// ImageTables is the collection of image assets a composition's image
// layers reference by ID.
type ImageTables struct {
	Images []ImageBytes
}

func (ImageTables) isBody() {}

func parseImageTables(body *cursor.Cursor) (ImageTables, error) {
	count, err := body.NextVarI32()
	if err != nil {
		return ImageTables{}, err
	}
	images := make([]ImageBytes, 0, count)
	for i := int32(0); i < count; i++ {
		img, err := parseImageBytesFields(body)
		if err != nil {
			return ImageTables{}, err
		}
		images = append(images, img)
	}
	return ImageTables{Images: images}, nil
}

// SolidColor describes a solid-color layer's fill and canvas size. The
// source's implementation of SolidColor::parse was not recovered from
// original_source; width/height are decoded as varint-i32 by the same
// convention every other dimension field in the format uses (see
// CompositionAttributes, ImageBytes3, VideoSequence).
type SolidColor struct {
	Color  format.Color
	Width  int32
	Height int32
}

func (SolidColor) isBody() {}

func parseSolidColor(body *cursor.Cursor) (SolidColor, error) {
	color, err := parseColor(body)
	if err != nil {
		return SolidColor{}, err
	}
	width, err := body.NextVarI32()
	if err != nil {
		return SolidColor{}, err
	}
	height, err := body.NextVarI32()
	if err != nil {
		return SolidColor{}, err
	}
	return SolidColor{Color: color, Width: width, Height: height}, nil
}

// ImageReference points at an ImageTables entry by ID.
type ImageReference struct {
	ID uint32
}

func (ImageReference) isBody() {}

func parseImageReference(body *cursor.Cursor) (ImageReference, error) {
	id, err := body.NextVarU32()
	if err != nil {
		return ImageReference{}, err
	}
	return ImageReference{ID: id}, nil
}

// ImageBytes carries one compressed image asset's raw file bytes.
type ImageBytes struct {
	ID        uint32
	FileBytes format.ByteData
}

func (ImageBytes) isBody() {}

func parseImageBytesFields(body *cursor.Cursor) (ImageBytes, error) {
	id, err := body.NextVarU32()
	if err != nil {
		return ImageBytes{}, err
	}
	fileBytes, err := parseByteData(body)
	if err != nil {
		return ImageBytes{}, err
	}
	return ImageBytes{ID: id, FileBytes: fileBytes}, nil
}

func parseImageBytes(body *cursor.Cursor) (ImageBytes, error) {
	return parseImageBytesFields(body)
}

// ImageBytes2 adds a scale factor over ImageBytes, letting the encoder
// store an image at less than its nominal resolution.
type ImageBytes2 struct {
	ID          uint32
	FileBytes   format.ByteData
	ScaleFactor float32
}

func (ImageBytes2) isBody() {}

func parseImageBytes2(body *cursor.Cursor) (ImageBytes2, error) {
	id, err := body.NextVarU32()
	if err != nil {
		return ImageBytes2{}, err
	}
	fileBytes, err := parseByteData(body)
	if err != nil {
		return ImageBytes2{}, err
	}
	scale, err := body.NextF32()
	if err != nil {
		return ImageBytes2{}, err
	}
	return ImageBytes2{ID: id, FileBytes: fileBytes, ScaleFactor: scale}, nil
}

// ImageBytes3 adds trimmed-bounds metadata over ImageBytes2, letting the
// encoder drop a fully-transparent border from the stored bitmap.
type ImageBytes3 struct {
	ID          uint32
	FileBytes   format.ByteData
	ScaleFactor float32
	Width       int32
	Height      int32
	AnchorX     int32
	AnchorY     int32
}

func (ImageBytes3) isBody() {}

func parseImageBytes3(body *cursor.Cursor) (ImageBytes3, error) {
	id, err := body.NextVarU32()
	if err != nil {
		return ImageBytes3{}, err
	}
	fileBytes, err := parseByteData(body)
	if err != nil {
		return ImageBytes3{}, err
	}
	scale, err := body.NextF32()
	if err != nil {
		return ImageBytes3{}, err
	}
	width, err := body.NextVarI32()
	if err != nil {
		return ImageBytes3{}, err
	}
	height, err := body.NextVarI32()
	if err != nil {
		return ImageBytes3{}, err
	}
	anchorX, err := body.NextVarI32()
	if err != nil {
		return ImageBytes3{}, err
	}
	anchorY, err := body.NextVarI32()
	if err != nil {
		return ImageBytes3{}, err
	}
	return ImageBytes3{
		ID: id, FileBytes: fileBytes, ScaleFactor: scale,
		Width: width, Height: height, AnchorX: anchorX, AnchorY: anchorY,
	}, nil
}

// FileAttributes is a flat record of authoring-tool metadata attached
// to the file: when and by which tool chain it was produced, plus any
// export-time warnings.
type FileAttributes struct {
	Timestamp      int64
	PluginVersion  string
	AEVersion      string
	SystemVersion  string
	Author         string
	Scene          string
	Warnings       []string
}

func (FileAttributes) isBody() {}

func parseFileAttributes(body *cursor.Cursor) (FileAttributes, error) {
	timestamp, err := body.NextVarI64()
	if err != nil {
		return FileAttributes{}, err
	}
	pluginVersion, err := body.NextString()
	if err != nil {
		return FileAttributes{}, err
	}
	aeVersion, err := body.NextString()
	if err != nil {
		return FileAttributes{}, err
	}
	systemVersion, err := body.NextString()
	if err != nil {
		return FileAttributes{}, err
	}
	author, err := body.NextString()
	if err != nil {
		return FileAttributes{}, err
	}
	scene, err := body.NextString()
	if err != nil {
		return FileAttributes{}, err
	}
	warningCount, err := body.NextVarU32()
	if err != nil {
		return FileAttributes{}, err
	}
	warnings := make([]string, 0, warningCount)
	for i := uint32(0); i < warningCount; i++ {
		w, err := body.NextString()
		if err != nil {
			return FileAttributes{}, err
		}
		warnings = append(warnings, w)
	}
	return FileAttributes{
		Timestamp: timestamp, PluginVersion: pluginVersion, AEVersion: aeVersion,
		SystemVersion: systemVersion, Author: author, Scene: scene, Warnings: warnings,
	}, nil
}
