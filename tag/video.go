package tag

import (
	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/ctx"
)

// VideoSequence is one resolution tier of an embedded H.264 video
// asset: its codec parameter sets plus every encoded frame, and
// optionally a list of static (non-animating) time ranges the player
// can hold on a single decoded frame for.
type VideoSequence struct {
	Width        int32
	Height       int32
	FrameRate    float32
	AlphaStartX  int32
	AlphaStartY  int32
	SPSData      format.ByteData
	PPSData      format.ByteData
	Frames       []VideoFrame
	StaticRanges []TimeRange
}

func (VideoSequence) isBody() {}

// VideoFrame is one encoded frame: its presentation time, encoded
// payload, and whether the decoder must treat it as a key frame.
type VideoFrame struct {
	Time       format.Time
	FileBytes  format.ByteData
	IsKeyFrame bool
}

// TimeRange is an inclusive [Start, End] interval, used to describe
// spans of a video sequence that hold on a single static frame.
type TimeRange struct {
	Start format.Time
	End   format.Time
}

func parseVideoSequence(body *cursor.Cursor, context ctx.Context) (VideoSequence, error) {
	width, err := body.NextVarI32()
	if err != nil {
		return VideoSequence{}, err
	}
	height, err := body.NextVarI32()
	if err != nil {
		return VideoSequence{}, err
	}
	frameRate, err := body.NextF32()
	if err != nil {
		return VideoSequence{}, err
	}

	var alphaStartX, alphaStartY int32
	if context.HasAlpha() {
		alphaStartX, err = body.NextVarI32()
		if err != nil {
			return VideoSequence{}, err
		}
		alphaStartY, err = body.NextVarI32()
		if err != nil {
			return VideoSequence{}, err
		}
	}

	sps, err := parseByteData(body)
	if err != nil {
		return VideoSequence{}, err
	}
	pps, err := parseByteData(body)
	if err != nil {
		return VideoSequence{}, err
	}

	frameCount, err := body.NextVarU32()
	if err != nil {
		return VideoSequence{}, err
	}

	keyFrameBits := cursor.NewBits(body.Peek(body.Remaining()))
	keyFrames := make([]bool, frameCount)
	for i := range keyFrames {
		keyFrames[i] = keyFrameBits.Next()
	}
	if _, err := keyFrameBits.Finish(); err != nil {
		return VideoSequence{}, err
	}
	if err := body.Advance((keyFrameBits.Index() + 7) / 8); err != nil {
		return VideoSequence{}, err
	}

	frames := make([]VideoFrame, 0, frameCount)
	for i := uint32(0); i < frameCount; i++ {
		t, err := parseTime(body)
		if err != nil {
			return VideoSequence{}, err
		}
		fileBytes, err := parseByteData(body)
		if err != nil {
			return VideoSequence{}, err
		}
		frames = append(frames, VideoFrame{Time: t, FileBytes: fileBytes, IsKeyFrame: keyFrames[i]})
	}

	var staticRanges []TimeRange
	if body.Remaining() > 0 {
		count, err := body.NextVarU32()
		if err != nil {
			return VideoSequence{}, err
		}
		staticRanges = make([]TimeRange, 0, count)
		for i := uint32(0); i < count; i++ {
			start, err := parseTime(body)
			if err != nil {
				return VideoSequence{}, err
			}
			end, err := parseTime(body)
			if err != nil {
				return VideoSequence{}, err
			}
			staticRanges = append(staticRanges, TimeRange{Start: start, End: end})
		}
	}

	return VideoSequence{
		Width: width, Height: height, FrameRate: frameRate,
		AlphaStartX: alphaStartX, AlphaStartY: alphaStartY,
		SPSData: sps, PPSData: pps, Frames: frames, StaticRanges: staticRanges,
	}, nil
}
