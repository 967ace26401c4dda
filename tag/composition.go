package tag

import (
	"fmt"

	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/ctx"
	"github.com/pagkit/pagparse/internal/errs"
)

// VectorCompositionBlock is a composition built from vector layers: an
// ID followed by the composition's own nested tag block.
type VectorCompositionBlock struct {
	ID    uint32
	Block Block
}

func (VectorCompositionBlock) isBody() {}

func parseVectorCompositionBlock(body *cursor.Cursor, context ctx.Context, depth, maxDepth int) (VectorCompositionBlock, error) {
	id, err := body.NextVarU32()
	if err != nil {
		return VectorCompositionBlock{}, err
	}
	block, err := ParseBlock(body, context, depth+1, maxDepth)
	if err != nil {
		return VectorCompositionBlock{}, err
	}
	return VectorCompositionBlock{ID: id, Block: block}, nil
}

// VideoCompositionBlock is a composition backed by an embedded video
// sequence. has_alpha is pushed into the context before recursing so
// the nested VideoSequence knows whether to read the extra alpha-plane
// origin fields.
type VideoCompositionBlock struct {
	ID       uint32
	HasAlpha bool
	Block    Block
}

func (VideoCompositionBlock) isBody() {}

func parseVideoCompositionBlock(body *cursor.Cursor, context ctx.Context, depth, maxDepth int) (VideoCompositionBlock, error) {
	id, err := body.NextVarU32()
	if err != nil {
		return VideoCompositionBlock{}, err
	}
	hasAlpha, err := body.NextBool()
	if err != nil {
		return VideoCompositionBlock{}, err
	}
	nested := context.WithAlpha(hasAlpha)
	block, err := ParseBlock(body, nested, depth+1, maxDepth)
	if err != nil {
		return VideoCompositionBlock{}, err
	}
	return VideoCompositionBlock{ID: id, HasAlpha: hasAlpha, Block: block}, nil
}

// LayerBlock is one layer within a composition: its discriminant type
// and ID followed by the layer's own attribute/transform tag block.
// The layer type is pushed into the context before recursing, since
// LayerAttributes's declaration set is conditioned on it.
type LayerBlock struct {
	LayerType format.LayerType
	ID        uint32
	Block     Block
}

func (LayerBlock) isBody() {}

func parseLayerBlock(body *cursor.Cursor, context ctx.Context, depth, maxDepth int) (LayerBlock, error) {
	typeByte, err := body.NextEnum()
	if err != nil {
		return LayerBlock{}, err
	}
	layerType := format.NewLayerType(typeByte)
	if context.StrictEnums() && !layerType.Known() {
		return LayerBlock{}, errs.NewBadFrame(fmt.Sprintf("unknown layer type discriminant %d", typeByte))
	}
	id, err := body.NextVarU32()
	if err != nil {
		return LayerBlock{}, err
	}
	nested := context.WithLayerType(layerType)
	block, err := ParseBlock(body, nested, depth+1, maxDepth)
	if err != nil {
		return LayerBlock{}, err
	}
	return LayerBlock{LayerType: layerType, ID: id, Block: block}, nil
}
