package ctx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/ctx"
)

func TestRootHasNoParentOrLayerType(t *testing.T) {
	root := ctx.Root()
	_, ok := root.ParentCode()
	require.False(t, ok)
	_, ok = root.LayerType()
	require.False(t, ok)
	require.False(t, root.HasAlpha())
}

func TestWithBuildersDoNotMutateParent(t *testing.T) {
	root := ctx.Root()
	refined := root.WithParentCode(format.LayerAttributesV2).WithLayerType(format.LayerImage).WithAlpha(true)

	_, ok := root.ParentCode()
	require.False(t, ok, "parent context must remain untouched")

	code, ok := refined.ParentCode()
	require.True(t, ok)
	require.Equal(t, format.LayerAttributesV2, code)

	lt, ok := refined.LayerType()
	require.True(t, ok)
	require.True(t, lt == format.LayerImage)

	require.True(t, refined.HasAlpha())
}

func TestStrictEnumsCarriesThroughRefinements(t *testing.T) {
	strict := ctx.Root().WithStrictEnums(true)
	refined := strict.WithParentCode(format.LayerAttributes).WithLayerType(format.LayerSolid)
	require.True(t, refined.StrictEnums())
}
