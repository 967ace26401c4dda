package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagkit/pagparse/format"
)

func TestLayerTypeUnknownDiscriminantRoundTrips(t *testing.T) {
	lt := format.NewLayerType(0xFE)
	require.False(t, lt.Known())
	require.Equal(t, uint8(0xFE), lt.Byte())
	require.True(t, strings.Contains(lt.String(), "Unknown"))
}

func TestLayerTypeCameraDetection(t *testing.T) {
	require.True(t, format.LayerCamera.IsCamera())
	require.False(t, format.LayerSolid.IsCamera())
}

func TestBlendModeOnlyNormalIsKnown(t *testing.T) {
	require.True(t, format.NewBlendMode(0).Known())
	require.Equal(t, "Normal", format.NewBlendMode(0).String())
	require.False(t, format.NewBlendMode(1).Known())
	require.True(t, strings.Contains(format.NewBlendMode(1).String(), "Unknown"))
}

func TestTrackMatteOnlyNoneIsKnown(t *testing.T) {
	require.True(t, format.NewTrackMatteType(0).Known())
	require.Equal(t, "None", format.NewTrackMatteType(0).String())
	require.False(t, format.NewTrackMatteType(1).Known())
}

func TestParagraphJustificationOnlyLeftJustifyIsKnown(t *testing.T) {
	require.True(t, format.NewParagraphJustification(0).Known())
	require.Equal(t, "LeftJustify", format.NewParagraphJustification(0).String())
	require.False(t, format.NewParagraphJustification(1).Known())
}

func TestTagCodeStringNamesKnownCodes(t *testing.T) {
	require.Equal(t, "End", format.End.String())
	require.Equal(t, "LayerBlock", format.LayerBlock.String())
}

func TestTagCodeStringFallsBackForUnknownCodes(t *testing.T) {
	unknown := format.TagCode(250)
	require.True(t, strings.Contains(unknown.String(), "250"))
}
