package barcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	data, err := Encode("ITEM-a1b2c3d4e")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, labelWidth, img.Bounds().Dx())
	assert.Equal(t, symbolHeight, img.Bounds().Dy())
}

func TestEncodeEmptyValue(t *testing.T) {
	_, err := Encode("")
	assert.Error(t, err)
}

func TestRenderLabel(t *testing.T) {
	data, err := RenderLabel("ITEM-a1b2c3d4e", "COLLEGE OF ENGINEERING")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, labelWidth, img.Bounds().Dx())
	assert.Equal(t, labelHeight, img.Bounds().Dy())
}

func TestRenderLabelWithoutCaption(t *testing.T) {
	_, err := RenderLabel("ITEM-a1b2c3d4e", "")
	assert.NoError(t, err)
}
