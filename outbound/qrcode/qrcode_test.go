package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := Generator{}

	raster, err := gen.Generate("https://example.com/ticket/abc", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raster))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 256, bounds.Dx())
	assert.Equal(t, 256, bounds.Dy())
}

func TestGenerateEmptyPayload(t *testing.T) {
	gen := Generator{}

	raster, err := gen.Generate("", 256)
	assert.Error(t, err)
	assert.Nil(t, raster)
}

func TestGenerateTooSmall(t *testing.T) {
	gen := Generator{}

	// a QR code for this payload cannot fit in a 1x1 raster
	_, err := gen.Generate("https://example.com/ticket/abc", 1)
	assert.Error(t, err)
}
