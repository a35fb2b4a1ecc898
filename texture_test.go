package aiwire

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureUncompressed(t *testing.T) {
	tex := Texture{
		Width:  2,
		Height: 1,
		Data: []byte{
			// BGRA per texel
			255, 0, 0, 255, // blue
			0, 0, 255, 128, // red, half alpha
		},
	}
	assert.False(t, tex.Compressed())

	px := tex.Texel(1, 0)
	assert.Equal(t, Texel{B: 0, G: 0, R: 255, A: 128}, px)

	img, err := tex.Image()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 128}, img.NRGBAAt(1, 0))
}

func TestTextureDecodeCompressedPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	tex := Texture{
		Width:  uint32(buf.Len()),
		Height: 0,
		Data:   buf.Bytes(),
	}
	require.NoError(t, tex.SetHint("png"))
	assert.True(t, tex.Compressed())

	img, err := tex.DecodeCompressed()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	// Compressed textures refuse the raw-texel path.
	_, err = tex.Image()
	assert.Error(t, err)
}

func TestTextureHint(t *testing.T) {
	var tex Texture
	require.NoError(t, tex.SetHint("jpg"))
	assert.Equal(t, "jpg", tex.Hint())

	err := tex.SetHint("jpeg")
	assert.Error(t, err, "hint longer than the field must fail, not truncate")
	assert.Equal(t, "jpg", tex.Hint(), "failed set must not change the field")
}

func TestTextureWireRoundTrip(t *testing.T) {
	tex := Texture{Width: 2, Height: 2, Data: bytes.Repeat([]byte{5, 6, 7, 8}, 4)}
	require.NoError(t, tex.SetHint("raw"))

	raw, err := tex.MarshalBinary()
	require.NoError(t, err)
	var back Texture
	require.NoError(t, back.UnmarshalBinary(raw))
	assert.True(t, back.Equal(tex))

	raw2, _ := back.MarshalBinary()
	assert.Equal(t, raw, raw2)
}
