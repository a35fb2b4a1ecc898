package aiwire

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for the compressed payload formats the native side
	// embeds most often. Registered for image.Decode; the format hint
	// alone is advisory.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// TextureHintLen is the size of the format hint field: three
// characters and a terminator on the native side.
const TextureHintLen = 4

// Texture is an embedded texture. Two layouts share the struct,
// distinguished by Height:
//
//   - Height > 0: uncompressed, Data holds Width*Height texels of 4
//     bytes each in BGRA order.
//   - Height == 0: compressed, Width is the payload size in bytes and
//     Data holds the original file image (png, jpeg, ...) verbatim,
//     with FormatHint naming the format as a lowercase extension.
type Texture struct {
	Width      uint32
	Height     uint32
	FormatHint [TextureHintLen]byte
	Data       []byte
}

// Compressed reports whether Data is a compressed payload rather than
// raw texels.
func (t *Texture) Compressed() bool { return t.Height == 0 }

// Hint returns the format hint as a string, without trailing zeros.
func (t *Texture) Hint() string {
	b := t.FormatHint[:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// SetHint stores a lowercase extension such as "png". Longer hints
// fail with TooLongError; the field has no room to spare.
func (t *Texture) SetHint(hint string) error {
	if len(hint) > TextureHintLen-1 {
		return &TooLongError{Length: len(hint), Max: TextureHintLen - 1}
	}
	var h [TextureHintLen]byte
	copy(h[:], hint)
	t.FormatHint = h
	return nil
}

// Texel returns the uncompressed texel at (x, y). Callers check
// Compressed first; out-of-range access panics like a slice index.
func (t *Texture) Texel(x, y int) Texel {
	off := (y*int(t.Width) + x) * 4
	return Texel{B: t.Data[off], G: t.Data[off+1], R: t.Data[off+2], A: t.Data[off+3]}
}

// Image converts an uncompressed texture into an NRGBA image.
func (t *Texture) Image() (*image.NRGBA, error) {
	if t.Compressed() {
		return nil, fmt.Errorf("texture is compressed (%q); use DecodeCompressed", t.Hint())
	}
	w, h := int(t.Width), int(t.Height)
	if len(t.Data) < w*h*4 {
		return nil, fmt.Errorf("texture data is %d bytes, %dx%d texels need %d", len(t.Data), w, h, w*h*4)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tx := t.Texel(x, y)
			off := img.PixOffset(x, y)
			img.Pix[off+0] = tx.R
			img.Pix[off+1] = tx.G
			img.Pix[off+2] = tx.B
			img.Pix[off+3] = tx.A
		}
	}
	return img, nil
}

// DecodeCompressed decodes a compressed payload. The format is
// detected from the payload itself; png, jpeg, bmp and tiff are
// supported.
func (t *Texture) DecodeCompressed() (image.Image, error) {
	if !t.Compressed() {
		return nil, fmt.Errorf("texture is uncompressed; use Image")
	}
	img, _, err := image.Decode(bytes.NewReader(t.Data))
	if err != nil {
		return nil, fmt.Errorf("decode embedded texture (hint %q): %w", t.Hint(), err)
	}
	return img, nil
}

func (t *Texture) MarshalBinary() ([]byte, error) {
	var w wireWriter
	t.encode(&w)
	return w.buf, nil
}

func (t *Texture) encode(w *wireWriter) {
	w.u32(t.Width)
	w.u32(t.Height)
	w.bytes(t.FormatHint[:])
	w.u32(uint32(len(t.Data)))
	w.bytes(t.Data)
}

func (t *Texture) UnmarshalBinary(data []byte) error {
	r := wireReader{buf: data}
	out, err := decodeTexture(&r)
	if err != nil {
		return err
	}
	*t = out
	return nil
}

func decodeTexture(r *wireReader) (Texture, error) {
	var t Texture
	t.Width = r.u32()
	t.Height = r.u32()
	hint := r.take(TextureHintLen)
	if r.err != nil {
		return Texture{}, r.err
	}
	copy(t.FormatHint[:], hint)
	n := r.count(1)
	b := r.take(n)
	if r.err != nil {
		return Texture{}, r.err
	}
	if n > 0 {
		t.Data = make([]byte, n)
		copy(t.Data, b)
	}
	return t, nil
}

// Equal compares dimensions, hint and payload bytes.
func (t Texture) Equal(o Texture) bool {
	return t.Width == o.Width && t.Height == o.Height &&
		t.FormatHint == o.FormatHint && bytes.Equal(t.Data, o.Data)
}
