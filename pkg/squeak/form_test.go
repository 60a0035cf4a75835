package squeak

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormDirectPixels(t *testing.T) {
	// Two ARGB words: opaque red, transparent black.
	bits := Bitmap{
		0xff, 0xc8, 0x10, 0x20,
		0x00, 0x00, 0x00, 0x00,
	}
	form := NewForm(2, 1, bits)

	width, height, rgba, err := form.ToArray()
	require.NoError(t, err)
	assert.Equal(t, 2, width)
	assert.Equal(t, 1, height)
	assert.Equal(t, []byte{0xc8, 0x10, 0x20, 0xff, 0, 0, 0, 0}, rgba)
}

func TestFormForgottenAlpha(t *testing.T) {
	// Alpha 0 with a nonzero channel decodes as opaque.
	form := NewForm(1, 1, Bitmap{0x00, 0x0a, 0x00, 0x00})

	_, _, rgba, err := form.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x00, 0x00, 0xff}, rgba)
}

func TestFormRoundTripProperty(t *testing.T) {
	pixels := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 255,
		0, 0, 0, 0,
		200, 0, 0, 0, // alpha 0, nonzero channel: becomes opaque
		12, 34, 56, 78,
	}
	form, err := FromArray(3, 2, pixels)
	require.NoError(t, err)

	w, h, rgba, err := form.ToArray()
	require.NoError(t, err)
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)

	want := append([]byte{}, pixels...)
	want[19] = 255 // the forgotten-alpha pixel
	assert.Equal(t, want, rgba)

	// A second pass is stable.
	form2, err := FromArray(w, h, rgba)
	require.NoError(t, err)
	_, _, rgba2, err := form2.ToArray()
	require.NoError(t, err)
	assert.Equal(t, rgba, rgba2)
}

func TestFormDepth16Rejected(t *testing.T) {
	form := NewForm(1, 1, Bitmap{0, 0, 0, 0})
	form.Depth = SmallInt(16)

	_, _, _, err := form.ToArray()
	require.ErrorIs(t, err, ErrUnsupportedDepth)
}

func TestFormDepth1Padding(t *testing.T) {
	// 3x1 depth-1 form, bits 0b10000000: pixel 0 is palette entry 1
	// (black), pixels 1-2 are entry 0 (white), the rest of the byte is
	// row padding and must not be emitted.
	form := &Form{
		Width:  SmallInt(3),
		Height: SmallInt(1),
		Depth:  SmallInt(1),
		Bits:   Bitmap{0x80},
	}

	width, height, rgba, err := form.ToArray()
	require.NoError(t, err)
	require.Equal(t, 3, width)
	require.Equal(t, 1, height)
	require.Len(t, rgba, 12)

	black := DefaultPalette[1]
	white := DefaultPalette[0]
	assert.Equal(t, black[:], rgba[0:4])
	assert.Equal(t, white[:], rgba[4:8])
	assert.Equal(t, white[:], rgba[8:12])
}

func TestFormDepth8RowPadding(t *testing.T) {
	// 5x2 depth-8: rows are padded to 8 pixels (two words). The padding
	// indices are discarded.
	bits := make(Bitmap, 16)
	for i := 0; i < 5; i++ {
		bits[i] = 1 // row 0: black
		bits[8+i] = 4
	}
	for i := 5; i < 8; i++ {
		bits[i] = 0xee // padding junk, must be ignored
		bits[8+i] = 0xee
	}
	form := &Form{
		Width:  SmallInt(5),
		Height: SmallInt(2),
		Depth:  SmallInt(8),
		Bits:   bits,
	}

	_, _, rgba, err := form.ToArray()
	require.NoError(t, err)
	require.Len(t, rgba, 5*2*4)

	red := DefaultPalette[4]
	for x := 0; x < 5; x++ {
		assert.Equal(t, DefaultPalette[1][:], rgba[x*4:x*4+4], "row 0 pixel %d", x)
		assert.Equal(t, red[:], rgba[20+x*4:20+x*4+4], "row 1 pixel %d", x)
	}
}

func TestFormCustomPalette(t *testing.T) {
	// Depth-2, width 2: custom 4-entry palette with a translucent entry.
	form := &ColorForm{Form: Form{
		Width:  SmallInt(2),
		Height: SmallInt(1),
		Depth:  SmallInt(2),
		Bits:   Bitmap{0b01_10_0000},
		Colors: Array{
			Color{R: 1023},
			TranslucentColor{Color: Color{G: 1023}, Alpha: 512},
			Color{B: 1023},
			Color{},
		},
	}}

	_, _, rgba, err := form.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 255, 0, 128}, rgba[0:4], "index 1: translucent green")
	assert.Equal(t, []byte{0, 0, 255, 255}, rgba[4:8], "index 2: opaque blue")
}

func TestFormPaletteIndexOutOfRange(t *testing.T) {
	form := &ColorForm{Form: Form{
		Width:  SmallInt(1),
		Height: SmallInt(1),
		Depth:  SmallInt(8),
		Bits:   Bitmap{9, 0, 0, 0},
		Colors: Array{Color{}},
	}}

	_, _, _, err := form.ToArray()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestFormTruncatedPixelData(t *testing.T) {
	form := NewForm(2, 2, Bitmap{0, 0, 0, 0}) // needs 16 bytes, has 4
	_, _, _, err := form.ToArray()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestFormBuilt(t *testing.T) {
	// Run-length compressed bits: one repeated word (header 2+2*4=10).
	compressed := ByteArray{2, 10, 0xff, 0x10, 0x20, 0x30}
	form := &Form{
		Width:  SmallInt(2),
		Height: SmallInt(1),
		Depth:  SmallInt(32),
		Bits:   compressed,
	}

	require.NoError(t, form.Built())
	bm, ok := form.Bits.(Bitmap)
	require.True(t, ok, "bits not flattened to Bitmap")
	assert.Equal(t, Bitmap{0xff, 0x10, 0x20, 0x30, 0xff, 0x10, 0x20, 0x30}, bm)

	// Idempotent.
	require.NoError(t, form.Built())
	assert.Equal(t, bm, form.Bits)

	_, _, rgba, err := form.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x20, 0x30, 0xff, 0x10, 0x20, 0x30, 0xff}, rgba)
}

func TestFormBuiltUnresolved(t *testing.T) {
	form := &Form{Bits: Ref(7)}
	require.ErrorIs(t, form.Built(), ErrUnresolvedRef)
}

func TestFormWireRoundTrip(t *testing.T) {
	form := NewForm(1, 1, Bitmap{0xff, 1, 2, 3})
	form.PrivateOffset = Nil{}

	encoded, err := Encode(form)
	require.NoError(t, err)
	require.Equal(t, uint8(34), encoded[0])

	decoded, rest, err := Decode(encoded)
	require.NoError(t, err)
	require.Empty(t, rest)

	got, ok := decoded.(*Form)
	require.True(t, ok)
	assert.Equal(t, SmallInt(1), got.Width)
	assert.Equal(t, SmallInt(32), got.Depth)
	assert.Equal(t, Bitmap{0xff, 1, 2, 3}, got.Bits)
}

func TestColorFormWireRoundTrip(t *testing.T) {
	form := &ColorForm{Form: Form{
		Width:         SmallInt(2),
		Height:        SmallInt(1),
		Depth:         SmallInt(1),
		PrivateOffset: Nil{},
		Bits:          Bitmap{0x80, 0, 0, 0},
		Colors:        Array{Color{R: 1023}, Color{B: 1023}},
	}}

	encoded, err := Encode(form)
	require.NoError(t, err)
	require.Equal(t, uint8(35), encoded[0])

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got, ok := decoded.(*ColorForm)
	require.True(t, ok)
	require.IsType(t, Array{}, got.Colors)
	assert.Len(t, got.Colors.(Array), 2)

	reencoded, err := Encode(decoded)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(reencoded, encoded))
}

func TestFormPNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "costume") // extension appended

	pixels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 128,
	}
	form, err := FromArray(2, 2, pixels)
	require.NoError(t, err)
	require.NoError(t, form.SavePNG(path))

	loaded, err := LoadPNG(path + ".png")
	require.NoError(t, err)

	w, h, rgba, err := loaded.ToArray()
	require.NoError(t, err)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, pixels, rgba)
}

func TestLoadPNGRejects16Bit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep.png")

	img := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, img))
	require.NoError(t, out.Close())

	_, err = LoadPNG(path)
	require.ErrorIs(t, err, ErrBadPNG)
}

func TestLoadPNGRejectsSubByteDepth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shallow.png")

	// A two-colour palette makes the encoder emit a 1-bit-depth file.
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{
		color.NRGBA{A: 0xff},
		color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	})
	img.SetColorIndex(1, 0, 1)
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, img))
	require.NoError(t, out.Close())

	_, err = LoadPNG(path)
	require.ErrorIs(t, err, ErrBadPNG)
}

func TestLoadPNGSynthesizesAlpha(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opaque.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Black)
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, img))
	require.NoError(t, out.Close())

	form, err := LoadPNG(path)
	require.NoError(t, err)
	_, _, rgba, err := form.ToArray()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), rgba[3])
	assert.Equal(t, uint8(255), rgba[7])
}
