package squeak

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

var formLogger = hclog.New(&hclog.LoggerOptions{
	Name:  "squeak.form",
	Level: hclog.Warn,
})

// SetFormLogger replaces the logger used by the Form pixel engine.
func SetFormLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	formLogger = logger
}

// Form is a rectangular pixel array (tag 34). Width, Height, Depth,
// PrivateOffset and Bits are Fields as decoded from the wire; the
// surrounding reader replaces any Ref tokens with their targets before
// the pixel engine runs. Depth is bits per pixel: 1, 2, 4, 8 or 32
// (16 exists in the format but is not supported). Colors is the optional
// custom palette, only meaningful for depth <= 8; when nil the built-in
// Squeak table is used.
type Form struct {
	Width         Field
	Height        Field
	Depth         Field
	PrivateOffset Field
	Bits          Field
	Colors        Field
}

func (*Form) Tag() Tag { return TagForm }

// ColorForm is a Form whose palette is always present on the wire
// (tag 35).
type ColorForm struct {
	Form
}

func (*ColorForm) Tag() Tag { return TagColorForm }

// NewForm builds a depth-32 Form from raw ARGB pixel words.
func NewForm(width, height int, bits Bitmap) *Form {
	return &Form{
		Width:  SmallInt(int32(width)),
		Height: SmallInt(int32(height)),
		Depth:  SmallInt(32),
		Bits:   bits,
	}
}

func decodeFormFields(b *decbuf, f *Form) error {
	fields := []*Field{&f.Width, &f.Height, &f.Depth, &f.PrivateOffset, &f.Bits}
	for _, dst := range fields {
		obj, err := decodeObject(b)
		if err != nil {
			return err
		}
		*dst = obj
	}
	return nil
}

func decodeForm(b *decbuf) (Object, error) {
	f := &Form{}
	if err := decodeFormFields(b, f); err != nil {
		return nil, err
	}
	return f, nil
}

func decodeColorForm(b *decbuf) (Object, error) {
	f := &ColorForm{}
	if err := decodeFormFields(b, &f.Form); err != nil {
		return nil, err
	}
	colors, err := decodeObject(b)
	if err != nil {
		return nil, err
	}
	f.Colors = colors
	return f, nil
}

func encodeFormFields(b *encbuf, f *Form) error {
	priv := f.PrivateOffset
	if priv == nil {
		priv = Nil{}
	}
	for _, field := range []Field{f.Width, f.Height, f.Depth, priv, f.Bits} {
		if err := encodeObject(b, field); err != nil {
			return err
		}
	}
	return nil
}

func encodeForm(b *encbuf, obj Object) error {
	return encodeFormFields(b, obj.(*Form))
}

func encodeColorForm(b *encbuf, obj Object) error {
	f := obj.(*ColorForm)
	if err := encodeFormFields(b, &f.Form); err != nil {
		return err
	}
	if f.Colors == nil {
		return fmt.Errorf("%w: ColorForm without palette", ErrCorrupt)
	}
	return encodeObject(b, f.Colors)
}

// Built flattens the bits field into a Bitmap. Files store either a raw
// Bitmap or a run-length compressed ByteArray; the transition is one-way
// and idempotent, and must happen before any pixel decode.
func (f *Form) Built() error {
	switch bits := f.Bits.(type) {
	case Bitmap:
		return nil
	case ByteArray:
		bm, err := DecodeRunLength(bits)
		if err != nil {
			return err
		}
		formLogger.Debug("expanded run-length bitmap",
			"compressed", len(bits), "words", bm.Words())
		f.Bits = bm
		return nil
	case Ref:
		return fmt.Errorf("%w: form bits", ErrUnresolvedRef)
	default:
		return errFieldType("Bitmap or ByteArray", bits)
	}
}

func (f *Form) geometry() (width, height, depth int, err error) {
	if width, err = fieldInt(f.Width); err != nil {
		return 0, 0, 0, fmt.Errorf("form width: %w", err)
	}
	if height, err = fieldInt(f.Height); err != nil {
		return 0, 0, 0, fmt.Errorf("form height: %w", err)
	}
	if depth, err = fieldInt(f.Depth); err != nil {
		return 0, 0, 0, fmt.Errorf("form depth: %w", err)
	}
	if width < 0 || height < 0 {
		return 0, 0, 0, fmt.Errorf("%w: form is %dx%d", ErrCorrupt, width, height)
	}
	return width, height, depth, nil
}

// palette returns the 8-bit RGBA palette for low-depth pixel decode:
// the custom colors when present, the built-in table otherwise.
func (f *Form) palette() ([][4]byte, error) {
	if f.Colors == nil {
		return nil, nil // caller falls back to DefaultPalette
	}
	var fields []Field
	switch v := f.Colors.(type) {
	case Nil:
		return nil, nil
	case Array:
		fields = v
	case OrderedCollection:
		fields = v
	case Ref:
		return nil, fmt.Errorf("%w: form palette", ErrUnresolvedRef)
	default:
		return nil, errFieldType("color array", v)
	}
	colors := make([][4]byte, len(fields))
	for i, field := range fields {
		switch c := field.(type) {
		case Color:
			colors[i] = c.RGBA8()
		case TranslucentColor:
			colors[i] = c.RGBA8()
		case Ref:
			return nil, fmt.Errorf("%w: palette entry %d", ErrUnresolvedRef, i)
		default:
			return nil, errFieldType("Color", field)
		}
	}
	return colors, nil
}

// ToArray decodes the form into a flat row-major 8-bit RGBA pixel array
// of width*height pixels.
func (f *Form) ToArray() (width, height int, rgba []byte, err error) {
	if err := f.Built(); err != nil {
		return 0, 0, nil, err
	}
	width, height, depth, err := f.geometry()
	if err != nil {
		return 0, 0, nil, err
	}
	bits, ok := f.Bits.(Bitmap)
	if !ok {
		return 0, 0, nil, errFieldType("Bitmap", f.Bits)
	}

	formLogger.Trace("decoding form pixels",
		"width", width, "height", height, "depth", depth, "bytes", len(bits))

	switch depth {
	case 32:
		rgba, err = decodeDirectPixels(width, height, bits)
	case 16:
		return 0, 0, nil, fmt.Errorf("%w: 16-bit forms cannot be decoded", ErrUnsupportedDepth)
	case 1, 2, 4, 8:
		var colors [][4]byte
		colors, err = f.palette()
		if err == nil {
			rgba, err = decodePalettePixels(width, height, depth, bits, colors)
		}
	default:
		return 0, 0, nil, fmt.Errorf("%w: depth %d", ErrUnsupportedDepth, depth)
	}
	if err != nil {
		return 0, 0, nil, err
	}
	return width, height, rgba, nil
}

// decodeDirectPixels expands depth-32 ARGB words, applying the
// forgotten-alpha correction: alpha 0 with any nonzero channel means a
// legacy encoder skipped alpha on an opaque pixel.
func decodeDirectPixels(width, height int, bits Bitmap) ([]byte, error) {
	need := width * height * 4
	if len(bits) < need {
		return nil, fmt.Errorf("%w: %dx%d form needs %d pixel bytes, bitmap has %d",
			ErrCorrupt, width, height, need, len(bits))
	}
	rgba := make([]byte, 0, need)
	for i := 0; i < need; i += 4 {
		a, r, g, b := bits[i], bits[i+1], bits[i+2], bits[i+3]
		if a == 0 && (r > 0 || g > 0 || b > 0) {
			a = 255
		}
		rgba = append(rgba, r, g, b, a)
	}
	return rgba, nil
}

// decodePalettePixels expands depth<=8 forms. Pixel indices are packed
// most-significant-bit first, and every scanline is padded out to a
// whole 32-bit word; the padding indices are discarded, not emitted.
func decodePalettePixels(width, height, depth int, bits Bitmap, colors [][4]byte) ([]byte, error) {
	pixelsPerWord := 32 / depth
	skip := 0
	if width%pixelsPerWord != 0 {
		skip = pixelsPerWord - width%pixelsPerWord
	}
	total := len(bits) * 8 / depth
	mask := byte(1<<depth - 1)

	paletteSize := len(colors)
	if colors == nil {
		paletteSize = len(DefaultPalette)
	}

	rgba := make([]byte, 0, width*height*4)
	next := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if next >= total {
				return nil, fmt.Errorf("%w: %dx%d depth-%d form, pixel data ended at row %d",
					ErrCorrupt, width, height, depth, y)
			}
			bitPos := next * depth
			next++
			index := int(bits[bitPos>>3] >> (8 - depth - bitPos&7) & mask)
			if index >= paletteSize {
				return nil, fmt.Errorf("%w: pixel index %d outside %d-entry palette",
					ErrCorrupt, index, paletteSize)
			}
			var c [4]byte
			if colors == nil {
				c = DefaultPalette[index]
			} else {
				c = colors[index]
			}
			rgba = append(rgba, c[:]...)
		}
		// Trailing indices in the final word of a row are padding.
		next += skip
	}
	return rgba, nil
}

// FromArray builds a depth-32 Form from a flat row-major 8-bit RGBA
// array. Only depth 32 is supported for building.
func FromArray(width, height int, rgba []byte) (*Form, error) {
	if len(rgba) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d form needs %d RGBA bytes, got %d",
			ErrCorrupt, width, height, width*height*4, len(rgba))
	}
	raw := make(Bitmap, 0, len(rgba))
	for i := 0; i < len(rgba); i += 4 {
		r, g, b, a := rgba[i], rgba[i+1], rgba[i+2], rgba[i+3]
		raw = append(raw, a, r, g, b)
	}
	return NewForm(width, height, raw), nil
}

// SavePNG writes the decoded pixels as an 8-bit RGBA PNG. The .png
// extension is appended when missing.
func (f *Form) SavePNG(path string) error {
	if !strings.HasSuffix(path, ".png") {
		path += ".png"
	}
	width, height, rgba, err := f.ToArray()
	if err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, rgba)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	formLogger.Debug("wrote form PNG", "path", path, "width", width, "height", height)
	return out.Close()
}

// LoadPNG reads an 8-bit-depth PNG into a depth-32 Form. Images without
// an alpha channel get alpha 255 on every pixel.
func LoadPNG(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// The IHDR bit-depth byte sits at offset 24 of a well-formed PNG
	// file (8-byte signature, chunk length, chunk type, width, height).
	// Sub-byte paletted and 16-bit files both fail here.
	if len(data) < 25 || data[24] != 8 {
		return nil, fmt.Errorf("%w: only 8-bit-depth PNG images are supported", ErrBadPNG)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPNG, err)
	}
	return FromImage(img)
}

// FromImage converts any decoded raster image into a depth-32 Form.
func FromImage(img image.Image) (*Form, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rgba := make([]byte, 0, width*height*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := toNRGBA(img.At(x, y))
			rgba = append(rgba, r, g, b, a)
		}
	}
	return FromArray(width, height, rgba)
}

func toNRGBA(c color.Color) (r, g, b, a uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B, n.A
}
