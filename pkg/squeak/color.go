package squeak

import "fmt"

const maxChannel = 0x3ff // channels are 10-bit

// Color is an RGB color with 10-bit channels (tag 30). On the wire the
// three channels are packed into one big-endian 32-bit field after two
// padding bits.
type Color struct {
	R, G, B uint16
}

func (Color) Tag() Tag { return TagColor }

// To8Bit narrows each channel to 8 bits.
func (c Color) To8Bit() (r, g, b uint8) {
	return uint8(c.R >> 2), uint8(c.G >> 2), uint8(c.B >> 2)
}

// RGBA8 returns the color as an 8-bit RGBA quad, fully opaque.
func (c Color) RGBA8() [4]byte {
	r, g, b := c.To8Bit()
	return [4]byte{r, g, b, 0xff}
}

// Hex returns the 8-bit color value in HTML form, e.g. "ff1056".
func (c Color) Hex() string {
	r, g, b := c.To8Bit()
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// TranslucentColor is a Color with a 10-bit alpha channel (tag 31). The
// wire form stores the high 8 bits of alpha in one trailing byte.
type TranslucentColor struct {
	Color
	Alpha uint16
}

func (TranslucentColor) Tag() Tag { return TagTranslucentColor }

// RGBA8 returns the color as an 8-bit RGBA quad including alpha.
func (c TranslucentColor) RGBA8() [4]byte {
	r, g, b := c.To8Bit()
	return [4]byte{r, g, b, uint8(c.Alpha >> 2)}
}

// Hex returns the 8-bit color value in HTML form including alpha,
// e.g. "ff1056ff".
func (c TranslucentColor) Hex() string {
	return c.Color.Hex() + fmt.Sprintf("%02x", uint8(c.Alpha>>2))
}

// TranslucentColorFromARGB builds a color from a raw 4-byte
// (alpha, red, green, blue) word as stored in depth-32 pixel data. Each
// 8-bit component is promoted to 10 bits. Legacy encoders often wrote
// alpha 0 on opaque pixels, so an alpha of 0 alongside any nonzero color
// channel is corrected to fully opaque.
func TranslucentColorFromARGB(raw [4]byte) TranslucentColor {
	c := TranslucentColor{
		Color: Color{
			R: uint16(raw[1]) << 2,
			G: uint16(raw[2]) << 2,
			B: uint16(raw[3]) << 2,
		},
		Alpha: uint16(raw[0]) << 2,
	}
	if c.Alpha == 0 && (c.R > 0 || c.G > 0 || c.B > 0) {
		c.Alpha = maxChannel
	}
	return c
}

func packColor(c Color) uint32 {
	return uint32(c.R&maxChannel)<<20 | uint32(c.G&maxChannel)<<10 | uint32(c.B&maxChannel)
}

func unpackColor(word uint32) Color {
	return Color{
		R: uint16(word >> 20 & maxChannel),
		G: uint16(word >> 10 & maxChannel),
		B: uint16(word & maxChannel),
	}
}

func decodeColor(b *decbuf) (Object, error) {
	word, err := b.u32()
	if err != nil {
		return nil, err
	}
	return unpackColor(word), nil
}

func encodeColor(b *encbuf, obj Object) error {
	b.putU32(packColor(obj.(Color)))
	return nil
}

func decodeTranslucentColor(b *decbuf) (Object, error) {
	word, err := b.u32()
	if err != nil {
		return nil, err
	}
	alpha, err := b.u8()
	if err != nil {
		return nil, err
	}
	return TranslucentColor{Color: unpackColor(word), Alpha: uint16(alpha) << 2}, nil
}

func encodeTranslucentColor(b *encbuf, obj Object) error {
	c := obj.(TranslucentColor)
	b.putU32(packColor(c.Color))
	b.putU8(uint8(c.Alpha >> 2))
	return nil
}
