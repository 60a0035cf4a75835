package squeak

// squeakColorData is the default 8-bit color table used by legacy Forms
// when no custom palette is present: 256 packed RGB triples. Indices 0-9
// are the fixed Squeak colors, 10-39 a gray ramp, 40-255 a 6x6x6 color
// cube with channel steps of 0x33.
const squeakColorData = "\xff\xff\xff\x00\x00\x00\xff\xff\xff\x80\x80\x80\xff\x00\x00\x00\xff\x00\x00\x00\xff\x00\xff\xff" +
	"\xff\xff\x00\xff\x00\xff\x20\x20\x20\x40\x40\x40\x60\x60\x60\x9f\x9f\x9f\xbf\xbf\xbf\xdf\xdf\xdf" +
	"\x08\x08\x08\x10\x10\x10\x18\x18\x18\x28\x28\x28\x30\x30\x30\x38\x38\x38\x48\x48\x48\x50\x50\x50" +
	"\x58\x58\x58\x68\x68\x68\x70\x70\x70\x78\x78\x78\x87\x87\x87\x8f\x8f\x8f\x97\x97\x97\xa7\xa7\xa7" +
	"\xaf\xaf\xaf\xb7\xb7\xb7\xc7\xc7\xc7\xcf\xcf\xcf\xd7\xd7\xd7\xe7\xe7\xe7\xef\xef\xef\xf7\xf7\xf7" +
	"\x00\x00\x00\x00\x33\x00\x00\x66\x00\x00\x99\x00\x00\xcc\x00\x00\xff\x00\x00\x00\x33\x00\x33\x33" +
	"\x00\x66\x33\x00\x99\x33\x00\xcc\x33\x00\xff\x33\x00\x00\x66\x00\x33\x66\x00\x66\x66\x00\x99\x66" +
	"\x00\xcc\x66\x00\xff\x66\x00\x00\x99\x00\x33\x99\x00\x66\x99\x00\x99\x99\x00\xcc\x99\x00\xff\x99" +
	"\x00\x00\xcc\x00\x33\xcc\x00\x66\xcc\x00\x99\xcc\x00\xcc\xcc\x00\xff\xcc\x00\x00\xff\x00\x33\xff" +
	"\x00\x66\xff\x00\x99\xff\x00\xcc\xff\x00\xff\xff\x33\x00\x00\x33\x33\x00\x33\x66\x00\x33\x99\x00" +
	"\x33\xcc\x00\x33\xff\x00\x33\x00\x33\x33\x33\x33\x33\x66\x33\x33\x99\x33\x33\xcc\x33\x33\xff\x33" +
	"\x33\x00\x66\x33\x33\x66\x33\x66\x66\x33\x99\x66\x33\xcc\x66\x33\xff\x66\x33\x00\x99\x33\x33\x99" +
	"\x33\x66\x99\x33\x99\x99\x33\xcc\x99\x33\xff\x99\x33\x00\xcc\x33\x33\xcc\x33\x66\xcc\x33\x99\xcc" +
	"\x33\xcc\xcc\x33\xff\xcc\x33\x00\xff\x33\x33\xff\x33\x66\xff\x33\x99\xff\x33\xcc\xff\x33\xff\xff" +
	"\x66\x00\x00\x66\x33\x00\x66\x66\x00\x66\x99\x00\x66\xcc\x00\x66\xff\x00\x66\x00\x33\x66\x33\x33" +
	"\x66\x66\x33\x66\x99\x33\x66\xcc\x33\x66\xff\x33\x66\x00\x66\x66\x33\x66\x66\x66\x66\x66\x99\x66" +
	"\x66\xcc\x66\x66\xff\x66\x66\x00\x99\x66\x33\x99\x66\x66\x99\x66\x99\x99\x66\xcc\x99\x66\xff\x99" +
	"\x66\x00\xcc\x66\x33\xcc\x66\x66\xcc\x66\x99\xcc\x66\xcc\xcc\x66\xff\xcc\x66\x00\xff\x66\x33\xff" +
	"\x66\x66\xff\x66\x99\xff\x66\xcc\xff\x66\xff\xff\x99\x00\x00\x99\x33\x00\x99\x66\x00\x99\x99\x00" +
	"\x99\xcc\x00\x99\xff\x00\x99\x00\x33\x99\x33\x33\x99\x66\x33\x99\x99\x33\x99\xcc\x33\x99\xff\x33" +
	"\x99\x00\x66\x99\x33\x66\x99\x66\x66\x99\x99\x66\x99\xcc\x66\x99\xff\x66\x99\x00\x99\x99\x33\x99" +
	"\x99\x66\x99\x99\x99\x99\x99\xcc\x99\x99\xff\x99\x99\x00\xcc\x99\x33\xcc\x99\x66\xcc\x99\x99\xcc" +
	"\x99\xcc\xcc\x99\xff\xcc\x99\x00\xff\x99\x33\xff\x99\x66\xff\x99\x99\xff\x99\xcc\xff\x99\xff\xff" +
	"\xcc\x00\x00\xcc\x33\x00\xcc\x66\x00\xcc\x99\x00\xcc\xcc\x00\xcc\xff\x00\xcc\x00\x33\xcc\x33\x33" +
	"\xcc\x66\x33\xcc\x99\x33\xcc\xcc\x33\xcc\xff\x33\xcc\x00\x66\xcc\x33\x66\xcc\x66\x66\xcc\x99\x66" +
	"\xcc\xcc\x66\xcc\xff\x66\xcc\x00\x99\xcc\x33\x99\xcc\x66\x99\xcc\x99\x99\xcc\xcc\x99\xcc\xff\x99" +
	"\xcc\x00\xcc\xcc\x33\xcc\xcc\x66\xcc\xcc\x99\xcc\xcc\xcc\xcc\xcc\xff\xcc\xcc\x00\xff\xcc\x33\xff" +
	"\xcc\x66\xff\xcc\x99\xff\xcc\xcc\xff\xcc\xff\xff\xff\x00\x00\xff\x33\x00\xff\x66\x00\xff\x99\x00" +
	"\xff\xcc\x00\xff\xff\x00\xff\x00\x33\xff\x33\x33\xff\x66\x33\xff\x99\x33\xff\xcc\x33\xff\xff\x33" +
	"\xff\x00\x66\xff\x33\x66\xff\x66\x66\xff\x99\x66\xff\xcc\x66\xff\xff\x66\xff\x00\x99\xff\x33\x99" +
	"\xff\x66\x99\xff\x99\x99\xff\xcc\x99\xff\xff\x99\xff\x00\xcc\xff\x33\xcc\xff\x66\xcc\xff\x99\xcc" +
	"\xff\xcc\xcc\xff\xff\xcc\xff\x00\xff\xff\x33\xff\xff\x66\xff\xff\x99\xff\xff\xcc\xff\xff\xff\xff"

// DefaultPalette holds the built-in 256-entry palette as 8-bit RGBA,
// alpha always 255.
var DefaultPalette [256][4]byte

func init() {
	for i := range DefaultPalette {
		DefaultPalette[i] = [4]byte{
			squeakColorData[i*3],
			squeakColorData[i*3+1],
			squeakColorData[i*3+2],
			0xff,
		}
	}
}
