package squeak

import (
	"bytes"
	"testing"
)

func TestColorPacking(t *testing.T) {
	testCases := []struct {
		name  string
		color Color
		wire  []byte
	}{
		{name: "red", color: Color{R: 1023}, wire: []byte{30, 0x3f, 0xf0, 0x00, 0x00}},
		{name: "green", color: Color{G: 1023}, wire: []byte{30, 0x00, 0x0f, 0xfc, 0x00}},
		{name: "blue", color: Color{B: 1023}, wire: []byte{30, 0x00, 0x00, 0x03, 0xff}},
		{name: "white", color: Color{R: 1023, G: 1023, B: 1023}, wire: []byte{30, 0x3f, 0xff, 0xff, 0xff}},
		{name: "mixed", color: Color{R: 512, G: 256, B: 1}, wire: []byte{30, 0x20, 0x04, 0x00, 0x01}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(tc.color)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(encoded, tc.wire) {
				t.Errorf("wire = % x, want % x", encoded, tc.wire)
			}

			decoded, _, err := Decode(tc.wire)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.(Color) != tc.color {
				t.Errorf("decoded = %#v, want %#v", decoded, tc.color)
			}
		})
	}
}

func TestColorTo8Bit(t *testing.T) {
	r, g, b := Color{R: 1023}.To8Bit()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("To8Bit = (%d,%d,%d), want (255,0,0)", r, g, b)
	}

	if hex := (Color{R: 1023, G: 64, B: 344}).Hex(); hex != "ff1056" {
		t.Errorf("Hex = %q, want %q", hex, "ff1056")
	}
}

func TestTranslucentColorRoundTrip(t *testing.T) {
	c := TranslucentColor{Color: Color{R: 100, G: 200, B: 300}, Alpha: 512}
	encoded, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) != 6 {
		t.Fatalf("wire length = %d, want 6 (tag + word + alpha byte)", len(encoded))
	}

	decoded, _, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.(TranslucentColor) != c {
		t.Errorf("decoded = %#v, want %#v", decoded, c)
	}
}

func TestForgottenAlphaCorrection(t *testing.T) {
	testCases := []struct {
		name      string
		raw       [4]byte // alpha, r, g, b
		wantAlpha uint16
	}{
		{name: "forced_opaque", raw: [4]byte{0, 10, 0, 0}, wantAlpha: 1023},
		{name: "true_transparent", raw: [4]byte{0, 0, 0, 0}, wantAlpha: 0},
		{name: "alpha_kept", raw: [4]byte{128, 10, 20, 30}, wantAlpha: 512},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := TranslucentColorFromARGB(tc.raw)
			if c.Alpha != tc.wantAlpha {
				t.Errorf("Alpha = %d, want %d", c.Alpha, tc.wantAlpha)
			}
			if c.R != uint16(tc.raw[1])<<2 {
				t.Errorf("R = %d, want %d", c.R, uint16(tc.raw[1])<<2)
			}
		})
	}
}

func TestTranslucentColorRGBA8(t *testing.T) {
	c := TranslucentColor{Color: Color{R: 1023, G: 0, B: 0}, Alpha: 1023}
	if got := c.RGBA8(); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("RGBA8 = %v, want [255 0 0 255]", got)
	}
	opaque := Color{R: 0, G: 1023, B: 0}
	if got := opaque.RGBA8(); got != [4]byte{0, 255, 0, 255} {
		t.Errorf("RGBA8 = %v, want [0 255 0 255]", got)
	}
}
