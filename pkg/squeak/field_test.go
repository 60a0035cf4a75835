package squeak

import (
	"bytes"
	"errors"
	"testing"
)

func TestInlineFieldRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		obj  Object
		wire []byte
	}{
		{name: "nil", obj: Nil{}, wire: []byte{1}},
		{name: "true", obj: Boolean(true), wire: []byte{2}},
		{name: "false", obj: Boolean(false), wire: []byte{3}},
		{name: "small_int", obj: SmallInt(-12345), wire: []byte{4, 0xff, 0xff, 0xcf, 0xc7}},
		{name: "small_int16", obj: SmallInt16(-2), wire: []byte{5, 0xff, 0xfe}},
		{name: "float", obj: Float(1.5), wire: []byte{8, 0x3f, 0xf8, 0, 0, 0, 0, 0, 0}},
		{name: "ref", obj: Ref(0x010203), wire: []byte{99, 1, 2, 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(tc.obj)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(encoded, tc.wire) {
				t.Errorf("wire = % x, want % x", encoded, tc.wire)
			}

			decoded, rest, err := Decode(tc.wire)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(rest) != 0 {
				t.Errorf("Decode left %d trailing bytes", len(rest))
			}
			if decoded != tc.obj {
				t.Errorf("decoded = %#v, want %#v", decoded, tc.obj)
			}
		})
	}
}

func TestLargeIntRoundTrip(t *testing.T) {
	// 0x01e240 = 123456, digits little-endian on the wire.
	pos := LargeInt{Digits: []byte{0x40, 0xe2, 0x01}}
	encoded, err := Encode(pos)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{6, 0, 3, 0x40, 0xe2, 0x01}
	if !bytes.Equal(encoded, want) {
		t.Errorf("wire = % x, want % x", encoded, want)
	}

	decoded, _, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n, ok := decoded.(LargeInt).Int64(); !ok || n != 123456 {
		t.Errorf("Int64 = %d,%v, want 123456,true", n, ok)
	}

	neg := LargeInt{Negative: true, Digits: []byte{0x07}}
	encoded, err = Encode(neg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if Tag(encoded[0]) != TagLargeNegInt {
		t.Errorf("negative tag = %d, want %d", encoded[0], TagLargeNegInt)
	}
	decoded, _, err = Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n, ok := decoded.(LargeInt).Int64(); !ok || n != -7 {
		t.Errorf("Int64 = %d,%v, want -7,true", n, ok)
	}
}

func TestFieldInt(t *testing.T) {
	testCases := []struct {
		name    string
		field   Field
		want    int
		wantErr error
	}{
		{name: "small_int", field: SmallInt(480), want: 480},
		{name: "small_int16", field: SmallInt16(360), want: 360},
		{name: "float", field: Float(32), want: 32},
		{name: "large_int", field: LargeInt{Digits: []byte{0x10}}, want: 16},
		{name: "ref", field: Ref(1), wantErr: ErrUnresolvedRef},
		{name: "string", field: String("x"), wantErr: ErrCorrupt},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fieldInt(tc.field)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("fieldInt failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("fieldInt = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPointRoundTrip(t *testing.T) {
	p := Point{X: SmallInt(240), Y: SmallInt16(-180)}
	encoded, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, _, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	got := decoded.(Point)
	if got.X != SmallInt(240) || got.Y != SmallInt16(-180) {
		t.Errorf("decoded = %#v, want %#v", got, p)
	}
}

func TestRectangleRoundTrip(t *testing.T) {
	r := Rectangle{SmallInt(0), SmallInt(0), SmallInt(480), Ref(12)}
	encoded, err := Encode(r)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, _, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.(Rectangle) != r {
		t.Errorf("decoded = %#v, want %#v", decoded, r)
	}
}
