package squeak

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Inline values carry their payload directly after the tag byte, with no
// length prefix. They are the primitive Fields of the object stream.

// Nil is the inline nil value (tag 1).
type Nil struct{}

func (Nil) Tag() Tag { return TagNil }

// Boolean is an inline true/false value. The two states use distinct
// class tags on the wire.
type Boolean bool

func (v Boolean) Tag() Tag {
	if v {
		return TagTrue
	}
	return TagFalse
}

// SmallInt is a signed 32-bit inline integer (tag 4).
type SmallInt int32

func (SmallInt) Tag() Tag { return TagSmallInt }

// SmallInt16 is a signed 16-bit inline integer (tag 5).
type SmallInt16 int16

func (SmallInt16) Tag() Tag { return TagSmallInt16 }

// LargeInt is an arbitrary-precision integer: a sign plus little-endian
// magnitude digits, exactly as stored on the wire.
type LargeInt struct {
	Negative bool
	Digits   []byte
}

func (v LargeInt) Tag() Tag {
	if v.Negative {
		return TagLargeNegInt
	}
	return TagLargePosInt
}

// Int64 returns the value if it fits in an int64.
func (v LargeInt) Int64() (int64, bool) {
	if len(v.Digits) > 8 {
		return 0, false
	}
	var mag uint64
	for i := len(v.Digits) - 1; i >= 0; i-- {
		mag = mag<<8 | uint64(v.Digits[i])
	}
	if v.Negative {
		if mag > math.MaxInt64 {
			return 0, false
		}
		return -int64(mag), true
	}
	if mag > math.MaxInt64 {
		return 0, false
	}
	return int64(mag), true
}

// Float is an inline IEEE-754 double (tag 8).
type Float float64

func (Float) Tag() Tag { return TagFloat }

// Ref is a back-reference token: a 1-based index into the shared object
// table owned by the surrounding reader. The codec stores and forwards
// Refs but never resolves them.
type Ref uint32

func (Ref) Tag() Tag { return TagRef }

func decodeNil(*decbuf) (Object, error)   { return Nil{}, nil }
func decodeTrue(*decbuf) (Object, error)  { return Boolean(true), nil }
func decodeFalse(*decbuf) (Object, error) { return Boolean(false), nil }

func encodeNil(*encbuf, Object) error     { return nil }
func encodeBoolean(*encbuf, Object) error { return nil }

func decodeSmallInt(b *decbuf) (Object, error) {
	v, err := b.u32()
	if err != nil {
		return nil, err
	}
	return SmallInt(int32(v)), nil
}

func encodeSmallInt(b *encbuf, obj Object) error {
	b.putU32(uint32(int32(obj.(SmallInt))))
	return nil
}

func decodeSmallInt16(b *decbuf) (Object, error) {
	v, err := b.u16()
	if err != nil {
		return nil, err
	}
	return SmallInt16(int16(v)), nil
}

func encodeSmallInt16(b *encbuf, obj Object) error {
	b.putU16(uint16(int16(obj.(SmallInt16))))
	return nil
}

func decodeLargeInt(negative bool) func(*decbuf) (Object, error) {
	return func(b *decbuf) (Object, error) {
		n, err := b.u16()
		if err != nil {
			return nil, err
		}
		digits, err := b.bytes(int(n))
		if err != nil {
			return nil, err
		}
		return LargeInt{Negative: negative, Digits: digits}, nil
	}
}

func encodeLargeInt(b *encbuf, obj Object) error {
	v := obj.(LargeInt)
	b.putU16(uint16(len(v.Digits)))
	b.Write(v.Digits)
	return nil
}

func decodeFloat(b *decbuf) (Object, error) {
	raw, err := b.bytes(8)
	if err != nil {
		return nil, err
	}
	return Float(math.Float64frombits(binary.BigEndian.Uint64(raw))), nil
}

func encodeFloat(b *encbuf, obj Object) error {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(float64(obj.(Float))))
	b.Write(tmp[:])
	return nil
}

// Refs are a 3-byte big-endian index.
func decodeRef(b *decbuf) (Object, error) {
	raw, err := b.bytes(3)
	if err != nil {
		return nil, err
	}
	return Ref(uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2])), nil
}

func encodeRef(b *encbuf, obj Object) error {
	v := uint32(obj.(Ref))
	b.putU8(uint8(v >> 16))
	b.putU8(uint8(v >> 8))
	b.putU8(uint8(v))
	return nil
}

// fieldInt coerces an already-resolved numeric Field to an int. It fails
// on Ref tokens, which must be resolved by the surrounding reader first.
func fieldInt(f Field) (int, error) {
	switch v := f.(type) {
	case SmallInt:
		return int(v), nil
	case SmallInt16:
		return int(v), nil
	case LargeInt:
		n, ok := v.Int64()
		if ok {
			return int(n), nil
		}
	case Float:
		return int(v), nil
	case Ref:
		return 0, ErrUnresolvedRef
	}
	return 0, errFieldType("number", f)
}

func errFieldType(want string, got Field) error {
	name := KindName(got.Tag())
	if name == "" {
		name = fmt.Sprintf("tag %d", got.Tag())
	}
	return fmt.Errorf("%w: expected %s field, got %s", ErrCorrupt, want, name)
}
