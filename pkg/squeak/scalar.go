package squeak

import (
	"fmt"
	"unicode/utf8"
)

// Scalars are a u32 length prefix followed by the payload. The length
// counts bytes, except for SoundBuffer where it counts 16-bit samples.

// String is a raw byte string (tag 9). Legacy files store MacRoman or
// other 8-bit text here; no encoding is imposed.
type String string

func (String) Tag() Tag { return TagString }

// Symbol is an interned selector name (tag 10).
type Symbol string

func (Symbol) Tag() Tag { return TagSymbol }

// ByteArray is an opaque binary blob (tag 11). Run-length encoded
// bitmap data arrives in this form before Built flattens it.
type ByteArray []byte

func (ByteArray) Tag() Tag { return TagByteArray }

// SoundBuffer is a buffer of 16-bit audio samples (tag 12).
type SoundBuffer []uint16

func (SoundBuffer) Tag() Tag { return TagSoundBuffer }

// UTF8 is a UTF-8 encoded text string (tag 14).
type UTF8 string

func (UTF8) Tag() Tag { return TagUTF8 }

func decodeRawBytes(b *decbuf) ([]byte, error) {
	n, err := b.u32()
	if err != nil {
		return nil, err
	}
	return b.bytes(int(n))
}

func putRawBytes(b *encbuf, data []byte) {
	b.putU32(uint32(len(data)))
	b.Write(data)
}

func decodeString(b *decbuf) (Object, error) {
	raw, err := decodeRawBytes(b)
	if err != nil {
		return nil, err
	}
	return String(raw), nil
}

func encodeString(b *encbuf, obj Object) error {
	putRawBytes(b, []byte(obj.(String)))
	return nil
}

func decodeSymbol(b *decbuf) (Object, error) {
	raw, err := decodeRawBytes(b)
	if err != nil {
		return nil, err
	}
	return Symbol(raw), nil
}

func encodeSymbol(b *encbuf, obj Object) error {
	putRawBytes(b, []byte(obj.(Symbol)))
	return nil
}

func decodeByteArray(b *decbuf) (Object, error) {
	raw, err := decodeRawBytes(b)
	if err != nil {
		return nil, err
	}
	return ByteArray(raw), nil
}

func encodeByteArray(b *encbuf, obj Object) error {
	putRawBytes(b, obj.(ByteArray))
	return nil
}

func decodeSoundBuffer(b *decbuf) (Object, error) {
	n, err := b.u32()
	if err != nil {
		return nil, err
	}
	if int(n)*2 > b.remaining() {
		return nil, fmt.Errorf("%w: sound buffer declares %d samples, only %d bytes left",
			ErrCorrupt, n, b.remaining())
	}
	samples := make(SoundBuffer, 0, int(n))
	for i := uint32(0); i < n; i++ {
		s, err := b.u16()
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func encodeSoundBuffer(b *encbuf, obj Object) error {
	samples := obj.(SoundBuffer)
	b.putU32(uint32(len(samples)))
	for _, s := range samples {
		b.putU16(s)
	}
	return nil
}

func decodeUTF8(b *decbuf) (Object, error) {
	raw, err := decodeRawBytes(b)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid UTF-8 payload", ErrCorrupt)
	}
	return UTF8(raw), nil
}

func encodeUTF8(b *encbuf, obj Object) error {
	s := obj.(UTF8)
	if !utf8.ValidString(string(s)) {
		return fmt.Errorf("%w: invalid UTF-8 payload", ErrCorrupt)
	}
	putRawBytes(b, []byte(s))
	return nil
}
