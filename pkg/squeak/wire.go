package squeak

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// decbuf is a cursor over an object record. All multi-byte integers in the
// legacy object stream are big-endian.
type decbuf struct {
	data []byte
	off  int
}

func (b *decbuf) remaining() int {
	return len(b.data) - b.off
}

func (b *decbuf) u8() (uint8, error) {
	if b.remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrTruncated, b.off)
	}
	v := b.data[b.off]
	b.off++
	return v, nil
}

func (b *decbuf) u16() (uint16, error) {
	if b.remaining() < 2 {
		return 0, fmt.Errorf("%w: need 2 bytes at offset %d", ErrTruncated, b.off)
	}
	v := binary.BigEndian.Uint16(b.data[b.off:])
	b.off += 2
	return v, nil
}

func (b *decbuf) u32() (uint32, error) {
	if b.remaining() < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d", ErrTruncated, b.off)
	}
	v := binary.BigEndian.Uint32(b.data[b.off:])
	b.off += 4
	return v, nil
}

func (b *decbuf) bytes(n int) ([]byte, error) {
	if n < 0 || b.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, b.off, b.remaining())
	}
	v := b.data[b.off : b.off+n : b.off+n]
	b.off += n
	return v, nil
}

// varint reads the legacy variable-length integer used by run-length
// encoded bitmaps: one byte up to 223, a two-byte form for 224..254, and
// 255 followed by a full big-endian uint32.
func (b *decbuf) varint() (uint32, error) {
	first, err := b.u8()
	if err != nil {
		return 0, err
	}
	switch {
	case first <= 223:
		return uint32(first), nil
	case first <= 254:
		second, err := b.u8()
		if err != nil {
			return 0, err
		}
		return (uint32(first)-224)*256 + uint32(second), nil
	default:
		return b.u32()
	}
}

// encbuf accumulates an encoded object record.
type encbuf struct {
	bytes.Buffer
}

func (b *encbuf) putU8(v uint8) {
	b.WriteByte(v)
}

func (b *encbuf) putU16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.Write(tmp[:])
}

func (b *encbuf) putU32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}
