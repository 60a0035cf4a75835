package squeak

import (
	"bytes"
	"fmt"
)

// Bitmap is a flat sequence of 4-byte pixel words (tag 13). The raw wire
// form is a u32 word count followed by the words. Legacy files may
// instead store a run-length compressed ByteArray; DecodeRunLength
// handles that path. There is no matching compressor: the source format
// writers always emitted the raw form, and this codec preserves the
// write-raw/read-compressed asymmetry.
type Bitmap []byte

func (Bitmap) Tag() Tag { return TagBitmap }

// Words returns the number of 4-byte pixel words.
func (bm Bitmap) Words() int { return len(bm) / 4 }

func decodeBitmap(b *decbuf) (Object, error) {
	n, err := b.u32()
	if err != nil {
		return nil, err
	}
	raw, err := b.bytes(int(n) * 4)
	if err != nil {
		return nil, fmt.Errorf("%w: bitmap declares %d words", ErrCorrupt, n)
	}
	return Bitmap(raw), nil
}

func encodeBitmap(b *encbuf, obj Object) error {
	bm := obj.(Bitmap)
	words := (len(bm) + 3) / 4
	b.putU32(uint32(words))
	b.Write(bm)
	// Pad a non-aligned tail out to a whole word.
	for i := len(bm); i < words*4; i++ {
		b.putU8(0)
	}
	return nil
}

// Run-length data codes. A run header V maps to code V%4 and repeat
// count V/4.
const (
	runSkipWords    = 0 // run of zero words
	runRepeatByte   = 1 // one byte, repeated through each word
	runRepeatWord   = 2 // one word, repeated
	runLiteralWords = 3 // distinct literal words
)

// DecodeRunLength expands a run-length encoded ByteArray into the flat
// pixel words of a Bitmap. The leading word count is advisory only:
// decoding runs until the input is exhausted, matching the source
// decoder.
func DecodeRunLength(data []byte) (Bitmap, error) {
	b := &decbuf{data: data}
	if _, err := b.varint(); err != nil {
		return nil, fmt.Errorf("reading bitmap length: %w", err)
	}

	var out bytes.Buffer
	for b.remaining() > 0 {
		header, err := b.varint()
		if err != nil {
			return nil, fmt.Errorf("reading run header: %w", err)
		}
		code := int(header % 4)
		runLength := int(header / 4)

		switch code {
		case runSkipWords:
			out.Write(make([]byte, runLength*4))
		case runRepeatByte:
			v, err := b.u8()
			if err != nil {
				return nil, fmt.Errorf("reading run byte: %w", err)
			}
			word := [4]byte{v, v, v, v}
			for i := 0; i < runLength; i++ {
				out.Write(word[:])
			}
		case runRepeatWord:
			word, err := b.bytes(4)
			if err != nil {
				return nil, fmt.Errorf("reading run word: %w", err)
			}
			for i := 0; i < runLength; i++ {
				out.Write(word)
			}
		case runLiteralWords:
			words, err := b.bytes(runLength * 4)
			if err != nil {
				return nil, fmt.Errorf("reading %d literal words: %w", runLength, err)
			}
			out.Write(words)
		}
	}
	return Bitmap(out.Bytes()), nil
}
