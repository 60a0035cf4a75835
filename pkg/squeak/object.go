// Package squeak decodes and encodes the tagged, Squeak-derived binary
// object format used for media values inside legacy Scratch (.sb) files:
// strings, collections, dictionaries, colors, points, rectangles, bitmaps
// and multi-bit-depth Forms.
//
// The package is a pure codec. Object references inside containers are
// carried as opaque Ref tokens; resolving them against the file's shared
// object table is the surrounding reader's job.
package squeak

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

var codecLogger = hclog.NewNullLogger()

// SetLogger replaces the logger used by the object codec. Decode and
// encode emit one trace line per object, which gets noisy fast on
// deeply nested containers; the default logger discards everything.
func SetLogger(logger hclog.Logger) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	codecLogger = logger
}

var (
	ErrTruncated        = errors.New("truncated object stream")
	ErrCorrupt          = errors.New("object stream corrupt")
	ErrUnknownTag       = errors.New("unknown class tag")
	ErrUnsupportedDepth = errors.New("unsupported pixel depth")
	ErrUnresolvedRef    = errors.New("unresolved object reference")
	ErrBadPNG           = errors.New("unsupported PNG image")
)

// Tag is the numeric class tag that selects the wire layout of a record.
type Tag uint8

const (
	// Inline values. These appear wherever a Field is expected and
	// carry no length prefix.
	TagNil         Tag = 1
	TagTrue        Tag = 2
	TagFalse       Tag = 3
	TagSmallInt    Tag = 4
	TagSmallInt16  Tag = 5
	TagLargePosInt Tag = 6
	TagLargeNegInt Tag = 7
	TagFloat       Tag = 8

	// Fixed-format objects.
	TagString             Tag = 9
	TagSymbol             Tag = 10
	TagByteArray          Tag = 11
	TagSoundBuffer        Tag = 12
	TagBitmap             Tag = 13
	TagUTF8               Tag = 14
	TagArray              Tag = 20
	TagOrderedCollection  Tag = 21
	TagSet                Tag = 22
	TagIdentitySet        Tag = 23
	TagDictionary         Tag = 24
	TagIdentityDictionary Tag = 25
	TagColor              Tag = 30
	TagTranslucentColor   Tag = 31
	TagPoint              Tag = 32
	TagRectangle          Tag = 33
	TagForm               Tag = 34
	TagColorForm          Tag = 35

	// TagRef marks a back-reference into the shared object table.
	TagRef Tag = 99
)

// Object is a decoded value from the object stream. The tag is fixed per
// concrete kind and never mutated.
type Object interface {
	Tag() Tag
}

// Field is the unit stored inside containers and composite objects:
// either an inline value, a full fixed-format object, or a *Ref token
// that the surrounding reader resolves later. The codec treats all three
// uniformly.
type Field = Object

// Resolver looks up the object a Ref points at. It is owned by the
// surrounding reader; the codec itself never calls it.
type Resolver interface {
	LookUp(index uint32) (Object, error)
}

// codecEntry binds a tag to its wire codec. The tag set is small and
// fixed, so the table is closed rather than extensible.
type codecEntry struct {
	name string
	// containsRefs marks the kinds the surrounding reader walks when
	// resolving the shared object table: collections, dictionaries
	// and Forms.
	containsRefs bool
	decode       func(*decbuf) (Object, error)
	encode       func(*encbuf, Object) error
}

var codecs map[Tag]codecEntry

func init() {
	codecs = map[Tag]codecEntry{
		TagNil:         {name: "nil", decode: decodeNil, encode: encodeNil},
		TagTrue:        {name: "true", decode: decodeTrue, encode: encodeBoolean},
		TagFalse:       {name: "false", decode: decodeFalse, encode: encodeBoolean},
		TagSmallInt:    {name: "SmallInteger", decode: decodeSmallInt, encode: encodeSmallInt},
		TagSmallInt16:  {name: "SmallInteger16", decode: decodeSmallInt16, encode: encodeSmallInt16},
		TagLargePosInt: {name: "LargePositiveInteger", decode: decodeLargeInt(false), encode: encodeLargeInt},
		TagLargeNegInt: {name: "LargeNegativeInteger", decode: decodeLargeInt(true), encode: encodeLargeInt},
		TagFloat:       {name: "Float", decode: decodeFloat, encode: encodeFloat},

		TagString:      {name: "String", decode: decodeString, encode: encodeString},
		TagSymbol:      {name: "Symbol", decode: decodeSymbol, encode: encodeSymbol},
		TagByteArray:   {name: "ByteArray", decode: decodeByteArray, encode: encodeByteArray},
		TagSoundBuffer: {name: "SoundBuffer", decode: decodeSoundBuffer, encode: encodeSoundBuffer},
		TagBitmap:      {name: "Bitmap", decode: decodeBitmap, encode: encodeBitmap},
		TagUTF8:        {name: "UTF8", decode: decodeUTF8, encode: encodeUTF8},

		TagArray:              {name: "Array", containsRefs: true, decode: decodeSequence(TagArray), encode: encodeSequence},
		TagOrderedCollection:  {name: "OrderedCollection", containsRefs: true, decode: decodeSequence(TagOrderedCollection), encode: encodeSequence},
		TagSet:                {name: "Set", containsRefs: true, decode: decodeSequence(TagSet), encode: encodeSequence},
		TagIdentitySet:        {name: "IdentitySet", containsRefs: true, decode: decodeSequence(TagIdentitySet), encode: encodeSequence},
		TagDictionary:         {name: "Dictionary", containsRefs: true, decode: decodeDictionary(TagDictionary), encode: encodeDictionary},
		TagIdentityDictionary: {name: "IdentityDictionary", containsRefs: true, decode: decodeDictionary(TagIdentityDictionary), encode: encodeDictionary},

		TagColor:            {name: "Color", decode: decodeColor, encode: encodeColor},
		TagTranslucentColor: {name: "TranslucentColor", decode: decodeTranslucentColor, encode: encodeTranslucentColor},
		TagPoint:            {name: "Point", decode: decodePoint, encode: encodePoint},
		TagRectangle:        {name: "Rectangle", decode: decodeRectangle, encode: encodeRectangle},
		TagForm:             {name: "Form", containsRefs: true, decode: decodeForm, encode: encodeForm},
		TagColorForm:        {name: "ColorForm", containsRefs: true, decode: decodeColorForm, encode: encodeColorForm},

		TagRef: {name: "ObjectRef", decode: decodeRef, encode: encodeRef},
	}
}

// KindName returns the class name for a tag, or "" if the tag is unknown.
func KindName(tag Tag) string {
	return codecs[tag].name
}

// ContainsRefs reports whether the surrounding reader should walk
// objects of the given tag when resolving the shared reference table.
func ContainsRefs(tag Tag) bool {
	return codecs[tag].containsRefs
}

// Decode reads one tagged object from the front of data and returns it
// together with the unconsumed remainder. Nested Fields are decoded
// recursively; Ref tokens are returned unresolved.
func Decode(data []byte) (Object, []byte, error) {
	b := &decbuf{data: data}
	obj, err := decodeObject(b)
	if err != nil {
		return nil, nil, err
	}
	return obj, data[b.off:], nil
}

// Encode serializes one tagged object, including its leading class tag.
func Encode(obj Object) ([]byte, error) {
	b := &encbuf{}
	if err := encodeObject(b, obj); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decodeObject(b *decbuf) (Object, error) {
	tag, err := b.u8()
	if err != nil {
		return nil, err
	}
	entry, ok := codecs[Tag(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: %d at offset %d", ErrUnknownTag, tag, b.off-1)
	}
	start := b.off - 1
	obj, err := entry.decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", entry.name, err)
	}
	codecLogger.Trace("decoded object", "kind", entry.name, "offset", start, "size", b.off-start)
	return obj, nil
}

func encodeObject(b *encbuf, obj Object) error {
	entry, ok := codecs[obj.Tag()]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTag, obj.Tag())
	}
	b.putU8(uint8(obj.Tag()))
	if err := entry.encode(b, obj); err != nil {
		return fmt.Errorf("encoding %s: %w", entry.name, err)
	}
	codecLogger.Trace("encoded object", "kind", entry.name, "size", b.Len())
	return nil
}
