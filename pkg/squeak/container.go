package squeak

import "fmt"

// Containers hold opaque Fields, any of which may be a Ref token. The
// declared element count is a hard contract: a stream that runs out of
// records before reaching it is corrupt, and no partial value is
// returned.

// Array is an ordered Field sequence (tag 20).
type Array []Field

func (Array) Tag() Tag { return TagArray }

// OrderedCollection is an ordered Field sequence (tag 21).
type OrderedCollection []Field

func (OrderedCollection) Tag() Tag { return TagOrderedCollection }

// Set is a Field sequence with set semantics in the source system
// (tag 22). The codec preserves wire order and does not deduplicate.
type Set []Field

func (Set) Tag() Tag { return TagSet }

// IdentitySet is a Field sequence with identity-set semantics in the
// source system (tag 23).
type IdentitySet []Field

func (IdentitySet) Tag() Tag { return TagIdentitySet }

// Pair is one dictionary entry.
type Pair struct {
	Key   Field
	Value Field
}

// Dictionary is an ordered sequence of key/value pairs (tag 24).
// Duplicate keys are preserved positionally: legacy files contain them
// and merging would change the re-encoded form.
type Dictionary []Pair

func (Dictionary) Tag() Tag { return TagDictionary }

// IdentityDictionary is a Dictionary under its own tag (25).
type IdentityDictionary []Pair

func (IdentityDictionary) Tag() Tag { return TagIdentityDictionary }

func decodeFields(b *decbuf, n uint32, perEntry int, kind string) ([]Field, error) {
	// Every Field record is at least one tag byte, which bounds the
	// plausible count before anything is allocated.
	if int(n)*perEntry > b.remaining() {
		return nil, fmt.Errorf("%w: %s declares %d entries, only %d bytes left",
			ErrCorrupt, kind, n, b.remaining())
	}
	fields := make([]Field, 0, int(n)*perEntry)
	for i := 0; i < int(n)*perEntry; i++ {
		f, err := decodeObject(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %s declares %d entries, stream ended inside entry %d (%v)",
				ErrCorrupt, kind, n, i/perEntry, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func decodeSequence(tag Tag) func(*decbuf) (Object, error) {
	return func(b *decbuf) (Object, error) {
		n, err := b.u32()
		if err != nil {
			return nil, err
		}
		fields, err := decodeFields(b, n, 1, KindName(tag))
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagArray:
			return Array(fields), nil
		case TagOrderedCollection:
			return OrderedCollection(fields), nil
		case TagSet:
			return Set(fields), nil
		default:
			return IdentitySet(fields), nil
		}
	}
}

func encodeSequence(b *encbuf, obj Object) error {
	var fields []Field
	switch v := obj.(type) {
	case Array:
		fields = v
	case OrderedCollection:
		fields = v
	case Set:
		fields = v
	case IdentitySet:
		fields = v
	}
	b.putU32(uint32(len(fields)))
	for _, f := range fields {
		if err := encodeObject(b, f); err != nil {
			return err
		}
	}
	return nil
}

func decodeDictionary(tag Tag) func(*decbuf) (Object, error) {
	return func(b *decbuf) (Object, error) {
		n, err := b.u32()
		if err != nil {
			return nil, err
		}
		fields, err := decodeFields(b, n, 2, KindName(tag))
		if err != nil {
			return nil, err
		}
		pairs := make([]Pair, 0, int(n))
		for i := 0; i < len(fields); i += 2 {
			pairs = append(pairs, Pair{Key: fields[i], Value: fields[i+1]})
		}
		if tag == TagIdentityDictionary {
			return IdentityDictionary(pairs), nil
		}
		return Dictionary(pairs), nil
	}
}

func encodeDictionary(b *encbuf, obj Object) error {
	var pairs []Pair
	switch v := obj.(type) {
	case Dictionary:
		pairs = v
	case IdentityDictionary:
		pairs = v
	}
	b.putU32(uint32(len(pairs)))
	for _, p := range pairs {
		if err := encodeObject(b, p.Key); err != nil {
			return err
		}
		if err := encodeObject(b, p.Value); err != nil {
			return err
		}
	}
	return nil
}
