package squeak

// Point is a 2-D coordinate (tag 32). The coordinates are Fields,
// numeric in practice but carried opaquely.
type Point struct {
	X, Y Field
}

func (Point) Tag() Tag { return TagPoint }

// Rectangle is a fixed 4-Field record (tag 33). The codec imposes no
// corner/extent interpretation on the fields.
type Rectangle [4]Field

func (Rectangle) Tag() Tag { return TagRectangle }

func decodePoint(b *decbuf) (Object, error) {
	x, err := decodeObject(b)
	if err != nil {
		return nil, err
	}
	y, err := decodeObject(b)
	if err != nil {
		return nil, err
	}
	return Point{X: x, Y: y}, nil
}

func encodePoint(b *encbuf, obj Object) error {
	p := obj.(Point)
	if err := encodeObject(b, p.X); err != nil {
		return err
	}
	return encodeObject(b, p.Y)
}

func decodeRectangle(b *decbuf) (Object, error) {
	var r Rectangle
	for i := range r {
		f, err := decodeObject(b)
		if err != nil {
			return nil, err
		}
		r[i] = f
	}
	return r, nil
}

func encodeRectangle(b *encbuf, obj Object) error {
	r := obj.(Rectangle)
	for _, f := range r {
		if err := encodeObject(b, f); err != nil {
			return err
		}
	}
	return nil
}
