package main

import (
	"fmt"
	"strings"

	"github.com/squeaklab/sbmedia/pkg/squeak"
)

// describe renders a decoded object tree, one node per line.
func describe(obj squeak.Object, depth int) string {
	indent := strings.Repeat("  ", depth)

	var b strings.Builder
	switch v := obj.(type) {
	case squeak.Nil:
		fmt.Fprintf(&b, "%snil\n", indent)
	case squeak.Boolean:
		fmt.Fprintf(&b, "%s%v\n", indent, bool(v))
	case squeak.SmallInt:
		fmt.Fprintf(&b, "%s%d\n", indent, int32(v))
	case squeak.SmallInt16:
		fmt.Fprintf(&b, "%s%d\n", indent, int16(v))
	case squeak.LargeInt:
		if n, ok := v.Int64(); ok {
			fmt.Fprintf(&b, "%s%d\n", indent, n)
		} else {
			fmt.Fprintf(&b, "%s%s(%d digits)\n", indent, squeak.KindName(v.Tag()), len(v.Digits))
		}
	case squeak.Float:
		fmt.Fprintf(&b, "%s%g\n", indent, float64(v))
	case squeak.Ref:
		fmt.Fprintf(&b, "%sRef(%d)\n", indent, uint32(v))
	case squeak.String:
		fmt.Fprintf(&b, "%sString(%q)\n", indent, string(v))
	case squeak.Symbol:
		fmt.Fprintf(&b, "%s#%s\n", indent, string(v))
	case squeak.UTF8:
		fmt.Fprintf(&b, "%sUTF8(%q)\n", indent, string(v))
	case squeak.ByteArray:
		fmt.Fprintf(&b, "%sByteArray(%d bytes)\n", indent, len(v))
	case squeak.SoundBuffer:
		fmt.Fprintf(&b, "%sSoundBuffer(%d samples)\n", indent, len(v))
	case squeak.Bitmap:
		fmt.Fprintf(&b, "%sBitmap(%d words)\n", indent, v.Words())
	case squeak.Color:
		fmt.Fprintf(&b, "%sColor(#%s)\n", indent, v.Hex())
	case squeak.TranslucentColor:
		fmt.Fprintf(&b, "%sTranslucentColor(#%s)\n", indent, v.Hex())
	case squeak.Point:
		fmt.Fprintf(&b, "%sPoint\n", indent)
		b.WriteString(describe(v.X, depth+1))
		b.WriteString(describe(v.Y, depth+1))
	case squeak.Rectangle:
		fmt.Fprintf(&b, "%sRectangle\n", indent)
		for _, f := range v {
			b.WriteString(describe(f, depth+1))
		}
	case squeak.Array, squeak.OrderedCollection, squeak.Set, squeak.IdentitySet:
		fields := sequenceFields(v)
		fmt.Fprintf(&b, "%s%s(%d)\n", indent, squeak.KindName(v.Tag()), len(fields))
		for _, f := range fields {
			b.WriteString(describe(f, depth+1))
		}
	case squeak.Dictionary:
		b.WriteString(describePairs(v, squeak.KindName(v.Tag()), depth))
	case squeak.IdentityDictionary:
		b.WriteString(describePairs(v, squeak.KindName(v.Tag()), depth))
	case *squeak.Form:
		b.WriteString(describeForm(v, "Form", depth))
	case *squeak.ColorForm:
		b.WriteString(describeForm(&v.Form, "ColorForm", depth))
	default:
		fmt.Fprintf(&b, "%s%s\n", indent, squeak.KindName(obj.Tag()))
	}
	return b.String()
}

func sequenceFields(obj squeak.Object) []squeak.Field {
	switch v := obj.(type) {
	case squeak.Array:
		return v
	case squeak.OrderedCollection:
		return v
	case squeak.Set:
		return v
	case squeak.IdentitySet:
		return v
	}
	return nil
}

func describePairs(pairs []squeak.Pair, name string, depth int) string {
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s(%d)\n", indent, name, len(pairs))
	for _, p := range pairs {
		b.WriteString(describe(p.Key, depth+1))
		b.WriteString(describe(p.Value, depth+2))
	}
	return b.String()
}

func describeForm(f *squeak.Form, name string, depth int) string {
	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", indent, name)
	for _, field := range []squeak.Field{f.Width, f.Height, f.Depth, f.Bits} {
		if field != nil {
			b.WriteString(describe(field, depth+1))
		}
	}
	if f.Colors != nil {
		b.WriteString(describe(f.Colors, depth+1))
	}
	return b.String()
}
