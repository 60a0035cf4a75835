package logging

import (
	"bytes"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter(">> ", &out)

	// Chunks split mid-line must not split the prefix.
	if _, err := pw.Write([]byte("first li")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("partial line flushed early: %q", out.String())
	}
	if _, err := pw.Write([]byte("ne\nsecond line\ntail")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := ">> first line\n>> second line\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
