package squeak

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestCodecTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(hclog.New(&hclog.LoggerOptions{
		Name:   "codec",
		Level:  hclog.Trace,
		Output: &buf,
	}))
	defer SetLogger(nil)

	encoded, err := Encode(String("meow"))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, _, err := Decode(encoded); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "encoded object") {
		t.Errorf("trace output missing encode line: %q", out)
	}
	if !strings.Contains(out, "decoded object") {
		t.Errorf("trace output missing decode line: %q", out)
	}
	if !strings.Contains(out, "String") {
		t.Errorf("trace output missing kind name: %q", out)
	}
}

func TestSetLoggerNilRestoresNull(t *testing.T) {
	SetLogger(nil)
	if _, err := Encode(SmallInt(7)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
}
