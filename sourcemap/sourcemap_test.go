package sourcemap

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestVLQ checks the base64 VLQ encoding of single values.
func TestVLQ(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{2, "E"},
		{5, "K"},
		{12, "Y"},
		{9, "S"},
		{15, "e"},
		{16, "gB"},
		{-16, "hB"},
		{511, "+f"},
		{512, "ggB"},
	}
	for _, tt := range tests {
		if got := string(appendVLQ(nil, tt.value)); got != tt.want {
			t.Errorf("appendVLQ(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

// TestBuilderEncode checks segment encoding with per-map field deltas.
func TestBuilderEncode(t *testing.T) {
	var b Builder
	b.AddMapping(0, 12, 9, 5)
	b.AddMapping(0, 14, 9, 7)

	m := b.Map("input.js", "", true)
	if m.Mappings != "YASK,EAAE" {
		t.Errorf("Mappings = %q, want %q", m.Mappings, "YASK,EAAE")
	}
	if len(m.Sources) != 1 || m.Sources[0] != "input.js" {
		t.Errorf("Sources = %v, want [input.js]", m.Sources)
	}
	if m.Version != 3 {
		t.Errorf("Version = %d, want 3", m.Version)
	}
}

// TestBuilderMultiline checks that generated columns reset per line while
// source fields carry across lines.
func TestBuilderMultiline(t *testing.T) {
	var b Builder
	b.AddMapping(0, 0, 0, 0)
	b.AddMapping(1, 0, 1, 0)

	m := b.Map("a.js", "", true)
	if m.Mappings != "AAAA;AACA" {
		t.Errorf("Mappings = %q, want %q", m.Mappings, "AAAA;AACA")
	}
}

// TestBuilderDedup drops a segment whose source coordinates repeat the
// previous segment on the same line.
func TestBuilderDedup(t *testing.T) {
	var b Builder
	b.AddMapping(0, 4, 2, 1)
	b.AddMapping(0, 6, 2, 1) // same source position: skipped
	b.AddMapping(0, 8, 2, 3)

	m := b.Map("a.js", "", false)
	if len(m.Decoded) != 1 {
		t.Fatalf("line count = %d, want 1", len(m.Decoded))
	}
	if got := len(m.Decoded[0]); got != 2 {
		t.Fatalf("segment count = %d, want 2", got)
	}
}

// TestBuilderNames interns names and emits 5-field segments.
func TestBuilderNames(t *testing.T) {
	var b Builder
	b.AddNamedMapping(0, 0, 0, 0, "foo")
	b.AddNamedMapping(0, 5, 0, 8, "bar")
	b.AddNamedMapping(0, 9, 0, 12, "foo")

	m := b.Map("a.js", "", false)
	if len(m.Names) != 2 || m.Names[0] != "foo" || m.Names[1] != "bar" {
		t.Fatalf("Names = %v, want [foo bar]", m.Names)
	}
	segs := m.Decoded[0]
	if len(segs) != 3 {
		t.Fatalf("segment count = %d, want 3", len(segs))
	}
	if segs[0][4] != 0 || segs[1][4] != 1 || segs[2][4] != 0 {
		t.Errorf("name indices = %d,%d,%d, want 0,1,0", segs[0][4], segs[1][4], segs[2][4])
	}
}

// TestMarshalEncoded checks the JSON document shape for encoded maps.
func TestMarshalEncoded(t *testing.T) {
	var b Builder
	b.AddMapping(0, 0, 0, 0)
	m := b.Map("in.js", "let x;", true)

	doc, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(doc)
	for _, want := range []string{
		`"version":3`,
		`"sources":["in.js"]`,
		`"sourcesContent":["let x;"]`,
		`"mappings":"AAAA"`,
		`"names":[]`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("document %s missing %s", s, want)
		}
	}
}

// TestMarshalDecoded checks that decoded maps serialize the 2-D array.
func TestMarshalDecoded(t *testing.T) {
	var b Builder
	b.AddMapping(0, 3, 1, 2)
	m := b.Map("in.js", "", false)

	doc, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(doc), `"mappings":[[[3,0,1,2]]]`) {
		t.Errorf("document %s missing decoded mappings", doc)
	}
}

// TestEmptySource omits the sources entry entirely.
func TestEmptySource(t *testing.T) {
	var b Builder
	m := b.Map("", "", true)
	if len(m.Sources) != 0 {
		t.Errorf("Sources = %v, want empty", m.Sources)
	}
	if m.Mappings != "" {
		t.Errorf("Mappings = %q, want empty", m.Mappings)
	}
}
