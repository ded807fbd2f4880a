// Package sourcemap builds Source Map Revision 3 documents.
//
// A [Builder] collects mapping segments while generated code is written
// out; [Builder.Map] then produces the final [Map] document with either
// VLQ-encoded or decoded mappings. All state is local to the builder;
// it is not safe for concurrent use, but independent builders are.
package sourcemap

import (
	"bytes"
	"encoding/json"
)

// Map is a Source Map Revision 3 document.
//
// Exactly one of Mappings and Decoded is populated, depending on whether
// the builder was asked to encode. Decoded mappings are line-major:
// Decoded[line] holds the segments of one generated line, each segment
// an array of 1, 4 or 5 integers as in the encoded form.
type Map struct {
	Version        int
	Sources        []string
	SourcesContent []*string
	Names          []string
	Mappings       string
	Decoded        [][][]int
}

// MarshalJSON renders the document with the Source Map Revision 3 field
// names, emitting the decoded array under "mappings" when the map was
// not encoded.
func (m *Map) MarshalJSON() ([]byte, error) {
	var mappings any = m.Mappings
	if m.Decoded != nil {
		mappings = m.Decoded
	}
	return json.Marshal(struct {
		Version        int       `json:"version"`
		Sources        []string  `json:"sources"`
		SourcesContent []*string `json:"sourcesContent"`
		Names          []string  `json:"names"`
		Mappings       any       `json:"mappings"`
	}{
		Version:        m.Version,
		Sources:        m.Sources,
		SourcesContent: m.SourcesContent,
		Names:          m.Names,
		Mappings:       mappings,
	})
}

// Builder accumulates mapping segments in generated-position order.
// The zero value is ready to use.
type Builder struct {
	lines     [][][]int // segments per generated line
	names     []string
	nameIndex map[string]int
}

// AddMapping records that generated position (genLine, genCol) originates
// at (srcLine, srcCol) of source 0. Positions are 0-indexed. Segments
// must be added in non-decreasing generated order; this is naturally the
// case when mappings are pushed while the output is written.
//
// Consecutive duplicates are dropped: if the previous segment on the same
// generated line has identical source coordinates and carries no name,
// the new segment is skipped.
func (b *Builder) AddMapping(genLine, genCol, srcLine, srcCol int) {
	b.add(genLine, []int{genCol, 0, srcLine, srcCol})
}

// AddNamedMapping is AddMapping with an original name attached; the name
// is interned in the names table and referenced by index.
func (b *Builder) AddNamedMapping(genLine, genCol, srcLine, srcCol int, name string) {
	b.add(genLine, []int{genCol, 0, srcLine, srcCol, b.nameID(name)})
}

func (b *Builder) add(genLine int, seg []int) {
	for len(b.lines) <= genLine {
		b.lines = append(b.lines, nil)
	}
	line := b.lines[genLine]
	if len(seg) == 4 && len(line) > 0 {
		prev := line[len(line)-1]
		if len(prev) == 4 && prev[1] == seg[1] && prev[2] == seg[2] && prev[3] == seg[3] {
			return
		}
	}
	b.lines[genLine] = append(line, seg)
}

func (b *Builder) nameID(name string) int {
	if id, ok := b.nameIndex[name]; ok {
		return id
	}
	if b.nameIndex == nil {
		b.nameIndex = make(map[string]int)
	}
	id := len(b.names)
	b.names = append(b.names, name)
	b.nameIndex[name] = id
	return id
}

// Map produces the final document. source names sources[0]; it may be
// empty, in which case the sources list is empty too. content, when
// non-empty, is stored in sourcesContent[0]. When encode is true the
// mappings are VLQ-encoded; otherwise the decoded array is kept.
func (b *Builder) Map(source, content string, encode bool) *Map {
	m := &Map{
		Version: 3,
		Sources: []string{},
		Names:   b.names,
	}
	if m.Names == nil {
		m.Names = []string{}
	}
	if source != "" {
		m.Sources = []string{source}
		if content != "" {
			c := content
			m.SourcesContent = []*string{&c}
		} else {
			m.SourcesContent = []*string{nil}
		}
	}
	if encode {
		m.Mappings = encodeMappings(b.lines)
	} else {
		m.Decoded = b.lines
		if m.Decoded == nil {
			m.Decoded = [][][]int{}
		}
	}
	return m
}

// encodeMappings renders the line-major segment arrays as the
// semicolon/comma separated VLQ string. All fields after the generated
// column reset only across the whole map, while the generated column
// resets per line.
func encodeMappings(lines [][][]int) string {
	var buf bytes.Buffer
	var prevSource, prevSrcLine, prevSrcCol, prevName int
	for i, line := range lines {
		if i > 0 {
			buf.WriteByte(';')
		}
		prevGenCol := 0
		for j, seg := range line {
			if j > 0 {
				buf.WriteByte(',')
			}
			enc := appendVLQ(nil, seg[0]-prevGenCol)
			prevGenCol = seg[0]
			if len(seg) >= 4 {
				enc = appendVLQ(enc, seg[1]-prevSource)
				enc = appendVLQ(enc, seg[2]-prevSrcLine)
				enc = appendVLQ(enc, seg[3]-prevSrcCol)
				prevSource, prevSrcLine, prevSrcCol = seg[1], seg[2], seg[3]
				if len(seg) == 5 {
					enc = appendVLQ(enc, seg[4]-prevName)
					prevName = seg[4]
				}
			}
			buf.Write(enc)
		}
	}
	return buf.String()
}
