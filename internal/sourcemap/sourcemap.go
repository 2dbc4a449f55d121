// Package sourcemap implements the mapping accumulator and VLQ encoder used
// by internal/printer's source writer, trimmed from esbuild's
// internal/sourcemap down to single-file emission: the core never joins
// source-map chunks across files (spec.md §1, "No multi-file bundling"), so
// the bundler-oriented chunk/shift/remapping machinery in the teacher's
// version has no home here.
package sourcemap

import "github.com/google/uuid"

// Document is the source-map v3 JSON document a Print call assembles from
// an Accumulator's encoded mappings (spec.md §6, "an optional source-map
// sidecar"). File is the generated file's own name; when the driver has no
// real on-disk path for it (the CLI's demo/fixture mode, see
// cmd/tsdownlevel), NewDocument fills it with a synthetic
// "<uuid>.js" placeholder instead of leaving it empty, since downstream
// source-map consumers generally expect a non-empty "file" field.
type Document struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// NewDocument assembles the JSON-ready document for a single-file mapping
// vector. sourcesContent may be nil to omit inline sources.
func NewDocument(file string, sources, sourcesContent, names []string, mappings string) Document {
	if file == "" {
		file = uuid.NewString() + ".js"
	}
	return Document{
		Version:        3,
		File:           file,
		Sources:        sources,
		SourcesContent: sourcesContent,
		Names:          names,
		Mappings:       mappings,
	}
}

// Mapping is one entry of the "mappings" field's decoded form: a generated
// position plus the source position it corresponds to (spec.md §6,
// "Output from the core... an optional source-map mapping vector in
// VLQ-encodable form (line, col, src_idx, src_line, src_col)").
type Mapping struct {
	GeneratedLine   int32
	GeneratedColumn int32
	SourceIndex     int32
	SourceLine      int32
	SourceColumn    int32
	Name            string // "" if this mapping carries no original-name association
}

// Accumulator collects mappings in generation order and can render them as
// the standard VLQ-encoded "mappings" string. It has no locking; single
// emission pass, single thread, per spec.md §5.
type Accumulator struct {
	mappings []Mapping

	// prevGeneratedLine/Column and prevSource* track the previous entry's
	// *absolute* position so each new entry can be VLQ-encoded as a delta,
	// per the source-map v3 spec.
	prevGeneratedLine int32
	prevGeneratedColumn int32
	prevSourceIndex     int32
	prevSourceLine      int32
	prevSourceColumn    int32
	prevNameIndex       int32
	names               []string
	nameIndex           map[string]int32
}

func NewAccumulator() *Accumulator {
	return &Accumulator{nameIndex: make(map[string]int32)}
}

// Add records one mapping. GeneratedLine/Column must be non-decreasing in
// successive calls (the source writer only ever appends).
func (a *Accumulator) Add(m Mapping) {
	a.mappings = append(a.mappings, m)
}

// Mappings returns every recorded mapping in generation order.
func (a *Accumulator) Mappings() []Mapping {
	return a.mappings
}

// nameIndexFor returns name's index in the deduplicated "names" array,
// appending it on first use; -1 for an empty name.
func (a *Accumulator) nameIndexFor(name string) int32 {
	if name == "" {
		return -1
	}
	if idx, ok := a.nameIndex[name]; ok {
		return idx
	}
	idx := int32(len(a.names))
	a.names = append(a.names, name)
	a.nameIndex[name] = idx
	return idx
}

// EncodeVLQMappings renders the accumulated mappings as the source-map v3
// "mappings" field: semicolon-separated generated lines, each a
// comma-separated list of VLQ-encoded, delta-from-previous segments.
func (a *Accumulator) EncodeVLQMappings() (mappings string, names []string) {
	var out []byte
	currentLine := int32(0)
	firstOnLine := true

	// Reset delta-tracking state; Names/nameIndex accumulate as we go so
	// repeated calls would double-count, so this is intentionally a
	// one-shot render (matches the accumulator's single-emission lifetime).
	a.prevGeneratedColumn = 0
	a.prevSourceIndex = 0
	a.prevSourceLine = 0
	a.prevSourceColumn = 0
	a.prevNameIndex = 0

	for _, m := range a.mappings {
		for currentLine < m.GeneratedLine {
			out = append(out, ';')
			currentLine++
			firstOnLine = true
			a.prevGeneratedColumn = 0
		}
		if !firstOnLine {
			out = append(out, ',')
		}
		firstOnLine = false

		out = encodeVLQ(out, int(m.GeneratedColumn-a.prevGeneratedColumn))
		a.prevGeneratedColumn = m.GeneratedColumn

		out = encodeVLQ(out, int(m.SourceIndex-a.prevSourceIndex))
		a.prevSourceIndex = m.SourceIndex

		out = encodeVLQ(out, int(m.SourceLine-a.prevSourceLine))
		a.prevSourceLine = m.SourceLine

		out = encodeVLQ(out, int(m.SourceColumn-a.prevSourceColumn))
		a.prevSourceColumn = m.SourceColumn

		if m.Name != "" {
			idx := a.nameIndexFor(m.Name)
			out = encodeVLQ(out, int(idx-a.prevNameIndex))
			a.prevNameIndex = idx
		}
	}

	return string(out), a.names
}

const vlqChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ appends the base64-VLQ encoding of value to encoded, following
// the source-map v3 convention: the sign occupies the low bit, then 5 data
// bits per byte with the continuation bit in position 5.
func encodeVLQ(encoded []byte, value int) []byte {
	var vlq int
	if value < 0 {
		vlq = ((-value) << 1) | 1
	} else {
		vlq = value << 1
	}

	for {
		digit := vlq & 0x1F
		vlq >>= 5
		if vlq != 0 {
			digit |= 0x20
		}
		encoded = append(encoded, vlqChars[digit])
		if vlq == 0 {
			break
		}
	}

	return encoded
}
