package sourcemap

import "testing"

func TestEncodeVLQMappingsSingleEntry(t *testing.T) {
	a := NewAccumulator()
	a.Add(Mapping{GeneratedLine: 0, GeneratedColumn: 0, SourceIndex: 0, SourceLine: 0, SourceColumn: 0})
	mappings, names := a.EncodeVLQMappings()
	if mappings != "AAAA" {
		t.Fatalf("mappings = %q, want %q", mappings, "AAAA")
	}
	if len(names) != 0 {
		t.Fatalf("expected no names, got %v", names)
	}
}

func TestEncodeVLQMappingsAdvancesLinesWithSemicolons(t *testing.T) {
	a := NewAccumulator()
	a.Add(Mapping{GeneratedLine: 0, GeneratedColumn: 0})
	a.Add(Mapping{GeneratedLine: 1, GeneratedColumn: 4})
	mappings, _ := a.EncodeVLQMappings()
	if got := countRune(mappings, ';'); got != 1 {
		t.Fatalf("expected exactly one ';' for the line break, got %d in %q", got, mappings)
	}
}

func TestEncodeVLQMappingsSeparatesSegmentsOnSameLine(t *testing.T) {
	a := NewAccumulator()
	a.Add(Mapping{GeneratedLine: 0, GeneratedColumn: 0})
	a.Add(Mapping{GeneratedLine: 0, GeneratedColumn: 4})
	mappings, _ := a.EncodeVLQMappings()
	if got := countRune(mappings, ','); got != 1 {
		t.Fatalf("expected exactly one ',' separating same-line segments, got %d in %q", got, mappings)
	}
}

func TestEncodeVLQMappingsRecordsNamesAndDedups(t *testing.T) {
	a := NewAccumulator()
	a.Add(Mapping{Name: "foo"})
	a.Add(Mapping{GeneratedColumn: 1, Name: "bar"})
	a.Add(Mapping{GeneratedColumn: 2, Name: "foo"})
	_, names := a.EncodeVLQMappings()
	if len(names) != 2 || names[0] != "foo" || names[1] != "bar" {
		t.Fatalf("names = %v, want [foo bar]", names)
	}
}

func TestNewDocumentSynthesizesFileWhenEmpty(t *testing.T) {
	doc := NewDocument("", []string{"a.ts"}, nil, nil, "")
	if doc.File == "" {
		t.Fatal("expected a synthesized file name")
	}
	if doc.Version != 3 {
		t.Fatalf("Version = %d, want 3", doc.Version)
	}
	if len(doc.Sources) != 1 || doc.Sources[0] != "a.ts" {
		t.Fatalf("Sources = %v, want [a.ts]", doc.Sources)
	}
}

func TestNewDocumentKeepsProvidedFile(t *testing.T) {
	doc := NewDocument("out.js", []string{"a.ts"}, nil, nil, "")
	if doc.File != "out.js" {
		t.Fatalf("File = %q, want %q", doc.File, "out.js")
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
