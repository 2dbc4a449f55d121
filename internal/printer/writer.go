package printer

import (
	"github.com/tsdownlevel/tsdownlevel/internal/config"
	"github.com/tsdownlevel/tsdownlevel/internal/helpers"
	"github.com/tsdownlevel/tsdownlevel/internal/sourcemap"
)

// sourceWriter is spec.md §4.5's Source writer: a byte buffer plus
// indentation/line/column tracking and a mapping accumulator. It never
// locks; one writer serves exactly one single-threaded emission pass
// (spec.md §5).
type sourceWriter struct {
	joiner helpers.Joiner
	indent int

	line   int32
	column int32

	newline    string
	indentUnit string

	mappings    *sourcemap.Accumulator
	sourceIndex int32
}

func newSourceWriter(opts config.Options) *sourceWriter {
	newline := "\n"
	if opts.Newline == config.NewlineCRLF {
		newline = "\r\n"
	}
	indentUnit := "    "
	if opts.Indent == config.IndentTabs {
		indentUnit = "\t"
	}

	var mappings *sourcemap.Accumulator
	if opts.SourceMap != config.SourceMapNone {
		mappings = sourcemap.NewAccumulator()
	}

	return &sourceWriter{
		newline:     newline,
		indentUnit:  indentUnit,
		mappings:    mappings,
		sourceIndex: int32(opts.SourceFileIndex),
	}
}

func (w *sourceWriter) write(text string) {
	if text == "" {
		return
	}
	w.joiner.AddString(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			w.line++
			w.column = 0
		} else {
			w.column++
		}
	}
}

func (w *sourceWriter) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.write(w.indentUnit)
	}
}

func (w *sourceWriter) writeNewline() {
	w.write(w.newline)
}

func (w *sourceWriter) increaseIndent() { w.indent++ }
func (w *sourceWriter) decreaseIndent() { w.indent-- }

// addMapping records that the text about to be written at the writer's
// current position corresponds to srcPos in the original source (spec.md
// §4.4, "Source-map mapping accumulator"). No-op when source maps are off.
func (w *sourceWriter) addMapping(srcLine, srcCol int32) {
	if w.mappings == nil {
		return
	}
	w.mappings.Add(sourcemap.Mapping{
		GeneratedLine:   w.line,
		GeneratedColumn: w.column,
		SourceIndex:     w.sourceIndex,
		SourceLine:      srcLine,
		SourceColumn:    srcCol,
	})
}

func (w *sourceWriter) takeOutput() []byte {
	return w.joiner.Done()
}
