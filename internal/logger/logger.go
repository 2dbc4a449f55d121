// Package logger is the downleveling core's ambient logging facility,
// trimmed from esbuild's internal/logger to the subset the core actually
// needs: per spec.md §7, the core never emits user-facing diagnostics for
// the two expected failure regimes (recovery-parsed input, unsupported
// constructs), so there is no error-count limiting, terminal-width probing,
// or colored-output logic to carry over. What remains is the same shape
// esbuild uses for everything else: a Log value wrapping an AddMsg callback
// and a Loc/Range/MsgData vocabulary for describing *where* something
// happened.
package logger

import "fmt"

// Loc is a single source position, a byte offset into a file's text.
type Loc struct{ Start int32 }

// Range is a span of source text, used when a log message should highlight
// more than a single point.
type Range struct {
	Loc Loc
	Len int32
}

type MsgKind uint8

const (
	// Error is emitted only by pkg/downlevel.Transform's recover handler,
	// once per recovered internal panic; the core emits no diagnostics for
	// the two expected regimes (spec.md §7). Warning is never emitted by
	// the core; it stays part of the vocabulary so a host driver's own
	// diagnostics can flow through the same Log value if convenient.
	Error MsgKind = iota
	Warning

	// Debug is the level for "residual gap" notes (spec.md §7.2). It is
	// part of the vocabulary only: nothing in the core calls AddDebug, so
	// no ASTRef fallback site records a note.
	Debug
)

func (kind MsgKind) String() string {
	switch kind {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "debug"
	}
}

type MsgData struct {
	Text  string
	Loc   Loc
	Range Range
}

type Msg struct {
	Kind MsgKind
	Data MsgData
}

// Log is a minimal sink: AddMsg is called once per message, synchronously,
// from whichever single goroutine is running the Lower+Emit pass (spec.md
// §5, "Single-threaded cooperative per file").
type Log struct {
	AddMsg func(Msg)
}

// NewDiscardLog returns a Log that drops every message, used when a caller
// doesn't want any messages at all.
func NewDiscardLog() Log {
	return Log{AddMsg: func(Msg) {}}
}

// NewCollectingLog returns a Log plus an accessor for everything it
// collected; the CLI's run command uses it to gather the messages a
// Transform call recorded.
func NewCollectingLog() (Log, func() []Msg) {
	var msgs []Msg
	return Log{AddMsg: func(m Msg) { msgs = append(msgs, m) }}, func() []Msg { return msgs }
}

// AddDebug records a Debug-level residual-gap note.
func (l Log) AddDebug(loc Loc, text string) {
	if l.AddMsg == nil {
		return
	}
	l.AddMsg(Msg{Kind: Debug, Data: MsgData{Text: text, Loc: loc}})
}

// AddError records an Error-level internal-inconsistency note without
// panicking; used by the single public entry point's recover handler
// (spec.md §7.3) to turn a caught panic into a structured message before
// re-raising it as a typed error.
func (l Log) AddError(loc Loc, text string) {
	if l.AddMsg == nil {
		return
	}
	l.AddMsg(Msg{Kind: Error, Data: MsgData{Text: text, Loc: loc}})
}

// Assertf panics with a formatted message. Every call site is an internal
// inconsistency per spec.md §7.3 ("a directive references a non-existent
// node, malformed IR, counter overflow") — never reachable from
// well-formed input — so a panic, not a returned error, is the right shape;
// the package boundary (pkg/downlevel) recovers it.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
