// Package js_ident classifies and normalizes JavaScript identifiers for the
// printer: is a property key or binding name safe to print as a bare
// identifier (spec.md §4.5, "dot vs bracket property access... identifier
// validity"), or does it need quoting / a synthetic replacement.
//
// esbuild's own internal/js_ast carries generated Unicode ID_Start/ID_Continue
// range tables split by ES5-vs-ESNext grammar version; this core approximates
// the same grammar with the standard library's Unicode category tables rather
// than vendoring that generated data, and uses golang.org/x/text/unicode/norm
// only for NFC normalization (see DESIGN.md).
package js_ident

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IsIdentifier reports whether text, after NFC normalization, is a valid
// ECMAScript IdentifierName.
func IsIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i, c := range Normalize(text) {
		if i == 0 {
			if !IsIdentifierStart(c) {
				return false
			}
		} else if !IsIdentifierContinue(c) {
			return false
		}
	}
	return true
}

// IsIdentifierStart reports whether c may begin an identifier: `$`, `_`,
// or a Unicode letter (the ID_Start approximation).
func IsIdentifierStart(c rune) bool {
	switch {
	case c == '$' || c == '_':
		return true
	case c < utf8.RuneSelf:
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	default:
		return unicode.IsLetter(c) || unicode.Is(unicode.Nl, c) || unicode.Is(unicode.Other_ID_Start, c)
	}
}

// IsIdentifierContinue reports whether c may continue an identifier already
// begun: everything IsIdentifierStart allows, plus digits, combining marks,
// connector punctuation, and the zero-width joiner/non-joiner.
func IsIdentifierContinue(c rune) bool {
	switch {
	case c == 0x200C || c == 0x200D: // ZWNJ / ZWJ
		return true
	case c < utf8.RuneSelf:
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '$' || c == '_'
	default:
		return IsIdentifierStart(c) ||
			unicode.Is(unicode.Nd, c) ||
			unicode.Is(unicode.Mn, c) ||
			unicode.Is(unicode.Mc, c) ||
			unicode.Is(unicode.Pc, c) ||
			unicode.Is(unicode.Other_ID_Continue, c)
	}
}

// Normalize applies Unicode NFC normalization to a source identifier, which
// the ECMAScript spec requires before any two identifiers are compared for
// equality (this matters for renamer collision checks once a source file
// mixes precomposed and decomposed accented identifiers).
func Normalize(text string) string {
	if norm.NFC.IsNormalString(text) {
		return text
	}
	return norm.NFC.String(text)
}

// ForceValidIdentifier rewrites text into a valid identifier by replacing
// every disallowed code point with `_`, used when synthesizing a name from
// an arbitrary module specifier (e.g. a require path) for AMD/UMD module ids.
func ForceValidIdentifier(text string) string {
	var b strings.Builder
	first := true
	for _, c := range text {
		switch {
		case first && IsIdentifierStart(c):
			b.WriteRune(c)
		case !first && IsIdentifierContinue(c):
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
		first = false
	}
	return b.String()
}
