package helpers

import "testing"

func TestQuoteForJSONPlainString(t *testing.T) {
	got := string(QuoteForJSON("hello", false))
	if got != `"hello"` {
		t.Fatalf("QuoteForJSON(hello) = %s, want %s", got, `"hello"`)
	}
}

func TestQuoteForJSONEscapesControlCharacters(t *testing.T) {
	got := string(QuoteForJSON("a\nb\tc", false))
	if got != `"a\nb\tc"` {
		t.Fatalf("QuoteForJSON(a\\nb\\tc) = %s, want %s", got, `"a\nb\tc"`)
	}
}

func TestQuoteForJSONEscapesDoubleQuote(t *testing.T) {
	got := string(QuoteForJSON(`say "hi"`, false))
	want := `"say \"hi\""`
	if got != want {
		t.Fatalf("QuoteForJSON = %s, want %s", got, want)
	}
}

func TestQuoteSingleDoesNotEscapeDoubleQuote(t *testing.T) {
	got := string(QuoteSingle(`say "hi"`, false))
	want := `'say "hi"'`
	if got != want {
		t.Fatalf("QuoteSingle = %s, want %s", got, want)
	}
}

func TestQuoteSingleEscapesSingleQuote(t *testing.T) {
	got := string(QuoteSingle(`it's`, false))
	want := `'it\'s'`
	if got != want {
		t.Fatalf("QuoteSingle = %s, want %s", got, want)
	}
}

func TestQuoteForJSONAsciiOnlyEscapesNonASCII(t *testing.T) {
	got := string(QuoteForJSON("café", true))
	if got == `"café"` {
		t.Fatal("expected non-ASCII character to be escaped when asciiOnly is true")
	}
}

func TestQuoteForJSONNonAsciiOnlyKeepsLiteralUnicode(t *testing.T) {
	got := string(QuoteForJSON("café", false))
	if got != `"café"` {
		t.Fatalf("QuoteForJSON(café, asciiOnly=false) = %s, want literal unicode", got)
	}
}
