package helpers

import "testing"

func TestJoinerConcatenatesStringsAndBytes(t *testing.T) {
	var j Joiner
	j.AddString("foo")
	j.AddBytes([]byte("bar"))
	j.AddString("baz")
	if got := string(j.Done()); got != "foobarbaz" {
		t.Fatalf("Done() = %q, want %q", got, "foobarbaz")
	}
}

func TestJoinerLastByteAndLength(t *testing.T) {
	var j Joiner
	j.AddString("abc")
	if j.LastByte() != 'c' {
		t.Fatalf("LastByte() = %c, want c", j.LastByte())
	}
	if j.Length() != 3 {
		t.Fatalf("Length() = %d, want 3", j.Length())
	}
}

func TestJoinerEnsureNewlineAtEndIsIdempotent(t *testing.T) {
	var j Joiner
	j.AddString("abc")
	j.EnsureNewlineAtEnd()
	j.EnsureNewlineAtEnd()
	if got := string(j.Done()); got != "abc\n" {
		t.Fatalf("Done() = %q, want %q", got, "abc\n")
	}
}

func TestJoinerContains(t *testing.T) {
	var j Joiner
	j.AddString("hello")
	j.AddBytes([]byte("world"))
	if !j.Contains("ello", nil) {
		t.Fatal("expected Contains to find a substring in the string part")
	}
	if !j.Contains("orl", []byte("orl")) {
		t.Fatal("expected Contains to find a substring in the bytes part")
	}
	if j.Contains("missing", []byte("missing")) {
		t.Fatal("expected Contains to report false for absent substrings")
	}
}
