package helpers

import "testing"

func TestStringToUTF16RoundTripsBMP(t *testing.T) {
	original := "hello, world"
	encoded := StringToUTF16(original)
	back := UTF16ToString(encoded)
	if back != original {
		t.Fatalf("round trip = %q, want %q", back, original)
	}
}

func TestStringToUTF16EncodesSurrogatePairForAstralCodePoint(t *testing.T) {
	original := "\U0001F600" // grinning face emoji, above the BMP
	encoded := StringToUTF16(original)
	if len(encoded) != 2 {
		t.Fatalf("expected a surrogate pair (2 units), got %d", len(encoded))
	}
	if back := UTF16ToString(encoded); back != original {
		t.Fatalf("round trip = %q, want %q", back, original)
	}
}

func TestContainsNonBMPCodePoint(t *testing.T) {
	if ContainsNonBMPCodePoint("hello") {
		t.Fatal("expected no non-BMP code point in plain ASCII")
	}
	if !ContainsNonBMPCodePoint("\U0001F600") {
		t.Fatal("expected a non-BMP code point detected")
	}
}

func TestUTF16EqualsString(t *testing.T) {
	encoded := StringToUTF16("abc")
	if !UTF16EqualsString(encoded, "abc") {
		t.Fatal("expected UTF16EqualsString to report equal")
	}
	if UTF16EqualsString(encoded, "abd") {
		t.Fatal("expected UTF16EqualsString to report not equal")
	}
}

func TestUTF16EqualsUTF16(t *testing.T) {
	a := StringToUTF16("xyz")
	b := StringToUTF16("xyz")
	c := StringToUTF16("xyw")
	if !UTF16EqualsUTF16(a, b) {
		t.Fatal("expected equal UTF-16 slices to compare equal")
	}
	if UTF16EqualsUTF16(a, c) {
		t.Fatal("expected differing UTF-16 slices to compare unequal")
	}
}
