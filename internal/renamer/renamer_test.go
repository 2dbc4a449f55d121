package renamer

import "testing"

func TestNextTempSequence(t *testing.T) {
	s := NewScope()
	got := []string{s.NextTemp(), s.NextTemp(), s.NextTemp()}
	want := []string{"_a", "_b", "_c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("temp %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNextTempSkipsReservedNames(t *testing.T) {
	s := NewScope()
	s.Reserve("_a")
	s.Reserve("_b")
	got := s.NextTemp()
	if got != "_c" {
		t.Errorf("NextTemp() = %q, want %q", got, "_c")
	}
}

func TestNextTempWrapsToTwoLetters(t *testing.T) {
	s := NewScope()
	var last string
	for i := 0; i < 27; i++ {
		last = s.NextTemp()
	}
	if last != "_aa" {
		t.Errorf("27th temp = %q, want %q", last, "_aa")
	}
}

func TestCaptureNameReturnsBaseWhenFree(t *testing.T) {
	s := NewScope()
	if got := s.CaptureName("_this"); got != "_this" {
		t.Errorf("CaptureName(_this) = %q, want %q", got, "_this")
	}
}

func TestCaptureNameAppendsCounterOnCollision(t *testing.T) {
	s := NewScope()
	s.Reserve("_this")
	got := s.CaptureName("_this")
	if got != "_this_1" {
		t.Errorf("CaptureName(_this) = %q, want %q", got, "_this_1")
	}
	s2Got := s.CaptureName("_this")
	if s2Got != "_this_2" {
		t.Errorf("second CaptureName(_this) = %q, want %q", s2Got, "_this_2")
	}
}

func TestClassAliasNameIsUnderscoreA(t *testing.T) {
	s := NewScope()
	if got := s.ClassAliasName(); got != "_a" {
		t.Errorf("ClassAliasName() = %q, want %q", got, "_a")
	}
}

func TestInUseReflectsReservedAndAllocated(t *testing.T) {
	s := NewScope()
	if s.InUse("_a") {
		t.Fatal("expected _a not yet in use")
	}
	s.NextTemp()
	if !s.InUse("_a") {
		t.Fatal("expected _a in use after NextTemp")
	}
}
