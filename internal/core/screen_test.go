package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenRendererCursor(t *testing.T) {
	s := NewScreen(10, 5)

	if err := s.MoveCursorTo(3, 2); err != nil {
		t.Fatalf("MoveCursorTo() failed: %v", err)
	}
	for _, r := range "ab" {
		if err := s.PrintChar(r); err != nil {
			t.Fatalf("PrintChar() failed: %v", err)
		}
	}

	if s.Get(3, 2) != 'a' || s.Get(4, 2) != 'b' {
		t.Errorf("PrintChar should write at the cursor and advance, got %q %q", s.Get(3, 2), s.Get(4, 2))
	}

	// Printing off-screen must not panic
	if err := s.MoveCursorTo(50, 50); err != nil {
		t.Fatalf("MoveCursorTo() failed: %v", err)
	}
	if err := s.PrintChar('z'); err != nil {
		t.Fatalf("PrintChar() off-screen failed: %v", err)
	}
}

func TestScreenClearScreen(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	_ = s.MoveCursorTo(2, 3)

	if err := s.ClearScreen(); err != nil {
		t.Fatalf("ClearScreen() failed: %v", err)
	}

	if s.Get(1, 1) != ' ' {
		t.Error("ClearScreen should blank the buffer")
	}
	// The cursor is homed, so the next print lands at the origin
	if err := s.PrintChar('Q'); err != nil {
		t.Fatalf("PrintChar() failed: %v", err)
	}
	if s.Get(0, 0) != 'Q' {
		t.Errorf("ClearScreen should home the cursor, Get(0, 0) = %q", s.Get(0, 0))
	}
}

func TestLast(t *testing.T) {
	if _, ok := Last(nil); ok {
		t.Error("Last(nil) should report no key")
	}
	k, ok := Last([]Key{"w", "a", "d"})
	if !ok || k != "d" {
		t.Errorf("Last() = %q, %v; expected \"d\", true", k, ok)
	}
}
