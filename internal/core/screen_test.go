package core

import (
	"strings"
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

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 3, '@', ColorBrightRed)

	cell := s.GetCell(3, 3)
	if cell.Rune != '@' {
		t.Errorf("GetCell(3, 3).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 3).Color = %d, expected ColorBrightRed", cell.Color)
	}

	// Plain Set writes default color
	s.Set(3, 3, '#')
	if s.GetCell(3, 3).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}

	// Out of bounds cell is a default space
	if c := s.GetCell(-1, -1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a default space cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %q", x, y, c.Rune)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", got)
	}

	// Clipped text should not panic
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("Get(19, 0) = %q, expected 'v'", s.Get(19, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 20)

	if s.Width() != 20 || s.Height() != 20 {
		t.Errorf("Resize failed: %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrink drops out-of-range content without panicking
	s.Resize(3, 3)
	if s.Get(2, 2) != 'X' {
		t.Error("Content inside the new bounds should survive a shrink")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box corners misplaced")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges misplaced")
	}
}
