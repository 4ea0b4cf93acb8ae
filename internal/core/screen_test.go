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

	// Screen should be cleared to spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("new screen should be filled with spaces, got %q", s.Get(0, 0))
	}
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("new screen should use the default color")
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if s.Get(3, 2) != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", s.Get(3, 2))
	}

	s.SetCell(4, 2, '#', ColorBrightRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(4, 2) = %+v, expected '#' in bright red", cell)
	}

	// Out-of-bounds writes are silently ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	// Out-of-bounds reads return space
	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "  hello   ")
	}

	// Text extending past the right edge is clipped
	s.DrawText(7, 0, "world")
	if s.Row(0) != "       wor" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "       wor")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)

	s.DrawTextColored(0, 0, "abc", ColorCyan)
	for i := 0; i < 3; i++ {
		if s.GetCell(i, 0).Color != ColorCyan {
			t.Errorf("cell %d should be cyan", i)
		}
	}
	if s.GetCell(3, 0).Color != ColorDefault {
		t.Error("cell past the text should keep the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'x', ColorGreen)

	s.Clear()

	if s.Get(2, 2) != ' ' {
		t.Error("Clear should reset runes to spaces")
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should reset colors to default")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(3, 3, '@')

	// Grow: content preserved
	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after grow = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(3, 3) != '@' {
		t.Error("grow should preserve content")
	}

	// Shrink: content inside the new bounds preserved
	s.Resize(5, 4)
	if s.Get(3, 3) != '@' {
		t.Error("shrink should preserve content inside new bounds")
	}

	// Resize to same size is a no-op
	s.Resize(5, 4)
	if s.Get(3, 3) != '@' {
		t.Error("no-op resize should not clear content")
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
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain exactly one newline for 2 rows")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5))

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' {
		t.Error("top corners not drawn")
	}
	if s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Error("bottom corners not drawn")
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("edges not drawn")
	}
}
