package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3,2) = %q, want 'x'", got)
	}

	// Out of bounds is silently ignored / blank
	s.Set(-1, 0, 'y')
	s.Set(10, 0, 'y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetCellKeepsColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '▀', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '▀' || cell.Color != ColorGreen {
		t.Errorf("GetCell = %+v, want {▀ ColorGreen}", cell)
	}

	// Clear resets both rune and color
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear: %+v, want blank default cell", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, want %q", got, "  hello   ")
	}

	// Clipped at the right edge
	s.DrawText(7, 0, "world")
	if got := s.Row(0); got != "       wor" {
		t.Errorf("Row(0) = %q, want %q", got, "       wor")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')
	s.Set(9, 4, 'y')

	s.Resize(5, 3)

	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 5x3", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("surviving cell = %q, want 'x'", got)
	}

	// Growing back fills the new area with spaces
	s.Resize(12, 6)
	if got := s.Row(5); got != strings.Repeat(" ", 12) {
		t.Errorf("new row not blank: %q", got)
	}
}
