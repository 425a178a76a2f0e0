package font

import (
	"testing"
)

func TestLookup(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		if Lookup(r) != Digit(int(r-'0')) {
			t.Errorf("Lookup(%q) differs from Digit", r)
		}
		if Lookup(r) == Blank {
			t.Errorf("Lookup(%q) is blank", r)
		}
	}
	if Lookup(':') != Colon || Lookup('-') != Dash || Lookup(' ') != Blank {
		t.Error("separators mismatch")
	}
	if Lookup('x') != Blank {
		t.Error("unsupported rune should be blank")
	}
}

func TestGlyphsFitGrid(t *testing.T) {
	for _, r := range "0123456789:- " {
		if Lookup(r)>>(W*H) != 0 {
			t.Errorf("glyph %q uses bits above %d", r, W*H-1)
		}
	}
}

func TestCells(t *testing.T) {
	cells := One.Cells()
	expected := []int{2, 5, 8, 11, 14}
	if len(cells) != len(expected) {
		t.Fatalf("Expected %v got %v", expected, cells)
	}
	for i := range cells {
		if cells[i] != expected[i] {
			t.Errorf("Expected %v got %v", expected, cells)
		}
	}
	if One.Count() != 5 || Eight.Count() != 13 || Colon.Count() != 2 || Blank.Count() != 0 {
		t.Error("unexpected lit cell counts")
	}
}

func TestString(t *testing.T) {
	expected := "###\n..#\n###\n#..\n###"
	if Two.String() != expected {
		t.Errorf("Expected\n%s\ngot\n%s", expected, Two.String())
	}
}
