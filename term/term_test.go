package term

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestMove(t *testing.T) {
	if Move(0, 0) != "\x1b[1;1H" {
		t.Errorf("unexpected %q", Move(0, 0))
	}
	if Move(9, 4) != "\x1b[5;10H" {
		t.Errorf("unexpected %q", Move(9, 4))
	}
}

func TestPaint(t *testing.T) {
	tests := []struct {
		paint    Paint
		expected string
	}{
		{Reset, "\x1b[0m"},
		{Background(termenv.ANSIColor(1)), "\x1b[41m"},
		{Background(termenv.ANSIColor(9)), "\x1b[101m"},
		{Paint{Color: termenv.ANSIColor(2), Ground: Fore}, "\x1b[32m"},
		{Background(termenv.ANSI256Color(208)), "\x1b[48;5;208m"},
		{Background(termenv.RGBColor("#ff0000")), "\x1b[48;2;255;0;0m"},
		{Background(termenv.NoColor{}), "\x1b[7m"},
		{Paint{Color: termenv.NoColor{}, Ground: Fore}, ""},
	}
	for _, test := range tests {
		if got := test.paint.String(); got != test.expected {
			t.Errorf("Expected %q got %q", test.expected, got)
		}
	}
	if !Reset.IsReset() || Background(termenv.ANSIColor(0)).IsReset() {
		t.Error("IsReset mismatch")
	}
}

func TestClear(t *testing.T) {
	if Clear != "\x1b[2J\x1b[H" {
		t.Errorf("unexpected %q", Clear)
	}
}

func TestPrintableWidth(t *testing.T) {
	s := Background(termenv.ANSIColor(1)).String() + Move(3, 3) + Blank(4) + Reset.String()
	if PrintableWidth(s) != 4 {
		t.Errorf("Expected 4 got %d", PrintableWidth(s))
	}
	if Blank(-1) != "" {
		t.Error("negative blank")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		profile  termenv.Profile
		expected termenv.Color
	}{
		{"red", termenv.TrueColor, termenv.ANSIColor(1)},
		{"Bright-Blue", termenv.TrueColor, termenv.ANSIColor(12)},
		{"3", termenv.ANSI256, termenv.ANSIColor(3)},
		{"208", termenv.ANSI256, termenv.ANSI256Color(208)},
		{"#ff8000", termenv.TrueColor, termenv.RGBColor("#ff8000")},
		{"red", termenv.Ascii, termenv.NoColor{}},
	}
	for _, test := range tests {
		c, err := ParseColor(test.in, test.profile)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if c != test.expected {
			t.Errorf("%q: expected %#v got %#v", test.in, test.expected, c)
		}
	}

	for _, bad := range []string{"", "purple", "256", "-1", "#zzzzzz"} {
		if _, err := ParseColor(bad, termenv.TrueColor); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
