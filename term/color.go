package term

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

var names = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ANSI returns basic color n (0-15) converted to profile p.
func ANSI(n int, p termenv.Profile) termenv.Color {
	return p.Convert(termenv.ANSIColor(n))
}

// ParseColor accepts an ANSI color name (optionally prefixed with
// "bright-"), a palette index 0-255 or a "#rrggbb" hex triplet, and
// converts it to profile p.
func ParseColor(s string, p termenv.Profile) (termenv.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex color %q", s)
		}
		return p.FromColor(c), nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n < 0 || n > 255:
			return nil, errors.Errorf("color index %d out of range 0-255", n)
		case n < 16:
			return ANSI(n, p), nil
		default:
			return p.Convert(termenv.ANSI256Color(n)), nil
		}
	}

	bright := strings.HasPrefix(s, "bright-")
	n, ok := names[strings.TrimPrefix(s, "bright-")]
	if !ok {
		return nil, errors.Errorf("unknown color %q", s)
	}
	if bright {
		n += 8
	}
	return ANSI(n, p), nil
}
