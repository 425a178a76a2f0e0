package term

import (
	"github.com/muesli/termenv"
)

type Ground int

const (
	Fore Ground = iota
	Back
)

// Paint selects a color for the foreground or background. The zero Paint
// is Reset.
type Paint struct {
	Color  termenv.Color
	Ground Ground
}

// Reset restores the default foreground, background and attributes.
var Reset = Paint{}

func Background(c termenv.Color) Paint {
	return Paint{Color: c, Ground: Back}
}

func (p Paint) IsReset() bool {
	return p.Color == nil
}

func (p Paint) String() string {
	if p.IsReset() {
		return termenv.CSI + termenv.ResetSeq + "m"
	}
	seq := p.Color.Sequence(p.Ground == Back)
	if seq == "" {
		// No color support: lit background cells fall back to reverse video.
		if p.Ground == Back {
			return termenv.CSI + termenv.ReverseSeq + "m"
		}
		return ""
	}
	return termenv.CSI + seq + "m"
}
