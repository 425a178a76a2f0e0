package clock

import (
	"time"

	"tock/font"
)

//  H   H   :   M   M   :   S   S
// ... ... ... ... ... ... ... ...
type Time []font.Glyph

// Width returns the number of character positions for the display mode.
// Hours always take two positions, so the 12-hour mode is as wide as the
// 24-hour one.
func Width(second, military bool) int {
	if second {
		return 8
	}
	return 5
}

// Blank returns an all-unlit snapshot as wide as Now would produce for the
// same flags.
func Blank(second, military bool) Time {
	return make(Time, Width(second, military))
}

// Now reads src in the given zone.
func Now(src Source, loc *time.Location, second, military bool, layout string) (Date, Time) {
	t := src.Now().In(loc)
	return NewDate(t, layout), Snapshot(t, second, military)
}

// Snapshot renders the time of day of t.
func Snapshot(t time.Time, second, military bool) Time {
	hour := t.Hour()
	if !military {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	snap := make(Time, 0, Width(second, military))
	snap = append(snap, font.Digit(hour/10), font.Digit(hour%10), font.Colon)
	snap = append(snap, font.Digit(t.Minute()/10), font.Digit(t.Minute()%10))
	if second {
		snap = append(snap, font.Colon, font.Digit(t.Second()/10), font.Digit(t.Second()%10))
	}
	return snap
}

// Xor returns the cells that differ at each position. A position missing
// from the shorter operand counts as blank.
func (t Time) Xor(other Time) Time {
	n := len(t)
	if len(other) > n {
		n = len(other)
	}
	diff := make(Time, n)
	for i := range diff {
		if i < len(t) {
			diff[i] = t[i]
		}
		if i < len(other) {
			diff[i] ^= other[i]
		}
	}
	return diff
}

// Count returns the number of lit cells over all positions.
func (t Time) Count() int {
	n := 0
	for _, g := range t {
		n += g.Count()
	}
	return n
}
