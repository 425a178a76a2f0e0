package font

// Glyph dimensions in cells.
const (
	W = 3
	H = 5
)

// Glyph is a 3x5 cell bitmap. Bit 14-i is cell i in row-major order,
// bits above 14 are always zero.
type Glyph uint16

const top Glyph = 1 << (W*H - 1)

const (
	Blank Glyph = 0

	Zero  Glyph = 0b111_101_101_101_111
	One   Glyph = 0b001_001_001_001_001
	Two   Glyph = 0b111_001_111_100_111
	Three Glyph = 0b111_001_111_001_111
	Four  Glyph = 0b101_101_111_001_001
	Five  Glyph = 0b111_100_111_001_111
	Six   Glyph = 0b111_100_111_101_111
	Seven Glyph = 0b111_001_001_001_001
	Eight Glyph = 0b111_101_111_101_111
	Nine  Glyph = 0b111_101_111_001_111

	Colon Glyph = 0b000_010_000_010_000
	Dash  Glyph = 0b000_000_111_000_000
)

var digits = [10]Glyph{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}

// Lookup returns the glyph for a digit, ':', '-' or ' '.
// Any other rune renders blank.
func Lookup(r rune) Glyph {
	switch {
	case r >= '0' && r <= '9':
		return digits[r-'0']
	case r == ':':
		return Colon
	case r == '-':
		return Dash
	}
	return Blank
}

// Digit returns the glyph for 0 <= n <= 9.
func Digit(n int) Glyph {
	return digits[n]
}

// Mask returns the bit for cell i.
func Mask(i int) Glyph {
	return top >> i
}

// Lit reports whether cell i is lit.
func (g Glyph) Lit(i int) bool {
	return g&Mask(i) != 0
}

// Cells returns the indices of lit cells in row-major order.
func (g Glyph) Cells() []int {
	var cells []int
	for i := 0; i < W*H; i++ {
		if g.Lit(i) {
			cells = append(cells, i)
		}
	}
	return cells
}

// Count returns the number of lit cells.
func (g Glyph) Count() int {
	n := 0
	for ; g != 0; g &= g - 1 {
		n++
	}
	return n
}

func (g Glyph) String() string {
	buf := make([]byte, 0, (W+1)*H)
	for i := 0; i < W*H; i++ {
		if g.Lit(i) {
			buf = append(buf, '#')
		} else {
			buf = append(buf, '.')
		}
		if i%W == W-1 && i < W*H-1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
