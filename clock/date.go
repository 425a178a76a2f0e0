package clock

import (
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// DateLayout renders dates as YYYY-MM-DD.
const DateLayout = "2006-01-02"

// Date is the calendar day shown under the digits. The zero Date never
// equals a real one, which forces the first repaint.
type Date struct {
	Year  int
	Month time.Month
	Day   int
	text  string
}

func NewDate(t time.Time, layout string) Date {
	if layout == "" {
		layout = DateLayout
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d, text: norm.NFC.String(t.Format(layout))}
}

func (d Date) String() string {
	return d.text
}

// Width returns the number of terminal columns the date occupies.
func (d Date) Width() int {
	return runewidth.StringWidth(d.text)
}

func (d Date) IsZero() bool {
	return d == Date{}
}
