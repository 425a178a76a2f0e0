package view

import (
	"fmt"
	"io"
	"log"
	"time"

	"tock/clock"
	"tock/font"
	"tock/term"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// Output is a buffered terminal writer.
type Output interface {
	io.Writer
	Flush() error
}

type Config struct {
	X, Y       int
	W, H       int // cell size in columns and rows
	Zone       *time.Location
	Color      termenv.Color
	Second     bool
	Military   bool
	DateLayout string
	Source     clock.Source
}

//  H       H       :       M       M       :       S       S
// ...|    ...|    ...|    ...|    ...|    ...|    ...|    ...
// ...|    ...|    ...|    ...|    ...|    ...|    ...|    ...
// ...|    ...|    ...|    ...|    ...|    ...|    ...|    ...
// ...|    ...|    ...|    ...|    ...|    ...|    ...|    ...
// ...|    ...|    ...|    ...|    ...|    ...|    ...|    ...
//
//                      YYYY-MM-DD
type Clock struct {
	x, y     int
	w, h     int
	zone     *time.Location
	layout   string
	source   clock.Source
	color    term.Paint
	second   bool
	military bool

	date     clock.Date
	dateSpan span
	time     clock.Time
	stale    bool
	// cleared is set while a clear sits in out and has not been flushed.
	cleared bool
}

// span is a run of columns last written on one row.
type span struct {
	x, y, width int
}

// Start creates a clock holding a blank snapshot. Nothing is written until
// the first Draw.
func Start(cfg Config) (*Clock, error) {
	if cfg.W < 1 || cfg.H < 1 {
		return nil, errors.Errorf("invalid cell size %dx%d", cfg.W, cfg.H)
	}
	if cfg.Color == nil {
		return nil, errors.New("missing clock color")
	}
	if cfg.Zone == nil {
		cfg.Zone = time.Local
	}
	if cfg.Source == nil {
		cfg.Source = clock.System{}
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = clock.DateLayout
	}
	return &Clock{
		x:        cfg.X,
		y:        cfg.Y,
		w:        cfg.W,
		h:        cfg.H,
		zone:     cfg.Zone,
		layout:   cfg.DateLayout,
		source:   cfg.Source,
		color:    term.Background(cfg.Color),
		second:   cfg.Second,
		military: cfg.Military,
		time:     clock.Blank(cfg.Second, cfg.Military),
	}, nil
}

// ToggleSecond, ToggleMilitary, SetColor and Center change the layout or
// the paint of every lit cell, so the next Draw starts with a Reset.

func (c *Clock) ToggleSecond() {
	c.second = !c.second
	c.stale = true
}

func (c *Clock) ToggleMilitary() {
	c.military = !c.military
	c.stale = true
}

func (c *Clock) SetColor(color termenv.Color) {
	c.color = term.Background(color)
	c.stale = true
}

// Center places the clock in the middle of a width x height terminal.
func (c *Clock) Center(width, height int) {
	c.x = max(width/2-c.Width()/2, 0)
	c.y = max(height/2-c.Height()/2, 0)
	c.stale = true
}

// Invalidate makes the next Draw start with a Reset, e.g. after the
// terminal was resized and may have scrolled or reflowed.
func (c *Clock) Invalidate() {
	c.stale = true
}

func (c *Clock) Position() (x, y int) { return c.x, c.y }
func (c *Clock) Second() bool         { return c.second }
func (c *Clock) Military() bool       { return c.military }

// Stale reports whether the next Draw repaints from scratch.
func (c *Clock) Stale() bool { return c.stale }

// Reset forgets what was drawn and clears the screen, so the next Draw
// repaints every lit cell. The clear only counts once a Draw has flushed
// it; until then a failed Draw makes the clock stale again.
func (c *Clock) Reset(out Output) error {
	c.date = clock.Date{}
	c.dateSpan = span{}
	c.time = clock.Blank(c.second, c.military)
	c.stale = false
	c.cleared = true
	log.Printf("[DEBUG] view: reset at %d,%d second=%v military=%v", c.x, c.y, c.second, c.military)
	if _, err := fmt.Fprintf(out, "%s%s", term.Reset, term.Clear); err != nil {
		c.stale = true
		return errors.Wrap(err, "reset")
	}
	return nil
}

// Sync sleeps until the next whole second, best effort.
func (c *Clock) Sync() {
	clock.Sync(c.source)
}

// Draw repaints the cells that changed since the previous Draw, the date
// line when the day changed, and flushes out.
func (c *Clock) Draw(out Output) (err error) {
	defer func() {
		if err != nil && c.cleared {
			c.stale = true
		}
	}()

	if c.stale {
		if err := c.Reset(out); err != nil {
			return err
		}
	}

	date, now := clock.Now(c.source, c.zone, c.second, c.military, c.layout)
	diff := c.time.Xor(now)

	for digit := range diff {
		dx := c.x + (font.W+1)*c.w*digit
		dy := c.y

		for i := 0; i < font.W*font.H; i++ {
			if !diff[digit].Lit(i) {
				continue
			}
			color := term.Reset
			if digit < len(now) && now[digit].Lit(i) {
				color = c.color
			}
			x := i%font.W*c.w + dx
			y := i/font.W*c.h + dy
			for j := 0; j < c.h; j++ {
				if _, err := fmt.Fprintf(out, "%s%s%s", color, term.Move(x, y+j), term.Blank(c.w)); err != nil {
					return errors.Wrapf(err, "draw digit %d", digit)
				}
			}
		}
	}

	dateSpan := c.dateSpan
	if date != c.date {
		if dateSpan, err = c.drawDate(out, date); err != nil {
			return err
		}
	}

	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	if n := diff.Count(); n > 0 {
		log.Printf("[TRACE] view: repainted %d cells", n)
	}
	c.cleared = false
	c.date = date
	c.dateSpan = dateSpan
	c.time = now
	return nil
}

// drawDate writes the date line and returns the span it covers. The
// previous span is blanked first when the new one does not cover it.
func (c *Clock) drawDate(out Output, date clock.Date) (span, error) {
	at := span{x: c.dateColumn(date), y: c.y + c.Height() + 1}
	line := term.Reset.String() + term.Move(at.x, at.y) + date.String()
	at.width = term.PrintableWidth(line)

	prev := c.dateSpan
	if prev.width > 0 && (prev.x < at.x || prev.x+prev.width > at.x+at.width || prev.y != at.y) {
		if _, err := fmt.Fprintf(out, "%s%s%s", term.Reset, term.Move(prev.x, prev.y), term.Blank(prev.width)); err != nil {
			return prev, errors.Wrap(err, "erase date")
		}
	}
	if _, err := io.WriteString(out, line); err != nil {
		return prev, errors.Wrap(err, "draw date")
	}
	return at, nil
}

func (c *Clock) dateColumn(date clock.Date) int {
	return max(c.x+c.Width()/2-date.Width()/2, 0)
}

func (c *Clock) digits() int {
	return clock.Width(c.second, c.military)
}

// Width returns the clock width in columns, without trailing gap.
func (c *Clock) Width() int {
	return c.w*(font.W+1)*c.digits() - 1
}

// Height returns the digit height in rows, without the date line.
func (c *Clock) Height() int {
	return c.h * font.H
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
