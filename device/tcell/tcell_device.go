package tcell

import (
	"bufio"
	"fmt"
	"log"

	"tock/device"
	"tock/term"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

type tcellDevice struct {
	tty tcell.Tty
	out *bufio.Writer
}

// NewDevice puts /dev/tty in raw mode and switches to the alternate screen.
func NewDevice() (device.Device, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, errors.Wrap(err, "open tty")
	}
	if err := tty.Start(); err != nil {
		_ = tty.Close()
		return nil, errors.Wrap(err, "start tty")
	}

	d := &tcellDevice{tty: tty, out: bufio.NewWriter(tty)}
	fmt.Fprintf(d.out, "%s%s%s", term.AltScreen, term.HideCursor, term.Clear)
	if err := d.Flush(); err != nil {
		_ = tty.Stop()
		_ = tty.Close()
		return nil, err
	}
	return d, nil
}

func (d *tcellDevice) Read(p []byte) (int, error) {
	return d.tty.Read(p)
}

func (d *tcellDevice) Write(p []byte) (int, error) {
	return d.out.Write(p)
}

// Flush drops the buffered bytes on failure so the next frame starts clean.
func (d *tcellDevice) Flush() error {
	if err := d.out.Flush(); err != nil {
		d.out.Reset(d.tty)
		return errors.Wrap(err, "write tty")
	}
	return nil
}

func (d *tcellDevice) Size() (device.Size, error) {
	w, h, err := d.tty.WindowSize()
	if err != nil {
		return device.Size{}, errors.Wrap(err, "window size")
	}
	return device.Size{Width: w, Height: h}, nil
}

func (d *tcellDevice) NotifyResize(cb func()) {
	d.tty.NotifyResize(cb)
}

// Close restores the cursor, colors and main screen and leaves raw mode.
func (d *tcellDevice) Close() error {
	fmt.Fprintf(d.out, "%s%s%s%s", term.Reset, term.Clear, term.ShowCursor, term.ExitAltScreen)
	if err := d.Flush(); err != nil {
		log.Printf("[WARN] device: restore terminal: %v", err)
	}
	if err := d.tty.Stop(); err != nil {
		return errors.Wrap(err, "stop tty")
	}
	return nil
}
