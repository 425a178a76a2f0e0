package app

import (
	"log"
	"time"

	"tock/clock"
	"tock/device"
	"tock/lifecycle"
	"tock/stream"
	"tock/term"
	"tock/view"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// maxFailures is the number of consecutive draw failures tolerated before
// Run gives up.
const maxFailures = 3

type Config struct {
	View    view.Config
	Center  bool
	Profile termenv.Profile
}

type app struct {
	dev      device.Device
	clock    *view.Clock
	source   clock.Source
	center   bool
	profile  termenv.Profile
	failures int
}

// Run draws the clock on dev once per second until the user quits.
func Run(dev device.Device, cfg Config) error {
	clk, err := view.Start(cfg.View)
	if err != nil {
		return err
	}
	source := cfg.View.Source
	if source == nil {
		source = clock.System{}
	}
	a := &app{dev: dev, clock: clk, source: source, center: cfg.Center, profile: cfg.Profile}

	events := stream.NewStream[Event]("events")
	defer events.Close()

	lc := lifecycle.New()
	defer lc.Stop()

	lc.Started()
	go a.ticker(lc, events)
	go a.reader(events)
	dev.NotifyResize(func() { events.Push(Resize{}) })

	if a.center {
		if err := a.recenter(); err != nil {
			return err
		}
	}

	for {
		if err := a.draw(); err != nil {
			return err
		}
		event, ok := events.Pull()
		if !ok {
			return nil
		}
		for _, event := range append([]Event{event}, events.PullAll()...) {
			quit, err := a.handleEvent(event)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (a *app) ticker(lc *lifecycle.Lifecycle, events *stream.Stream[Event]) {
	defer lc.Done()
	for {
		timer := time.NewTimer(clock.UntilNextSecond(a.source.Now()))
		select {
		case <-lc.Stopping():
			timer.Stop()
			return
		case <-timer.C:
			events.Push(Tick{})
		}
	}
}

// reader is not tracked by the lifecycle: Read only returns once the
// device is closed.
func (a *app) reader(events *stream.Stream[Event]) {
	buf := make([]byte, 64)
	for {
		n, err := a.dev.Read(buf)
		for _, b := range buf[:n] {
			events.Push(Key(b))
		}
		if err != nil {
			events.Push(InputClosed{Err: err})
			return
		}
	}
}

func (a *app) draw() error {
	err := a.clock.Draw(a.dev)
	if err == nil {
		a.failures = 0
		return nil
	}
	a.failures++
	log.Printf("[WARN] app: draw failed (%d/%d): %v", a.failures, maxFailures, err)
	if a.failures >= maxFailures {
		return errors.Wrapf(err, "giving up after %d failed draws", a.failures)
	}
	return nil
}

func (a *app) handleEvent(event Event) (quit bool, err error) {
	switch event := event.(type) {
	case Tick:

	case Resize:
		log.Printf("[DEBUG] app: resize")
		if a.center {
			return false, a.recenter()
		}
		a.clock.Invalidate()

	case Key:
		return a.handleKey(event)

	case InputClosed:
		log.Printf("[INFO] app: input closed: %v", event.Err)
		return true, nil

	default:
		log.Printf("[ERROR] app: unhandled event %#v", event)
	}
	return false, nil
}

func (a *app) handleKey(key Key) (quit bool, err error) {
	log.Printf("[DEBUG] app: key %q", rune(key))
	switch {
	case key == 'q' || key == 'Q' || key == keyCtrlC:
		return true, nil

	case key == 's':
		a.clock.ToggleSecond()

	case key == 'm':
		a.clock.ToggleMilitary()

	case key >= '0' && key <= '7':
		a.clock.SetColor(term.ANSI(int(key-'0'), a.profile))

	default:
		return false, nil
	}

	if a.center {
		return false, a.recenter()
	}
	return false, nil
}

func (a *app) recenter() error {
	size, err := a.dev.Size()
	if err != nil {
		return err
	}
	a.clock.Center(size.Width, size.Height)
	x, y := a.clock.Position()
	log.Printf("[DEBUG] app: centered at %d,%d in %dx%d (second=%v military=%v)",
		x, y, size.Width, size.Height, a.clock.Second(), a.clock.Military())
	return nil
}
