package clock

import (
	"time"

	"github.com/pkg/errors"
)

// Source supplies wall time. Tests replace it with a fixed or stepping source.
type Source interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now() }

type SourceFunc func() time.Time

func (f SourceFunc) Now() time.Time { return f() }

// LoadZone resolves an IANA zone name. Empty name and "Local" mean the
// system zone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown time zone %q", name)
	}
	return loc, nil
}

// UntilNextSecond returns the time left to the next whole second after t.
func UntilNextSecond(t time.Time) time.Duration {
	return time.Second - time.Duration(t.Nanosecond())
}

// Sync sleeps until the next whole second, best effort.
func Sync(src Source) {
	time.Sleep(UntilNextSecond(src.Now()))
}
