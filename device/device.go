package device

import "io"

// Device is the terminal the clock draws on. Writes are buffered until
// Flush.
type Device interface {
	io.Reader
	io.Writer
	Flush() error
	Size() (Size, error)
	NotifyResize(cb func())
	Close() error
}

type Size struct {
	Width  int
	Height int
}
