package app

type Event any

type Tick struct{}

type Resize struct{}

// Key is one byte read from the terminal in raw mode.
type Key byte

// InputClosed reports that the terminal can no longer be read.
type InputClosed struct {
	Err error
}

const keyCtrlC = 0x03
