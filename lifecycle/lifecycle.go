package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle stops background goroutines and waits for them.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

// Stopping is closed once Stop is called.
func (lc *Lifecycle) Stopping() <-chan struct{} {
	return lc.ctx.Done()
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
