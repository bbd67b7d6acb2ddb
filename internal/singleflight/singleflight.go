// Package singleflight guards the sync pipeline so at most one run is in
// flight at a time. A caller that loses the race is rejected, not queued.
package singleflight

import "sync"

type Coordinator struct {
	mu      sync.Mutex
	running bool
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// TryStart claims the running slot. It returns false when a run is already
// in flight. A successful claim must be released with Done on every exit
// path, including panics (defer it immediately).
func (c *Coordinator) TryStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return false
	}
	c.running = true
	return true
}

// Done releases the running slot.
func (c *Coordinator) Done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// IsRunning reports whether a run is currently in flight.
func (c *Coordinator) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
