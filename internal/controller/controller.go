// Package controller debounces stop and reverse requests for an animated
// element.
package controller

import (
	"sync"
	"time"
)

// DefaultRecall is the debounce delay used when none is given.
const DefaultRecall = 100 * time.Millisecond

// State is the externally visible animation state.
type State struct {
	Stopped bool
	Reverse bool
}

// Timer is the subset of *time.Timer the controller needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Controller holds at most one pending delayed transition. Every Set and Close
// cancels it, and a timer that fires after being superseded is ignored.
type Controller struct {
	// OnChange, if set, is called with each new state outside the lock.
	OnChange func(State)

	mu      sync.Mutex
	state   State
	recall  time.Duration
	after   AfterFunc
	pending Timer
	gen     uint64
}

func New(recall time.Duration) *Controller {
	return NewWithTimer(recall, realAfterFunc)
}

// NewWithTimer is New with an injectable scheduler.
func NewWithTimer(recall time.Duration, after AfterFunc) *Controller {
	if recall <= 0 {
		recall = DefaultRecall
	}
	if after == nil {
		after = realAfterFunc
	}
	return &Controller{recall: recall, after: after}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Set applies a stop/reverse request.
//
//	stop, !reverse: stopped and reversed now, then stopped after the recall delay
//	stop, reverse:  stopped now, then reset after the recall delay
//	otherwise:      running, reversed as asked
func (c *Controller) Set(stop, reverse bool) {
	c.mu.Lock()
	c.cancelLocked()

	var next *State
	switch {
	case stop && !reverse:
		c.state = State{Stopped: true, Reverse: true}
		next = &State{Stopped: true}
	case stop && reverse:
		c.state = State{Stopped: true}
		next = &State{}
	default:
		c.state = State{Reverse: reverse}
	}
	now := c.state

	if next != nil {
		gen := c.gen
		target := *next
		c.pending = c.after(c.recall, func() { c.fire(gen, target) })
	}
	c.mu.Unlock()

	c.notify(now)
}

// Close cancels the pending transition, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancelLocked()
	c.mu.Unlock()
}

// Pending reports whether a delayed transition is scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

func (c *Controller) cancelLocked() {
	c.gen++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) fire(gen uint64, s State) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state = s
	c.pending = nil
	c.mu.Unlock()

	c.notify(s)
}

func (c *Controller) notify(s State) {
	if c.OnChange != nil {
		c.OnChange(s)
	}
}
