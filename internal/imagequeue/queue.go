package imagequeue

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/ivlev/motionkit/internal/controller"
	"github.com/ivlev/motionkit/internal/curve"
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/grid"
	"github.com/ivlev/motionkit/internal/preset"
)

const (
	DefaultQueueDuration = 2.0
	DefaultQueuePieces   = 121
	TickInterval         = time.Second
)

type QueueOptions struct {
	Images      []string
	Enter       director.Modes
	Exit        director.Modes
	Duration    float64
	Pieces      int
	Transition  string
	Curve       curve.Kind
	Dynamic     bool
	Custom      curve.Func
	Interaction grid.Mode
	View        *director.ViewConfig
	// Controller, if set, supplies stop/reverse for every shown image.
	Controller *controller.Controller
	// OnChange, if set, is called outside the lock whenever the shown image
	// or its animation changes, including the first image at t=0.
	OnChange func(index int, modes director.Modes)
}

func (o QueueOptions) withDefaults() QueueOptions {
	if o.Duration <= 0 {
		o.Duration = DefaultQueueDuration
	}
	if o.Pieces <= 0 {
		o.Pieces = DefaultQueuePieces
	}
	if o.Transition == "" {
		o.Transition = DefaultImageTransition
	}
	if o.Curve == "" {
		o.Curve = DefaultCurve
	}
	if o.View == nil {
		o.View = &director.ViewConfig{}
	}
	return o
}

// Queue cycles through images on a one second clock. Each cycle lasts twice
// the duration: the next image enters at the start, and the exit animation
// takes over half a duration after the midpoint.
type Queue struct {
	opts     QueueOptions
	director *director.Director
	logger   hclog.Logger
	after    controller.AfterFunc

	mu      sync.Mutex
	tick    int
	index   int
	modes   director.Modes
	image   *Image
	pending controller.Timer
	gen     uint64
	closed  bool
}

func NewQueue(opts QueueOptions, lib *preset.Library, logger hclog.Logger) *Queue {
	return NewQueueWithTimer(opts, lib, logger, nil)
}

// NewQueueWithTimer is NewQueue with an injectable scheduler for the exit
// switch. The tick at t=0 is evaluated before it returns.
func NewQueueWithTimer(opts QueueOptions, lib *preset.Library, logger hclog.Logger, after controller.AfterFunc) *Queue {
	opts = opts.withDefaults()
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if after == nil {
		after = func(d time.Duration, f func()) controller.Timer {
			return time.AfterFunc(d, f)
		}
	}

	q := &Queue{
		opts:   opts,
		logger: logger,
		after:  after,
		modes:  opts.Enter,
		director: director.NewDirector(lib, director.Options{
			Curve:   opts.Curve,
			Dynamic: opts.Dynamic,
			Custom:  opts.Custom,
		}, logger),
	}

	q.mu.Lock()
	changed := q.evaluateLocked()
	index, modes := q.index, q.modes
	q.mu.Unlock()
	if changed {
		q.notify(index, modes)
	}
	return q
}

// Tick advances the clock by one second.
func (q *Queue) Tick() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.tick++
	changed := q.evaluateLocked()
	index, modes := q.index, q.modes
	q.mu.Unlock()

	if changed {
		q.notify(index, modes)
	}
}

// Run ticks until ctx is done, then closes the queue.
func (q *Queue) Run(ctx context.Context) error {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	defer q.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			q.Tick()
		}
	}
}

func (q *Queue) evaluateLocked() bool {
	n := len(q.opts.Images)
	if !q.opts.Dynamic || n == 0 {
		return false
	}

	dur := q.opts.Duration
	phase := math.Mod(float64(q.tick), dur*2)

	switch phase {
	case 0:
		q.cancelLocked()
		q.index = (q.index + 1) % n
		q.modes = q.opts.Enter
		q.image = nil
		q.logger.Debug("image entering", "index", q.index, "tick", q.tick)
		return true
	case dur:
		q.cancelLocked()
		gen := q.gen
		wait := time.Duration(dur / 2 * float64(time.Second))
		q.pending = q.after(wait, func() { q.exit(gen) })
	}
	return false
}

func (q *Queue) exit(gen uint64) {
	q.mu.Lock()
	if q.closed || gen != q.gen {
		q.mu.Unlock()
		return
	}
	q.pending = nil
	q.modes = q.opts.Exit
	q.image = nil
	index, modes := q.index, q.modes
	q.mu.Unlock()

	q.logger.Debug("image exiting", "index", index)
	q.notify(index, modes)
}

func (q *Queue) cancelLocked() {
	q.gen++
	if q.pending != nil {
		q.pending.Stop()
		q.pending = nil
	}
}

// Close cancels a scheduled exit switch and stops further ticks.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cancelLocked()
}

// Pending reports whether an exit switch is scheduled.
func (q *Queue) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending != nil
}

// Current returns the image being shown. Tiles run for half the cycle duration
// and are always triggered. It reports false when there are no images.
func (q *Queue) Current() (*Image, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.opts.Images) == 0 {
		return nil, false
	}
	if q.image == nil {
		on := true
		q.image = newImage(q.opts.Images[q.index], ImageOptions{
			Pieces:      q.opts.Pieces,
			Modes:       q.modes,
			Duration:    q.opts.Duration / 2,
			Transition:  q.opts.Transition,
			Curve:       q.opts.Curve,
			Dynamic:     q.opts.Dynamic,
			Custom:      q.opts.Custom,
			Interaction: q.opts.Interaction,
			Control:     Control{Controlled: &on},
			Controller:  q.opts.Controller,
			View:        q.opts.View,
		}, q.director)
	}
	return q.image, true
}

// State returns the clock, the shown image index and its animation.
func (q *Queue) State() (tick, index int, modes director.Modes) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tick, q.index, append(director.Modes(nil), q.modes...)
}

func (q *Queue) notify(index int, modes director.Modes) {
	if q.opts.OnChange != nil {
		q.opts.OnChange(index, append(director.Modes(nil), modes...))
	}
}
