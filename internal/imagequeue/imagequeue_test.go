package imagequeue

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ivlev/motionkit/internal/controller"
	"github.com/ivlev/motionkit/internal/curve"
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/grid"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) controller.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

func TestImageDefaults(t *testing.T) {
	im := NewImage("cat.png", ImageOptions{Modes: director.Modes{"fadeIn"}}, nil, nil)
	opts := im.Options()

	if opts.Pieces != 144 || opts.Duration != 3 || opts.Transition != "smooth" || opts.Curve != curve.Sinusoidal {
		t.Errorf("Unexpected defaults: %+v", opts)
	}
	if im.Layout.Columns != 12 || im.Layout.Rows != 12 {
		t.Errorf("Expected 12x12 grid, got %dx%d", im.Layout.Columns, im.Layout.Rows)
	}
	if len(im.Tiles()) != 144 || im.Tiles()[3] != "cat.png#3" {
		t.Errorf("Unexpected tiles: %v", im.Tiles()[:4])
	}
}

func TestImageControlledTrigger(t *testing.T) {
	off := false
	tests := []struct {
		name       string
		controlled *bool
		want       bool
	}{
		{"default", nil, true},
		{"explicit off", &off, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewImage("a.png", ImageOptions{Pieces: 4, Control: Control{Controlled: tt.controlled}}, nil, nil)
			for i, cfg := range im.Configs() {
				if cfg.Trigger == nil || *cfg.Trigger != tt.want {
					t.Errorf("Tile %d: expected trigger %v, got %v", i, tt.want, cfg.Trigger)
				}
			}
		})
	}
}

func TestImageInteraction(t *testing.T) {
	im := NewImage("a.png", ImageOptions{Pieces: 9, Interaction: grid.ModeHover}, nil, nil)

	if got := im.Interact(grid.ModeClick, 5, 5, 90, 90); got != nil {
		t.Errorf("Click should be ignored in hover mode, got %v", got)
	}
	if diff := cmp.Diff([]int{0, 1, 3, 4}, im.Interact(grid.ModeHover, 5, 5, 90, 90)); diff != "" {
		t.Errorf("Hover mismatch (-want +got):\n%s", diff)
	}

	var triggered []int
	for i, cfg := range im.Configs() {
		if *cfg.Trigger {
			triggered = append(triggered, i)
		}
	}
	if diff := cmp.Diff([]int{0, 1, 3, 4}, triggered); diff != "" {
		t.Errorf("Triggered tiles mismatch (-want +got):\n%s", diff)
	}
}

func TestImageElements(t *testing.T) {
	im := NewImage("a.png", ImageOptions{
		Pieces:  4,
		Modes:   director.Modes{"fadeIn"},
		Control: Control{Reverse: true},
	}, nil, nil)

	elements, err := im.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	if len(elements) != 4 {
		t.Fatalf("Expected 4 elements, got %d", len(elements))
	}

	var delays []float64
	for _, el := range elements {
		delays = append(delays, el.Delay)
		if el.Transition != "smooth" || el.Duration != 3 || !el.Reverse {
			t.Errorf("Tile %d: unexpected element %+v", el.Index, el)
		}
	}
	// Static queues use the custom path, which is linear without a function.
	if diff := cmp.Diff([]float64{0, 0.5, 1, 1.5}, delays); diff != "" {
		t.Errorf("Delays mismatch (-want +got):\n%s", diff)
	}
	// Reversed: the animate half comes first.
	if diff := cmp.Diff(1, elements[0].Initial["opacity"]); diff != "" {
		t.Errorf("Reverse mix mismatch (-want +got):\n%s", diff)
	}
}

func TestImageController(t *testing.T) {
	clock := &fakeClock{}
	c := controller.NewWithTimer(controller.DefaultRecall, clock.AfterFunc)
	im := NewImage("a.png", ImageOptions{
		Pieces:     4,
		Control:    Control{Reverse: true},
		Controller: c,
	}, nil, nil)

	check := func(stage string, stopped, reverse bool) {
		t.Helper()
		for i, cfg := range im.Configs() {
			if cfg.Stopped != stopped || cfg.Reverse != reverse {
				t.Errorf("%s: tile %d stopped=%v reverse=%v, expected %v/%v",
					stage, i, cfg.Stopped, cfg.Reverse, stopped, reverse)
			}
		}
	}

	// The controller wins over the static control, even when idle.
	check("idle", false, false)

	c.Set(true, false)
	check("stop", true, true)

	clock.last().f()
	check("recalled", true, false)

	c.Set(false, true)
	check("reverse", false, true)
}

func newTestQueue(clock *fakeClock) *Queue {
	return NewQueueWithTimer(QueueOptions{
		Images:  []string{"a.png", "b.png", "c.png"},
		Enter:   director.Modes{"fadeIn"},
		Exit:    director.Modes{"fadeOut"},
		Dynamic: true,
	}, nil, nil, clock.AfterFunc)
}

func TestQueueCycle(t *testing.T) {
	clock := &fakeClock{}
	q := newTestQueue(clock)

	// The t=0 tick already advanced to the next image.
	if _, index, modes := q.State(); index != 1 || modes[0] != "fadeIn" {
		t.Fatalf("Initial state: index=%d modes=%v", index, modes)
	}

	q.Tick() // t=1
	if clock.last() != nil {
		t.Fatal("No exit should be scheduled before the midpoint")
	}

	q.Tick() // t=2, midpoint
	timer := clock.last()
	if timer == nil || timer.d != time.Second {
		t.Fatalf("Expected exit scheduled after 1s, got %+v", timer)
	}
	if !q.Pending() {
		t.Error("Expected pending exit")
	}

	timer.f()
	if _, index, modes := q.State(); index != 1 || modes[0] != "fadeOut" {
		t.Errorf("After exit: index=%d modes=%v", index, modes)
	}

	q.Tick() // t=3
	q.Tick() // t=4
	if _, index, modes := q.State(); index != 2 || modes[0] != "fadeIn" {
		t.Errorf("Second cycle: index=%d modes=%v", index, modes)
	}

	for i := 0; i < 4; i++ {
		q.Tick()
	}
	if tick, index, _ := q.State(); tick != 8 || index != 0 {
		t.Errorf("Expected wrap to image 0 at t=8, got index=%d tick=%d", index, tick)
	}
}

func TestQueueOnChange(t *testing.T) {
	clock := &fakeClock{}

	var got []int
	q := NewQueueWithTimer(QueueOptions{
		Images:  []string{"a.png", "b.png", "c.png"},
		Enter:   director.Modes{"fadeIn"},
		Exit:    director.Modes{"fadeOut"},
		Dynamic: true,
		OnChange: func(index int, modes director.Modes) {
			got = append(got, index)
		},
	}, nil, nil, clock.AfterFunc)

	if diff := cmp.Diff([]int{1}, got); diff != "" {
		t.Fatalf("The t=0 enter should be reported (-want +got):\n%s", diff)
	}

	for i := 0; i < 4; i++ {
		q.Tick()
	}
	clock.timers[0].f()

	// The stale exit from the first cycle was cancelled by the t=4 enter.
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("OnChange mismatch (-want +got):\n%s", diff)
	}
	if _, _, modes := q.State(); modes[0] != "fadeIn" {
		t.Errorf("Stale exit applied: %v", modes)
	}
}

func TestQueueClose(t *testing.T) {
	clock := &fakeClock{}
	q := newTestQueue(clock)
	q.Tick()
	q.Tick()

	timer := clock.last()
	q.Close()
	if !timer.stopped || q.Pending() {
		t.Error("Close should cancel the scheduled exit")
	}

	timer.f()
	q.Tick()
	if tick, _, modes := q.State(); tick != 2 || modes[0] != "fadeIn" {
		t.Errorf("Closed queue changed: tick=%d modes=%v", tick, modes)
	}
}

func TestQueueStatic(t *testing.T) {
	clock := &fakeClock{}
	q := NewQueueWithTimer(QueueOptions{Images: []string{"a.png", "b.png"}}, nil, nil, clock.AfterFunc)
	for i := 0; i < 10; i++ {
		q.Tick()
	}
	if _, index, _ := q.State(); index != 0 || clock.last() != nil {
		t.Errorf("Static queue should not cycle, index=%d", index)
	}
}

func TestQueueCurrentController(t *testing.T) {
	c := controller.New(controller.DefaultRecall)
	defer c.Close()

	q := NewQueueWithTimer(QueueOptions{
		Images:     []string{"a.png", "b.png"},
		Pieces:     4,
		Dynamic:    true,
		Controller: c,
	}, nil, nil, (&fakeClock{}).AfterFunc)

	im, ok := q.Current()
	if !ok {
		t.Fatal("Expected a current image")
	}
	c.Set(false, true)
	for i, cfg := range im.Configs() {
		if !cfg.Reverse || cfg.Stopped {
			t.Errorf("Tile %d should follow the controller, got %+v", i, cfg)
		}
	}
}

func TestQueueCurrent(t *testing.T) {
	empty := NewQueueWithTimer(QueueOptions{Dynamic: true}, nil, nil, (&fakeClock{}).AfterFunc)
	if _, ok := empty.Current(); ok {
		t.Error("Expected no current image without images")
	}

	q := newTestQueue(&fakeClock{})
	im, ok := q.Current()
	if !ok {
		t.Fatal("Expected a current image")
	}
	if im.URL != "b.png" || im.Layout.Pieces != 121 || im.Options().Duration != 1 {
		t.Errorf("Unexpected current image: %s %d pieces %vs", im.URL, im.Layout.Pieces, im.Options().Duration)
	}

	elements, err := im.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	for _, el := range elements {
		if el.Trigger == nil || !*el.Trigger {
			t.Fatalf("Tile %d should be triggered", el.Index)
		}
	}

	again, _ := q.Current()
	if again != im {
		t.Error("Current should be cached until the image or animation changes")
	}
}
