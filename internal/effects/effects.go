package effects

import (
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/preset"
)

// Phase tells which half of an element's animation is showing.
type Phase string

const (
	PhaseInitial Phase = "initial"
	PhaseAnimate Phase = "animate"
	PhaseStopped Phase = "stopped"
)

// Frame is what the renderer is asked to play for one element: start from
// Initial, move to Active using Transition.
type Frame struct {
	Phase      Phase
	Initial    preset.Style
	Active     preset.Style
	Transition preset.Transition
}

// Effect turns a resolved element plus its visibility into a frame.
type Effect interface {
	Frame(el director.Element, visible bool) Frame
}

// Container applies the stop > trigger > visibility precedence.
type Container struct {
	Library *preset.Library
}

func NewContainer(lib *preset.Library) *Container {
	if lib == nil {
		lib = preset.Default()
	}
	return &Container{Library: lib}
}

// Frame resolves the active state of el.
//
//  1. Stopped: both halves are blended over the opacity preset and the
//     animate half is shown with no delay.
//  2. Explicit trigger: animate when true, initial when false.
//  3. Otherwise: animate when visible, initial when not.
func (c *Container) Frame(el director.Element, visible bool) Frame {
	tr := c.Resolve(el)

	if el.Stopped {
		fade := c.Library.Preset(preset.Opacity)
		tr.Delay = 0
		return Frame{
			Phase:      PhaseStopped,
			Initial:    overlay(fade.Initial, el.Initial),
			Active:     overlay(fade.Animate, el.Animate),
			Transition: tr,
		}
	}

	on := visible
	if el.Trigger != nil {
		on = *el.Trigger
	}

	f := Frame{Initial: el.Initial.Clone(), Transition: tr}
	if on {
		f.Phase = PhaseAnimate
		f.Active = el.Animate.Clone()
	} else {
		f.Phase = PhaseInitial
		f.Active = el.Initial.Clone()
	}
	return f
}

// Resolve looks up the element's transition profile. The element's own
// duration wins when set and its delay is carried over.
func (c *Container) Resolve(el director.Element) preset.Transition {
	tr := c.Library.Transition(el.Transition)
	if el.Duration != 0 {
		tr.Duration = el.Duration
	}
	tr.Delay = el.Delay
	return tr
}

func overlay(base, top preset.Style) preset.Style {
	out := base.Clone()
	for k, v := range top {
		out[k] = v
	}
	return out
}
