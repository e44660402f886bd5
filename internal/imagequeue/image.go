// Package imagequeue splits images into animated tile grids and cycles
// through a list of them.
package imagequeue

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/ivlev/motionkit/internal/controller"
	"github.com/ivlev/motionkit/internal/curve"
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/grid"
	"github.com/ivlev/motionkit/internal/preset"
)

const (
	DefaultImageDuration   = 3.0
	DefaultImageTransition = "smooth"
	DefaultCurve           = curve.Sinusoidal
)

// Control is the external stop/reverse state applied to every tile.
type Control struct {
	Stopped bool
	Reverse bool
	// Controlled is the trigger used when no interaction mode is set.
	// nil means true.
	Controlled *bool
}

type ImageOptions struct {
	Pieces      int
	Modes       director.Modes
	Duration    float64
	Transition  string
	Curve       curve.Kind
	Dynamic     bool
	Custom      curve.Func
	FixedDelay  *float64
	Interaction grid.Mode
	Control     Control
	// Controller, if set, overrides Control.Stopped and Control.Reverse with
	// its current state each time configs are built.
	Controller *controller.Controller
	View       *director.ViewConfig
}

func (o ImageOptions) withDefaults() ImageOptions {
	if o.Pieces <= 0 {
		o.Pieces = grid.DefaultPieces
	}
	if o.Duration <= 0 {
		o.Duration = DefaultImageDuration
	}
	if o.Transition == "" {
		o.Transition = DefaultImageTransition
	}
	if o.Curve == "" {
		o.Curve = DefaultCurve
	}
	if o.View == nil {
		o.View = &director.ViewConfig{Once: true}
	}
	return o
}

// Image is one picture cut into a grid of animated tiles.
type Image struct {
	URL      string
	Layout   grid.Layout
	Triggers *grid.Triggers

	opts     ImageOptions
	director *director.Director
}

func NewImage(url string, opts ImageOptions, lib *preset.Library, logger hclog.Logger) *Image {
	opts = opts.withDefaults()
	d := director.NewDirector(lib, director.Options{
		Curve:      opts.Curve,
		Dynamic:    opts.Dynamic,
		FixedDelay: opts.FixedDelay,
		Custom:     opts.Custom,
	}, logger)
	return newImage(url, opts, d)
}

func newImage(url string, opts ImageOptions, d *director.Director) *Image {
	layout := grid.NewLayout(opts.Pieces)
	return &Image{
		URL:      url,
		Layout:   layout,
		Triggers: grid.NewTriggers(layout),
		opts:     opts,
		director: d,
	}
}

func (im *Image) Options() ImageOptions {
	return im.opts
}

// Interact feeds a pointer event at (x, y) on a w x h surface. Events that do
// not match the image's interaction mode are ignored.
func (im *Image) Interact(ev grid.Mode, x, y, w, h float64) []int {
	if !im.opts.Interaction.Accepts(ev) {
		return nil
	}
	return im.Triggers.Touch(x, y, w, h)
}

// Configs builds the per-tile element configs.
func (im *Image) Configs() []director.ElementConfig {
	stopped, reverse := im.control()
	configs := make([]director.ElementConfig, im.Layout.Pieces)
	for i := range configs {
		configs[i] = director.ElementConfig{
			Mode:       append(director.Modes(nil), im.opts.Modes...),
			Transition: im.opts.Transition,
			Duration:   director.Float(im.opts.Duration),
			Reverse:    reverse,
			Stopped:    stopped,
			Trigger:    im.trigger(i),
			View:       im.opts.View,
		}
	}
	return configs
}

func (im *Image) control() (stopped, reverse bool) {
	if c := im.opts.Controller; c != nil {
		st := c.State()
		return st.Stopped, st.Reverse
	}
	return im.opts.Control.Stopped, im.opts.Control.Reverse
}

func (im *Image) trigger(index int) *bool {
	var on bool
	if im.opts.Interaction != grid.ModeNone {
		on = im.Triggers.Triggered(index)
	} else {
		on = im.opts.Control.Controlled == nil || *im.opts.Control.Controlled
	}
	return &on
}

// Tiles returns the tile child names.
func (im *Image) Tiles() []string {
	tiles := make([]string, im.Layout.Pieces)
	for i := range tiles {
		tiles[i] = fmt.Sprintf("%s#%d", im.URL, i)
	}
	return tiles
}

// Elements resolves every tile through the image's director.
func (im *Image) Elements() ([]director.Element, error) {
	return im.director.Resolve(im.Tiles(), im.Configs())
}
