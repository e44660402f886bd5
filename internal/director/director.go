package director

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/ivlev/motionkit/internal/curve"
	"github.com/ivlev/motionkit/internal/preset"
)

const (
	DefaultBaseDuration    = 0.5
	DefaultElementDuration = 0.5
)

var ErrLengthMismatch = errors.New("animations and children should have the same length")

// Options configure how a queue staggers its elements.
type Options struct {
	Curve curve.Kind
	// BaseDuration scales the curve; nil means DefaultBaseDuration. An explicit
	// 0 collapses every computed delay to 0.
	BaseDuration *float64
	// Dynamic computes every delay from Curve. Otherwise the custom path is used,
	// which is linear unless Custom is set.
	Dynamic bool
	// FixedDelay, when set, replaces every computed delay.
	FixedDelay *float64
	Custom     curve.Func
}

// Director resolves a queue of children into per-element animation configs.
// It owns one curve engine, so it must not be shared between queues. Calling
// Resolve again continues the stateful curves where the last call stopped.
type Director struct {
	Library *preset.Library
	Logger  hclog.Logger

	opts   Options
	engine *curve.Engine
}

// NewDirector creates a Director with a fresh curve engine.
func NewDirector(lib *preset.Library, opts Options, logger hclog.Logger) *Director {
	if lib == nil {
		lib = preset.Default()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.BaseDuration == nil {
		base := DefaultBaseDuration
		opts.BaseDuration = &base
	}
	if opts.Curve == "" {
		opts.Curve = curve.Linear
	}
	return &Director{
		Library: lib,
		Logger:  logger,
		opts:    opts,
		engine:  curve.NewEngine(),
	}
}

func (d *Director) Options() Options {
	return d.opts
}

// Resolve pairs children with configs by position. A count mismatch resolves
// nothing: the warning is logged and ErrLengthMismatch returned so that no
// partial queue gets rendered.
func (d *Director) Resolve(children []string, configs []ElementConfig) ([]Element, error) {
	if len(configs) != len(children) {
		err := fmt.Errorf("%w: %d animations for %d children", ErrLengthMismatch, len(configs), len(children))
		d.Logger.Warn("queue not rendered", "error", err)
		return nil, err
	}

	elements := make([]Element, 0, len(children))
	for i, child := range children {
		elements = append(elements, d.resolveElement(i, child, configs[i]))
	}
	return elements, nil
}

func (d *Director) resolveElement(index int, child string, cfg ElementConfig) Element {
	mixed, err := d.Library.MixNamed(cfg.Mode, cfg.Reverse)
	if err != nil {
		d.Logger.Warn("element has no animation", "index", index, "child", child, "error", err)
	}

	// An explicit 0 is kept: the transition profile's duration applies then.
	duration := DefaultElementDuration
	if cfg.Duration != nil {
		duration = *cfg.Duration
	}
	view := DefaultView()
	if cfg.View != nil {
		view = *cfg.View
	}

	return Element{
		Index:      index,
		Child:      child,
		Mode:       append(Modes(nil), cfg.Mode...),
		Initial:    mixed.Initial,
		Animate:    mixed.Animate,
		Transition: cfg.Transition,
		Duration:   duration,
		Delay:      d.delay(index),
		Reverse:    cfg.Reverse,
		Stopped:    cfg.Stopped,
		Trigger:    cfg.Trigger,
		View:       view,
	}
}

func (d *Director) delay(index int) float64 {
	if d.opts.FixedDelay != nil {
		return *d.opts.FixedDelay
	}
	kind := curve.Custom
	if d.opts.Dynamic {
		kind = d.opts.Curve
	}
	return d.engine.Delay(curve.Request{
		Kind:   kind,
		Index:  index,
		Base:   *d.opts.BaseDuration,
		Custom: d.opts.Custom,
	})
}

// Float returns a pointer to v, for the optional fields of Options and
// ElementConfig.
func Float(v float64) *float64 {
	return &v
}
