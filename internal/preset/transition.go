package preset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultTransition is used when an element names no transition.
const DefaultTransition = "default"

// Ease is either a named easing curve or a cubic-bezier control-point tuple.
type Ease struct {
	Name   string
	Bezier []float64
}

func Named(name string) Ease {
	return Ease{Name: name}
}

func CubicBezier(x1, y1, x2, y2 float64) Ease {
	return Ease{Bezier: []float64{x1, y1, x2, y2}}
}

func (e Ease) IsZero() bool {
	return e.Name == "" && len(e.Bezier) == 0
}

func (e Ease) IsBezier() bool {
	return len(e.Bezier) == 4
}

func (e Ease) String() string {
	if e.IsBezier() {
		return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", e.Bezier[0], e.Bezier[1], e.Bezier[2], e.Bezier[3])
	}
	return e.Name
}

// MarshalYAML writes a name as a scalar and a bezier as a flow list.
func (e Ease) MarshalYAML() (interface{}, error) {
	if e.IsBezier() {
		return e.Bezier, nil
	}
	return e.Name, nil
}

func (e *Ease) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*e = Ease{Name: node.Value}
		return nil
	case yaml.SequenceNode:
		var pts []float64
		if err := node.Decode(&pts); err != nil {
			return err
		}
		if len(pts) != 4 {
			return fmt.Errorf("cubic-bezier ease needs 4 control points, got %d (line %d)", len(pts), node.Line)
		}
		*e = Ease{Bezier: pts}
		return nil
	default:
		return fmt.Errorf("ease must be a name or a list of 4 numbers (line %d)", node.Line)
	}
}

// Transition is a timing profile handed to the renderer together with a frame.
type Transition struct {
	Duration float64 `yaml:"duration,omitempty"`
	Ease     Ease    `yaml:"ease,omitempty"`
	Delay    float64 `yaml:"delay"`
}

func builtinTransitions() map[string]Transition {
	easeInOut := Named("easeInOut")
	elastic := CubicBezier(0.47, 1.64, 0.41, 0.8)
	bounce := CubicBezier(0.68, -0.55, 0.265, 1.55)
	slowCubic := CubicBezier(0.17, 0.55, 0.55, 1)

	return map[string]Transition{
		"none":            {},
		DefaultTransition: {Duration: 1, Ease: easeInOut},
		"smooth":          {Duration: 1, Ease: easeInOut},
		"easeIn":          {Duration: 0.6, Ease: Named("easeIn")},
		"easeOut":         {Duration: 0.6, Ease: Named("easeOut")},
		"linear":          {Duration: 0.6, Ease: Named("linear")},
		"cubicSmooth":     {Duration: 0.6, Ease: CubicBezier(0.17, 0.67, 0.83, 0.67)},
		"cubicFastStart":  {Duration: 0.6, Ease: CubicBezier(0.55, 0.085, 0.68, 0.53)},
		"cubicFastEnd":    {Duration: 0.6, Ease: CubicBezier(0.25, 0.46, 0.45, 0.94)},
		"cubicBounce":     {Duration: 0.6, Ease: bounce},
		"cubicElastic":    {Duration: 0.8, Ease: elastic},
		"slowSmooth":      {Duration: 1.5, Ease: easeInOut},
		"slowCubic":       {Duration: 1.5, Ease: slowCubic},
		"slowElastic":     {Duration: 2, Ease: elastic},
		"quickEaseInOut":  {Duration: 0.3, Ease: easeInOut},
		"quickBounce":     {Duration: 0.3, Ease: bounce},
		"delayedSmooth":   {Duration: 0.6, Ease: easeInOut},
		"delayedCubic":    {Duration: 0.6, Ease: slowCubic},
		"delayedElastic":  {Duration: 0.8, Ease: elastic},
		"fadeSlide":       {Duration: 0.6, Ease: easeInOut},
		"fadeScale":       {Duration: 0.6, Ease: easeInOut},
		"fadeRotate":      {Duration: 0.6, Ease: easeInOut},
	}
}
