package director

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/motionkit/internal/preset"
)

// Modes is an ordered list of preset names. In YAML it may also be written as
// a single name.
type Modes []string

func (m *Modes) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*m = Modes{node.Value}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*m = names
		return nil
	default:
		return fmt.Errorf("mode must be a name or a list of names (line %d)", node.Line)
	}
}

// ViewConfig describes when an element counts as visible.
type ViewConfig struct {
	Once bool `yaml:"once"`
	// Amount is the visible fraction required. 0 means any intersection.
	Amount float64 `yaml:"amount"`
}

func DefaultView() ViewConfig {
	return ViewConfig{Once: true, Amount: 0.5}
}

// ElementConfig is the per-child input of a queue.
type ElementConfig struct {
	Mode       Modes       `yaml:"mode"`
	Transition string      `yaml:"transition,omitempty"`
	Duration   *float64    `yaml:"duration,omitempty"` // seconds; nil means default, 0 the transition's own
	Reverse    bool        `yaml:"reverse,omitempty"`
	Stopped    bool        `yaml:"stopped,omitempty"`
	Trigger    *bool       `yaml:"trigger,omitempty"` // explicit trigger, overrides visibility
	View       *ViewConfig `yaml:"view,omitempty"`
}

// Element is a fully resolved child of a queue.
type Element struct {
	Index      int
	Child      string
	Mode       Modes
	Initial    preset.Style
	Animate    preset.Style
	Transition string
	Duration   float64
	Delay      float64
	Reverse    bool
	Stopped    bool
	Trigger    *bool
	View       ViewConfig
}

// Scenario is the written result of a project run
type Scenario struct {
	Version string  `yaml:"version"`
	Queues  []Queue `yaml:"queues"`
}

// Queue holds the frames of one sequenced queue
type Queue struct {
	Name    string  `yaml:"name"`
	Curve   string  `yaml:"curve"`
	Entries []Entry `yaml:"entries"`
}

// Entry is what the renderer received for one element
type Entry struct {
	Index      int               `yaml:"index"`
	Child      string            `yaml:"child"`
	Delay      float64           `yaml:"delay"`
	Initial    preset.Style      `yaml:"initial"`
	Active     preset.Style      `yaml:"active"`
	Transition preset.Transition `yaml:"transition"`
}
