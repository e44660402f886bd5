package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/motionkit/internal/curve"
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/effects"
	"github.com/ivlev/motionkit/internal/preset"
	"github.com/ivlev/motionkit/internal/source"
)

var ErrNoQueues = errors.New("config has no queues")

// Config is a project file: a set of queues to resolve and where to write
// the scenario.
type Config struct {
	Workers     int                          `yaml:"workers,omitempty"`
	Output      string                       `yaml:"output,omitempty"`
	LogLevel    string                       `yaml:"log_level,omitempty"`
	Presets     map[string]preset.Preset     `yaml:"presets,omitempty"`
	Transitions map[string]preset.Transition `yaml:"transitions,omitempty"`
	Queues      []QueueConfig                `yaml:"queues"`

	BuildVersion string `yaml:"-"`
}

type QueueConfig struct {
	Name         string   `yaml:"name"`
	Curve        string   `yaml:"curve,omitempty"`
	BaseDuration *float64 `yaml:"base_duration,omitempty"`
	Dynamic      bool     `yaml:"dynamic,omitempty"`
	FixedDelay   *float64 `yaml:"fixed_delay,omitempty"`
	// Visible is the queue's in-view flag; nil means visible.
	Visible *bool `yaml:"visible,omitempty"`
	// Visibility replays intersection ratios (0..1) through each element's
	// view settings. The last observation decides; Visible is then ignored.
	Visibility []float64                `yaml:"visibility,omitempty"`
	Children   []string                 `yaml:"children,omitempty"`
	Images     string                   `yaml:"images,omitempty"` // directory or file; replaces children
	Elements   []director.ElementConfig `yaml:"elements"`
}

// Load reads and validates a project file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Queues) == 0 {
		return ErrNoQueues
	}

	seen := make(map[string]bool, len(c.Queues))
	for i, q := range c.Queues {
		if q.Name == "" {
			return fmt.Errorf("queue %d has no name", i)
		}
		if seen[q.Name] {
			return fmt.Errorf("duplicate queue name %q", q.Name)
		}
		seen[q.Name] = true

		if _, err := curve.ParseKind(q.Curve); err != nil {
			return fmt.Errorf("queue %q: %w", q.Name, err)
		}
		if q.BaseDuration != nil && *q.BaseDuration < 0 {
			return fmt.Errorf("queue %q: negative base_duration", q.Name)
		}
		for _, r := range q.Visibility {
			if r < 0 || r > 1 {
				return fmt.Errorf("queue %q: visibility ratio %v outside 0..1", q.Name, r)
			}
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative workers: %d", c.Workers)
	}
	return nil
}

// Library returns the built-in presets extended with the project's own.
func (c *Config) Library() *preset.Library {
	if len(c.Presets) == 0 && len(c.Transitions) == 0 {
		return preset.Default()
	}
	return preset.Default().With(c.Presets, c.Transitions)
}

func (q QueueConfig) Options() director.Options {
	kind, _ := curve.ParseKind(q.Curve)
	return director.Options{
		Curve:        kind,
		BaseDuration: q.BaseDuration,
		Dynamic:      q.Dynamic,
		FixedDelay:   q.FixedDelay,
	}
}

func (q QueueConfig) IsVisible() bool {
	return q.Visible == nil || *q.Visible
}

// InView reports whether an element with the given view settings ends up in
// view. Without Visibility ratios it is IsVisible.
func (q QueueConfig) InView(view director.ViewConfig) bool {
	if len(q.Visibility) == 0 {
		return q.IsVisible()
	}
	gate := effects.NewViewGate(view)
	var in bool
	for _, r := range q.Visibility {
		in = gate.Observe(r)
	}
	return in
}

// Source returns the queue's children: the images found under Images when
// set, the Children list otherwise.
func (q QueueConfig) Source() (source.Source, error) {
	if q.Images != "" {
		return source.NewImageSource(q.Images)
	}
	return source.List(q.Children), nil
}
