package preset

import (
	"sort"
	"sync"
)

// Library is an immutable registry of presets and transitions. Lookups never
// fail: unknown presets resolve to Noop and unknown transitions to the empty
// profile.
type Library struct {
	presets     map[string]Preset
	transitions map[string]Transition
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the built-in library, built on first use.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLib = &Library{
			presets:     builtinPresets(),
			transitions: builtinTransitions(),
		}
	})
	return defaultLib
}

// With returns a new library where extra entries replace same-named ones.
// The receiver is left untouched.
func (l *Library) With(presets map[string]Preset, transitions map[string]Transition) *Library {
	out := &Library{
		presets:     make(map[string]Preset, len(l.presets)+len(presets)),
		transitions: make(map[string]Transition, len(l.transitions)+len(transitions)),
	}
	for k, v := range l.presets {
		out.presets[k] = v
	}
	for k, v := range presets {
		if k == Opacity && (len(v.Initial) == 0 || len(v.Animate) == 0) {
			// the stopped state needs a usable opacity pair
			continue
		}
		if v.Initial == nil {
			v.Initial = Style{}
		}
		if v.Animate == nil {
			v.Animate = Style{}
		}
		out.presets[k] = v.clone()
	}
	for k, v := range l.transitions {
		out.transitions[k] = v
	}
	for k, v := range transitions {
		out.transitions[k] = v
	}
	return out
}

// Lookup reports whether name is registered.
func (l *Library) Lookup(name string) (Preset, bool) {
	p, ok := l.presets[name]
	if !ok {
		return Noop(), false
	}
	return p.clone(), true
}

// Preset returns the named preset or Noop.
func (l *Library) Preset(name string) Preset {
	p, _ := l.Lookup(name)
	return p
}

// Presets resolves names in order, substituting Noop for unknown ones.
func (l *Library) Presets(names []string) []Preset {
	out := make([]Preset, 0, len(names))
	for _, n := range names {
		out = append(out, l.Preset(n))
	}
	return out
}

// Transition returns the named profile. An empty name means DefaultTransition.
func (l *Library) Transition(name string) Transition {
	if name == "" {
		name = DefaultTransition
	}
	t := l.transitions[name]
	if t.Ease.Bezier != nil {
		t.Ease.Bezier = append([]float64(nil), t.Ease.Bezier...)
	}
	return t
}

func (l *Library) PresetNames() []string {
	return sortedKeys(l.presets)
}

func (l *Library) TransitionNames() []string {
	return sortedKeys(l.transitions)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
