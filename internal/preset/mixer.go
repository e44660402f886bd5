package preset

import "errors"

var ErrNoPresets = errors.New("animations should be a non-empty list")

// Mixed is the combined start/end pair of several presets.
type Mixed struct {
	Initial Style `yaml:"initial"`
	Animate Style `yaml:"animate"`
}

// Mix folds presets left to right. Each half is a shallow key union where later
// presets win. With reverse the two halves are swapped, turning an entrance into
// an exit.
//
// An empty list yields empty halves and ErrNoPresets; the caller decides whether
// to log it. The returned maps are always non-nil and never alias the inputs.
func Mix(presets []Preset, reverse bool) (Mixed, error) {
	if len(presets) == 0 {
		return Mixed{Initial: Style{}, Animate: Style{}}, ErrNoPresets
	}

	initial, animate := Style{}, Style{}
	for _, p := range presets {
		for k, v := range p.Initial {
			initial[k] = v
		}
		for k, v := range p.Animate {
			animate[k] = v
		}
	}

	if reverse {
		return Mixed{Initial: animate, Animate: initial}, nil
	}
	return Mixed{Initial: initial, Animate: animate}, nil
}

// MixNamed resolves names against l and mixes the result.
func (l *Library) MixNamed(names []string, reverse bool) (Mixed, error) {
	return Mix(l.Presets(names), reverse)
}
