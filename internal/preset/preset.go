package preset

// Style maps a style property to a scalar, a keyframe track ([]any) or a
// nested transition override (map[string]any).
type Style map[string]any

// Clone returns a shallow copy. Keyframe tracks are shared and must be treated
// as read-only.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Preset is a named start/end pair of style maps.
type Preset struct {
	Initial Style `yaml:"initial"`
	Animate Style `yaml:"animate"`
}

// Noop is what unknown preset names resolve to.
func Noop() Preset {
	return Preset{Initial: Style{}, Animate: Style{}}
}

func (p Preset) clone() Preset {
	return Preset{Initial: p.Initial.Clone(), Animate: p.Animate.Clone()}
}

// track builds a multi-step keyframe track.
func track(v ...any) []any {
	return v
}
