package renderer

import (
	"sort"

	"github.com/tanema/gween"

	"github.com/ivlev/motionkit/internal/effects"
	"github.com/ivlev/motionkit/internal/preset"
)

// overrideKey holds a per-preset transition override, not a style property.
const overrideKey = "transition"

// Sample returns the style of a frame at time at (seconds since the frame was
// handed to the renderer). Numeric values are tweened with gween using the
// frame's easing; keyframe tracks are split into equal segments; other values
// switch at the end of the transition.
func Sample(f effects.Frame, at float64) preset.Style {
	local := at - f.Transition.Delay
	d := f.Transition.Duration
	fn := EaseFunc(f.Transition.Ease)

	out := preset.Style{}
	for _, k := range styleKeys(f) {
		from, hasFrom := f.Initial[k]
		to, hasTo := f.Active[k]

		switch {
		case !hasTo:
			out[k] = from
		case isTrack(to):
			out[k] = sampleTrack(from, hasFrom, to.([]any), local, d, fn)
		default:
			if !hasFrom {
				from = to
			}
			out[k] = sampleValue(from, to, local, d, fn)
		}
	}
	return out
}

func sampleValue(from, to any, local, d float64, fn easeFunc) any {
	if local <= 0 {
		return from
	}
	if d <= 0 || local >= d {
		return to
	}
	a, okA := toFloat(from)
	b, okB := toFloat(to)
	if !okA || !okB {
		return from
	}
	return tween(a, b, local, d, fn)
}

func sampleTrack(from any, hasFrom bool, track []any, local, d float64, fn easeFunc) any {
	if len(track) == 0 {
		return from
	}
	if local <= 0 {
		if hasFrom {
			return from
		}
		return track[0]
	}
	last := len(track) - 1
	if last == 0 || d <= 0 || local >= d {
		return track[last]
	}

	seg := d / float64(last)
	i := int(local / seg)
	if i >= last {
		return track[last]
	}

	a, okA := toFloat(track[i])
	b, okB := toFloat(track[i+1])
	if !okA || !okB {
		return track[i]
	}
	return tween(a, b, local-float64(i)*seg, seg, fn)
}

type easeFunc = func(t, b, c, d float32) float32

func tween(from, to, at, d float64, fn easeFunc) float64 {
	tw := gween.New(float32(from), float32(to), float32(d), fn)
	v, _ := tw.Set(float32(at))
	return float64(v)
}

func isTrack(v any) bool {
	_, ok := v.([]any)
	return ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func styleKeys(f effects.Frame) []string {
	seen := map[string]bool{}
	var keys []string
	for _, s := range []preset.Style{f.Initial, f.Active} {
		for k := range s {
			if k == overrideKey || seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
