package renderer

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/ivlev/motionkit/internal/preset"
)

var namedEases = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"easeIn":     ease.InQuad,
	"easeOut":    ease.OutQuad,
	"easeInOut":  ease.InOutQuad,
	"circIn":     ease.InCirc,
	"circOut":    ease.OutCirc,
	"circInOut":  ease.InOutCirc,
	"backIn":     ease.InBack,
	"backOut":    ease.OutBack,
	"backInOut":  ease.InOutBack,
	"anticipate": ease.InOutBack,
	"bounceIn":   ease.InBounce,
	"bounceOut":  ease.OutBounce,
}

// EaseFunc maps an easing descriptor to a gween easing function. Beziers are
// solved numerically; unknown names fall back to linear, an unset ease to
// easeOut.
func EaseFunc(e preset.Ease) ease.TweenFunc {
	if e.IsBezier() {
		return bezierEase(e.Bezier[0], e.Bezier[1], e.Bezier[2], e.Bezier[3])
	}
	if e.IsZero() {
		return ease.OutQuad
	}
	if fn, ok := namedEases[e.Name]; ok {
		return fn
	}
	return ease.Linear
}

func bezierEase(x1, y1, x2, y2 float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		p := float64(t / d)
		return b + c*float32(solveBezier(x1, y1, x2, y2, p))
	}
}

// solveBezier returns y for the given x on a CSS cubic-bezier curve with
// fixed end points (0,0) and (1,1).
func solveBezier(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	sample := func(a1, a2, s float64) float64 {
		u := 1 - s
		return 3*u*u*s*a1 + 3*u*s*s*a2 + s*s*s
	}
	slope := func(a1, a2, s float64) float64 {
		u := 1 - s
		return 3*u*u*a1 + 6*u*s*(a2-a1) + 3*s*s*(1-a2)
	}

	s := x
	for i := 0; i < 8; i++ {
		dx := sample(x1, x2, s) - x
		if math.Abs(dx) < 1e-7 {
			return sample(y1, y2, s)
		}
		m := slope(x1, x2, s)
		if math.Abs(m) < 1e-6 {
			break
		}
		s -= dx / m
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 50; i++ {
		v := sample(x1, x2, s)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return sample(y1, y2, s)
}
