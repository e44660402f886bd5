package renderer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ivlev/motionkit/internal/effects"
	"github.com/ivlev/motionkit/internal/preset"
)

var cssEases = map[string]string{
	"linear":    "linear",
	"easeIn":    "ease-in",
	"easeOut":   "ease-out",
	"easeInOut": "ease-in-out",
}

// CSS renders a frame as a @keyframes block plus a class running it.
// Scalars sit at 0% and 100%; keyframe tracks are spread evenly.
func CSS(name string, f effects.Frame) string {
	stops := map[float64]preset.Style{}
	at := func(pct float64) preset.Style {
		s, ok := stops[pct]
		if !ok {
			s = preset.Style{}
			stops[pct] = s
		}
		return s
	}

	for _, k := range styleKeys(f) {
		from, hasFrom := f.Initial[k]
		to, hasTo := f.Active[k]

		switch {
		case !hasTo:
			at(0)[k] = from
			at(100)[k] = from
		case isTrack(to):
			track := to.([]any)
			if len(track) == 0 {
				continue
			}
			if len(track) == 1 {
				at(0)[k] = track[0]
				at(100)[k] = track[0]
				continue
			}
			for i, v := range track {
				at(float64(i) * 100 / float64(len(track)-1))[k] = v
			}
		default:
			if hasFrom {
				at(0)[k] = from
			} else {
				at(0)[k] = to
			}
			at(100)[k] = to
		}
	}

	pcts := make([]float64, 0, len(stops))
	for p := range stops {
		pcts = append(pcts, p)
	}
	sort.Float64s(pcts)

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", name)
	for _, p := range pcts {
		fmt.Fprintf(&b, "  %s%% {", formatNumber(p))
		s := stops[p]
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s: %s;", k, formatValue(s[k]))
		}
		b.WriteString(" }\n")
	}
	b.WriteString("}\n")

	tr := f.Transition
	fmt.Fprintf(&b, ".%s { animation: %s %ss %s %ss both; }\n",
		name, name, formatNumber(tr.Duration), cssEase(tr.Ease), formatNumber(tr.Delay))
	return b.String()
}

func cssEase(e preset.Ease) string {
	if e.IsBezier() {
		return e.String()
	}
	if css, ok := cssEases[e.Name]; ok {
		return css
	}
	return "ease"
}

func formatValue(v any) string {
	if n, ok := toFloat(v); ok {
		return formatNumber(n)
	}
	return fmt.Sprint(v)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
