package curve

import "math"

const (
	chaosRate   = 3.99
	chaosSeed   = 0.5
	chaosScale  = 10
	wavePeriod  = 4
	damping     = 0.1
	frequency   = 2
	gravity     = 0.8
	bounceCycle = 5
)

// Engine computes staggered delays. It owns the running state of the
// fibonacci, chaotic and cumulative curves, so one engine must serve exactly
// one queue: sharing it between queues interleaves their sequences.
//
// Chaotic and cumulative results depend on how many calls were made before,
// not on the index. Asking twice for the same index yields different delays.
// An Engine is not safe for concurrent use.
type Engine struct {
	fib         []float64
	chaos       float64
	accumulated float64
}

// NewEngine returns an engine with fresh curve state.
func NewEngine() *Engine {
	return &Engine{
		fib:   []float64{0, 1},
		chaos: chaosSeed,
	}
}

// Delay returns the delay for r. It never fails: a custom request without a
// function and any unknown kind fall back to the linear shape.
func (e *Engine) Delay(r Request) float64 {
	i := r.Index
	if i < 0 {
		i = 0
	}
	fi := float64(i)
	base := r.Base

	switch r.Kind {
	case Linear:
		return fi * base
	case Exponential:
		return math.Pow(2, fi) * base
	case Sinusoidal:
		return math.Sin(fi) * base
	case Cosine:
		return math.Cos(fi) * base
	case Square:
		return float64(i%2) * base
	case Triangle:
		pos := i % wavePeriod
		if pos < wavePeriod/2 {
			return float64(pos) * base
		}
		return float64(wavePeriod-pos) * base
	case Sawtooth:
		return float64(i%wavePeriod) * base
	case Fibonacci:
		return e.fibonacci(i) * base
	case Pendulum:
		return math.Exp(-damping*fi) * math.Sin(frequency*fi) * base
	case Perlin:
		return noise(i) * base
	case Chaotic:
		e.chaos = chaosRate * e.chaos * (1 - e.chaos)
		return e.chaos * base * chaosScale
	case Cumulative:
		e.accumulated += (math.Sin(fi) + 1) * base
		return e.accumulated
	case Bounce:
		return math.Pow(gravity, float64(i%bounceCycle)) * base
	case Spiral:
		angle := fi * 0.5
		offset := math.Sqrt(fi) * base
		return (math.Cos(angle) + math.Sin(angle)) * offset
	case Quantum:
		return math.Abs(math.Sin(fi)*math.Cos(fi*0.5)) * base * 2
	case Custom:
		if r.Custom != nil {
			return r.Custom(i)
		}
		return fi * base
	default:
		return fi * base
	}
}

// fibonacci extends the cached sequence far enough to answer n.
func (e *Engine) fibonacci(n int) float64 {
	for len(e.fib) <= n+1 {
		l := len(e.fib)
		e.fib = append(e.fib, e.fib[l-1]+e.fib[l-2])
	}
	return e.fib[n]
}

// noise is an integer hash mapped to (-1, 1]. The shift is 32-bit; the
// polynomial is evaluated in float64 and wrapped back to 32 bits before masking.
// Each product is converted explicitly so the compiler cannot fuse it into an
// FMA; the hash must round identically on every platform.
func noise(i int) float64 {
	n := int32(i)
	n = (n << 13) ^ n
	f := float64(n)
	sq := float64(f * f)
	inner := float64(sq*15731) + 789221
	h := wrap32(float64(f*inner)+1376312589) & 0x7fffffff
	return 1 - float64(h)/1073741824
}

func wrap32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	const two32 = 4294967296
	m := math.Mod(math.Trunc(f), two32)
	if m < 0 {
		m += two32
	}
	return int32(uint32(m))
}
