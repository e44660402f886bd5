package curve

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names the shape used to stagger delays across a queue.
type Kind string

const (
	Linear      Kind = "linear"
	Exponential Kind = "exponential"
	Sinusoidal  Kind = "sinusoidal"
	Cosine      Kind = "cosine"
	Square      Kind = "square"
	Triangle    Kind = "triangle"
	Sawtooth    Kind = "sawtooth"
	Fibonacci   Kind = "fibonacci"
	Pendulum    Kind = "pendulum"
	Perlin      Kind = "perlin"
	Chaotic     Kind = "chaotic"
	Cumulative  Kind = "cumulative"
	Bounce      Kind = "bounce"
	Spiral      Kind = "spiral"
	Quantum     Kind = "quantum"
	Custom      Kind = "custom"
)

var ErrUnknownKind = errors.New("unknown delay curve")

// Kinds lists every curve the engine knows, in documentation order.
var Kinds = []Kind{
	Linear, Exponential, Sinusoidal, Cosine, Square, Triangle, Sawtooth,
	Fibonacci, Pendulum, Perlin, Chaotic, Cumulative, Bounce, Spiral, Quantum, Custom,
}

// Stateful reports whether results of k depend on earlier calls on the same engine.
func (k Kind) Stateful() bool {
	return k == Chaotic || k == Cumulative
}

// ParseKind is the strict counterpart of the engine's lenient lookup. The engine
// itself accepts any string and treats unknown names as linear.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.TrimSpace(name))
	if k == "" {
		return Linear, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Func is a caller-supplied delay shape used by the custom kind.
type Func func(index int) float64

// Request is the per-call input of Engine.Delay.
type Request struct {
	Kind  Kind
	Index int
	// Base scales the raw curve value. Expected to be >= 0.
	Base   float64
	Custom Func
}
