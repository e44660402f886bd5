package grid

import (
	"errors"
	"fmt"
)

// Mode is the pointer interaction that triggers tiles.
type Mode string

const (
	ModeNone  Mode = ""
	ModeHover Mode = "hover"
	ModeClick Mode = "click"
)

var ErrUnknownMode = errors.New("unknown interaction mode")

// ParseMode validates an interaction mode name.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeNone, ModeHover, ModeClick:
		return Mode(name), nil
	default:
		return ModeNone, fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
}

// Accepts reports whether an event of kind ev should trigger tiles in mode m.
func (m Mode) Accepts(ev Mode) bool {
	return m != ModeNone && m == ev
}
