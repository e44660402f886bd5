package renderer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ivlev/motionkit/internal/effects"
)

// Renderer plays frames. Implementations must be safe for concurrent use:
// queues are rendered in parallel.
type Renderer interface {
	Render(ctx context.Context, queue string, index int, f effects.Frame) error
}

// TextRenderer writes every frame as a CSS block.
type TextRenderer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(ctx context.Context, queue string, index int, f effects.Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := ClassName(queue, index)
	block := fmt.Sprintf("/* %s #%d %s */\n%s", queue, index, f.Phase, CSS(name, f))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := io.WriteString(r.w, block); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// ClassName builds a CSS identifier for element index of a queue.
func ClassName(queue string, index int) string {
	var b strings.Builder
	for _, r := range queue {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		b.WriteString("queue")
	}
	return fmt.Sprintf("mk-%s-%d", b.String(), index)
}
