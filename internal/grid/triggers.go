package grid

import (
	"sort"
	"sync"
)

// Triggers accumulates the tiles touched by pointer events. Tiles are never
// un-triggered.
type Triggers struct {
	Layout Layout

	mu  sync.RWMutex
	set map[int]bool
}

func NewTriggers(l Layout) *Triggers {
	return &Triggers{Layout: l, set: make(map[int]bool)}
}

// Touch marks the 3x3 neighborhood of the tile under (x, y) and returns the
// newly marked indexes. Points outside the grid do nothing.
func (t *Triggers) Touch(x, y, width, height float64) []int {
	index, ok := t.Layout.CellAt(x, y, width, height)
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var added []int
	for _, n := range t.Layout.Neighborhood(index) {
		if !t.set[n] {
			t.set[n] = true
			added = append(added, n)
		}
	}
	return added
}

func (t *Triggers) Triggered(index int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.set[index]
}

// Indexes returns the triggered tiles in ascending order.
func (t *Triggers) Indexes() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]int, 0, len(t.set))
	for i := range t.set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
