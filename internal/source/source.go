package source

// Source provides the children of a queue, in order.
type Source interface {
	Count() int
	Name(index int) string
	Close() error
}

// List is a fixed set of child names.
type List []string

func (l List) Count() int { return len(l) }

func (l List) Name(index int) string {
	if index < 0 || index >= len(l) {
		return ""
	}
	return l[index]
}

func (l List) Close() error { return nil }

// Names returns every child name of s.
func Names(s Source) []string {
	out := make([]string, s.Count())
	for i := range out {
		out[i] = s.Name(i)
	}
	return out
}
