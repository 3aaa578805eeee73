package record

import "github.com/benbjohnson/immutable"

// Seq is an ordered, indexable collection of options or values.
type Seq interface {
	Len() int
	At(i int) any
}

// Slice is the plain sequence representation.
type Slice []any

func (s Slice) Len() int     { return len(s) }
func (s Slice) At(i int) any { return s[i] }

// List is the persistent sequence representation.
type List struct {
	l *immutable.List[any]
}

// NewList builds a persistent sequence holding items.
func NewList(items ...any) List {
	return List{l: immutable.NewList(items...)}
}

func (s List) Len() int {
	if s.l == nil {
		return 0
	}
	return s.l.Len()
}

func (s List) At(i int) any { return s.l.Get(i) }

// Append returns a new list with v added at the end.
func (s List) Append(v any) List {
	l := s.l
	if l == nil {
		l = immutable.NewList[any]()
	}
	return List{l: l.Append(v)}
}

// SeqOf adapts the collection shapes a caller may pass as options or as a
// multi-select value. The second result is false when v is not a sequence.
func SeqOf(v any) (Seq, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case Seq:
		return s, true
	case []any:
		return Slice(s), true
	case *immutable.List[any]:
		return List{l: s}, true
	case []string:
		return convert(s), true
	case []int:
		return convert(s), true
	case []int64:
		return convert(s), true
	case []float64:
		return convert(s), true
	case []Fields:
		return convert(s), true
	case []map[string]any:
		out := make(Slice, len(s))
		for i, m := range s {
			out[i] = Fields(m)
		}
		return out, true
	case []Frozen:
		return convert(s), true
	}
	return nil, false
}

// Items copies a sequence into a plain slice.
func Items(s Seq) []any {
	if s == nil {
		return nil
	}
	out := make([]any, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Len is nil-safe Seq.Len.
func Len(s Seq) int {
	if s == nil {
		return 0
	}
	return s.Len()
}

func convert[T any](in []T) Slice {
	out := make(Slice, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
