// Package record provides field access over the two option representations a
// dropdown accepts: plain Go maps and persistent (immutable) maps.
//
// Every read of an option or value field goes through an Access, so callers
// never branch on the representation themselves:
//
//	acc := record.For(immutable)
//	opt := acc.Record(record.Fields{"label": "Go", "value": "go"})
//	label := acc.Get(opt, "label")
package record

import (
	"reflect"

	"github.com/benbjohnson/immutable"
)

// Fields is the plain record representation.
type Fields map[string]any

// Frozen is the persistent record representation. Updates return a new
// record and leave the receiver untouched.
type Frozen struct {
	m *immutable.Map[string, any]
}

// Freeze converts plain fields to a persistent record.
func Freeze(f Fields) Frozen {
	m := immutable.NewMap[string, any](nil)
	for k, v := range f {
		m = m.Set(k, v)
	}
	return Frozen{m: m}
}

// Get returns the value stored under key.
func (r Frozen) Get(key string) (any, bool) {
	if r.m == nil {
		return nil, false
	}
	return r.m.Get(key)
}

// Set returns a copy of r with key set to v.
func (r Frozen) Set(key string, v any) Frozen {
	m := r.m
	if m == nil {
		m = immutable.NewMap[string, any](nil)
	}
	return Frozen{m: m.Set(key, v)}
}

// Len returns the number of fields.
func (r Frozen) Len() int {
	if r.m == nil {
		return 0
	}
	return r.m.Len()
}

// IsRecord reports whether v is record-shaped in either representation.
func IsRecord(v any) bool {
	switch v.(type) {
	case Fields, map[string]any, Frozen, *immutable.Map[string, any]:
		return true
	}
	return false
}

// Equal compares two field values the way option keys are compared: numbers
// compare by value regardless of their Go type, everything else must be
// comparable and equal. Uncomparable values never match.
func Equal(a, b any) bool {
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
