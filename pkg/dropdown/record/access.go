package record

import "github.com/benbjohnson/immutable"

// Access reads and builds records and sequences in one representation.
type Access interface {
	// Get reads key from rec. Non-records and missing keys yield nil.
	Get(rec any, key string) any
	// Record materializes fields in this representation.
	Record(fields Fields) any
	// Seq materializes items in this representation.
	Seq(items []any) Seq
	// Append returns a new sequence with item at the end; s is not modified.
	Append(s Seq, item any) Seq
	// Delete returns a new sequence without the element at i.
	Delete(s Seq, i int) Seq
}

// For returns the Persistent access when immutable is set, Plain otherwise.
func For(immutable bool) Access {
	if immutable {
		return Persistent{}
	}
	return Plain{}
}

// Plain accesses Fields and Slice values.
type Plain struct{}

// Get reads key from any record shape, including Frozen.
func (Plain) Get(rec any, key string) any {
	switch r := rec.(type) {
	case Fields:
		return r[key]
	case map[string]any:
		return r[key]
	case Frozen:
		v, _ := r.Get(key)
		return v
	}
	return nil
}

// Record copies fields into a new Fields.
func (Plain) Record(fields Fields) any {
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// Seq copies items into a Slice.
func (Plain) Seq(items []any) Seq {
	out := make(Slice, len(items))
	copy(out, items)
	return out
}

// Append copies s into a new Slice with item at the end.
func (Plain) Append(s Seq, item any) Seq {
	out := make(Slice, 0, Len(s)+1)
	out = append(out, Items(s)...)
	return append(out, item)
}

// Delete copies s into a new Slice without the element at i.
func (Plain) Delete(s Seq, i int) Seq {
	out := make(Slice, 0, Len(s))
	for j := 0; j < Len(s); j++ {
		if j != i {
			out = append(out, s.At(j))
		}
	}
	return out
}

// Persistent accesses Frozen and List values.
type Persistent struct{}

// Get reads key from a Frozen or immutable map, falling back to Plain.
func (Persistent) Get(rec any, key string) any {
	switch r := rec.(type) {
	case Frozen:
		v, _ := r.Get(key)
		return v
	case *immutable.Map[string, any]:
		v, _ := r.Get(key)
		return v
	}
	// Plain records handed to a persistent widget are still readable.
	return Plain{}.Get(rec, key)
}

// Record freezes fields.
func (Persistent) Record(fields Fields) any {
	return Freeze(fields)
}

// Seq builds a List from items.
func (Persistent) Seq(items []any) Seq {
	return NewList(items...)
}

// Append shares structure with s when it is already a List.
func (Persistent) Append(s Seq, item any) Seq {
	if l, ok := s.(List); ok {
		return l.Append(item)
	}
	return NewList(Items(s)...).Append(item)
}

// Delete builds a new List without the element at i.
func (Persistent) Delete(s Seq, i int) Seq {
	b := immutable.NewListBuilder[any]()
	for j := 0; j < Len(s); j++ {
		if j != i {
			b.Append(s.At(j))
		}
	}
	return List{l: b.List()}
}
