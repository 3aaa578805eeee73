package dropdown

import "github.com/marcus/selectme/pkg/dropdown/record"

// SelectedOptions derives the selected options from the current options and
// value. In single mode the result has zero or one element. In multi mode it
// follows the order of Value; keys that match no option leave a nil hole.
func (d *Dropdown) SelectedOptions() record.Seq {
	return selectedOptions(d.options(), d.cfg.Value, d.cfg.ValueKey, d.cfg.Multiple, d.access)
}

func selectedOptions(options record.Seq, value any, valueKey string, multiple bool, acc record.Access) record.Seq {
	if record.Len(options) == 0 {
		return acc.Seq(nil)
	}

	if multiple {
		values, ok := record.SeqOf(value)
		if !ok || values.Len() == 0 {
			return acc.Seq(nil)
		}
		if record.IsRecord(firstPresent(values)) {
			return values
		}
		out := make([]any, values.Len())
		for i := range out {
			out[i] = findByKey(options, values.At(i), valueKey, acc)
		}
		return acc.Seq(out)
	}

	k := value
	if record.IsRecord(value) {
		k = acc.Get(value, valueKey)
	}
	if opt := findByKey(options, k, valueKey, acc); opt != nil {
		return acc.Seq([]any{opt})
	}
	return acc.Seq(nil)
}

// firstPresent returns the first non-nil element of seq, or nil.
func firstPresent(seq record.Seq) any {
	for i := 0; i < record.Len(seq); i++ {
		if v := seq.At(i); v != nil {
			return v
		}
	}
	return nil
}

// findByKey returns the first option whose key equals k, or nil. A nil key
// matches nothing.
func findByKey(options record.Seq, k any, valueKey string, acc record.Access) any {
	if k == nil {
		return nil
	}
	for i := 0; i < record.Len(options); i++ {
		opt := options.At(i)
		if record.Equal(acc.Get(opt, valueKey), k) {
			return opt
		}
	}
	return nil
}

// IsSelected reports whether option is among the selected options.
func (d *Dropdown) IsSelected(option any) bool {
	return indexOf(d.SelectedOptions(), d.key(option), d.cfg.ValueKey, d.access) >= 0
}

func indexOf(seq record.Seq, k any, valueKey string, acc record.Access) int {
	for i := 0; i < record.Len(seq); i++ {
		v := seq.At(i)
		if v == nil {
			continue
		}
		if record.Equal(acc.Get(v, valueKey), k) {
			return i
		}
	}
	return -1
}

// NextValue computes the value that choosing option would produce. Single
// mode replaces the value with option. Multi mode removes option when its key
// is already selected and appends it otherwise, in the widget's
// representation. Holes left by unmatched keys are dropped.
func (d *Dropdown) NextValue(option any) any {
	return nextValue(option, d.SelectedOptions(), d.cfg.ValueKey, d.cfg.Multiple, d.access)
}

func nextValue(option any, current record.Seq, valueKey string, multiple bool, acc record.Access) any {
	if !multiple {
		return option
	}
	current = present(current, acc)
	if i := indexOf(current, acc.Get(option, valueKey), valueKey, acc); i >= 0 {
		return acc.Delete(current, i)
	}
	return acc.Append(current, option)
}

// present returns seq without its nil holes.
func present(seq record.Seq, acc record.Access) record.Seq {
	items := make([]any, 0, record.Len(seq))
	for i := 0; i < record.Len(seq); i++ {
		if v := seq.At(i); v != nil {
			items = append(items, v)
		}
	}
	return acc.Seq(items)
}

// ApplyChange hands the next value to OnChange. A Veto answer arms the skip
// guard so the click that made the change does not also close the list.
func (d *Dropdown) ApplyChange(option any) {
	next := d.NextValue(option)
	d.cfg.Logger.Debug("dropdown change", "id", d.ID, "option", d.key(option))
	if d.cfg.Hooks.onChange(next) == Veto {
		d.MarkSkipPropagation()
	}
}

// RemoveSelected drops option from a multi selection. The skip guard is armed
// first so the same click neither toggles nor closes the list.
func (d *Dropdown) RemoveSelected(option any) {
	d.MarkSkipPropagation()
	d.ApplyChange(option)
}
