package dropdown

import "github.com/marcus/selectme/pkg/dropdown/record"

// Normalize turns an option collection into a sequence of records. Empty or
// unrecognized input yields an empty sequence. When the first element is
// already a record the collection is returned unchanged; otherwise every
// element becomes a synthetic record whose label and value are the element
// itself, built in acc's representation. The input is never modified.
func Normalize(options any, labelKey, valueKey string, acc record.Access) record.Seq {
	seq, ok := record.SeqOf(options)
	if !ok || seq.Len() == 0 {
		return acc.Seq(nil)
	}
	if record.IsRecord(seq.At(0)) {
		return seq
	}

	items := make([]any, seq.Len())
	for i := range items {
		v := seq.At(i)
		items[i] = acc.Record(record.Fields{labelKey: v, valueKey: v})
	}
	return acc.Seq(items)
}

// options returns the normalized option collection.
func (d *Dropdown) options() record.Seq {
	return Normalize(d.cfg.Options, d.cfg.LabelKey, d.cfg.ValueKey, d.access)
}

// read is the representation-aware field read used for every option and
// value access.
func (d *Dropdown) read(rec any, key string) any {
	return d.access.Get(rec, key)
}

func (d *Dropdown) key(rec any) any {
	return d.read(rec, d.cfg.ValueKey)
}

func (d *Dropdown) label(rec any) any {
	return d.read(rec, d.cfg.LabelKey)
}

// optionHeight resolves the height of the option at i.
func (d *Dropdown) optionHeight(opts record.Seq, i int) int {
	if d.cfg.OptionHeightFunc != nil && i < record.Len(opts) {
		return max(1, d.cfg.OptionHeightFunc(opts.At(i)))
	}
	return d.cfg.OptionHeight
}
