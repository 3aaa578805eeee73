package dropdown

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/marcus/selectme/pkg/dropdown/record"
)

// FuzzyFilter returns the options whose labels fuzzy-match query, best match
// first, in acc's representation. An empty query returns options unchanged.
// It is meant to be called from an OnSearch hook, with the result passed to
// SetOptions.
func FuzzyFilter(options any, query, labelKey, valueKey string, acc record.Access) record.Seq {
	opts := Normalize(options, labelKey, valueKey, acc)
	if query == "" {
		return opts
	}

	labels := make([]string, opts.Len())
	for i := range labels {
		labels[i] = fmt.Sprint(acc.Get(opts.At(i), labelKey))
	}

	matches := fuzzy.Find(query, labels)
	out := make([]any, len(matches))
	for i, m := range matches {
		out[i] = opts.At(m.Index)
	}
	return acc.Seq(out)
}
