package dropdown

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/marcus/selectme/pkg/dropdown/event"
	"github.com/marcus/selectme/pkg/dropdown/record"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// newTestDropdown builds a dropdown on a private document with logging off.
func newTestDropdown(t *testing.T, cfg Config) *Dropdown {
	t.Helper()
	if cfg.Document == nil {
		cfg.Document = event.NewDocument()
	}
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	d := New(cfg)
	d.Mount()
	t.Cleanup(d.Unmount)
	return d
}

func abOptions() []record.Fields {
	return []record.Fields{
		{"label": "A", "value": 1},
		{"label": "B", "value": 2},
		{"label": "C", "value": 3},
	}
}

// keys extracts the value field of each element, leaving nil for holes.
func keys(t *testing.T, v any) []any {
	t.Helper()
	seq, ok := record.SeqOf(v)
	if !ok {
		t.Fatalf("value %T is not a sequence", v)
	}
	out := make([]any, seq.Len())
	for i := range out {
		if el := seq.At(i); el != nil {
			out[i] = record.Persistent{}.Get(el, "value")
		}
	}
	return out
}

func equalKeys(got, want []any) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !record.Equal(got[i], want[i]) {
			return false
		}
	}
	return true
}

func ptr[T any](v T) *T { return &v }
