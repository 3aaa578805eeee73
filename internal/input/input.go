// Package input expands --option style flag values. A value of "@path"
// is replaced by the non-empty lines of that file and "-" by the lines of
// stdin; anything else passes through unchanged.
package input

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Stdin is read when a flag value is "-".
var Stdin io.Reader = os.Stdin

// ReadLinesFromReader returns the trimmed, non-empty lines of r.
func ReadLinesFromReader(r io.Reader) []string {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		slog.Warn("reading option lines", "err", err)
	}
	return lines
}

// ExpandFlagValues expands every value in order. Stdin can only be consumed
// once per process: stdinUsed carries that across calls and is returned
// updated. Unreadable files are skipped with a warning.
func ExpandFlagValues(values []string, stdinUsed bool) ([]string, bool) {
	var out []string
	for _, v := range values {
		switch {
		case v == "-":
			if stdinUsed {
				slog.Warn("stdin already consumed, skipping")
				continue
			}
			stdinUsed = true
			out = append(out, ReadLinesFromReader(Stdin)...)
		case strings.HasPrefix(v, "@") && len(v) > 1:
			f, err := os.Open(v[1:])
			if err != nil {
				slog.Warn("skipping option file", "path", v[1:], "err", err)
				continue
			}
			out = append(out, ReadLinesFromReader(f)...)
			f.Close()
		default:
			out = append(out, v)
		}
	}
	return out, stdinUsed
}
