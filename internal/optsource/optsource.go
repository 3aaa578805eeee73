// Package optsource loads dropdown options from files. The format is chosen
// by extension: .json, .toml, .db/.sqlite, anything else is read as one
// option per line.
package optsource

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/marcus/selectme/internal/input"
	"github.com/marcus/selectme/pkg/dropdown/record"
)

// Query is run against SQLite sources.
const Query = "SELECT label, value FROM options ORDER BY rowid"

// Keys names the record fields options are read from and built with.
type Keys struct {
	Label string
	Value string
}

// DefaultKeys matches the dropdown's default label and value keys.
var DefaultKeys = Keys{Label: "label", Value: "value"}

func (k Keys) record(label, value any) record.Fields {
	return record.Fields{k.Label: label, k.Value: value}
}

// Load reads the options in path. Records in JSON and TOML files use the
// field names in keys; other sources are built with them.
func Load(ctx context.Context, path string, keys Keys) ([]record.Fields, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path, keys)
	case ".toml":
		return loadTOML(path, keys)
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLite(ctx, path, keys)
	default:
		return loadLines(path, keys)
	}
}

// LoadAll reads every path concurrently and concatenates the results in
// argument order. The first failure cancels the rest.
func LoadAll(ctx context.Context, paths []string, keys Keys) ([]record.Fields, error) {
	results := make([][]record.Fields, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			opts, err := Load(ctx, p, keys)
			if err != nil {
				return err
			}
			results[i] = opts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []record.Fields
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// FromValues turns plain strings into records whose label and value are the
// string itself.
func FromValues(values []string, keys Keys) []record.Fields {
	out := make([]record.Fields, len(values))
	for i, v := range values {
		out[i] = keys.record(v, v)
	}
	return out
}

// fromAny accepts scalars and objects with at least a label or a value.
func fromAny(path string, items []any, keys Keys) ([]record.Fields, error) {
	out := make([]record.Fields, 0, len(items))
	for i, it := range items {
		switch v := it.(type) {
		case map[string]any:
			f := record.Fields(v)
			_, hasLabel := f[keys.Label]
			_, hasValue := f[keys.Value]
			switch {
			case !hasLabel && !hasValue:
				return nil, fmt.Errorf("%s: option %d has neither %q nor %q", path, i, keys.Label, keys.Value)
			case !hasLabel:
				f[keys.Label] = fmt.Sprint(f[keys.Value])
			case !hasValue:
				f[keys.Value] = f[keys.Label]
			}
			out = append(out, f)
		case string, float64, int64, bool:
			out = append(out, keys.record(fmt.Sprint(v), v))
		default:
			return nil, fmt.Errorf("%s: option %d has unsupported type %T", path, i, it)
		}
	}
	return out, nil
}

func loadJSON(path string, keys Keys) ([]record.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fromAny(path, items, keys)
}

type tomlFile struct {
	Options []any `toml:"options"`
}

func loadTOML(path string, keys Keys) ([]record.Fields, error) {
	var f tomlFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fromAny(path, f.Options, keys)
}

func loadSQLite(ctx context.Context, path string, keys Keys) ([]record.Fields, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open options database: %w", err)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open options database: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, Query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	var out []record.Fields
	for rows.Next() {
		var (
			label string
			value any
		)
		if err := rows.Scan(&label, &value); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		if b, ok := value.([]byte); ok {
			value = string(b)
		}
		out = append(out, keys.record(label, value))
	}
	return out, rows.Err()
}

func loadLines(path string, keys Keys) ([]record.Fields, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	defer f.Close()
	return FromValues(input.ReadLinesFromReader(f), keys), nil
}
