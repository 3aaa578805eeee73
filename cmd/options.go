package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/marcus/selectme/internal/config"
	"github.com/marcus/selectme/internal/input"
	"github.com/marcus/selectme/internal/optsource"
	"github.com/marcus/selectme/pkg/dropdown"
	"github.com/marcus/selectme/pkg/dropdown/placement"
	"github.com/marcus/selectme/pkg/dropdown/record"
)

// widgetFlags are the dropdown settings shared by demo and render.
type widgetFlags struct {
	options     []string
	files       []string
	values      []string
	multiple    bool
	searchable  bool
	virtualized bool
	immutable   bool
	disabled    bool
	position    string
	width       int
	listHeight  int
	placeholder string
}

func (f *widgetFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.options, "option", "o", nil, "option value (repeatable, @file reads lines, - reads stdin)")
	fs.StringArrayVarP(&f.files, "options-file", "f", nil, "options file: .json, .toml, .db/.sqlite or one per line (repeatable)")
	fs.StringArrayVar(&f.values, "value", nil, "selected value (repeatable with --multiple)")
	fs.BoolVarP(&f.multiple, "multiple", "m", false, "allow selecting several options")
	fs.BoolVarP(&f.searchable, "searchable", "s", false, "show a search box")
	fs.BoolVar(&f.virtualized, "virtualized", false, "render only visible rows")
	fs.BoolVar(&f.immutable, "immutable", false, "use persistent records for options and values")
	fs.BoolVar(&f.disabled, "disabled", false, "ignore clicks and keys")
	fs.StringVar(&f.position, "position", "", "list position: auto, top or bottom (default from config)")
	fs.IntVar(&f.width, "width", 0, "control width in cells (default from config)")
	fs.IntVar(&f.listHeight, "list-height", 0, "fixed list height in rows")
	fs.StringVar(&f.placeholder, "placeholder", "", "text shown when nothing is selected")
}

// loadOptions gathers flag values and option files, in that order. Records
// are keyed by the configured label and value keys.
func (f *widgetFlags) loadOptions(ctx context.Context, cfg *config.Config) ([]record.Fields, error) {
	keys := optionKeys(cfg)
	values, _ := input.ExpandFlagValues(f.options, false)
	opts := optsource.FromValues(values, keys)

	fromFiles, err := optsource.LoadAll(ctx, f.files, keys)
	if err != nil {
		return nil, err
	}
	opts = append(opts, fromFiles...)
	if len(opts) == 0 {
		return nil, fmt.Errorf("no options: pass --option or --options-file")
	}
	return opts, nil
}

func optionKeys(cfg *config.Config) optsource.Keys {
	if cfg == nil {
		return optsource.DefaultKeys
	}
	return optsource.Keys{Label: cfg.Widget.LabelKey, Value: cfg.Widget.ValueKey}
}

// value converts --value flags into a dropdown value.
func (f *widgetFlags) value() any {
	if f.multiple {
		out := make([]any, len(f.values))
		for i, v := range f.values {
			out[i] = v
		}
		return out
	}
	if len(f.values) == 0 {
		return nil
	}
	return f.values[0]
}

// dropdownConfig builds a widget config from the flags with cfg filling in
// whatever the flags leave unset.
func (f *widgetFlags) dropdownConfig(cfg *config.Config, opts []record.Fields) dropdown.Config {
	dc := dropdown.Config{
		Options:     opts,
		Value:       f.value(),
		Multiple:    f.multiple,
		Searchable:  f.searchable,
		Virtualized: f.virtualized,
		Immutable:   f.immutable,
		Disabled:    f.disabled,
		Width:       f.width,
		ListHeight:  f.listHeight,
		Placeholder: f.placeholder,
	}
	if f.position != "" {
		dc.ListPosition = placement.ParsePosition(f.position)
	}
	if cfg != nil {
		cfg.Apply(&dc)
	}
	return dc
}
