// Package config loads selectme settings with viper. Values come from the
// defaults below, an optional YAML/TOML/JSON file, and SELECTME_* variables,
// with later sources winning.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/viper"

	"github.com/marcus/selectme/pkg/dropdown"
	"github.com/marcus/selectme/pkg/dropdown/placement"
)

// EnvPrefix namespaces environment overrides, e.g. SELECTME_WIDGET_WIDTH.
const EnvPrefix = "SELECTME"

// Config is the full settings tree.
type Config struct {
	Widget WidgetConfig `mapstructure:"widget"`
	Keys   KeysConfig   `mapstructure:"keys"`
	Log    LogConfig    `mapstructure:"log"`
}

// WidgetConfig holds the dropdown defaults the CLI applies to every widget.
type WidgetConfig struct {
	Width          int    `mapstructure:"width"`
	Position       string `mapstructure:"position"`
	ListMaxHeight  int    `mapstructure:"list_max_height"`
	OptionHeight   int    `mapstructure:"option_height"`
	BoundaryMargin int    `mapstructure:"boundary_margin"`
	Placeholder    string `mapstructure:"placeholder"`
	LabelKey       string `mapstructure:"label_key"`
	ValueKey       string `mapstructure:"value_key"`
}

// KeysConfig rebinds widget keys. Empty lists keep the built-in binding.
type KeysConfig struct {
	Open   []string `mapstructure:"open"`
	Close  []string `mapstructure:"close"`
	Up     []string `mapstructure:"up"`
	Down   []string `mapstructure:"down"`
	Select []string `mapstructure:"select"`
	Toggle []string `mapstructure:"toggle"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Widget: WidgetConfig{
			Width:          30,
			Position:       string(placement.Auto),
			ListMaxHeight:  placement.DefaultListMaxHeight,
			OptionHeight:   placement.DefaultOptionHeight,
			BoundaryMargin: placement.DefaultBoundaryMargin,
			Placeholder:    "Select ...",
			LabelKey:       "label",
			ValueKey:       "value",
		},
		Log: LogConfig{Level: "info"},
	}
}

// SetDefaults registers Default on v so every key is known to Unmarshal and
// to the environment lookup.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("widget.width", d.Widget.Width)
	v.SetDefault("widget.position", d.Widget.Position)
	v.SetDefault("widget.list_max_height", d.Widget.ListMaxHeight)
	v.SetDefault("widget.option_height", d.Widget.OptionHeight)
	v.SetDefault("widget.boundary_margin", d.Widget.BoundaryMargin)
	v.SetDefault("widget.placeholder", d.Widget.Placeholder)
	v.SetDefault("widget.label_key", d.Widget.LabelKey)
	v.SetDefault("widget.value_key", d.Widget.ValueKey)

	v.SetDefault("keys.open", []string{})
	v.SetDefault("keys.close", []string{})
	v.SetDefault("keys.up", []string{})
	v.SetDefault("keys.down", []string{})
	v.SetDefault("keys.select", []string{})
	v.SetDefault("keys.toggle", []string{})

	v.SetDefault("log.level", d.Log.Level)
}

// Dir returns the user config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "selectme")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".selectme"
	}
	return filepath.Join(home, ".config", "selectme")
}

// Load reads settings. An explicit path must exist; without one the user
// config directory is searched and a missing file is fine.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(Dir())
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// Apply copies the widget defaults into dc, leaving fields the caller has
// already set.
func (c *Config) Apply(dc *dropdown.Config) {
	w := c.Widget
	if dc.Width == 0 {
		dc.Width = w.Width
	}
	if dc.ListPosition == "" {
		dc.ListPosition = placement.ParsePosition(w.Position)
	}
	if dc.ListMaxHeight == 0 {
		dc.ListMaxHeight = w.ListMaxHeight
	}
	if dc.OptionHeight == 0 {
		dc.OptionHeight = w.OptionHeight
	}
	if dc.BoundaryMargin == 0 {
		dc.BoundaryMargin = w.BoundaryMargin
		if w.BoundaryMargin == 0 {
			dc.BoundaryMargin = dropdown.NoMargin
		}
	}
	if dc.Placeholder == "" {
		dc.Placeholder = w.Placeholder
	}
	if dc.LabelKey == "" {
		dc.LabelKey = w.LabelKey
	}
	if dc.ValueKey == "" {
		dc.ValueKey = w.ValueKey
	}
	if dc.Keys == nil {
		k := c.KeyMap()
		dc.Keys = &k
	}
}

// KeyMap returns the built-in bindings with configured keys swapped in.
func (c *Config) KeyMap() dropdown.KeyMap {
	k := dropdown.DefaultKeyMap()
	rebind(&k.Open, c.Keys.Open)
	rebind(&k.Close, c.Keys.Close)
	rebind(&k.Up, c.Keys.Up)
	rebind(&k.Down, c.Keys.Down)
	rebind(&k.Select, c.Keys.Select)
	rebind(&k.Toggle, c.Keys.Toggle)
	return k
}

func rebind(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.SetKeys(keys...)
	b.SetHelp(keys[0], b.Help().Desc)
}
