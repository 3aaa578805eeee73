package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError is one rejected setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every rejected setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels lists the accepted log.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidPositions lists the accepted widget.position values.
func ValidPositions() []string {
	return []string{"auto", "top", "bottom"}
}

// Validate returns every problem found, or nil.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors
	add := func(field string, value any, msg string) {
		errs = append(errs, ValidationError{Field: field, Value: value, Message: msg})
	}

	w := c.Widget
	if w.Width < 4 {
		add("widget.width", w.Width, "must be at least 4")
	}
	if !slices.Contains(ValidPositions(), w.Position) {
		add("widget.position", w.Position, "must be one of "+strings.Join(ValidPositions(), ", "))
	}
	if w.ListMaxHeight < 1 {
		add("widget.list_max_height", w.ListMaxHeight, "must be positive")
	}
	if w.OptionHeight < 1 {
		add("widget.option_height", w.OptionHeight, "must be positive")
	}
	if w.BoundaryMargin < 0 {
		add("widget.boundary_margin", w.BoundaryMargin, "must not be negative")
	}
	if w.LabelKey == "" {
		add("widget.label_key", w.LabelKey, "must not be empty")
	}
	if w.ValueKey == "" {
		add("widget.value_key", w.ValueKey, "must not be empty")
	}
	if !slices.Contains(ValidLogLevels(), c.Log.Level) {
		add("log.level", c.Log.Level, "must be one of "+strings.Join(ValidLogLevels(), ", "))
	}
	return errs
}
