// Package demo builds, prints and releases the configured lists.
package demo

import (
	"errors"
	"fmt"
	"io"

	"list_experiments/heap/display"
	"list_experiments/heap/linked_list"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// Run prints every scenario in cfg, or only the one called only when it is
// non-empty.
func Run(w io.Writer, cfg Config, only string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	found := only == ""
	for _, s := range cfg.Scenarios {
		if only != "" && s.Name != only {
			continue
		}
		found = true
		if err := runScenario(w, s, cfg.Format); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownScenario, only)
	}
	return nil
}

func runScenario(w io.Writer, s Scenario, format string) error {
	switch s.Kind {
	case KindInt:
		return show(w, s.Ints, display.IntLine, format)
	case KindText:
		return show(w, s.Texts, display.TextLine, format)
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, s.Kind)
}

func show[T any](w io.Writer, values []T, line func(T) string, format string) error {
	l := linked_list.New[T]()
	defer l.Destroy()
	for _, v := range values {
		l.Append(v)
	}
	if format == FormatTree {
		return display.PrintTree(w, l.All(), line)
	}
	return display.Print(w, l.All(), line)
}
