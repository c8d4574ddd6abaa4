// Package view renders email templates.
//
// Templates are plain files in which every %key% token is replaced by the
// formatted value of data[key]. There are no conditionals or loops.
package view

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrNotFound is returned when a template path does not resolve to a readable file
var ErrNotFound = errors.New("could not find email template")

// Renderer turns a template path and data into content
type Renderer interface {
	// Render renders the template at path with data
	Render(path string, data map[string]any) (string, error)
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(path string, data map[string]any) (string, error)

// Render calls f(path, data)
func (f RendererFunc) Render(path string, data map[string]any) (string, error) {
	return f(path, data)
}

// Substitute replaces every %key% token in template with its value
func Substitute(template string, data map[string]any) string {
	if len(data) == 0 {
		return template
	}

	// Longest tokens first, ties broken by name
	names := slices.SortedFunc(maps.Keys(data), func(a, b string) int {
		if n := cmp.Compare(len(b), len(a)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(data)*2)
	for _, name := range names {
		pairs = append(pairs, "%"+name+"%", format(data[name]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func notFound(path string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrNotFound, path, err)
}
