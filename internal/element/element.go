package element

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("element not found")
	ErrAmbiguous = errors.New("element is ambiguous")
)

// Single returns the only element in matches. Components are built from
// exactly one host element; zero or several matches leave them absent.
func Single[T any](name string, matches []T) (T, error) {
	var zero T
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return zero, fmt.Errorf("%s: %w", name, ErrNotFound)
	default:
		return zero, fmt.Errorf("%s: %d matches: %w", name, len(matches), ErrAmbiguous)
	}
}
