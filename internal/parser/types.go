package parser

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrInvalidFormat is returned when the source text has no
// `export default { ... }` object literal.
var ErrInvalidFormat = errors.New("invalid catalog file format")

// ParseError reports a catalog whose normalized text is still not valid JSON.
type ParseError struct {
	// Normalized is the text handed to the JSON decoder.
	Normalized string
	// Err is the underlying decoder error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse normalized catalog: %v\n%s", e.Err, e.Normalized)
}

func (e *ParseError) Unwrap() error { return e.Err }

// KeySet holds the dot-joined leaf key paths of a catalog.
type KeySet map[string]struct{}

// Add inserts a key path.
func (s KeySet) Add(key string) { s[key] = struct{}{} }

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the key paths in ascending lexicographic order.
func (s KeySet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// NewKeySet builds a set from the given key paths.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}
