// Package keydiff compares the leaf key sets of two catalogs.
package keydiff

import (
	"encoding/json"
	"path/filepath"
	"slices"

	"i18n-catalog/internal/parser"
)

const labelPrefix = "missing_in_"

// Result is the outcome of comparing a first and a second catalog.
//
// Report labels are derived from the file basenames, so callers reading
// the report map must use FirstLabel and SecondLabel instead of fixed keys.
type Result struct {
	// FirstLabel names the keys missing from the first catalog.
	FirstLabel string
	// SecondLabel names the keys missing from the second catalog.
	SecondLabel string
	// Identical is true when both catalogs have the same key paths.
	Identical bool
	// MissingInFirst lists keys present in second but not first, sorted.
	MissingInFirst []string
	// MissingInSecond lists keys present in first but not second, sorted.
	MissingInSecond []string
}

// Label returns the report label for keys missing from file.
func Label(file string) string {
	return labelPrefix + filepath.Base(file)
}

// Compare diffs the key sets of firstFile and secondFile.
func Compare(firstFile string, first parser.KeySet, secondFile string, second parser.KeySet) Result {
	r := Result{
		FirstLabel:      Label(firstFile),
		SecondLabel:     Label(secondFile),
		MissingInFirst:  missing(second, first),
		MissingInSecond: missing(first, second),
	}
	if r.FirstLabel == r.SecondLabel {
		r.SecondLabel += "_2"
	}
	r.Identical = len(r.MissingInFirst) == 0 && len(r.MissingInSecond) == 0
	return r
}

// missing returns the keys of from that are absent in to, sorted.
func missing(from, to parser.KeySet) []string {
	out := make([]string, 0)
	for k := range from {
		if !to.Has(k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// Report returns the result keyed by "identical" and the two dynamic labels.
func (r Result) Report() map[string]any {
	return map[string]any{
		"identical":   r.Identical,
		r.FirstLabel:  nonNil(r.MissingInFirst),
		r.SecondLabel: nonNil(r.MissingInSecond),
	}
}

// MarshalJSON encodes the result as its report map.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Report())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
