package keydiff

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// Format selects how a Result is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json or toml)", s)
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Result, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode JSON report: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(r.Report()); err != nil {
			return fmt.Errorf("encode TOML report: %w", err)
		}
		return nil
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r Result) error {
	if _, err := fmt.Fprintf(w, "identical: %t\n", r.Identical); err != nil {
		return err
	}
	for _, section := range []struct {
		label string
		keys  []string
	}{
		{r.FirstLabel, r.MissingInFirst},
		{r.SecondLabel, r.MissingInSecond},
	} {
		if _, err := fmt.Fprintf(w, "%s (%d):\n", section.label, len(section.keys)); err != nil {
			return err
		}
		for _, k := range section.keys {
			if _, err := fmt.Fprintf(w, "  %s\n", k); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSet renders several results keyed by name, in name order for text.
func WriteSet(w io.Writer, results map[string]Result, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode JSON report: %w", err)
		}
		return nil
	case FormatTOML:
		doc := make(map[string]map[string]any, len(results))
		for name, r := range results {
			doc[name] = r.Report()
		}
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode TOML report: %w", err)
		}
		return nil
	default:
		for _, name := range slices.Sorted(maps.Keys(results)) {
			if _, err := fmt.Fprintf(w, "== %s\n", name); err != nil {
				return err
			}
			if err := writeText(w, results[name]); err != nil {
				return err
			}
		}
		return nil
	}
}
