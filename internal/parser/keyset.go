package parser

import (
	"encoding/json"
	"regexp"
)

var (
	// bareKeyPattern matches an unquoted identifier key at line start.
	bareKeyPattern = regexp.MustCompile(`(?m)^(\s*)([A-Za-z_$][A-Za-z0-9_$]*)(\s*):`)
	// singleQuotedPattern matches a single-quoted literal. Embedded quotes are not handled.
	singleQuotedPattern = regexp.MustCompile(`'([^']*)'`)
	// trailingCommaPattern matches a comma directly before a closing brace or bracket.
	trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)
)

// Normalize rewrites an object literal into JSON text: bare keys get
// double quotes, single-quoted strings become double-quoted and trailing
// commas are removed.
func Normalize(obj string) string {
	out := bareKeyPattern.ReplaceAllString(obj, `$1"$2"$3:`)
	out = singleQuotedPattern.ReplaceAllString(out, `"$1"`)
	return trailingCommaPattern.ReplaceAllString(out, "$1")
}

// ExtractKeys returns every leaf key path of the catalog. Leaf values of
// any type count; only nested objects are descended into.
func ExtractKeys(content string) (KeySet, error) {
	obj, err := ExtractObject(content)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(obj)

	var tree map[string]any
	if err := json.Unmarshal([]byte(normalized), &tree); err != nil {
		return nil, &ParseError{Normalized: normalized, Err: err}
	}

	keys := make(KeySet)
	collectKeys(tree, "", keys)
	return keys, nil
}

func collectKeys(tree map[string]any, prefix string, keys KeySet) {
	for k, v := range tree {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			collectKeys(nested, full, keys)
			continue
		}
		keys.Add(full)
	}
}
