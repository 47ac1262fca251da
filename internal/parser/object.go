package parser

import "regexp"

// objectPattern captures from the first brace after `export default`
// through the last closing brace of the content.
var objectPattern = regexp.MustCompile(`export\s+default\s+(\{[\s\S]+\})`)

// ExtractObject returns the default-exported object literal, braces included.
func ExtractObject(content string) (string, error) {
	m := objectPattern.FindStringSubmatch(content)
	if m == nil {
		return "", ErrInvalidFormat
	}
	return m[1], nil
}
