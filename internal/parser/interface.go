package parser

import (
	"bufio"
	"fmt"
	"strings"
)

// InterfaceName is the name of the emitted declaration.
const InterfaceName = "I18nMessages"

const indentUnit = "  "

// GenerateInterface renders the catalog as a TypeScript interface
// declaration, the full content of a types.ts file.
func GenerateInterface(content string) (string, error) {
	body, err := InterfaceBody(content)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("export interface %s %s\n\n", InterfaceName, body), nil
}

// InterfaceBody scans the object literal line by line and returns the
// brace-wrapped declaration body. Only string and nested-object values are
// typed; any other value is dropped.
func InterfaceBody(content string) (string, error) {
	obj, err := ExtractObject(content)
	if err != nil {
		return "", err
	}

	var lines []string
	depth := 0

	scanner := bufio.NewScanner(strings.NewReader(obj))
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "export default {" {
			continue
		}

		if line == "}" || line == "}," {
			depth--
			// The outermost closer comes from the wrapper below.
			if depth >= 0 {
				lines = append(lines, indent(depth)+"}")
			}
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = unquote(strings.TrimSpace(key))
		value = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(value), ","))

		switch {
		case value == "{":
			lines = append(lines, indent(depth)+key+": {")
			depth++
		case strings.HasPrefix(value, "'") || strings.HasPrefix(value, `"`):
			lines = append(lines, indent(depth)+key+": string")
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan catalog object: %w", err)
	}

	return "{\n" + strings.Join(lines, "\n") + "\n}", nil
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

// unquote strips any run of surrounding single quotes, then double quotes.
func unquote(s string) string {
	return strings.Trim(strings.Trim(s, "'"), `"`)
}
