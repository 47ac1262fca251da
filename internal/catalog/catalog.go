// Package catalog runs the catalog pipelines against files on disk.
package catalog

import (
	"os"
	"path/filepath"

	"i18n-catalog/internal/keydiff"
	"i18n-catalog/internal/parser"
)

// TypesFileName is the name of the generated declaration file.
const TypesFileName = "types.ts"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GenerateTypes reads the catalog at zhPath and writes its interface
// declaration to outputDir/types.ts, creating outputDir if needed.
// It returns the path of the written file.
func GenerateTypes(zhPath, outputDir string) (string, error) {
	content, err := os.ReadFile(zhPath)
	if err != nil {
		return "", err
	}

	decl, err := parser.GenerateInterface(string(content))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", err
	}

	outPath := filepath.Join(outputDir, TypesFileName)
	if err := os.WriteFile(outPath, []byte(decl), filePerm); err != nil {
		return "", err
	}
	return outPath, nil
}

// LoadKeys reads the catalog at path and returns its leaf key paths.
func LoadKeys(path string) (parser.KeySet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.ExtractKeys(string(content))
}

// CompareKeys diffs the key sets of two catalog files.
func CompareKeys(firstPath, secondPath string) (keydiff.Result, error) {
	first, err := LoadKeys(firstPath)
	if err != nil {
		return keydiff.Result{}, err
	}
	second, err := LoadKeys(secondPath)
	if err != nil {
		return keydiff.Result{}, err
	}
	return keydiff.Compare(firstPath, first, secondPath, second), nil
}
