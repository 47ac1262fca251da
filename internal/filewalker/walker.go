package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// CatalogExt is the extension of translation catalog files.
const CatalogExt = ".ts"

// Walker finds locale catalogs (<locale>.ts) in a directory.
type Walker struct {
	ext string
}

// NewWalker creates a Walker for .ts catalogs.
func NewWalker() *Walker {
	return &Walker{ext: CatalogExt}
}

// FileEntry is a discovered catalog.
type FileEntry struct {
	Path string
	// Locale is the file name without extension, as written on disk.
	Locale string
	Tag    language.Tag
}

// Walk lists the catalogs directly under root whose base name is a valid
// BCP 47 tag. Other .ts files (types.ts, index.ts) are skipped.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var entries []FileEntry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), w.ext) {
			continue
		}

		locale := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
		tag, err := language.Parse(locale)
		if err != nil {
			log.Debug().Str("file", de.Name()).Msg("Skipping non-locale file")
			continue
		}

		entries = append(entries, FileEntry{
			Path:   filepath.Join(root, de.Name()),
			Locale: locale,
			Tag:    tag,
		})
	}

	slices.SortFunc(entries, func(a, b FileEntry) int { return strings.Compare(a.Locale, b.Locale) })

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered catalogs")
	return entries, nil
}

// Find returns the entry whose locale matches want. Tags are compared
// canonically, so "zh_CN" finds "zh-CN.ts".
func Find(entries []FileEntry, want string) (FileEntry, bool) {
	wantTag, err := language.Parse(want)
	if err != nil {
		return FileEntry{}, false
	}
	for _, e := range entries {
		if e.Tag.String() == wantTag.String() {
			return e, true
		}
	}
	return FileEntry{}, false
}
