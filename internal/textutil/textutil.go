package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Digest returns a SHA-256 hex digest of sorted key paths, one per line.
// Equal key sets produce equal digests.
func Digest(sortedKeys []string) string {
	h := sha256.Sum256([]byte(strings.Join(sortedKeys, "\n")))
	return hex.EncodeToString(h[:])
}

// Truncate shortens s to at most maxRunes runes, appending "..." if truncated.
func Truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes]) + "..."
}

// Preview joins up to n items with ", " and notes how many were left out.
func Preview(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + ", +" + strconv.Itoa(len(items)-n) + " more"
}
