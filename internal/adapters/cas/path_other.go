//go:build !unix && !windows

package cas

import (
	"strings"
	"unicode/utf8"
)

// nativePathBytes falls back to UTF-8 with invalid sequences replaced by
// U+FFFD. Distinct paths differing only in invalid bytes share a key.
func nativePathBytes(path string) []byte {
	return []byte(strings.ToValidUTF8(path, string(utf8.RuneError)))
}
