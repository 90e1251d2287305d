//go:build windows

package cas

import "unicode/utf16"

// nativePathBytes splits each UTF-16 code unit of path into two bytes,
// high byte first.
func nativePathBytes(path string) []byte {
	units := utf16.Encode([]rune(path))
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}
