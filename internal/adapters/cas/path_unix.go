//go:build unix

package cas

// nativePathBytes returns the path exactly as the kernel sees it.
func nativePathBytes(path string) []byte {
	return []byte(path)
}
