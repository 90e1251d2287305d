// export_test.go exports private functions for white-box testing.
package cas

var (
	NewStoreWithDirs = newStoreWithDirs
	NativePathBytes  = nativePathBytes
)
