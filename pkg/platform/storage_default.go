//go:build !android

package platform

// EnsureStorageDir 非 Android 平台的空实现，gdata 会自动创建存储目录
func EnsureStorageDir() error {
	return nil
}
