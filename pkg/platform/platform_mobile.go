//go:build mobile

// Package platform 封装预览器的平台差异：移动端检测、存储目录与指针输入
package platform

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}
