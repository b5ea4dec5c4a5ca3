//go:build !mobile

// Package platform 封装预览器的平台差异：移动端检测、存储目录与指针输入
package platform

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 可以通过设置环境变量 EASING_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv("EASING_MOBILE_EMULATE") == "1"
}
