//go:build !mobile

package platform

import (
	"testing"
)

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("EASING_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 测试环境变量强制启用移动模式
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv("EASING_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true with EASING_MOBILE_EMULATE=1")
	}
}

// TestOpenStore 在临时目录中打开存储
func TestOpenStore(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_DATA_HOME", tmpDir)

	m, err := OpenStore("easing_platform_test")
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	if m == nil {
		t.Fatal("OpenStore() returned nil manager")
	}
}
