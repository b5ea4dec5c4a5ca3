//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	make android  # 或：make prepare-mobile && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.easing -o build/android/easing.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	make ios  # 或：make prepare-mobile && ebitenmobile bind -target ios -tags mobile -o build/ios/Easing.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/easing/pkg/app"
	"github.com/decker502/easing/pkg/config"
	"github.com/decker502/easing/pkg/embedded"
	"github.com/decker502/easing/pkg/platform"
	"github.com/decker502/easing/pkg/settings"
)

func init() {
	embedded.Init(dataFS)

	data, err := embedded.ReadFile("data/curves.yaml")
	if err != nil {
		log.Fatalf("读取内置配置失败: %v", err)
	}
	showcase, err := config.ParseShowcaseConfig(data)
	if err != nil {
		log.Fatalf("解析内置配置失败: %v", err)
	}

	// 存储不可用时降级为内存设置
	store, err := platform.OpenStore("easing_preview")
	if err != nil {
		log.Printf("[Mobile] Warning: %v (settings will not persist)", err)
		store = nil
	}

	previewer, err := app.NewApp(app.Config{
		Showcase: showcase,
		Settings: settings.NewManager(store),
		Verbose:  true,
	})
	if err != nil {
		log.Fatalf("预览器初始化失败: %v", err)
	}

	mobile.SetGame(previewer)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
