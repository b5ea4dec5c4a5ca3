// 曲线预览器
//
// 用法：
//
//	go run . --config=data/curves.yaml --verbose
//
// 未指定 --config 时使用嵌入的 data/curves.yaml。
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/easing/pkg/app"
	"github.com/decker502/easing/pkg/config"
	"github.com/decker502/easing/pkg/embedded"
	"github.com/decker502/easing/pkg/platform"
	"github.com/decker502/easing/pkg/settings"
)

const (
	defaultConfigPath = "data/curves.yaml"
	gdataAppName      = "easing_preview"
)

var (
	configPath = flag.String("config", "", "曲线配置文件路径（为空使用内置配置）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	embedded.Init(dataFS)

	showcase, err := loadShowcase(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// gdata 不可用时降级为内存设置
	gdataManager, err := platform.OpenStore(gdataAppName)
	if err != nil {
		log.Printf("[Main] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	previewer, err := app.NewApp(app.Config{
		Showcase: showcase,
		Settings: settings.NewManager(gdataManager),
		Verbose:  *verbose,
	})
	if err != nil {
		log.Fatalf("预览器初始化失败: %v", err)
	}

	ebiten.SetWindowSize(showcase.Window.Width, showcase.Window.Height)
	ebiten.SetWindowTitle(showcase.Window.Title)

	runErr := ebiten.RunGame(previewer)
	if err := previewer.Close(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadShowcase 优先读取磁盘上的配置文件，否则使用嵌入的默认配置
func loadShowcase(path string) (*config.ShowcaseConfig, error) {
	if path != "" {
		return config.LoadShowcaseConfig(path)
	}
	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseShowcaseConfig(data)
}
