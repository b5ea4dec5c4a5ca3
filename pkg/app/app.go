// Package app 提供曲线预览器的核心包装器
//
// 该包将预览器初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/easing/pkg/config"
	"github.com/decker502/easing/pkg/platform"
	"github.com/decker502/easing/pkg/settings"
)

// infoBarHeight 顶部信息栏高度
const infoBarHeight = 25

// samplesStep +/- 键每次调整的采样段数
const samplesStep = 8

var helpLines = []string{
	"Keys:",
	"  PageDown/PageUp  next/previous page",
	"  Arrow keys       move selection",
	"  Left click       select curve",
	"  +/-              more/fewer samples",
	"  G                toggle guides",
	"  H                toggle help",
	"  F11              fullscreen",
	"  Esc              quit",
}

var touchHelpLines = []string{
	"Touch:",
	"  Tap curve        select curve",
	"  Tap top bar      left half: previous page",
	"                   right half: next page",
}

// Config 定义应用启动配置
type Config struct {
	// Showcase 曲线与布局配置（必填）
	Showcase *config.ShowcaseConfig
	// Settings 持久化设置，为 nil 时使用内存设置
	Settings *settings.Manager
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 曲线预览器，实现 ebiten.Game 接口
type App struct {
	showcase *config.ShowcaseConfig
	settings *settings.Manager
	layout   GridLayout
	pager    Pager

	allCurves []config.NamedCurve
	cells     []*CurveCell // 当前页的单元
}

// NewApp 创建并初始化预览器
func NewApp(cfg Config) (*App, error) {
	if cfg.Showcase == nil {
		return nil, errors.New("app: showcase config is required")
	}

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	curves, err := cfg.Showcase.BuildCurves()
	if err != nil {
		return nil, fmt.Errorf("failed to build curves: %w", err)
	}
	log.Printf("[App] Loaded %d curves", len(curves))

	sm := cfg.Settings
	if sm == nil {
		sm = settings.NewManager(nil)
	}

	a := &App{
		showcase:  cfg.Showcase,
		settings:  sm,
		layout:    NewGridLayout(cfg.Showcase.Grid, infoBarHeight),
		pager:     NewPager(cfg.Showcase.Grid, len(curves)),
		allCurves: curves,
	}

	if sm.Settings().Samples == settings.DefaultSettings().Samples && cfg.Showcase.Plot.Samples > 0 {
		sm.SetSamples(cfg.Showcase.Plot.Samples)
	}
	a.loadPage(sm.Settings().Page)

	return a, nil
}

// loadPage 创建指定页的曲线单元
func (a *App) loadPage(page int) {
	page = a.pager.Clamp(page)
	start, end := a.pager.Range(page)

	samples := a.settings.Settings().Samples
	cells := make([]*CurveCell, 0, end-start)
	for _, nc := range a.allCurves[start:end] {
		cells = append(cells, NewCurveCell(nc, samples))
	}
	a.cells = cells
	a.settings.SetPage(page)

	if sel := a.settings.Settings().Selected; sel >= len(cells) {
		a.settings.SetSelected(-1)
	}
	log.Printf("[App] Page %d/%d: %d curves", page+1, a.pager.Pages(), len(cells))
}

// Page 当前页码（从 0 开始）
func (a *App) Page() int {
	return a.settings.Settings().Page
}

// Cells 当前页的单元
func (a *App) Cells() []*CurveCell {
	return a.cells
}

// NextPage 切换到下一页，已是最后一页时不变
func (a *App) NextPage() {
	if page := a.Page(); page < a.pager.Pages()-1 {
		a.loadPage(page + 1)
	}
}

// PrevPage 切换到上一页，已是第一页时不变
func (a *App) PrevPage() {
	if page := a.Page(); page > 0 {
		a.loadPage(page - 1)
	}
}

// MoveSelection 在当前页内循环移动选中项
func (a *App) MoveSelection(delta int) {
	a.settings.SetSelected(moveSelection(a.settings.Settings().Selected, delta, len(a.cells)))
}

// AdjustSamples 调整采样段数并重新采样当前页
func (a *App) AdjustSamples(delta int) {
	a.settings.SetSamples(a.settings.Settings().Samples + delta)
	samples := a.settings.Settings().Samples
	for _, cell := range a.cells {
		cell.SetSamples(samples)
	}
}

// Tap 处理一次点击或触摸
func (a *App) Tap(x, y int) {
	if y < infoBarHeight {
		if x < a.showcase.Window.Width/2 {
			a.PrevPage()
		} else {
			a.NextPage()
		}
		return
	}
	if index := a.layout.CellAt(x, y, len(a.cells)); index >= 0 {
		a.settings.SetSelected(index)
		log.Printf("[App] Selected %s", a.cells[index].Name())
	}
}

// Update 更新预览状态
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.settings.SetShowHelp(!a.settings.Settings().ShowHelp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.settings.SetShowGuides(!a.settings.Settings().ShowGuides)
	}

	// 翻页
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		a.NextPage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		a.PrevPage()
	}

	// 方向键移动选中单元
	columns := a.showcase.Grid.Columns
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		a.MoveSelection(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		a.MoveSelection(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		a.MoveSelection(columns)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		a.MoveSelection(-columns)
	}

	// 采样段数
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		a.AdjustSamples(samplesStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		a.AdjustSamples(-samplesStep)
	}

	// 点击或触摸：信息栏翻页，单元格选中
	if tapped, x, y := platform.JustTapped(); tapped {
		a.Tap(x, y)
	}

	for _, cell := range a.cells {
		cell.Update()
	}
	return nil
}

// Draw 绘制预览画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{50, 50, 50, 255})

	s := a.settings.Settings()
	width, height := a.layout.CellSize()
	for i, cell := range a.cells {
		x, y := a.layout.CellPosition(i)
		cell.Render(screen, x, y, width, height, i == s.Selected, s.ShowGuides, a.showcase.Plot.Overshoot)
	}

	a.drawInfoBar(screen)
	if s.ShowHelp {
		a.drawHelp(screen)
	}
}

// drawInfoBar 绘制顶部信息栏
func (a *App) drawInfoBar(screen *ebiten.Image) {
	s := a.settings.Settings()
	info := fmt.Sprintf("TPS: %.1f | page %d/%d | %d curves | samples %d | selected: ",
		ebiten.ActualTPS(), s.Page+1, a.pager.Pages(), len(a.allCurves), s.Samples)
	if s.Selected >= 0 && s.Selected < len(a.cells) {
		info += a.cells[s.Selected].Name()
	} else {
		info += "none"
	}

	vector.DrawFilledRect(screen, 0, 0, float32(a.showcase.Window.Width), infoBarHeight, color.RGBA{0, 0, 0, 160}, false)
	ebitenutil.DebugPrintAt(screen, info, 10, 5)
}

// drawHelp 绘制右上角帮助面板
func (a *App) drawHelp(screen *ebiten.Image) {
	lines := helpLines
	if platform.IsMobile() {
		lines = touchHelpLines
	}
	helpWidth, helpHeight := 300, 16*len(lines)+16
	helpX := a.showcase.Window.Width - helpWidth - 20
	helpY := infoBarHeight + 20

	vector.DrawFilledRect(screen, float32(helpX), float32(helpY), float32(helpWidth), float32(helpHeight), color.RGBA{0, 0, 0, 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, helpX+10, helpY+8+i*16)
	}
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.showcase.Window.Width, a.showcase.Window.Height
}

// Close 保存设置
func (a *App) Close() error {
	if err := a.settings.Save(); err != nil {
		return fmt.Errorf("failed to save preview settings: %w", err)
	}
	return nil
}
