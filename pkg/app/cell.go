package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/easing/pkg/config"
	"github.com/decker502/easing/pkg/easing"
)

var (
	cellBackground    = color.RGBA{240, 240, 240, 255}
	cellSelected      = color.RGBA{255, 255, 200, 255}
	cellBorder        = color.RGBA{200, 200, 200, 255}
	guideColor        = color.RGBA{170, 170, 170, 255}
	linearColor       = color.RGBA{210, 210, 230, 255}
	curveColor        = color.RGBA{40, 90, 200, 255}
	markerColor       = color.RGBA{220, 60, 60, 255}
	labelBackground   = color.RGBA{0, 0, 0, 160}
	labelHeight       = 32
	plotMargin        = 12.0
	curveStrokeWidth  = float32(2)
	markerRadius      = float32(4)
	guideStrokeWidth  = float32(1)
	borderStrokeWidth = float32(2)
)

// CurveCell 曲线展示单元
type CurveCell struct {
	name  string
	curve easing.Curve

	// 采样缓存，采样段数变化时重建
	samples int
	points  []easing.Point

	ticks int // 回放计时
}

// NewCurveCell 创建曲线展示单元
func NewCurveCell(nc config.NamedCurve, samples int) *CurveCell {
	c := &CurveCell{name: nc.Name, curve: nc.Curve}
	c.SetSamples(samples)
	return c
}

// Name 返回显示名
func (c *CurveCell) Name() string {
	return c.name
}

// SetSamples 设置采样段数，只在变化时重新采样
func (c *CurveCell) SetSamples(samples int) {
	if samples == c.samples && c.points != nil {
		return
	}
	c.samples = samples
	c.points = easing.Sample(c.curve, samples)
}

// Points 返回当前采样点
func (c *CurveCell) Points() []easing.Point {
	return c.points
}

// Update 推进回放计时
func (c *CurveCell) Update() {
	c.ticks++
}

// Progress 当前回放进度与曲线值
func (c *CurveCell) Progress(tps int) (float64, float64) {
	t := replayProgress(c.ticks, tps)
	return t, c.curve.Calc(t)
}

// plotArea 单元内（去掉边距与标签栏）的绘图区域
func plotArea(x, y, width, height int, overshoot float64) PlotArea {
	return PlotArea{
		X:         float64(x) + plotMargin,
		Y:         float64(y) + plotMargin,
		Width:     float64(width) - 2*plotMargin,
		Height:    float64(height-labelHeight) - 2*plotMargin,
		Overshoot: overshoot,
	}
}

// Render 以单元格左上角为原点渲染
func (c *CurveCell) Render(screen *ebiten.Image, x, y, width, height int, selected, guides bool, overshoot float64) {
	bg := cellBackground
	if selected {
		bg = cellSelected
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), borderStrokeWidth, cellBorder, false)

	area := plotArea(x, y, width, height, overshoot)

	if guides {
		c.drawGuides(screen, area)
	}

	// 曲线
	coords := area.Polyline(c.points)
	for i := 2; i+1 < len(coords); i += 2 {
		vector.StrokeLine(screen, coords[i-2], coords[i-1], coords[i], coords[i+1], curveStrokeWidth, curveColor, true)
	}

	// 回放标记
	t, v := c.Progress(ebiten.TPS())
	mx, my := area.ToScreen(t, v)
	vector.DrawFilledCircle(screen, float32(mx), float32(my), markerRadius, markerColor, true)

	// 标签
	labelY := y + height - labelHeight
	vector.DrawFilledRect(screen, float32(x), float32(labelY), float32(width), float32(labelHeight), labelBackground, false)
	ebitenutil.DebugPrintAt(screen, c.name, x+5, labelY+2)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t=%.2f v=%.3f", t, v), x+5, labelY+16)
}

// drawGuides 绘制 v=0、v=1 参考线和线性对角线
func (c *CurveCell) drawGuides(screen *ebiten.Image, area PlotArea) {
	for _, v := range []float64{0, 1} {
		x0, y0 := area.ToScreen(0, v)
		x1, y1 := area.ToScreen(1, v)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), guideStrokeWidth, guideColor, false)
	}
	x0, y0 := area.ToScreen(0, 0)
	x1, y1 := area.ToScreen(1, 1)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), guideStrokeWidth, linearColor, true)
}
