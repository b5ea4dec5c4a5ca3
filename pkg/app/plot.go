package app

import (
	"math"

	"github.com/decker502/easing/pkg/easing"
)

// replaySeconds 标记点沿曲线走完一遍的时间
const replaySeconds = 1.5

// PlotArea 单元内的绘图区域
//
// 横轴为进度 t ∈ [0, 1]，纵轴为曲线值 v ∈ [-Overshoot, 1+Overshoot]，
// 屏幕坐标 y 轴向下，所以 v 越大 y 越小。
type PlotArea struct {
	X, Y          float64
	Width, Height float64
	Overshoot     float64
}

// ToScreen 把 (t, v) 映射到屏幕坐标
// 超出纵轴范围的值贴边显示，NaN 按 0 处理
func (p PlotArea) ToScreen(t, v float64) (float64, float64) {
	lo, hi := -p.Overshoot, 1+p.Overshoot
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(lo, math.Min(hi, v))

	x := p.X + t*p.Width
	y := p.Y + p.Height - (v-lo)/(hi-lo)*p.Height
	return x, y
}

// Polyline 把采样点映射为屏幕坐标序列 [x0, y0, x1, y1, ...]
func (p PlotArea) Polyline(points []easing.Point) []float32 {
	coords := make([]float32, 0, len(points)*2)
	for _, pt := range points {
		x, y := p.ToScreen(pt.T, pt.V)
		coords = append(coords, float32(x), float32(y))
	}
	return coords
}

// replayProgress 根据已运行的 tick 数计算回放进度 [0, 1)
func replayProgress(ticks, tps int) float64 {
	if tps <= 0 {
		tps = 60
	}
	loop := int(replaySeconds * float64(tps))
	if loop < 1 {
		loop = 1
	}
	return float64(ticks%loop) / float64(loop)
}
