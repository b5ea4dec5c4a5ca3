package easing

import "math"

// Curve 把线性进度映射为缓动进度的曲线
//
// Easing 以及本文件中的组合曲线都实现了 Curve。
type Curve interface {
	Calc(t float64) float64
}

// CurveFunc 让普通函数满足 Curve 接口
type CurveFunc func(t float64) float64

// Calc 调用 f(t)
func (f CurveFunc) Calc(t float64) float64 {
	return f(t)
}

// smoothingEpsilon SCurve 过渡区的最小半宽（float32 的机器 epsilon）
const smoothingEpsilon = 1.1920929e-07

// Linear 线性曲线（无缓动）
type Linear struct{}

// Calc 返回值 = 输入值
func (Linear) Calc(t float64) float64 {
	return t
}

// LinearBlend 在曲线与直线之间按 Linearity 混合
//
// Linearity = 0 为原曲线，Linearity = 1 为直线。
type LinearBlend struct {
	Curve     Curve
	Linearity float64
}

// Calc 公式：f(t) = lerp(curve(t), t, linearity)
func (b LinearBlend) Calc(t float64) float64 {
	return lerp(b.Curve.Calc(t), t, b.Linearity)
}

// PowerIn 幂函数缓入
//
// Polarity 会被限制在 [0, 1]：
//   - 1：f(t) = t^power
//   - 0：f(t) = 1 - (1-t)^(1/power)
//   - 其余：两者按 t 混合
type PowerIn struct {
	Polarity float64
	Power    float64
}

// Calc 计算幂函数缓入值
func (p PowerIn) Calc(t float64) float64 {
	polarity := clamp01(p.Polarity)
	switch polarity {
	case 1:
		return math.Pow(t, p.Power)
	case 0:
		return 1 - math.Pow(1-t, 1/p.Power)
	default:
		return lerp(1-math.Pow(1-t, 1/p.Power), math.Pow(t, p.Power), t)
	}
}

// PowerOut 幂函数缓出
//
// Polarity 会被限制在 [0, 1]：
//   - 1：f(t) = 1 - (1-t)^power
//   - 0：f(t) = t^(1/power)
//   - 其余：两者按 t 混合
type PowerOut struct {
	Polarity float64
	Power    float64
}

// Calc 计算幂函数缓出值
func (p PowerOut) Calc(t float64) float64 {
	polarity := clamp01(p.Polarity)
	switch polarity {
	case 1:
		return 1 - math.Pow(1-t, p.Power)
	case 0:
		return math.Pow(t, 1/p.Power)
	default:
		return lerp(math.Pow(t, 1/p.Power), 1-math.Pow(1-t, p.Power), t)
	}
}

// SCurve 由缓入段和缓出段拼接的 S 形曲线
//
// 缓入段覆盖 [0, smoothingEnd]，缓出段覆盖 [smoothingStart, 1]，
// 两段在 Center 附近的重叠区内用 Smooth 曲线交叉淡化。
// Smoothing ∈ [0, 1] 控制重叠区占左右两侧长度的比例。
type SCurve struct {
	In        PowerIn
	Out       PowerOut
	Center    float64
	Smoothing float64
	Smooth    Curve
}

// Calc 计算 S 曲线的值
func (s SCurve) Calc(t float64) float64 {
	lenStart, lenEnd := s.Center, 1-s.Center

	smoothingStart := s.Center - math.Max(lenStart*s.Smoothing, smoothingEpsilon)
	smoothingEnd := s.Center + math.Max(lenEnd*s.Smoothing, smoothingEpsilon)

	inLen := smoothingEnd
	inProgress := t / inLen

	outLen := 1 - smoothingStart
	outProgress := (t - smoothingStart) / outLen

	var inValue, outValue float64
	if inProgress < 1 {
		inValue = s.In.Calc(inProgress) * inLen
	}
	if outProgress > 0 {
		outValue = s.Out.Calc(outProgress)*outLen + smoothingStart
	}

	if inValue != 0 && outValue != 0 {
		progress := (t - smoothingStart) / (smoothingEnd - smoothingStart)
		return lerp(inValue, outValue, s.smooth().Calc(progress))
	}
	return inValue + outValue
}

func (s SCurve) smooth() Curve {
	if s.Smooth == nil {
		return Linear{}
	}
	return s.Smooth
}

// Sample 在 [0, 1] 上等距采样 steps+1 个点（t = i/steps）
//
// steps < 1 按 1 处理。
func Sample(c Curve, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	points := make([]Point, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		points[i] = Point{T: t, V: c.Calc(t)}
	}
	return points
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
