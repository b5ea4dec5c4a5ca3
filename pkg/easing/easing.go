// Package easing 提供归一化的动画缓动曲线。
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有曲线接受一个进度值 t ∈ [0, 1]，返回缓动后的进度（大致在 [0, 1]，
// OutBack 与 Elastic 会有意越界）。超出 [0, 1] 的输入不做校验，
// 结果是公式本身的外推，调用方应自行 clamp。
//
// 参考：https://easings.net/
package easing

import "math"

// Direction 缓动方向
type Direction int

const (
	// In 缓入：开始慢，结束快
	In Direction = iota
	// Out 缓出：开始快，结束慢（In 的时间、数值镜像）
	Out
)

// Shape 曲线族
//
// 注意：没有 Circle。sqrt(1 - t²) 在 t 接近 0/1 时会因舍入出现负数开方，
// 产生 NaN。
type Shape int

const (
	// Sine 正弦曲线
	Sine Shape = iota
	// Exponent 指数曲线
	Exponent
	// OutBack 回弹曲线（越界后返回）
	OutBack
	// Elastic 弹性振荡曲线
	Elastic
)

const (
	backC1    = 1.70158
	backC3    = backC1 + 1
	elasticC4 = 2 * math.Pi / 3
)

// Easing 一个 (方向, 曲线族) 组合
//
// Easing 是值类型，可以直接用 == 比较。零值为 In Sine。
type Easing struct {
	Direction Direction
	Shape     Shape
}

// New 创建缓动描述符。任意 (Direction, Shape) 组合都是合法的。
func New(direction Direction, shape Shape) Easing {
	return Easing{Direction: direction, Shape: shape}
}

// Calc 计算进度 t 处的缓动值
//
// t == 0 返回精确的 0，t == 1 返回精确的 1，不经过公式。
// 其余输入（包括 NaN、±Inf）直接代入公式。
func (e Easing) Calc(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}

	if e.Direction == In {
		return e.in(t)
	}

	switch e.Shape {
	case Sine:
		// f(t) = sin(t·π/2)
		return math.Sin(t * math.Pi / 2)
	case Exponent:
		// f(t) = 1 - 2^(-10t)
		return 1 - math.Pow(2, -10*t)
	default:
		// 没有闭式缓出公式的曲线：out(t) = 1 - in(1 - t)
		return 1 - New(In, e.Shape).Calc(1-t)
	}
}

// in 缓入公式
func (e Easing) in(t float64) float64 {
	switch e.Shape {
	case Sine:
		// f(t) = 1 - cos(t·π/2)
		return 1 - math.Cos(t*math.Pi/2)
	case Exponent:
		// f(t) = 2^(10t - 10)
		return math.Pow(2, 10*t-10)
	case OutBack:
		// f(t) = 1.70158·t³ - 2.70158·t²
		return backC1*t*t*t - backC3*t*t
	case Elastic:
		// f(t) = -2^(10t - 10) · sin((10t - 10.75) · 2π/3)
		return -math.Pow(2, 10*t-10) * math.Sin((10*t-10.75)*elasticC4)
	default:
		return t
	}
}
