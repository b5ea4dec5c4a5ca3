package easing

import (
	"math"
	"testing"
)

// TestCalcEndpoints 测试所有组合在端点处精确返回 0 和 1
func TestCalcEndpoints(t *testing.T) {
	for _, e := range All() {
		t.Run(e.String(), func(t *testing.T) {
			if got := e.Calc(0); got != 0 || math.Signbit(got) {
				t.Errorf("%v.Calc(0) = %v, 期望精确的 0", e, got)
			}
			if got := e.Calc(1); got != 1 {
				t.Errorf("%v.Calc(1) = %v, 期望精确的 1", e, got)
			}
		})
	}
}

// TestCalcReferenceValues 测试各公式在典型进度处的值
func TestCalcReferenceValues(t *testing.T) {
	tests := []struct {
		name     string
		easing   Easing
		input    float64
		expected float64
	}{
		{"缓入正弦 中点", New(In, Sine), 0.5, 0.2928932188},
		{"缓入正弦 四分之一", New(In, Sine), 0.25, 0.0761204675},
		{"缓出正弦 中点", New(Out, Sine), 0.5, 0.7071067812},
		{"缓出正弦 四分之三", New(Out, Sine), 0.75, 0.9238795325},
		{"缓入指数 中点", New(In, Exponent), 0.5, 0.03125},
		{"缓出指数 中点", New(Out, Exponent), 0.5, 0.96875},
		{"缓出指数 四分之一", New(Out, Exponent), 0.25, 0.8232233047},
		{"缓入回弹 中点", New(In, OutBack), 0.5, -0.4626975},
		{"缓出回弹 中点", New(Out, OutBack), 0.5, 1.4626975},
		{"缓入弹性 中点", New(In, Elastic), 0.5, -0.015625},
		{"缓出弹性 中点", New(Out, Elastic), 0.5, 1.015625},
		{"缓入弹性 四分之三", New(In, Elastic), 0.75, 0.0883883476},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.easing.Calc(tt.input)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("%v.Calc(%v) = %v, 期望 %v", tt.easing, tt.input, result, tt.expected)
			}
		})
	}
}

// TestCalcBoundaryOverridesFormula 端点直接返回，不走多项式
// 原始多项式在 t=1 处为 1.70158 - 2.70158 = -1
func TestCalcBoundaryOverridesFormula(t *testing.T) {
	e := New(In, OutBack)
	if got := e.Calc(1); got != 1 {
		t.Errorf("In OutBack Calc(1) = %v, 期望 1", got)
	}
	if raw := e.in(1); math.Abs(raw-(-1)) > 1e-12 {
		t.Errorf("In OutBack 原始公式在 t=1 处 = %v, 期望 -1", raw)
	}

	// 接近端点时使用公式，与端点值不连续
	if got := e.Calc(math.Nextafter(1, 0)); got > -0.99 {
		t.Errorf("In OutBack Calc(1-ulp) = %v, 期望接近 -1", got)
	}
}

// TestOutMirrorsIn 没有闭式缓出公式的曲线满足 out(t) = 1 - in(1-t)
func TestOutMirrorsIn(t *testing.T) {
	for _, shape := range []Shape{OutBack, Elastic} {
		in := New(In, shape)
		out := New(Out, shape)
		for i := 1; i < 100; i++ {
			p := float64(i) / 100
			want := 1 - in.Calc(1-p)
			if got := out.Calc(p); math.Abs(got-want) > 1e-5 {
				t.Errorf("%v.Calc(%v) = %v, 期望 %v", out, p, got, want)
			}
		}
	}
}

// TestElasticMirrorSum 中点处 in(0.5) + out(0.5) = 1
func TestElasticMirrorSum(t *testing.T) {
	sum := New(In, Elastic).Calc(0.5) + New(Out, Elastic).Calc(0.5)
	if math.Abs(sum-1) > 1e-5 {
		t.Errorf("In Elastic(0.5) + Out Elastic(0.5) = %v, 期望 1", sum)
	}
}

// TestSineMonotonic 正弦曲线在 [0, 1] 上单调不减
func TestSineMonotonic(t *testing.T) {
	for _, d := range Directions() {
		e := New(d, Sine)
		t.Run(e.String(), func(t *testing.T) {
			prev := e.Calc(0)
			for i := 1; i <= 1000; i++ {
				p := float64(i) / 1000
				v := e.Calc(p)
				if v < prev {
					t.Fatalf("%v 在 t=%v 处下降: %v < %v", e, p, v, prev)
				}
				prev = v
			}
		})
	}
}

// TestOvershootingShapes 回弹与弹性曲线会越界，这是预期行为
func TestOvershootingShapes(t *testing.T) {
	if v := New(Out, OutBack).Calc(0.5); v <= 1 {
		t.Errorf("Out OutBack(0.5) = %v, 期望大于 1", v)
	}
	if v := New(In, Elastic).Calc(0.5); v >= 0 {
		t.Errorf("In Elastic(0.5) = %v, 期望小于 0", v)
	}
}

// TestCalcNaNAndInfinity 不做校验：NaN 透传，越界输入按公式外推
func TestCalcNaNAndInfinity(t *testing.T) {
	for _, e := range All() {
		if got := e.Calc(math.NaN()); !math.IsNaN(got) {
			t.Errorf("%v.Calc(NaN) = %v, 期望 NaN", e, got)
		}
	}

	if got := New(In, Exponent).Calc(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("In Exponent Calc(+Inf) = %v, 期望 +Inf", got)
	}
	if got := New(Out, Exponent).Calc(2); math.Abs(got-(1-math.Pow(2, -20))) > 1e-12 {
		t.Errorf("Out Exponent Calc(2) = %v, 期望公式外推值", got)
	}
}

// TestEasingEquality 相同字段的描述符相等
func TestEasingEquality(t *testing.T) {
	if New(Out, Elastic) != New(Out, Elastic) {
		t.Error("相同的 (方向, 曲线族) 应该相等")
	}
	if New(Out, Elastic) == New(In, Elastic) {
		t.Error("方向不同应该不相等")
	}
	if New(Out, Elastic) == New(Out, Sine) {
		t.Error("曲线族不同应该不相等")
	}

	seen := make(map[Easing]bool)
	for _, e := range All() {
		if seen[e] {
			t.Errorf("All() 重复返回 %v", e)
		}
		seen[e] = true
	}
	if len(seen) != 8 {
		t.Errorf("All() 返回 %d 个组合, 期望 8", len(seen))
	}
}

// TestZeroValue 零值为 In Sine
func TestZeroValue(t *testing.T) {
	var e Easing
	if e != New(In, Sine) {
		t.Errorf("零值 = %v, 期望 in sine", e)
	}
}

// TestUnknownShapeFallsBackToLinear 未知曲线族按线性处理，缓出镜像后仍为线性
func TestUnknownShapeFallsBackToLinear(t *testing.T) {
	for _, d := range Directions() {
		e := New(d, Shape(99))
		if got := e.Calc(0.3); math.Abs(got-0.3) > 1e-12 {
			t.Errorf("%v.Calc(0.3) = %v, 期望 0.3", e, got)
		}
	}
}

func BenchmarkCalc(b *testing.B) {
	curves := All()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := curves[i%len(curves)]
		_ = e.Calc(float64(i%1000) / 1000)
	}
}
