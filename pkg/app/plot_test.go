package app

import (
	"math"
	"testing"

	"github.com/decker502/easing/pkg/easing"
)

// TestToScreen 测试 (t, v) 到屏幕坐标的映射
func TestToScreen(t *testing.T) {
	area := PlotArea{X: 10, Y: 20, Width: 100, Height: 200, Overshoot: 0.5}

	tests := []struct {
		name  string
		t, v  float64
		wantX float64
		wantY float64
	}{
		{"原点", 0, 0, 10, 170},
		{"终点", 1, 1, 110, 70},
		{"中点", 0.5, 0.5, 60, 120},
		{"下越界贴边", 0, -3, 10, 220},
		{"上越界贴边", 1, 9, 110, 20},
		{"NaN 按 0", 0.5, math.NaN(), 60, 170},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := area.ToScreen(tt.t, tt.v)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.t, tt.v, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestPolyline 测试采样点序列化
func TestPolyline(t *testing.T) {
	area := PlotArea{Width: 100, Height: 100}
	coords := area.Polyline(easing.Sample(easing.Linear{}, 2))

	want := []float32{0, 100, 50, 50, 100, 0}
	if len(coords) != len(want) {
		t.Fatalf("len(coords) = %d, want %d", len(coords), len(want))
	}
	for i := range want {
		if coords[i] != want[i] {
			t.Errorf("coords[%d] = %v, want %v", i, coords[i], want[i])
		}
	}
}

// TestReplayProgress 测试回放进度循环
func TestReplayProgress(t *testing.T) {
	tests := []struct {
		ticks int
		tps   int
		want  float64
	}{
		{0, 60, 0},
		{45, 60, 0.5},
		{90, 60, 0},
		{135, 60, 0.5},
		{45, 0, 0.5}, // tps 非法时按 60
	}
	for _, tt := range tests {
		if got := replayProgress(tt.ticks, tt.tps); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("replayProgress(%d, %d) = %v, want %v", tt.ticks, tt.tps, got, tt.want)
		}
	}
}
