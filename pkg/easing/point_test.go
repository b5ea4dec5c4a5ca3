package easing

import (
	"encoding/json"
	"math"
	"testing"
)

// TestPointJSON 测试采样点的 JSON 编码，非有限值编码为字符串
func TestPointJSON(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  string
	}{
		{"有限值", Point{T: 0.5, V: 0.03125}, `{"t":0.5,"v":0.03125}`},
		{"NaN", Point{T: math.NaN(), V: math.NaN()}, `{"t":"NaN","v":"NaN"}`},
		{"正无穷", Point{T: 1000, V: math.Inf(1)}, `{"t":1000,"v":"+Inf"}`},
		{"负无穷", Point{T: -1, V: math.Inf(-1)}, `{"t":-1,"v":"-Inf"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.point)
			if err != nil {
				t.Fatalf("json.Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

// TestPointUnmarshalJSON 数字与非有限值字符串都能解码
func TestPointUnmarshalJSON(t *testing.T) {
	var points []Point
	data := `[{"t":0.25,"v":1},{"t":"NaN","v":"+Inf"},{"t":2,"v":"-Inf"}]`
	if err := json.Unmarshal([]byte(data), &points); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	if points[0] != (Point{T: 0.25, V: 1}) {
		t.Errorf("points[0] = %+v", points[0])
	}
	if !math.IsNaN(points[1].T) || !math.IsInf(points[1].V, 1) {
		t.Errorf("points[1] = %+v, want {NaN +Inf}", points[1])
	}
	if !math.IsInf(points[2].V, -1) {
		t.Errorf("points[2].V = %v, want -Inf", points[2].V)
	}

	var p Point
	if err := json.Unmarshal([]byte(`{"t":"soon","v":0}`), &p); err == nil {
		t.Error("json.Unmarshal() with bad float string should fail")
	}
}
