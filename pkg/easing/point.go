package easing

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point 曲线上的一个采样点
//
// JSON 不支持 NaN 和 ±Inf，这些值编码为字符串 "NaN"、"+Inf"、"-Inf"。
type Point struct {
	T float64 `json:"t" yaml:"t"`
	V float64 `json:"v" yaml:"v"`
}

type jsonPoint struct {
	T jsonFloat `json:"t"`
	V jsonFloat `json:"v"`
}

// MarshalJSON 实现 json.Marshaler
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPoint{T: jsonFloat(p.T), V: jsonFloat(p.V)})
}

// UnmarshalJSON 实现 json.Unmarshaler，接受数字或非有限值字符串
func (p *Point) UnmarshalJSON(data []byte) error {
	var jp jsonPoint
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	p.T, p.V = float64(jp.T), float64(jp.V)
	return nil
}

// jsonFloat 可以表示非有限值的 JSON 浮点数
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = jsonFloat(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "NaN":
		*f = jsonFloat(math.NaN())
	case "+Inf", "Inf":
		*f = jsonFloat(math.Inf(1))
	case "-Inf":
		*f = jsonFloat(math.Inf(-1))
	default:
		return fmt.Errorf("invalid float %q", s)
	}
	return nil
}
