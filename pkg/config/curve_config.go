// Package config 提供曲线预览与采样配置的 YAML 加载
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/easing/pkg/easing"
)

// ErrInvalidCurve 曲线配置无法构建
var ErrInvalidCurve = errors.New("invalid curve config")

// 曲线类型
const (
	KindEasing   = "easing"
	KindLinear   = "linear"
	KindBlend    = "blend"
	KindPowerIn  = "power_in"
	KindPowerOut = "power_out"
	KindSCurve   = "scurve"
)

// ShowcaseConfig 曲线预览/批量采样的完整配置
type ShowcaseConfig struct {
	Window WindowConfig  `yaml:"window"`
	Grid   GridConfig    `yaml:"grid"`
	Plot   PlotConfig    `yaml:"plot"`
	Curves []CurveConfig `yaml:"curves"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig 网格布局配置
type GridConfig struct {
	Columns     int `yaml:"columns"`
	CellWidth   int `yaml:"cell_width"`
	CellHeight  int `yaml:"cell_height"`
	Padding     int `yaml:"padding"`
	RowsPerPage int `yaml:"rows_per_page"` // 每页显示的行数
}

// PlotConfig 曲线绘制配置
type PlotConfig struct {
	Samples   int     `yaml:"samples"`   // 每条曲线的采样段数
	Overshoot float64 `yaml:"overshoot"` // 纵轴在 [0, 1] 之外预留的范围（回弹/弹性曲线会越界）
}

// PowerConfig 幂函数曲线参数
type PowerConfig struct {
	Polarity float64 `yaml:"polarity"`
	Power    float64 `yaml:"power"`
}

// CurveConfig 单条曲线配置
//
// 示例：
//
//	- name: out elastic
//	  easing: out elastic
//	- name: soft s
//	  kind: scurve
//	  center: 0.5
//	  smoothing: 0.3
//	  in:  {polarity: 1, power: 3}
//	  out: {polarity: 1, power: 3}
type CurveConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // 为空且设置了 easing 时按 "easing" 处理

	// easing / blend
	Easing    *easing.Easing `yaml:"easing,omitempty"`
	Linearity float64        `yaml:"linearity,omitempty"`

	// power_in / power_out
	Polarity float64 `yaml:"polarity,omitempty"`
	Power    float64 `yaml:"power,omitempty"`

	// scurve
	Center    *float64       `yaml:"center,omitempty"`
	Smoothing float64        `yaml:"smoothing,omitempty"`
	In        PowerConfig    `yaml:"in,omitempty"`
	Out       PowerConfig    `yaml:"out,omitempty"`
	Smooth    *easing.Easing `yaml:"smooth,omitempty"`
}

// Build 根据配置构建曲线
func (c CurveConfig) Build() (easing.Curve, error) {
	switch c.kind() {
	case KindEasing:
		if c.Easing == nil {
			return nil, fmt.Errorf("%w: %q: easing is required", ErrInvalidCurve, c.Name)
		}
		return *c.Easing, nil
	case KindLinear:
		return easing.Linear{}, nil
	case KindBlend:
		if c.Easing == nil {
			return nil, fmt.Errorf("%w: %q: blend needs an easing", ErrInvalidCurve, c.Name)
		}
		return easing.LinearBlend{Curve: *c.Easing, Linearity: c.Linearity}, nil
	case KindPowerIn:
		if c.Power <= 0 {
			return nil, fmt.Errorf("%w: %q: power must be positive", ErrInvalidCurve, c.Name)
		}
		return easing.PowerIn{Polarity: c.Polarity, Power: c.Power}, nil
	case KindPowerOut:
		if c.Power <= 0 {
			return nil, fmt.Errorf("%w: %q: power must be positive", ErrInvalidCurve, c.Name)
		}
		return easing.PowerOut{Polarity: c.Polarity, Power: c.Power}, nil
	case KindSCurve:
		return c.buildSCurve()
	default:
		return nil, fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidCurve, c.Name, c.Kind)
	}
}

func (c CurveConfig) buildSCurve() (easing.Curve, error) {
	center := 0.5
	if c.Center != nil {
		center = *c.Center
	}
	if center <= 0 || center >= 1 {
		return nil, fmt.Errorf("%w: %q: center must be inside (0, 1)", ErrInvalidCurve, c.Name)
	}
	if c.Smoothing < 0 || c.Smoothing > 1 {
		return nil, fmt.Errorf("%w: %q: smoothing must be inside [0, 1]", ErrInvalidCurve, c.Name)
	}

	in, out := c.In, c.Out
	if in.Power == 0 {
		in = PowerConfig{Polarity: 1, Power: 2}
	}
	if out.Power == 0 {
		out = PowerConfig{Polarity: 1, Power: 2}
	}

	s := easing.SCurve{
		In:        easing.PowerIn{Polarity: in.Polarity, Power: in.Power},
		Out:       easing.PowerOut{Polarity: out.Polarity, Power: out.Power},
		Center:    center,
		Smoothing: c.Smoothing,
	}
	if c.Smooth != nil {
		s.Smooth = *c.Smooth
	}
	return s, nil
}

func (c CurveConfig) kind() string {
	if c.Kind == "" && c.Easing != nil {
		return KindEasing
	}
	return c.Kind
}

// NamedCurve 已构建的曲线及其显示名
type NamedCurve struct {
	Name  string
	Curve easing.Curve
}

// BuildCurves 构建配置中的全部曲线，遇到第一个错误即返回
func (c *ShowcaseConfig) BuildCurves() ([]NamedCurve, error) {
	curves := make([]NamedCurve, 0, len(c.Curves))
	for _, cc := range c.Curves {
		curve, err := cc.Build()
		if err != nil {
			return nil, err
		}
		curves = append(curves, NamedCurve{Name: cc.Name, Curve: curve})
	}
	return curves, nil
}

// DefaultCurves 返回 8 种内置缓动组合的配置
func DefaultCurves() []CurveConfig {
	all := easing.All()
	curves := make([]CurveConfig, 0, len(all))
	for _, e := range all {
		curves = append(curves, CurveConfig{Name: e.String(), Kind: KindEasing, Easing: &e})
	}
	return curves
}

// LoadShowcaseConfig 从文件加载配置
func LoadShowcaseConfig(path string) (*ShowcaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve config: %w", err)
	}
	cfg, err := ParseShowcaseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseShowcaseConfig 解析 YAML 配置并设置默认值
func ParseShowcaseConfig(data []byte) (*ShowcaseConfig, error) {
	var cfg ShowcaseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse curve config: %w", err)
	}

	applyDefaults(&cfg)

	// 提前构建一次，配置错误在加载时暴露
	if _, err := cfg.BuildCurves(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *ShowcaseConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 960
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 720
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Easing curves"
	}
	if cfg.Grid.Columns == 0 {
		cfg.Grid.Columns = 4
	}
	if cfg.Grid.CellWidth == 0 {
		cfg.Grid.CellWidth = 220
	}
	if cfg.Grid.CellHeight == 0 {
		cfg.Grid.CellHeight = 220
	}
	if cfg.Grid.Padding == 0 {
		cfg.Grid.Padding = 10
	}
	if cfg.Grid.RowsPerPage == 0 {
		cfg.Grid.RowsPerPage = 3
	}
	if cfg.Plot.Samples == 0 {
		cfg.Plot.Samples = 64
	}
	if cfg.Plot.Overshoot == 0 {
		cfg.Plot.Overshoot = 0.5
	}

	if len(cfg.Curves) == 0 {
		cfg.Curves = DefaultCurves()
	}

	// 为每条曲线设置显示名
	for i := range cfg.Curves {
		if cfg.Curves[i].Name != "" {
			continue
		}
		if cfg.Curves[i].Easing != nil {
			cfg.Curves[i].Name = cfg.Curves[i].Easing.String()
		} else {
			cfg.Curves[i].Name = fmt.Sprintf("%s #%d", cfg.Curves[i].Kind, i+1)
		}
	}
}
