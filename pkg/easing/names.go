package easing

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownDirection 无法识别的方向名
	ErrUnknownDirection = errors.New("unknown easing direction")
	// ErrUnknownShape 无法识别的曲线族名
	ErrUnknownShape = errors.New("unknown easing shape")
	// ErrInvalidEasing 无法解析的缓动描述
	ErrInvalidEasing = errors.New("invalid easing")
)

var directionNames = map[Direction]string{
	In:  "in",
	Out: "out",
}

var shapeNames = map[Shape]string{
	Sine:     "sine",
	Exponent: "exponent",
	OutBack:  "outback",
	Elastic:  "elastic",
}

// 别名表的键已经过 normalizeName 处理（小写、去掉分隔符）
var directionAliases = map[string]Direction{
	"in":      In,
	"easein":  In,
	"out":     Out,
	"easeout": Out,
}

var shapeAliases = map[string]Shape{
	"sine":        Sine,
	"sin":         Sine,
	"exponent":    Exponent,
	"exponential": Exponent,
	"expo":        Exponent,
	"exp":         Exponent,
	"outback":     OutBack,
	"back":        OutBack,
	"elastic":     Elastic,
}

// Directions 按声明顺序返回所有方向
func Directions() []Direction {
	return []Direction{In, Out}
}

// Shapes 按声明顺序返回所有曲线族
func Shapes() []Shape {
	return []Shape{Sine, Exponent, OutBack, Elastic}
}

// All 返回全部缓动组合：先 In 后 Out，曲线族按声明顺序
func All() []Easing {
	all := make([]Easing, 0, len(directionNames)*len(shapeNames))
	for _, d := range Directions() {
		for _, s := range Shapes() {
			all = append(all, New(d, s))
		}
	}
	return all
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// String 返回 "方向 曲线族" 形式，如 "out elastic"，可被 Parse 解析
func (e Easing) String() string {
	return e.Direction.String() + " " + e.Shape.String()
}

// ParseDirection 解析方向名（忽略大小写，支持 "ease-in" 等别名）
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionAliases[normalizeName(s)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseShape 解析曲线族名（忽略大小写，支持 "expo"、"back" 等别名）
func ParseShape(s string) (Shape, error) {
	if shape, ok := shapeAliases[normalizeName(s)]; ok {
		return shape, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Parse 解析完整的缓动描述
//
// 支持的写法：
//   - "out elastic"、"out-elastic"、"out_elastic"
//   - "ease-out-elastic"
//   - "easeOutElastic"、"EaseInOutBack"（驼峰，动画配置里常见）
func Parse(s string) (Easing, error) {
	words := splitWords(s)
	if len(words) > 0 && words[0] == "ease" {
		words = words[1:]
	}
	if len(words) < 2 {
		return Easing{}, fmt.Errorf("%w: %q (want \"<direction> <shape>\")", ErrInvalidEasing, s)
	}

	d, err := ParseDirection(words[0])
	if err != nil {
		return Easing{}, fmt.Errorf("%w: %q: %w", ErrInvalidEasing, s, err)
	}
	shape, err := ParseShape(strings.Join(words[1:], ""))
	if err != nil {
		return Easing{}, fmt.Errorf("%w: %q: %w", ErrInvalidEasing, s, err)
	}
	return New(d, shape), nil
}

// MarshalText 实现 encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if _, ok := directionNames[d]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (s Shape) MarshalText() ([]byte, error) {
	if _, ok := shapeNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText 实现 encoding.TextMarshaler，输出 "out elastic" 形式
func (e Easing) MarshalText() ([]byte, error) {
	if _, err := e.Direction.MarshalText(); err != nil {
		return nil, err
	}
	if _, err := e.Shape.MarshalText(); err != nil {
		return nil, err
	}
	return []byte(e.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (e *Easing) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalYAML 输出标量形式 "out elastic"
func (e Easing) MarshalYAML() (interface{}, error) {
	text, err := e.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML 支持两种写法：
//
//	easing: out elastic
//	easing: {direction: out, shape: elastic}
func (e *Easing) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return e.UnmarshalText([]byte(value.Value))
	case yaml.MappingNode:
		var raw struct {
			Direction string `yaml:"direction"`
			Shape     string `yaml:"shape"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		if raw.Direction == "" || raw.Shape == "" {
			return fmt.Errorf("%w: line %d: both direction and shape are required", ErrInvalidEasing, value.Line)
		}
		d, err := ParseDirection(raw.Direction)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		s, err := ParseShape(raw.Shape)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*e = New(d, s)
		return nil
	default:
		return fmt.Errorf("%w: line %d: expected a string or a mapping", ErrInvalidEasing, value.Line)
	}
}

// normalizeName 小写并去掉空白、'-'、'_'
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// splitWords 按空白、'-'、'_' 以及驼峰边界拆词，结果全部小写
func splitWords(s string) []string {
	var b strings.Builder
	var prev rune
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			b.WriteRune(' ')
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		prev = r
	}
	return strings.Fields(b.String())
}
