package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidConfig 标记所有配置类错误（未知类型、非正数尺寸、无法解析的颜色等）。
var ErrInvalidConfig = errors.New("配置无效")

// GridType 是图案类型的封闭枚举。
type GridType string

const (
	Grid  GridType = "grid"
	Hex   GridType = "hex"
	Lined GridType = "lined"
	Iso   GridType = "iso"
	Dots  GridType = "dots"
)

// GridTypes 按 CLI 帮助中的顺序列出全部图案类型。
var GridTypes = []GridType{Grid, Hex, Lined, Iso, Dots}

// ParseGridType 解析图案类型名称（忽略大小写）。
func ParseGridType(s string) (GridType, error) {
	want := GridType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range GridTypes {
		if t == want {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: 未知的图案类型 %q（可选 %s）", ErrInvalidConfig, s, gridTypeList())
}

func gridTypeList() string {
	names := make([]string, len(GridTypes))
	for i, t := range GridTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "/")
}

// GridConfig 是用户提供的图案参数，统一作用于所有面板。长度单位均为 mm。
type GridConfig struct {
	Type      GridType `json:"type"`
	Size      float64  `json:"size"`
	LineWidth float64  `json:"lineWidth"`
	Color     Color    `json:"color"`
	Margin    float64  `json:"margin"`
}

// Stroke 返回图案线条的样式。
func (g GridConfig) Stroke() Stroke {
	return Stroke{Color: g.Color, Width: g.LineWidth}
}

// Config 是一次生成所需的全部参数。
type Config struct {
	Grid        GridConfig  `json:"grid"`
	Orientation Orientation `json:"orientation"`
	Mode        Mode        `json:"mode"`
}

// DefaultConfig 返回与 CLI 默认值一致的配置。
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Type:      Grid,
			Size:      5,
			LineWidth: 0.3,
			Color:     Color{R: 0xcc, G: 0xcc, B: 0xcc, A: 255},
			Margin:    10,
		},
		Orientation: Portrait,
		Mode:        Full,
	}
}

// Validate 检查配置取值。返回的错误均包装 ErrInvalidConfig。
func (c Config) Validate() error {
	if _, err := ParseGridType(string(c.Grid.Type)); err != nil {
		return err
	}
	if _, err := ParseOrientation(string(c.Orientation)); err != nil {
		return err
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"size", c.Grid.Size},
		{"line-width", c.Grid.LineWidth},
		{"margin", c.Grid.Margin},
	} {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s 必须为正数，当前为 %g", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// ParseColor 解析 CSS 颜色：#rgb、#rrggbb、#rrggbbaa、省略 # 的十六进制值，以及 CSS 颜色名称。
func ParseColor(value string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Color{}, fmt.Errorf("%w: 颜色不能为空", ErrInvalidConfig)
	}
	if c, ok := colornames.Map[v]; ok {
		return Color{R: int(c.R), G: int(c.G), B: int(c.B), A: int(c.A)}, nil
	}
	hex := strings.TrimPrefix(v, "#")
	if !isHex(hex) {
		return Color{}, fmt.Errorf("%w: 颜色值 %q 无法解析", ErrInvalidConfig, value)
	}
	switch len(hex) {
	case 3:
		return Color{
			R: mustHex(strings.Repeat(hex[0:1], 2)),
			G: mustHex(strings.Repeat(hex[1:2], 2)),
			B: mustHex(strings.Repeat(hex[2:3], 2)),
			A: 255,
		}, nil
	case 6:
		return Color{R: mustHex(hex[0:2]), G: mustHex(hex[2:4]), B: mustHex(hex[4:6]), A: 255}, nil
	case 8:
		return Color{R: mustHex(hex[0:2]), G: mustHex(hex[2:4]), B: mustHex(hex[4:6]), A: mustHex(hex[6:8])}, nil
	default:
		return Color{}, fmt.Errorf("%w: 颜色值 %q 无法解析", ErrInvalidConfig, value)
	}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

func mustHex(s string) int {
	v, _ := strconv.ParseInt(s, 16, 64)
	return int(v)
}
