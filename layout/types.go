package layout

// 该文件定义布局结果与绘制图元，供布局计算、图案生成、渲染与调试 JSON 共用。
// 所有长度均为毫米（mm），坐标原点在页面左上角。

import (
	"fmt"

	"github.com/Icodextrin/grid-gen/geom"
)

// Result 保存一次生成的页面、面板与折线。
type Result struct {
	Page   PageSpec     `json:"page"`
	Mode   Mode         `json:"mode"`
	Grid   GridConfig   `json:"grid"`
	Panels []Panel      `json:"panels"`
	Folds  []Segment    `json:"folds"`
	Meta   DocumentMeta `json:"meta"`
}

// Segments 按渲染顺序返回全部线段：先逐个面板的图案线，再折线。
// 返回的切片归调用方所有。
func (r *Result) Segments() []Segment {
	n := len(r.Folds)
	for _, p := range r.Panels {
		n += len(p.Pattern.Segments)
	}
	out := make([]Segment, 0, n)
	for _, p := range r.Panels {
		out = append(out, p.Pattern.Segments...)
	}
	return append(out, r.Folds...)
}

// Dots 返回全部面板中的圆点。
func (r *Result) Dots() []Dot {
	var out []Dot
	for _, p := range r.Panels {
		out = append(out, p.Pattern.Dots...)
	}
	return out
}

// Panel 是页面上一块可折叠的区域，Area 为扣除边距后的可绘制区域。
type Panel struct {
	Index   int       `json:"index"`
	Bounds  geom.Rect `json:"bounds"`
	Area    geom.Rect `json:"area"`
	Pattern Pattern   `json:"pattern"`
}

// Pattern 是图案生成器针对单个面板的输出。
type Pattern struct {
	Segments []Segment `json:"segments,omitempty"`
	Dots     []Dot     `json:"dots,omitempty"`
}

// Color 采用 0-255 的 RGBA 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	A int `json:"a"`
}

// Hex 返回 #rrggbb 形式；带透明度时返回 #rrggbbaa。
func (c Color) Hex() string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Stroke 描述线条样式；Dash 为空表示实线。
type Stroke struct {
	Color Color     `json:"color"`
	Width float64   `json:"width"`
	Dash  []float64 `json:"dash,omitempty"`
}

// Segment 表示一条线段。
type Segment struct {
	From   geom.Point `json:"from"`
	To     geom.Point `json:"to"`
	Stroke Stroke     `json:"stroke"`
}

// Length 返回线段长度（mm）。
func (s Segment) Length() float64 { return s.To.Sub(s.From).Length() }

// Dashed 表示该线段是否为虚线。
func (s Segment) Dashed() bool { return len(s.Stroke.Dash) > 0 }

// Dot 表示一个实心圆点（点阵纸）。
type Dot struct {
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`
	Color  Color      `json:"color"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
