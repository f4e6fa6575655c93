package pattern

import (
	"math"

	"github.com/Icodextrin/grid-gen/geom"
	"github.com/Icodextrin/grid-gen/layout"
)

// Square 生成方格：先竖线（x = left + k·size，k 从 0 开始，直到不超过 right），
// 再横线（同样规则作用于 y）。线条恰好从区域一边画到另一边。
// 竖线条数为 floor(W/size)+1，W 为可绘制区域宽度。
func Square(area geom.Rect, grid layout.GridConfig) layout.Pattern {
	stroke := grid.Stroke()
	var segs []layout.Segment
	for _, x := range positions(area.Left(), area.W, grid.Size) {
		if s, ok := segment(geom.Pt(x, area.Top()), geom.Pt(x, area.Bottom()), stroke); ok {
			segs = append(segs, s)
		}
	}
	segs = append(segs, horizontals(area, grid.Size, stroke)...)
	return layout.Pattern{Segments: segs}
}

// Ruled 生成横线信纸，与 Square 的横线部分完全一致。
func Ruled(area geom.Rect, grid layout.GridConfig) layout.Pattern {
	return layout.Pattern{Segments: horizontals(area, grid.Size, grid.Stroke())}
}

// DotGrid 在方格的每个交点放一个圆点，直径等于线宽。顺序为逐列、列内自上而下。
func DotGrid(area geom.Rect, grid layout.GridConfig) layout.Pattern {
	xs := positions(area.Left(), area.W, grid.Size)
	ys := positions(area.Top(), area.H, grid.Size)
	dots := make([]layout.Dot, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			dots = append(dots, layout.Dot{
				Center: geom.Pt(x, y),
				Radius: grid.LineWidth / 2,
				Color:  grid.Color,
			})
		}
	}
	return layout.Pattern{Dots: dots}
}

func horizontals(area geom.Rect, size float64, stroke layout.Stroke) []layout.Segment {
	var segs []layout.Segment
	for _, y := range positions(area.Top(), area.H, size) {
		if s, ok := segment(geom.Pt(area.Left(), y), geom.Pt(area.Right(), y), stroke); ok {
			segs = append(segs, s)
		}
	}
	return segs
}

// positions 返回 start + k·step（k = 0..floor(extent/step)），最后一个值不超过 start+extent。
func positions(start, extent, step float64) []float64 {
	n := steps(extent, step)
	out := make([]float64, 0, n+1)
	for k := 0; k <= n; k++ {
		out = append(out, math.Min(start+float64(k)*step, start+extent))
	}
	return out
}
