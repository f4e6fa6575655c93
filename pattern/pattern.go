// Package pattern 在面板的可绘制区域内生成各类纸张图案。
//
// 每个生成器都是纯函数：相同的 (区域, 配置) 总是得到相同顺序的图元；
// 所有图元都落在区域内（含边界），不会产生零长度线段。
package pattern

import (
	"fmt"
	"math"

	"github.com/Icodextrin/grid-gen/geom"
	"github.com/Icodextrin/grid-gen/layout"
)

// Func 是单一图案类型的生成函数。
type Func func(area geom.Rect, grid layout.GridConfig) layout.Pattern

// Generator 按 GridConfig.Type 分派到对应的生成函数，实现 layout.Patterner。
type Generator struct{}

var _ layout.Patterner = Generator{}

// Pattern implements layout.Patterner.
func (Generator) Pattern(area geom.Rect, grid layout.GridConfig) (layout.Pattern, error) {
	fn, err := Lookup(grid.Type)
	if err != nil {
		return layout.Pattern{}, err
	}
	if area.Empty() {
		return layout.Pattern{}, fmt.Errorf("%w: 可绘制区域为空", layout.ErrInvalidConfig)
	}
	if !(grid.Size > 0) {
		return layout.Pattern{}, fmt.Errorf("%w: size 必须为正数，当前为 %g", layout.ErrInvalidConfig, grid.Size)
	}
	return fn(area, grid), nil
}

// Lookup 返回图案类型对应的生成函数。
func Lookup(t layout.GridType) (Func, error) {
	switch t {
	case layout.Grid:
		return Square, nil
	case layout.Lined:
		return Ruled, nil
	case layout.Hex:
		return Hexagons, nil
	case layout.Iso:
		return Isometric, nil
	case layout.Dots:
		return DotGrid, nil
	default:
		return nil, fmt.Errorf("%w: 未知的图案类型 %q", layout.ErrInvalidConfig, t)
	}
}

// steps 返回在 extent 内按 step 等距放置时的最大下标：floor(extent/step)。
// 允许极小的浮点误差，使恰好落在边界上的最后一条线不会丢失。
func steps(extent, step float64) int {
	return int(math.Floor(extent/step + 1e-9))
}

// segment 构造一条使用 stroke 的线段；退化为点时 ok 为 false。
func segment(from, to geom.Point, stroke layout.Stroke) (layout.Segment, bool) {
	if to.Sub(from).Length() <= geom.Epsilon {
		return layout.Segment{}, false
	}
	return layout.Segment{From: from, To: to, Stroke: stroke}, true
}
