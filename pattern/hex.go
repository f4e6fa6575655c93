package pattern

import (
	"math"

	"github.com/Icodextrin/grid-gen/geom"
	"github.com/Icodextrin/grid-gen/layout"
)

// Hexagons 生成尖顶（pointy-top）六边形网格，size 为边长（即外接圆半径）。
//
// 六边形宽 √3·size、行距 1.5·size，奇数行向右错开半个六边形宽度。
// 第 0 行第 0 列的中心位于区域左上角。每个六边形只负责三条边
// （顶点→右上、右上→右下、右下→底点），相邻六边形共享的边因此只输出一次；
// 所有边裁剪到区域内，裁剪后为空的边直接丢弃。输出顺序：行、列、边。
func Hexagons(area geom.Rect, grid layout.GridConfig) layout.Pattern {
	s := grid.Size
	w := math.Sqrt(3) * s
	rowStep := 1.5 * s
	stroke := grid.Stroke()

	rows := int(math.Floor((area.H+s)/rowStep)) + 1
	cols := int(math.Floor((area.W+w)/w)) + 1

	var segs []layout.Segment
	for r := -1; r <= rows; r++ {
		cy := area.Top() + float64(r)*rowStep
		offset := 0.0
		if r%2 != 0 {
			offset = w / 2
		}
		for c := -1; c <= cols; c++ {
			cx := area.Left() + float64(c)*w + offset
			top := geom.Pt(cx, cy-s)
			upperRight := geom.Pt(cx+w/2, cy-s/2)
			lowerRight := geom.Pt(cx+w/2, cy+s/2)
			bottom := geom.Pt(cx, cy+s)
			for _, e := range [3][2]geom.Point{
				{top, upperRight},
				{upperRight, lowerRight},
				{lowerRight, bottom},
			} {
				from, to, ok := geom.ClipSegment(e[0], e[1], area)
				if !ok {
					continue
				}
				if seg, ok := segment(from, to, stroke); ok {
					segs = append(segs, seg)
				}
			}
		}
	}
	return layout.Pattern{Segments: segs}
}
