package pattern

import (
	"math"

	"github.com/Icodextrin/grid-gen/geom"
	"github.com/Icodextrin/grid-gen/layout"
)

// isoAngles 是等距网格三组平行线的方向（度）。
var isoAngles = [3]float64{0, 60, 120}

// Isometric 生成等距（三角）网格：0°、60°、120° 三组平行线，
// 每组相邻两条线的垂直距离为 size。三组线在 k = 0 时都经过区域左上角，
// 因而交于同一组格点，三角形边长为 2·size/√3。每条线裁剪到区域内。
// 输出顺序：方向组，组内按 k 递增。
func Isometric(area geom.Rect, grid layout.GridConfig) layout.Pattern {
	origin := geom.Pt(area.Left(), area.Top())
	corners := [4]geom.Point{
		geom.Pt(0, 0),
		geom.Pt(area.W, 0),
		geom.Pt(0, area.H),
		geom.Pt(area.W, area.H),
	}
	reach := 2 * (area.W + area.H)
	stroke := grid.Stroke()

	var segs []layout.Segment
	for _, deg := range isoAngles {
		rad := deg * math.Pi / 180
		sin, cos := math.Sincos(rad)
		dir := geom.Pt(cos, sin)
		normal := geom.Pt(-sin, cos)

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, c := range corners {
			d := c.X*normal.X + c.Y*normal.Y
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
		}
		kmin := int(math.Ceil(lo/grid.Size - 1e-9))
		kmax := int(math.Floor(hi/grid.Size + 1e-9))
		for k := kmin; k <= kmax; k++ {
			p := origin.Add(normal.Mul(float64(k) * grid.Size))
			a := p.Sub(dir.Mul(reach))
			b := p.Add(dir.Mul(reach))
			from, to, ok := geom.ClipSegment(a, b, area)
			if !ok {
				continue
			}
			if seg, ok := segment(from, to, stroke); ok {
				segs = append(segs, seg)
			}
		}
	}
	return layout.Pattern{Segments: segs}
}
