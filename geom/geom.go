// Package geom 提供页面坐标系下的点、矩形与线段裁剪。
//
// 坐标单位为毫米，原点在页面左上角，y 轴向下。
package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Epsilon 是长度比较时允许的浮点误差（mm）。
const Epsilon = 1e-9

// Point 是页面上的一个点（mm）。
type Point = vec.Vec2

// Pt 构造一个 Point。
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect 以左上角与宽高描述一个轴对齐矩形。
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Area() float64   { return r.W * r.H }

// Center 返回矩形中心点。
func (r Rect) Center() Point { return Pt(r.X+r.W/2, r.Y+r.H/2) }

// Empty 在宽或高不为正时返回 true。
func (r Rect) Empty() bool { return r.W <= Epsilon || r.H <= Epsilon }

// Inset 返回四边各向内收缩 m 后的矩形。收缩过度时宽高可能为负，调用方用 Empty 判断。
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}

// Contains 判断点是否落在矩形内（含边界，允许 eps 误差）。
func (r Rect) Contains(p Point, eps float64) bool {
	return p.X >= r.Left()-eps && p.X <= r.Right()+eps &&
		p.Y >= r.Top()-eps && p.Y <= r.Bottom()+eps
}

// Overlaps 判断两个矩形的内部是否相交（仅共享边界不算相交）。
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right()-Epsilon && o.Left() < r.Right()-Epsilon &&
		r.Top() < o.Bottom()-Epsilon && o.Top() < r.Bottom()-Epsilon
}

// NearlyEqual 比较两个长度是否在 Epsilon 内相等。
func NearlyEqual(a, b float64) bool { return math.Abs(a-b) <= 1e-6 }

// ClipSegment 用 Liang–Barsky 算法把线段 a→b 裁剪到矩形 r 内。
// 线段完全落在矩形外、或裁剪后退化为一个点时 ok 为 false。
func ClipSegment(a, b Point, r Rect) (Point, Point, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - r.Left()},
		{d.X, r.Right() - a.X},
		{-d.Y, a.Y - r.Top()},
		{d.Y, r.Bottom() - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < -Epsilon {
				return Point{}, Point{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return Point{}, Point{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return Point{}, Point{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	from := a.Add(d.Mul(t0))
	to := a.Add(d.Mul(t1))
	from, to = snap(from, r), snap(to, r)
	if to.Sub(from).Length() <= Epsilon {
		return Point{}, Point{}, false
	}
	return from, to, true
}

// snap 把由浮点误差略微越界的端点压回矩形边界上。
func snap(p Point, r Rect) Point {
	return Pt(clamp(p.X, r.Left(), r.Right()), clamp(p.Y, r.Top(), r.Bottom()))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
