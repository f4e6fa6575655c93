package layout

import (
	"fmt"

	"github.com/Icodextrin/grid-gen/geom"
)

// 折线样式沿用常见裁切线：浅灰、0.2mm、2mm 间隔的虚线。
const (
	foldWidth = 0.2
	foldDash  = 2.0
)

var foldColor = Color{R: 0x99, G: 0x99, B: 0x99, A: 255}

// FoldStroke 返回折线的虚线样式。每次调用返回新的 Dash 切片。
func FoldStroke() Stroke {
	return Stroke{Color: foldColor, Width: foldWidth, Dash: []float64{foldDash, foldDash}}
}

// Panels 按版式把画布切分为互不重叠、无缝拼合的面板。
// half 沿长边对半切分；quarter 为 2×2，顺序为左上、右上、左下、右下。
func Panels(page PageSpec, mode Mode) ([]geom.Rect, error) {
	w, h := page.Width, page.Height
	switch mode {
	case Full:
		return []geom.Rect{page.Bounds()}, nil
	case Half:
		if h >= w {
			return []geom.Rect{
				{X: 0, Y: 0, W: w, H: h / 2},
				{X: 0, Y: h / 2, W: w, H: h / 2},
			}, nil
		}
		return []geom.Rect{
			{X: 0, Y: 0, W: w / 2, H: h},
			{X: w / 2, Y: 0, W: w / 2, H: h},
		}, nil
	case Quarter:
		hw, hh := w/2, h/2
		return []geom.Rect{
			{X: 0, Y: 0, W: hw, H: hh},
			{X: hw, Y: 0, W: hw, H: hh},
			{X: 0, Y: hh, W: hw, H: hh},
			{X: hw, Y: hh, W: hw, H: hh},
		}, nil
	default:
		return nil, fmt.Errorf("%w: 不支持的版式 %q", ErrInvalidConfig, mode)
	}
}

// Folds 返回面板之间的折线，恰好落在面板边界上。
// full 没有折线；half 一条，横跨短边；quarter 先竖后横两条，贯穿整张画布并交于中心。
func Folds(page PageSpec, mode Mode) ([]Segment, error) {
	w, h := page.Width, page.Height
	vertical := Segment{From: geom.Pt(w/2, 0), To: geom.Pt(w/2, h), Stroke: FoldStroke()}
	horizontal := Segment{From: geom.Pt(0, h/2), To: geom.Pt(w, h/2), Stroke: FoldStroke()}
	switch mode {
	case Full:
		return nil, nil
	case Half:
		if h >= w {
			return []Segment{horizontal}, nil
		}
		return []Segment{vertical}, nil
	case Quarter:
		return []Segment{vertical, horizontal}, nil
	default:
		return nil, fmt.Errorf("%w: 不支持的版式 %q", ErrInvalidConfig, mode)
	}
}
