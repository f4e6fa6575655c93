package layout

import (
	"fmt"
	"strings"

	"github.com/Icodextrin/grid-gen/geom"
)

// US Letter（8.5×11in）的纵向尺寸。
const (
	LetterWidth  = 215.9
	LetterHeight = 279.4
)

// Orientation 表示纸张方向。
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation 解析 portrait/landscape（忽略大小写）。
func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case Portrait, Landscape:
		return o, nil
	default:
		return "", fmt.Errorf("%w: 不支持的纸张方向 %q（可选 portrait/landscape）", ErrInvalidConfig, s)
	}
}

// Mode 表示页面被切分成几个面板。
type Mode string

const (
	Full    Mode = "full"
	Half    Mode = "half"
	Quarter Mode = "quarter"
)

// ParseMode 解析 full/half/quarter（忽略大小写）。
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Full, Half, Quarter:
		return m, nil
	default:
		return "", fmt.Errorf("%w: 不支持的版式 %q（可选 full/half/quarter）", ErrInvalidConfig, s)
	}
}

// PageSpec 是定向后的画布尺寸。
type PageSpec struct {
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Orientation Orientation `json:"orientation"`
}

// Letter 返回指定方向的 US Letter 画布；landscape 交换宽高。
func Letter(o Orientation) PageSpec {
	if o == Landscape {
		return PageSpec{Width: LetterHeight, Height: LetterWidth, Orientation: o}
	}
	return PageSpec{Width: LetterWidth, Height: LetterHeight, Orientation: Portrait}
}

// Bounds 返回整张画布的矩形。
func (p PageSpec) Bounds() geom.Rect { return geom.Rect{W: p.Width, H: p.Height} }
