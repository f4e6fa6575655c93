package layout

import (
	"fmt"
	"strconv"

	"github.com/Icodextrin/grid-gen/geom"
)

// Build 根据配置计算面板与折线，并在每个面板内调用图案后端生成图元。
func Build(cfg Config, opts BuildOptions) (*Result, error) {
	if opts.Patterner == nil {
		return nil, fmt.Errorf("layout: 缺少图案后端 Patterner")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	page := Letter(cfg.Orientation)
	rects, err := Panels(page, cfg.Mode)
	if err != nil {
		return nil, err
	}
	folds, err := Folds(page, cfg.Mode)
	if err != nil {
		return nil, err
	}

	panels := make([]Panel, 0, len(rects))
	for i, bounds := range rects {
		area := bounds.Inset(cfg.Grid.Margin)
		if area.Empty() {
			return nil, fmt.Errorf("%w: 边距 %gmm 过大，面板 %.1f×%.1fmm 内没有可绘制区域",
				ErrInvalidConfig, cfg.Grid.Margin, bounds.W, bounds.H)
		}
		pattern, err := opts.Patterner.Pattern(area, cfg.Grid)
		if err != nil {
			return nil, fmt.Errorf("生成面板 %d 的图案失败: %w", i, err)
		}
		panels = append(panels, Panel{Index: i, Bounds: bounds, Area: area, Pattern: pattern})
	}

	return &Result{
		Page:   page,
		Mode:   cfg.Mode,
		Grid:   cfg.Grid,
		Panels: panels,
		Folds:  folds,
		Meta:   resolveMeta(cfg, opts.Meta),
	}, nil
}

// resolveMeta 为未填写的元信息补上由配置推导出的默认值。
func resolveMeta(cfg Config, meta DocumentMeta) DocumentMeta {
	size := strconv.FormatFloat(cfg.Grid.Size, 'f', -1, 64) + "mm"
	if meta.Title == "" {
		meta.Title = fmt.Sprintf("%s paper %s", cfg.Grid.Type, size)
	}
	if meta.Subject == "" {
		meta.Subject = fmt.Sprintf("%s, %s, %s layout", size, cfg.Orientation, cfg.Mode)
	}
	if meta.Creator == "" {
		meta.Creator = "grid-gen"
	}
	if len(meta.Keywords) == 0 {
		meta.Keywords = []string{string(cfg.Grid.Type), string(cfg.Mode), "bookbinding"}
	}
	return meta
}

// Drawable 返回所有面板的可绘制区域，供校验与调试使用。
func (r *Result) Drawable() []geom.Rect {
	out := make([]geom.Rect, len(r.Panels))
	for i, p := range r.Panels {
		out[i] = p.Area
	}
	return out
}
