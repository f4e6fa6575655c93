package layout

import "github.com/Icodextrin/grid-gen/geom"

// BuildOptions 配置布局阶段所需的依赖，例如图案生成后端。
type BuildOptions struct {
	Patterner Patterner
	Meta      DocumentMeta
}

// Patterner 负责在单个面板的可绘制区域内生成图案。
// 实现必须是确定性的：相同输入总是返回相同的图元序列。
type Patterner interface {
	Pattern(area geom.Rect, grid GridConfig) (Pattern, error)
}
