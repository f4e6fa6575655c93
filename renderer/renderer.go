package renderer

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/Icodextrin/grid-gen/layout"
)

// Renderer 将布局结果输出为最终文件，例如 SVG、PDF 或 PNG。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}

// ErrConversion 标记 SVG 以外格式的转换失败，与一般错误区分开。
var ErrConversion = errors.New("格式转换失败")

// Format 是输出文件格式。
type Format string

const (
	SVG Format = "svg"
	PDF Format = "pdf"
	PNG Format = "png"
)

// FormatFromPath 根据扩展名选择输出格式：.pdf、.png，其余一律按 SVG 输出。
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF
	case ".png":
		return PNG
	default:
		return SVG
	}
}
