package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	canvassvg "github.com/tdewolff/canvas/renderers/svg"

	"github.com/Icodextrin/grid-gen/layout"
	"github.com/Icodextrin/grid-gen/renderer"
)

var transparent = color.RGBA{0, 0, 0, 0}

// DefaultDPMM 是 PNG 预览的默认分辨率（每毫米像素数，约 203dpi）。
const DefaultDPMM = 8.0

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	format     renderer.Format
	dpmm       float64
	background color.Color
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Format renderer.Format
	// DPMM 仅用于 PNG；<=0 时取 DefaultDPMM。
	DPMM float64
	// Background 为空时使用白色。
	Background color.Color
}

// NewRenderer creates a renderer producing the given format.
func NewRenderer(format renderer.Format) *Renderer {
	return NewRendererWithOptions(Options{Format: format})
}

// NewRendererWithOptions creates a renderer with explicit options.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		format:     opts.Format,
		dpmm:       opts.DPMM,
		background: opts.Background,
	}
	if r.format == "" {
		r.format = renderer.SVG
	}
	if r.dpmm <= 0 {
		r.dpmm = DefaultDPMM
	}
	if r.background == nil {
		r.background = canvas.White
	}
	return r
}

// Format 返回渲染器的输出格式。
func (r *Renderer) Format() renderer.Format { return r.format }

// Render 将布局结果渲染为 SVG/PDF/PNG 字节。画布尺寸等于定向后的页面尺寸（mm）。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if result.Page.Width <= 0 || result.Page.Height <= 0 {
		return nil, fmt.Errorf("页面尺寸无效: %gx%g", result.Page.Width, result.Page.Height)
	}

	c := canvas.New(result.Page.Width, result.Page.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	r.drawPage(ctx, result)

	switch r.format {
	case renderer.SVG:
		return r.writeSVG(c, result.Page)
	case renderer.PDF:
		return r.writePDF(c, result)
	case renderer.PNG:
		return r.writePNG(c)
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q", r.format)
	}
}

func (r *Renderer) drawPage(ctx *canvas.Context, result *layout.Result) {
	ctx.SetStrokeColor(transparent)
	ctx.SetFillColor(r.background)
	ctx.DrawPath(0, 0, canvas.Rectangle(result.Page.Width, result.Page.Height))

	drawDots(ctx, result.Dots())
	drawSegments(ctx, result.Segments())
}

func (r *Renderer) writeSVG(c *canvas.Canvas, page layout.PageSpec) ([]byte, error) {
	var buf bytes.Buffer
	writer := canvassvg.New(&buf, page.Width, page.Height, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 SVG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writePDF(c *canvas.Canvas, result *layout.Result) (out []byte, err error) {
	defer recoverConversion("PDF", &err)
	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Page.Width, result.Page.Height, nil)
	applyMeta(writer, result.Meta)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: 写入 PDF 失败: %v", renderer.ErrConversion, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writePNG(c *canvas.Canvas) (out []byte, err error) {
	defer recoverConversion("PNG", &err)
	img := rasterizer.Draw(c, canvas.DPMM(r.dpmm), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: 编码 PNG 失败: %v", renderer.ErrConversion, err)
	}
	return buf.Bytes(), nil
}

// recoverConversion 把后端在转换过程中的 panic 转为 ErrConversion。
func recoverConversion(format string, err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%w: 生成 %s 时出错: %v", renderer.ErrConversion, format, v)
	}
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, "", meta.Creator)
}

// drawSegments 按顺序绘制线段，每条线段一个路径，保留颜色、线宽与虚线样式。
func drawSegments(ctx *canvas.Context, segs []layout.Segment) {
	ctx.SetFillColor(transparent)
	for _, s := range segs {
		ctx.SetStrokeColor(colorFromLayout(s.Stroke.Color))
		ctx.SetStrokeWidth(s.Stroke.Width)
		ctx.SetDashes(0, s.Stroke.Dash...)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(s.To.X-s.From.X, s.To.Y-s.From.Y)
		ctx.DrawPath(s.From.X, s.From.Y, p)
	}
	ctx.SetDashes(0)
}

// drawDots 绘制实心圆点
func drawDots(ctx *canvas.Context, dots []layout.Dot) {
	ctx.SetStrokeColor(transparent)
	for _, d := range dots {
		ctx.SetFillColor(colorFromLayout(d.Color))
		ctx.DrawPath(d.Center.X, d.Center.Y, canvas.Circle(d.Radius))
	}
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
}
