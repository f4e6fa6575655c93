package canvasrenderer

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/Icodextrin/grid-gen/layout"
	"github.com/Icodextrin/grid-gen/pattern"
	"github.com/Icodextrin/grid-gen/renderer"
)

func build(t *testing.T, mutate func(*layout.Config)) *layout.Result {
	t.Helper()
	cfg := layout.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	res, err := layout.Build(cfg, layout.BuildOptions{Patterner: pattern.Generator{}})
	if err != nil {
		t.Fatalf("布局计算失败: %v", err)
	}
	return res
}

func TestRenderSVGFullPage(t *testing.T) {
	res := build(t, nil)
	out, err := NewRenderer(renderer.SVG).Render(res)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, "<svg") {
		t.Fatalf("输出不是 SVG 文档: %.80s", doc)
	}
	for _, dim := range []string{"215.9", "279.4"} {
		if !strings.Contains(doc, dim) {
			t.Fatalf("SVG 画布尺寸中缺少 %s", dim)
		}
	}
	// 每条线段一个路径，另有一个背景矩形。
	if got, want := strings.Count(doc, "<path"), len(res.Segments()); got < want {
		t.Fatalf("SVG 中只有 %d 个路径，少于 %d 条线段", got, want)
	}
	if strings.Contains(doc, "dasharray") {
		t.Fatalf("full 版式不应包含虚线折线")
	}
}

func TestRenderSVGQuarterHasDashedFolds(t *testing.T) {
	res := build(t, func(c *layout.Config) {
		c.Mode = layout.Quarter
		c.Orientation = layout.Landscape
	})
	out, err := NewRenderer(renderer.SVG).Render(res)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if !strings.Contains(string(out), "dasharray") {
		t.Fatalf("quarter 版式的折线应为虚线")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	res := build(t, func(c *layout.Config) { c.Grid.Type = layout.Hex })
	r := NewRenderer(renderer.SVG)
	a, err := r.Render(res)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(res)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("相同输入的两次渲染结果不同")
	}
}

func TestRenderPDF(t *testing.T) {
	res := build(t, func(c *layout.Config) { c.Mode = layout.Half })
	out, err := NewRenderer(renderer.PDF).Render(res)
	if err != nil {
		t.Fatalf("渲染 PDF 失败: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("输出不是 PDF: %q", out[:min(len(out), 16)])
	}
}

func TestRenderPNGMatchesPageSize(t *testing.T) {
	res := build(t, func(c *layout.Config) {
		c.Orientation = layout.Landscape
		c.Grid.Type = layout.Dots
	})
	const dpmm = 2.0
	out, err := NewRendererWithOptions(Options{Format: renderer.PNG, DPMM: dpmm}).Render(res)
	if err != nil {
		t.Fatalf("渲染 PNG 失败: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("解码 PNG 失败: %v", err)
	}
	if math.Abs(float64(cfg.Width)-279.4*dpmm) > 2 || math.Abs(float64(cfg.Height)-215.9*dpmm) > 2 {
		t.Fatalf("PNG 尺寸 %dx%d 与页面不符", cfg.Width, cfg.Height)
	}
}

func TestRenderRejectsEmptyResult(t *testing.T) {
	if _, err := NewRenderer(renderer.SVG).Render(nil); err == nil {
		t.Fatalf("空结果应报错")
	}
	if _, err := NewRenderer(renderer.SVG).Render(&layout.Result{}); err == nil {
		t.Fatalf("零尺寸页面应报错")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]renderer.Format{
		"out.svg":         renderer.SVG,
		"out.PDF":         renderer.PDF,
		"a/b/preview.png": renderer.PNG,
		"noext":           renderer.SVG,
	}
	for path, want := range cases {
		if got := renderer.FormatFromPath(path); got != want {
			t.Fatalf("FormatFromPath(%q) = %s，期望 %s", path, got, want)
		}
	}
}
