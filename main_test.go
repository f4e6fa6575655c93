package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Icodextrin/grid-gen/layout"
	"github.com/Icodextrin/grid-gen/renderer"
	canvasrenderer "github.com/Icodextrin/grid-gen/renderer/canvas"
)

// debugFile 只解析测试需要的调试 JSON 字段。
type debugFile struct {
	Summary struct {
		Panels   int `json:"panels"`
		Segments int `json:"segments"`
		Folds    int `json:"folds"`
	} `json:"summary"`
	Page   layout.PageSpec  `json:"page"`
	Panels []layout.Panel   `json:"panels"`
	Folds  []layout.Segment `json:"folds"`
}

func generate(t *testing.T, args ...string) (options, debugFile) {
	t.Helper()
	dir := t.TempDir()
	debugPath := filepath.Join(dir, "layout.json")
	args = append(args, "-debug", debugPath)
	for i, a := range args {
		if a == "-o" {
			args[i+1] = filepath.Join(dir, args[i+1])
		}
	}
	opts, err := parseArgs(args, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs(%v) 失败: %v", args, err)
	}
	r := canvasrenderer.NewRenderer(renderer.FormatFromPath(opts.output))
	if err := run(opts, r); err != nil {
		t.Fatalf("run 失败: %v", err)
	}
	if _, err := os.Stat(opts.output); err != nil {
		t.Fatalf("输出文件不存在: %v", err)
	}
	raw, err := os.ReadFile(debugPath)
	if err != nil {
		t.Fatalf("读取调试 JSON 失败: %v", err)
	}
	var dbg debugFile
	if err := json.Unmarshal(raw, &dbg); err != nil {
		t.Fatalf("解析调试 JSON 失败: %v", err)
	}
	return opts, dbg
}

func TestGridFullPortrait(t *testing.T) {
	opts, dbg := generate(t, "--type", "grid", "--size", "5", "--layout", "full", "--orientation", "portrait", "-o", "out.svg")
	if dbg.Page.Width != 215.9 || dbg.Page.Height != 279.4 {
		t.Fatalf("画布尺寸 %gx%g，期望 215.9x279.4", dbg.Page.Width, dbg.Page.Height)
	}
	if dbg.Summary.Folds != 0 || dbg.Summary.Panels != 1 {
		t.Fatalf("full 版式应为 1 个面板、0 条折线: %+v", dbg.Summary)
	}
	area := dbg.Panels[0].Area
	if area.X != 10 || area.Y != 10 {
		t.Fatalf("可绘制区域应内缩 10mm: %+v", area)
	}
	if dbg.Summary.Segments != 40+52 {
		t.Fatalf("线段数 %d，期望 92", dbg.Summary.Segments)
	}
	out, err := os.ReadFile(opts.output)
	if err != nil || !strings.Contains(string(out), "<svg") {
		t.Fatalf("输出不是 SVG: %v", err)
	}
}

func TestLinedCustomColor(t *testing.T) {
	opts, dbg := generate(t, "--type", "lined", "--size", "7", "--color", "#9999cc", "-o", "out.svg")
	if got := opts.cfg.Grid.Color.Hex(); got != "#9999cc" {
		t.Fatalf("颜色 %s，期望 #9999cc", got)
	}
	segs := dbg.Panels[0].Pattern.Segments
	if len(segs) == 0 {
		t.Fatalf("横线信纸没有线条")
	}
	for i, s := range segs {
		if s.From.Y != s.To.Y {
			t.Fatalf("第 %d 条线不是水平线: %+v", i, s)
		}
		if s.Stroke.Color.Hex() != "#9999cc" {
			t.Fatalf("第 %d 条线颜色 %s", i, s.Stroke.Color.Hex())
		}
		if i > 0 {
			if gap := s.From.Y - segs[i-1].From.Y; gap < 7-1e-9 || gap > 7+1e-9 {
				t.Fatalf("行距 %g，期望 7", gap)
			}
		}
	}
}

func TestQuarterLandscapeFolds(t *testing.T) {
	_, dbg := generate(t, "--layout", "quarter", "--orientation", "landscape", "-o", "out.pdf")
	if dbg.Summary.Panels != 4 || len(dbg.Folds) != 2 {
		t.Fatalf("quarter 版式应为 4 个面板、2 条折线: %+v", dbg.Summary)
	}
	cx, cy := dbg.Page.Width/2, dbg.Page.Height/2
	v, h := dbg.Folds[0], dbg.Folds[1]
	if v.From.X != cx || v.To.X != cx || h.From.Y != cy || h.To.Y != cy {
		t.Fatalf("折线应交于画布中心 (%g,%g): %+v %+v", cx, cy, v, h)
	}
	if len(v.Stroke.Dash) == 0 || len(h.Stroke.Dash) == 0 {
		t.Fatalf("折线应为虚线")
	}
}

func TestInvalidTypeWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.svg")
	_, err := parseArgs([]string{"--type", "bogus", "-o", out}, io.Discard)
	if err == nil {
		t.Fatalf("--type bogus 应报错")
	}
	if code := exitCode(err); code == 0 {
		t.Fatalf("退出码应非零")
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("配置无效时不应创建输出文件")
	}
}

func TestInvalidValues(t *testing.T) {
	for _, args := range [][]string{
		{"--size", "0"},
		{"--margin", "-1"},
		{"--line-width", "abc"},
		{"--color", "#12"},
		{"--layout", "third"},
		{"--orientation", "upside-down"},
		{"-o", "${paper}.svg"},
	} {
		_, err := parseArgs(args, io.Discard)
		if exitCode(err) != 2 {
			t.Fatalf("%v: 期望退出码 2，实际 %d（%v）", args, exitCode(err), err)
		}
	}
	if _, err := parseArgs([]string{"--no-such-flag"}, io.Discard); !errors.Is(err, errUsage) {
		t.Fatalf("未知 flag 应返回 errUsage: %v", err)
	}
}

func TestWriteFailureIsReported(t *testing.T) {
	opts, err := parseArgs([]string{"-o", filepath.Join(t.TempDir(), "missing", "out.svg")}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	err = run(opts, canvasrenderer.NewRenderer(renderer.SVG))
	if err == nil {
		t.Fatalf("目录不存在时写入应失败")
	}
	if code := exitCode(err); code != 1 {
		t.Fatalf("写入失败退出码 %d，期望 1", code)
	}
}

func TestPresetAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	preset := filepath.Join(dir, "paper.grid")
	src := "sheet Journal {\n  type: hex\n  size: 6mm\n  layout: half\n}\nsheet Notes {\n  type: lined\n}\n"
	if err := os.WriteFile(preset, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := parseArgs([]string{"-preset", preset, "--size", "4", "-o", filepath.Join(dir, "${type}-${size}.svg")}, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs 失败: %v", err)
	}
	if opts.cfg.Grid.Type != layout.Hex || opts.cfg.Mode != layout.Half {
		t.Fatalf("预设未生效: %+v", opts.cfg)
	}
	if opts.cfg.Grid.Size != 4 {
		t.Fatalf("显式 flag 应覆盖预设，size=%g", opts.cfg.Grid.Size)
	}
	if filepath.Base(opts.output) != "hex-4.svg" {
		t.Fatalf("输出路径模板展开错误: %s", opts.output)
	}

	opts, err = parseArgs([]string{"-preset", preset, "-sheet", "Notes"}, io.Discard)
	if err != nil || opts.cfg.Grid.Type != layout.Lined {
		t.Fatalf("-sheet 选择失败: %+v %v", opts.cfg, err)
	}
	if _, err := parseArgs([]string{"-preset", preset, "-sheet", "Nope"}, io.Discard); exitCode(err) != 2 {
		t.Fatalf("未知 sheet 应为配置错误: %v", err)
	}
}

func TestExitCodes(t *testing.T) {
	if exitCode(nil) != 0 {
		t.Fatalf("nil 错误退出码应为 0")
	}
	if exitCode(renderer.ErrConversion) != 3 {
		t.Fatalf("转换失败退出码应为 3")
	}
	if exitCode(errors.New("disk full")) != 1 {
		t.Fatalf("其它错误退出码应为 1")
	}
}
