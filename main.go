package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Icodextrin/grid-gen/binding"
	"github.com/Icodextrin/grid-gen/dsl"
	"github.com/Icodextrin/grid-gen/layout"
	"github.com/Icodextrin/grid-gen/pattern"
	"github.com/Icodextrin/grid-gen/renderer"
	canvasrenderer "github.com/Icodextrin/grid-gen/renderer/canvas"
)

// errUsage 标记命令行本身的语法错误（未知 flag、缺少取值等）。
var errUsage = errors.New("命令行参数错误")

// settingFlags 是可由预设文件与命令行共同设置的参数，顺序即帮助输出顺序。
var settingFlags = []struct {
	name, value, usage string
}{
	{"type", "grid", "图案类型：" + gridTypeNames()},
	{"size", "5", "网格间距（mm，可带 mm/cm/in/pt 单位）"},
	{"line-width", "0.3", "线宽（mm）；dots 类型为圆点直径"},
	{"color", "#cccccc", "线条颜色：#rgb、#rrggbb、#rrggbbaa 或 CSS 颜色名"},
	{"orientation", "portrait", "纸张方向：portrait/landscape"},
	{"layout", "full", "版式：full（整页）、half（2 块）、quarter（4 块）"},
	{"margin", "10", "每个面板的边距（mm）"},
}

type options struct {
	cfg    layout.Config
	output string
	debug  string
	dpmm   float64
	title  string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("grid-gen: ")

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("参数无效: %v", err)
		os.Exit(exitCode(err))
	}

	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Format: renderer.FormatFromPath(opts.output),
		DPMM:   opts.dpmm,
	})
	if err := run(opts, r); err != nil {
		if errors.Is(err, renderer.ErrConversion) {
			log.Printf("输出格式转换失败（网格本身已生成，可改用 .svg 输出）: %v", err)
		} else {
			log.Printf("生成失败: %v", err)
		}
		os.Exit(exitCode(err))
	}
	fmt.Printf("已生成：%s\n", opts.output)
}

// parseArgs 依次应用默认值、预设文件与显式给出的 flag，后者优先。
func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("grid-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	for _, s := range settingFlags {
		fs.String(s.name, s.value, s.usage)
	}
	output := fs.String("o", "output.svg", "输出路径；.pdf 输出 PDF，.png 输出预览图，可使用 ${type} 等模板变量")
	fs.StringVar(output, "output", "output.svg", "同 -o")
	preset := fs.String("preset", "", "预设文件路径")
	sheet := fs.String("sheet", "", "预设文件中的 sheet 名称，默认取第一个")
	debug := fs.String("debug", "", "布局调试 JSON 输出路径")
	dpmm := fs.Float64("dpmm", canvasrenderer.DefaultDPMM, "PNG 输出分辨率（像素/mm）")
	title := fs.String("title", "", "PDF 文档标题")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return options{}, err
		}
		return options{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: 多余的参数 %s", errUsage, strings.Join(fs.Args(), " "))
	}

	cfg := layout.DefaultConfig()
	if *preset != "" {
		var err error
		if cfg, err = loadPreset(cfg, *preset, *sheet); err != nil {
			return options{}, err
		}
	} else if *sheet != "" {
		return options{}, fmt.Errorf("%w: -sheet 需要配合 -preset 使用", errUsage)
	}

	var applyErr error
	fs.Visit(func(f *flag.Flag) {
		if applyErr != nil || !isSetting(f.Name) {
			return
		}
		if cfg, applyErr = layout.ApplySetting(cfg, f.Name, f.Value.String()); applyErr != nil {
			applyErr = fmt.Errorf("--%s: %w", f.Name, applyErr)
		}
	})
	if applyErr != nil {
		return options{}, applyErr
	}
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	if !(*dpmm > 0) {
		return options{}, fmt.Errorf("%w: dpmm 必须为正数，当前为 %g", layout.ErrInvalidConfig, *dpmm)
	}

	path, err := binding.Expand(*output, binding.Vars(cfg))
	if err != nil {
		return options{}, err
	}
	return options{cfg: cfg, output: path, debug: *debug, dpmm: *dpmm, title: *title}, nil
}

func loadPreset(cfg layout.Config, path, name string) (layout.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("无法打开预设文件 %s: %w", path, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(path, file)
	if err != nil {
		return cfg, fmt.Errorf("%w: 解析预设文件失败: %v", layout.ErrInvalidConfig, err)
	}
	sheet, err := doc.Lookup(name)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", layout.ErrInvalidConfig, err)
	}
	return layout.ApplyPreset(cfg, sheet)
}

// run 串联布局、图案生成与渲染，全部成功后才写出文件。
func run(opts options, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	result, err := layout.Build(opts.cfg, layout.BuildOptions{
		Patterner: pattern.Generator{},
		Meta:      layout.DocumentMeta{Title: opts.title},
	})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if opts.debug != "" {
		if err := layout.WriteDebugJSON(result, opts.debug); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	data, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return nil
}

// exitCode：2 表示参数/配置无效，3 表示格式转换失败，其余错误为 1。
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, layout.ErrInvalidConfig):
		return 2
	case errors.Is(err, renderer.ErrConversion):
		return 3
	default:
		return 1
	}
}

func isSetting(name string) bool {
	for _, s := range settingFlags {
		if s.name == name {
			return true
		}
	}
	return false
}

func gridTypeNames() string {
	names := make([]string, len(layout.GridTypes))
	for i, t := range layout.GridTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "/")
}
