package binding

import (
	"errors"
	"strings"
	"testing"

	"github.com/Icodextrin/grid-gen/layout"
)

func TestExpand(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.Grid.Type = layout.Hex
	cfg.Grid.Size = 6.5
	cfg.Mode = layout.Quarter

	got, err := Expand("out/${type}-${ size }mm-${layout}-${color}.pdf", Vars(cfg))
	if err != nil {
		t.Fatalf("Expand 失败: %v", err)
	}
	if want := "out/hex-6.5mm-quarter-cccccc.pdf"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	plain, err := Expand("output.svg", Vars(cfg))
	if err != nil || plain != "output.svg" {
		t.Fatalf("不含占位符的路径应原样返回: %q %v", plain, err)
	}
}

func TestExpandUnknownVariable(t *testing.T) {
	_, err := Expand("${type}-${paper}.svg", Vars(layout.DefaultConfig()))
	if !errors.Is(err, layout.ErrInvalidConfig) {
		t.Fatalf("期望 ErrInvalidConfig，实际 %v", err)
	}
	if !strings.Contains(err.Error(), "paper") || !strings.Contains(err.Error(), "orientation") {
		t.Fatalf("错误信息应包含未知变量与可用变量: %v", err)
	}
}
