// Package binding 展开输出路径中的 ${name} 占位符。
package binding

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Icodextrin/grid-gen/layout"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// Expand 将 text 中的 ${name} 替换为 vars 中的值。
// 未知名称会返回错误并列出可用名称。
func Expand(text string, vars map[string]string) (string, error) {
	var missing []string
	out := exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.TrimSpace(exprPattern.FindStringSubmatch(match)[1])
		if val, ok := vars[name]; ok {
			return val
		}
		missing = append(missing, name)
		return match
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: 路径模板中未知的变量 %s（可用：%s）",
			layout.ErrInvalidConfig, strings.Join(missing, ", "), strings.Join(names(vars), ", "))
	}
	return out, nil
}

// Vars 返回一份配置可供路径模板引用的变量。
func Vars(cfg layout.Config) map[string]string {
	return map[string]string{
		"type":        string(cfg.Grid.Type),
		"size":        formatFloat(cfg.Grid.Size),
		"line-width":  formatFloat(cfg.Grid.LineWidth),
		"margin":      formatFloat(cfg.Grid.Margin),
		"color":       strings.TrimPrefix(cfg.Grid.Color.Hex(), "#"),
		"orientation": string(cfg.Orientation),
		"layout":      string(cfg.Mode),
	}
}

func names(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for k := range vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
