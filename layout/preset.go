package layout

import (
	"fmt"

	"github.com/Icodextrin/grid-gen/dsl"
)

// ApplyPreset 把预设 sheet 中的赋值覆盖到 cfg 上并返回新配置。
// 长度值可以带 mm/cm/in/pt 单位，裸数字按 mm 处理。
func ApplyPreset(cfg Config, sheet *dsl.Sheet) (Config, error) {
	if sheet == nil {
		return cfg, nil
	}
	seen := map[string]bool{}
	for _, entry := range sheet.Entries {
		if seen[entry.Key] {
			return cfg, fmt.Errorf("%w: %s: %s 重复赋值", ErrInvalidConfig, entry.Pos, entry.Key)
		}
		seen[entry.Key] = true
		if err := applyEntry(&cfg, entry.Key, entry.Value.Raw()); err != nil {
			return cfg, fmt.Errorf("%s: %w", entry.Pos, err)
		}
	}
	return cfg, nil
}

// ApplySetting 按 CLI/预设共用的键名设置单个参数。
func ApplySetting(cfg Config, key, value string) (Config, error) {
	err := applyEntry(&cfg, key, value)
	return cfg, err
}

func applyEntry(cfg *Config, key, raw string) error {
	var err error
	switch key {
	case "type":
		cfg.Grid.Type, err = ParseGridType(raw)
	case "size":
		cfg.Grid.Size, err = parseMM(raw)
	case "line-width":
		cfg.Grid.LineWidth, err = parseMM(raw)
	case "margin":
		cfg.Grid.Margin, err = parseMM(raw)
	case "color":
		cfg.Grid.Color, err = ParseColor(raw)
	case "orientation":
		cfg.Orientation, err = ParseOrientation(raw)
	case "layout":
		cfg.Mode, err = ParseMode(raw)
	default:
		err = fmt.Errorf("%w: 未知的设置项 %q", ErrInvalidConfig, key)
	}
	return err
}

func parseMM(raw string) (float64, error) {
	l, err := ParseLength(raw)
	if err != nil {
		return 0, err
	}
	return l.ToMM(), nil
}
