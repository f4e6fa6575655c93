package layout

import (
	"encoding/json"
	"os"
)

// debugDump 在完整布局结果之前附加一段便于肉眼检查的统计。
type debugDump struct {
	Summary debugSummary `json:"summary"`
	*Result
}

type debugSummary struct {
	Panels   int `json:"panels"`
	Segments int `json:"segments"`
	Dots     int `json:"dots"`
	Folds    int `json:"folds"`
}

// WriteDebugJSON 将布局结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	dump := debugDump{
		Summary: debugSummary{
			Panels:   len(res.Panels),
			Segments: len(res.Segments()),
			Dots:     len(res.Dots()),
			Folds:    len(res.Folds),
		},
		Result: res,
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
