package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将计划或几何结果输出为缩进 JSON，便于调试或可视化。
func WriteDebugJSON(v any, path string) error {
	if v == nil {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
