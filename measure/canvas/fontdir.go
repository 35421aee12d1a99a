package canvasmeasure

import (
	"os"
	"path/filepath"
	"strings"
)

var fontExts = map[string]bool{".ttf": true, ".otf": true, ".woff": true, ".woff2": true}

// FontsFromDir 扫描目录中的字体文件，按文件名（去扩展名，- 与 _ 视为空格）登记为字体族。
// 例如 "Noto-Sans_SC.otf" 登记为 "Noto Sans SC"。子目录不递归。
func FontsFromDir(dir string) (map[string]Resource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := map[string]Resource{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !fontExts[ext] {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
		out[name] = Resource{Path: filepath.Join(dir, e.Name())}
	}
	return out, nil
}
