// Package binding 把场景文本中的 ${...} 占位符替换为外部 JSON 数据中的值。
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${user.name}、${items[0].title} 替换为 data 中的值。
// 写作 ${path|默认值} 时，路径不存在则使用默认值；否则保留原占位符。
func Interpolate(text string, data any) string {
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-1])
		path, fallback, hasFallback := strings.Cut(expr, "|")
		path = strings.TrimSpace(path)
		if val, ok := Resolve(data, path); ok && val != nil {
			return fmt.Sprint(val)
		}
		if hasFallback {
			return strings.TrimSpace(fallback)
		}
		return match
	})
}

// Resolve 沿点号与下标路径在 map/slice 中取值。
func Resolve(data any, path string) (any, bool) {
	if data == nil || path == "" {
		return nil, false
	}
	steps, ok := splitPath(path)
	if !ok {
		return nil, false
	}
	current := data
	for _, step := range steps {
		switch c := current.(type) {
		case map[string]any:
			if step.index >= 0 {
				return nil, false
			}
			val, ok := c[step.key]
			if !ok {
				return nil, false
			}
			current = val
		case []any:
			if step.index < 0 || step.index >= len(c) {
				return nil, false
			}
			current = c[step.index]
		default:
			return nil, false
		}
	}
	return current, true
}

// step 是路径中的一级：key 或 index（index >= 0 时表示下标）。
type step struct {
	key   string
	index int
}

func splitPath(path string) ([]step, bool) {
	var steps []step
	for _, segment := range strings.Split(path, ".") {
		name := segment
		rest := ""
		if i := strings.IndexByte(segment, '['); i != -1 {
			name, rest = segment[:i], segment[i:]
		}
		if name != "" {
			steps = append(steps, step{key: name, index: -1})
		}
		for rest != "" {
			end := strings.IndexByte(rest, ']')
			if rest[0] != '[' || end == -1 {
				return nil, false
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, false
			}
			steps = append(steps, step{index: idx})
			rest = rest[end+1:]
		}
	}
	return steps, len(steps) > 0
}
