// Package fonts 提供内置的 Go 字体族，供测量器在没有外部字体文件时使用。
package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Default 是找不到指定字体时使用的回退字体名。
const Default = "Go Regular"

var builtin = map[string][]byte{
	"go regular":     goregular.TTF,
	"go bold":        gobold.TTF,
	"go italic":      goitalic.TTF,
	"go bold italic": gobolditalic.TTF,
	"go medium":      gomedium.TTF,
	"go mono":        gomono.TTF,
}

var aliases = map[string]string{
	"go":         "go regular",
	"sans":       "go regular",
	"sans serif": "go regular",
	"monospace":  "go mono",
}

// Load 返回内置字体的 TTF 数据，name 可写为 "embed:Go Bold" 或直接 "go bold"，大小写不敏感。
func Load(name string) ([]byte, error) {
	key := Normalize(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("找不到内置字体 %q", name)
	}
	return data, nil
}

// Has 报告 name 是否指向内置字体。
func Has(name string) bool {
	_, err := Load(name)
	return err == nil
}

// Names 返回所有内置字体名（已排序）。
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize 把字体名规整为查找用的键：去掉 "embed:" 前缀，- 视为空格，小写并压缩空白。
// 内置字体、别名与测量器的字体缓存共用这一规则。
func Normalize(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "embed:")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
