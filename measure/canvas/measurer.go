// Package canvasmeasure measures text with github.com/tdewolff/canvas font faces.
package canvasmeasure

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/pathtext/fonts"
	"github.com/ByLCY/pathtext/layout"
)

// Measurer resolves font families to canvas faces and reports text widths in px.
type Measurer struct {
	baseDir string

	// injected resources
	fontBlobs map[string][]byte // by normalized family name

	fontMu         sync.Mutex
	families       map[string]*canvas.FontFamily
	failed         map[string]bool
	fallbackFamily *canvas.FontFamily
}

var _ layout.Measurer = (*Measurer)(nil)

// Options configures the canvas measurer.
type Options struct {
	BaseDir string              // 解析相对字体路径的目录
	Fonts   map[string]Resource // 按字体族名注入的字体
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// New creates a measurer that only knows the built-in Go fonts.
func New() *Measurer { return NewWithOptions(Options{}) }

// NewWithOptions creates a measurer with injected fonts and an optional baseDir.
func NewWithOptions(opts Options) *Measurer {
	m := &Measurer{
		baseDir:   opts.BaseDir,
		fontBlobs: map[string][]byte{},
		families:  map[string]*canvas.FontFamily{},
		failed:    map[string]bool{},
	}
	for name, res := range opts.Fonts {
		key := fonts.Normalize(name)
		if key == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			m.fontBlobs[key] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, err := m.readFontFile(res.Path)
			if err != nil {
				layout.Logger().Warn("读取字体失败", "family", name, "path", res.Path, "err", err)
				continue
			}
			m.fontBlobs[key] = data
		}
	}
	return m
}

// Measure 实现 layout.Measurer。canvas 以 pt 创建字体面、以 mm 返回宽度，这里在边界换算为 px。
// 字体无法加载时返回 0。
func (m *Measurer) Measure(text string, fontSizePt float64, fontFamily string) float64 {
	if text == "" || fontSizePt <= 0 {
		return 0
	}
	family, err := m.family(fontFamily)
	if err != nil {
		return 0
	}
	face := family.Face(fontSizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	return face.TextWidth(text) * layout.MmToPx
}

// Families 返回已加载的字体族键（已排序），不含加载失败而走回退的名字。
func (m *Measurer) Families() []string {
	m.fontMu.Lock()
	defer m.fontMu.Unlock()
	names := make([]string, 0, len(m.families))
	for name := range m.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Measurer) family(name string) (*canvas.FontFamily, error) {
	key := fonts.Normalize(name)
	m.fontMu.Lock()
	defer m.fontMu.Unlock()

	if family, ok := m.families[key]; ok {
		return family, nil
	}
	if !m.failed[key] {
		family, err := m.loadFamily(key)
		if err == nil {
			m.families[key] = family
			return family, nil
		}
		// 只记录一次，之后直接走回退字体
		m.failed[key] = true
		layout.Logger().Warn("字体加载失败，使用回退字体", "family", name, "err", err)
	}
	return m.fallback()
}

func (m *Measurer) loadFamily(key string) (*canvas.FontFamily, error) {
	data, err := m.loadFontBytes(key)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily(key)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("解析字体 %s 失败: %w", key, err)
	}
	return family, nil
}

func (m *Measurer) loadFontBytes(key string) ([]byte, error) {
	if blob, ok := m.fontBlobs[key]; ok {
		return blob, nil
	}
	if key == "" {
		return fonts.Load(fonts.Default)
	}
	return fonts.Load(key)
}

func (m *Measurer) readFontFile(path string) ([]byte, error) {
	if m.baseDir == "" && !filepath.IsAbs(path) {
		return nil, fmt.Errorf("未指定资源目录时不允许直接使用字体路径：%s", path)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.baseDir, path)
	}
	return os.ReadFile(path)
}

// fallback 必须在持有 fontMu 时调用。
func (m *Measurer) fallback() (*canvas.FontFamily, error) {
	if m.fallbackFamily != nil {
		return m.fallbackFamily, nil
	}
	family, err := m.loadFamily(fonts.Normalize(fonts.Default))
	if err != nil {
		return nil, err
	}
	m.fallbackFamily = family
	return family, nil
}
