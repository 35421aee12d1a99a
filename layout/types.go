package layout

// 该文件定义文本样式、放置计划等结果类型，供规划、调试 JSON 与 HTTP 输出共用。

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/pathtext/geom"
)

// Mode 选择渲染模式。
type Mode string

const (
	ModeFollow Mode = "follow" // 字符沿路径逐个排布
	ModeFill   Mode = "fill"   // 多行文本裁剪在闭合区域内
)

// ParseMode 解析模式名，空串视为 follow。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "follow", "follow-path", "path":
		return ModeFollow, nil
	case "fill", "fill-shape", "shape":
		return ModeFill, nil
	default:
		return "", fmt.Errorf("未知的渲染模式 %q（可选 follow/fill）", s)
	}
}

// Color 采用 0-255 的 RGBA 数值，JSON 中以 #rrggbbaa 字符串表示。
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Black 是默认文字颜色。
var Black = Color{A: 255}

// ParseColor 解析 #rgb、#rrggbb 与 #rrggbbaa 三种写法。
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("颜色格式无效: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("颜色格式无效: %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex 返回 #rrggbbaa 形式。
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TextRun 是外部编辑器提供的文本及其样式，字段显式列出，不做按名反射更新。
type TextRun struct {
	Content         string  `json:"content"`
	FontFamily      string  `json:"fontFamily"`
	FontSizePt      float64 `json:"fontSizePt"`
	LetterSpacingPx float64 `json:"letterSpacingPx"`
	Color           Color   `json:"color"`
}

// WithSize 返回字号替换后的副本。
func (r TextRun) WithSize(sizePt float64) TextRun {
	r.FontSizePt = sizePt
	return r
}

// Geometry 汇总由控制点推导出的曲线、采样、包围盒与弧长。
type Geometry struct {
	Curve   geom.Curve       `json:"curve"`
	Samples []geom.Point     `json:"-"`
	Box     geom.BoundingBox `json:"boundingBox"`
	Length  float64          `json:"pathLength"`
}

// GlyphPlacement 是 follow 模式下单个字符的放置结果。
// Offset 为沿路径的弧长偏移，X/Y/Angle 为该偏移处的位置与切线方向（弧度）。
type GlyphPlacement struct {
	Char     string  `json:"char"`
	Offset   float64 `json:"offset"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Angle    float64 `json:"angle"`
	Overflow bool    `json:"overflow,omitempty"` // 偏移超出路径末端
}

// FollowPlan 描述沿路径排布的字符序列。
type FollowPlan struct {
	Strategy   string           `json:"strategy"`
	FontSizePt float64          `json:"fontSizePt"`
	PathLength float64          `json:"pathLength"`
	Path       string           `json:"path"` // SVG path data
	Glyphs     []GlyphPlacement `json:"glyphs"`
}

// LinePlacement 是 fill 模式下的一行文本。BaselineY 相对裁剪区域顶部。
type LinePlacement struct {
	Text      string  `json:"text"`
	BaselineY float64 `json:"baselineY"`
	Overflow  bool    `json:"overflow,omitempty"` // 基线超出区域底部
}

// FillPlan 描述裁剪在闭合区域内的多行文本。
type FillPlan struct {
	FontSizePt float64         `json:"fontSizePt"`
	MaxWidth   float64         `json:"maxWidth"`
	Origin     geom.Point      `json:"origin"`
	ClipPath   string          `json:"clipPath"` // 闭合区域的 SVG path data
	Lines      []LinePlacement `json:"lines"`
}

// Plan 是带标签的变体：Mode 决定 Follow 与 Fill 中哪一个有效。
type Plan struct {
	Mode   Mode        `json:"mode"`
	Follow *FollowPlan `json:"follow,omitempty"`
	Fill   *FillPlan   `json:"fill,omitempty"`
}

// Empty 报告计划中是否没有任何可绘制内容。
func (p Plan) Empty() bool {
	switch p.Mode {
	case ModeFollow:
		return p.Follow == nil || len(p.Follow.Glyphs) == 0
	case ModeFill:
		return p.Fill == nil || len(p.Fill.Lines) == 0
	default:
		return true
	}
}
