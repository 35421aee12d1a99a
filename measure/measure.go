// Package measure 提供不依赖平台字体设施的文本测量器。
//
// 所有测量器都满足 layout.Measurer：输入字号为 pt，输出宽度为 px。
package measure

import (
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ByLCY/pathtext/layout"
)

var (
	_ layout.Measurer = Fixed{}
	_ layout.Measurer = (*Bitmap)(nil)
	_ layout.Measurer = Unavailable{}
)

// Fixed 为每个字符给出相同的宽度：在 RefSizePt 字号下为 Advance px，并随字号线性缩放。
type Fixed struct {
	Advance   float64
	RefSizePt float64
}

func (f Fixed) Measure(text string, fontSizePt float64, _ string) float64 {
	ref := f.RefSizePt
	if ref <= 0 {
		ref = fontSizePt
	}
	if ref <= 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(text)) * f.Advance * fontSizePt / ref
}

// Unavailable 模拟缺失的字体度量，总是返回 0，规划器据此退回固定步长。
type Unavailable struct{}

func (Unavailable) Measure(string, float64, string) float64 { return 0 }

// Bitmap 使用 golang.org/x/image/font 的位图字体度量，按字号相对字体像素高度缩放。
// 字体族名被忽略。
type Bitmap struct {
	Face     font.Face
	HeightPx float64 // Face 的名义像素高度
}

// NewBitmap 返回基于 basicfont.Face7x13 的测量器。
func NewBitmap() *Bitmap {
	return &Bitmap{Face: basicfont.Face7x13, HeightPx: float64(basicfont.Face7x13.Height)}
}

func (b *Bitmap) Measure(text string, fontSizePt float64, _ string) float64 {
	if b == nil || b.Face == nil || b.HeightPx <= 0 || text == "" {
		return 0
	}
	adv := font.MeasureString(b.Face, text)
	return float64(adv) / 64 * (fontSizePt * layout.PtToPx / b.HeightPx)
}
