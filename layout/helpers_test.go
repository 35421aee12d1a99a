package layout

import "unicode/utf8"

// perRune 是测试用的测量器：每个字符 advance px（在 refSize 字号下），宽度与字号成正比。
type perRune struct {
	advance float64
	refSize float64
	calls   int
}

func (m *perRune) Measure(text string, sizePt float64, _ string) float64 {
	m.calls++
	return float64(utf8.RuneCountInString(text)) * m.advance * sizePt / m.refSize
}

// zeroMeasurer 模拟平台字体度量不可用。
type zeroMeasurer struct{}

func (zeroMeasurer) Measure(string, float64, string) float64 { return 0 }

// growing 在字号减小时宽度反而变大，用于触发单调性检查。
type growing struct{}

func (growing) Measure(text string, sizePt float64, _ string) float64 {
	return float64(utf8.RuneCountInString(text)) * (100 - sizePt)
}
