package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNonMonotonic 表示测量器在字号减小时给出了更大的宽度，违反了拟合的前提。
var ErrNonMonotonic = errors.New("layout: 测量宽度随字号非单调")

// monotonicSlack 容忍测量结果中的浮点抖动。
const monotonicSlack = 1e-9

// FitRequest 描述一次字号拟合。
type FitRequest struct {
	Text            string
	FontFamily      string
	LetterSpacingPx float64
	InitialSizePt   float64
	TargetLength    float64
}

// Fitter 以整数步长线性递减字号，直到文本宽度不超过目标长度或到达下限。
type Fitter struct {
	FloorSizePt float64
	WidthScale  float64
	WidthOffset float64
}

// Fitter 返回按配置构造的拟合器。
func (c Config) Fitter() Fitter {
	c = c.withDefaults()
	return Fitter{FloorSizePt: c.FloorSizePt, WidthScale: c.WidthScale, WidthOffset: c.WidthOffset}
}

// FitFontSize 使用默认配置拟合。
func FitFontSize(req FitRequest, m Measurer) (float64, error) {
	return DefaultConfig().Fitter().Fit(req, m)
}

// Fit 返回不超过目标长度的最大字号（以 1 为步长搜索），结果永远 >= FloorSizePt。
//
//   - TargetLength <= 0（没有路径）时直接返回下限；
//   - 空文本或测量器缺失时不做缩放，返回初始字号；
//   - 测量宽度随字号减小反而变大时，返回当前字号并附带 ErrNonMonotonic。
func (f Fitter) Fit(req FitRequest, m Measurer) (float64, error) {
	floor := f.FloorSizePt
	if floor <= 0 {
		floor = 1
	}
	if req.InitialSizePt <= floor || req.TargetLength <= 0 {
		return floor, nil
	}
	if m == nil || req.Text == "" {
		return req.InitialSizePt, nil
	}

	size := req.InitialSizePt
	width := f.width(req, m, size)
	iterations := 0
	for width > req.TargetLength && size > floor {
		next := max(size-1, floor)
		w := f.width(req, m, next)
		if w > width+monotonicSlack {
			Logger().Warn("测量器违反单调性", "text", req.Text, "size", next, "width", w, "previous", width)
			return size, fmt.Errorf("%w: 字号 %g→%g 时宽度 %g→%g", ErrNonMonotonic, size, next, width, w)
		}
		size, width = next, w
		iterations++
	}
	Logger().Debug("字号拟合完成",
		"initial", req.InitialSizePt, "fitted", size, "width", width,
		"target", req.TargetLength, "iterations", iterations)
	return size, nil
}

func (f Fitter) width(req FitRequest, m Measurer, size float64) float64 {
	scale := f.WidthScale
	if scale == 0 {
		scale = 1
	}
	return MeasureSpaced(m, req.Text, size, req.FontFamily, req.LetterSpacingPx)*scale + f.WidthOffset
}

// MeasureSpaced 逐字符测量并累加，再加上 (字符数-1) 个字距。
func MeasureSpaced(m Measurer, text string, sizePt float64, family string, spacingPx float64) float64 {
	if m == nil || text == "" {
		return 0
	}
	total := 0.0
	for _, r := range text {
		total += m.Measure(string(r), sizePt, family)
	}
	return total + float64(utf8.RuneCountInString(text)-1)*spacingPx
}
