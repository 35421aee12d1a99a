package scene

import (
	"fmt"
	"strings"

	"github.com/ByLCY/pathtext/binding"
	"github.com/ByLCY/pathtext/dsl"
	"github.com/ByLCY/pathtext/geom"
	"github.com/ByLCY/pathtext/layout"
)

const (
	defaultFontFamily = "Go"
	defaultFontSizePt = 20.0
)

// DefaultRun 返回未指定样式时的文本：Go 字体、20pt、黑色、无字距。
func DefaultRun() layout.TextRun {
	return layout.TextRun{FontFamily: defaultFontFamily, FontSizePt: defaultFontSizePt, Color: layout.Black}
}

// Build 把解析后的场景文件编译为 Scene。文本中的 ${...} 由 data 绑定。
// 未写 points 时使用 opts.Config 画布尺寸下的默认控制点。
func Build(doc *dsl.Document, data any, opts Options) (*Scene, error) {
	if doc == nil {
		return nil, fmt.Errorf("场景文档为空")
	}
	s := &Scene{Name: doc.Name, Run: DefaultRun(), Mode: layout.ModeFollow}
	hasPoints := false
	for _, e := range doc.Entries {
		if err := applyEntry(s, e, data); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Pos, err)
		}
		if e.Key == "points" {
			hasPoints = true
		}
	}
	if !hasPoints {
		def := layout.DefaultConfig()
		w, h := opts.Config.CanvasWidth, opts.Config.CanvasHeight
		if w <= 0 {
			w = def.CanvasWidth
		}
		if h <= 0 {
			h = def.CanvasHeight
		}
		s.Points = DefaultControlPoints(w, h)
	}
	return s, nil
}

func applyEntry(s *Scene, e *dsl.Entry, data any) error {
	v := e.Value
	switch strings.ToLower(e.Key) {
	case "points":
		points, err := pointsValue(v)
		if err != nil {
			return err
		}
		s.Points = points
	case "text":
		text, err := textValue(v)
		if err != nil {
			return fmt.Errorf("text: %w", err)
		}
		s.Run.Content = binding.Interpolate(text, data)
	case "font":
		family, err := textValue(v)
		if err != nil {
			return fmt.Errorf("font: %w", err)
		}
		s.Run.FontFamily = family
	case "size":
		l, err := lengthValue(v)
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		if l.Unit == layout.UnitNone {
			l.Unit = layout.UnitPT
		}
		if l.Value <= 0 {
			return fmt.Errorf("size 必须为正数，实际 %g", l.Value)
		}
		s.Run.FontSizePt = l.ToPT()
	case "spacing", "letter-spacing":
		l, err := lengthValue(v)
		if err != nil {
			return fmt.Errorf("spacing: %w", err)
		}
		if l.Unit == layout.UnitNone {
			l.Unit = layout.UnitPX
		}
		s.Run.LetterSpacingPx = l.ToPX()
	case "color":
		raw := ""
		switch {
		case v.Color != nil:
			raw = *v.Color
		case v.String != nil:
			raw = string(*v.String)
		default:
			return fmt.Errorf("color 需要颜色值，实际为 %s", v.Kind())
		}
		c, err := layout.ParseColor(raw)
		if err != nil {
			return err
		}
		s.Run.Color = c
	case "mode":
		raw, err := textValue(v)
		if err != nil {
			return fmt.Errorf("mode: %w", err)
		}
		mode, err := layout.ParseMode(raw)
		if err != nil {
			return err
		}
		s.Mode = mode
	case "width":
		l, err := lengthValue(v)
		if err != nil {
			return fmt.Errorf("width: %w", err)
		}
		if l.Unit == layout.UnitNone {
			l.Unit = layout.UnitPX
		}
		s.FillWidthPx = l.ToPX()
	default:
		return fmt.Errorf("未知属性 %q", e.Key)
	}
	return nil
}

func pointsValue(v *dsl.Value) ([]geom.Point, error) {
	if v.Kind() == "empty" {
		return nil, nil
	}
	if v.Points == nil {
		return nil, fmt.Errorf("points 需要点列表，实际为 %s", v.Kind())
	}
	points := make([]geom.Point, 0, len(v.Points.Points))
	for _, p := range v.Points.Points {
		x, y, err := p.Float()
		if err != nil {
			return nil, err
		}
		points = append(points, geom.Pt(x, y))
	}
	return points, nil
}

func textValue(v *dsl.Value) (string, error) {
	switch {
	case v.String != nil:
		return string(*v.String), nil
	case v.Ident != nil:
		return *v.Ident, nil
	default:
		return "", fmt.Errorf("需要字符串，实际为 %s", v.Kind())
	}
}

func lengthValue(v *dsl.Value) (layout.Length, error) {
	if v.Number == nil {
		return layout.Length{}, fmt.Errorf("需要数值，实际为 %s", v.Kind())
	}
	return layout.ParseLength(*v.Number)
}
