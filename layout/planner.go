package layout

import (
	"fmt"

	"github.com/ByLCY/pathtext/geom"
)

// OffsetStrategy 为 follow 模式的每个字符给出沿路径的偏移，offsets 单调不减。
type OffsetStrategy interface {
	Name() string
	Offsets(run TextRun, chars []string) []float64
}

// FixedStep 以固定步长排布：offset = index * Step。用于无法逐字测量的场合。
type FixedStep struct {
	Step float64
}

func (FixedStep) Name() string { return string(PlacementFixed) }

func (s FixedStep) Offsets(_ TextRun, chars []string) []float64 {
	out := make([]float64, len(chars))
	for i := range chars {
		out[i] = float64(i) * s.Step
	}
	return out
}

// Measured 累计实际字宽：offset[i] = offset[i-1] + width(chars[i-1]) + 字距。
// 文本长度与路径长度不一致时不会像固定步长那样出现重叠或空隙漂移。
type Measured struct {
	Measurer Measurer
}

func (Measured) Name() string { return string(PlacementMeasured) }

func (s Measured) Offsets(run TextRun, chars []string) []float64 {
	out := make([]float64, len(chars))
	for i := 1; i < len(chars); i++ {
		w := s.Measurer.Measure(chars[i-1], run.FontSizePt, run.FontFamily)
		out[i] = out[i-1] + w + run.LetterSpacingPx
	}
	return out
}

// SelectStrategy 按策略配置与测量能力选择偏移策略。auto 时只有在测量器存在、
// 对该文本给出非零宽度且路径长度 > 0 时才逐字测量。measured 同样要求非零宽度，
// 否则所有字符会堆在偏移 0 处，此时退回固定步长。
func SelectStrategy(policy PlacementPolicy, m Measurer, run TextRun, pathLength, step float64) OffsetStrategy {
	fixed := FixedStep{Step: step}
	if m == nil {
		return fixed
	}
	switch policy {
	case PlacementFixed:
		return fixed
	case PlacementMeasured:
		if m.Measure(run.Content, run.FontSizePt, run.FontFamily) <= 0 {
			return fixed
		}
		return Measured{Measurer: m}
	}
	if pathLength <= 0 || m.Measure(run.Content, run.FontSizePt, run.FontFamily) <= 0 {
		return fixed
	}
	return Measured{Measurer: m}
}

// Planner 把文本与路径几何组合成放置计划。两种模式之间不共享可变状态。
type Planner struct {
	Config   Config
	Measurer Measurer
}

// NewPlanner 使用给定配置与测量器（可以为 nil）构造规划器。
func NewPlanner(cfg Config, m Measurer) *Planner {
	return &Planner{Config: cfg.withDefaults(), Measurer: m}
}

// Plan 针对模式生成计划。控制点不足（曲线为空）时返回空计划而不是错误。
func (p *Planner) Plan(mode Mode, run TextRun, g Geometry) (Plan, error) {
	switch mode {
	case ModeFollow:
		return Plan{Mode: mode, Follow: p.follow(run, g)}, nil
	case ModeFill:
		return Plan{Mode: mode, Fill: p.fill(run, g)}, nil
	default:
		return Plan{}, fmt.Errorf("layout: 未知的渲染模式 %q", mode)
	}
}

func (p *Planner) follow(run TextRun, g Geometry) *FollowPlan {
	cfg := p.Config.withDefaults()
	strategy := SelectStrategy(cfg.Placement, p.Measurer, run, g.Length, cfg.GlyphStepPx)
	out := &FollowPlan{
		Strategy:   strategy.Name(),
		FontSizePt: run.FontSizePt,
		PathLength: g.Length,
		Path:       geom.SVG(g.Curve),
		Glyphs:     []GlyphPlacement{},
	}
	if g.Curve.Empty() || run.Content == "" {
		return out
	}

	chars := splitChars(run.Content)
	offsets := strategy.Offsets(run, chars)
	line := geom.NewPolyline(g.Samples)
	for i, ch := range chars {
		pos, angle := line.PointAt(offsets[i])
		out.Glyphs = append(out.Glyphs, GlyphPlacement{
			Char:     ch,
			Offset:   offsets[i],
			X:        pos.X,
			Y:        pos.Y,
			Angle:    angle,
			Overflow: offsets[i] > g.Length,
		})
	}
	Logger().Debug("follow 计划", "strategy", strategy.Name(), "glyphs", len(chars), "pathLength", g.Length)
	return out
}

func (p *Planner) fill(run TextRun, g Geometry) *FillPlan {
	cfg := p.Config.withDefaults()
	maxWidth := g.Box.Width()
	if cfg.FillWidthPx > 0 {
		maxWidth = cfg.FillWidthPx
	}
	out := &FillPlan{
		FontSizePt: run.FontSizePt,
		MaxWidth:   maxWidth,
		Origin:     g.Box.Origin(),
		ClipPath:   geom.ClipSVG(g.Curve),
		Lines:      []LinePlacement{},
	}
	if g.Curve.Empty() {
		return out
	}

	lineAdvance := run.FontSizePt + run.LetterSpacingPx
	for i, text := range Wrap(run.Content, run.FontSizePt, run.FontFamily, maxWidth, p.Measurer) {
		baseline := float64(i)*lineAdvance + run.FontSizePt
		out.Lines = append(out.Lines, LinePlacement{
			Text:      text,
			BaselineY: baseline,
			Overflow:  baseline > g.Box.Height(),
		})
	}
	Logger().Debug("fill 计划", "lines", len(out.Lines), "maxWidth", maxWidth)
	return out
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
