package layout

import "github.com/ByLCY/pathtext/geom"

// Measurer 负责给出文本在指定字体与字号下的渲染宽度（px）。
// 既会按单个字符调用，也会按整串调用；不可用时返回 0。
type Measurer interface {
	Measure(text string, fontSizePt float64, fontFamily string) float64
}

// MeasurerFunc adapts a plain function to Measurer.
type MeasurerFunc func(text string, fontSizePt float64, fontFamily string) float64

func (f MeasurerFunc) Measure(text string, fontSizePt float64, fontFamily string) float64 {
	return f(text, fontSizePt, fontFamily)
}

// PlacementPolicy 选择 follow 模式的偏移策略。
type PlacementPolicy string

const (
	PlacementAuto     PlacementPolicy = "auto"     // 有测量能力时逐字测量，否则固定步长
	PlacementFixed    PlacementPolicy = "fixed"    // index * GlyphStepPx
	PlacementMeasured PlacementPolicy = "measured" // 累计字宽 + 字距
)

// Config 列出所有布局常量。零值字段在 withDefaults 中补齐。
type Config struct {
	Tension         float64         `json:"tension"`         // Catmull-Rom → Bezier 的切线除数
	StepsPerSegment int             `json:"stepsPerSegment"` // 每段采样数，决定弧长精度
	FloorSizePt     float64         `json:"floorSizePt"`     // 字号搜索下限
	GlyphStepPx     float64         `json:"glyphStepPx"`     // 固定步长策略的字符间距
	FillWidthPx     float64         `json:"fillWidthPx"`     // >0 时替代包围盒宽度作为换行宽度
	WidthScale      float64         `json:"widthScale"`      // 拟合时测量宽度的经验缩放
	WidthOffset     float64         `json:"widthOffset"`     // 拟合时测量宽度的经验偏移
	CanvasWidth     float64         `json:"canvasWidth"`
	CanvasHeight    float64         `json:"canvasHeight"`
	FitToPath       bool            `json:"fitToPath"` // follow 模式下按路径长度缩小字号
	Placement       PlacementPolicy `json:"placement"`
}

// DefaultConfig 返回按视觉效果校准过的默认值。
func DefaultConfig() Config {
	return Config{
		Tension:         geom.DefaultTension,
		StepsPerSegment: geom.DefaultSteps,
		FloorSizePt:     1,
		GlyphStepPx:     10,
		WidthScale:      1,
		CanvasWidth:     300,
		CanvasHeight:    200,
		FitToPath:       true,
		Placement:       PlacementAuto,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Tension <= 0 {
		c.Tension = def.Tension
	}
	if c.StepsPerSegment <= 0 {
		c.StepsPerSegment = def.StepsPerSegment
	}
	if c.FloorSizePt <= 0 {
		c.FloorSizePt = def.FloorSizePt
	}
	if c.GlyphStepPx <= 0 {
		c.GlyphStepPx = def.GlyphStepPx
	}
	if c.WidthScale == 0 {
		c.WidthScale = def.WidthScale
	}
	if c.Placement == "" {
		c.Placement = def.Placement
	}
	return c
}

// NewGeometry 依次完成插值、采样、包围盒与弧长计算。
// 包围盒取自曲线采样，因而覆盖所有控制点以及曲线的外凸部分。
func NewGeometry(points []geom.Point, cfg Config) Geometry {
	cfg = cfg.withDefaults()
	curve := geom.Interpolator{Tension: cfg.Tension}.Interpolate(points)
	if curve.Empty() {
		return Geometry{Box: geom.Bounds(points)}
	}
	samples := geom.Sample(curve, cfg.StepsPerSegment)
	return Geometry{
		Curve:   curve,
		Samples: samples,
		Box:     geom.Bounds(samples),
		Length:  geom.ArcLength(samples),
	}
}
