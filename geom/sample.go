package geom

import (
	"math"
	"sort"
)

// DefaultSteps 是每段的参数采样数，即弧长估计的校准常量。
// 固定取值保证相同输入得到逐位一致的结果；采样越密误差越小。
const DefaultSteps = 50

// Sample 以等参数步长对每段取 steps 个点，最后补上曲线终点，
// 共 len(segments)*steps+1 个点。第 i 段的第一个采样点即第 i 个控制点。
// steps <= 0 时使用 DefaultSteps。
func Sample(c Curve, steps int) []Point {
	if c.Empty() {
		return nil
	}
	if steps <= 0 {
		steps = DefaultSteps
	}
	out := make([]Point, 0, len(c.Segments)*steps+1)
	for _, seg := range c.Segments {
		for k := 0; k < steps; k++ {
			out = append(out, seg.Eval(float64(k)/float64(steps)))
		}
	}
	return append(out, c.End())
}

// ArcLength 累加相邻采样点间的欧氏距离。
func ArcLength(samples []Point) float64 {
	total := 0.0
	for i := 1; i < len(samples); i++ {
		total += samples[i-1].Dist(samples[i])
	}
	return total
}

// Polyline 是带累计弧长表的采样折线，用于按弧长偏移取位置。
type Polyline struct {
	points []Point
	cum    []float64 // cum[i] 为 points[0..i] 的累计长度
}

// NewPolyline 从采样点构造折线。
func NewPolyline(samples []Point) *Polyline {
	cum := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		cum[i] = cum[i-1] + samples[i-1].Dist(samples[i])
	}
	return &Polyline{points: samples, cum: cum}
}

// Length 返回折线总长，与 ArcLength 对同一采样的结果一致。
func (pl *Polyline) Length() float64 {
	if len(pl.cum) == 0 {
		return 0
	}
	return pl.cum[len(pl.cum)-1]
}

// Points 返回采样点。
func (pl *Polyline) Points() []Point { return pl.points }

// PointAt 返回弧长偏移 offset 处的位置与切线角（弧度）。
// offset 超出 [0, Length] 时被夹到端点。空折线返回零值。
func (pl *Polyline) PointAt(offset float64) (Point, float64) {
	n := len(pl.points)
	switch {
	case n == 0:
		return Point{}, 0
	case n == 1:
		return pl.points[0], 0
	}
	offset = math.Max(0, math.Min(offset, pl.Length()))
	// 第一个 cum[i] >= offset 的下标
	i := sort.SearchFloat64s(pl.cum, offset)
	if i == 0 {
		i = 1
	}
	if i >= n {
		i = n - 1
	}
	a, b := pl.points[i-1], pl.points[i]
	span := pl.cum[i] - pl.cum[i-1]
	t := 0.0
	if span > 0 {
		t = (offset - pl.cum[i-1]) / span
	}
	return a.Lerp(b, t), pl.angle(i)
}

// angle 返回第 i 条线段的方向；零长线段向前查找第一条非零线段。
func (pl *Polyline) angle(i int) float64 {
	for j := i; j < len(pl.points); j++ {
		if d := pl.points[j].Sub(pl.points[j-1]); d.X != 0 || d.Y != 0 {
			return math.Atan2(d.Y, d.X)
		}
	}
	for j := i - 1; j >= 1; j-- {
		if d := pl.points[j].Sub(pl.points[j-1]); d.X != 0 || d.Y != 0 {
			return math.Atan2(d.Y, d.X)
		}
	}
	return 0
}
