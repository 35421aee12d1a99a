package geom

import "math"

// DefaultTension 是 Catmull-Rom 切线换算为 Bezier 控制点时使用的除数 d：
//
//	cp1 = p1 + (p2-p0)/d
//	cp2 = p2 - (p3-p1)/d
//
// d 越大切线越短、曲线越“紧”。d=6 对应标准的均匀 Catmull-Rom，
// 这里取 3，得到更饱满的弧形，是按视觉效果校准的值。
const DefaultTension = 3.0

// Segment 是一段三次 Bezier 曲线，P0、P3 为端点，P1、P2 为控制点。
type Segment struct {
	P0 Point `json:"p0"`
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
	P3 Point `json:"p3"`
}

// Eval 计算参数 t∈[0,1] 处的位置。
func (s Segment) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*s.P0.X + b*s.P1.X + c*s.P2.X + d*s.P3.X,
		Y: a*s.P0.Y + b*s.P1.Y + c*s.P2.Y + d*s.P3.Y,
	}
}

// Deriv 返回参数 t 处的一阶导数（切向量，未归一化）。
func (s Segment) Deriv(t float64) Point {
	mt := 1 - t
	d01 := s.P1.Sub(s.P0)
	d12 := s.P2.Sub(s.P1)
	d23 := s.P3.Sub(s.P2)
	return d01.Mul(3 * mt * mt).Add(d12.Mul(6 * mt * t)).Add(d23.Mul(3 * t * t))
}

// Curve 是由 n-1 段三次 Bezier 组成的连续曲线，n 为控制点数量。
// 它没有独立身份，总是从控制点重新计算得到。
type Curve struct {
	Segments []Segment `json:"segments"`
}

// Empty 报告曲线是否没有可绘制的几何。
func (c Curve) Empty() bool { return len(c.Segments) == 0 }

// Len 返回段数。
func (c Curve) Len() int { return len(c.Segments) }

// Start 返回曲线起点；空曲线返回零值。
func (c Curve) Start() Point {
	if c.Empty() {
		return Point{}
	}
	return c.Segments[0].P0
}

// End 返回曲线终点；空曲线返回零值。
func (c Curve) End() Point {
	if c.Empty() {
		return Point{}
	}
	return c.Segments[len(c.Segments)-1].P3
}

// Interpolator 用固定的张力除数把控制点序列转换为曲线。
type Interpolator struct {
	// Tension 为切线除数 d，<= 0 时使用 DefaultTension。
	Tension float64
}

// Interpolate 使用 DefaultTension 插值。
func Interpolate(points []Point) Curve {
	return Interpolator{Tension: DefaultTension}.Interpolate(points)
}

// Interpolate 对每个 i∈[0,n-2] 取邻点 p0=pts[max(i-1,0)]、p1=pts[i]、p2=pts[i+1]、
// p3=pts[min(i+2,n-1)]，生成一段经过 p1、p2 的 Bezier。首尾段用端点本身
// 代替缺失的外侧邻点。少于两个点时返回空曲线。
func (ip Interpolator) Interpolate(points []Point) Curve {
	n := len(points)
	if n < 2 {
		return Curve{}
	}
	d := ip.divisor()
	segments := make([]Segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, n-1)]
		segments = append(segments, Segment{
			P0: p1,
			P1: p1.Add(p2.Sub(p0).Mul(1 / d)),
			P2: p2.Sub(p3.Sub(p1).Mul(1 / d)),
			P3: p2,
		})
	}
	return Curve{Segments: segments}
}

func (ip Interpolator) divisor() float64 {
	if ip.Tension <= 0 || math.IsNaN(ip.Tension) || math.IsInf(ip.Tension, 0) {
		return DefaultTension
	}
	return ip.Tension
}
