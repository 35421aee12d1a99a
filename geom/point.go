// Package geom 把稀疏的控制点插值成平滑曲线，并提供包围盒、采样与弧长等几何查询。
//
// 包内所有函数都是输入的纯函数：没有缓存，也没有共享的可变状态。
package geom

import (
	"fmt"
	"math"
)

// Point 是平面坐标，按值传递。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add 返回 p+o。
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub 返回 p−o。
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul 将坐标按 s 缩放。
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Hypot 返回 p 到原点的欧氏距离。
func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist 返回两点间的欧氏距离。
func (p Point) Dist(o Point) float64 {
	return o.Sub(p).Hypot()
}

// Lerp linearly interpolates between two points.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// Near 判断两点在 eps 容差内是否重合。
func (p Point) Near(o Point, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps
}
