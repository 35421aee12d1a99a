package geom

import "github.com/tdewolff/canvas"

// ToPath 把曲线输出为矢量命令：一个 MoveTo 加上每段一个 CubeTo。
// 与 Sample 使用相同的控制点，两种消费方式几何上一致。
func ToPath(c Curve) *canvas.Path {
	p := &canvas.Path{}
	if c.Empty() {
		return p
	}
	start := c.Start()
	p.MoveTo(start.X, start.Y)
	for _, seg := range c.Segments {
		p.CubeTo(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, seg.P3.X, seg.P3.Y)
	}
	return p
}

// ClosedPath 返回首尾相连的闭合路径，作为“填充形状”模式的裁剪区域。
func ClosedPath(c Curve) *canvas.Path {
	p := ToPath(c)
	if !p.Empty() {
		p.Close()
	}
	return p
}

// SVG 返回曲线的 SVG path data；空曲线返回空串。
func SVG(c Curve) string {
	return ToPath(c).ToSVG()
}

// ClipSVG 返回闭合裁剪区域的 SVG path data。
func ClipSVG(c Curve) string {
	return ClosedPath(c).ToSVG()
}
