package geom

// BoundingBox 是轴对齐包围盒。
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// EmptyBox 是没有任何点时返回的哨兵包围盒，永远不会是 nil。
var EmptyBox = BoundingBox{}

// Bounds 单次线性扫描求包围盒。
func Bounds(points []Point) BoundingBox {
	if len(points) == 0 {
		return EmptyBox
	}
	box := BoundingBox{
		MinX: points[0].X,
		MinY: points[0].Y,
		MaxX: points[0].X,
		MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		box.MinX = min(box.MinX, p.X)
		box.MinY = min(box.MinY, p.Y)
		box.MaxX = max(box.MaxX, p.X)
		box.MaxY = max(box.MaxY, p.Y)
	}
	return box
}

func (b BoundingBox) Width() float64  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Origin 返回左上角（MinX, MinY）。
func (b BoundingBox) Origin() Point { return Point{X: b.MinX, Y: b.MinY} }

// Contains 报告 p 是否落在包围盒内（含边界）。
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// IsEmpty 报告 b 是否为零面积且位于原点的哨兵值。
func (b BoundingBox) IsEmpty() bool { return b == EmptyBox }
