// Package scene 串联几何、拟合与规划：把控制点与文本样式重新计算为可渲染的放置计划。
package scene

import (
	"fmt"

	"github.com/ByLCY/pathtext/geom"
	"github.com/ByLCY/pathtext/layout"
)

// Scene 是一次计算所需的全部输入。
type Scene struct {
	Name        string         `json:"name,omitempty"`
	Points      []geom.Point   `json:"points"`
	Run         layout.TextRun `json:"run"`
	Mode        layout.Mode    `json:"mode"`
	FillWidthPx float64        `json:"fillWidthPx,omitempty"` // >0 时覆盖配置中的换行宽度
}

// Options 提供布局常量与测量器（可为 nil）。
type Options struct {
	Config   layout.Config
	Measurer layout.Measurer
}

// DefaultOptions 返回默认配置、不带测量器的选项。
func DefaultOptions() Options {
	return Options{Config: layout.DefaultConfig()}
}

// Result 是一次重新计算的完整输出。
type Result struct {
	Name         string           `json:"name,omitempty"`
	Points       []geom.Point     `json:"points"`
	Path         string           `json:"path"`
	BoundingBox  geom.BoundingBox `json:"boundingBox"`
	PathLength   float64          `json:"pathLength"`
	FittedSizePt float64          `json:"fittedSizePt"`
	Plan         layout.Plan      `json:"plan"`
}

// Compute 按 曲线 → 几何 → 字号 → 计划 的顺序完整重算，不做增量更新。
// follow 模式且 FitToPath 开启时，字号会缩小到文本能放进路径长度为止。
func (s *Scene) Compute(opts Options) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("scene: 场景为空")
	}
	cfg := opts.Config
	if s.FillWidthPx > 0 {
		cfg.FillWidthPx = s.FillWidthPx
	}
	mode := s.Mode
	if mode == "" {
		mode = layout.ModeFollow
	}

	g := layout.NewGeometry(s.Points, cfg)
	run := s.Run
	if mode == layout.ModeFollow && cfg.FitToPath && g.Length > 0 {
		size, err := cfg.Fitter().Fit(layout.FitRequest{
			Text:            run.Content,
			FontFamily:      run.FontFamily,
			LetterSpacingPx: run.LetterSpacingPx,
			InitialSizePt:   run.FontSizePt,
			TargetLength:    g.Length,
		}, opts.Measurer)
		if err != nil {
			return nil, fmt.Errorf("scene: 字号拟合失败: %w", err)
		}
		run = run.WithSize(size)
	}

	plan, err := layout.NewPlanner(cfg, opts.Measurer).Plan(mode, run, g)
	if err != nil {
		return nil, fmt.Errorf("scene: 生成放置计划失败: %w", err)
	}
	return &Result{
		Name:         s.Name,
		Points:       append([]geom.Point(nil), s.Points...),
		Path:         geom.SVG(g.Curve),
		BoundingBox:  g.Box,
		PathLength:   g.Length,
		FittedSizePt: run.FontSizePt,
		Plan:         plan,
	}, nil
}

// DefaultControlPoints 返回编辑面的初始形状：画布竖直中线上等距的五个点（x = w/6 … 5w/6）。
func DefaultControlPoints(width, height float64) []geom.Point {
	points := make([]geom.Point, 0, 5)
	for i := 1; i <= 5; i++ {
		points = append(points, geom.Pt(width/6*float64(i), height/2))
	}
	return points
}
