package scene

import (
	"fmt"

	"github.com/ByLCY/pathtext/geom"
	"github.com/ByLCY/pathtext/layout"
)

// Message 是编辑面发出的一次输入变更。
type Message interface {
	apply(s *Scene) error
}

// SetPoints 整体替换控制点。
type SetPoints struct {
	Points []geom.Point
}

func (m SetPoints) apply(s *Scene) error {
	s.Points = append([]geom.Point(nil), m.Points...)
	return nil
}

// MovePoint 拖动第 Index 个控制点到 To。
type MovePoint struct {
	Index int
	To    geom.Point
}

func (m MovePoint) apply(s *Scene) error {
	if m.Index < 0 || m.Index >= len(s.Points) {
		return fmt.Errorf("控制点下标 %d 越界（共 %d 个）", m.Index, len(s.Points))
	}
	s.Points[m.Index] = m.To
	return nil
}

// InsertPoint 在 Index 之前插入控制点，Index 等于点数时追加到末尾。
type InsertPoint struct {
	Index int
	At    geom.Point
}

func (m InsertPoint) apply(s *Scene) error {
	if m.Index < 0 || m.Index > len(s.Points) {
		return fmt.Errorf("插入位置 %d 越界（共 %d 个）", m.Index, len(s.Points))
	}
	s.Points = append(s.Points, geom.Point{})
	copy(s.Points[m.Index+1:], s.Points[m.Index:])
	s.Points[m.Index] = m.At
	return nil
}

// RemovePoint 删除第 Index 个控制点。
type RemovePoint struct {
	Index int
}

func (m RemovePoint) apply(s *Scene) error {
	if m.Index < 0 || m.Index >= len(s.Points) {
		return fmt.Errorf("控制点下标 %d 越界（共 %d 个）", m.Index, len(s.Points))
	}
	s.Points = append(s.Points[:m.Index], s.Points[m.Index+1:]...)
	return nil
}

// EditRun 修改文本样式；为 nil 的字段保持不变。
type EditRun struct {
	Content         *string
	FontFamily      *string
	FontSizePt      *float64
	LetterSpacingPx *float64
	Color           *layout.Color
}

func (m EditRun) apply(s *Scene) error {
	if m.Content != nil {
		s.Run.Content = *m.Content
	}
	if m.FontFamily != nil {
		s.Run.FontFamily = *m.FontFamily
	}
	if m.FontSizePt != nil {
		if *m.FontSizePt <= 0 {
			return fmt.Errorf("字号必须为正数，实际 %g", *m.FontSizePt)
		}
		s.Run.FontSizePt = *m.FontSizePt
	}
	if m.LetterSpacingPx != nil {
		s.Run.LetterSpacingPx = *m.LetterSpacingPx
	}
	if m.Color != nil {
		s.Run.Color = *m.Color
	}
	return nil
}

// SetMode 切换渲染模式。
type SetMode struct {
	Mode layout.Mode
}

func (m SetMode) apply(s *Scene) error {
	mode, err := layout.ParseMode(string(m.Mode))
	if err != nil {
		return err
	}
	s.Mode = mode
	return nil
}

// Editor 保存当前输入，每条消息都会触发一次完整的重新计算。
// Editor 不是并发安全的，调用方应在单个 goroutine 中使用。
type Editor struct {
	opts   Options
	scene  Scene
	result *Result
}

// NewEditor 以初始场景创建编辑器并立即计算一次。
func NewEditor(initial Scene, opts Options) (*Editor, error) {
	e := &Editor{opts: opts, scene: clone(initial)}
	res, err := e.scene.Compute(opts)
	if err != nil {
		return nil, err
	}
	e.result = res
	return e, nil
}

// Apply 依次应用消息并重新计算。任一消息或计算失败时，编辑器状态保持不变。
func (e *Editor) Apply(msgs ...Message) (*Result, error) {
	next := clone(e.scene)
	for _, m := range msgs {
		if err := m.apply(&next); err != nil {
			return nil, fmt.Errorf("scene: 应用 %T 失败: %w", m, err)
		}
	}
	res, err := next.Compute(e.opts)
	if err != nil {
		return nil, err
	}
	e.scene, e.result = next, res
	layout.Logger().Debug("场景已重新计算", "messages", len(msgs), "points", len(next.Points), "mode", next.Mode)
	return res, nil
}

// Scene 返回当前输入的副本。
func (e *Editor) Scene() Scene { return clone(e.scene) }

// Result 返回最近一次计算结果。
func (e *Editor) Result() *Result { return e.result }

func clone(s Scene) Scene {
	s.Points = append([]geom.Point(nil), s.Points...)
	return s
}
