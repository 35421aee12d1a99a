package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/ByLCY/pathtext/dsl"
	"github.com/ByLCY/pathtext/fonts"
	"github.com/ByLCY/pathtext/layout"
	"github.com/ByLCY/pathtext/scene"
)

// Handlers 持有所有请求共用的布局选项。Measurer 必须可以被并发调用。
type Handlers struct {
	Options scene.Options
	Log     *slog.Logger
}

// PlanRequest 是 POST /api/v1/plan 的请求体。config 中出现的字段覆盖服务端默认值。
type PlanRequest struct {
	scene.Scene
	Config json.RawMessage `json:"config,omitempty"`
}

// LivenessProbe 报告进程存活。
func (h *Handlers) LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// ReadinessProbe 报告服务可以处理请求，并附上测量器是否可用。
func (h *Handlers) ReadinessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ready",
		"measurer": h.Options.Measurer != nil,
	})
}

// familyLister 由缓存字体族的测量器实现，例如 canvasmeasure.Measurer。
type familyLister interface {
	Families() []string
}

// Fonts 列出内置字体名，以及测量器已加载的字体族。
func (h *Handlers) Fonts(c fiber.Ctx) error {
	loaded := []string{}
	if fl, ok := h.Options.Measurer.(familyLister); ok {
		loaded = fl.Families()
	}
	return c.JSON(fiber.Map{"default": fonts.Default, "builtin": fonts.Names(), "loaded": loaded})
}

// Plan 按 JSON 描述的控制点与文本样式计算放置计划。
func (h *Handlers) Plan(c fiber.Ctx) error {
	// 先填默认样式，请求中缺省的字段保持默认
	req := PlanRequest{Scene: scene.Scene{Run: scene.DefaultRun()}}
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
	}
	mode, err := layout.ParseMode(string(req.Mode))
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err.Error())
	}
	req.Mode = mode

	opts := h.Options
	if len(req.Config) > 0 {
		if err := json.Unmarshal(req.Config, &opts.Config); err != nil {
			return h.fail(c, fiber.StatusBadRequest, "invalid config: "+err.Error())
		}
	}
	return h.compute(c, &req.Scene, opts)
}

// Scene 编译请求体中的场景文件并计算放置计划；查询参数 data 为绑定用的 JSON。
func (h *Handlers) Scene(c fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return h.fail(c, fiber.StatusBadRequest, "scene body required")
	}
	var data any
	if raw := c.Query("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return h.fail(c, fiber.StatusBadRequest, "invalid data JSON: "+err.Error())
		}
	}
	doc, err := dsl.Parse(bytes.NewReader(body))
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, "parse scene: "+err.Error())
	}
	s, err := scene.Build(doc, data, h.Options)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err.Error())
	}
	return h.compute(c, s, h.Options)
}

func (h *Handlers) compute(c fiber.Ctx, s *scene.Scene, opts scene.Options) error {
	res, err := s.Compute(opts)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, layout.ErrNonMonotonic) {
			status = fiber.StatusUnprocessableEntity
		}
		return h.fail(c, status, err.Error())
	}
	h.logger().Debug("计划已生成",
		"request_id", requestID(c), "mode", res.Plan.Mode,
		"points", len(s.Points), "length", res.PathLength, "size", res.FittedSizePt)
	return c.JSON(res)
}

func (h *Handlers) fail(c fiber.Ctx, status int, msg string) error {
	h.logger().Warn("请求失败", "request_id", requestID(c), "path", c.Path(), "status", status, "error", msg)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (h *Handlers) logger() *slog.Logger {
	if h.Log != nil {
		return h.Log
	}
	return layout.Logger()
}
