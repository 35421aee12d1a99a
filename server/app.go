// Package server 把场景计算暴露为 HTTP 接口。
package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// New 创建挂好中间件与路由的 fiber 应用。
func New(cfg *Config, h *Handlers) *fiber.App {
	if cfg == nil {
		cfg = Load()
	}
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "pathtext",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(RequestID())
	if cfg.Environment != "test" {
		app.Use(Logger())
	}

	app.Get("/health/live", h.LivenessProbe)
	app.Get("/health/ready", h.ReadinessProbe)

	api := app.Group("/api/v1")
	api.Get("/fonts", h.Fonts)
	api.Post("/plan", h.Plan)
	api.Post("/scene", h.Scene)

	return app
}

// errorHandler 让路由层错误（404、405、panic）同样返回 {"error": ...}。
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
