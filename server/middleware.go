package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/google/uuid"
)

// HeaderRequestID 是请求标识的响应头。
const HeaderRequestID = "X-Request-ID"

const localRequestID = "requestID"

// RequestID 为每个请求分配 uuid；客户端已带 X-Request-ID 时沿用。
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(localRequestID, id)
		return c.Next()
	}
}

// Logger 返回访问日志中间件。
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | id=${respHeader:X-Request-ID}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

func requestID(c fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}
