package server

import (
	"os"
	"strconv"
)

// Config 描述 HTTP 服务的运行参数，全部来自环境变量。
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int // 秒
	WriteTimeout int // 秒
	FontDir      string
}

// Load 从环境变量读取配置，缺省或无法解析时使用默认值。
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		FontDir:      getEnv("FONT_DIR", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
