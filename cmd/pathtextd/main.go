package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ByLCY/pathtext/layout"
	canvasmeasure "github.com/ByLCY/pathtext/measure/canvas"
	"github.com/ByLCY/pathtext/scene"
	"github.com/ByLCY/pathtext/server"
)

func main() {
	cfg := server.Load()

	level := slog.LevelInfo
	if cfg.Environment == "development" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	layout.SetLogger(logger)

	opts := canvasmeasure.Options{}
	if cfg.FontDir != "" {
		found, err := canvasmeasure.FontsFromDir(cfg.FontDir)
		if err != nil {
			log.Fatalf("Failed to read font dir %s: %v", cfg.FontDir, err)
		}
		opts.Fonts = found
		logger.Info("fonts registered", "dir", cfg.FontDir, "count", len(found))
	}

	h := &server.Handlers{
		Options: scene.Options{
			Config:   layout.DefaultConfig(),
			Measurer: canvasmeasure.NewWithOptions(opts),
		},
		Log: logger,
	}
	app := server.New(cfg, h)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting pathtext on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
