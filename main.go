package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ByLCY/pathtext/dsl"
	"github.com/ByLCY/pathtext/geom"
	"github.com/ByLCY/pathtext/layout"
	"github.com/ByLCY/pathtext/measure"
	canvasmeasure "github.com/ByLCY/pathtext/measure/canvas"
	"github.com/ByLCY/pathtext/scene"
)

func main() {
	input := flag.String("in", "examples/banner.scene", "场景文件路径")
	output := flag.String("out", "output/banner.json", "放置计划 JSON 输出路径")
	debug := flag.String("debug", "", "曲线采样调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到场景文本的 JSON 数据")
	fontDir := flag.String("fonts", "", "额外字体目录（按文件名登记字体族）")
	measurer := flag.String("measure", "canvas", "字宽测量方式：canvas、bitmap 或 none")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	if *verbose {
		layout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	m, err := newMeasurer(*measurer, filepath.Dir(*input), *fontDir)
	if err != nil {
		log.Fatalf("创建测量器失败: %v", err)
	}
	if err := run(*input, *output, *debug, inputData, m); err != nil {
		log.Fatalf("生成放置计划失败: %v", err)
	}
	fmt.Printf("已生成放置计划：%s\n", *output)
}

// newMeasurer 按名称创建测量器。none 表示没有字体度量，规划器退回固定步长。
func newMeasurer(kind, baseDir, fontDir string) (layout.Measurer, error) {
	switch kind {
	case "", "canvas":
		opts := canvasmeasure.Options{BaseDir: baseDir}
		if fontDir != "" {
			found, err := canvasmeasure.FontsFromDir(fontDir)
			if err != nil {
				return nil, fmt.Errorf("读取字体目录失败: %w", err)
			}
			opts.Fonts = found
		}
		return canvasmeasure.NewWithOptions(opts), nil
	case "bitmap":
		return measure.NewBitmap(), nil
	case "none":
		return measure.Unavailable{}, nil
	default:
		return nil, fmt.Errorf("未知的测量方式 %q", kind)
	}
}

// run 串联解析、编译、计算与输出。
func run(inputPath, outputPath, debugPath string, data any, m layout.Measurer) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开场景文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("解析场景失败: %w", err)
	}

	opts := scene.Options{Config: layout.DefaultConfig(), Measurer: m}
	s, err := scene.Build(doc, data, opts)
	if err != nil {
		return fmt.Errorf("编译场景失败: %w", err)
	}
	result, err := s.Compute(opts)
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(s, opts.Config, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, outputPath); err != nil {
		return fmt.Errorf("写入放置计划失败: %w", err)
	}
	return nil
}

// samplesDump 是 -debug 输出的内容：控制点、逐段采样与包围盒。
type samplesDump struct {
	Points  []geom.Point     `json:"points"`
	Samples []geom.Point     `json:"samples"`
	Box     geom.BoundingBox `json:"boundingBox"`
	Length  float64          `json:"length"`
}

func writeDebug(s *scene.Scene, cfg layout.Config, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	g := layout.NewGeometry(s.Points, cfg)
	dump := samplesDump{Points: s.Points, Samples: g.Samples, Box: g.Box, Length: g.Length}
	if err := layout.WriteDebugJSON(dump, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
