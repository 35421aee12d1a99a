package scene

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ByLCY/pathtext/dsl"
	"github.com/ByLCY/pathtext/geom"
	"github.com/ByLCY/pathtext/layout"
)

const bannerScene = `
scene Banner {
  points: [(50, 100), (100, 80), (150, 100)]
  text: "Hello, ${user.name}!"
  font: "Go Bold"; size: 16px; spacing: 0.75pt
  color: #0F62FE
  mode: fill
  width: 180
}
`

func mustParse(t *testing.T, src string) *dsl.Document {
	t.Helper()
	doc, err := dsl.ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func TestBuildScene(t *testing.T) {
	data := map[string]any{"user": map[string]any{"name": "Ada"}}
	s, err := Build(mustParse(t, bannerScene), data, DefaultOptions())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	want := &Scene{
		Name:   "Banner",
		Points: []geom.Point{{X: 50, Y: 100}, {X: 100, Y: 80}, {X: 150, Y: 100}},
		Run: layout.TextRun{
			Content:         "Hello, Ada!",
			FontFamily:      "Go Bold",
			FontSizePt:      12,
			LetterSpacingPx: 1,
			Color:           layout.Color{R: 0x0F, G: 0x62, B: 0xFE, A: 0xFF},
		},
		Mode:        layout.ModeFill,
		FillWidthPx: 180,
	}
	if diff := cmp.Diff(want, s, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("scene mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDefaults(t *testing.T) {
	s, err := Build(mustParse(t, `scene Empty { text: plain }`), nil, Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if diff := cmp.Diff(DefaultControlPoints(300, 200), s.Points); diff != "" {
		t.Fatalf("expected default control points:\n%s", diff)
	}
	if s.Run.Content != "plain" || s.Run.FontSizePt != defaultFontSizePt || s.Run.FontFamily != defaultFontFamily {
		t.Fatalf("unexpected defaults %+v", s.Run)
	}
	if s.Mode != layout.ModeFollow || s.Run.Color != layout.Black {
		t.Fatalf("unexpected mode %s color %s", s.Mode, s.Run.Color.Hex())
	}

	s, err = Build(mustParse(t, `scene None { points: [] }`), nil, Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(s.Points) != 0 {
		t.Fatalf("explicit empty points should stay empty, got %v", s.Points)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]string{
		"scene S { opacity: 1 }":         "未知属性",
		"scene S { size: 0 }":            "size",
		"scene S { size: \"big\" }":      "需要数值",
		"scene S { mode: spiral }":       "未知的渲染模式",
		"scene S { color: 12 }":          "color",
		"scene S { points: \"(1, 2)\" }": "points",
	}
	for src, want := range cases {
		_, err := Build(mustParse(t, src), nil, DefaultOptions())
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("Build(%q) error = %v, want it to mention %q", src, err, want)
		}
	}
	if _, err := Build(nil, nil, DefaultOptions()); err == nil {
		t.Fatalf("nil document should fail")
	}
}

func TestBuildErrorCarriesPosition(t *testing.T) {
	_, err := Build(mustParse(t, "scene S {\n  text: \"ok\"\n  bogus: 1\n}"), nil, DefaultOptions())
	if err == nil || !strings.Contains(err.Error(), "3:") {
		t.Fatalf("expected line 3 in error, got %v", err)
	}
}
