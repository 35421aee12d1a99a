package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ByLCY/pathtext/geom"
)

var line = []geom.Point{{50, 100}, {100, 100}, {150, 100}, {200, 100}, {250, 100}}

func TestNewGeometryCollinear(t *testing.T) {
	g := NewGeometry(line, DefaultConfig())
	if g.Curve.Len() != 4 {
		t.Fatalf("expected 4 segments, got %d", g.Curve.Len())
	}
	if math.Abs(g.Length-200) > 1e-6 {
		t.Fatalf("length = %g", g.Length)
	}
	want := geom.BoundingBox{MinX: 50, MinY: 100, MaxX: 250, MaxY: 100}
	if d := cmp.Diff(want, g.Box, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Fatalf("box mismatch:\n%s", d)
	}
}

func TestNewGeometryTooFewPoints(t *testing.T) {
	for _, pts := range [][]geom.Point{nil, {{3, 4}}} {
		g := NewGeometry(pts, DefaultConfig())
		if !g.Curve.Empty() || g.Length != 0 || len(g.Samples) != 0 {
			t.Fatalf("points=%v: expected empty geometry, got %+v", pts, g)
		}
	}
}

func TestSelectStrategy(t *testing.T) {
	run := TextRun{Content: "abc", FontSizePt: 10}
	m := &perRune{advance: 5, refSize: 10}
	cases := []struct {
		name   string
		policy PlacementPolicy
		m      Measurer
		length float64
		want   string
	}{
		{"auto with measurer", PlacementAuto, m, 100, "measured"},
		{"auto without measurer", PlacementAuto, nil, 100, "fixed"},
		{"auto zero widths", PlacementAuto, zeroMeasurer{}, 100, "fixed"},
		{"auto without path", PlacementAuto, m, 0, "fixed"},
		{"forced fixed", PlacementFixed, m, 100, "fixed"},
		{"forced measured", PlacementMeasured, m, 0, "measured"},
		{"forced measured without measurer", PlacementMeasured, nil, 100, "fixed"},
		{"forced measured zero widths", PlacementMeasured, zeroMeasurer{}, 100, "fixed"},
	}
	for _, tc := range cases {
		if got := SelectStrategy(tc.policy, tc.m, run, tc.length, 10).Name(); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestFollowMeasuredOffsets(t *testing.T) {
	m := &perRune{advance: 6, refSize: 10}
	p := NewPlanner(DefaultConfig(), m)
	run := TextRun{Content: "abcd", FontSizePt: 10, LetterSpacingPx: 2}
	plan, err := p.Plan(ModeFollow, run, NewGeometry(line, DefaultConfig()))
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	if plan.Follow == nil || plan.Fill != nil {
		t.Fatalf("expected a follow variant, got %+v", plan)
	}
	if plan.Follow.Strategy != "measured" {
		t.Fatalf("strategy = %s", plan.Follow.Strategy)
	}
	var offsets []float64
	for _, g := range plan.Follow.Glyphs {
		offsets = append(offsets, g.Offset)
	}
	if d := cmp.Diff([]float64{0, 8, 16, 24}, offsets); d != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", d)
	}
	// 水平直线上，位置 = 起点 + 偏移，角度为 0
	for _, g := range plan.Follow.Glyphs {
		if math.Abs(g.X-(50+g.Offset)) > 1e-6 || math.Abs(g.Y-100) > 1e-6 || math.Abs(g.Angle) > 1e-9 {
			t.Fatalf("glyph %q misplaced: %+v", g.Char, g)
		}
	}
}

func TestFollowFixedStepFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GlyphStepPx = 30
	p := NewPlanner(cfg, zeroMeasurer{})
	plan, err := p.Plan(ModeFollow, TextRun{Content: "héllo world", FontSizePt: 12}, NewGeometry(line, cfg))
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	glyphs := plan.Follow.Glyphs
	if len(glyphs) != 11 {
		t.Fatalf("expected one placement per rune, got %d", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Offset != float64(i)*30 {
			t.Fatalf("glyph %d offset %g", i, g.Offset)
		}
		if g.Overflow != (g.Offset > 200) {
			t.Fatalf("glyph %d overflow flag wrong: %+v", i, g)
		}
	}
	if glyphs[1].Char != "é" {
		t.Fatalf("runes must not be split: %q", glyphs[1].Char)
	}
}

// 强制逐字测量但测量器给不出宽度时，字符不能全部堆在起点。
func TestFollowForcedMeasuredWithoutWidths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Placement = PlacementMeasured
	plan, err := NewPlanner(cfg, zeroMeasurer{}).Plan(ModeFollow, TextRun{Content: "abc", FontSizePt: 12}, NewGeometry(line, cfg))
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	if plan.Follow.Strategy != "fixed" {
		t.Fatalf("strategy = %s, want fixed", plan.Follow.Strategy)
	}
	var offsets []float64
	for _, g := range plan.Follow.Glyphs {
		offsets = append(offsets, g.Offset)
	}
	if d := cmp.Diff([]float64{0, 10, 20}, offsets); d != "" {
		t.Fatalf("offsets mismatch (-want +got):\n%s", d)
	}
}

func TestFollowOffsetsMonotonic(t *testing.T) {
	m := &perRune{advance: 4, refSize: 10}
	pts := []geom.Point{{0, 0}, {60, 90}, {120, 10}, {200, 120}}
	plan, err := NewPlanner(DefaultConfig(), m).Plan(ModeFollow,
		TextRun{Content: "monotone offsets", FontSizePt: 14}, NewGeometry(pts, DefaultConfig()))
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	for i := 1; i < len(plan.Follow.Glyphs); i++ {
		if plan.Follow.Glyphs[i].Offset <= plan.Follow.Glyphs[i-1].Offset {
			t.Fatalf("offset %d not increasing", i)
		}
	}
}

func TestFillBaselines(t *testing.T) {
	m := &perRune{advance: 8, refSize: 12}
	pts := []geom.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	cfg := DefaultConfig()
	cfg.FillWidthPx = 100
	run := TextRun{Content: "the quick brown fox", FontSizePt: 12, LetterSpacingPx: 3}
	plan, err := NewPlanner(cfg, m).Plan(ModeFill, run, NewGeometry(pts, cfg))
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	if plan.Fill == nil || plan.Follow != nil {
		t.Fatalf("expected a fill variant, got %+v", plan)
	}
	want := []LinePlacement{
		{Text: "the quick", BaselineY: 12},
		{Text: "brown fox", BaselineY: 12 + 15},
	}
	if d := cmp.Diff(want, plan.Fill.Lines); d != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", d)
	}
	if plan.Fill.MaxWidth != 100 {
		t.Fatalf("max width = %g", plan.Fill.MaxWidth)
	}
	if plan.Fill.ClipPath == "" {
		t.Fatalf("clip path missing")
	}
}

func TestFillUsesBoxWidth(t *testing.T) {
	g := NewGeometry(line, DefaultConfig())
	plan, err := NewPlanner(DefaultConfig(), &perRune{advance: 8, refSize: 12}).
		Plan(ModeFill, TextRun{Content: "a b", FontSizePt: 12}, g)
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	if math.Abs(plan.Fill.MaxWidth-g.Box.Width()) > 1e-9 {
		t.Fatalf("max width %g, box width %g", plan.Fill.MaxWidth, g.Box.Width())
	}
	if plan.Fill.Origin != g.Box.Origin() {
		t.Fatalf("origin %v, want %v", plan.Fill.Origin, g.Box.Origin())
	}
}

func TestPlanEmptyCurve(t *testing.T) {
	p := NewPlanner(DefaultConfig(), &perRune{advance: 8, refSize: 12})
	g := NewGeometry([]geom.Point{{1, 1}}, DefaultConfig())
	for _, mode := range []Mode{ModeFollow, ModeFill} {
		plan, err := p.Plan(mode, TextRun{Content: "text", FontSizePt: 12}, g)
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if !plan.Empty() {
			t.Fatalf("%s: expected empty plan, got %+v", mode, plan)
		}
	}
}

func TestPlanUnknownMode(t *testing.T) {
	if _, err := NewPlanner(DefaultConfig(), nil).Plan("spiral", TextRun{}, Geometry{}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestPlanDeterministic(t *testing.T) {
	m := &perRune{advance: 5, refSize: 10}
	p := NewPlanner(DefaultConfig(), m)
	run := TextRun{Content: "same input same output", FontSizePt: 11, LetterSpacingPx: 0.5}
	g := NewGeometry(line, DefaultConfig())
	for _, mode := range []Mode{ModeFollow, ModeFill} {
		first, _ := p.Plan(mode, run, g)
		for i := 0; i < 3; i++ {
			again, _ := p.Plan(mode, run, NewGeometry(line, DefaultConfig()))
			if d := cmp.Diff(first, again); d != "" {
				t.Fatalf("%s: run %d differs:\n%s", mode, i, d)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeFollow, "Follow": ModeFollow, "fill": ModeFill, "fill-shape": ModeFill} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseMode("zigzag"); err == nil {
		t.Fatalf("expected error")
	}
}
