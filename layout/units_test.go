package layout

import (
	"math"
	"testing"
)

// TestPtPxRoundTrip 验证 pt↔px 换算的往返精度（允许极小的浮点误差）。
func TestPtPxRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		back := pt * PtToPx * PxToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→px→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
	for _, mm := range samples {
		back := mm * MmToPx * PxToMm
		if diff := math.Abs(back - mm); diff > 1e-9 {
			t.Fatalf("mm→px→mm 往返误差过大: in=%gmm back=%g diff=%g", mm, back, diff)
		}
	}
}

func TestLengthToConversions(t *testing.T) {
	// 72pt = 1in = 96px
	if got := (Length{Value: 72, Unit: UnitPT}).ToPX(); math.Abs(got-96) > 1e-9 {
		t.Fatalf("72pt 转 px 期望 96，实际 %g", got)
	}
	// 25.4mm = 72pt
	if got := (Length{Value: 25.4, Unit: UnitMM}).ToPT(); math.Abs(got-72) > 1e-9 {
		t.Fatalf("25.4mm 转 pt 期望 72，实际 %g", got)
	}
	if got := (Length{Value: 7, Unit: UnitNone}).ToPT(); got != 7 {
		t.Fatalf("无单位数值应原样返回，实际 %g", got)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"20pt", Length{Value: 20, Unit: UnitPT}},
		{" 1.5PX ", Length{Value: 1.5, Unit: UnitPX}},
		{"3mm", Length{Value: 3, Unit: UnitMM}},
		{"-2", Length{Value: -2, Unit: UnitNone}},
	}
	for _, tc := range cases {
		got, err := ParseLength(tc.in)
		if err != nil {
			t.Fatalf("ParseLength(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLength(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "pt", "abc"} {
		if _, err := ParseLength(bad); err == nil {
			t.Fatalf("ParseLength(%q) should fail", bad)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#333":      {R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		"#0F62FE":   {R: 0x0f, G: 0x62, B: 0xfe, A: 0xff},
		"#11223344": {R: 0x11, G: 0x22, B: 0x33, A: 0x44},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", in, got, want)
		}
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Fatalf("expected error for short color")
	}
	var c Color
	if err := c.UnmarshalText([]byte("#ff000080")); err != nil || c.Hex() != "#ff000080" {
		t.Fatalf("text round trip failed: %v %s", err, c.Hex())
	}
}
