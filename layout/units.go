package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines unit-safe length values used by scene files and measurers.
// Font sizes are carried in points, distances along paths in CSS pixels (96 dpi).

// Unit represents the original unit of a length value as written in a scene file.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers, interpreted by the caller
	UnitPT               // points
	UnitPX               // CSS pixels
	UnitMM               // millimeters
)

// Conversion constants between pt, px and mm.
const (
	PtToPx = 96.0 / 72.0
	PxToPt = 1.0 / PtToPx
	MmToPx = 96.0 / 25.4
	PxToMm = 1.0 / MmToPx
	PtToMm = 25.4 / 72.0
	MmToPt = 1.0 / PtToMm
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPT:
		return "pt"
	case UnitPX:
		return "px"
	case UnitMM:
		return "mm"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to target unit. Unit-less values are returned as-is.
func (l Length) To(target Unit) float64 {
	if l.Unit == UnitNone || target == UnitNone || l.Unit == target {
		return l.Value
	}
	px := l.Value
	switch l.Unit {
	case UnitPT:
		px = l.Value * PtToPx
	case UnitMM:
		px = l.Value * MmToPx
	}
	switch target {
	case UnitPT:
		return px * PxToPt
	case UnitMM:
		return px * PxToMm
	default:
		return px
	}
}

func (l Length) ToPT() float64 { return l.To(UnitPT) }
func (l Length) ToPX() float64 { return l.To(UnitPX) }

// ParseLength parses "20pt", "1.5px", "3mm" or a bare number.
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("长度为空")
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"pt", UnitPT}, {"px", UnitPX}, {"mm", UnitMM}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("无法解析长度 %q: %w", value, err)
	}
	return Length{Value: f, Unit: unit}, nil
}
