package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d+|\d+|\.\d+)(?:pt|px|mm)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][(),:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// Document is the root AST node of a scene file.
type Document struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"Newline* 'scene' @Ident"`
	Entries []*Entry       `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Entry is a single `key: value` line inside the scene block.
type Entry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"@@"`
}

// Value represents the supported property values.
type Value struct {
	Points *PointList     `parser:"  @@"`
	String *StringLiteral `parser:"| @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// Kind returns the human-readable value type.
func (v *Value) Kind() string {
	switch {
	case v == nil:
		return "empty"
	case v.Points != nil:
		return "points"
	case v.String != nil:
		return "string"
	case v.Number != nil:
		return "number"
	case v.Color != nil:
		return "color"
	case v.Ident != nil:
		return "ident"
	default:
		return "empty"
	}
}

// PointList captures `[ (x, y), ... ]`; separators may be commas or newlines.
type PointList struct {
	Points []*PointLiteral `parser:"'[' Newline* ( @@ ( ( ',' | Newline+ ) Newline* @@ )* )? Newline* ']'"`
}

// PointLiteral is a single `(x, y)` pair.
type PointLiteral struct {
	Pos lexer.Position `parser:"" json:"-"`
	X   string         `parser:"'(' @Number ','"`
	Y   string         `parser:"@Number ')'"`
}

// Float returns the parsed coordinates.
func (p *PointLiteral) Float() (float64, float64, error) {
	x, err := strconv.ParseFloat(p.X, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: 无效的 x 坐标 %q", p.Pos, p.X)
	}
	y, err := strconv.ParseFloat(p.Y, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: 无效的 y 坐标 %q", p.Pos, p.Y)
	}
	return x, y, nil
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a scene file from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses a scene file from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// Lookup returns the last entry with the given key, or nil.
func (d *Document) Lookup(key string) *Entry {
	if d == nil {
		return nil
	}
	var found *Entry
	for _, e := range d.Entries {
		if e.Key == key {
			found = e
		}
	}
	return found
}
