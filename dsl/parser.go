// Package dsl 解析纸张预设文件。
//
// 一个文件可以包含多个 sheet 块，每块是一组 key: value 赋值：
//
//	sheet Journal {
//	  type: hex
//	  size: 6mm
//	  color: #9999cc
//	}
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
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+|\.\d+)(?:mm|cm|in|pt)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// File is the root AST node of a preset file.
type File struct {
	Sheets []*Sheet `parser:"Newline* ( @@ Newline* )*"`
}

// Sheet is a named group of settings.
type Sheet struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"'sheet' @Ident"`
	Entries []*Assignment  `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"@@"`
}

// Value represents a single property value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// Raw returns the value as written, with string literals unquoted.
func (v *Value) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
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

// Parse parses a preset file from an io.Reader. filename is only used in error positions.
func Parse(filename string, r io.Reader) (*File, error) {
	return fileParser.Parse(filename, r)
}

// ParseString parses preset content from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}

// Lookup 返回指定名称的 sheet；name 为空时返回第一个。
func (f *File) Lookup(name string) (*Sheet, error) {
	if f == nil || len(f.Sheets) == 0 {
		return nil, fmt.Errorf("预设文件中没有 sheet 定义")
	}
	seen := map[string]lexer.Position{}
	for _, s := range f.Sheets {
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("%s: sheet %s 重复定义（首次定义于 %s）", s.Pos, s.Name, prev)
		}
		seen[s.Name] = s.Pos
	}
	if name == "" {
		return f.Sheets[0], nil
	}
	for _, s := range f.Sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("预设文件中找不到 sheet %s", name)
}
