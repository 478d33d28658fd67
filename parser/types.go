package parser

import "strings"

// Color is a `#define NAME CLITERAL(Color){r, g, b, a}` macro.
type Color struct {
	Name   string
	Values []string
}

// Enum is a `typedef enum { ... } Name;` block. Body holds the raw text
// between the braces, comments included.
type Enum struct {
	Name string
	Body string
}

type EnumValue struct {
	Name  string
	Value string
}

// Values returns the members declared in the enum body in source order.
func (e Enum) Values() []EnumValue {
	var values []EnumValue

	for _, line := range SplitLines(e.Body) {
		for _, part := range strings.Split(line.Code, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if name, value, ok := strings.Cut(part, "="); ok {
				values = append(values, EnumValue{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
			} else {
				values = append(values, EnumValue{Name: part})
			}
		}
	}

	return values
}

// Opaque is a `typedef struct Tag Name;` forward declaration.
type Opaque struct {
	Tag  string
	Name string
}

// TypeDef is a `typedef Base Name;` alias.
type TypeDef struct {
	Name       string
	SourceType string
}

// StructField is one field line of a struct body. Comma joined declarations
// such as `unsigned char r, g, b, a;` produce a single field with several
// names. Type is the raw C type including any pointer markers.
type StructField struct {
	Names     []string
	Type      string
	ArraySize string
}

type Struct struct {
	Name   string
	Fields []StructField
}

// FunctionParam is a parameter of an exported prototype. Pointer markers
// attached to the name in the source are moved onto Type.
type FunctionParam struct {
	Name string
	Type string
}

type Function struct {
	Name       string
	ReturnType string
	Params     []FunctionParam
	IsVariadic bool
}

// Unmatched is a declaration line that none of the passes recognized.
type Unmatched struct {
	Line int
	Text string
}

type Header struct {
	Colors    []Color
	Enums     []Enum
	Opaques   []Opaque
	TypeDefs  []TypeDef
	Structs   []Struct
	Functions []Function
	Unmatched []Unmatched
}
