package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ardanlabs/jai-converter/parser"
)

type Generator struct {
	libName string
	libPath string
	rules   Rules
	header  *parser.Header
	log     logrus.FieldLogger
}

// New returns a Generator that binds every function of header to the
// native library libName, found at libPath.
func New(libName, libPath string, rules Rules, header *parser.Header, log logrus.FieldLogger) *Generator {
	return &Generator{
		libName: libName,
		libPath: libPath,
		rules:   rules,
		header:  header,
		log:     log,
	}
}

// Generate renders the whole binding file.
func (g *Generator) Generate() (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "//\n// AUTOGENERATED\n//\n\n")

	g.generateColors(&buf)

	// Function pointer typedefs are not parsed, this one is written by hand.
	fmt.Fprintf(&buf, "\nTraceLogCallback :: #type (logType: s32, text: *u8, args: ..*u8);\n\n")

	g.generateEnums(&buf)
	g.generateOpaques(&buf)
	g.generateTypeDefs(&buf)
	g.generateStructs(&buf)
	g.generateFunctions(&buf)

	if err := g.generateEpilogue(&buf); err != nil {
		return "", fmt.Errorf("generating epilogue: %w", err)
	}

	return buf.String(), nil
}

func (g *Generator) generateColors(buf *bytes.Buffer) {
	for _, c := range g.header.Colors {
		fmt.Fprintf(buf, "%s :: Color.{ %s };\n", c.Name, strings.Join(c.Values, ", "))
	}
}

func (g *Generator) generateEnums(buf *bytes.Buffer) {
	for _, e := range g.header.Enums {
		if g.rules.SkipEnums[e.Name] {
			g.log.WithField("enum", e.Name).Debug("skipping enum")
			continue
		}

		kind := "enum"
		if g.rules.FlagEnums[e.Name] {
			kind = "enum_flags"
		}

		fmt.Fprintf(buf, "%s :: %s {\n    %s\n}\n\n", e.Name, kind, enumBody(e.Body))
	}
}

// enumBody rewrites the C members of body into Jai members. Only the code
// part of a line is touched so comments survive unchanged, and the last
// member always ends with a semicolon.
func enumBody(body string) string {
	lines := parser.SplitLines(body)

	last := -1
	for i := range lines {
		code := lines[i].Code
		code = strings.ReplaceAll(code, "=", "::")
		code = strings.ReplaceAll(code, ",", ";")
		lines[i].Code = code

		if strings.TrimSpace(code) != "" {
			last = i
		}
	}

	if last != -1 {
		code := lines[last].Code
		trimmed := strings.TrimRight(code, " \t")
		if !strings.HasSuffix(trimmed, ";") {
			lines[last].Code = trimmed + ";" + code[len(trimmed):]
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Code + l.Comment
	}

	return strings.Join(out, "\n")
}

func (g *Generator) generateOpaques(buf *bytes.Buffer) {
	for _, o := range g.header.Opaques {
		if g.rules.Excluded[o.Name] {
			g.log.WithField("struct", o.Name).Debug("skipping excluded forward declaration")
			continue
		}

		fmt.Fprintf(buf, "%s :: struct { /* only used as a pointer in this header */ }\n\n", o.Name)
	}
}

func (g *Generator) generateTypeDefs(buf *bytes.Buffer) {
	for _, td := range g.header.TypeDefs {
		if g.rules.Excluded[td.SourceType] || g.rules.Excluded[td.Name] {
			g.log.WithFields(logrus.Fields{
				"alias": td.Name,
				"type":  td.SourceType,
			}).Debug("skipping excluded alias")
			continue
		}

		fmt.Fprintf(buf, "%s :: %s;\n\n", td.Name, td.SourceType)
	}
}

func (g *Generator) generateStructs(buf *bytes.Buffer) {
	for _, s := range g.header.Structs {
		if g.rules.Excluded[s.Name] {
			g.log.WithField("struct", s.Name).Debug("skipping excluded struct")
			continue
		}

		fmt.Fprintf(buf, "%s :: struct {\n", s.Name)
		for _, f := range s.Fields {
			names := strings.Join(f.Names, ", ")
			fmt.Fprintf(buf, "    %s: %s;\n", names, g.fieldType(s.Name, names, f))
		}

		if overlay, ok := g.rules.Overlays[s.Name]; ok {
			fmt.Fprintf(buf, "\n%s", overlay)
		}
		fmt.Fprintf(buf, "}\n\n")
	}
}

func (g *Generator) fieldType(structName, fieldName string, f parser.StructField) string {
	if override, ok := g.rules.FieldOverrides[structName][fieldName]; ok {
		return override
	}

	jaiType := g.rules.Types.Render(f.Type)
	if f.ArraySize != "" {
		jaiType = "[" + f.ArraySize + "]" + jaiType
	}

	return jaiType
}

func (g *Generator) generateFunctions(buf *bytes.Buffer) {
	for _, fn := range g.header.Functions {
		fmt.Fprintf(buf, "%s :: %s #foreign %s;\n", fn.Name, g.signature(fn), g.libName)
	}
}

// signature returns the "(params) -> ret" part of a foreign declaration.
func (g *Generator) signature(fn parser.Function) string {
	if override, ok := g.rules.FunctionOverrides[fn.Name]; ok {
		return override
	}

	var params []string
	for _, p := range fn.Params {
		params = append(params, fmt.Sprintf("%s: %s", p.Name, g.rules.Types.Render(p.Type)))
	}
	if fn.IsVariadic {
		params = append(params, "args: ..*u8")
	}

	decl := "(" + strings.Join(params, ", ") + ")"
	if fn.ReturnType != "void" {
		decl += " -> " + g.rules.Types.Render(fn.ReturnType)
	}

	return decl
}
