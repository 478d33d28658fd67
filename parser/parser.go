package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var colorRe = regexp.MustCompile(`#define (\w+)\s+CLITERAL\(Color\)\{([^}]+)\}`)
var enumRe = regexp.MustCompile(`typedef enum \{([^}]*)\} (\w+);`)
var opaqueRe = regexp.MustCompile(`typedef struct (\w+) (\w+);`)
var typedefRe = regexp.MustCompile(`typedef (\w+) (\w+);`)
var structRe = regexp.MustCompile(`typedef struct (\w+) \{([^}]*)\}`)
var fieldRe = regexp.MustCompile(`(.*?)((?:\w+|, )+)(?:\[(\w+)\])?;`)
var funcRe = regexp.MustCompile(`RLAPI (.*?)(\w+)\(([^)]*)\);`)
var declLineRe = regexp.MustCompile(`(?m)^[ \t]*((?:typedef|RLAPI)\b[^\n]*)`)

// ParseFile reads the header at path and parses it.
func ParseFile(path string) (*Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	return Parse(string(data))
}

// Parse runs every declaration pass over content. Each pass is independent
// and only looks at the constructs it knows about; anything else is left
// alone and reported in Header.Unmatched.
func Parse(content string) (*Header, error) {
	content = normalizeNewlines(content)

	header := &Header{}

	parseColors(content, header)
	parseEnums(content, header)
	parseOpaques(content, header)
	parseTypeDefs(content, header)
	parseStructs(content, header)
	parseFunctions(content, header)
	findUnmatched(content, header)

	return header, nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return s
}

// Line is a source line split at the start of its line comment. Code keeps
// its original indentation and trailing blanks; Comment starts with "//" or
// is empty.
type Line struct {
	Code    string
	Comment string
}

// SplitLines splits s into lines and separates the code from the line
// comment on each of them.
func SplitLines(s string) []Line {
	raw := strings.Split(s, "\n")
	lines := make([]Line, 0, len(raw))

	for _, l := range raw {
		if idx := strings.Index(l, "//"); idx != -1 {
			lines = append(lines, Line{Code: l[:idx], Comment: l[idx:]})
			continue
		}
		lines = append(lines, Line{Code: l})
	}

	return lines
}

func parseColors(content string, header *Header) {
	matches := colorRe.FindAllStringSubmatch(content, -1)

	for _, m := range matches {
		var values []string
		for _, v := range strings.Split(m[2], ",") {
			values = append(values, strings.TrimSpace(v))
		}

		header.Colors = append(header.Colors, Color{
			Name:   m[1],
			Values: values,
		})
	}
}

func parseEnums(content string, header *Header) {
	matches := enumRe.FindAllStringSubmatch(content, -1)

	for _, m := range matches {
		header.Enums = append(header.Enums, Enum{
			Name: strings.TrimSpace(m[2]),
			Body: strings.TrimSpace(m[1]),
		})
	}
}

func parseOpaques(content string, header *Header) {
	matches := opaqueRe.FindAllStringSubmatch(content, -1)

	for _, m := range matches {
		header.Opaques = append(header.Opaques, Opaque{
			Tag:  m[1],
			Name: m[2],
		})
	}
}

func parseTypeDefs(content string, header *Header) {
	matches := typedefRe.FindAllStringSubmatch(content, -1)

	for _, m := range matches {
		// `typedef struct X;` belongs to the opaque pass.
		if m[1] == "struct" {
			continue
		}

		header.TypeDefs = append(header.TypeDefs, TypeDef{
			Name:       m[2],
			SourceType: m[1],
		})
	}
}

func parseStructs(content string, header *Header) {
	matches := structRe.FindAllStringSubmatch(content, -1)

	for _, m := range matches {
		header.Structs = append(header.Structs, Struct{
			Name:   m[1],
			Fields: parseStructFields(strings.TrimSpace(m[2])),
		})
	}
}

func parseStructFields(body string) []StructField {
	var fields []StructField

	for _, line := range SplitLines(body) {
		for _, m := range fieldRe.FindAllStringSubmatch(line.Code, -1) {
			var names []string
			for _, name := range strings.Split(m[2], ",") {
				if name = strings.TrimSpace(name); name != "" {
					names = append(names, name)
				}
			}

			fields = append(fields, StructField{
				Names:     names,
				Type:      strings.TrimSpace(m[1]),
				ArraySize: m[3],
			})
		}
	}

	return fields
}

func parseFunctions(content string, header *Header) {
	matches := funcRe.FindAllStringSubmatch(content, -1)

	for _, m := range matches {
		fn := Function{
			Name:       m[2],
			ReturnType: strings.TrimSpace(m[1]),
		}

		paramsStr := strings.TrimSpace(m[3])
		if paramsStr != "void" && paramsStr != "" {
			fn.Params, fn.IsVariadic = parseParams(paramsStr)
		}

		header.Functions = append(header.Functions, fn)
	}
}

func parseParams(paramsStr string) ([]FunctionParam, bool) {
	var params []FunctionParam
	isVariadic := false

	for i, part := range strings.Split(paramsStr, ",") {
		tokens := strings.Fields(part)
		if len(tokens) == 0 {
			continue
		}

		name := tokens[len(tokens)-1]
		if name == "..." {
			isVariadic = true
			continue
		}

		// An unnamed parameter is just its type.
		if len(tokens) == 1 || isTypeToken(name) {
			params = append(params, FunctionParam{
				Name: fmt.Sprintf("arg%d", i+1),
				Type: strings.Join(tokens, " "),
			})
			continue
		}

		typeStr := strings.Join(tokens[:len(tokens)-1], " ")

		stars := len(name) - len(strings.TrimLeft(name, "*"))
		if stars > 0 {
			name = name[stars:]
			typeStr += " " + strings.Repeat("*", stars)
		}

		params = append(params, FunctionParam{
			Name: name,
			Type: typeStr,
		})
	}

	return params, isVariadic
}

var typeKeywords = map[string]bool{
	"void": true, "bool": true, "char": true, "short": true, "int": true,
	"long": true, "float": true, "double": true, "signed": true, "unsigned": true,
}

// isTypeToken reports whether the last token of a parameter belongs to its
// type rather than naming it, as in `const char *` or `unsigned int`.
func isTypeToken(tok string) bool {
	bare := strings.TrimRight(tok, "*")
	return bare == "" || typeKeywords[bare]
}

// findUnmatched records typedef and RLAPI lines that start outside every
// span recognized by the declaration passes.
func findUnmatched(content string, header *Header) {
	var spans [][]int
	for _, re := range []*regexp.Regexp{enumRe, opaqueRe, typedefRe, structRe, funcRe} {
		spans = append(spans, re.FindAllStringIndex(content, -1)...)
	}

	for _, loc := range declLineRe.FindAllStringSubmatchIndex(content, -1) {
		start := loc[2]

		covered := false
		for _, span := range spans {
			if start >= span[0] && start < span[1] {
				covered = true
				break
			}
		}
		if covered {
			continue
		}

		header.Unmatched = append(header.Unmatched, Unmatched{
			Line: strings.Count(content[:start], "\n") + 1,
			Text: strings.TrimSpace(content[start:loc[3]]),
		})
	}
}
