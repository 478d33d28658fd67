package generator

import (
	"regexp"
	"strings"
)

// TypeRule rewrites one C type token into its Jai spelling.
type TypeRule struct {
	C   string
	Jai string
	re  *regexp.Regexp
}

// TypeMap is an ordered list of whole-word substitutions. Order matters:
// rules are applied one after the other on the result of the previous one,
// so a longer token such as "unsigned int" must come before "int".
type TypeMap []TypeRule

// NewTypeMap builds a TypeMap from (C, Jai) pairs in precedence order.
func NewTypeMap(pairs ...[2]string) TypeMap {
	m := make(TypeMap, 0, len(pairs))
	for _, p := range pairs {
		m = append(m, TypeRule{
			C:   p[0],
			Jai: p[1],
			re:  regexp.MustCompile(`\b` + regexp.QuoteMeta(p[0]) + `\b`),
		})
	}

	return m
}

// DefaultTypeMap returns the numeric width table for raylib.h.
func DefaultTypeMap() TypeMap {
	return NewTypeMap(
		[2]string{"const char", "u8"},
		[2]string{"const ", ""},
		[2]string{"struct ", ""},
		[2]string{"unsigned short", "u16"},
		[2]string{"unsigned int", "u32"},
		[2]string{"unsigned char", "u8"},
		[2]string{"unsigned long long", "u64"},
		[2]string{"unsigned long", "u32"},
		[2]string{"unsigned", "u32"},
		[2]string{"char", "s8"},
		[2]string{"long long", "s64"},
		[2]string{"long", "s32"},
		[2]string{"double", "float64"},
		[2]string{"int", "s32"},
		[2]string{"Matrix", "Matrix4"},
	)
}

// Replace applies every rule to s in order. Tokens not covered by the table
// pass through untouched.
func (m TypeMap) Replace(s string) string {
	for _, r := range m {
		s = r.re.ReplaceAllLiteralString(s, r.Jai)
	}

	return s
}

// Rewrite maps a C type such as "const Vector3 **" to its Jai base type and
// pointer depth.
func (m TypeMap) Rewrite(ctype string) (string, int) {
	s := strings.TrimSpace(m.Replace(ctype))

	depth := 0
	for strings.HasSuffix(s, "*") {
		depth++
		s = strings.TrimSpace(strings.TrimSuffix(s, "*"))
	}

	return s, depth
}

// Render returns the Jai spelling of ctype with its pointer prefix, e.g.
// "float *" becomes "*float".
func (m TypeMap) Render(ctype string) string {
	base, depth := m.Rewrite(ctype)
	return strings.Repeat("*", depth) + base
}
