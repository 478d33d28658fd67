package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseFile(t *testing.T) {
	header, err := ParseFile("../testdata/raylib.h")
	if err != nil {
		t.Fatalf("ParseFile() failed: %s", err)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"colors", len(header.Colors), 3},
		{"enums", len(header.Enums), 4},
		{"opaques", len(header.Opaques), 1},
		{"typedefs", len(header.TypeDefs), 3},
		{"structs", len(header.Structs), 13},
		{"functions", len(header.Functions), 13},
		{"unmatched", len(header.Unmatched), 1},
	}
	for _, tt := range counts {
		if tt.got != tt.want {
			t.Errorf("ParseFile() %s got %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	if len(header.Unmatched) == 0 {
		return
	}
	if u := header.Unmatched[0]; !strings.HasPrefix(u.Text, "typedef void (*TraceLogCallback)") {
		t.Errorf("ParseFile() unmatched got %q, want the TraceLogCallback typedef", u.Text)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile("../testdata/does-not-exist.h"); err == nil {
		t.Error("ParseFile() on a missing file got nil error")
	}
}

func TestParseColors(t *testing.T) {
	header, _ := Parse(`#define RED        CLITERAL(Color){ 230, 41, 55, 255 }     // Red`)

	want := []Color{{Name: "RED", Values: []string{"230", "41", "55", "255"}}}
	if !reflect.DeepEqual(header.Colors, want) {
		t.Errorf("Parse() colors got %+v, want %+v", header.Colors, want)
	}
}

func TestEnumValues(t *testing.T) {
	tests := []struct {
		in   string
		want []EnumValue
	}{
		{
			"typedef enum { FLAG_A = 1, FLAG_B = 2 } ConfigFlags;",
			[]EnumValue{{"FLAG_A", "1"}, {"FLAG_B", "2"}},
		},
		{
			"typedef enum {\n    LOG_ALL = 0,    // Display all logs\n    LOG_TRACE,\n    LOG_NONE        // Disable, logging\n} TraceLogLevel;",
			[]EnumValue{{"LOG_ALL", "0"}, {"LOG_TRACE", ""}, {"LOG_NONE", ""}},
		},
		{
			"typedef enum {\n    KEY_NULL = 0,   // Key: NULL, used for no key pressed\n    // Alphanumeric keys\n    KEY_COMMA = 44, // Key: ,\n} KeyboardKey;",
			[]EnumValue{{"KEY_NULL", "0"}, {"KEY_COMMA", "44"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			header, _ := Parse(tt.in)
			if len(header.Enums) != 1 {
				t.Fatalf("Parse() got %d enums, want 1", len(header.Enums))
			}

			got := header.Enums[0].Values()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Values() got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseTypeDefs(t *testing.T) {
	header, _ := Parse("typedef struct rAudioBuffer rAudioBuffer;\ntypedef Texture Texture2D;\ntypedef Camera3D Camera;    // fallback\n")

	wantOpaques := []Opaque{{Tag: "rAudioBuffer", Name: "rAudioBuffer"}}
	if !reflect.DeepEqual(header.Opaques, wantOpaques) {
		t.Errorf("Parse() opaques got %+v, want %+v", header.Opaques, wantOpaques)
	}

	wantTypeDefs := []TypeDef{
		{Name: "Texture2D", SourceType: "Texture"},
		{Name: "Camera", SourceType: "Camera3D"},
	}
	if !reflect.DeepEqual(header.TypeDefs, wantTypeDefs) {
		t.Errorf("Parse() typedefs got %+v, want %+v", header.TypeDefs, wantTypeDefs)
	}
}

func TestParseStructFields(t *testing.T) {
	tests := []struct {
		in   string
		want StructField
	}{
		{"    Vector2 position;", StructField{Names: []string{"position"}, Type: "Vector2"}},
		{"    float *vertices;        // Vertex position; XYZ", StructField{Names: []string{"vertices"}, Type: "float *"}},
		{"    Vector3 **frames;", StructField{Names: []string{"frames"}, Type: "Vector3 **"}},
		{"    unsigned char r, g, b, a;   // Color components", StructField{Names: []string{"r", "g", "b", "a"}, Type: "unsigned char"}},
		{"    float params[4];", StructField{Names: []string{"params"}, Type: "float", ArraySize: "4"}},
		{"    char name[32];", StructField{Names: []string{"name"}, Type: "char", ArraySize: "32"}},
		{"    const char *fileName;", StructField{Names: []string{"fileName"}, Type: "const char *"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseStructFields(tt.in)
			if len(got) != 1 {
				t.Fatalf("parseStructFields(%q) got %d fields, want 1", tt.in, len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("parseStructFields(%q) got %+v, want %+v", tt.in, got[0], tt.want)
			}
		})
	}
}

func TestParseStructSkipsComments(t *testing.T) {
	body := "float x;\n    // padding; not a field\n\n    float y;"

	got := parseStructFields(body)
	if len(got) != 2 {
		t.Fatalf("parseStructFields() got %d fields, want 2: %+v", len(got), got)
	}
	if got[0].Names[0] != "x" || got[1].Names[0] != "y" {
		t.Errorf("parseStructFields() got %+v, want x then y", got)
	}
}

func TestParseStructFieldsSameLine(t *testing.T) {
	got := parseStructFields("float x; float y;\n    int *a; char name[8];")

	want := []StructField{
		{Names: []string{"x"}, Type: "float"},
		{Names: []string{"y"}, Type: "float"},
		{Names: []string{"a"}, Type: "int *"},
		{Names: []string{"name"}, Type: "char", ArraySize: "8"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseStructFields() got %+v, want %+v", got, want)
	}
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		in       string
		want     []FunctionParam
		variadic bool
	}{
		{
			"int width, int height, const char *title",
			[]FunctionParam{{"width", "int"}, {"height", "int"}, {"title", "const char *"}},
			false,
		},
		{
			"int logLevel, const char *text, ...",
			[]FunctionParam{{"logLevel", "int"}, {"text", "const char *"}},
			true,
		},
		{
			"const char *dirPath, char **files",
			[]FunctionParam{{"dirPath", "const char *"}, {"files", "char **"}},
			false,
		},
		{
			"char* text, char * other",
			[]FunctionParam{{"text", "char*"}, {"other", "char *"}},
			false,
		},
		{
			"int, float",
			[]FunctionParam{{"arg1", "int"}, {"arg2", "float"}},
			false,
		},
		{
			"const char *",
			[]FunctionParam{{"arg1", "const char *"}},
			false,
		},
		{
			"char *s, int *, float",
			[]FunctionParam{{"s", "char *"}, {"arg2", "int *"}, {"arg3", "float"}},
			false,
		},
		{
			"Vector2 *, unsigned int, const char*",
			[]FunctionParam{{"arg1", "Vector2 *"}, {"arg2", "unsigned int"}, {"arg3", "const char*"}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, variadic := parseParams(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseParams(%q) got %+v, want %+v", tt.in, got, tt.want)
			}
			if variadic != tt.variadic {
				t.Errorf("parseParams(%q) variadic got %v, want %v", tt.in, variadic, tt.variadic)
			}
		})
	}
}

func TestParseFunctions(t *testing.T) {
	src := `RLAPI void CloseWindow(void);                  // Close window
RLAPI const char *GetMonitorName(int monitor);
RLAPI void UpdateMeshBuffer(Mesh mesh, int index,
                            int offset);
int NotExported(int a);
`
	header, _ := Parse(src)

	want := []Function{
		{Name: "CloseWindow", ReturnType: "void"},
		{Name: "GetMonitorName", ReturnType: "const char *", Params: []FunctionParam{{"monitor", "int"}}},
		{Name: "UpdateMeshBuffer", ReturnType: "void", Params: []FunctionParam{{"mesh", "Mesh"}, {"index", "int"}, {"offset", "int"}}},
	}
	if !reflect.DeepEqual(header.Functions, want) {
		t.Errorf("Parse() functions got %+v, want %+v", header.Functions, want)
	}
}

func TestParseCRLF(t *testing.T) {
	header, _ := Parse("typedef struct Rectangle {\r\n    float x;\r\n    float y;\r\n} Rectangle;\r\n")

	if len(header.Structs) != 1 || len(header.Structs[0].Fields) != 2 {
		t.Fatalf("Parse() got %+v, want one struct with two fields", header.Structs)
	}
	if got := header.Structs[0].Fields[1].Type; got != "float" {
		t.Errorf("Parse() field type got %q, want %q", got, "float")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("A = 1, // one\n    B")
	want := []Line{{Code: "A = 1, ", Comment: "// one"}, {Code: "    B"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines() got %+v, want %+v", got, want)
	}
}
