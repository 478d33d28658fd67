package generator

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

var epilogueTmpl = template.Must(template.New("epilogue").Parse(`
{{define "math"}}
float16 :: struct { v: [16]float; }

MatrixToFloatV  :: (mat: Matrix4) -> float16 #foreign {{.LibName}};
MatrixToFloat   :: (mat: Matrix4) -> *float { return MatrixToFloatV(mat).v.data; };
MatrixTranslate :: (x: float, y: float, z: float) -> Matrix4 #foreign {{.LibName}};
MatrixRotate    :: (axis: Vector3, angle_radians: float) -> Matrix4 #foreign {{.LibName}};
MatrixScale     :: (x: float, y: float, z: float) -> Matrix4 #foreign {{.LibName}};
MatrixMultiply  :: (a: Matrix4, b: Matrix4) -> Matrix4 #foreign {{.LibName}};

DrawText :: inline ($$text: string, posX: s32, posY: s32, fontSize: s32, color: Color) {
    DrawText(constant_or_temp_cstring(text), posX, posY, fontSize, color);
}

{{end}}
{{define "scopefile"}}
#scope_file
Basic :: #import "Basic";

_to_temp_c_string :: (s: string) -> *u8 {
    result : *u8 = Basic.talloc(s.count + 1);
    memcpy(result, s.data, s.count);
    result[s.count] = 0;
    return result;
}

constant_or_temp_cstring :: inline ($$text: string) -> *u8 {
    c_str: *u8;
    #if is_constant(text)
        c_str = text.data;
    else
        c_str = _to_temp_c_string(text);
    return c_str;
}

TraceLogCallback :: #type (logLevel: TraceLogLevel, text: *u8, args: .. Any);
LoadFileDataCallback :: #type (fileName: *u8, bytesRead: *u32) -> *u8;
SaveFileDataCallback :: #type (fileName: *u8, data: *void, bytesToWrite: u32) -> bool;
LoadFileTextCallback :: #type (fileName: *u8) -> *u8;
SaveFileTextCallback :: #type (fileName: *u8, text: *u8) -> bool;

{{end}}
{{define "linkage"}}
#scope_file // ---------------

{{range .SystemLibs}}#if OS == .{{.OS}} {
{{range .Libs}}    #foreign_system_library "{{.}}";
{{end}}}
{{end}}{{.LibName}} :: #foreign_library,no_dll "{{.LibPath}}";
#import "Math";
{{end}}
`))

type epilogueData struct {
	LibName    string
	LibPath    string
	SystemLibs []SystemLibraries
}

// generateEpilogue writes the hand written helpers that follow the parsed
// declarations, and the native library linkage.
func (g *Generator) generateEpilogue(buf *bytes.Buffer) error {
	data := epilogueData{
		LibName:    g.libName,
		LibPath:    g.libPath,
		SystemLibs: g.rules.SystemLibs,
	}

	if err := epilogueTmpl.ExecuteTemplate(buf, "math", data); err != nil {
		return err
	}

	for _, c := range g.rules.Constructors {
		writeConstructor(buf, c)
	}

	fmt.Fprintf(buf, "// Macros for Begin/End pairs where the EndXXX Function is called automatically\n")
	fmt.Fprintf(buf, "// at the end of the scope.\n\n")
	for _, sg := range g.rules.ScopeGuards {
		writeScopeGuard(buf, sg)
	}

	if err := epilogueTmpl.ExecuteTemplate(buf, "scopefile", data); err != nil {
		return err
	}

	return epilogueTmpl.ExecuteTemplate(buf, "linkage", data)
}

// writeConstructor writes make_<Type>, which accepts any numeric argument
// types and casts them to the field types.
func writeConstructor(buf *bytes.Buffer, c Constructor) {
	params := make([]string, len(c.Fields))
	width := 0
	for i, f := range c.Fields {
		params[i] = fmt.Sprintf("%s: $%c", f.Name, 'A'+i)
		width = max(width, len(f.Name))
	}

	fmt.Fprintf(buf, "make_%s :: (%s) -> %s {\n", c.Type, strings.Join(params, ", "), c.Type)
	fmt.Fprintf(buf, "    result: %s;\n", c.Type)
	for _, f := range c.Fields {
		fmt.Fprintf(buf, "    result.%-*s = cast(%s)%s;\n", width, f.Name, f.Type, f.Name)
	}
	fmt.Fprintf(buf, "    return result;\n}\n\n")
}

// writeScopeGuard writes Push<Mode>, which calls Begin<Mode> and defers
// End<Mode> into the caller's scope.
func writeScopeGuard(buf *bytes.Buffer, sg ScopeGuard) {
	params := make([]string, len(sg.Params))
	args := make([]string, len(sg.Params))
	for i, p := range sg.Params {
		params[i] = p.Name + ": " + p.Type
		args[i] = p.Name
	}

	fmt.Fprintf(buf, "Push%s :: (%s) #expand {\n", sg.Mode, strings.Join(params, ", "))
	fmt.Fprintf(buf, "    Begin%s(%s);\n", sg.Mode, strings.Join(args, ", "))
	fmt.Fprintf(buf, "    `defer End%s();\n}\n\n", sg.Mode)
}
