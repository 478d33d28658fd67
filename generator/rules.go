package generator

// ScopeGuard describes a Begin/End pair wrapped into a Push macro that
// runs the End call when the enclosing scope exits.
type ScopeGuard struct {
	Mode   string
	Params []Param
}

// Constructor describes a make_<Type> helper that casts each argument to
// the field type.
type Constructor struct {
	Type   string
	Fields []Param
}

type Param struct {
	Name string
	Type string
}

// SystemLibraries lists the system libraries linked on one OS.
type SystemLibraries struct {
	OS   string
	Libs []string
}

// Rules is the fixed configuration of a binding run: the type table, the
// override tables and the exclusion sets. It is read only once built.
type Rules struct {
	Types TypeMap

	// SkipEnums are enums never emitted, like the C compat bool.
	SkipEnums map[string]bool

	// FlagEnums are emitted as enum_flags.
	FlagEnums map[string]bool

	// Excluded structs come from the Math module.
	Excluded map[string]bool

	// FunctionOverrides replace the inferred "(params) -> ret" text.
	FunctionOverrides map[string]string

	// FieldOverrides replace the type of a field, keyed by struct then field.
	FieldOverrides map[string]map[string]string

	// Overlays are appended to a struct body verbatim.
	Overlays map[string]string

	ScopeGuards  []ScopeGuard
	Constructors []Constructor
	SystemLibs   []SystemLibraries
}

// DefaultRules returns the rules for raylib.h.
func DefaultRules() Rules {
	return Rules{
		Types: DefaultTypeMap(),

		SkipEnums: map[string]bool{
			"bool": true,
		},

		FlagEnums: map[string]bool{
			"ConfigFlags": true,
		},

		Excluded: map[string]bool{
			"Vector2":    true,
			"Vector3":    true,
			"Vector4":    true,
			"Matrix":     true,
			"Quaternion": true,
		},

		FunctionOverrides: map[string]string{
			"IsKeyPressed":  "(key: KeyboardKey) -> bool",
			"IsKeyDown":     "(key: KeyboardKey) -> bool",
			"IsKeyReleased": "(key: KeyboardKey) -> bool",
			"IsKeyUp":       "(key: KeyboardKey) -> bool",
			"SetExitKey":    "(key: KeyboardKey)",

			"IsMouseButtonPressed":  "(button: MouseButton) -> bool",
			"IsMouseButtonDown":     "(button: MouseButton) -> bool",
			"IsMouseButtonReleased": "(button: MouseButton) -> bool",
			"IsMouseButtonUp":       "(button: MouseButton) -> bool",

			"SetCameraMode": "(camera: Camera, mode: CameraMode)",

			"SetConfigFlags": "(flags: ConfigFlags)",

			"SetTraceLogLevel": "(logType: TraceLogLevel)",
			"SetTraceLogExit":  "(logType: TraceLogLevel)",

			"SetShaderValue":  "(shader: Shader, uniformLoc: s32, value: *void, uniformType: ShaderUniformDataType)",
			"SetShaderValueV": "(shader: Shader, uniformLoc: s32, value: *void, uniformType: ShaderUniformDataType, count: s32)",

			"IsGamepadButtonPressed":  "(gamepad: s32, button: GamepadButton) -> bool",
			"IsGamepadButtonDown":     "(gamepad: s32, button: GamepadButton) -> bool",
			"IsGamepadButtonReleased": "(gamepad: s32, button: GamepadButton) -> bool",
			"IsGamepadButtonUp":       "(gamepad: s32, button: GamepadButton) -> bool",

			"GetGamepadAxisMovement": "(gamepad: s32, axis: GamepadAxis) -> float",
		},

		FieldOverrides: map[string]map[string]string{
			"Camera3D": {
				"projection": "CameraProjection",
			},
		},

		Overlays: map[string]string{
			"Rectangle": "    #place x;     position: Vector2;\n" +
				"    #place width; size: Vector2;\n",
		},

		ScopeGuards: []ScopeGuard{
			{Mode: "Drawing"},
			{Mode: "Mode2D", Params: []Param{{"camera", "Camera2D"}}},
			{Mode: "Mode3D", Params: []Param{{"camera", "Camera3D"}}},
			{Mode: "TextureMode", Params: []Param{{"target", "RenderTexture2D"}}},
			{Mode: "ScissorMode", Params: []Param{{"x", "s32"}, {"y", "s32"}, {"width", "s32"}, {"height", "s32"}}},
			{Mode: "ShaderMode", Params: []Param{{"shader", "Shader"}}},
			{Mode: "BlendMode", Params: []Param{{"mode", "s32"}}},
		},

		Constructors: []Constructor{
			{Type: "Rectangle", Fields: []Param{{"x", "float"}, {"y", "float"}, {"width", "float"}, {"height", "float"}}},
			{Type: "Color", Fields: []Param{{"r", "u8"}, {"g", "u8"}, {"b", "u8"}, {"a", "u8"}}},
			{Type: "Vector3", Fields: []Param{{"x", "float"}, {"y", "float"}, {"z", "float"}}},
			{Type: "Vector2", Fields: []Param{{"x", "float"}, {"y", "float"}}},
		},

		SystemLibs: []SystemLibraries{
			{OS: "WINDOWS", Libs: []string{"user32", "gdi32", "shell32", "winmm"}},
		},
	}
}
