package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	got, err := Load(Flags(), []string{"--workdir", dir})
	if err != nil {
		t.Fatalf("Load() failed: %s", err)
	}

	want := Settings{
		Header:  "raylib/include/raylib.h",
		Output:  "raylib.jai",
		LibName: "raylib_native",
		LibPath: "raylib/lib/raylib",
		WorkDir: dir,
	}
	if got != want {
		t.Errorf("Load() got %+v, want %+v", got, want)
	}
}

func TestFlagsWorkdirUsage(t *testing.T) {
	f := Flags().Lookup("workdir")
	if f == nil {
		t.Fatal("Flags() has no workdir flag")
	}

	if !strings.Contains(f.Usage, "go run") || !strings.Contains(f.Usage, "--workdir=.") {
		t.Errorf("workdir usage got %q, want it to explain --workdir=. for go run", f.Usage)
	}
}

func TestLoadExecutableDir(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("no executable path: %s", err)
	}

	got, err := Load(Flags(), nil)
	if err != nil {
		t.Fatalf("Load() failed: %s", err)
	}
	if want := filepath.Dir(exe); got.WorkDir != want {
		t.Errorf("Load() workdir got %q, want %q", got.WorkDir, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := "output: file.jai\nlib-name: from_file\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(dir, "jaibind.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatalf("writing config: %s", err)
	}
	t.Setenv("JAIBIND_LIB_NAME", "from_env")

	got, err := Load(Flags(), []string{"--workdir", dir, "--header", "flag.h"})
	if err != nil {
		t.Fatalf("Load() failed: %s", err)
	}

	tests := []struct {
		key  string
		got  any
		want any
	}{
		{"header", got.Header, "flag.h"},
		{"output", got.Output, "file.jai"},
		{"lib-name", got.LibName, "from_env"},
		{"lib-path", got.LibPath, "raylib/lib/raylib"},
		{"verbose", got.Verbose, true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Load() %s got %v, want %v", tt.key, tt.got, tt.want)
		}
	}
}

func TestLoadRejectsEmptyPaths(t *testing.T) {
	if _, err := Load(Flags(), []string{"--workdir", t.TempDir(), "--header="}); err == nil {
		t.Error("Load() with an empty header path got nil error")
	}
}

func TestLoadBadFlag(t *testing.T) {
	fs := Flags()
	fs.SetOutput(discard{})

	if _, err := Load(fs, []string{"--no-such-flag"}); err == nil {
		t.Error("Load() with an unknown flag got nil error")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
