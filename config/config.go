// Package config loads the runtime settings of the converter from flags,
// JAIBIND_* environment variables and an optional jaibind config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the values that may vary between runs. With nothing set
// they describe the fixed raylib.h to raylib.jai transformation.
type Settings struct {
	Header  string
	Output  string
	LibName string
	LibPath string
	WorkDir string
	Verbose bool
}

// Flags returns the flag set understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("jai-converter", pflag.ContinueOnError)
	fs.String("header", "raylib/include/raylib.h", "path to the C header")
	fs.String("output", "raylib.jai", "path of the generated Jai bindings")
	fs.String("lib-name", "raylib_native", "name of the native library identifier")
	fs.String("lib-path", "raylib/lib/raylib", "path of the native library, without extension")
	fs.String("workdir", "", "directory relative paths resolve against (default: the executable's directory; "+
		"under go run that is a build cache directory, so pass --workdir=.)")
	fs.Bool("verbose", false, "log every skipped declaration")

	return fs
}

// Load parses args into fs and resolves the settings. Flags win over the
// environment, which wins over the config file.
func Load(fs *pflag.FlagSet, args []string) (Settings, error) {
	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("parsing flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("jaibind")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Settings{}, fmt.Errorf("binding flags: %w", err)
	}

	workDir := v.GetString("workdir")
	if workDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return Settings{}, fmt.Errorf("locating executable: %w", err)
		}
		workDir = filepath.Dir(exe)
	}

	v.SetConfigName("jaibind")
	v.AddConfigPath(workDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	s := Settings{
		Header:  v.GetString("header"),
		Output:  v.GetString("output"),
		LibName: v.GetString("lib-name"),
		LibPath: v.GetString("lib-path"),
		WorkDir: workDir,
		Verbose: v.GetBool("verbose"),
	}

	if s.Header == "" || s.Output == "" {
		return Settings{}, errors.New("header and output paths must not be empty")
	}

	return s, nil
}
