// Package starcfg loads project configuration written in Starlark.
//
// A config file assigns globals and may define a cache buster:
//
//	http_path = "/blog/"
//	css_dir = "css"
//	relative_assets = True
//
//	def asset_cache_buster(path, file = None):
//	    if file == None:
//	        return None
//	    return struct(query = "v=%d" % file.mtime)
//
// Execution is sandboxed: no filesystem or network access, with a timeout.
package starcfg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	asseturl "github.com/alnah/go-asseturl"
)

// DefaultTimeout bounds execution of the config file and of each
// asset_cache_buster call.
const DefaultTimeout = 5 * time.Second

// CacheBusterName is the global holding the optional cache buster function.
const CacheBusterName = "asset_cache_buster"

// ErrWrongType is returned when a global has an unexpected type.
var ErrWrongType = errors.New("config value has wrong type")

// stringSetting binds a global to a string field. Paths marked fs are
// resolved against the project path when relative.
type stringSetting struct {
	name string
	dst  func(*asseturl.Config) *string
	fs   bool
}

var stringSettings = []stringSetting{
	{"http_path", func(c *asseturl.Config) *string { return &c.HTTPPath }, false},
	{"css_dir", func(c *asseturl.Config) *string { return &c.CSSDir }, false},
	{"css_path", func(c *asseturl.Config) *string { return &c.CSSPath }, true},
	{"http_stylesheets_path", func(c *asseturl.Config) *string { return &c.HTTPStylesheetsPath }, false},
	{"images_dir", func(c *asseturl.Config) *string { return &c.ImagesDir }, false},
	{"images_path", func(c *asseturl.Config) *string { return &c.ImagesPath }, true},
	{"http_images_path", func(c *asseturl.Config) *string { return &c.HTTPImagesPath }, false},
	{"generated_images_dir", func(c *asseturl.Config) *string { return &c.GeneratedImagesDir }, false},
	{"generated_images_path", func(c *asseturl.Config) *string { return &c.GeneratedImagesPath }, true},
	{"http_generated_images_path", func(c *asseturl.Config) *string { return &c.HTTPGeneratedImagesPath }, false},
	{"fonts_dir", func(c *asseturl.Config) *string { return &c.FontsDir }, false},
	{"fonts_path", func(c *asseturl.Config) *string { return &c.FontsPath }, true},
	{"http_fonts_path", func(c *asseturl.Config) *string { return &c.HTTPFontsPath }, false},
}

// Load executes the Starlark file at path and returns the engine
// configuration it describes. A timeout of zero means DefaultTimeout.
func Load(path string, timeout time.Duration) (asseturl.Config, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return asseturl.Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	thread := &starlark.Thread{Name: path}
	stop := cancelAfter(thread, timeout)
	defer stop()

	globals, err := starlark.ExecFile(thread, path, data, predeclared())
	if err != nil {
		return asseturl.Config{}, fmt.Errorf("executing config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return asseturl.Config{}, fmt.Errorf("resolving config path: %w", err)
	}

	cfg, err := globalsToConfig(globals, filepath.Dir(abs), timeout)
	if err != nil {
		return asseturl.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// cancelAfter cancels thread once timeout elapses. The returned func
// releases the watcher.
func cancelAfter(thread *starlark.Thread, timeout time.Duration) func() {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel("execution timeout")
		case <-done:
		}
	}()
	return func() {
		close(done)
		cancel()
	}
}

// predeclared returns the sandboxed environment for config files.
func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"getenv": starlark.NewBuiltin("getenv", builtinGetenv),
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
	}
}

// builtinGetenv implements getenv(name, default="") -> string.
func builtinGetenv(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var defaultVal starlark.String
	if err := starlark.UnpackArgs("getenv", args, kwargs, "name", &name, "default?", &defaultVal); err != nil {
		return nil, err
	}

	val := os.Getenv(name)
	if val == "" {
		return defaultVal, nil
	}
	return starlark.String(val), nil
}

// globalsToConfig converts the globals of an executed config file.
func globalsToConfig(globals starlark.StringDict, configDir string, timeout time.Duration) (asseturl.Config, error) {
	var cfg asseturl.Config

	project := configDir
	if v, ok := globals["project_path"]; ok {
		s, ok := starlark.AsString(v)
		if !ok {
			return cfg, fmt.Errorf("%w: project_path must be a string, got %s", ErrWrongType, v.Type())
		}
		project = resolve(configDir, s)
	}
	cfg.ProjectPath = project

	if v, ok := globals["relative_assets"]; ok {
		b, ok := v.(starlark.Bool)
		if !ok {
			return cfg, fmt.Errorf("%w: relative_assets must be a bool, got %s", ErrWrongType, v.Type())
		}
		cfg.RelativeAssets = bool(b)
	}

	for _, s := range stringSettings {
		v, ok := globals[s.name]
		if !ok || v == starlark.None {
			continue
		}
		str, ok := starlark.AsString(v)
		if !ok {
			return cfg, fmt.Errorf("%w: %s must be a string, got %s", ErrWrongType, s.name, v.Type())
		}
		if s.fs && str != "" {
			str = resolve(project, str)
		}
		*s.dst(&cfg) = str
	}

	if v, ok := globals[CacheBusterName]; ok && v != starlark.None {
		gen, err := NewCacheBuster(v, timeout)
		if err != nil {
			return cfg, err
		}
		cfg.AssetCacheBuster = gen
	}

	return cfg, nil
}

// resolve anchors p at base unless p is absolute.
func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
