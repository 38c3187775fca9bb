// Package builtins exposes the asset URL entry points as Starlark builtins.
//
// Available functions:
//   - stylesheet_url(path, only_path=False)
//   - font_url(path, only_path=False, cache_buster=True)
//   - image_url(path, only_path=False, cache_buster=True)
//   - generated_image_url(path, cache_buster=False)
//
// The stylesheet being emitted travels with the thread; see SetCSSFilename.
package builtins

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"

	asseturl "github.com/alnah/go-asseturl"
)

// Entry point names.
const (
	StylesheetURL     = "stylesheet_url"
	FontURL           = "font_url"
	ImageURL          = "image_url"
	GeneratedImageURL = "generated_image_url"
)

// ErrUnknownFunction is returned by Register for a name it does not define.
var ErrUnknownFunction = errors.New("unknown asset function")

const cssFilenameKey = "asseturl.css_filename"

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

var constructors = map[string]func(*asseturl.Engine) builtinFunc{
	StylesheetURL:     stylesheetURL,
	FontURL:           fontURL,
	ImageURL:          imageURL,
	GeneratedImageURL: generatedImageURL,
}

// Names returns every entry point name in declaration order.
func Names() []string {
	return []string{StylesheetURL, FontURL, ImageURL, GeneratedImageURL}
}

// Register returns builtins bound to eng for the named entry points, or for
// all of them when names is empty.
func Register(eng *asseturl.Engine, names ...string) (starlark.StringDict, error) {
	if len(names) == 0 {
		names = Names()
	}
	out := make(starlark.StringDict, len(names))
	for _, name := range names {
		ctor, ok := constructors[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
		}
		out[name] = starlark.NewBuiltin(name, ctor(eng))
	}
	return out, nil
}

// SetCSSFilename records the stylesheet being emitted on thread.
func SetCSSFilename(thread *starlark.Thread, name string) {
	thread.SetLocal(cssFilenameKey, name)
}

func styleContext(thread *starlark.Thread) asseturl.StyleContext {
	name, _ := thread.Local(cssFilenameKey).(string)
	return asseturl.StyleContext{CSSFilename: name}
}

func stylesheetURL(eng *asseturl.Engine) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var p string
		onlyPath := false
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "path", &p, "only_path?", &onlyPath); err != nil {
			return nil, err
		}
		return starlark.String(eng.StylesheetURL(styleContext(thread), p, onlyPath)), nil
	}
}

func fontURL(eng *asseturl.Engine) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var p string
		onlyPath, cacheBuster := false, true
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "path", &p, "only_path?", &onlyPath, "cache_buster?", &cacheBuster); err != nil {
			return nil, err
		}
		return result(eng.FontURL(styleContext(thread), p, onlyPath, cacheBuster))
	}
}

func imageURL(eng *asseturl.Engine) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var p string
		onlyPath, cacheBuster := false, true
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "path", &p, "only_path?", &onlyPath, "cache_buster?", &cacheBuster); err != nil {
			return nil, err
		}
		return result(eng.ImageURL(styleContext(thread), p, onlyPath, cacheBuster))
	}
}

func generatedImageURL(eng *asseturl.Engine) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var p string
		cacheBuster := false
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "path", &p, "cache_buster?", &cacheBuster); err != nil {
			return nil, err
		}
		return result(eng.GeneratedImageURL(styleContext(thread), p, cacheBuster))
	}
}

func result(url string, err error) (starlark.Value, error) {
	if err != nil {
		return nil, err
	}
	return starlark.String(url), nil
}
