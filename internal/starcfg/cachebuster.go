package starcfg

import (
	"fmt"
	"os"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	asseturl "github.com/alnah/go-asseturl"
)

// Generator adapts a Starlark callable to asseturl.CacheBusterGenerator.
// Each call runs on its own thread, so a Generator is safe for concurrent
// use once the defining module is frozen.
type Generator struct {
	fn      starlark.Callable
	arity   int
	timeout time.Duration
}

var _ asseturl.CacheBusterGenerator = (*Generator)(nil)

// NewCacheBuster wraps v, which must be callable. A Starlark function's
// arity is its named positional parameter count; other callables take the
// path only.
func NewCacheBuster(v starlark.Value, timeout time.Duration) (*Generator, error) {
	fn, ok := v.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be callable, got %s", ErrWrongType, CacheBusterName, v.Type())
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	arity := 1
	if f, ok := fn.(*starlark.Function); ok {
		arity = positionalParams(f)
	}
	return &Generator{fn: fn, arity: arity, timeout: timeout}, nil
}

// positionalParams counts the named positional parameters of f, leaving out
// keyword-only parameters, *args and **kwargs.
func positionalParams(f *starlark.Function) int {
	n := f.NumParams() - f.NumKwonlyParams()
	if f.HasVarargs() {
		n--
	}
	if f.HasKwargs() {
		n--
	}
	return n
}

// Arity reports the callable's positional parameter count.
func (g *Generator) Arity() int { return g.arity }

// Generate calls the function with the URL path and, for arity 2 and up,
// a struct describing the file (None when it does not exist).
func (g *Generator) Generate(urlPath string, file *os.File) (asseturl.Bust, error) {
	args := starlark.Tuple{starlark.String(urlPath)}
	if g.arity > 1 {
		fv, err := fileValue(file)
		if err != nil {
			return asseturl.NoBust(), err
		}
		args = append(args, fv)
	}

	thread := &starlark.Thread{Name: CacheBusterName}
	stop := cancelAfter(thread, g.timeout)
	defer stop()

	result, err := starlark.Call(thread, g.fn, args, nil)
	if err != nil {
		return asseturl.NoBust(), fmt.Errorf("%s(%q): %w", CacheBusterName, urlPath, err)
	}
	return toBust(result)
}

// fileValue describes an open asset as struct(name, size, mtime).
func fileValue(file *os.File) (starlark.Value, error) {
	if file == nil {
		return starlark.None, nil
	}
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", file.Name(), err)
	}
	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"name":  starlark.String(file.Name()),
		"size":  starlark.MakeInt64(info.Size()),
		"mtime": starlark.MakeInt64(info.ModTime().Unix()),
	}), nil
}

// toBust converts a cache buster result:
//
//	None                    -> no token
//	"v1"                    -> query token
//	{"path": p, "query": q} -> override (either key optional)
//	struct(path=p, query=q) -> override (either field optional)
func toBust(v starlark.Value) (asseturl.Bust, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return asseturl.NoBust(), nil
	case starlark.String:
		return asseturl.QueryBust(string(v)), nil
	case *starlark.Dict:
		p, err := dictString(v, "path")
		if err != nil {
			return asseturl.NoBust(), err
		}
		q, err := dictString(v, "query")
		if err != nil {
			return asseturl.NoBust(), err
		}
		return asseturl.OverrideBust(p, q), nil
	case *starlarkstruct.Struct:
		p, err := attrString(v, "path")
		if err != nil {
			return asseturl.NoBust(), err
		}
		q, err := attrString(v, "query")
		if err != nil {
			return asseturl.NoBust(), err
		}
		return asseturl.OverrideBust(p, q), nil
	}
	return asseturl.NoBust(), fmt.Errorf("%w: got %s", asseturl.ErrCacheBusterResult, v.Type())
}

func dictString(d *starlark.Dict, key string) (string, error) {
	v, found, err := d.Get(starlark.String(key))
	if err != nil || !found {
		return "", err
	}
	return optionalString(key, v)
}

func attrString(s *starlarkstruct.Struct, name string) (string, error) {
	v, err := s.Attr(name)
	if err != nil || v == nil {
		// missing field
		return "", nil
	}
	return optionalString(name, v)
}

func optionalString(key string, v starlark.Value) (string, error) {
	if v == starlark.None {
		return "", nil
	}
	s, ok := starlark.AsString(v)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %s", asseturl.ErrCacheBusterResult, key, v.Type())
	}
	return s, nil
}
