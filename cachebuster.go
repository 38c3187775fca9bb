package asseturl

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// BustKind discriminates the variants of Bust.
type BustKind int

// Bust variants.
const (
	BustNone     BustKind = iota // no token
	BustQuery                    // query token appended to the path
	BustOverride                 // path replacement and/or query token
)

// Bust is the result of a cache buster: nothing, a query token, or a
// structured override that may rewrite the path itself (for example to
// embed a content hash in the filename).
//
// Empty strings mean "absent" for both the token and the override fields.
type Bust struct {
	kind  BustKind
	path  string
	query string
}

// NoBust returns the absent result.
func NoBust() Bust {
	return Bust{}
}

// QueryBust returns a bare query token such as "1700000000" or "v=3".
func QueryBust(token string) Bust {
	return Bust{kind: BustQuery, query: token}
}

// OverrideBust returns a structured result. A non-empty newPath replaces the
// URL path before the query, if any, is merged.
func OverrideBust(newPath, query string) Bust {
	return Bust{kind: BustOverride, path: newPath, query: query}
}

// Kind reports which variant b holds.
func (b Bust) Kind() BustKind { return b.kind }

// Path returns the override path (BustOverride only).
func (b Bust) Path() string { return b.path }

// Query returns the query token.
func (b Bust) Query() string { return b.query }

// String renders b for logs and test failures.
func (b Bust) String() string {
	switch b.kind {
	case BustQuery:
		return fmt.Sprintf("query(%q)", b.query)
	case BustOverride:
		return fmt.Sprintf("override(path=%q, query=%q)", b.path, b.query)
	}
	return "none"
}

// MergeCacheBuster applies b to urlPath. The query is joined with "&" when
// the path already carries a query string, "?" otherwise.
//
//	MergeCacheBuster("a.png", QueryBust("v1"))               == "a.png?v1"
//	MergeCacheBuster("a.png?x=1", QueryBust("v1"))           == "a.png?x=1&v1"
//	MergeCacheBuster("a.png", OverrideBust("b.png", "v1"))   == "b.png?v1"
func MergeCacheBuster(urlPath string, b Bust) string {
	var query string
	switch b.kind {
	case BustNone:
		return urlPath
	case BustQuery:
		query = b.query
	case BustOverride:
		if b.path != "" {
			urlPath = b.path
		}
		query = b.query
	}

	if query == "" {
		return urlPath
	}
	sep := "?"
	if strings.Contains(urlPath, "?") {
		sep = "&"
	}
	return urlPath + sep + query
}

// CacheBusterGenerator produces cache busters for assets.
//
// Arity reports how many arguments Generate consumes. With an arity of 2 or
// more the asset file is opened and handed to Generate; the handle is nil when
// the file does not exist. The caller closes the handle.
type CacheBusterGenerator interface {
	Arity() int
	Generate(urlPath string, file *os.File) (Bust, error)
}

// CacheBusterFunc adapts a path-only function to CacheBusterGenerator.
type CacheBusterFunc func(urlPath string) (Bust, error)

// Arity implements CacheBusterGenerator.
func (f CacheBusterFunc) Arity() int { return 1 }

// Generate implements CacheBusterGenerator.
func (f CacheBusterFunc) Generate(urlPath string, _ *os.File) (Bust, error) {
	return f(urlPath)
}

// CacheBusterFileFunc adapts a function that also inspects the open asset.
type CacheBusterFileFunc func(urlPath string, file *os.File) (Bust, error)

// Arity implements CacheBusterGenerator.
func (f CacheBusterFileFunc) Arity() int { return 2 }

// Generate implements CacheBusterGenerator.
func (f CacheBusterFileFunc) Generate(urlPath string, file *os.File) (Bust, error) {
	return f(urlPath, file)
}

// NoCacheBuster returns a generator that never busts.
func NoCacheBuster() CacheBusterGenerator {
	return CacheBusterFunc(func(string) (Bust, error) {
		return NoBust(), nil
	})
}

// CacheBuster computes cache busters with an optional custom generator,
// falling back to the asset's modification time.
type CacheBuster struct {
	generator CacheBusterGenerator
	warnings  io.Writer
}

// NewCacheBuster creates a CacheBuster. A nil generator selects the mtime
// default; a nil warnings writer selects os.Stderr.
func NewCacheBuster(generator CacheBusterGenerator, warnings io.Writer) *CacheBuster {
	if warnings == nil {
		warnings = os.Stderr
	}
	return &CacheBuster{generator: generator, warnings: warnings}
}

// Compute returns the cache buster for urlPath. realPath is the asset's
// filesystem location, empty when unknown.
//
// Errors come only from a custom generator or from opening the asset for it;
// a missing asset is not an error.
func (c *CacheBuster) Compute(urlPath, realPath string) (Bust, error) {
	if c.generator != nil {
		return c.generate(urlPath, realPath)
	}
	if realPath != "" {
		return c.mtime(urlPath, realPath), nil
	}
	return NoBust(), nil
}

// Apply computes the cache buster for urlPath and merges it in.
func (c *CacheBuster) Apply(urlPath, realPath string) (string, error) {
	b, err := c.Compute(urlPath, realPath)
	if err != nil {
		return "", err
	}
	return MergeCacheBuster(urlPath, b), nil
}

func (c *CacheBuster) generate(urlPath, realPath string) (Bust, error) {
	var file *os.File
	if c.generator.Arity() > 1 && realPath != "" {
		f, err := os.Open(realPath) // #nosec G304 -- asset path comes from project configuration
		switch {
		case err == nil:
			file = f
			defer func() { _ = f.Close() }()
		case errors.Is(err, fs.ErrNotExist):
			// generator receives a nil handle
		default:
			return NoBust(), fmt.Errorf("%w: %w", ErrOpenAsset, err)
		}
	}
	return c.generator.Generate(urlPath, file)
}

// mtime is the default cache buster: the asset's modification time in Unix
// seconds. Missing and unreadable files produce one warning and no token.
func (c *CacheBuster) mtime(urlPath, realPath string) Bust {
	info, err := statReadable(realPath)
	if err != nil {
		fmt.Fprintf(c.warnings, "WARNING: '%s' was not found (or cannot be read) in %s\n",
			path.Base(urlPath), filepath.Dir(realPath))
		return NoBust()
	}
	return QueryBust(strconv.FormatInt(info.ModTime().Unix(), 10))
}

// statReadable stats p only if it can be opened for reading.
func statReadable(p string) (fs.FileInfo, error) {
	f, err := os.Open(p) // #nosec G304 -- asset path comes from project configuration
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return f.Stat()
}
