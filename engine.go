package asseturl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/alnah/go-asseturl/internal/urlpath"
)

// Engine resolves asset references to URLs. It is safe for concurrent use:
// the configuration is copied by New and never mutated.
type Engine struct {
	cfg      Config
	resolver URLResolver
	warnings io.Writer
	logger   logr.Logger
}

// New creates an Engine for cfg.
// Returns ErrInvalidConfig if cfg has relative filesystem paths.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg.withDefaults(),
		resolver: cfg.URLResolver,
		warnings: os.Stderr,
		logger:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.resolver == nil {
		e.resolver = NewDefaultResolver(e.cfg, NewCacheBuster(e.cfg.AssetCacheBuster, e.warnings))
	}
	return e, nil
}

// Config returns the effective configuration, defaults included.
func (e *Engine) Config() Config {
	return e.cfg
}

// StylesheetURL returns the URL of another stylesheet. It never consults
// the URL resolver or the cache buster.
//
// The prefix is, in order of preference: the path from the emitting
// stylesheet to the CSS directory (relative assets only), the explicit
// HTTPStylesheetsPath, or the CSS directory under the HTTP root.
func (e *Engine) StylesheetURL(sc StyleContext, assetPath string, onlyPath bool) string {
	prefix, ok := "", false
	if e.cfg.RelativeAssets {
		prefix, ok = RelativePath(e.cfg.CSSPath, sc.CSSFilename)
	}
	if !ok {
		prefix = e.cfg.stylesheetsHTTPPath()
	}

	p := urlpath.StripLeadingDotSlash(urlpath.Join(prefix, assetPath))
	e.logger.V(1).Info("resolved stylesheet url", "path", assetPath, "url", p, "relative", ok)
	if onlyPath {
		return p
	}
	return wrapURL(p)
}

// FontURL resolves a font reference.
func (e *Engine) FontURL(sc StyleContext, assetPath string, onlyPath, cacheBuster bool) (string, error) {
	return e.resolveAssetURL(sc, AssetFont, assetPath, onlyPath, cacheBuster)
}

// ImageURL resolves an image reference.
func (e *Engine) ImageURL(sc StyleContext, assetPath string, onlyPath, cacheBuster bool) (string, error) {
	return e.resolveAssetURL(sc, AssetImage, assetPath, onlyPath, cacheBuster)
}

// GeneratedImageURL resolves a generated image (sprites, gradients...).
// The result is always wrapped in url(...).
func (e *Engine) GeneratedImageURL(sc StyleContext, assetPath string, cacheBuster bool) (string, error) {
	return e.resolveAssetURL(sc, AssetGeneratedImage, assetPath, false, cacheBuster)
}

// Resolve dispatches req to the entry point matching its type.
func (e *Engine) Resolve(sc StyleContext, req Request) (string, error) {
	switch req.Type {
	case AssetStylesheet:
		return e.StylesheetURL(sc, req.Path, req.OnlyPath), nil
	case AssetFont:
		return e.FontURL(sc, req.Path, req.OnlyPath, req.CacheBuster)
	case AssetImage:
		return e.ImageURL(sc, req.Path, req.OnlyPath, req.CacheBuster)
	case AssetGeneratedImage:
		return e.GeneratedImageURL(sc, req.Path, req.CacheBuster)
	}
	return "", unknownType(req.Type)
}

func (e *Engine) resolveAssetURL(sc StyleContext, t AssetType, assetPath string, onlyPath, cacheBuster bool) (string, error) {
	cssFile := e.cssFileContext(sc)

	url, err := e.resolver.ComputeURL(t, assetPath, cssFile, cacheBuster)
	if err != nil {
		return "", err
	}

	e.logger.V(1).Info("resolved asset url",
		"type", t.String(), "path", assetPath, "cssFile", cssFile, "cacheBuster", cacheBuster, "url", url)
	if onlyPath {
		return url, nil
	}
	return wrapURL(url), nil
}

// cssFileContext returns the public path of the emitting stylesheet when
// relative assets are enabled and the stylesheet lives under CSSPath.
func (e *Engine) cssFileContext(sc StyleContext) string {
	if !e.cfg.RelativeAssets || sc.CSSFilename == "" || e.cfg.CSSPath == "" {
		return ""
	}
	root := e.cfg.CSSPath + string(filepath.Separator)
	if !strings.HasPrefix(sc.CSSFilename, root) {
		return ""
	}
	rest := filepath.ToSlash(sc.CSSFilename[len(root):])
	return urlpath.Join(e.cfg.stylesheetsHTTPPath(), rest)
}

// wrapURL emits a CSS url() expression without further escaping.
func wrapURL(p string) string {
	return "url('" + p + "')"
}

func unknownType(t AssetType) error {
	return fmt.Errorf("%w: %v", ErrUnknownAssetType, t)
}
