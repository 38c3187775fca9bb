package asseturl

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/alnah/go-asseturl/internal/urlpath"
)

// URLResolver computes the URL of a font or image reference.
//
// cssFile is the public path of the emitting stylesheet (for example
// "/stylesheets/sub/page.css") when stylesheet-relative URLs are wanted, and
// empty otherwise. cacheBuster reports whether the caller asked for a cache
// buster. The returned URL is used verbatim.
type URLResolver interface {
	ComputeURL(t AssetType, assetPath, cssFile string, cacheBuster bool) (string, error)
}

// URLResolverFunc adapts a function to URLResolver.
type URLResolverFunc func(t AssetType, assetPath, cssFile string, cacheBuster bool) (string, error)

// ComputeURL implements URLResolver.
func (f URLResolverFunc) ComputeURL(t AssetType, assetPath, cssFile string, cacheBuster bool) (string, error) {
	return f(t, assetPath, cssFile, cacheBuster)
}

// DefaultResolver maps asset references onto the configured asset
// directories:
//
//   - absolute paths, http:// and https:// URLs and data: URIs pass through
//     unchanged
//   - other paths are prefixed with the type's public directory
//   - with a cssFile the URL is made relative to the stylesheet's directory
//   - with cacheBuster the CacheBuster result is merged in
//   - a trailing #fragment survives all of the above
type DefaultResolver struct {
	cfg    Config
	buster *CacheBuster
}

// NewDefaultResolver creates a DefaultResolver. A nil buster uses the
// config's AssetCacheBuster with warnings on os.Stderr.
func NewDefaultResolver(cfg Config, buster *CacheBuster) *DefaultResolver {
	if buster == nil {
		buster = NewCacheBuster(cfg.AssetCacheBuster, nil)
	}
	return &DefaultResolver{cfg: cfg.withDefaults(), buster: buster}
}

// ComputeURL implements URLResolver.
func (r *DefaultResolver) ComputeURL(t AssetType, assetPath, cssFile string, cacheBuster bool) (string, error) {
	if urlpath.IsExternal(assetPath) {
		return assetPath, nil
	}

	fsDir, httpDir, err := r.cfg.location(t)
	if err != nil {
		return "", err
	}

	assetPath, fragment := urlpath.SplitFragment(assetPath)
	url := urlpath.Join(httpDir, assetPath)

	if cssFile != "" && strings.HasPrefix(url, "/") {
		url = urlpath.Rel(path.Dir(cssFile), url)
	}

	if cacheBuster {
		realPath := ""
		if fsDir != "" {
			realPath = filepath.Join(fsDir, filepath.FromSlash(urlpath.StripQuery(assetPath)))
		}
		url, err = r.buster.Apply(url, realPath)
		if err != nil {
			return "", err
		}
	}

	return url + fragment, nil
}

// Compile-time interface check.
var _ URLResolver = (*DefaultResolver)(nil)
