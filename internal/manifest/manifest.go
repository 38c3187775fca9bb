// Package manifest maps source asset names to fingerprinted names produced
// by a build step, and exposes the mapping as a cache buster.
//
// A manifest is a JSON (or YAML) object:
//
//	{
//	  "logo.png": "logo.3f2a1c.png",
//	  "icons/menu.svg": "icons/menu.9b01e4.svg"
//	}
package manifest

import (
	"fmt"
	"strings"

	asseturl "github.com/alnah/go-asseturl"
	"github.com/alnah/go-asseturl/internal/yamlutil"
)

// Manifest holds the mapping from source asset paths to fingerprinted paths.
// It is read-only once loaded and may be shared between goroutines.
type Manifest struct {
	entries map[string]string
}

// Load reads a manifest file. A missing file matches os.ErrNotExist.
func Load(path string) (*Manifest, error) {
	var entries map[string]string
	if err := yamlutil.ReadFile(path, &entries, false); err != nil {
		return nil, fmt.Errorf("loading manifest %s: %w", path, err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return &Manifest{entries: entries}, nil
}

// Rewrite replaces the longest trailing segment-aligned suffix of urlPath
// that appears in the manifest. A query string on urlPath is kept.
//
// With {"images/logo.png": "images/logo.3f2a.png"}:
//
//	m.Rewrite("../images/logo.png?x=1") == "../images/logo.3f2a.png?x=1", true
func (m *Manifest) Rewrite(urlPath string) (string, bool) {
	p, query := urlPath, ""
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p, query = p[:i], p[i:]
	}

	for i := 0; i < len(p); i++ {
		if i > 0 && p[i-1] != '/' {
			continue
		}
		if resolved, ok := m.entries[p[i:]]; ok {
			return p[:i] + resolved + query, true
		}
	}
	return urlPath, false
}

// NewCacheBuster returns a path-only cache buster that swaps asset URLs for
// their fingerprinted names. Assets missing from the manifest get no token.
func NewCacheBuster(m *Manifest) asseturl.CacheBusterGenerator {
	return asseturl.CacheBusterFunc(func(urlPath string) (asseturl.Bust, error) {
		rewritten, ok := m.Rewrite(urlPath)
		if !ok {
			return asseturl.NoBust(), nil
		}
		return asseturl.OverrideBust(rewritten, ""), nil
	})
}
