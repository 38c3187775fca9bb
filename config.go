package asseturl

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default directory names, relative to the project path.
const (
	DefaultHTTPPath  = "/"
	DefaultCSSDir    = "stylesheets"
	DefaultImagesDir = "images"
	DefaultFontsDir  = "fonts"
)

// Config describes the project layout and deployment settings the engine reads.
// It is copied by New and never mutated afterwards.
//
// Each asset class has three related settings:
//   - *Dir: directory name relative to ProjectPath ("images")
//   - *Path: absolute filesystem directory (ProjectPath/ImagesDir)
//   - HTTP*Path: public URL prefix (HTTPRootRelative(ImagesDir))
//
// Empty fields take the defaults shown above.
type Config struct {
	ProjectPath    string
	HTTPPath       string // site root, default "/"
	RelativeAssets bool   // emit stylesheet-relative URLs when the emitting file is known

	CSSDir              string
	CSSPath             string
	HTTPStylesheetsPath string

	ImagesDir      string
	ImagesPath     string
	HTTPImagesPath string

	GeneratedImagesDir      string // default ImagesDir
	GeneratedImagesPath     string
	HTTPGeneratedImagesPath string // default HTTPImagesPath

	FontsDir      string
	FontsPath     string
	HTTPFontsPath string

	// AssetCacheBuster replaces the default mtime cache buster. Nil keeps the default.
	AssetCacheBuster CacheBusterGenerator

	// URLResolver computes URLs for fonts and images. Nil selects DefaultResolver.
	URLResolver URLResolver
}

// DefaultConfig returns a configuration rooted at projectPath with
// root-relative URLs and the default directory names.
func DefaultConfig(projectPath string) Config {
	return Config{ProjectPath: projectPath}
}

// Validate checks that the filesystem paths can anchor relative computations.
func (c Config) Validate() error {
	if c.ProjectPath != "" && !filepath.IsAbs(c.ProjectPath) {
		return fmt.Errorf("%w: project path must be absolute, got %q", ErrInvalidConfig, c.ProjectPath)
	}
	paths := []struct{ name, value string }{
		{"css path", c.CSSPath},
		{"images path", c.ImagesPath},
		{"generated images path", c.GeneratedImagesPath},
		{"fonts path", c.FontsPath},
	}
	for _, p := range paths {
		if p.value != "" && !filepath.IsAbs(p.value) {
			return fmt.Errorf("%w: %s must be absolute, got %q", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.ProjectPath == "" && c.CSSPath == "" && c.RelativeAssets {
		return fmt.Errorf("%w: relative assets need a project path or css path", ErrInvalidConfig)
	}
	return nil
}

// HTTPRootRelative returns dir anchored at the site root (HTTPPath).
//
//	HTTPPath "/"      -> HTTPRootRelative("images") == "/images"
//	HTTPPath "/blog/" -> HTTPRootRelative("images") == "/blog/images"
func (c Config) HTTPRootRelative(dir string) string {
	hp := c.HTTPPath
	if hp == "" {
		hp = DefaultHTTPPath
	}
	return strings.TrimSuffix(hp, "/") + "/" + dir
}

// withDefaults fills every derived field except HTTPStylesheetsPath,
// whose explicit presence matters to StylesheetURL.
func (c Config) withDefaults() Config {
	if c.HTTPPath == "" {
		c.HTTPPath = DefaultHTTPPath
	}
	if c.CSSDir == "" {
		c.CSSDir = DefaultCSSDir
	}
	if c.ImagesDir == "" {
		c.ImagesDir = DefaultImagesDir
	}
	if c.GeneratedImagesDir == "" {
		c.GeneratedImagesDir = c.ImagesDir
	}
	if c.FontsDir == "" {
		c.FontsDir = DefaultFontsDir
	}

	c.CSSPath = c.projectRelative(c.CSSPath, c.CSSDir)
	c.ImagesPath = c.projectRelative(c.ImagesPath, c.ImagesDir)
	c.GeneratedImagesPath = c.projectRelative(c.GeneratedImagesPath, c.GeneratedImagesDir)
	c.FontsPath = c.projectRelative(c.FontsPath, c.FontsDir)

	if c.HTTPImagesPath == "" {
		c.HTTPImagesPath = c.HTTPRootRelative(c.ImagesDir)
	}
	if c.HTTPGeneratedImagesPath == "" {
		c.HTTPGeneratedImagesPath = c.HTTPImagesPath
	}
	if c.HTTPFontsPath == "" {
		c.HTTPFontsPath = c.HTTPRootRelative(c.FontsDir)
	}
	return c
}

// projectRelative returns explicit when set, otherwise ProjectPath/dir.
// Without a project path there is no filesystem location.
func (c Config) projectRelative(explicit, dir string) string {
	if explicit != "" {
		return filepath.Clean(explicit)
	}
	if c.ProjectPath == "" {
		return ""
	}
	return filepath.Join(c.ProjectPath, filepath.FromSlash(dir))
}

// stylesheetsHTTPPath returns the explicit HTTPStylesheetsPath or the
// root-relative CSS directory.
func (c Config) stylesheetsHTTPPath() string {
	if c.HTTPStylesheetsPath != "" {
		return c.HTTPStylesheetsPath
	}
	return c.HTTPRootRelative(c.CSSDir)
}

// location returns the filesystem directory and public URL prefix for t.
func (c Config) location(t AssetType) (fsDir, httpDir string, err error) {
	switch t {
	case AssetStylesheet:
		return c.CSSPath, c.stylesheetsHTTPPath(), nil
	case AssetFont:
		return c.FontsPath, c.HTTPFontsPath, nil
	case AssetImage:
		return c.ImagesPath, c.HTTPImagesPath, nil
	case AssetGeneratedImage:
		return c.GeneratedImagesPath, c.HTTPGeneratedImagesPath, nil
	}
	return "", "", fmt.Errorf("%w: %v", ErrUnknownAssetType, t)
}
