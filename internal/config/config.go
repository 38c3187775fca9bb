// Package config loads project configuration files describing the asset
// layout and turns them into an asseturl.Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	asseturl "github.com/alnah/go-asseturl"
	"github.com/alnah/go-asseturl/internal/fileutil"
	"github.com/alnah/go-asseturl/internal/manifest"
	"github.com/alnah/go-asseturl/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidStrategy = errors.New("invalid cache buster strategy")
	ErrManifestLoad    = errors.New("failed to load asset manifest")
)

// Field length limits.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxDirLength  = 255  // single directory name or short relative path
	MaxURLLength  = 2048 // Browser limit
)

// Cache buster strategies.
const (
	StrategyMtime    = "mtime"    // file modification time (default)
	StrategyContent  = "content"  // xxhash of the file content
	StrategyManifest = "manifest" // fingerprinted names from a manifest file
	StrategyNone     = "none"     // never append a token
)

// Config is the on-disk project configuration.
type Config struct {
	ProjectPath     string            `yaml:"projectPath"`    // Empty = config file directory
	HTTPPath        string            `yaml:"httpPath"`       // Site root (default: "/")
	RelativeAssets  bool              `yaml:"relativeAssets"` // Stylesheet-relative URLs
	Stylesheets     DirConfig         `yaml:"stylesheets"`
	Images          DirConfig         `yaml:"images"`
	GeneratedImages DirConfig         `yaml:"generatedImages"`
	Fonts           DirConfig         `yaml:"fonts"`
	CacheBuster     CacheBusterConfig `yaml:"cacheBuster"`

	// BaseDir anchors relative paths. LoadConfig sets it to the directory of
	// the config file; empty means the working directory.
	BaseDir string `yaml:"-"`
}

// DirConfig locates one asset class.
type DirConfig struct {
	Dir      string `yaml:"dir"`      // Directory name under the project
	Path     string `yaml:"path"`     // Filesystem override, relative to the project
	HTTPPath string `yaml:"httpPath"` // Public URL prefix override
}

// CacheBusterConfig selects the cache buster.
type CacheBusterConfig struct {
	Strategy string `yaml:"strategy"` // "mtime", "content", "manifest", "none" (default: "mtime")
	Manifest string `yaml:"manifest"` // Manifest file, required with "manifest"
}

// Validate checks field lengths and the cache buster strategy.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("projectPath", c.ProjectPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("httpPath", c.HTTPPath, MaxURLLength); err != nil {
		return err
	}

	dirs := []struct {
		name string
		dir  DirConfig
	}{
		{"stylesheets", c.Stylesheets},
		{"images", c.Images},
		{"generatedImages", c.GeneratedImages},
		{"fonts", c.Fonts},
	}
	for _, d := range dirs {
		if err := validateFieldLength(d.name+".dir", d.dir.Dir, MaxDirLength); err != nil {
			return err
		}
		if err := validateFieldLength(d.name+".path", d.dir.Path, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(d.name+".httpPath", d.dir.HTTPPath, MaxURLLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("cacheBuster.manifest", c.CacheBuster.Manifest, MaxPathLength); err != nil {
		return err
	}
	switch strings.ToLower(c.CacheBuster.Strategy) {
	case "", StrategyMtime, StrategyContent, StrategyNone:
		// valid
	case StrategyManifest:
		if c.CacheBuster.Manifest == "" {
			return fmt.Errorf("cacheBuster.manifest: required when strategy is %q", StrategyManifest)
		}
	default:
		return fmt.Errorf("%w: %q (must be mtime, content, manifest, or none)", ErrInvalidStrategy, c.CacheBuster.Strategy)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that keeps every engine default.
func DefaultConfig() *Config {
	return &Config{
		CacheBuster: CacheBusterConfig{Strategy: StrategyMtime},
	}
}

// EngineConfig converts c into an asseturl.Config, resolving relative
// filesystem paths against BaseDir and loading the manifest if needed.
func (c *Config) EngineConfig() (asseturl.Config, error) {
	base := c.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return asseturl.Config{}, fmt.Errorf("resolving working directory: %w", err)
		}
		base = wd
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return asseturl.Config{}, fmt.Errorf("resolving base directory: %w", err)
	}
	project := anchor(base, c.ProjectPath)

	cfg := asseturl.Config{
		ProjectPath:    project,
		HTTPPath:       c.HTTPPath,
		RelativeAssets: c.RelativeAssets,

		CSSDir:              c.Stylesheets.Dir,
		CSSPath:             anchorOptional(project, c.Stylesheets.Path),
		HTTPStylesheetsPath: c.Stylesheets.HTTPPath,

		ImagesDir:      c.Images.Dir,
		ImagesPath:     anchorOptional(project, c.Images.Path),
		HTTPImagesPath: c.Images.HTTPPath,

		GeneratedImagesDir:      c.GeneratedImages.Dir,
		GeneratedImagesPath:     anchorOptional(project, c.GeneratedImages.Path),
		HTTPGeneratedImagesPath: c.GeneratedImages.HTTPPath,

		FontsDir:      c.Fonts.Dir,
		FontsPath:     anchorOptional(project, c.Fonts.Path),
		HTTPFontsPath: c.Fonts.HTTPPath,
	}

	switch strings.ToLower(c.CacheBuster.Strategy) {
	case StrategyContent:
		cfg.AssetCacheBuster = asseturl.ContentCacheBuster()
	case StrategyNone:
		cfg.AssetCacheBuster = asseturl.NoCacheBuster()
	case StrategyManifest:
		m, err := manifest.Load(anchor(project, c.CacheBuster.Manifest))
		if err != nil {
			return asseturl.Config{}, fmt.Errorf("%w: %v", ErrManifestLoad, err)
		}
		cfg.AssetCacheBuster = manifest.NewCacheBuster(m)
	}

	return cfg, nil
}

// anchor resolves p against base unless p is already absolute.
func anchor(base, p string) string {
	if p == "" {
		return base
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// anchorOptional is anchor for optional overrides: empty stays empty.
func anchorOptional(base, p string) string {
	if p == "" {
		return ""
	}
	return anchor(base, p)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or ends in .yaml/.yml, it's
// treated as a file path. Otherwise, it's treated as a config name and
// searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isConfigPath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFile(configPath, &cfg, true); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Name: nameOrPath, Tried: []string{configPath}}
		}
		if errors.Is(err, yamlutil.ErrNilData) {
			// An empty file keeps every default.
			cfg = *DefaultConfig()
		} else {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg.BaseDir = filepath.Dir(abs)

	return &cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
// Extensions: .yaml, .yml. Locations: current directory, ~/.config/go-asseturl/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-asseturl", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

// isConfigPath reports whether s names a file rather than a config name.
func isConfigPath(s string) bool {
	return fileutil.IsFilePath(s) || fileutil.HasExtension(s, ".yaml", ".yml")
}

// NotFoundError reports a config that could not be found. It matches
// ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Name  string   // as requested by the caller
	Tried []string // files looked up, in order
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }
