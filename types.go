package asseturl

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
)

// AssetType selects how an asset reference is resolved.
type AssetType int

// Asset types, one per declared entry point.
const (
	AssetStylesheet AssetType = iota
	AssetFont
	AssetImage
	AssetGeneratedImage
)

// String returns the name used by entry points and the CLI.
func (t AssetType) String() string {
	switch t {
	case AssetStylesheet:
		return "stylesheet"
	case AssetFont:
		return "font"
	case AssetImage:
		return "image"
	case AssetGeneratedImage:
		return "generated_image"
	}
	return fmt.Sprintf("AssetType(%d)", int(t))
}

// ParseAssetType converts a name such as "image" or "generated-image"
// to an AssetType (case-insensitive).
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "stylesheet", "css":
		return AssetStylesheet, nil
	case "font":
		return AssetFont, nil
	case "image":
		return AssetImage, nil
	case "generated_image":
		return AssetGeneratedImage, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAssetType, s)
}

// Request describes a single asset reference to resolve.
type Request struct {
	Type        AssetType
	Path        string // as written in the stylesheet
	OnlyPath    bool   // bare path instead of url('...')
	CacheBuster bool   // ignored for stylesheets
}

// StyleContext carries per-call information about the stylesheet being emitted.
type StyleContext struct {
	// CSSFilename is the absolute output path of the emitting stylesheet.
	// Empty when unknown (e.g. interactive evaluation): relative features
	// then degrade to root-relative URLs.
	CSSFilename string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for resolution traces (V(1)).
func WithLogger(l logr.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithWarningWriter redirects cache buster warnings (default os.Stderr).
// Panics if w is nil (programmer error).
func WithWarningWriter(w io.Writer) Option {
	if w == nil {
		panic("asseturl: WithWarningWriter writer must not be nil")
	}
	return func(e *Engine) {
		e.warnings = w
	}
}

// WithURLResolver overrides Config.URLResolver.
func WithURLResolver(r URLResolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}
