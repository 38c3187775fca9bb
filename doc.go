// Package asseturl computes the public URLs of assets referenced from
// stylesheets: other stylesheets, fonts, images and generated images.
//
// # Quick Start
//
// Create an engine for a project and resolve references:
//
//	eng, err := asseturl.New(asseturl.DefaultConfig("/srv/site"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sc := asseturl.StyleContext{CSSFilename: "/srv/site/stylesheets/screen.css"}
//	u, err := eng.ImageURL(sc, "logo.png", false, true)
//	// u == "url('/images/logo.png?1700000000')"
//
// # URL Modes
//
// URLs are root-relative by default ("/images/logo.png"). With
// Config.RelativeAssets and a known emitting stylesheet they are computed
// relative to that stylesheet ("../images/logo.png"). Absolute paths,
// http(s) URLs and data: URIs are left alone.
//
// Stylesheet URLs are computed directly from the configuration. Fonts and
// images go through a URLResolver, DefaultResolver unless one is supplied.
//
// # Cache Busting
//
// The default cache buster appends the asset's modification time as a
// query token. A missing asset is reported with a single warning line and
// the URL is emitted without a token. Custom generators plug in through
// Config.AssetCacheBuster:
//
//	cfg.AssetCacheBuster = asseturl.CacheBusterFunc(func(p string) (asseturl.Bust, error) {
//	    return asseturl.QueryBust("v=" + release), nil
//	})
//
// A generator may also rewrite the path (OverrideBust) or, with an arity of
// two, read the open asset file (see ContentCacheBuster).
package asseturl
