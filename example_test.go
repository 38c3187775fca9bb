package asseturl_test

import (
	"fmt"

	asseturl "github.com/alnah/go-asseturl"
)

// Example resolves references for a site served from the HTTP root.
func Example() {
	eng, err := asseturl.New(asseturl.DefaultConfig(""))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sc := asseturl.StyleContext{}
	img, _ := eng.ImageURL(sc, "logo.png", false, false)
	font, _ := eng.FontURL(sc, "icons.woff", true, false)

	fmt.Println(eng.StylesheetURL(sc, "print.css", false))
	fmt.Println(img)
	fmt.Println(font)
	// Output:
	// url('/stylesheets/print.css')
	// url('/images/logo.png')
	// /fonts/icons.woff
}

// Example_customCacheBuster stamps every asset with a release number.
func Example_customCacheBuster() {
	cfg := asseturl.DefaultConfig("")
	cfg.HTTPPath = "/static/"
	cfg.AssetCacheBuster = asseturl.CacheBusterFunc(func(string) (asseturl.Bust, error) {
		return asseturl.QueryBust("r=42"), nil
	})

	eng, err := asseturl.New(cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	u, _ := eng.ImageURL(asseturl.StyleContext{}, "logo.png", true, true)
	fmt.Println(u)
	// Output: /static/images/logo.png?r=42
}

// ExampleMergeCacheBuster shows the three cache buster variants.
func ExampleMergeCacheBuster() {
	fmt.Println(asseturl.MergeCacheBuster("a.png", asseturl.NoBust()))
	fmt.Println(asseturl.MergeCacheBuster("a.png?x=1", asseturl.QueryBust("v1")))
	fmt.Println(asseturl.MergeCacheBuster("a.png", asseturl.OverrideBust("a-3f2a.png", "v1")))
	// Output:
	// a.png
	// a.png?x=1&v1
	// a-3f2a.png?v1
}
