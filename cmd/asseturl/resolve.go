package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	asseturl "github.com/alnah/go-asseturl"
)

// runResolve prints the URL of one asset reference.
func runResolve(args []string, deps *Dependencies) error {
	f, positional, err := parseResolveFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printResolveUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) != 2 {
		return fmt.Errorf("%w: resolve needs <type> <path>, got %d argument(s)", ErrMissingArgs, len(positional))
	}

	t, err := asseturl.ParseAssetType(positional[0])
	if err != nil {
		return err
	}

	eng, err := loadEngine(&f.common, deps)
	if err != nil {
		return err
	}
	sc, err := styleContext(f.common.cssFile)
	if err != nil {
		return err
	}

	req := asseturl.Request{
		Type:        t,
		Path:        positional[1],
		OnlyPath:    f.onlyPath,
		CacheBuster: f.cacheBuster,
	}
	if !f.cacheBusterSet {
		req.CacheBuster = defaultCacheBuster(t)
	}

	url, err := eng.Resolve(sc, req)
	if err != nil {
		return fmt.Errorf("resolving %s %q: %w", t, req.Path, err)
	}
	fmt.Fprintln(deps.Stdout, url)
	return nil
}

// defaultCacheBuster mirrors the entry point defaults: fonts and images are
// busted unless disabled, generated images only on request.
func defaultCacheBuster(t asseturl.AssetType) bool {
	return t == asseturl.AssetFont || t == asseturl.AssetImage
}
