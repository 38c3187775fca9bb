package asseturl

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownAssetType = errors.New("unknown asset type")
	ErrInvalidConfig    = errors.New("invalid configuration")

	// Cache buster errors.
	ErrOpenAsset         = errors.New("failed to open asset for cache buster")
	ErrCacheBusterResult = errors.New("unsupported cache buster result")
)
