package asseturl

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ContentCacheBuster returns a generator whose token is the xxhash64 digest
// of the asset's content, as 16 lowercase hex digits. Missing assets
// produce no token.
func ContentCacheBuster() CacheBusterGenerator {
	return CacheBusterFileFunc(contentDigest)
}

func contentDigest(_ string, file *os.File) (Bust, error) {
	if file == nil {
		return NoBust(), nil
	}
	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return NoBust(), fmt.Errorf("hashing %s: %w", file.Name(), err)
	}
	return QueryBust(fmt.Sprintf("%016x", h.Sum64())), nil
}
