package main

import (
	"errors"
	"strings"

	asseturl "github.com/alnah/go-asseturl"
	"github.com/alnah/go-asseturl/internal/builtins"
	"github.com/alnah/go-asseturl/internal/config"
	"github.com/alnah/go-asseturl/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrMissingArgs    = errors.New("missing arguments")
	ErrEval           = errors.New("evaluation failed")
)

// assetTypeNames lists the names accepted by the resolve command.
var assetTypeNames = []string{
	asseturl.AssetStylesheet.String(),
	asseturl.AssetFont.String(),
	asseturl.AssetImage.String(),
	asseturl.AssetGeneratedImage.String(),
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(nf.Name, nf.Tried)
		}
		return hints.ForConfigNotFound(defaultConfigName, config.SearchPaths(defaultConfigName))
	case errors.Is(err, asseturl.ErrUnknownAssetType):
		return hints.ForUnknownAssetType(assetTypeNames)
	case errors.Is(err, builtins.ErrUnknownFunction):
		return hints.ForUnknownFunction(builtins.Names())
	case errors.Is(err, asseturl.ErrInvalidConfig):
		return hints.ForInvalidConfig()
	case errors.Is(err, config.ErrManifestLoad):
		return hints.ForManifest()
	case strings.Contains(err.Error(), "execution timeout"):
		return hints.ForTimeout()
	}
	return ""
}
