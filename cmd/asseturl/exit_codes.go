package main

import (
	"errors"
	"os"

	asseturl "github.com/alnah/go-asseturl"
	"github.com/alnah/go-asseturl/internal/builtins"
	"github.com/alnah/go-asseturl/internal/config"
	"github.com/alnah/go-asseturl/internal/starcfg"
)

// Exit codes for asseturl CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // URL printed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or arguments
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, asseturl.ErrOpenAsset) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidStrategy) ||
		errors.Is(err, config.ErrManifestLoad) ||
		errors.Is(err, starcfg.ErrWrongType) ||
		errors.Is(err, builtins.ErrUnknownFunction) ||
		errors.Is(err, asseturl.ErrUnknownAssetType) ||
		errors.Is(err, asseturl.ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrMissingArgs) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
