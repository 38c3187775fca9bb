// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-asseturl/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// name is the config name or path that was requested. Suggests --config
// and, for config names, creating the file in ~/.config/go-asseturl/.
func ForConfigNotFound(name string, searchedPaths []string) string {
	file := "asseturl.yaml"
	if name != "" {
		file = filepath.Base(name)
		if !fileutil.HasExtension(file, ".yaml", ".yml") {
			file += ".yaml"
		}
	}
	hint := "use --config /path/to/" + file

	// Find a user config path (contains go-asseturl) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-asseturl") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownAssetType lists the accepted asset type names.
func ForUnknownAssetType(valid []string) string {
	if len(valid) == 0 {
		return ""
	}
	return format("valid types: " + strings.Join(valid, ", "))
}

// ForUnknownFunction lists the functions that can be enabled.
func ForUnknownFunction(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidConfig explains how filesystem paths are interpreted.
func ForInvalidConfig() string {
	return format("relative paths in config files resolve against the config file directory")
}

// ForManifest returns a hint for manifest loading errors.
func ForManifest() string {
	return format("cacheBuster.manifest is relative to projectPath; generate it before resolving")
}

// ForTimeout returns a hint for Starlark execution timeouts.
func ForTimeout() string {
	return format("config evaluation is limited to a few seconds; avoid unbounded loops")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
