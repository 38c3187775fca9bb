package asseturl

import "path/filepath"

// RelativePath returns the slash-separated path from the directory holding
// cssFilename to targetDir, using ".." segments as needed.
//
// It reports false when cssFilename is empty (the emitting stylesheet is
// unknown) or when no relative path exists, such as across Windows volumes.
// Callers then fall back to a root-relative URL.
func RelativePath(targetDir, cssFilename string) (string, bool) {
	if cssFilename == "" {
		return "", false
	}

	target, err := filepath.Abs(targetDir)
	if err != nil {
		return "", false
	}
	source, err := filepath.Abs(cssFilename)
	if err != nil {
		return "", false
	}

	rel, err := filepath.Rel(filepath.Dir(source), target)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
