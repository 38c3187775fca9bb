// Package urlpath provides string helpers for slash-separated URL paths.
//
// All functions are total: they never fail and never touch the filesystem.
package urlpath

import (
	"path"
	"strings"
)

// StripLeadingDotSlash removes a leading "./" from s.
func StripLeadingDotSlash(s string) string {
	return strings.TrimPrefix(s, "./")
}

// IsAbsoluteOrHTTP reports whether s is root-relative ("/...") or starts
// with "http" (case-sensitive), covering both http:// and https:// URLs.
func IsAbsoluteOrHTTP(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, "http")
}

// IsExternal reports whether s already addresses a location outside the
// asset directories: root-relative or protocol-relative paths, http(s) URLs
// and data: URIs.
func IsExternal(s string) bool {
	return strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		IsDataURI(s)
}

// IsDataURI reports whether s is an inline data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// Join concatenates two URL segments with exactly one "/" between them.
// An empty segment returns the other one unchanged.
//
// Examples:
//   - Join("/images", "logo.png")  -> "/images/logo.png"
//   - Join("/images/", "/logo.png") -> "/images/logo.png"
//   - Join("/", "logo.png")        -> "/logo.png"
//   - Join("", "logo.png")         -> "logo.png"
func Join(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return strings.TrimRight(a, "/") + "/" + strings.TrimLeft(b, "/")
}

// Rel returns the path to dst relative to the directory fromDir.
// Both paths must be root-relative or both relative; otherwise dst is
// returned unchanged.
//
//	Rel("/stylesheets/sub", "/images/logo.png") -> "../../images/logo.png"
//	Rel("/stylesheets", "/stylesheets/print.css") -> "print.css"
func Rel(fromDir, dst string) string {
	if path.IsAbs(fromDir) != path.IsAbs(dst) {
		return dst
	}

	from := splitSegments(path.Clean(fromDir))
	to := splitSegments(dst)

	common := 0
	for common < len(from) && common < len(to)-1 && from[common] == to[common] {
		common++
	}

	parts := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)

	if len(parts) == 0 {
		return "."
	}
	return strings.Join(parts, "/")
}

// splitSegments splits p on "/" and drops empty and "." segments.
func splitSegments(p string) []string {
	raw := strings.Split(p, "/")
	segs := raw[:0]
	for _, s := range raw {
		if s == "" || s == "." {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// SplitFragment splits "path#fragment" into "path" and "#fragment".
// The fragment keeps its leading "#"; it is empty when s has none.
func SplitFragment(s string) (string, string) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// StripQuery drops a "?query" suffix, leaving the bare path.
func StripQuery(s string) string {
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[:i]
	}
	return s
}
