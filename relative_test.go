package asseturl

import (
	"path/filepath"
	"testing"
)

func TestRelativePath(t *testing.T) {
	t.Parallel()

	proj := t.TempDir()
	css := filepath.Join(proj, "css")

	tests := []struct {
		name        string
		targetDir   string
		cssFilename string
		want        string
		wantOK      bool
	}{
		{"same directory", css, filepath.Join(css, "page.css"), ".", true},
		{"nested stylesheet", css, filepath.Join(css, "sub", "page.css"), "..", true},
		{"deeply nested stylesheet", css, filepath.Join(css, "a", "b", "page.css"), "../..", true},
		{"sibling target", filepath.Join(proj, "images"), filepath.Join(css, "page.css"), "../images", true},
		{"unknown stylesheet", css, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := RelativePath(tt.targetDir, tt.cssFilename)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("RelativePath(%q, %q) = (%q, %v), want (%q, %v)",
					tt.targetDir, tt.cssFilename, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
