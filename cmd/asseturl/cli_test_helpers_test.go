package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedMtime is the modification time given to every project asset.
var fixedMtime = time.Unix(1700000000, 0)

// runCLI runs the CLI in-process and captures its output.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = runMain(args, &Dependencies{Stdout: &out, Stderr: &errOut})
	return out.String(), errOut.String(), code
}

// newProject lays out a project with a YAML config and returns the
// project directory and config path.
func newProject(t *testing.T, configYAML string) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()

	files := map[string]string{
		"images/logo.png":          "png",
		"fonts/body.woff":          "woff",
		"stylesheets/sub/main.css": "body {}",
		"stylesheets/site.css":     "html {}",
		"images/generated/pie.png": "png",
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.Chtimes(p, fixedMtime, fixedMtime); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	configPath = filepath.Join(dir, "asseturl.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return dir, configPath
}
