package yamlutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-asseturl/internal/yamlutil"
)

type testLayout struct {
	CSSDir   string `yaml:"cssDir"`
	Relative bool   `yaml:"relativeAssets"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Decodes YAML and JSON into Go values
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("cssDir: css\nrelativeAssets: true"),
			dest: &testLayout{},
			check: func(t *testing.T, v any) {
				l := v.(*testLayout)
				if l.CSSDir != "css" || !l.Relative {
					t.Errorf("got %+v, want {css true}", *l)
				}
			},
		},
		{
			name: "JSON manifest",
			data: []byte(`{"logo.png": "logo.3f2a.png", "icons/a.png": "icons/a.9c1b.png"}`),
			dest: &map[string]string{},
			check: func(t *testing.T, v any) {
				m := *v.(*map[string]string)
				if m["logo.png"] != "logo.3f2a.png" || m["icons/a.png"] != "icons/a.9c1b.png" {
					t.Errorf("got %v", m)
				}
			},
		},
		{
			name: "unknown fields ignored",
			data: []byte("cssDir: css\nextra: 1"),
			dest: &testLayout{},
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testLayout{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("cssDir: css"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("cssDir: [unclosed"),
			dest:    &testLayout{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var l testLayout
	if err := yamlutil.UnmarshalStrict([]byte("cssDir: css"), &l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := yamlutil.UnmarshalStrict([]byte("cssDir: css\ncss_dir: css"), &l); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}

// ---------------------------------------------------------------------------
// TestReadFile - Reads and decodes files with a size limit
// ---------------------------------------------------------------------------

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "asseturl.yaml")
	if err := os.WriteFile(path, []byte("cssDir: css\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var l testLayout
	if err := yamlutil.ReadFile(path, &l, true); err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if l.CSSDir != "css" {
		t.Errorf("CSSDir = %q, want css", l.CSSDir)
	}

	err := yamlutil.ReadFile(filepath.Join(dir, "missing.yaml"), &l, true)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestReadFile_TooLarge(t *testing.T) {
	// Not parallel: mutates MaxInputSize.
	old := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 8
	defer func() { yamlutil.MaxInputSize = old }()

	path := filepath.Join(t.TempDir(), "big.yaml")
	if err := os.WriteFile(path, []byte("cssDir: stylesheets\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var l testLayout
	if err := yamlutil.ReadFile(path, &l, false); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("ReadFile() error = %v, want ErrInputTooLarge", err)
	}
}
