package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseResolveFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseResolveFlags(t *testing.T) {
	t.Parallel()

	t.Run("cache buster not set", func(t *testing.T) {
		t.Parallel()
		f, args, err := parseResolveFlags([]string{"image", "a.png", "-p"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.onlyPath {
			t.Error("onlyPath = false, want true")
		}
		if f.cacheBusterSet {
			t.Error("cacheBusterSet = true, want false")
		}
		if len(args) != 2 || args[0] != "image" || args[1] != "a.png" {
			t.Errorf("args = %v, want [image a.png]", args)
		}
	})

	t.Run("cache buster bare flag", func(t *testing.T) {
		t.Parallel()
		f, _, err := parseResolveFlags([]string{"--cache-buster", "generated_image", "a.png"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.cacheBuster || !f.cacheBusterSet {
			t.Errorf("cacheBuster = %v, set = %v, want true, true", f.cacheBuster, f.cacheBusterSet)
		}
	})

	t.Run("cache buster explicit false", func(t *testing.T) {
		t.Parallel()
		f, _, err := parseResolveFlags([]string{"--cache-buster=false", "image", "a.png"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.cacheBuster || !f.cacheBusterSet {
			t.Errorf("cacheBuster = %v, set = %v, want false, true", f.cacheBuster, f.cacheBusterSet)
		}
	})

	t.Run("common flags", func(t *testing.T) {
		t.Parallel()
		f, _, err := parseResolveFlags([]string{"-c", "site", "--css-file", "a.css", "-v"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.common.config != "site" || f.common.cssFile != "a.css" || !f.common.verbose {
			t.Errorf("common = %+v", f.common)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseResolveFlags([]string{"--bogus"})
		if !errors.Is(err, ErrInvalidFlags) {
			t.Errorf("error = %v, want ErrInvalidFlags", err)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		_, _, err := parseResolveFlags([]string{"-h"})
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
	})
}

func TestParseEvalFlags(t *testing.T) {
	t.Parallel()

	f, exprs, err := parseEvalFlags([]string{"--functions", "image_url,font_url", `image_url("a.png")`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.functions) != 2 || f.functions[0] != "image_url" || f.functions[1] != "font_url" {
		t.Errorf("functions = %v, want [image_url font_url]", f.functions)
	}
	if len(exprs) != 1 {
		t.Errorf("exprs = %v, want one expression", exprs)
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Early verbose detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"none", []string{"resolve", "image", "a.png"}, false},
		{"short", []string{"resolve", "-v"}, true},
		{"long", []string{"eval", "--verbose", "1"}, true},
		{"long explicit", []string{"--verbose=true"}, true},
		{"combined short", []string{"resolve", "-pv"}, true},
		{"after terminator", []string{"eval", "--", "-v"}, false},
		{"long other flag", []string{"--css-file", "v.css"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
