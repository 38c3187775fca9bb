package asseturl

import (
	"errors"
	"testing"
)

func TestAssetTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		t    AssetType
		want string
	}{
		{AssetStylesheet, "stylesheet"},
		{AssetFont, "font"},
		{AssetImage, "image"},
		{AssetGeneratedImage, "generated_image"},
		{AssetType(42), "AssetType(42)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("AssetType(%d).String() = %q, want %q", int(tt.t), got, tt.want)
		}
	}
}

func TestParseAssetType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    AssetType
		wantErr bool
	}{
		{"stylesheet", AssetStylesheet, false},
		{"css", AssetStylesheet, false},
		{"Font", AssetFont, false},
		{"IMAGE", AssetImage, false},
		{"generated_image", AssetGeneratedImage, false},
		{"generated-image", AssetGeneratedImage, false},
		{"video", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAssetType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAssetType) {
					t.Errorf("ParseAssetType(%q) error = %v, want ErrUnknownAssetType", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssetType(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAssetType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithWarningWriter_PanicsOnNil(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithWarningWriter(nil) did not panic")
		}
	}()
	WithWarningWriter(nil)
}
