package pipeline

import (
	"testing"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"midnight", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateKind(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"line", false},
		{"scatter", false},
		{"bar", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateKind(tt.kind)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateKind(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForParse(t *testing.T) {
	// Missing input and data
	opts := Options{}
	if err := opts.ValidateForParse(); err == nil {
		t.Error("Missing input/data should fail")
	}

	// Inline data without format
	opts = Options{Data: "x,y\n1,2\n"}
	if err := opts.ValidateForParse(); err == nil {
		t.Error("Inline data without format should fail")
	}

	// Valid with inline data
	opts = Options{Data: "x,y\n1,2\n", Format: "csv"}
	if err := opts.ValidateForParse(); err != nil {
		t.Errorf("Valid inline data options should pass: %v", err)
	}

	// Valid with input path
	opts = Options{Input: "latency.csv"}
	if err := opts.ValidateForParse(); err != nil {
		t.Errorf("Valid input options should pass: %v", err)
	}
}

func TestOptionsValidateForLayout(t *testing.T) {
	// Empty kind defers to the dataset
	opts := Options{}
	if err := opts.ValidateForLayout(); err != nil {
		t.Errorf("Empty kind should pass: %v", err)
	}

	opts = Options{Kind: "bar"}
	if err := opts.ValidateForLayout(); err != nil {
		t.Errorf("Valid kind should pass: %v", err)
	}

	opts = Options{Kind: "pie"}
	if err := opts.ValidateForLayout(); err == nil {
		t.Error("Invalid kind should fail")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{
		Input: "latency.csv",
	}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalWidth := opts.Width
	originalStyle := opts.Style
	originalScale := opts.Scale

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Width != originalWidth {
		t.Error("Width changed on second call")
	}
	if opts.Style != originalStyle {
		t.Error("Style changed on second call")
	}
	if opts.Scale != originalScale {
		t.Error("Scale changed on second call")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Width != DefaultWidth {
		t.Errorf("Width should be %d, got %d", DefaultWidth, opts.Width)
	}
	if opts.Height != DefaultHeight {
		t.Errorf("Height should be %d, got %d", DefaultHeight, opts.Height)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %d, got %d", DefaultScale, opts.Scale)
	}
}

func TestArtifactKeyOptsScale(t *testing.T) {
	opts := Options{Style: "simple", Scale: 3}

	// Scale only matters for PNG artifacts
	if got := opts.ArtifactKeyOpts(FormatPNG).Scale; got != 3 {
		t.Errorf("PNG key scale = %d, want 3", got)
	}
	if got := opts.ArtifactKeyOpts(FormatSVG).Scale; got != 0 {
		t.Errorf("SVG key scale = %d, want 0", got)
	}
}
