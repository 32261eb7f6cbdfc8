package errors

import (
	"strings"
	"testing"
)

func TestValidateComponentType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "button", false},
		{"dashed", "hero-title", false},
		{"digits", "header-1", false},

		{"empty", "", true},
		{"upper", "Button", true},
		{"leading dash", "-button", true},
		{"trailing dash", "button-", true},
		{"double dash", "hero--title", true},
		{"space", "hero title", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponentType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComponentType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"column", "column-1", false},
		{"uuid", "component-0b3e8a6c-7d5f-4e1a-9a52-3c1d2e4f5a6b", false},

		{"empty", "", true},
		{"space", "column 1", true},
		{"newline", "column\n1", true},
		{"slash", "column/1", true},
		{"backslash", "column\\1", true},
		{"too long", strings.Repeat("x", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContainerWidth(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"auto", false},
		{"100%", false},
		{"1200px", false},
		{"64rem", false},
		{"72.5vw", false},

		{"", true},
		{"wide", true},
		{"12", true},
		{"px", true},
		{"-10px", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateContainerWidth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContainerWidth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Landing header", false},
		{"unicode", "Überschrift", false},
		{"exactly max", strings.Repeat("ü", 100), false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"control", "a\x01b", true},
		{"too long", strings.Repeat("a", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/page.tsx", false},
		{"absolute", "/tmp/page.tsx", false},
		{"dot file", ".pagesmith/layout.json", false},

		{"empty", "", true},
		{"traversal", "../page.tsx", true},
		{"nested traversal", "out/../../etc", true},
		{"backslash", "out\\page.tsx", true},
		{"null byte", "page\x00.tsx", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
