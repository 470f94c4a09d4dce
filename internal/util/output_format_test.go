package util

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", "text", false},
		{"valid json", "json", false},
		{"valid yaml", "yaml", false},
		{"valid uppercase", "JSON", false},
		{"valid mixed case", "Yaml", false},
		{"surrounding whitespace", " json ", false},
		{"invalid xml", "xml", true},
		{"invalid csv", "csv", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{"lowercase", "text", "text"},
		{"uppercase", "JSON", "json"},
		{"mixed case", "Yaml", "yaml"},
		{"whitespace", " text", "text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeFormat(tt.format)
			if result != tt.expected {
				t.Errorf("NormalizeFormat(%q) = %v, want %v", tt.format, result, tt.expected)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	formats := ValidFormats()
	expected := []string{"json", "text", "yaml"}

	if len(formats) != len(expected) {
		t.Fatalf("ValidFormats() returned %d formats, expected %d", len(formats), len(expected))
	}
	for i, format := range expected {
		if formats[i] != format {
			t.Errorf("ValidFormats()[%d] = %s, want %s", i, formats[i], format)
		}
	}
}
