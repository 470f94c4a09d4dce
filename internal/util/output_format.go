package util

import (
	"fmt"
	"sort"
	"strings"
)

// validOutputFormats defines the supported output formats
var validOutputFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// ValidateOutputFormat checks if the given format is valid
func ValidateOutputFormat(format string) error {
	if !validOutputFormats[NormalizeFormat(format)] {
		return fmt.Errorf("invalid format %q, valid formats are: %s",
			format, strings.Join(ValidFormats(), ", "))
	}
	return nil
}

// ValidFormats returns the valid output formats in sorted order
func ValidFormats() []string {
	formats := make([]string, 0, len(validOutputFormats))
	for format := range validOutputFormats {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// NormalizeFormat normalizes the format string to lowercase
func NormalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
