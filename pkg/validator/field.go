package validator

import (
	"strings"

	"github.com/yi-nology/campus_inventory/pkg/constants"
)

// SanitizeIdentifier trims whitespace from an identifier such as an asset tag
// or serial number. Returns the trimmed value and whether it is non-empty.
func SanitizeIdentifier(v string) (string, bool) {
	trimmed := strings.TrimSpace(v)
	return trimmed, trimmed != ""
}

// IsSelected reports whether a selector value was actually chosen.
func IsSelected(v string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed != "" && trimmed != constants.PlaceholderOption
}
