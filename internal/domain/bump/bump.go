// Package bump computes the patch increment of a semantic version string.
package bump

import (
	"fmt"
	"strconv"
	"strings"
)

// Next increments the last dot-separated component of a MAJOR.MINOR.PATCH
// version numerically. The result always has the same number of components
// as the input and always differs from it.
func Next(version string) (string, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return "", fmt.Errorf("empty version string")
	}

	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("version %q: expected 3 components, got %d", version, len(parts))
	}
	for i, p := range parts {
		if p == "" {
			return "", fmt.Errorf("version %q: component %d is empty", version, i+1)
		}
		if _, err := strconv.Atoi(p); err != nil {
			return "", fmt.Errorf("version %q: component %q is not numeric", version, p)
		}
	}

	patch, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", fmt.Errorf("version %q: %w", version, err)
	}
	if patch < 0 {
		return "", fmt.Errorf("version %q: negative patch component", version)
	}

	parts[len(parts)-1] = strconv.Itoa(patch + 1)
	return strings.Join(parts, "."), nil
}
