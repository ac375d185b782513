// Package urlutil provides URL path joining for link construction.
package urlutil

import "strings"

// Join appends path segments to a base URL, collapsing duplicate
// slashes at each seam. An empty base yields an empty result so
// unconfigured hosts never produce relative half-links.
func Join(base string, parts ...string) string {
	if base == "" {
		return ""
	}
	joined := strings.TrimRight(base, "/")
	for _, part := range parts {
		part = strings.Trim(part, "/")
		if part == "" {
			continue
		}
		joined += "/" + part
	}
	return joined
}
