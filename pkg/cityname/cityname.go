// Package cityname derives canonical storage keys from raw, user-entered
// city names. All stored weather records for a city are keyed by the value
// this package produces, so every write and lookup path must go through
// Normalize before touching the store.
package cityname

import "strings"

// suffixes lists the Japanese administrative-division suffixes that are
// stripped from the end of a name. Scan order matters: only the first
// matching suffix is removed, and removal never cascades.
var suffixes = []string{"市", "県", "都", "府", "郡", "町", "村"}

// Normalize converts a raw city name into its canonical key: the input is
// lower-cased, at most one trailing administrative suffix is stripped, and
// spaces are removed. Keys derived from real city spellings are fixed
// points, so re-normalizing a stored key is a no-op.
func Normalize(raw string) string {
	name := strings.ToLower(raw)

	for _, suffix := range suffixes {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			name = trimmed
			break
		}
	}

	return strings.ReplaceAll(name, " ", "")
}
