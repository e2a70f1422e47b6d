package tag

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keyRegex strips everything outside the canonical key alphabet.
var keyRegex = regexp.MustCompile(`[^a-z0-9_]+`)

// Normalize converts a tag or namespace key into canonical form: lowercase,
// trimmed, spaces and dashes folded to underscores, all other characters
// removed. Normalization happens once here at the data-model boundary;
// downstream code treats keys as already canonical.
func Normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return keyRegex.ReplaceAllString(key, "")
}

// NormalizeAll normalizes a list of keys, dropping empties and duplicates
// while preserving first-occurrence order.
func NormalizeAll(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		key = Normalize(key)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

var titleCaser = cases.Title(language.English)

// labelFromName derives a human-readable label from a canonical tag name,
// e.g. "customer_name" becomes "Customer Name".
func labelFromName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}
