package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRunID creates a human-readable identifier for one simulation run.
// Format: {scenario}-{8charHexUUID}
//
// Example:
//   - Input: scenario="Balkans 1936.yaml"
//   - Output: "balkans-1936-a3f8e2b1"
func GenerateRunID(scenario string) string {
	slug := slugify(scenario)
	if slug == "" {
		slug = "run"
	}
	return slug + "-" + generateShortUUID()
}

// slugify lowercases the name, drops a trailing .yaml/.yml extension and any
// directory, and collapses every run of non-alphanumerics into one hyphen.
func slugify(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
