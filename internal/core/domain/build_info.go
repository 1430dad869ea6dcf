package domain

import "time"

// BuildInfo records what the last successful compilation of a main document depended on.
type BuildInfo struct {
	Main         string            `json:"main,omitzero"`
	CompiledAt   time.Time         `json:"compiled_at,omitzero"`
	Dependencies []string          `json:"dependencies,omitempty"`
	Fingerprints map[string]string `json:"fingerprints,omitempty"`
}

// Changed reports whether the fingerprints in current differ from the recorded ones for any recorded dependency.
func (b *BuildInfo) Changed(current map[string]string) bool {
	if len(current) != len(b.Fingerprints) {
		return true
	}
	for path, fp := range b.Fingerprints {
		if current[path] != fp {
			return true
		}
	}
	return false
}
