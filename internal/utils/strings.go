package utils

import "strings"

// FirstNonEmpty returns the first value with non-whitespace content.
func FirstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// SafeFilenamePart strips characters that would break a download filename.
func SafeFilenamePart(s string) string {
	repl := strings.NewReplacer("/", "-", "\\", "-", " ", "_", ":", "-", "..", "")
	out := repl.Replace(strings.TrimSpace(s))
	if out == "" {
		return "file"
	}
	return out
}
