// Package langdetect provides language detection for code snippets using
// go-enry. It backs the fence-language inference pass for content the
// heuristic table has no opinion on.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates is the set of languages offered to the enry classifier.
// Restricting the candidate set keeps detection fast and avoids exotic
// misclassifications on tiny snippets.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a fence language tag for the snippet, or "" when enry has
// no confident answer. Detection is pure: the same input always yields the
// same tag.
func Detect(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Classifier result is used only when enry reports it as safe.
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// normalize converts enry language names to conventional fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
