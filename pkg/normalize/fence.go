package normalize

import (
	"strings"

	"github.com/yaklabco/mdnorm/pkg/langdetect"
)

// defaultFenceLang is used when no heuristic matches. Bare fences most
// often hold shell commands in the documentation this tool targets.
const defaultFenceLang = "bash"

// langRule maps a first-content-line predicate to a fence language tag.
// Rules are evaluated in order; the first match wins.
type langRule struct {
	match func(line string) bool
	tag   string
}

// langRules is the ordered heuristic table for fence-language inference.
// The predicates see the trimmed first content line of the block. This is
// a best-effort classifier, not a parser: false positives are acceptable,
// determinism is the only hard requirement.
//
//nolint:gochecknoglobals // Read-only lookup table.
var langRules = []langRule{
	{hasAnyPrefix("docker ", "docker-compose"), "bash"},
	{hasAnyPrefix("npm ", "node "), "bash"},
	{hasAnyPrefix("git ", "cd "), "bash"},
	{hasAnyPrefix("make ", "sudo "), "bash"},
	{hasAnyPrefix("curl ", "wget "), "bash"},
	{containsAny("version:", "services:"), "yaml"},
	{hasAnyPrefix("{", "["), "json"},
	{func(s string) bool { return strings.HasPrefix(s, "<") && strings.Contains(s, ">") }, "html"},
	{containsAny("def ", "import "), "python"},
	{hasAnyPrefix("class "), "python"},
	{containsAny("function ", "const ", "var ", "let "), "javascript"},
	{containsAnyFold("SELECT ", "CREATE TABLE"), "sql"},
	{containsAny("#!/bin/bash", "#!/usr/bin/env bash"), "bash"},
	{containsAny("#!/usr/bin/env python"), "python"},
	{containsAny("#include ", "int main"), "c"},
}

func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(s string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
		return false
	}
}

func containsAny(substrings ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range substrings {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

func containsAnyFold(substrings ...string) func(string) bool {
	return func(s string) bool {
		upper := strings.ToUpper(s)
		for _, sub := range substrings {
			if strings.Contains(upper, sub) {
				return true
			}
		}
		return false
	}
}

// inferFenceLanguage classifies the first content line of a bare fenced
// block. The heuristic table runs first; when it has no opinion, go-enry
// gets a chance before the bash default fires.
func inferFenceLanguage(firstContentLine string) string {
	trimmed := strings.TrimSpace(firstContentLine)
	for _, rule := range langRules {
		if rule.match(trimmed) {
			return rule.tag
		}
	}
	if tag := langdetect.Detect([]byte(trimmed)); tag != "" {
		return tag
	}
	return defaultFenceLang
}

// tagBareFences assigns a language tag to every bare opening fence by
// inspecting the immediately following content line. Closing fences are
// left alone: retagging them would reopen the block and corrupt the
// document. A bare fence at end of document gets the default tag.
func tagBareFences(lines []string, _ Options) []string {
	out := make([]string, len(lines))
	var tracker RegionTracker

	for i, line := range lines {
		isDelimiter := tracker.Observe(line)
		if !isDelimiter || !tracker.InCodeBlock() || !IsBareFence(line) {
			out[i] = line
			continue
		}

		lang := defaultFenceLang
		if i+1 < len(lines) {
			lang = inferFenceLanguage(lines[i+1])
		}
		out[i] = "```" + lang
	}

	return out
}
