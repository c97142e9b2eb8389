package normalize

import "strings"

// trimTrailingWhitespace removes trailing spaces and tabs from every line.
// This is the one pass that applies inside fenced code blocks too; fence
// content is otherwise preserved byte for byte.
func trimTrailingWhitespace(lines []string, _ Options) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, " \t\r")
	}
	return out
}
