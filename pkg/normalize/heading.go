package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdnorm/pkg/config"
)

// convertHeadingStyle normalizes heading representation to the configured
// target style.
//
// Target atx: setext headings become `#`-prefixed lines at the matching
// level; ATX headings keep their level with trailing hash decorations
// stripped and a single space enforced.
//
// Target setext: ATX levels 1-2 become a text line plus an underline of
// matching length. Levels 3+ cannot be expressed in setext and stay ATX;
// that is a documented limitation, not an error.
func convertHeadingStyle(lines []string, opts Options) []string {
	toSetext := opts.HeadingStyle == config.HeadingSetext

	out := make([]string, 0, len(lines))
	var tracker RegionTracker

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if tracker.Observe(line) || tracker.InCodeBlock() {
			out = append(out, line)
			continue
		}

		// Setext heading: a non-blank text line followed by an underline.
		if !IsBlank(line) && i+1 < len(lines) && IsSetextUnderline(lines[i+1]) {
			if toSetext {
				out = append(out, line, lines[i+1])
			} else {
				level := 1
				if strings.Contains(lines[i+1], "-") {
					level = 2
				}
				out = append(out, strings.Repeat("#", level)+" "+strings.TrimSpace(line))
			}
			i++ // Skip the underline.
			continue
		}

		level, text, ok := parseATXHeading(line)
		if !ok {
			out = append(out, line)
			continue
		}

		if toSetext && level <= 2 {
			out = append(out, text, setextUnderline(level, text))
			continue
		}
		out = append(out, strings.Repeat("#", level)+" "+text)
	}

	return out
}

// setextUnderline builds an underline matching the heading text length.
func setextUnderline(level int, text string) string {
	ch := "="
	if level == 2 {
		ch = "-"
	}
	n := utf8.RuneCountInString(text)
	if n < 1 {
		n = 1
	}
	return strings.Repeat(ch, n)
}
