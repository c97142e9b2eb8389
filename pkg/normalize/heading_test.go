package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdnorm/pkg/config"
)

func TestConvertHeadingStyleToATX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "setext level one",
			lines: []string{"Title", "====="},
			want:  []string{"# Title"},
		},
		{
			name:  "setext level two",
			lines: []string{"Section", "-------"},
			want:  []string{"## Section"},
		},
		{
			name:  "short underline still converts",
			lines: []string{"Title", "="},
			want:  []string{"# Title"},
		},
		{
			name:  "atx heading unchanged",
			lines: []string{"# Title", "", "## Section"},
			want:  []string{"# Title", "", "## Section"},
		},
		{
			name:  "trailing closing hashes stripped",
			lines: []string{"## Section ##"},
			want:  []string{"## Section"},
		},
		{
			name:  "extra interior spacing normalized",
			lines: []string{"##   Section"},
			want:  []string{"## Section"},
		},
		{
			name:  "underline inside code block untouched",
			lines: []string{"```", "Title", "=====", "```"},
			want:  []string{"```", "Title", "=====", "```"},
		},
		{
			name:  "lone dashes after blank are not a heading",
			lines: []string{"text", "", "---"},
			want:  []string{"text", "", "---"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := convertHeadingStyle(tt.lines, Options{HeadingStyle: config.HeadingATX})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertHeadingStyleToSetext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "atx level one",
			lines: []string{"# Title"},
			want:  []string{"Title", "====="},
		},
		{
			name:  "atx level two",
			lines: []string{"## Section"},
			want:  []string{"Section", "-------"},
		},
		{
			name:  "level three stays atx",
			lines: []string{"### Deep"},
			want:  []string{"### Deep"},
		},
		{
			name:  "existing setext unchanged",
			lines: []string{"Title", "====="},
			want:  []string{"Title", "====="},
		},
		{
			name:  "underline matches text length",
			lines: []string{"# Héllo"},
			want:  []string{"Héllo", "====="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := convertHeadingStyle(tt.lines, Options{HeadingStyle: config.HeadingSetext})
			assert.Equal(t, tt.want, got)
		})
	}
}

// Converting ATX to setext and back reproduces the heading for levels 1-2;
// deeper levels have no setext form and survive both directions untouched.
func TestConvertHeadingStyleRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"# Title"},
		{"## Section"},
		{"### Deep"},
		{"#### Deeper"},
	}

	for _, lines := range inputs {
		setext := convertHeadingStyle(lines, Options{HeadingStyle: config.HeadingSetext})
		atx := convertHeadingStyle(setext, Options{HeadingStyle: config.HeadingATX})
		assert.Equal(t, lines, atx, "round trip of %q", lines)
	}
}

func TestSetextUnderline(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "=====", setextUnderline(1, "Title"))
	assert.Equal(t, "---", setextUnderline(2, "Sub"))
	assert.Equal(t, "=", setextUnderline(1, ""))
}
