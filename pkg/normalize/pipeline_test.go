package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdnorm/pkg/config"
	"github.com/yaklabco/mdnorm/pkg/normalize"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	input := "Title\n" +
		"=====\n" +
		"Some text   \n" +
		"\n" +
		"```\n" +
		"docker run nginx\n" +
		"```\n" +
		"\n" +
		"1. first\n" +
		"3. second\n"

	want := "# Title\n" +
		"\n" +
		"Some text\n" +
		"\n" +
		"```bash\n" +
		"docker run nginx\n" +
		"```\n" +
		"\n" +
		"1. first\n" +
		"2. second\n"

	got, changed := normalize.Normalize(input, normalize.DefaultOptions())
	assert.True(t, changed)
	assert.Equal(t, want, got)
}

func TestNormalizeClean(t *testing.T) {
	t.Parallel()

	input := "# Title\n\nAll good here.\n"

	got, changed := normalize.Normalize(input, normalize.DefaultOptions())
	assert.False(t, changed)
	assert.Equal(t, input, got)
}

// Normalizing twice must equal normalizing once, otherwise the tool would
// keep rewriting files on every run.
func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Title\n=====\ntext follows the heading\n",
		"1. a\n5. b\n9. c\n",
		"para\n- one\n- two\n",
		"```\ngit log --oneline\n```\n",
		"text   \n\n\n\nmore\n",
		"# H\nIntermediate text. This sentence runs long enough that the wrapper has to break it at the period marker somewhere.\n",
		"- aaaa bbbb cccc dddd eeee ffff. gggg hhhh iiii jjjj kkkk llll\n- second item\n",
		"1. aaaa bbbb cccc dddd eeee ffff. gggg hhhh iiii jjjj kkkk llll\n2. short\n",
		"",
	}

	opts := normalize.Options{
		LineLength:      60,
		HeadingStyle:    config.HeadingATX,
		ListIndentWidth: 2,
	}

	for _, input := range inputs {
		once, _ := normalize.Normalize(input, opts)
		twice, changed := normalize.Normalize(once, opts)
		assert.False(t, changed, "second run changed %q", input)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeCodeBlockContentPreserved(t *testing.T) {
	t.Parallel()

	input := "```go\n" +
		"# not a heading\n" +
		"1. not a list\n" +
		"   - not indented wrong\n" +
		"```\n"

	got, changed := normalize.Normalize(input, normalize.DefaultOptions())
	assert.False(t, changed)
	assert.Equal(t, input, got)
}

func TestNormalizeFixSubset(t *testing.T) {
	t.Parallel()

	input := "hello   \n1. a\n3. b\n"

	opts := normalize.DefaultOptions()
	opts.Fixes = []string{normalize.FixWhitespace}

	got, changed := normalize.Normalize(input, opts)
	assert.True(t, changed)
	assert.Equal(t, "hello\n1. a\n3. b\n", got, "only whitespace fix should run")
}

func TestFixNames(t *testing.T) {
	t.Parallel()

	names := normalize.FixNames()
	assert.Contains(t, names, normalize.FixAll)

	descriptions := normalize.FixDescriptions()
	for _, name := range names {
		assert.True(t, normalize.IsValidFixName(name))
		assert.NotEmpty(t, descriptions[name], "missing description for %q", name)
	}
	assert.False(t, normalize.IsValidFixName("bogus"))
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want normalize.Options
	}{
		{
			name: "nil config yields defaults",
			cfg:  nil,
			want: normalize.Options{
				LineLength:      config.DefaultLineLength,
				HeadingStyle:    config.HeadingATX,
				ListIndentWidth: config.DefaultListIndentWidth,
			},
		},
		{
			name: "explicit values carried over",
			cfg: &config.Config{
				LineLength:      80,
				HeadingStyle:    config.HeadingSetext,
				ListIndentWidth: 4,
				Fixes:           []string{"headings"},
			},
			want: normalize.Options{
				LineLength:      80,
				HeadingStyle:    config.HeadingSetext,
				ListIndentWidth: 4,
				Fixes:           []string{"headings"},
			},
		},
		{
			name: "invalid values replaced by defaults",
			cfg: &config.Config{
				LineLength:      -1,
				HeadingStyle:    "wiki",
				ListIndentWidth: 0,
			},
			want: normalize.Options{
				LineLength:      config.DefaultLineLength,
				HeadingStyle:    config.HeadingATX,
				ListIndentWidth: config.DefaultListIndentWidth,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalize.OptionsFromConfig(tt.cfg))
		})
	}
}
