package configloader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yaklabco/mdnorm/pkg/config"
)

// MigrateMarkdownlint merges the rule options mdnorm understands from a
// .markdownlint.json file into cfg: MD013 line_length, MD003 style, and
// MD007 indent. Unknown rules are ignored; a rule set to `false` (the
// markdownlint idiom for "disabled") simply contributes nothing.
func MigrateMarkdownlint(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}

	if opts := ruleOptions(raw, "MD013"); opts != nil {
		if n, ok := intOption(opts, "line_length"); ok {
			cfg.LineLength = n
		}
	}
	if opts := ruleOptions(raw, "MD003"); opts != nil {
		if s, ok := stringOption(opts, "style"); ok {
			cfg.HeadingStyle = config.HeadingStyle(s)
		}
	}
	if opts := ruleOptions(raw, "MD007"); opts != nil {
		if n, ok := intOption(opts, "indent"); ok {
			cfg.ListIndentWidth = n
		}
	}

	return nil
}

// ruleOptions decodes one rule entry as an option map, returning nil for
// missing rules and for boolean enable/disable entries.
func ruleOptions(raw map[string]json.RawMessage, rule string) map[string]json.RawMessage {
	entry, ok := raw[rule]
	if !ok {
		return nil
	}
	var opts map[string]json.RawMessage
	if err := json.Unmarshal(entry, &opts); err != nil {
		return nil
	}
	return opts
}

func intOption(opts map[string]json.RawMessage, key string) (int, bool) {
	entry, ok := opts[key]
	if !ok {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(entry, &n); err != nil {
		return 0, false
	}
	return n, true
}

func stringOption(opts map[string]json.RawMessage, key string) (string, bool) {
	entry, ok := opts[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(entry, &s); err != nil {
		return "", false
	}
	return s, true
}
