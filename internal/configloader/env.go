package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdnorm/pkg/config"
)

// envVarPrefix is the prefix for all mdnorm environment variables.
const envVarPrefix = "MDNORM_"

// applyEnv applies MDNORM_* environment overrides to cfg. Unparseable
// values are skipped with a warning rather than failing the run.
func applyEnv(cfg *config.Config) []string {
	var warns []string

	if v := os.Getenv(envVarPrefix + "LINE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LineLength = n
		} else {
			warns = append(warns, fmt.Sprintf("invalid %sLINE_LENGTH %q ignored", envVarPrefix, v))
		}
	}
	if v := os.Getenv(envVarPrefix + "HEADING_STYLE"); v != "" {
		cfg.HeadingStyle = config.HeadingStyle(strings.ToLower(v))
	}
	if v := os.Getenv(envVarPrefix + "LIST_INDENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ListIndentWidth = n
		} else {
			warns = append(warns, fmt.Sprintf("invalid %sLIST_INDENT %q ignored", envVarPrefix, v))
		}
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Jobs = n
		} else {
			warns = append(warns, fmt.Sprintf("invalid %sJOBS %q ignored", envVarPrefix, v))
		}
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				cfg.Ignore = append(cfg.Ignore, trimmed)
			}
		}
	}

	return warns
}

// ListEnvVars returns the supported environment variables and their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		envVarPrefix + "LINE_LENGTH":   "Maximum line length before wrapping",
		envVarPrefix + "HEADING_STYLE": "Target heading style: atx or setext",
		envVarPrefix + "LIST_INDENT":   "Unordered-list indentation width",
		envVarPrefix + "JOBS":          "Number of parallel workers (0 = auto)",
		envVarPrefix + "IGNORE":        "Comma-separated glob patterns to skip",
	}
}
