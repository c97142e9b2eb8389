package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoInputFiles is returned when discovery resolves no Markdown files.
var ErrNoInputFiles = errors.New("no markdown files found")

// Discover finds Markdown files matching opts. It returns a
// deterministically sorted list of absolute file paths. An explicitly
// named path that cannot be stat'ed is returned as a FileOutcome with
// Error set rather than failing discovery; everything else is filtered by
// extension and the include/exclude globs.
func Discover(ctx context.Context, opts Options) ([]string, []FileOutcome, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions := opts.effectiveExtensions()

	seen := make(map[string]struct{})
	var files []string
	var inaccessible []FileOutcome
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			inaccessible = append(inaccessible, FileOutcome{
				Path:  absPath,
				Error: fmt.Errorf("stat %s: %w", inputPath, err),
			})
			continue
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, extensions, opts)
			if err != nil {
				return nil, nil, err
			}
			for _, f := range discovered {
				add(f)
			}
			continue
		}
		if matchesFile(absPath, workDir, extensions, opts) {
			add(absPath)
		}
	}

	sort.Strings(files)
	return files, inaccessible, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(workDir)
}

// walkDirectory recursively collects matching Markdown files, skipping
// hidden entries and excluded directories.
func walkDirectory(
	ctx context.Context,
	root, workDir string,
	extensions []string,
	opts Options,
) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesAny(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		// Directory symlinks are not traversed; broken ones are ignored.
		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil || info.IsDir() {
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matchesFile(path, workDir, extensions, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchesFile checks a file path against extension and glob criteria.
func matchesFile(path, workDir string, extensions []string, opts Options) bool {
	relPath, err := filepath.Rel(workDir, path)
	if err != nil {
		relPath = path
	}

	if !hasMatchingExtension(path, extensions) {
		return false
	}
	if matchesAny(relPath, opts.ExcludeGlobs) {
		return false
	}
	if len(opts.IncludeGlobs) > 0 && !matchesAny(relPath, opts.IncludeGlobs) {
		return false
	}
	return true
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// matchesAny reports whether relPath matches any of the glob patterns.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a path against a glob pattern, with simplified
// support for "**" recursive patterns ("**/*.md", "vendor/**", "**/docs").
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	// Also try matching against just the filename.
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStar handles patterns containing "**".
func matchDoubleStar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" {
		if !strings.HasPrefix(path, prefix+"/") && path != prefix {
			return false
		}
		path = strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	}

	if suffix == "" {
		return true
	}

	// The suffix may match the tail of the path or any path component.
	if matched, err := filepath.Match(suffix, path); err == nil && matched {
		return true
	}
	for _, component := range strings.Split(path, "/") {
		if matched, err := filepath.Match(suffix, component); err == nil && matched {
			return true
		}
	}
	matched, err := filepath.Match(suffix, filepath.Base(path))
	return err == nil && matched
}
