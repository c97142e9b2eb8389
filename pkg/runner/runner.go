package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/mdnorm/internal/logging"
	"github.com/yaklabco/mdnorm/pkg/diff"
	"github.com/yaklabco/mdnorm/pkg/fsutil"
	"github.com/yaklabco/mdnorm/pkg/normalize"
)

// Runner orchestrates normalization across many files. Each file is an
// isolated failure domain: read and write errors are captured in the
// file's outcome and never abort the run.
type Runner struct {
	// DryRun reports diffs instead of rewriting files.
	DryRun bool
}

// New creates a Runner.
func New(dryRun bool) *Runner {
	return &Runner{DryRun: dryRun}
}

// Run discovers files under opts.Paths and processes them concurrently
// with a worker pool. Results are collected in deterministic path order.
// Documents never share mutable state; workers share only the read-only
// pipeline options.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, inaccessible, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)

	result := &Result{Files: make([]FileOutcome, 0, len(files)+len(inaccessible))}
	result.Stats.FilesDiscovered = len(files)

	// Inaccessible explicit paths are reported as failed outcomes and do
	// not stop the rest of the run.
	for _, outcome := range inaccessible {
		logger.Warn("cannot access input", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		result.accumulate(outcome)
	}

	if len(files) == 0 {
		if len(inaccessible) > 0 {
			return result, nil
		}
		return result, ErrNoInputFiles
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	pipelineOpts := normalize.OptionsFromConfig(opts.Config)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, pipelineOpts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index outcomes by path and rebuild
	// in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts normalize.Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile normalizes a single file and, unless dry-running, rewrites
// it in place atomically.
func (r *Runner) processFile(ctx context.Context, path string, opts normalize.Options) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	fixed, changed := normalize.Normalize(string(content), opts)
	outcome.Changed = changed
	if !changed {
		logger.Debug("no changes needed", logging.FieldPath, path)
		return outcome
	}

	if r.DryRun {
		outcome.Diff = diff.Compute(path, string(content), fixed)
		logger.Debug("would fix", logging.FieldPath, path)
		return outcome
	}

	if err := fsutil.ReplaceFile(ctx, path, []byte(fixed)); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", path, err)
		return outcome
	}
	outcome.Written = true
	logger.Debug("fixed", logging.FieldPath, path)

	return outcome
}
