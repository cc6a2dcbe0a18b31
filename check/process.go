package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/formalverse/flin/internal"
	tt "github.com/formalverse/flin/internal/types"
	"github.com/formalverse/flin/scanner"
)

// Processor checks a single file with the given engine.
type Processor func(engine CheckEngine, filePath string) ([]tt.Issue, error)

// ProcessFile checks one formula file, consulting cache (when non-nil)
// before running the engine.
func ProcessFile(cache *internal.Cache) Processor {
	return func(engine CheckEngine, filePath string) ([]tt.Issue, error) {
		if cache != nil {
			if issues, ok := cache.Get(filePath); ok {
				return issues, nil
			}
		}
		issues, err := engine.Run(filePath)
		if err != nil {
			return nil, fmt.Errorf("error checking %s: %w", filePath, err)
		}
		if cache != nil {
			if err := cache.Set(filePath, issues); err != nil {
				return issues, fmt.Errorf("error caching result for %s: %w", filePath, err)
			}
		}
		return issues, nil
	}
}

// ProcessSources checks in-memory sources in order.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	sources [][]byte,
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := engine.RunSource(source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessFiles checks every given path, recursing into directories.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	paths []string,
	extensions []string,
	processor Processor,
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, extensions, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return allIssues, err
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues, nil
}

// ProcessPath checks one file or directory. Directory entries are filtered
// by extension and checked concurrently, with a progress bar on the batch.
// Results are collected in scan order regardless of completion order.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine CheckEngine,
	path string,
	extensions []string,
	processor Processor,
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path, extensions) {
			if logger != nil {
				logger.Debug("Skipping non-formula file", zap.String("path", path))
			}
			return nil, nil
		}
		return processor(engine, path)
	}

	files, err := scanner.New(path, extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning directory %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	bar := progressbar.Default(int64(len(files)), "checking")
	defer func() { _ = bar.Finish() }()

	results := make([]fileResult, len(files))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup

	for i, file := range files {
		select {
		case <-ctx.Done():
			wg.Wait()
			return collectIssues(results), ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, filePath string) {
			defer wg.Done()
			defer func() { <-sem }()
			issues, err := processor(engine, filePath)
			results[i] = fileResult{issues: issues, err: err}
			_ = bar.Add(1)
		}(i, file.Path)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return collectIssues(results), err
	}
	for _, res := range results {
		if res.err != nil {
			return collectIssues(results), res.err
		}
	}
	return collectIssues(results), nil
}

type fileResult struct {
	issues []tt.Issue
	err    error
}

func collectIssues(results []fileResult) []tt.Issue {
	issues := []tt.Issue{}
	for _, res := range results {
		issues = append(issues, res.issues...)
	}
	return issues
}

func hasDesiredExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, target := range extensions {
		if ext == target {
			return true
		}
	}
	return false
}
