package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/melovue/shell/internal/config"
	"github.com/melovue/shell/internal/infrastructure/launcher"
)

const stagingDirPerm = 0o755

// ParallelInitInput holds the input for parallel initialization.
type ParallelInitInput struct {
	Ctx    context.Context
	Config *config.Config
}

// ParallelInitResult holds the results of the parallel initialization phase.
type ParallelInitResult struct {
	StagingDir string
	Launcher   *launcher.Adapter
	Duration   time.Duration
}

// RunParallelInit runs the independent startup work concurrently:
// config validation, staging directory creation, and desktop handler
// discovery. Returns the first fatal error encountered.
func RunParallelInit(input ParallelInitInput) (*ParallelInitResult, error) {
	var (
		stagingDir  string
		urlLauncher *launcher.Adapter
	)

	start := time.Now()
	g, _ := errgroup.WithContext(input.Ctx)

	// Config validation (CPU-bound, no I/O)
	g.Go(func() error {
		if err := config.Validate(input.Config); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return nil
	})

	// Staging directory for downloaded installer artifacts
	g.Go(func() error {
		dir, err := config.GetStagingDir()
		if err != nil {
			return fmt.Errorf("resolve staging directory: %w", err)
		}
		if err := os.MkdirAll(dir, stagingDirPerm); err != nil {
			return fmt.Errorf("create staging directory %s: %w", dir, err)
		}
		stagingDir = dir
		return nil
	})

	// Desktop handler discovery (PATH lookups)
	g.Go(func() error {
		adapter, err := launcher.NewAdapter()
		if err != nil {
			return fmt.Errorf("desktop launcher unavailable: %w", err)
		}
		urlLauncher = adapter
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ParallelInitResult{
		StagingDir: stagingDir,
		Launcher:   urlLauncher,
		Duration:   time.Since(start),
	}, nil
}
